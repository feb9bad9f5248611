package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries state shared by all subcommands of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	logger     *log.Logger
	configPath string
	logLevel   string
	noColor    bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: log.NewWithOptions(stderr, log.Options{
			Prefix: "fsfilter",
			Level:  log.WarnLevel,
		}),
	}
}

// setLogLevel accepts debug, info, warn, error and fatal.
func (a *app) setLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	a.logger.SetLevel(lvl)
	return nil
}

// setupColor disables colors unless stdout is a terminal.
func (a *app) setupColor() {
	f, ok := a.stdout.(*os.File)
	if a.noColor || !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fsfilter",
		Short: "Filter files by name, size and modification time",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// arguments are valid by now; further errors are not usage errors
			cmd.SilenceUsage = true
			a.setupColor()
			return a.setLogLevel(a.logLevel)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newGlobCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil && !errors.Is(err, errRejected) && !errors.Is(err, errUnreadable) {
		a.logger.Error(err)
	}
	return exitCode(err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
