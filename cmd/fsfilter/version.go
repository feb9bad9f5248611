package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Long:  `Display the fsfilter version and the Go version it was built with.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				info := struct {
					Version string `json:"version"`
					Go      string `json:"go"`
				}{
					Version: Version,
					Go:      runtime.Version(),
				}
				out, err := json.Marshal(info)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(out))
				return nil
			}
			fmt.Fprintf(a.stdout, "fsfilter %s (%s)\n", Version, runtime.Version())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output in JSON format")

	return cmd
}
