package predicate

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST types for Participle grammar

// predicateExpr is the root of the grammar: a bare value, or one or two
// operator/value clauses.
type predicateExpr struct {
	Bare    string        `parser:"  @Value"`
	Clauses []*clauseExpr `parser:"| @@ @@?"`
}

// clauseExpr represents a single clause: op value
type clauseExpr struct {
	Operator string `parser:"@Operator"`
	Value    string `parser:"@Value"`
}

// Build the lexer
// Operator alternatives are ordered longest first so "<>" and ">=" are not
// split. Values start with a digit and run up to the next operator.
var predicateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Operator", Pattern: `<>|>=|<=|>|<|=`},
	{Name: "Value", Pattern: `\d[^<>=]*`},
})

// Build the parser
var predicateParser = participle.MustBuild[predicateExpr](
	participle.Lexer(predicateLexer),
	participle.Elide("Whitespace"),
)

// Parse splits a predicate like "> 1 KB < 1 MB" into its clauses in the
// order they appear. A bare value ("1024") is an equality clause.
func Parse(text string) ([]Raw, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &FormatError{Text: text}
	}

	ast, err := predicateParser.ParseString("", text)
	if err != nil {
		return nil, &FormatError{Text: text, Err: err}
	}

	if len(ast.Clauses) == 0 {
		return []Raw{{Operator: OpEqual, Value: strings.TrimSpace(ast.Bare)}}, nil
	}

	raws := make([]Raw, 0, len(ast.Clauses))
	for _, c := range ast.Clauses {
		raws = append(raws, Raw{
			Operator: Operator(c.Operator),
			Value:    strings.TrimSpace(c.Value),
		})
	}
	return raws, nil
}

// Resolve converts raw clauses into typed clauses using parse. Errors from
// parse are returned unchanged.
func Resolve[T any](raws []Raw, parse func(string) (T, error)) ([]Clause[T], error) {
	clauses := make([]Clause[T], 0, len(raws))
	for _, r := range raws {
		v, err := parse(r.Value)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, Clause[T]{Operator: r.Operator, Value: v})
	}
	return clauses, nil
}
