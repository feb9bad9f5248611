package predicate

// operatorChecks maps operators to their test on a three-way comparison
// result (-1/0/1 as returned by cmp.Compare).
var operatorChecks = map[Operator]func(cmp int) bool{
	OpEqual:        func(cmp int) bool { return cmp == 0 },
	OpNotEqual:     func(cmp int) bool { return cmp != 0 },
	OpGreater:      func(cmp int) bool { return cmp > 0 },
	OpLess:         func(cmp int) bool { return cmp < 0 },
	OpGreaterEqual: func(cmp int) bool { return cmp >= 0 },
	OpLessEqual:    func(cmp int) bool { return cmp <= 0 },
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	_, ok := operatorChecks[op]
	return ok
}

// Holds reports whether "a op b" is true, given cmp = compare(a, b).
func (op Operator) Holds(cmp int) (bool, error) {
	check, ok := operatorChecks[op]
	if !ok {
		return false, &UnknownOperatorError{Operator: op}
	}
	return check(cmp), nil
}

// Match checks v against every clause (AND). No clauses means no
// constraint. compare follows the cmp.Compare convention.
func Match[T any](clauses []Clause[T], v T, compare func(a, b T) int) (bool, error) {
	for _, c := range clauses {
		ok, err := c.Operator.Holds(compare(v, c.Value))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Validate returns an UnknownOperatorError for the first clause with an
// unsupported operator.
func Validate[T any](clauses []Clause[T]) error {
	for _, c := range clauses {
		if !c.Operator.Valid() {
			return &UnknownOperatorError{Operator: c.Operator}
		}
	}
	return nil
}
