package checkfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// File is the top-level document.
type File struct {
	Checks []Check `yaml:"checks"`
}

// Check describes one value and the rule it must satisfy.
type Check struct {
	Field  string   `yaml:"field"`
	Kind   string   `yaml:"kind"`
	Value  any      `yaml:"value"`
	MaxLen Length   `yaml:"max_len"`
	MinLen int      `yaml:"min_len"`
	Values []string `yaml:"values"`
}

// Length holds a scalar max_len or a float [overall, decimals] pair.
type Length struct {
	Max      int
	Decimals int
}

// UnmarshalYAML accepts `max_len: 11` and `max_len: [10, 2]`.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d", ErrInvalidLength, node.Line)
		}
		*l = Length{Max: n}
		return nil
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil || len(pair) == 0 || len(pair) > 2 {
			return fmt.Errorf("%w: line %d", ErrInvalidLength, node.Line)
		}
		*l = Length{Max: pair[0]}
		if len(pair) == 2 {
			l.Decimals = pair[1]
		}
		return nil
	}
	return fmt.Errorf("%w: line %d", ErrInvalidLength, node.Line)
}

// Constraints converts the check's options to validator.Constraints.
func (c Check) Constraints() validator.Constraints {
	return validator.Constraints{
		MaxLen:   c.MaxLen.Max,
		MinLen:   c.MinLen,
		Decimals: c.MaxLen.Decimals,
		Values:   c.Values,
	}
}

// Result is the verdict for a single check.
type Result struct {
	Field string
	Kind  validator.Kind
	Valid bool
}

// Summary counts the results of a run.
type Summary struct {
	Total  int
	Passed int
	Failed []string
}

// Summarize counts passed checks and lists failed field names in order.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Valid {
			s.Passed++
			continue
		}
		s.Failed = append(s.Failed, r.Field)
	}
	return s
}

// OK reports whether every check passed.
func (s Summary) OK() bool {
	return len(s.Failed) == 0
}
