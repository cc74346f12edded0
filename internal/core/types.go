package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Rule is a life-like birth/survival rule in B/S notation.
type Rule struct {
	Name    string
	Birth   [9]bool
	Survive [9]bool
}

// Next returns the state of a cell with the given neighbor count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String formats the rule as "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	b.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	return b.String()
}

// ParseRule parses B/S notation such as "B3/S23" or "b36/s23".
func ParseRule(spec string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(spec)), "/")
	if len(parts) != 2 {
		return r, errors.Errorf("rule %q: want B<digits>/S<digits>", spec)
	}
	for _, part := range parts {
		if part == "" {
			return r, errors.Errorf("rule %q: empty section", spec)
		}
		var dst *[9]bool
		switch part[0] {
		case 'B':
			dst = &r.Birth
		case 'S':
			dst = &r.Survive
		default:
			return r, errors.Errorf("rule %q: section %q must start with B or S", spec, part)
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, errors.Errorf("rule %q: bad neighbor count %q", spec, ch)
			}
			dst[ch-'0'] = true
		}
	}
	r.Name = spec
	return r, nil
}

// Conway is the standard B3/S23 rule.
var Conway = mustRule("conway", "B3/S23")

var rules = map[string]Rule{}

// RegisterRule adds a rule under the provided name.
func RegisterRule(name string, r Rule) {
	if name == "" {
		return
	}
	r.Name = name
	rules[name] = r
}

// LookupRule resolves a registered name or, failing that, B/S notation.
func LookupRule(name string) (Rule, error) {
	if r, ok := rules[name]; ok {
		return r, nil
	}
	r, err := ParseRule(name)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "unknown rule %q", name)
	}
	return r, nil
}

// Rules lists the registered rule names in sorted order.
func Rules() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustRule(name, spec string) Rule {
	r, err := ParseRule(spec)
	if err != nil {
		panic(err)
	}
	r.Name = name
	return r
}

func init() {
	RegisterRule("conway", Conway)
	RegisterRule("highlife", mustRule("highlife", "B36/S23"))
	RegisterRule("seeds", mustRule("seeds", "B2/S"))
}
