package promo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TypePercent = "percent"
	TypeFixed   = "fixed"
)

// Rule is a single discount rule: a percentage of the subtotal or a flat
// amount.
type Rule struct {
	Type  string  `yaml:"type" json:"type"`
	Value float64 `yaml:"value" json:"value"`
}

// Table maps promo codes (uppercase) to rules. It is read-only reference
// data and never part of session state.
type Table map[string]Rule

// Default returns the built-in promo table used when no promos file is
// configured.
func Default() Table {
	return Table{
		"SALE10":  {Type: TypePercent, Value: 10},
		"HALF":    {Type: TypePercent, Value: 50},
		"BONUS50": {Type: TypeFixed, Value: 50},
	}
}

// LoadFile reads a promo table from a YAML file mapping code to rule. Codes
// are normalized to uppercase; a rule with an unknown type or a negative
// value rejects the whole file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read promos file: %w", err)
	}

	var raw map[string]Rule
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not parse promos file: %w", err)
	}

	t := make(Table, len(raw))
	for code, rule := range raw {
		if rule.Type != TypePercent && rule.Type != TypeFixed {
			return nil, fmt.Errorf("promo %q: unknown type %q", code, rule.Type)
		}
		if rule.Value < 0 {
			return nil, fmt.Errorf("promo %q: negative value", code)
		}
		t[strings.ToUpper(strings.TrimSpace(code))] = rule
	}
	return t, nil
}

// Lookup finds the rule for an already-normalized code.
func (t Table) Lookup(code string) (Rule, bool) {
	r, ok := t[code]
	return r, ok
}
