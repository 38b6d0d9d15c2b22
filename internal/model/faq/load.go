package faq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTable is returned when a rule file declares no rules.
var ErrEmptyTable = errors.New("rule table is empty")

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules decodes a YAML rule table:
//
//	rules:
//	  - pattern: how do i sell my license
//	    reply: Selling your license is easy!
//	    topic: how to sell your license
//
// Patterns are trimmed and lowercased; file order is kept as declared order.
func LoadRules(r io.Reader) ([]Rule, error) {
	var file ruleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, ErrEmptyTable
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, rule := range file.Rules {
		rule.Pattern = strings.ToLower(strings.TrimSpace(rule.Pattern))
		rule.Reply = strings.TrimSpace(rule.Reply)
		rule.Topic = strings.TrimSpace(rule.Topic)
		if rule.Pattern == "" {
			return nil, fmt.Errorf("rule %d: pattern is required", i+1)
		}
		if rule.Reply == "" {
			return nil, fmt.Errorf("rule %d (%q): reply is required", i+1, rule.Pattern)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadRulesFile reads a rule table from path.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close()

	rules, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}
