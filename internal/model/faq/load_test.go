package faq

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRulesNormalizesPatterns(t *testing.T) {
	input := `
rules:
  - pattern: "  Do You Buy Adobe  "
    reply: Yes, Adobe licenses are welcome.
    topic: Adobe licenses
  - pattern: refund
    reply: Offers are final once accepted.
`
	rules, err := LoadRules(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadRules err: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Pattern != "do you buy adobe" {
		t.Fatalf("pattern not normalized: %q", rules[0].Pattern)
	}
	if rules[1].Pattern != "refund" || rules[1].Topic != "" {
		t.Fatalf("unexpected second rule: %+v", rules[1])
	}
}

func TestLoadRulesRejectsBadTables(t *testing.T) {
	cases := map[string]string{
		"empty document": "",
		"no rules":       "rules: []\n",
		"blank pattern":  "rules:\n  - pattern: \" \"\n    reply: hi\n",
		"blank reply":    "rules:\n  - pattern: hi\n    reply: \"\"\n",
		"malformed":      "rules: [",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadRules(strings.NewReader(input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if _, err := LoadRules(strings.NewReader("rules: []\n")); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestLoadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  - pattern: hello\n    reply: Hello!\n"), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}

	rules, err := LoadRulesFile(path)
	if err != nil {
		t.Fatalf("LoadRulesFile err: %v", err)
	}
	if len(rules) != 1 || rules[0].Reply != "Hello!" {
		t.Fatalf("unexpected rules: %+v", rules)
	}

	if _, err := LoadRulesFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultRulesArePatternsLowercase(t *testing.T) {
	for _, rule := range DefaultRules() {
		if rule.Pattern != strings.ToLower(rule.Pattern) {
			t.Fatalf("pattern %q is not lowercase", rule.Pattern)
		}
		if rule.Reply == "" || rule.Topic == "" {
			t.Fatalf("rule %q is incomplete", rule.Pattern)
		}
	}
}
