package reply

import (
	"strings"
	"testing"

	"github.com/softsell/site/backend/internal/model/faq"
)

func TestMatchRulePatternsCaseInsensitive(t *testing.T) {
	m := NewDefaultMatcher()
	for _, rule := range faq.DefaultRules() {
		input := "Hey, " + strings.ToUpper(rule.Pattern) + "??"
		if got := m.Match(input); got != rule.Reply {
			t.Fatalf("input %q: expected reply for %q, got %q", input, rule.Pattern, got)
		}
	}
}

func TestMatchSuggestionsSelectTheirRule(t *testing.T) {
	m := NewDefaultMatcher()
	rules := faq.DefaultRules()
	for i, question := range faq.Suggestions() {
		res := m.Resolve(question)
		if res.Category != CategoryRule || res.Pattern != rules[i].Pattern {
			t.Fatalf("suggestion %q resolved to %+v", question, res)
		}
	}
}

func TestMatchSellLicenseWithTrailingWords(t *testing.T) {
	m := NewDefaultMatcher()
	got := m.Match("how do I sell my license please")
	if got != faq.DefaultRules()[0].Reply {
		t.Fatalf("expected sell-license reply, got %q", got)
	}
}

func TestMatchFirstDeclaredRuleWins(t *testing.T) {
	m := NewMatcher([]faq.Rule{
		{Pattern: "license", Reply: "general"},
		{Pattern: "sell my license", Reply: "specific"},
	})
	if got := m.Match("can I sell my license"); got != "general" {
		t.Fatalf("expected first declared rule, got %q", got)
	}
}

func TestMatchRuleBeatsFallbackKeywords(t *testing.T) {
	m := NewDefaultMatcher()
	res := m.Resolve("Thanks! How long does payment take and what does it cost?")
	if res.Category != CategoryRule || res.Pattern != "how long does payment take" {
		t.Fatalf("expected payment rule, got %+v", res)
	}
}

func TestMatchValuationFallback(t *testing.T) {
	m := NewDefaultMatcher()
	for _, input := range []string{
		"What is the COST of selling?",
		"what's it worth",
		"Price?",
		"that sounds costly",
		"thank you, what's the price", // valuation outranks thanks
	} {
		res := m.Resolve(input)
		if res.Category != CategoryValuation || res.Reply != valuationReply {
			t.Fatalf("input %q: expected valuation fallback, got %+v", input, res)
		}
	}
}

func TestMatchThanksFallback(t *testing.T) {
	m := NewDefaultMatcher()
	for _, input := range []string{"Thank you!", "thanks a lot", "  THANKFUL  "} {
		if got := m.Match(input); got != thanksReply {
			t.Fatalf("input %q: expected thanks reply, got %q", input, got)
		}
	}
}

func TestMatchGenericFallbackReoffersTopics(t *testing.T) {
	m := NewDefaultMatcher()
	for _, input := range []string{"", "   ", "hello", "can I sell my licence?"} {
		res := m.Resolve(input)
		if res.Category != CategoryGeneric {
			t.Fatalf("input %q: expected generic fallback, got %+v", input, res)
		}
		if res.Reply == "" {
			t.Fatalf("input %q: empty reply", input)
		}
	}

	if got := m.Match(""); got != genericFallback {
		t.Fatalf("default table must reproduce the built-in fallback, got %q", got)
	}
}

func TestGenericReplyComposition(t *testing.T) {
	cases := []struct {
		name   string
		topics []string
		want   string
	}{
		{"none", nil, genericFallback},
		{"one", []string{"refunds"}, genericPrefix + " Or you can ask about refunds."},
		{"two", []string{"refunds", "fees"}, genericPrefix + " Or you can ask about refunds or fees."},
		{"three", []string{"a", "b", "c"}, genericPrefix + " Or you can ask about a, b, or c."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rules := make([]faq.Rule, 0, len(tc.topics)+1)
			rules = append(rules, faq.Rule{Pattern: "untopical", Reply: "x"})
			for _, topic := range tc.topics {
				rules = append(rules, faq.Rule{Pattern: topic, Reply: "x", Topic: topic})
			}
			if got := NewMatcher(rules).Match("zzz"); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNewMatcherDropsBlankPatterns(t *testing.T) {
	m := NewMatcher([]faq.Rule{{Pattern: "  ", Reply: "catch-all"}, {Pattern: "Hello", Reply: "hi"}})
	if len(m.Rules()) != 1 {
		t.Fatalf("expected blank pattern dropped, got %+v", m.Rules())
	}
	if got := m.Match("oh hello there"); got != "hi" {
		t.Fatalf("expected lowercased pattern to match, got %q", got)
	}
	if got := m.Match("nothing"); got == "catch-all" {
		t.Fatal("blank pattern must not match")
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := NewDefaultMatcher()
	input := "Is my data secure?"
	first := m.Match(input)
	for i := 0; i < 5; i++ {
		if got := m.Match(input); got != first {
			t.Fatalf("non-deterministic reply: %q vs %q", got, first)
		}
	}
}
