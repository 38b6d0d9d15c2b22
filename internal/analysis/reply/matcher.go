package reply

import (
	"strings"

	"github.com/softsell/site/backend/internal/model/faq"
)

// Category says which branch of the matcher produced a reply.
type Category string

const (
	CategoryRule      Category = "rule"
	CategoryValuation Category = "valuation"
	CategoryThanks    Category = "thanks"
	CategoryGeneric   Category = "generic"
)

const (
	valuationReply = "The value of your software license depends on several factors including the software type, version, remaining subscription time, and current market demand. Submit your details through our form, and we'll provide a free valuation within 24 hours."
	thanksReply    = "You're welcome! Is there anything else I can help you with?"

	genericPrefix   = "I'm not sure I understand. Could you try rephrasing your question?"
	genericFallback = genericPrefix + " Or you can ask about how to sell your license, what types of software we buy, payment timelines, or data security."
)

// Fallback keywords, checked in order after the rule table misses.
var (
	valuationKeywords = []string{"price", "cost", "worth"}
	thanksKeywords    = []string{"thank"}
)

// Result is a reply plus how it was chosen.
type Result struct {
	Reply    string   `json:"reply"`
	Category Category `json:"category"`
	Pattern  string   `json:"pattern,omitempty"`
}

// Matcher picks canned replies for free-text questions. It is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	rules   []faq.Rule
	generic string
}

// NewMatcher copies rules; their order is the tie-break when several patterns
// occur in the same input. Patterns are lowercased and rules with a blank
// pattern are dropped, since they would match every input.
func NewMatcher(rules []faq.Rule) *Matcher {
	kept := make([]faq.Rule, 0, len(rules))
	for _, rule := range rules {
		rule.Pattern = strings.ToLower(strings.TrimSpace(rule.Pattern))
		if rule.Pattern == "" {
			continue
		}
		kept = append(kept, rule)
	}
	return &Matcher{
		rules:   kept,
		generic: genericReply(kept),
	}
}

// NewDefaultMatcher uses the built-in rule table.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(faq.DefaultRules())
}

// Rules returns a copy of the table in declared order.
func (m *Matcher) Rules() []faq.Rule {
	return append([]faq.Rule(nil), m.rules...)
}

// Match returns the reply for input. It never returns an empty string.
func (m *Matcher) Match(input string) string {
	return m.Resolve(input).Reply
}

// Resolve is Match with the chosen branch attached.
func (m *Matcher) Resolve(input string) Result {
	normalized := strings.ToLower(strings.TrimSpace(input))

	// First declared pattern wins, not the longest one.
	for _, rule := range m.rules {
		if strings.Contains(normalized, rule.Pattern) {
			return Result{Reply: rule.Reply, Category: CategoryRule, Pattern: rule.Pattern}
		}
	}

	if containsAny(normalized, valuationKeywords) {
		return Result{Reply: valuationReply, Category: CategoryValuation}
	}
	if containsAny(normalized, thanksKeywords) {
		return Result{Reply: thanksReply, Category: CategoryThanks}
	}
	return Result{Reply: m.generic, Category: CategoryGeneric}
}

func containsAny(text string, keywords []string) bool {
	for _, word := range keywords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// genericReply re-offers the topics the table covers.
func genericReply(rules []faq.Rule) string {
	topics := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.Topic != "" {
			topics = append(topics, rule.Topic)
		}
	}

	switch len(topics) {
	case 0:
		return genericFallback
	case 1:
		return genericPrefix + " Or you can ask about " + topics[0] + "."
	case 2:
		return genericPrefix + " Or you can ask about " + topics[0] + " or " + topics[1] + "."
	default:
		last := len(topics) - 1
		return genericPrefix + " Or you can ask about " + strings.Join(topics[:last], ", ") + ", or " + topics[last] + "."
	}
}
