package faq

// Rule maps a lowercase keyword phrase to a canned reply. Topic is the phrase
// the generic fallback uses when it re-offers what the assistant can answer.
type Rule struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Reply   string `json:"reply" yaml:"reply"`
	Topic   string `json:"topic,omitempty" yaml:"topic,omitempty"`
}

// Greeting opens every conversation.
const Greeting = "Hi there! 👋 I'm SoftSell's AI assistant. How can I help you today?"

// DefaultRules returns the built-in rule table in declared order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Pattern: "how do i sell my license",
			Reply:   "Selling your license is easy! Just fill out our contact form with details about your software license. Our team will evaluate it and provide you with a quote within 24 hours. Once you accept, we handle the transfer process and send payment via your preferred method.",
			Topic:   "how to sell your license",
		},
		{
			Pattern: "what types of software do you buy",
			Reply:   "We purchase a wide range of enterprise software licenses including Microsoft, Adobe, Oracle, SAP, Autodesk, VMware, and many others. We specialize in enterprise-grade software, but we're open to evaluating any legitimate software license.",
			Topic:   "what types of software we buy",
		},
		{
			Pattern: "how long does payment take",
			Reply:   "After accepting our offer, you'll receive payment within 24 hours. We offer multiple payment methods including bank transfer, PayPal, and cryptocurrency for your convenience.",
			Topic:   "payment timelines",
		},
		{
			Pattern: "is my data secure",
			Reply:   "We take security very seriously. All license transfers are handled through secure, encrypted channels. Your personal and financial information is protected with bank-level encryption, and we never share your data with third parties.",
			Topic:   "data security",
		},
	}
}

// Suggestions lists the one-tap questions offered under the chat input.
func Suggestions() []string {
	return []string{
		"How do I sell my license?",
		"What types of software do you buy?",
		"How long does payment take?",
		"Is my data secure?",
	}
}
