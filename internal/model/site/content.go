package site

// Content is the static copy rendered by the marketing page.
type Content struct {
	Hero         Hero          `json:"hero"`
	Steps        []Step        `json:"steps"`
	Benefits     []Benefit     `json:"benefits"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Hero is the headline block at the top of the page.
type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
}

// Step is one stage of the "How it works" section.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Benefit is a "Why choose us" card.
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
}

// Default returns the published page copy.
func Default() Content {
	return Content{
		Hero: Hero{
			Title:    "Turn Unused Software Into Instant Cash",
			Subtitle: "SoftSell provides the fastest, most secure way to sell your unused software licenses. Get top dollar for your enterprise software with our transparent valuation process.",
			CTA:      "Get a Quote",
		},
		Steps: []Step{
			{Number: 1, Title: "Upload License", Description: "Securely upload your software license details through our encrypted portal.", Icon: "upload"},
			{Number: 2, Title: "Get Valuation", Description: "Our AI-powered system analyzes market data to provide the best possible valuation.", Icon: "dollar-sign"},
			{Number: 3, Title: "Get Paid", Description: "Accept our offer and receive payment via your preferred method within 24 hours.", Icon: "credit-card"},
		},
		Benefits: []Benefit{
			{Title: "Best Rates", Description: "We offer the highest payouts in the industry, guaranteed. Our transparent pricing means no hidden fees.", Icon: "dollar-sign"},
			{Title: "Fast Payments", Description: "Get paid within 24 hours of accepting our offer. Choose from multiple payment methods.", Icon: "zap"},
			{Title: "Secure Transfers", Description: "Bank-level encryption and secure license transfer protocols protect your data and privacy.", Icon: "shield"},
			{Title: "Expert Support", Description: "Our team of software licensing experts is available 24/7 to assist with any questions.", Icon: "headphones"},
		},
		Testimonials: []Testimonial{
			{
				Name:    "Sarah Johnson",
				Role:    "CTO",
				Company: "TechVision Inc.",
				Quote:   "SoftSell made it incredibly easy to recover value from our unused enterprise licenses. The valuation was fair and the payment was processed within hours. Highly recommended!",
			},
			{
				Name:    "Michael Chen",
				Role:    "IT Director",
				Company: "Global Systems",
				Quote:   "After our company downsized, we had excess software licenses. SoftSell offered us 30% more than competitors and handled the transfer securely. Their customer service was exceptional.",
			},
			{
				Name:    "Emily Rodriguez",
				Role:    "Finance Manager",
				Company: "Innovate Solutions",
				Quote:   "As someone responsible for optimizing company expenses, SoftSell has been a game-changer. We've recouped thousands on unused licenses that would have otherwise gone to waste.",
			},
			{
				Name:    "David Wilson",
				Role:    "Operations Lead",
				Company: "Nexus Enterprises",
				Quote:   "The entire process was transparent and efficient. From valuation to payment, everything was handled professionally. SoftSell has become our go-to for license resale.",
			},
		},
	}
}
