package insight

// Degraded-mode payloads. When the generation call, JSON extraction, or
// schema check fails, the endpoint still answers 200 with one of these
// fixed literals instead of surfacing the error. Constructors return fresh
// values so callers cannot mutate the canned data.

// FallbackEvolve returns the canned idea-evolution result.
func FallbackEvolve() *EvolveResult {
	return &EvolveResult{Variants: []Variant{
		{
			Title:       "High-Impact Community Platform",
			Summary:     "Viral growth through gamification and social sharing",
			Description: "Build a feature-rich platform with social networking capabilities, achievement systems, and viral sharing mechanisms to maximize user acquisition and engagement.",
			Strengths: []string{
				"Exponential user growth potential through network effects",
				"High engagement rates with gamification elements",
				"Strong brand visibility and market presence",
				"Multiple monetization opportunities",
			},
			Tradeoffs: []string{
				"Higher initial development costs ($150K-200K)",
				"Longer time to market (6-9 months)",
				"Requires larger team and ongoing maintenance",
			},
			Scores: Scores{Impact: 92, Cost: 45, Feasibility: 68},
		},
		{
			Title:       "Lean MVP Launch Strategy",
			Summary:     "Minimal viable product with core features only",
			Description: "Start with essential functionality using no-code tools and existing platforms. Focus on validating the core value proposition with minimal investment.",
			Strengths: []string{
				"Launch in 4-6 weeks with $10K-20K budget",
				"Quick market validation and user feedback",
				"Low financial risk and easy pivoting",
				"Can bootstrap or self-fund initially",
			},
			Tradeoffs: []string{
				"Limited feature set may reduce initial appeal",
				"Scalability challenges as user base grows",
				"May need to rebuild for long-term growth",
			},
			Scores: Scores{Impact: 58, Cost: 88, Feasibility: 92},
		},
		{
			Title:       "Balanced Growth Platform",
			Summary:     "Phased rollout balancing quality and efficiency",
			Description: "Develop core features with modern tech stack, launch regionally, then expand. Combines solid architecture with controlled costs through iterative releases.",
			Strengths: []string{
				"Sustainable development pace and budget",
				"Quality codebase ready for scaling",
				"Manageable team size (3-5 developers)",
				"Good user experience without bloat",
			},
			Tradeoffs: []string{
				"Moderate time to market (3-4 months)",
				"May miss some early adopter opportunities",
				"Regional launch limits initial reach",
			},
			Scores: Scores{Impact: 75, Cost: 72, Feasibility: 82},
		},
	}}
}

// FallbackAnalyze returns the canned idea analysis.
func FallbackAnalyze() *AnalyzeResult {
	return &AnalyzeResult{
		Clarity:   72,
		MarketFit: 68,
		Competition: []string{
			"StudyBuddy - Existing study group matching platform",
			"Campus Connect - University social networking app",
			"GroupStudy - Online collaboration tool for students",
		},
		Suggestions: []string{
			"Define your unique value proposition more clearly",
			"Research specific pain points of your target users",
			"Consider partnerships with universities for distribution",
			"Focus on one key feature that differentiates you from competitors",
		},
		MarketData: []MarketDatum{
			{Category: "EdTech", Demand: 85, Competition: 78},
			{Category: "Social Learning", Demand: 72, Competition: 65},
			{Category: "Study Apps", Demand: 68, Competition: 82},
			{Category: "Campus Tools", Demand: 58, Competition: 45},
		},
		RadarData: []RadarDatum{
			{Subject: "Innovation", Score: 65},
			{Subject: "Scalability", Score: 78},
			{Subject: "Market Timing", Score: 82},
			{Subject: "Technical Feasibility", Score: 88},
			{Subject: "Business Model", Score: 58},
		},
	}
}

// FallbackBusinessInsights returns the canned business analysis.
func FallbackBusinessInsights() *BusinessInsightsResult {
	return &BusinessInsightsResult{
		BusinessModel: BusinessModel{
			PrimaryModel: "B2C Mobile App",
			TargetMarket: "College students aged 18-24 seeking study partners and collaborative learning opportunities",
			RevenueStreams: []string{
				"Freemium subscriptions",
				"Premium features (priority matching, analytics)",
				"University partnerships",
				"In-app study resources marketplace",
			},
			CustomerSegments: []string{
				"Undergraduate students in STEM fields",
				"Graduate students seeking research collaborators",
				"International students adapting to new education systems",
				"Remote learners needing virtual study groups",
			},
			CompetitiveAdvantage: "AI-powered matching algorithm that considers learning styles, schedules, and academic performance to create optimal study groups",
		},
		Monetization: Monetization{
			Pricing: Pricing{
				Model: "Freemium with Subscription Tiers",
				Range: "Free, $4.99/mo (Pro), $9.99/mo (Premium)",
			},
			LTV:       "$120",
			CAC:       "$8",
			Breakeven: "15-18 months",
			RevenueBreakdown: []RevenueSlice{
				{Name: "Subscriptions", Value: 55, Color: "#6366F1"},
				{Name: "University Licenses", Value: 30, Color: "#8B5CF6"},
				{Name: "Marketplace Fees", Value: 10, Color: "#06B6D4"},
				{Name: "Advertising", Value: 5, Color: "#10B981"},
			},
		},
		GoToMarket: GoToMarket{
			Strategy: "Campus ambassador program combined with digital marketing. Start with 3-5 pilot universities, gather feedback, iterate, then scale to top 50 universities.",
			Timeline: "4-6 months to launch",
			Channels: []string{
				"Campus Ambassadors",
				"TikTok & Instagram",
				"University Partnership Programs",
				"Student Facebook Groups",
				"Reddit (r/college)",
			},
			Milestones: []Milestone{
				{Phase: "MVP Development", Duration: "2 months", Status: "active"},
				{Phase: "Pilot Launch (3 Universities)", Duration: "1 month", Status: "pending"},
				{Phase: "Iteration & Scaling", Duration: "2 months", Status: "pending"},
				{Phase: "National Rollout", Duration: "Ongoing", Status: "pending"},
			},
			Risks: []string{
				"Low initial user adoption without critical mass",
				"Competition from existing study platforms",
				"Privacy concerns with student data",
			},
		},
	}
}

// FallbackRoast returns the canned roast.
func FallbackRoast() *RoastResult {
	return &RoastResult{
		OverallRating: 3,
		SavageRoast:   "This idea has been done before, and honestly, yours doesn't bring anything new to the table. It's like reinventing the wheel, but making it square.",
		MajorFlaws: []string{
			"Lacks differentiation from existing solutions",
			"Unclear value proposition",
			"Market is already saturated",
			"Execution challenges not addressed",
		},
		MarketReality:      "The market is crowded and dominated by established players with deep pockets.",
		WhoWillActuallyUse: "Probably just your friends being polite, and they'll stop after a week.",
		WhyItWillFail:      "Competition is fierce, customer acquisition costs are high, and there's no compelling reason for users to switch.",
		RedeemingQualities: []string{"Shows initiative", "Identifies a problem"},
		AdviceIfYouInsist:  "Find a specific niche, talk to 100 potential customers, and prove there's actual demand before building anything.",
		SimilarFailures:    []string{"Countless startups in this space that burned through funding"},
		Verdict:            "Another 'me too' idea in an oversaturated market.",
	}
}

// FallbackDebate returns the canned optimist/skeptic exchange.
func FallbackDebate() *DebateResult {
	return &DebateResult{Messages: []DebateMessage{
		{
			Role:    "user",
			Content: "This idea taps into a real pain point for students. The market is huge with millions of college students globally struggling to find compatible study partners. AI-powered matching could be a game-changer!",
		},
		{
			Role:    "assistant",
			Content: "But consider the chicken-and-egg problem: you need critical mass for effective matching. Most campus-focused apps fail because they can't reach enough users quickly. Without scale, the matching quality suffers, users churn, and you're left with nothing.",
		},
		{
			Role:    "user",
			Content: "Fair point, but that's exactly why the AI matching is crucial. Even with smaller groups, intelligent algorithms can create better matches than random connections. Plus, partnering with universities for initial rollout solves the critical mass problem faster than traditional consumer apps.",
		},
		{
			Role:    "assistant",
			Content: "University partnerships sound good in theory, but they're notoriously slow to negotiate and implement. Educational institutions are risk-averse and have lengthy approval processes. Meanwhile, you're burning cash on development with no revenue stream. How do you sustain until you get traction?",
		},
		{
			Role:    "user",
			Content: "Start with a freemium model targeting individual students first while pursuing partnerships in parallel. The product can generate revenue from premium features immediately. Use early adopters as social proof when approaching universities. It's a dual-track strategy that mitigates the timeline risk.",
		},
		{
			Role:    "assistant",
			Content: "The freemium model has low conversion rates in education - students are notoriously price-sensitive. You'll spend heavily on user acquisition but convert maybe 2-5%. With competition from free alternatives like Discord or WhatsApp groups, convincing students to pay for yet another app is an uphill battle.",
		},
	}}
}

// FallbackMix returns the canned hybrid idea.
func FallbackMix() *MixResult {
	return &MixResult{
		MixedIdea: "A gamified study platform that combines AI-powered peer matching with Netflix-style content recommendations. Students get matched with compatible study partners based on learning styles, but also receive personalized study resource recommendations (videos, articles, practice problems) based on their progress and goals. The platform uses engagement metrics to continuously improve both matching and content algorithms, creating a comprehensive learning ecosystem.",
	}
}
