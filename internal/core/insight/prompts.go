package insight

import "fmt"

// Prompt builders. Each embeds the user's idea and spells out the exact
// JSON shape the reply must take.

func evolvePrompt(idea, goal string) string {
	return fmt.Sprintf(`You are an expert innovation consultant. Analyze this idea and generate 3 evolved variants optimized for different goals.

Original Idea: %s

Primary Goal: %s

Generate 3 variants:
1. Impact-Optimized: Maximum reach and effectiveness
2. Cost-Optimized: Budget-friendly and resource-efficient
3. Balanced: Equal weight to impact, cost, and feasibility

For each variant, provide:
- title (concise, 5-7 words)
- summary (one sentence)
- description (2-3 sentences explaining the approach)
- strengths (3-4 bullet points)
- tradeoffs (2-3 bullet points)
- scores (0-100 for impact, cost efficiency, and feasibility)

Return ONLY valid JSON in this exact format:
{
  "variants": [
    {
      "title": "string",
      "summary": "string",
      "description": "string",
      "strengths": ["string", "string", "string"],
      "tradeoffs": ["string", "string"],
      "scores": {
        "impact": number,
        "cost": number,
        "feasibility": number
      }
    }
  ]
}`, idea, goal)
}

func analyzePrompt(idea string) string {
	return fmt.Sprintf(`You are an expert business analyst. Analyze this idea for clarity, market fit, and competition.

Idea: %s

Provide:
1. Clarity score (0-100): How well-defined is the idea?
2. Market fit score (0-100): How well does it address market needs?
3. Competition: List 3-5 existing competitors or similar solutions
4. Suggestions: 3-5 actionable recommendations to improve the idea
5. Market data: Provide 4-5 relevant market categories with demand score (0-100) and competition level (0-100)
6. Radar assessment: Provide scores (0-100) for Innovation, Scalability, Market Timing, Technical Feasibility, and Business Model

Return ONLY valid JSON in this exact format:
{
  "clarity": number,
  "marketFit": number,
  "competition": ["string", "string", "string"],
  "suggestions": ["string", "string", "string"],
  "marketData": [
    {"category": "string", "demand": number, "competition": number}
  ],
  "radarData": [
    {"subject": "Innovation", "score": number},
    {"subject": "Scalability", "score": number},
    {"subject": "Market Timing", "score": number},
    {"subject": "Technical Feasibility", "score": number},
    {"subject": "Business Model", "score": number}
  ]
}`, idea)
}

func businessInsightsPrompt(idea, goal string) string {
	return fmt.Sprintf(`You are a business strategy expert. Analyze this idea and provide detailed business insights.

Idea: %s
Primary Goal: %s

Provide comprehensive business analysis including:

1. Business Model:
   - Primary model (B2B, B2C, B2B2C, Marketplace, SaaS, etc.)
   - Target market description
   - 3-5 revenue streams
   - 3-4 customer segments
   - Key competitive advantage

2. Monetization:
   - Pricing model (Subscription, Freemium, One-time, Usage-based, etc.)
   - Price range estimate
   - Customer Lifetime Value (LTV) estimate
   - Customer Acquisition Cost (CAC) estimate
   - Break-even timeline
   - Revenue breakdown (3-4 sources with percentages)

3. Go-to-Market Strategy:
   - GTM strategy (1-2 sentences)
   - Timeline to launch
   - 3-5 marketing/distribution channels
   - 3-4 launch phases with durations
   - 2-3 key risks

Return ONLY valid JSON in this exact format:
{
  "businessModel": {
    "primaryModel": "B2B SaaS" or "B2C Mobile App" etc,
    "targetMarket": "description",
    "revenueStreams": ["stream1", "stream2", "stream3"],
    "customerSegments": ["segment1", "segment2", "segment3"],
    "competitiveAdvantage": "description"
  },
  "monetization": {
    "pricing": {
      "model": "Freemium Subscription",
      "range": "$10-50/month"
    },
    "ltv": "$500",
    "cac": "$50",
    "breakeven": "12-18 months",
    "revenueBreakdown": [
      {"name": "Subscriptions", "value": 60, "color": "#6366F1"},
      {"name": "Premium Features", "value": 25, "color": "#8B5CF6"},
      {"name": "API Access", "value": 15, "color": "#06B6D4"}
    ]
  },
  "goToMarket": {
    "strategy": "description",
    "timeline": "3-6 months",
    "channels": ["Content Marketing", "LinkedIn Ads", "Partnerships"],
    "milestones": [
      {"phase": "MVP Development", "duration": "2 months", "status": "active"},
      {"phase": "Beta Testing", "duration": "1 month", "status": "pending"},
      {"phase": "Public Launch", "duration": "1 month", "status": "pending"}
    ],
    "risks": ["Market adoption", "Competition"]
  }
}`, idea, goal)
}

func roastPrompt(idea string) string {
	return fmt.Sprintf(`You are a brutally honest idea critic. Roast this idea mercilessly but constructively. Be harsh but provide real insights.

Idea: "%s"

Provide your roast in this JSON format:
{
  "overallRating": number 1-10,
  "savageRoast": "A brutally honest, no-holds-barred critique (2-3 sentences)",
  "majorFlaws": ["list of critical problems"],
  "marketReality": "harsh truth about market viability",
  "whoWillActuallyUse": "realistic assessment of actual users",
  "whyItWillFail": "main reasons for failure",
  "redeemingQualities": ["IF there are any good points"],
  "adviceIfYouInsist": "If they still want to pursue it, what to do",
  "similarFailures": ["examples of similar ideas that failed"],
  "verdict": "one brutal sentence summary"
}`, idea)
}

func researchClassifyPrompt(idea string) string {
	return fmt.Sprintf(`Analyze if this idea is research-oriented (academic, scientific, technical research).
Respond with JSON:
{
  "isResearch": boolean,
  "researchArea": "specific field if research-oriented",
  "keywords": ["relevant research keywords"]
}

Idea: "%s"`, idea)
}

func researchSuggestPrompt(idea, area string) string {
	return fmt.Sprintf(`Based on this research idea, suggest relevant academic papers and research directions.

Idea: "%s"
Research Area: %s

Provide response in JSON format:
{
  "researchArea": "field of study",
  "suggestedPapers": [
    {
      "title": "paper title",
      "authors": "author names",
      "year": "year",
      "relevance": "why this paper is relevant",
      "keyFindings": "main findings",
      "url": "arxiv or doi link format"
    }
  ],
  "researchDirections": ["suggested research directions"],
  "methodologies": ["relevant research methodologies"],
  "keyResearchers": ["notable researchers in this field"],
  "relatedConferences": ["relevant academic conferences"],
  "fundingOpportunities": ["potential funding sources"]
}`, idea, area)
}

func debatePrompt(idea string) string {
	return fmt.Sprintf(`You are facilitating a debate between two AI agents about this idea:

"%s"

Agent 1 (Optimist): Argues FOR the idea, highlighting opportunities and potential
Agent 2 (Skeptic): Argues AGAINST the idea, highlighting risks and challenges

Generate a 6-message debate (3 messages per agent, alternating). Each message should be 2-3 sentences.

Return ONLY valid JSON:
{
  "messages": [
    {"role": "user", "content": "Optimist's first argument"},
    {"role": "assistant", "content": "Skeptic's counter-argument"},
    {"role": "user", "content": "Optimist's response"},
    {"role": "assistant", "content": "Skeptic's response"},
    {"role": "user", "content": "Optimist's final point"},
    {"role": "assistant", "content": "Skeptic's final point"}
  ]
}`, idea)
}

func mixPrompt(idea1, idea2 string) string {
	return fmt.Sprintf(`You are an innovation expert. Combine these two ideas into a single hybrid concept:

Idea 1: %s

Idea 2: %s

Create a new innovative idea that:
1. Combines the best elements of both
2. Creates synergies between them
3. Addresses gaps in both original ideas
4. Is practical and actionable

Describe the mixed idea in 3-4 sentences, clearly explaining how the concepts merge.

Return ONLY valid JSON:
{
  "mixedIdea": "detailed description of the hybrid idea"
}`, idea1, idea2)
}
