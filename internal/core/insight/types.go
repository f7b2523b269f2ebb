package insight

// Scores grades a variant on three axes, each 0-100.
type Scores struct {
	Impact      int `json:"impact"`
	Cost        int `json:"cost"`
	Feasibility int `json:"feasibility"`
}

// Variant is one evolved version of an idea.
type Variant struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
	Tradeoffs   []string `json:"tradeoffs"`
	Scores      Scores   `json:"scores"`
}

// EvolveResult is the evolve-mode payload: exactly three variants.
type EvolveResult struct {
	Variants []Variant `json:"variants"`
}

// MarketDatum is one market category assessment.
type MarketDatum struct {
	Category    string `json:"category"`
	Demand      int    `json:"demand"`
	Competition int    `json:"competition"`
}

// RadarDatum is one radar-chart axis score.
type RadarDatum struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// AnalyzeResult is the analyze-mode payload.
type AnalyzeResult struct {
	Clarity     int           `json:"clarity"`
	MarketFit   int           `json:"marketFit"`
	Competition []string      `json:"competition"`
	Suggestions []string      `json:"suggestions"`
	MarketData  []MarketDatum `json:"marketData"`
	RadarData   []RadarDatum  `json:"radarData"`
}

// BusinessModel describes how the idea makes money.
type BusinessModel struct {
	PrimaryModel         string   `json:"primaryModel"`
	TargetMarket         string   `json:"targetMarket"`
	RevenueStreams       []string `json:"revenueStreams"`
	CustomerSegments     []string `json:"customerSegments"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
}

// Pricing is the monetization pricing summary.
type Pricing struct {
	Model string `json:"model"`
	Range string `json:"range"`
}

// RevenueSlice is one slice of the revenue breakdown chart.
type RevenueSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Monetization estimates unit economics.
type Monetization struct {
	Pricing          Pricing        `json:"pricing"`
	LTV              string         `json:"ltv"`
	CAC              string         `json:"cac"`
	Breakeven        string         `json:"breakeven"`
	RevenueBreakdown []RevenueSlice `json:"revenueBreakdown"`
}

// Milestone is one launch phase.
type Milestone struct {
	Phase    string `json:"phase"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

// GoToMarket describes the launch plan.
type GoToMarket struct {
	Strategy   string      `json:"strategy"`
	Timeline   string      `json:"timeline"`
	Channels   []string    `json:"channels"`
	Milestones []Milestone `json:"milestones"`
	Risks      []string    `json:"risks"`
}

// BusinessInsightsResult is the business-insights payload.
type BusinessInsightsResult struct {
	BusinessModel BusinessModel `json:"businessModel"`
	Monetization  Monetization  `json:"monetization"`
	GoToMarket    GoToMarket    `json:"goToMarket"`
}

// RoastResult is the roast-mode payload.
type RoastResult struct {
	OverallRating      int      `json:"overallRating"`
	SavageRoast        string   `json:"savageRoast"`
	MajorFlaws         []string `json:"majorFlaws"`
	MarketReality      string   `json:"marketReality"`
	WhoWillActuallyUse string   `json:"whoWillActuallyUse"`
	WhyItWillFail      string   `json:"whyItWillFail"`
	RedeemingQualities []string `json:"redeemingQualities"`
	AdviceIfYouInsist  string   `json:"adviceIfYouInsist"`
	SimilarFailures    []string `json:"similarFailures"`
	Verdict            string   `json:"verdict"`
}

// DebateMessage is one turn of the optimist/skeptic exchange.
type DebateMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DebateResult is the ai-debate payload: six alternating messages.
type DebateResult struct {
	Messages []DebateMessage `json:"messages"`
}

// MixResult is the idea-mixer payload.
type MixResult struct {
	MixedIdea string `json:"mixedIdea"`
}

// researchClassification is the first-stage research verdict.
type researchClassification struct {
	IsResearch   bool     `json:"isResearch"`
	ResearchArea string   `json:"researchArea"`
	Keywords     []string `json:"keywords"`
}

// Paper is one suggested academic reference.
type Paper struct {
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Year        string `json:"year"`
	Relevance   string `json:"relevance"`
	KeyFindings string `json:"keyFindings"`
	URL         string `json:"url"`
}

// ResearchResult is the research-mode payload. Non-research ideas carry
// Message; pipeline failures carry Error with IsResearch=false.
type ResearchResult struct {
	IsResearch           bool     `json:"isResearch"`
	Message              string   `json:"message,omitempty"`
	Error                string   `json:"error,omitempty"`
	ResearchArea         string   `json:"researchArea,omitempty"`
	SuggestedPapers      []Paper  `json:"suggestedPapers,omitempty"`
	ResearchDirections   []string `json:"researchDirections,omitempty"`
	Methodologies        []string `json:"methodologies,omitempty"`
	KeyResearchers       []string `json:"keyResearchers,omitempty"`
	RelatedConferences   []string `json:"relatedConferences,omitempty"`
	FundingOpportunities []string `json:"fundingOpportunities,omitempty"`
}

// researchPayload is the second-stage reply before IsResearch is stamped on.
type researchPayload struct {
	ResearchArea         string   `json:"researchArea"`
	SuggestedPapers      []Paper  `json:"suggestedPapers"`
	ResearchDirections   []string `json:"researchDirections"`
	Methodologies        []string `json:"methodologies"`
	KeyResearchers       []string `json:"keyResearchers"`
	RelatedConferences   []string `json:"relatedConferences"`
	FundingOpportunities []string `json:"fundingOpportunities"`
}
