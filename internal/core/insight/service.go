package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	repocore "github.com/ideaforge/ideaforge/server/internal/core/repo"
	"github.com/ideaforge/ideaforge/server/internal/llm"
)

// Service turns user-supplied ideas into typed payloads via the generation
// provider. Every operation returns a degraded flag: true means the provider
// call, the JSON extraction, or the schema check failed and the canned
// fallback literal was substituted. Callers still answer HTTP 200 in that
// case; only input validation surfaces an error.
type Service struct {
	gen llm.Generator
}

// NewService creates a new insight service.
func NewService(gen llm.Generator) *Service {
	return &Service{gen: gen}
}

// generateInto runs one prompt round-trip: generate, extract, unmarshal.
func (s *Service) generateInto(ctx context.Context, prompt string, out interface{}) error {
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	raw, ok := ExtractJSON(text)
	if !ok {
		return fmt.Errorf("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("model reply is not valid JSON: %w", err)
	}
	return nil
}

// Evolve generates three goal-optimized variants of an idea.
func (s *Service) Evolve(ctx context.Context, idea, goal string) (*EvolveResult, bool, error) {
	if idea == "" || goal == "" {
		return nil, false, repocore.NewValidationError("idea", "Missing required fields")
	}
	var out EvolveResult
	if err := s.generateInto(ctx, evolvePrompt(idea, goal), &out); err != nil {
		log.Warn().Err(err).Msg("evolve degraded to fallback")
		return FallbackEvolve(), true, nil
	}
	if err := validateEvolve(&out); err != nil {
		log.Warn().Err(err).Msg("evolve reply failed schema check, degraded to fallback")
		return FallbackEvolve(), true, nil
	}
	return &out, false, nil
}

// Analyze scores an idea for clarity, market fit, and competition.
// Ideas under 20 characters are rejected outright; the limit counts
// characters, not bytes, so multibyte text is not over-counted.
func (s *Service) Analyze(ctx context.Context, idea string) (*AnalyzeResult, bool, error) {
	if utf8.RuneCountInString(idea) < 20 {
		return nil, false, repocore.NewValidationError("idea", "Idea too short for analysis")
	}
	var out AnalyzeResult
	if err := s.generateInto(ctx, analyzePrompt(idea), &out); err != nil {
		log.Warn().Err(err).Msg("analyze degraded to fallback")
		return FallbackAnalyze(), true, nil
	}
	if err := validateAnalyze(&out); err != nil {
		log.Warn().Err(err).Msg("analyze reply failed schema check, degraded to fallback")
		return FallbackAnalyze(), true, nil
	}
	return &out, false, nil
}

// BusinessInsights produces business model, monetization, and GTM analysis.
func (s *Service) BusinessInsights(ctx context.Context, idea, goal string) (*BusinessInsightsResult, bool, error) {
	if idea == "" {
		return nil, false, repocore.NewValidationError("idea", "Missing idea")
	}
	var out BusinessInsightsResult
	if err := s.generateInto(ctx, businessInsightsPrompt(idea, goal), &out); err != nil {
		log.Warn().Err(err).Msg("business insights degraded to fallback")
		return FallbackBusinessInsights(), true, nil
	}
	if err := validateBusinessInsights(&out); err != nil {
		log.Warn().Err(err).Msg("business insights reply failed schema check, degraded to fallback")
		return FallbackBusinessInsights(), true, nil
	}
	return &out, false, nil
}

// Roast produces a harsh critique of an idea.
func (s *Service) Roast(ctx context.Context, idea string) (*RoastResult, bool, error) {
	if idea == "" {
		return nil, false, repocore.NewValidationError("idea", "Idea is required")
	}
	var out RoastResult
	if err := s.generateInto(ctx, roastPrompt(idea), &out); err != nil {
		log.Warn().Err(err).Msg("roast degraded to fallback")
		return FallbackRoast(), true, nil
	}
	if err := validateRoast(&out); err != nil {
		log.Warn().Err(err).Msg("roast reply failed schema check, degraded to fallback")
		return FallbackRoast(), true, nil
	}
	return &out, false, nil
}

// Research runs the two-stage research pipeline. Stage one classifies the
// idea; only research-oriented ideas get the second suggestion call. Any
// pipeline failure reports {isResearch:false, error:...} rather than the
// generic fallback policy.
func (s *Service) Research(ctx context.Context, idea string) (*ResearchResult, bool, error) {
	if idea == "" {
		return nil, false, repocore.NewValidationError("idea", "Idea is required")
	}

	var cls researchClassification
	if err := s.generateInto(ctx, researchClassifyPrompt(idea), &cls); err != nil {
		log.Warn().Err(err).Msg("research classification failed")
		return &ResearchResult{IsResearch: false, Error: "Failed to fetch research data"}, true, nil
	}

	if !cls.IsResearch {
		return &ResearchResult{
			IsResearch: false,
			Message:    "This idea doesn't appear to be research-oriented.",
		}, false, nil
	}

	var payload researchPayload
	if err := s.generateInto(ctx, researchSuggestPrompt(idea, cls.ResearchArea), &payload); err != nil {
		log.Warn().Err(err).Msg("research suggestion failed")
		return &ResearchResult{IsResearch: false, Error: "Failed to fetch research data"}, true, nil
	}

	return &ResearchResult{
		IsResearch:           true,
		ResearchArea:         payload.ResearchArea,
		SuggestedPapers:      payload.SuggestedPapers,
		ResearchDirections:   payload.ResearchDirections,
		Methodologies:        payload.Methodologies,
		KeyResearchers:       payload.KeyResearchers,
		RelatedConferences:   payload.RelatedConferences,
		FundingOpportunities: payload.FundingOpportunities,
	}, false, nil
}

// Debate generates a six-message optimist/skeptic exchange. No input
// validation: failures degrade, never 4xx.
func (s *Service) Debate(ctx context.Context, idea string) (*DebateResult, bool, error) {
	var out DebateResult
	if err := s.generateInto(ctx, debatePrompt(idea), &out); err != nil {
		log.Warn().Err(err).Msg("debate degraded to fallback")
		return FallbackDebate(), true, nil
	}
	if err := validateDebate(&out); err != nil {
		log.Warn().Err(err).Msg("debate reply failed schema check, degraded to fallback")
		return FallbackDebate(), true, nil
	}
	return &out, false, nil
}

// Mix combines two ideas into one hybrid concept.
func (s *Service) Mix(ctx context.Context, idea1, idea2 string) (*MixResult, bool, error) {
	var out MixResult
	if err := s.generateInto(ctx, mixPrompt(idea1, idea2), &out); err != nil {
		log.Warn().Err(err).Msg("idea mixer degraded to fallback")
		return FallbackMix(), true, nil
	}
	if out.MixedIdea == "" {
		log.Warn().Msg("idea mixer reply missing mixedIdea, degraded to fallback")
		return FallbackMix(), true, nil
	}
	return &out, false, nil
}

// --- Schema checks at the parse boundary ---
// A syntactically valid reply missing required fields counts as a failure.

func validateEvolve(r *EvolveResult) error {
	if len(r.Variants) != 3 {
		return fmt.Errorf("expected 3 variants, got %d", len(r.Variants))
	}
	for i, v := range r.Variants {
		if v.Title == "" || v.Summary == "" {
			return fmt.Errorf("variant %d missing title or summary", i)
		}
		if !inRange(v.Scores.Impact) || !inRange(v.Scores.Cost) || !inRange(v.Scores.Feasibility) {
			return fmt.Errorf("variant %d has scores outside 0-100", i)
		}
	}
	return nil
}

func validateAnalyze(r *AnalyzeResult) error {
	if !inRange(r.Clarity) || !inRange(r.MarketFit) {
		return fmt.Errorf("clarity/marketFit outside 0-100")
	}
	if len(r.Competition) == 0 || len(r.Suggestions) == 0 {
		return fmt.Errorf("missing competition or suggestions")
	}
	if len(r.MarketData) == 0 || len(r.RadarData) == 0 {
		return fmt.Errorf("missing marketData or radarData")
	}
	return nil
}

func validateBusinessInsights(r *BusinessInsightsResult) error {
	if r.BusinessModel.PrimaryModel == "" {
		return fmt.Errorf("missing businessModel.primaryModel")
	}
	if r.Monetization.Pricing.Model == "" {
		return fmt.Errorf("missing monetization.pricing.model")
	}
	if r.GoToMarket.Strategy == "" {
		return fmt.Errorf("missing goToMarket.strategy")
	}
	return nil
}

func validateRoast(r *RoastResult) error {
	if r.SavageRoast == "" || r.Verdict == "" {
		return fmt.Errorf("missing savageRoast or verdict")
	}
	if r.OverallRating < 1 || r.OverallRating > 10 {
		return fmt.Errorf("overallRating outside 1-10")
	}
	return nil
}

func validateDebate(r *DebateResult) error {
	if len(r.Messages) != 6 {
		return fmt.Errorf("expected 6 debate messages, got %d", len(r.Messages))
	}
	for i, m := range r.Messages {
		if m.Content == "" {
			return fmt.Errorf("debate message %d is empty", i)
		}
	}
	return nil
}

func inRange(v int) bool { return v >= 0 && v <= 100 }
