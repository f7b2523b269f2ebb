package insight

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	repocore "github.com/ideaforge/ideaforge/server/internal/core/repo"
)

// scriptedGen replays canned replies (or an error) in call order.
type scriptedGen struct {
	replies []string
	err     error
	calls   int
}

func (g *scriptedGen) Generate(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	if g.calls >= len(g.replies) {
		return "", errors.New("no scripted reply left")
	}
	reply := g.replies[g.calls]
	g.calls++
	return reply, nil
}

func validEvolveReply(t *testing.T) string {
	t.Helper()
	v := Variant{
		Title:   "t",
		Summary: "s",
		Scores:  Scores{Impact: 50, Cost: 50, Feasibility: 50},
	}
	out, err := json.Marshal(EvolveResult{Variants: []Variant{v, v, v}})
	require.NoError(t, err)
	return string(out)
}

func TestEvolve_MissingFields(t *testing.T) {
	svc := NewService(&scriptedGen{})
	_, _, err := svc.Evolve(context.Background(), "", "growth")
	require.True(t, repocore.IsValidationError(err))
	require.EqualError(t, err, "Missing required fields")

	_, _, err = svc.Evolve(context.Background(), "an idea", "")
	require.True(t, repocore.IsValidationError(err))
}

func TestEvolve_ProviderFailureDegrades(t *testing.T) {
	svc := NewService(&scriptedGen{err: errors.New("provider down")})
	result, degraded, err := svc.Evolve(context.Background(), "an idea", "growth")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Len(t, result.Variants, 3)
	require.Equal(t, "High-Impact Community Platform", result.Variants[0].Title)
	require.Equal(t, "Lean MVP Launch Strategy", result.Variants[1].Title)
	require.Equal(t, "Balanced Growth Platform", result.Variants[2].Title)
	require.Equal(t, FallbackEvolve(), result)
}

func TestEvolve_SchemaMismatchDegrades(t *testing.T) {
	// syntactically valid JSON with only one variant
	reply := `{"variants":[{"title":"t","summary":"s","scores":{"impact":50,"cost":50,"feasibility":50}}]}`
	svc := NewService(&scriptedGen{replies: []string{reply}})
	result, degraded, err := svc.Evolve(context.Background(), "an idea", "growth")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, FallbackEvolve(), result)
}

func TestEvolve_ScoresOutOfRangeDegrade(t *testing.T) {
	var out EvolveResult
	require.NoError(t, json.Unmarshal([]byte(validEvolveReply(t)), &out))
	out.Variants[1].Scores.Impact = 150
	raw, err := json.Marshal(out)
	require.NoError(t, err)

	svc := NewService(&scriptedGen{replies: []string{string(raw)}})
	result, degraded, err := svc.Evolve(context.Background(), "an idea", "growth")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, FallbackEvolve(), result)
}

func TestEvolve_ValidReplyPassesThrough(t *testing.T) {
	svc := NewService(&scriptedGen{replies: []string{"prose before " + validEvolveReply(t) + " prose after"}})
	result, degraded, err := svc.Evolve(context.Background(), "an idea", "growth")
	require.NoError(t, err)
	require.False(t, degraded)
	require.Equal(t, "t", result.Variants[0].Title)
}

func TestAnalyze_ShortIdeaRejected(t *testing.T) {
	svc := NewService(&scriptedGen{})
	_, _, err := svc.Analyze(context.Background(), "0123456789012345678") // 19 chars
	require.True(t, repocore.IsValidationError(err))
	require.EqualError(t, err, "Idea too short for analysis")
}

func TestAnalyze_LengthCountsCharactersNotBytes(t *testing.T) {
	svc := NewService(&scriptedGen{})
	// 8 CJK characters span 24 bytes; the limit sees 8
	_, _, err := svc.Analyze(context.Background(), "共有自転車の計画")
	require.True(t, repocore.IsValidationError(err))
	require.EqualError(t, err, "Idea too short for analysis")
}

func TestAnalyze_TwentyCharsAccepted(t *testing.T) {
	svc := NewService(&scriptedGen{err: errors.New("provider down")})
	result, degraded, err := svc.Analyze(context.Background(), "01234567890123456789") // 20 chars
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, 72, result.Clarity)
	require.Equal(t, 68, result.MarketFit)
	require.NotEmpty(t, result.Competition)
	require.NotEmpty(t, result.Suggestions)
	require.NotEmpty(t, result.MarketData)
	require.NotEmpty(t, result.RadarData)
}

func TestBusinessInsights_MissingIdea(t *testing.T) {
	svc := NewService(&scriptedGen{})
	_, _, err := svc.BusinessInsights(context.Background(), "", "growth")
	require.True(t, repocore.IsValidationError(err))
	require.EqualError(t, err, "Missing idea")
}

func TestRoast_FallbackShape(t *testing.T) {
	svc := NewService(&scriptedGen{err: errors.New("provider down")})
	result, degraded, err := svc.Roast(context.Background(), "an idea")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, 3, result.OverallRating)
	require.NotEmpty(t, result.SavageRoast)
	require.NotEmpty(t, result.Verdict)
}

func TestResearch_ClassificationFailure(t *testing.T) {
	svc := NewService(&scriptedGen{err: errors.New("provider down")})
	result, degraded, err := svc.Research(context.Background(), "an idea")
	require.NoError(t, err)
	require.True(t, degraded)
	require.False(t, result.IsResearch)
	require.Equal(t, "Failed to fetch research data", result.Error)
}

func TestResearch_NonResearchIdea(t *testing.T) {
	svc := NewService(&scriptedGen{replies: []string{`{"isResearch": false}`}})
	result, degraded, err := svc.Research(context.Background(), "a lemonade stand")
	require.NoError(t, err)
	require.False(t, degraded)
	require.False(t, result.IsResearch)
	require.Equal(t, "This idea doesn't appear to be research-oriented.", result.Message)
}

func TestResearch_TwoStagePipeline(t *testing.T) {
	gen := &scriptedGen{replies: []string{
		`{"isResearch": true, "researchArea": "machine learning", "keywords": ["ml"]}`,
		`{"researchArea": "machine learning", "suggestedPapers": [{"title": "Attention Is All You Need", "authors": "Vaswani et al.", "year": "2017"}], "researchDirections": ["d"], "methodologies": ["m"]}`,
	}}
	svc := NewService(gen)
	result, degraded, err := svc.Research(context.Background(), "transformer efficiency study")
	require.NoError(t, err)
	require.False(t, degraded)
	require.True(t, result.IsResearch)
	require.Equal(t, "machine learning", result.ResearchArea)
	require.Len(t, result.SuggestedPapers, 1)
	require.Equal(t, 2, gen.calls)
}

func TestResearch_SuggestionFailure(t *testing.T) {
	gen := &scriptedGen{replies: []string{
		`{"isResearch": true, "researchArea": "ml"}`,
		// second call gets "no scripted reply left"
	}}
	svc := NewService(gen)
	result, degraded, err := svc.Research(context.Background(), "an idea")
	require.NoError(t, err)
	require.True(t, degraded)
	require.False(t, result.IsResearch)
	require.Equal(t, "Failed to fetch research data", result.Error)
}

func TestDebate_FallbackHasSixMessages(t *testing.T) {
	svc := NewService(&scriptedGen{err: errors.New("provider down")})
	result, degraded, err := svc.Debate(context.Background(), "")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Len(t, result.Messages, 6)
}

func TestDebate_WrongMessageCountDegrades(t *testing.T) {
	svc := NewService(&scriptedGen{replies: []string{`{"messages":[{"role":"user","content":"hi"}]}`}})
	result, degraded, err := svc.Debate(context.Background(), "an idea")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, FallbackDebate(), result)
}

func TestMix_EmptyReplyDegrades(t *testing.T) {
	svc := NewService(&scriptedGen{replies: []string{`{"mixedIdea": ""}`}})
	result, degraded, err := svc.Mix(context.Background(), "a", "b")
	require.NoError(t, err)
	require.True(t, degraded)
	require.Equal(t, FallbackMix(), result)
}

func TestMix_ValidReply(t *testing.T) {
	svc := NewService(&scriptedGen{replies: []string{`{"mixedIdea": "a hybrid"}`}})
	result, degraded, err := svc.Mix(context.Background(), "a", "b")
	require.NoError(t, err)
	require.False(t, degraded)
	require.Equal(t, "a hybrid", result.MixedIdea)
}
