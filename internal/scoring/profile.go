package scoring

import (
	"math"
	"strings"

	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
)

// ComputeProfile derives the weighted dimension profile from the session's
// responses. Pure function of its inputs: identical responses always yield
// an identical profile. No responses yields an all-zero profile.
//
// Each answered question contributes weight × factor to every dimension it
// maps to. The factor comes from the selected option (single choice), the
// capped sum of selected options (multi choice), or the catalog's baseline
// factor (free text). Totals normalize against the catalog's per-dimension
// maxima to a [0,100] scale.
func ComputeProfile(responses map[string]entity.Response, cat *catalog.Catalog) entity.Profile {
	totals := make(map[string]float64, len(cat.Dimensions()))

	// Walk the catalog, not the response map, so float accumulation order
	// is fixed and results are bit-for-bit reproducible.
	questions := cat.Questions()
	for i := range questions {
		q := &questions[i]
		resp, ok := responses[q.ID]
		if !ok {
			continue
		}
		factor := contributionFactor(q, &resp, cat.Scoring())
		if factor == 0 {
			continue
		}
		for _, dim := range q.Dimensions {
			totals[dim] += q.Weight * factor
		}
	}

	profile := make(entity.Profile, len(cat.Dimensions()))
	for _, d := range cat.Dimensions() {
		score := 0.0
		if max := cat.MaxDimensionTotal(d.ID); max > 0 {
			score = clamp(totals[d.ID]/max*100, 0, 100)
		}
		profile[d.ID] = score
	}

	return profile
}

func contributionFactor(q *entity.Question, resp *entity.Response, scoring catalog.ScoringConfig) float64 {
	switch q.Type {
	case entity.QuestionTypeSingleChoice:
		if len(resp.Selected) == 0 {
			return 0
		}
		return optionFactor(q, resp.Selected[0])

	case entity.QuestionTypeMultiChoice:
		sum := 0.0
		for _, value := range resp.Selected {
			sum += optionFactor(q, value)
		}
		// Selecting everything must not out-score a perfect single answer.
		return math.Min(sum, 1.0)

	case entity.QuestionTypeFreeText:
		if strings.TrimSpace(resp.Text) == "" {
			return 0
		}
		return scoring.FreeTextFactor

	default:
		return 0
	}
}

func optionFactor(q *entity.Question, value string) float64 {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Factor
		}
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
