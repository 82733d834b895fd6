package scoring

import (
	"fmt"
	"sort"

	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
)

// MatchTemplates scores every catalog template against the profile and
// returns them ordered best first. Ties break on base difficulty (easier
// first), then template id, so identical inputs reproduce identical order.
// Fails with entity.ErrNoTemplates only when the template catalog is empty.
func MatchTemplates(profile entity.Profile, cat *catalog.Catalog) ([]entity.MatchResult, error) {
	templates := cat.Templates()
	if len(templates) == 0 {
		return nil, fmt.Errorf("template catalog is empty: %w", entity.ErrNoTemplates)
	}

	m := cat.Matching()
	dims := cat.Dimensions()

	type rankedMatch struct {
		result   entity.MatchResult
		baseRank int
	}

	ranked := make([]rankedMatch, 0, len(templates))
	for i := range templates {
		ranked = append(ranked, rankedMatch{
			result:   matchTemplate(profile, &templates[i], m, dims),
			baseRank: templates[i].Difficulty.Rank(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].result.Score != ranked[j].result.Score {
			return ranked[i].result.Score > ranked[j].result.Score
		}
		if ranked[i].baseRank != ranked[j].baseRank {
			return ranked[i].baseRank < ranked[j].baseRank
		}
		return ranked[i].result.TemplateID < ranked[j].result.TemplateID
	})

	results := make([]entity.MatchResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, r.result)
	}

	return results, nil
}

func matchTemplate(profile entity.Profile, tpl *entity.Template, m catalog.MatchingConfig, dims []entity.Dimension) entity.MatchResult {
	var weightedSum, weightTotal float64
	strengths := make([]entity.DimensionAssessment, 0, len(dims))
	weaknesses := make([]entity.DimensionAssessment, 0, len(dims))

	for _, d := range dims {
		sim := similarity(profile[d.ID], tpl.Attributes[d.ID])
		w := m.Weights[d.ID]
		weightedSum += sim * w
		weightTotal += w

		assessment := entity.DimensionAssessment{Dimension: d.ID, Similarity: sim}
		if sim >= m.StrengthThreshold {
			strengths = append(strengths, assessment)
		}
		if sim <= m.WeaknessThreshold {
			weaknesses = append(weaknesses, assessment)
		}
	}

	score := 0.0
	if weightTotal > 0 {
		score = clamp(weightedSum/weightTotal, 0, 100)
	}

	// Best-aligned strengths first, most severe gaps first.
	sort.SliceStable(strengths, func(i, j int) bool {
		if strengths[i].Similarity != strengths[j].Similarity {
			return strengths[i].Similarity > strengths[j].Similarity
		}
		return strengths[i].Dimension < strengths[j].Dimension
	})
	sort.SliceStable(weaknesses, func(i, j int) bool {
		if weaknesses[i].Similarity != weaknesses[j].Similarity {
			return weaknesses[i].Similarity < weaknesses[j].Similarity
		}
		return weaknesses[i].Dimension < weaknesses[j].Dimension
	})

	difficulty := tpl.Difficulty
	if profile[m.TechnicalDimension] < m.TechnicalFloor {
		difficulty = difficulty.Harder()
	}

	return entity.MatchResult{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		TemplateURL:  tpl.URL,
		PreviewImage: tpl.PreviewImage,
		Score:        score,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Difficulty:   difficulty,
	}
}

// similarity is the min/max ratio of the two values on a 0..100 scale.
// Two zeroes count as fully aligned; a zero against a non-zero does not.
func similarity(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 100
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi == 0 {
		return 0
	}
	return clamp(lo/hi*100, 0, 100)
}
