package scoring

import (
	"fmt"

	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
)

// GeneratePlan turns a match into an ordered implementation plan: one
// remediation step per weak dimension (most severe first, mirroring the
// match's weakness order) followed by the fixed rollout steps.
func GeneratePlan(match *entity.MatchResult, cat *catalog.Catalog) *entity.PlanDocument {
	plan := cat.Plan()

	steps := make([]entity.PlanStep, 0, len(match.Weaknesses)+len(plan.Rollout))
	for _, weak := range match.Weaknesses {
		spec, ok := plan.Remediations[weak.Dimension]
		if !ok {
			continue
		}
		steps = append(steps, entity.PlanStep{
			Title:           spec.Title,
			Description:     spec.Description,
			EstimatedEffort: effort(spec.EffortHours),
		})
	}
	for _, spec := range plan.Rollout {
		steps = append(steps, entity.PlanStep{
			Title:           spec.Title,
			Description:     spec.Description,
			EstimatedEffort: effort(spec.EffortHours),
		})
	}

	for i := range steps {
		steps[i].Order = i + 1
	}

	return &entity.PlanDocument{
		TemplateID:   match.TemplateID,
		TemplateName: match.TemplateName,
		Score:        match.Score,
		Difficulty:   match.Difficulty,
		Steps:        steps,
	}
}

func effort(hours int) string {
	return fmt.Sprintf("%dh", hours)
}
