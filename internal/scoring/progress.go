package scoring

import (
	"github.com/ikjoobang/ppt-designer/internal/catalog"
	"github.com/ikjoobang/ppt-designer/internal/entity"
)

// ComputeProgress reports how much of the questionnaire a session has
// covered, overall and per phase, as fractions in [0, 1].
func ComputeProgress(responses map[string]entity.Response, cat *catalog.Catalog) entity.Progress {
	perPhaseTotal := make(map[int]int, catalog.PhaseCount)
	perPhaseAnswered := make(map[int]int, catalog.PhaseCount)

	answered := 0
	questions := cat.Questions()
	for i := range questions {
		q := &questions[i]
		perPhaseTotal[q.Phase]++
		if _, ok := responses[q.ID]; ok {
			perPhaseAnswered[q.Phase]++
			answered++
		}
	}

	perPhase := make(map[int]float64, len(perPhaseTotal))
	for phase, total := range perPhaseTotal {
		perPhase[phase] = float64(perPhaseAnswered[phase]) / float64(total)
	}

	overall := 0.0
	if len(questions) > 0 {
		overall = float64(answered) / float64(len(questions))
	}

	return entity.Progress{
		Overall:       overall,
		AnsweredCount: answered,
		TotalCount:    len(questions),
		PerPhase:      perPhase,
	}
}
