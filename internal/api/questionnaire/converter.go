package questionnaire

import "github.com/ikjoobang/ppt-designer/internal/entity"

func toQuestionDTO(q *entity.Question) *entity.QuestionDTO {
	var options []string
	if len(q.Options) > 0 {
		options = make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, opt.Value)
		}
	}

	return &entity.QuestionDTO{
		ID:          q.ID,
		Phase:       q.Phase,
		Section:     q.Section,
		Text:        q.Text,
		Type:        q.Type,
		Required:    q.Required,
		Placeholder: q.Placeholder,
		FollowUp:    q.FollowUp,
		Options:     options,
	}
}

func toQuestionDTOs(questions []entity.Question) []*entity.QuestionDTO {
	dtos := make([]*entity.QuestionDTO, 0, len(questions))
	for i := range questions {
		dtos = append(dtos, toQuestionDTO(&questions[i]))
	}
	return dtos
}
