package store

import "github.com/ikjoobang/ppt-designer/internal/entity"

// QuestionIndex is the catalog lookup the store validates submissions
// against.
type QuestionIndex interface {
	QuestionByID(id string) (*entity.Question, bool)
}
