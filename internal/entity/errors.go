package entity

import "errors"

// Domain errors
var (
	// Catalog errors
	ErrPhaseNotFound    = errors.New("phase not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoTemplates      = errors.New("no templates available")

	// Response validation errors
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrOptionNotAllowed = errors.New("option not allowed")
	ErrMissingAnswer    = errors.New("answer is missing")

	// Request validation errors
	ErrInvalidParameter = errors.New("invalid parameter")
)
