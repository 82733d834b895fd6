package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ikjoobang/ppt-designer/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

// sessionResponses is one session's response set. The mutex serializes
// writes so last-write-wins per question id is well defined.
type sessionResponses struct {
	mu        sync.Mutex
	responses map[string]entity.Response
}

// MemoryStore keeps per-session response sets in an expiring in-memory
// cache. Validation happens at the write boundary: a submission that does
// not match its question's declared shape never enters the store.
type MemoryStore struct {
	questions QuestionIndex
	sessions  *gocache.Cache
	now       func() time.Time
}

// NewMemoryStore creates a response store. Sessions idle longer than ttl
// are dropped; expired entries are swept every cleanupInterval.
func NewMemoryStore(questions QuestionIndex, ttl, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		questions: questions,
		sessions:  gocache.New(ttl, cleanupInterval),
		now:       time.Now,
	}
}

// Submit validates one submission against the catalog and stores it,
// overwriting any prior response for the same question. Returns the stored
// response. The session's TTL refreshes on every write.
func (s *MemoryStore) Submit(ctx context.Context, sessionID string, req *entity.SubmitResponseRequest) (*entity.Response, error) {
	q, ok := s.questions.QuestionByID(req.QuestionID)
	if !ok {
		return nil, fmt.Errorf("question %q: %w", req.QuestionID, entity.ErrQuestionNotFound)
	}

	resp, err := buildResponse(q, req)
	if err != nil {
		return nil, err
	}
	resp.SubmittedAt = s.now()

	entry := s.session(sessionID)
	entry.mu.Lock()
	entry.responses[resp.QuestionID] = resp
	entry.mu.Unlock()

	s.sessions.Set(sessionID, entry, gocache.DefaultExpiration)

	return &resp, nil
}

// Snapshot returns a copy of the session's responses, safe to read while
// other requests keep writing.
func (s *MemoryStore) Snapshot(ctx context.Context, sessionID string) map[string]entity.Response {
	v, ok := s.sessions.Get(sessionID)
	if !ok {
		return map[string]entity.Response{}
	}

	entry := v.(*sessionResponses)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	snapshot := make(map[string]entity.Response, len(entry.responses))
	for id, resp := range entry.responses {
		snapshot[id] = resp
	}
	return snapshot
}

// Clear destroys the session's responses.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *MemoryStore) session(sessionID string) *sessionResponses {
	for {
		if v, ok := s.sessions.Get(sessionID); ok {
			return v.(*sessionResponses)
		}
		fresh := &sessionResponses{responses: make(map[string]entity.Response)}
		if err := s.sessions.Add(sessionID, fresh, gocache.DefaultExpiration); err == nil {
			return fresh
		}
		// Lost the creation race, retry the lookup.
	}
}

// buildResponse checks the submission against the question's declared shape
// and produces the typed response.
func buildResponse(q *entity.Question, req *entity.SubmitResponseRequest) (entity.Response, error) {
	if req.Response != "" && len(req.Responses) > 0 {
		return entity.Response{}, fmt.Errorf("question %q: response and responses are mutually exclusive: %w", q.ID, entity.ErrInvalidResponse)
	}

	resp := entity.Response{
		QuestionID:        q.ID,
		AdditionalDetails: strings.TrimSpace(req.AdditionalDetails),
	}

	switch q.Type {
	case entity.QuestionTypeSingleChoice:
		selected := selections(req)
		if len(selected) == 0 {
			return entity.Response{}, fmt.Errorf("question %q: %w", q.ID, entity.ErrMissingAnswer)
		}
		if len(selected) > 1 {
			return entity.Response{}, fmt.Errorf("question %q expects a single option: %w", q.ID, entity.ErrInvalidResponse)
		}
		if !hasOption(q, selected[0]) {
			return entity.Response{}, fmt.Errorf("question %q has no option %q: %w", q.ID, selected[0], entity.ErrOptionNotAllowed)
		}
		resp.Selected = selected

	case entity.QuestionTypeMultiChoice:
		selected := selections(req)
		if len(selected) == 0 {
			return entity.Response{}, fmt.Errorf("question %q: %w", q.ID, entity.ErrMissingAnswer)
		}
		seen := make(map[string]bool, len(selected))
		for _, value := range selected {
			if !hasOption(q, value) {
				return entity.Response{}, fmt.Errorf("question %q has no option %q: %w", q.ID, value, entity.ErrOptionNotAllowed)
			}
			if seen[value] {
				return entity.Response{}, fmt.Errorf("question %q: option %q selected twice: %w", q.ID, value, entity.ErrInvalidResponse)
			}
			seen[value] = true
		}
		resp.Selected = selected

	case entity.QuestionTypeFreeText:
		if len(req.Responses) > 0 {
			return entity.Response{}, fmt.Errorf("question %q expects text: %w", q.ID, entity.ErrInvalidResponse)
		}
		text := strings.TrimSpace(req.Response)
		if text == "" {
			return entity.Response{}, fmt.Errorf("question %q: %w", q.ID, entity.ErrMissingAnswer)
		}
		resp.Text = text

	default:
		return entity.Response{}, fmt.Errorf("question %q has unsupported type %q: %w", q.ID, q.Type, entity.ErrInvalidResponse)
	}

	return resp, nil
}

// selections merges the two wire forms: a scalar response or a response
// list. Single-choice submissions may use either.
func selections(req *entity.SubmitResponseRequest) []string {
	if req.Response != "" {
		return []string{req.Response}
	}
	return req.Responses
}

func hasOption(q *entity.Question, value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
