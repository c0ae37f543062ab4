package aiquiz

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/saulo-duarte/quizdeck/internal/quiz"
)

const (
	DefaultQuestions = 5
	MaxQuestions     = 10
)

type Service interface {
	GenerateQuestions(ctx context.Context, notes string, kind quiz.Kind, count int) (*Generation, error)
	CheckStatus(ctx context.Context) (*StatusResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// ClampCount keeps the requested question count within what the service
// accepts.
func ClampCount(count int) int {
	if count <= 0 {
		return DefaultQuestions
	}
	if count > MaxQuestions {
		return MaxQuestions
	}
	return count
}

func (s *service) GenerateQuestions(ctx context.Context, notes string, kind quiz.Kind, count int) (*Generation, error) {
	log := config.WithContext(ctx)

	if !kind.IsValid() {
		return nil, fmt.Errorf("aiquiz: invalid quiz type %q", kind)
	}

	resp, err := s.provider.Generate(ctx, GenerateRequest{
		Notes:        notes,
		QuizType:     string(kind),
		NumQuestions: ClampCount(count),
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Questions) == 0 {
		log.Warn("[AIQUIZ] Service returned no questions")
		return nil, serviceError(http.StatusOK, "no questions returned")
	}

	questions := make([]quiz.Question, 0, len(resp.Questions))
	for i, q := range resp.Questions {
		dq, err := q.toDomain(kind)
		if err != nil {
			log.WithError(err).Warnf("[AIQUIZ] Question %d is unusable", i)
			return nil, &Error{Kind: KindService, Status: http.StatusOK, Message: fmt.Sprintf("question %d has no correct answer", i+1), Err: err}
		}
		questions = append(questions, dq)
	}

	log.Infof("[AIQUIZ] Received %d %s questions", len(questions), kind)
	return &Generation{
		Kind:      kind,
		Questions: questions,
		Method:    resp.Method(),
	}, nil
}

func (s *service) CheckStatus(ctx context.Context) (*StatusResponse, error) {
	return s.provider.Status(ctx)
}
