package aiquiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/saulo-duarte/quizdeck/internal/quiz"
	"gopkg.in/yaml.v3"
)

type GenerateRequest struct {
	Notes        string `json:"notes"`
	QuizType     string `json:"quiz_type"`
	NumQuestions int    `json:"num_questions"`
}

type Question struct {
	Question      string       `json:"question" yaml:"question"`
	Type          string       `json:"type,omitempty" yaml:"type,omitempty"`
	Options       []string     `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer *AnswerIndex `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	Answer        string       `json:"answer,omitempty" yaml:"answer,omitempty"`
}

type Metadata struct {
	GenerationMethod string `json:"generation_method"`
}

type GenerateResponse struct {
	Success          bool       `json:"success"`
	Questions        []Question `json:"questions"`
	Metadata         *Metadata  `json:"metadata,omitempty"`
	GenerationMethod string     `json:"generation_method,omitempty"`
	QuizID           int64      `json:"quiz_id,omitempty"`
	Message          string     `json:"message,omitempty"`
	Error            string     `json:"error,omitempty"`
}

// Method returns the generation label, preferring metadata over the
// top-level field.
func (r *GenerateResponse) Method() string {
	if r.Metadata != nil && r.Metadata.GenerationMethod != "" {
		return r.Metadata.GenerationMethod
	}
	if r.GenerationMethod != "" {
		return r.GenerationMethod
	}
	return "AI"
}

type StatusResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AIAvailable bool   `json:"ai_available"`
	Error       string `json:"error,omitempty"`
}

// Generation is a successful Generate call mapped to domain questions.
type Generation struct {
	Kind      quiz.Kind
	Questions []quiz.Question
	Method    string
}

// AnswerIndex is the zero-based correct option. Services send either a number
// or an option letter ("C"). Questions hold it by pointer so a missing or
// null value stays distinguishable from option A.
type AnswerIndex int

// Answer returns a pointer to the index i.
func Answer(i int) *AnswerIndex {
	a := AnswerIndex(i)
	return &a
}

func (a *AnswerIndex) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		return ErrNoCorrectAnswer
	}
	if n, err := strconv.Atoi(s); err == nil {
		*a = AnswerIndex(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("correct_answer: %w", err)
	}
	return a.parse(str)
}

func (a *AnswerIndex) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("correct_answer: expected a scalar at line %d", value.Line)
	}
	return a.parse(value.Value)
}

func (a *AnswerIndex) parse(raw string) error {
	str := strings.ToUpper(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(str); err == nil {
		*a = AnswerIndex(n)
		return nil
	}
	if len(str) >= 1 && str[0] >= 'A' && str[0] <= 'Z' && (len(str) == 1 || str[1] == ')') {
		*a = AnswerIndex(str[0] - 'A')
		return nil
	}
	return fmt.Errorf("correct_answer: unrecognised value %q", str)
}

// toDomain maps q for a session of kind. MCQ questions without a correct
// answer are rejected.
func (q Question) toDomain(kind quiz.Kind) (quiz.Question, error) {
	out := quiz.Question{
		Prompt:  strings.TrimSpace(q.Question),
		Options: q.Options,
		Correct: -1,
		Answer:  strings.TrimSpace(q.Answer),
	}
	if q.CorrectAnswer != nil {
		out.Correct = int(*q.CorrectAnswer)
	} else if kind == quiz.KindMCQ {
		return out, ErrNoCorrectAnswer
	}
	return out, nil
}
