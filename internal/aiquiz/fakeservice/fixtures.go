package fakeservice

import (
	"errors"
	"fmt"
	"io"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoFixtures     = errors.New("fixture file has no questions")
	ErrInvalidFixture = errors.New("invalid fixture question")
)

var mcqFixtures = []aiquiz.Question{
	{
		Question:      "What is the powerhouse of the cell?",
		Type:          "mcq",
		Options:       []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi apparatus"},
		CorrectAnswer: aiquiz.Answer(1),
	},
	{
		Question:      "Which gas do plants absorb during photosynthesis?",
		Type:          "mcq",
		Options:       []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"},
		CorrectAnswer: aiquiz.Answer(2),
	},
	{
		Question:      "What does DNA stand for?",
		Type:          "mcq",
		Options:       []string{"Deoxyribonucleic acid", "Dinitrogen acid", "Deoxyribose amine", "Dual nucleic acid"},
		CorrectAnswer: aiquiz.Answer(0),
	},
	{
		Question:      "Which organelle contains chlorophyll?",
		Type:          "mcq",
		Options:       []string{"Vacuole", "Lysosome", "Cell wall", "Chloroplast"},
		CorrectAnswer: aiquiz.Answer(3),
	},
	{
		Question:      "What is the basic unit of life?",
		Type:          "mcq",
		Options:       []string{"Atom", "Cell", "Tissue", "Organ"},
		CorrectAnswer: aiquiz.Answer(1),
	},
}

var flashcardFixtures = []aiquiz.Question{
	{Question: "What is photosynthesis?", Type: "flashcard", Answer: "The process plants use to turn light, water and carbon dioxide into glucose and oxygen."},
	{Question: "What is mitosis?", Type: "flashcard", Answer: "Cell division producing two genetically identical daughter cells."},
	{Question: "What is osmosis?", Type: "flashcard", Answer: "Movement of water across a semipermeable membrane toward higher solute concentration."},
	{Question: "What is an enzyme?", Type: "flashcard", Answer: "A protein that speeds up a chemical reaction without being consumed."},
	{Question: "What is homeostasis?", Type: "flashcard", Answer: "The maintenance of a stable internal environment."},
}

// Fixtures replaces the built-in question bank of a Handler.
type Fixtures struct {
	MCQ       []aiquiz.Question `yaml:"mcq"`
	Flashcard []aiquiz.Question `yaml:"flashcard"`
}

// LoadFixtures reads a YAML question bank. Every kind present must hold
// questions the client would accept.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if len(f.MCQ) == 0 && len(f.Flashcard) == 0 {
		return nil, ErrNoFixtures
	}
	for i, q := range f.MCQ {
		if len(q.Options) < 2 || q.CorrectAnswer == nil || int(*q.CorrectAnswer) < 0 || int(*q.CorrectAnswer) >= len(q.Options) {
			return nil, fmt.Errorf("mcq fixture %d: %w", i, ErrInvalidFixture)
		}
	}
	for i, q := range f.Flashcard {
		if q.Answer == "" {
			return nil, fmt.Errorf("flashcard fixture %d: %w", i, ErrInvalidFixture)
		}
	}
	return &f, nil
}

func defaultFixtures() *Fixtures {
	return &Fixtures{MCQ: mcqFixtures, Flashcard: flashcardFixtures}
}
