// Package fakeservice is an in-process stand-in for the Quiz Service. It
// answers with fixed fixture questions and is used by tests and by the
// fake-service command for local runs.
package fakeservice

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/saulo-duarte/quizdeck/internal/aiquiz"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type Options struct {
	AIAvailable bool
	// MaxRequests per Window before answering 429. Zero disables limiting.
	MaxRequests int
	Window      time.Duration
	// Fixtures overrides the built-in questions when set.
	Fixtures *Fixtures
}

type Handler struct {
	opts Options

	mu       sync.Mutex
	requests []aiquiz.GenerateRequest
	hits     []time.Time
	override func(w http.ResponseWriter, r *http.Request) bool
	method   string
	now      func() time.Time
}

func NewHandler(opts Options) *Handler {
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Fixtures == nil {
		opts.Fixtures = defaultFixtures()
	}
	return &Handler{opts: opts, method: "Fallback", now: time.Now}
}

// Requests returns every generate request received so far.
func (h *Handler) Requests() []aiquiz.GenerateRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]aiquiz.GenerateRequest, len(h.requests))
	copy(out, h.requests)
	return out
}

// Override lets a test take over the generate response. fn returns true when
// it has written the response itself.
func (h *Handler) Override(fn func(w http.ResponseWriter, r *http.Request) bool) {
	h.mu.Lock()
	h.override = fn
	h.mu.Unlock()
}

func (h *Handler) SetMethod(method string) {
	h.mu.Lock()
	h.method = method
	h.mu.Unlock()
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, aiquiz.StatusResponse{
		Success:     true,
		Message:     "API is working!",
		AIAvailable: h.opts.AIAvailable,
	})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	log := config.WithContext(config.WithRequestID(ctx, r.Header.Get("X-Request-ID")))
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		log = log.WithField("trace_id", sc.TraceID().String())
	}

	var req aiquiz.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generate request body")
		fail(w, http.StatusBadRequest, "No notes provided")
		return
	}

	h.mu.Lock()
	h.requests = append(h.requests, req)
	override := h.override
	method := h.method
	limited := h.limitedLocked()
	h.mu.Unlock()

	if override != nil && override(w, r) {
		return
	}
	if limited {
		fail(w, http.StatusTooManyRequests, "Rate limit exceeded. Please wait a minute.")
		return
	}

	notes := strings.TrimSpace(req.Notes)
	switch n := utf8.RuneCountInString(notes); {
	case n == 0:
		fail(w, http.StatusBadRequest, "No notes provided")
		return
	case n < 30:
		fail(w, http.StatusBadRequest, "Please provide more detailed notes (at least 30 characters)")
		return
	case n > 5000:
		fail(w, http.StatusBadRequest, "Notes too long. Please limit to 5000 characters.")
		return
	}

	count := aiquiz.ClampCount(req.NumQuestions)
	var questions []aiquiz.Question
	switch req.QuizType {
	case "mcq":
		questions = pick(h.opts.Fixtures.MCQ, count)
	case "flashcard":
		questions = pick(h.opts.Fixtures.Flashcard, count)
	default:
		fail(w, http.StatusBadRequest, "Invalid quiz type")
		return
	}

	if len(questions) == 0 {
		fail(w, http.StatusInternalServerError, "No questions available for "+req.QuizType)
		return
	}

	log.Infof("Serving %d fixture %s questions", len(questions), req.QuizType)
	config.JSON(w, http.StatusOK, aiquiz.GenerateResponse{
		Success:   true,
		Questions: questions,
		Metadata:  &aiquiz.Metadata{GenerationMethod: method},
		Message:   "Successfully generated questions!",
	})
}

func (h *Handler) limitedLocked() bool {
	if h.opts.MaxRequests <= 0 {
		return false
	}
	now := h.now()
	kept := h.hits[:0]
	for _, t := range h.hits {
		if now.Sub(t) < h.opts.Window {
			kept = append(kept, t)
		}
	}
	h.hits = kept
	if len(h.hits) >= h.opts.MaxRequests {
		return true
	}
	h.hits = append(h.hits, now)
	return false
}

func fail(w http.ResponseWriter, status int, msg string) {
	config.JSON(w, status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}

func pick(fixtures []aiquiz.Question, n int) []aiquiz.Question {
	if len(fixtures) == 0 {
		return nil
	}
	out := make([]aiquiz.Question, n)
	for i := range out {
		out[i] = fixtures[i%len(fixtures)]
	}
	return out
}
