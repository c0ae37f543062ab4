package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizdeck/internal/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	generatePath = "/generate"
	statusPath   = "/api/test"

	maxBodyBytes = 4 << 20
)

var tracer = otel.Tracer("github.com/saulo-duarte/quizdeck/internal/aiquiz")

// Provider performs single request/response exchanges with the Quiz
// Service. It never retries.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Status(ctx context.Context) (*StatusResponse, error)
}

type httpProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider talks to the service rooted at baseURL. A zero timeout
// leaves requests unbounded except by the caller's context.
func NewHTTPProvider(baseURL string, timeout time.Duration) Provider {
	return &httpProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *httpProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var out GenerateResponse
	status, err := p.do(ctx, http.MethodPost, generatePath, body, &out)
	if err != nil {
		log.WithError(err).Warn("[AIQUIZ] Generate request failed")
		return nil, err
	}

	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "Failed to generate quiz"
		}
		log.WithField("status", status).Warnf("[AIQUIZ] Service reported failure: %s", msg)
		return nil, serviceError(status, msg)
	}

	log.WithFields(logrus.Fields{
		"questions": len(out.Questions),
		"method":    out.Method(),
	}).Info("[AIQUIZ] Generate request succeeded")
	return &out, nil
}

// Status returns the decoded reply even when the service reports
// success:false or a non-2xx status with a JSON body. Only an unreachable
// service or an unreadable reply is an error.
func (p *httpProvider) Status(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	status, err := p.do(ctx, http.MethodGet, statusPath, nil, &out)
	if err != nil && !errors.Is(err, errReplied) {
		return nil, err
	}
	if !out.Success {
		config.WithContext(ctx).WithField("status", status).Warnf("[AIQUIZ] Status check reported failure: %s", out.Error)
	}
	return &out, nil
}

// errReplied marks a non-2xx reply whose JSON body was still decoded into out.
var errReplied = errors.New("service replied with an error status")

// do sends one request and decodes the JSON body into out. Transport
// failures become KindNetwork, 429 becomes KindRateLimited and everything
// else that is not a decodable 2xx becomes KindService.
func (p *httpProvider) do(ctx context.Context, method, path string, body []byte, out interface{}) (status int, err error) {
	ctx, span := tracer.Start(ctx, "quizservice "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, KindOf(err).String())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return 0, &Error{Kind: KindNetwork, Message: "invalid request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := config.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, &Error{Kind: KindNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &envelope)

	if resp.StatusCode == http.StatusTooManyRequests {
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return resp.StatusCode, &Error{Kind: KindRateLimited, Status: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := envelope.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		e := serviceError(resp.StatusCode, msg)
		if json.Unmarshal(raw, out) == nil {
			e.Err = errReplied
		}
		return resp.StatusCode, e
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, &Error{Kind: KindService, Status: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	return resp.StatusCode, nil
}
