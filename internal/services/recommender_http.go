package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"traveldna/internal/config"
	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

const maxRecommendationBody = 4 << 20

// HTTPRecommender posts the quiz answers to the package generation endpoint.
type HTTPRecommender struct {
	HTTP           *http.Client
	Endpoint       string
	MaxAttempts    uint
	InitialBackoff time.Duration
	logger         *zap.Logger
}

func NewHTTPRecommender(cfg config.RecommendationConfig, logger *zap.Logger) RecommenderInterface {
	return &HTTPRecommender{
		HTTP:           &http.Client{Timeout: cfg.Timeout},
		Endpoint:       cfg.Endpoint,
		MaxAttempts:    cfg.MaxAttempts,
		InitialBackoff: cfg.InitialBackoff,
		logger:         logger,
	}
}

func (r *HTTPRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	body, err := json.Marshal(recommendRequest{QuizAnswers: dna})
	if err != nil {
		return nil, fmt.Errorf("encode quiz answers: %w", err)
	}

	attempt := 0
	op := func() (*travel.RemoteResponse, error) {
		attempt++
		return r.post(ctx, body)
	}

	b := backoff.NewExponentialBackOff()
	if r.InitialBackoff > 0 {
		b.InitialInterval = r.InitialBackoff
	}

	resp, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(max(r.MaxAttempts, 1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			r.logger.Warn("recommendation request failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", next),
				zap.Error(err))
		}),
	)
	if err != nil {
		if errors.Is(err, utils.ErrPackageGenerationFailed) || errors.Is(err, utils.ErrMalformedResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", utils.ErrPackageGenerationFailed, err)
	}
	return resp, nil
}

// post makes one attempt. Client errors and undecodable bodies are permanent.
func (r *HTTPRecommender) post(ctx context.Context, body []byte) (*travel.RemoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %w", utils.ErrPackageGenerationFailed, err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := r.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrPackageGenerationFailed, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxRecommendationBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", utils.ErrPackageGenerationFailed, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		err := fmt.Errorf("%w: status %d", utils.ErrPackageGenerationFailed, res.StatusCode)
		if retryableStatus(res.StatusCode) {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	resp, err := decodeRemoteResponse(raw)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return resp, nil
}

func retryableStatus(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}
