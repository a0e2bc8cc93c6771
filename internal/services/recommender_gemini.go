package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

// contentGenerator is the part of *genai.GenerativeModel the recommender uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiRecommender uses Gemini in JSON mode to produce packages.
type GeminiRecommender struct {
	client   *genai.Client
	newModel func() contentGenerator
	logger   *zap.Logger
}

func NewGeminiRecommender(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiRecommender, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecommender{
		client: client,
		newModel: func() contentGenerator {
			m := client.GenerativeModel(model)
			m.ResponseMIMEType = "application/json"
			m.SetTemperature(0.2)
			m.SetTopP(0.5)
			m.SetTopK(20)
			m.SystemInstruction = genai.NewUserContent(genai.Text(recommenderSystemPrompt))
			return m
		},
		logger: logger,
	}, nil
}

func (r *GeminiRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	resp, err := r.newModel().GenerateContent(ctx, genai.Text(buildRecommendationPrompt(dna)))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %w", utils.ErrPackageGenerationFailed, err)
	}
	content, ok := responseText(resp)
	if !ok {
		r.logger.Warn("gemini returned no text content")
		return nil, fmt.Errorf("%w: gemini returned no content", utils.ErrMalformedResponse)
	}
	return parseGeneratedPackages(content)
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	c := resp.Candidates[0]
	if c.Content == nil {
		return "", false
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

func (r *GeminiRecommender) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
