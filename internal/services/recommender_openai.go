package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

const recommenderSystemPrompt = "You are a travel planner. You answer with a single JSON object and nothing else."

// OpenAIRecommender asks a chat model for packages in the endpoint's format.
type OpenAIRecommender struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIRecommender(apiKey, model string, logger *zap.Logger) RecommenderInterface {
	return NewOpenAIRecommenderWithConfig(openai.DefaultConfig(apiKey), model, logger)
}

func NewOpenAIRecommenderWithConfig(cfg openai.ClientConfig, model string, logger *zap.Logger) RecommenderInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIRecommender{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (r *OpenAIRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: recommenderSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildRecommendationPrompt(dna)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", utils.ErrPackageGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", utils.ErrMalformedResponse)
	}

	r.logger.Debug("openai recommendation generated",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return parseGeneratedPackages(resp.Choices[0].Message.Content)
}
