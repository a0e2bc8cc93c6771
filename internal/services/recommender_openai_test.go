package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"traveldna/pkg/utils"
)

func newTestOpenAIServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid request: %v", err)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
			t.Errorf("expected JSON response format")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
}

func testOpenAIRecommender(url string) RecommenderInterface {
	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = url + "/v1"
	return NewOpenAIRecommenderWithConfig(cfg, "", zap.NewNop())
}

func TestOpenAIRecommender_Recommend(t *testing.T) {
	ts := newTestOpenAIServer(t, http.StatusOK, twoPackagesBody)
	defer ts.Close()

	resp, err := testOpenAIRecommender(ts.URL).Recommend(context.Background(), submittedDNA())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Packages) != 2 {
		t.Errorf("expected 2 packages, got %d", len(resp.Packages))
	}
}

func TestOpenAIRecommender_APIError(t *testing.T) {
	ts := newTestOpenAIServer(t, http.StatusTooManyRequests, "")
	defer ts.Close()

	_, err := testOpenAIRecommender(ts.URL).Recommend(context.Background(), submittedDNA())
	if !errors.Is(err, utils.ErrPackageGenerationFailed) {
		t.Errorf("expected ErrPackageGenerationFailed, got %v", err)
	}
}

func TestOpenAIRecommender_NonJSONContent(t *testing.T) {
	ts := newTestOpenAIServer(t, http.StatusOK, "Sorry, no trips today.")
	defer ts.Close()

	_, err := testOpenAIRecommender(ts.URL).Recommend(context.Background(), submittedDNA())
	if !errors.Is(err, utils.ErrMalformedResponse) {
		t.Errorf("expected ErrMalformedResponse, got %v", err)
	}
}
