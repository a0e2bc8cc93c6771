package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

// RecommenderInterface turns a submitted Travel DNA into remote packages.
// Implementations report utils.ErrPackageGenerationFailed or
// utils.ErrMalformedResponse.
type RecommenderInterface interface {
	Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error)
}

type recommendRequest struct {
	QuizAnswers quiz.TravelDNA `json:"quizAnswers"`
}

func decodeRemoteResponse(body []byte) (*travel.RemoteResponse, error) {
	var resp travel.RemoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrMalformedResponse, err)
	}
	if resp.Packages == nil {
		resp.Packages = []travel.RemotePackage{}
	}
	return &resp, nil
}

const generatedSchema = `{"packages":[{"destination":"City, Country","country_code":"XX","lat":0.0,"lng":0.0,` +
	`"image":"https://...","why_this_destination":"...","trip_duration_days":7,` +
	`"estimated_budget":{"total_trip":1500}}]}`

// buildRecommendationPrompt asks a language model for the same payload the
// recommendation endpoint returns.
func buildRecommendationPrompt(dna quiz.TravelDNA) string {
	var b strings.Builder
	b.WriteString("Suggest 3 to 6 travel destinations for this traveller. Return JSON only, matching:\n")
	b.WriteString(generatedSchema)
	b.WriteString("\n\nTraveller:\n")
	fmt.Fprintf(&b, "- personality: %s\n", dna.Personality)
	fmt.Fprintf(&b, "- pace: %s\n", dna.Pace)
	fmt.Fprintf(&b, "- budget level: %s\n", dna.BudgetLevel)
	fmt.Fprintf(&b, "- travelling with: %s\n", dna.TravelWith)
	if dna.DaysRange != "" {
		fmt.Fprintf(&b, "- trip length (days): %s\n", dna.DaysRange)
	}
	fmt.Fprintf(&b, "- interests: %s\n", strings.Join(dna.Interests, ", "))
	b.WriteString("\nUse real coordinates. total_trip is in US dollars per person. No markdown, no comments.")
	return b.String()
}

// parseGeneratedPackages accepts model output that may still carry markdown
// fences or a lead-in sentence around the JSON object.
func parseGeneratedPackages(content string) (*travel.RemoteResponse, error) {
	return decodeRemoteResponse([]byte(extractJSONObject(content)))
}

func extractJSONObject(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}
	if end := matchingBrace(s, start); end != -1 {
		return s[start : end+1]
	}
	return s[start:]
}

func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
