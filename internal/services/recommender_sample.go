package services

import (
	"context"
	"fmt"

	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

// SampleRecommender answers from the local catalog for offline development.
type SampleRecommender struct {
	catalog CatalogServiceInterface
}

func NewSampleRecommender(catalog CatalogServiceInterface) RecommenderInterface {
	return &SampleRecommender{catalog: catalog}
}

func (r *SampleRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	pkgs, err := r.catalog.ScoredPackages(ctx, PreferencesFrom(dna))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrPackageGenerationFailed, err)
	}

	resp := &travel.RemoteResponse{Packages: make([]travel.RemotePackage, 0, len(pkgs))}
	for _, p := range pkgs {
		resp.Packages = append(resp.Packages, p.Remote())
	}
	return resp, nil
}

func PreferencesFrom(dna quiz.TravelDNA) travel.Preferences {
	return travel.Preferences{
		Personality: dna.Personality,
		Pace:        dna.Pace,
		BudgetLevel: dna.BudgetLevel,
		TravelWith:  dna.TravelWith,
		DaysRange:   dna.DaysRange,
		Interests:   append([]string{}, dna.Interests...),
	}
}
