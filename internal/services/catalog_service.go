package services

import (
	"context"

	"go.uber.org/zap"
	"traveldna/internal/models/response_models"
	"traveldna/internal/repositories"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

type CatalogServiceInterface interface {
	Seed(ctx context.Context) error
	ScoredPackages(ctx context.Context, prefs travel.Preferences) ([]travel.TravelPackage, error)
	SamplePackages(ctx context.Context, prefs travel.Preferences) (*response_models.SamplePackagesResponse, error)
}

type CatalogService struct {
	repo   repositories.CatalogRepositoryInterface
	logger *zap.Logger
}

func NewCatalogService(repo repositories.CatalogRepositoryInterface, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Seed(ctx context.Context) error {
	if err := s.repo.SeedPackages(ctx, travel.SamplePackages()); err != nil {
		s.logger.Error("seed sample catalog", zap.String("source", s.repo.Source()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ScoredPackages(ctx context.Context, prefs travel.Preferences) ([]travel.TravelPackage, error) {
	pkgs, err := s.repo.ListPackages(ctx)
	if err != nil {
		s.logger.Error("list sample catalog", zap.String("source", s.repo.Source()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return travel.ScorePackages(pkgs, prefs), nil
}

func (s *CatalogService) SamplePackages(ctx context.Context, prefs travel.Preferences) (*response_models.SamplePackagesResponse, error) {
	pkgs, err := s.ScoredPackages(ctx, prefs)
	if err != nil {
		return nil, err
	}
	return &response_models.SamplePackagesResponse{
		Source:   s.repo.Source(),
		Packages: pkgs,
	}, nil
}
