package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"traveldna/internal/globe"
	"traveldna/internal/view"
	"traveldna/pkg/utils"
)

// RecommendationServiceInterface exposes the results view and its globe for a
// submitted quiz session.
type RecommendationServiceInterface interface {
	Recommendations(id string) (*view.State, error)
	Retry(id string) (*view.State, error)
	SelectPackage(id string, packageID int) (*view.State, error)
	ResetSelection(id string) (*view.State, error)

	Globe(id string) (*globe.State, error)
	ClickGlobe(id string, packageID int) (*globe.State, error)
	ResizeGlobe(id string, width, height int) (*globe.State, error)
	ReloadGlobe(ctx context.Context, id string) (*globe.State, error)
}

type RecommendationService struct {
	sessions SessionStoreInterface
	logger   *zap.Logger
}

func NewRecommendationService(sessions SessionStoreInterface, logger *zap.Logger) RecommendationServiceInterface {
	return &RecommendationService{sessions: sessions, logger: logger}
}

func (s *RecommendationService) Recommendations(id string) (*view.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	st := v.State()
	return &st, nil
}

func (s *RecommendationService) Retry(id string) (*view.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	if err := v.Retry(); err != nil {
		return nil, viewError(err)
	}
	st := v.State()
	return &st, nil
}

func (s *RecommendationService) SelectPackage(id string, packageID int) (*view.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	if err := v.Select(packageID); err != nil {
		return nil, viewError(err)
	}
	st := v.State()
	return &st, nil
}

func (s *RecommendationService) ResetSelection(id string) (*view.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	v.Reset()
	st := v.State()
	return &st, nil
}

func (s *RecommendationService) Globe(id string) (*globe.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	st := v.Globe().State()
	return &st, nil
}

// ClickGlobe feeds a marker click from the browser through the renderer, the
// same path a native click takes.
func (s *RecommendationService) ClickGlobe(id string, packageID int) (*globe.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	if err := v.Globe().Click(packageID); err != nil {
		return nil, globeError(err)
	}
	st := v.Globe().State()
	return &st, nil
}

func (s *RecommendationService) ResizeGlobe(id string, width, height int) (*globe.State, error) {
	if width <= 0 || height <= 0 {
		return nil, utils.ErrInvalidInput
	}
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	v.Globe().Resize(width, height)
	st := v.Globe().State()
	return &st, nil
}

func (s *RecommendationService) ReloadGlobe(ctx context.Context, id string) (*globe.State, error) {
	v, err := s.viewFor(id)
	if err != nil {
		return nil, err
	}
	if err := v.Globe().Reload(ctx); err != nil {
		s.logger.Warn("globe reload failed", zap.String("session_id", id), zap.Error(err))
		return nil, globeError(err)
	}
	st := v.Globe().State()
	return &st, nil
}

func (s *RecommendationService) viewFor(id string) (*view.RecommendationView, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.view == nil {
		return nil, utils.ErrQuizNotSubmitted
	}
	return sess.view, nil
}

func viewError(err error) error {
	switch {
	case errors.Is(err, view.ErrPackageNotFound):
		return fmt.Errorf("%w: %v", utils.ErrPackageNotFound, err)
	case errors.Is(err, view.ErrClosed):
		return fmt.Errorf("%w: %v", utils.ErrSessionNotFound, err)
	}
	return err
}

func globeError(err error) error {
	switch {
	case errors.Is(err, globe.ErrUnknownPoint):
		return fmt.Errorf("%w: %v", utils.ErrPackageNotFound, err)
	case errors.Is(err, globe.ErrNotReady):
		return fmt.Errorf("%w: %v", utils.ErrRendererUnavailable, err)
	}
	return fmt.Errorf("%w: %v", utils.ErrRendererUnavailable, err)
}
