package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"traveldna/internal/globe"
	"traveldna/internal/models/response_models"
	"traveldna/internal/quiz"
	"traveldna/internal/view"
	"traveldna/pkg/utils"
)

type QuizServiceInterface interface {
	Steps(loc quiz.Locale) *response_models.QuizStepsResponse
	OpenSession(ctx context.Context, loc quiz.Locale) (*response_models.QuizSessionResponse, error)
	GetSession(id string) (*response_models.QuizSessionResponse, error)
	Select(id, value string) (*response_models.QuizSessionResponse, error)
	Next(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)
	Back(id string) (*response_models.QuizSessionResponse, error)
	Restart(id string) (*response_models.QuizSessionResponse, error)
	CloseSession(id string) error
}

type QuizService struct {
	sessions    SessionStoreInterface
	recommender RecommenderInterface
	globes      globe.Factory
	logger      *zap.Logger
}

func NewQuizService(
	sessions SessionStoreInterface,
	recommender RecommenderInterface,
	globes globe.Factory,
	logger *zap.Logger,
) QuizServiceInterface {
	return &QuizService{
		sessions:    sessions,
		recommender: recommender,
		globes:      globes,
		logger:      logger,
	}
}

func (s *QuizService) Steps(loc quiz.Locale) *response_models.QuizStepsResponse {
	return &response_models.QuizStepsResponse{Locale: loc, Steps: quiz.Steps(loc)}
}

// OpenSession starts a quiz when the modal opens.
func (s *QuizService) OpenSession(ctx context.Context, loc quiz.Locale) (*response_models.QuizSessionResponse, error) {
	sess := s.sessions.Create(loc)
	s.logger.Info("quiz session opened", zap.String("session_id", sess.ID), zap.String("locale", string(loc)))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sessionResponse(sess), nil
}

func (s *QuizService) GetSession(id string) (*response_models.QuizSessionResponse, error) {
	return s.withSession(id, func(sess *QuizSession) error { return nil })
}

func (s *QuizService) Select(id, value string) (*response_models.QuizSessionResponse, error) {
	return s.withSession(id, func(sess *QuizSession) error {
		return sess.machine.Select(value)
	})
}

// Next advances the quiz. Submitting the last step opens the results view and
// starts loading recommendations in the background.
func (s *QuizService) Next(ctx context.Context, id string) (*response_models.QuizSessionResponse, error) {
	return s.withSession(id, func(sess *QuizSession) error {
		if err := sess.machine.Next(); err != nil {
			return err
		}
		if !sess.machine.Submitted() {
			return nil
		}

		dna, err := sess.machine.DNA()
		if err != nil {
			return err
		}
		sess.closeView()
		sess.view = view.New(dna, s.recommender, globe.New(s.globes, s.logger), s.logger.With(zap.String("session_id", sess.ID)))
		sess.view.Start(ctx)
		s.logger.Info("quiz submitted",
			zap.String("session_id", sess.ID),
			zap.String("personality", dna.Personality),
			zap.Strings("interests", dna.Interests))
		return nil
	})
}

func (s *QuizService) Back(id string) (*response_models.QuizSessionResponse, error) {
	return s.withSession(id, func(sess *QuizSession) error {
		sess.machine.Back()
		return nil
	})
}

func (s *QuizService) Restart(id string) (*response_models.QuizSessionResponse, error) {
	return s.withSession(id, func(sess *QuizSession) error {
		sess.closeView()
		sess.machine.Restart()
		return nil
	})
}

// CloseSession tears the session down when the modal closes.
func (s *QuizService) CloseSession(id string) error {
	if !s.sessions.Remove(id) {
		return utils.ErrSessionNotFound
	}
	s.logger.Info("quiz session closed", zap.String("session_id", id))
	return nil
}

func (s *QuizService) withSession(id string, fn func(sess *QuizSession) error) (*response_models.QuizSessionResponse, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := fn(sess); err != nil {
		return nil, quizError(err)
	}
	return sessionResponse(sess), nil
}

func quizError(err error) error {
	switch {
	case errors.Is(err, quiz.ErrStepIncomplete):
		return fmt.Errorf("%w: %v", utils.ErrStepIncomplete, err)
	case errors.Is(err, quiz.ErrUnknownOption):
		return fmt.Errorf("%w: %v", utils.ErrUnknownOption, err)
	case errors.Is(err, quiz.ErrSubmitted):
		return fmt.Errorf("%w: %v", utils.ErrQuizSubmitted, err)
	case errors.Is(err, quiz.ErrNotSubmitted):
		return fmt.Errorf("%w: %v", utils.ErrQuizNotSubmitted, err)
	}
	return err
}

func sessionResponse(sess *QuizSession) *response_models.QuizSessionResponse {
	m := sess.machine
	step := m.CurrentStep()
	current, total := m.Progress()

	answers := m.Answers()
	selected := []string{}
	for _, o := range step.Options {
		if m.IsSelected(o.Value) {
			selected = append(selected, o.Value)
		}
	}

	return &response_models.QuizSessionResponse{
		SessionID:   sess.ID,
		Locale:      sess.Locale,
		CurrentStep: current,
		TotalSteps:  total,
		Step:        step,
		Selected:    selected,
		Answers:     answers,
		CanAdvance:  m.CanAdvance(),
		IsLastStep:  m.IsLastStep(),
		Submitted:   m.Submitted(),
	}
}
