package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"traveldna/internal/quiz"
	"traveldna/internal/view"
	mem "traveldna/pkg/memcache"
)

// QuizSession is one open quiz modal. Its mutex guards the machine and the
// results view created on submission.
type QuizSession struct {
	mu      sync.Mutex
	ID      string
	Locale  quiz.Locale
	machine *quiz.Machine
	view    *view.RecommendationView
}

// closeView tears down the results view. The caller holds s.mu.
func (s *QuizSession) closeView() {
	if s.view != nil {
		s.view.Close()
		s.view = nil
	}
}

type SessionStoreInterface interface {
	Create(loc quiz.Locale) *QuizSession
	Get(id string) (*QuizSession, bool)
	Remove(id string) bool
	Len() int
	RunJanitor(ctx context.Context, every time.Duration)
	CloseAll()
}

// SessionStore keeps sessions in a sliding TTL store. Expired sessions have
// their views closed by the janitor.
type SessionStore struct {
	store  *mem.TTLStore[*QuizSession]
	logger *zap.Logger
}

func NewSessionStore(ttl time.Duration, logger *zap.Logger) SessionStoreInterface {
	s := &SessionStore{logger: logger}
	s.store = mem.NewTTLStore(ttl, func(id string, sess *QuizSession) {
		logger.Info("quiz session expired", zap.String("session_id", id))
		sess.mu.Lock()
		sess.closeView()
		sess.mu.Unlock()
	})
	return s
}

func (s *SessionStore) Create(loc quiz.Locale) *QuizSession {
	sess := &QuizSession{
		ID:      uuid.NewString(),
		Locale:  loc,
		machine: quiz.NewMachineWithSteps(quiz.Steps(loc)),
	}
	s.store.Set(sess.ID, sess)
	return sess
}

func (s *SessionStore) Get(id string) (*QuizSession, bool) {
	return s.store.Get(id)
}

func (s *SessionStore) Remove(id string) bool {
	sess, ok := s.store.Delete(id)
	if !ok {
		return false
	}
	sess.mu.Lock()
	sess.closeView()
	sess.mu.Unlock()
	return true
}

func (s *SessionStore) Len() int {
	return s.store.Len()
}

// RunJanitor sweeps expired sessions until ctx is done.
func (s *SessionStore) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		s.logger.Error("quiz session janitor not started", zap.Duration("interval", every))
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.store.Sweep(now); n > 0 {
				s.logger.Debug("swept quiz sessions", zap.Int("count", n))
			}
		}
	}
}

func (s *SessionStore) CloseAll() {
	var ids []string
	s.store.Range(func(id string, _ *QuizSession) {
		ids = append(ids, id)
	})
	for _, id := range ids {
		s.Remove(id)
	}
}
