package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"traveldna/internal/globe"
	"traveldna/internal/quiz"
	"traveldna/internal/travel"
	"traveldna/pkg/utils"
)

type stubRecommender struct {
	mu    sync.Mutex
	calls []quiz.TravelDNA
	resp  *travel.RemoteResponse
	err   error
}

func (s *stubRecommender) Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, dna)
	return s.resp, s.err
}

func stubFromBody(t *testing.T, body string) *stubRecommender {
	t.Helper()
	var resp travel.RemoteResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return &stubRecommender{resp: &resp}
}

func newTestServices(rec RecommenderInterface) (QuizServiceInterface, RecommendationServiceInterface, SessionStoreInterface) {
	logger := zap.NewNop()
	store := NewSessionStore(time.Minute, logger)
	return NewQuizService(store, rec, globe.SceneFactory(), logger),
		NewRecommendationService(store, logger),
		store
}

// completeQuiz answers every step with its first option and submits.
func completeQuiz(t *testing.T, svc QuizServiceInterface, id string) {
	t.Helper()
	for i := 0; i < quiz.StepCount(); i++ {
		sess, err := svc.GetSession(id)
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if _, err := svc.Select(id, sess.Step.Options[0].Value); err != nil {
			t.Fatalf("select on step %d: %v", i, err)
		}
		if _, err := svc.Next(context.Background(), id); err != nil {
			t.Fatalf("next on step %d: %v", i, err)
		}
	}
}

func waitForLoad(t *testing.T, rec RecommendationServiceInterface, id string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st, err := rec.Recommendations(id)
		if err != nil {
			t.Fatalf("recommendations: %v", err)
		}
		if !st.Loading {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("recommendations did not finish loading")
}

func TestQuizService_OpenSession(t *testing.T) {
	svc, _, store := newTestServices(&stubRecommender{})

	sess, err := svc.OpenSession(context.Background(), quiz.English)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sess.SessionID == "" || sess.CurrentStep != 1 || sess.TotalSteps != quiz.StepCount() {
		t.Errorf("unexpected session %+v", sess)
	}
	if sess.Step.Field != quiz.FieldPersonality || sess.CanAdvance || sess.Submitted {
		t.Errorf("expected fresh session on personality step, got %+v", sess)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 stored session, got %d", store.Len())
	}
}

func TestQuizService_UnknownSession(t *testing.T) {
	svc, rec, _ := newTestServices(&stubRecommender{})

	if _, err := svc.Select("missing", "culture"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if err := svc.CloseSession("missing"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := rec.Recommendations("missing"); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestQuizService_StepRules(t *testing.T) {
	svc, rec, _ := newTestServices(&stubRecommender{})
	sess, _ := svc.OpenSession(context.Background(), quiz.Arabic)
	id := sess.SessionID

	if _, err := svc.Next(context.Background(), id); !errors.Is(err, utils.ErrStepIncomplete) {
		t.Errorf("expected ErrStepIncomplete, got %v", err)
	}
	if _, err := svc.Select(id, "skydiving"); !errors.Is(err, utils.ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}

	got, err := svc.Select(id, "luxury")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.CanAdvance || len(got.Selected) != 1 || got.Selected[0] != "luxury" {
		t.Errorf("expected luxury selected, got %+v", got)
	}

	got, _ = svc.Next(context.Background(), id)
	if got.CurrentStep != 2 || got.Step.Field != quiz.FieldPace {
		t.Errorf("expected pace step, got %+v", got)
	}
	got, _ = svc.Back(id)
	if got.CurrentStep != 1 || got.Answers.Personality != "luxury" {
		t.Errorf("expected to return to personality with answer kept, got %+v", got)
	}

	if _, err := rec.Recommendations(id); !errors.Is(err, utils.ErrQuizNotSubmitted) {
		t.Errorf("expected ErrQuizNotSubmitted before submission, got %v", err)
	}
}

func TestQuizService_SubmitLoadsRecommendations(t *testing.T) {
	stub := stubFromBody(t, twoPackagesBody)
	svc, rec, _ := newTestServices(stub)
	sess, _ := svc.OpenSession(context.Background(), quiz.English)
	id := sess.SessionID

	completeQuiz(t, svc, id)
	waitForLoad(t, rec, id)

	got, _ := svc.GetSession(id)
	if !got.Submitted {
		t.Fatal("expected session to be submitted")
	}
	if _, err := svc.Next(context.Background(), id); !errors.Is(err, utils.ErrQuizSubmitted) {
		t.Errorf("expected ErrQuizSubmitted, got %v", err)
	}

	st, _ := rec.Recommendations(id)
	if len(st.Packages) != 2 || st.Error != "" {
		t.Fatalf("expected 2 packages, got %+v", st)
	}
	if st.Packages[1].Price != travel.PriceUnavailable || st.Packages[1].Duration != travel.DurationUnknown {
		t.Errorf("expected fallbacks for missing fields, got %+v", st.Packages[1])
	}

	stub.mu.Lock()
	if len(stub.calls) != 1 || stub.calls[0].Personality != "culture" {
		t.Errorf("expected one call with the submitted answers, got %+v", stub.calls)
	}
	stub.mu.Unlock()

	gs, err := rec.Globe(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Status != globe.StatusReady || len(gs.Points) != 2 {
		t.Errorf("expected ready globe with 2 points, got %+v", gs)
	}
}

func TestRecommendationService_SelectionFlow(t *testing.T) {
	svc, rec, _ := newTestServices(stubFromBody(t, twoPackagesBody))
	sess, _ := svc.OpenSession(context.Background(), quiz.English)
	id := sess.SessionID
	completeQuiz(t, svc, id)
	waitForLoad(t, rec, id)

	st, err := rec.SelectPackage(id, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Selected == nil || st.Selected.City != "Japan" {
		t.Errorf("expected Kyoto selected, got %+v", st.Selected)
	}
	if _, err := rec.SelectPackage(id, 5); !errors.Is(err, utils.ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}

	gs, err := rec.ClickGlobe(id, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.SelectedID == nil || *gs.SelectedID != 0 || gs.AutoRotating {
		t.Errorf("expected globe click to select 0 and stop rotation, got %+v", gs)
	}
	if st, _ := rec.Recommendations(id); st.SelectedID == nil || *st.SelectedID != 0 {
		t.Errorf("expected card list to follow globe click, got %v", st.SelectedID)
	}
	if _, err := rec.ClickGlobe(id, 9); !errors.Is(err, utils.ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}

	st, _ = rec.ResetSelection(id)
	if st.SelectedID != nil {
		t.Error("expected selection cleared")
	}

	gs, err = rec.ResizeGlobe(id, 1024, 768)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gs.Scene == nil || gs.Scene.Width != 1024 || gs.Scene.Height != 768 {
		t.Errorf("expected resized scene, got %+v", gs.Scene)
	}
	if _, err := rec.ResizeGlobe(id, 0, 10); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendationService_RetryAfterFailure(t *testing.T) {
	stub := &stubRecommender{err: utils.ErrPackageGenerationFailed}
	svc, rec, _ := newTestServices(stub)
	sess, _ := svc.OpenSession(context.Background(), quiz.English)
	id := sess.SessionID
	completeQuiz(t, svc, id)
	waitForLoad(t, rec, id)

	st, _ := rec.Recommendations(id)
	if !st.Retryable || st.Error == "" {
		t.Fatalf("expected retryable error, got %+v", st)
	}

	fixed := stubFromBody(t, twoPackagesBody)
	stub.mu.Lock()
	stub.err = nil
	stub.resp = fixed.resp
	stub.mu.Unlock()

	if _, err := rec.Retry(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForLoad(t, rec, id)

	st, _ = rec.Recommendations(id)
	if st.Error != "" || len(st.Packages) != 2 {
		t.Errorf("expected packages after retry, got %+v", st)
	}
}

func TestQuizService_RestartAndCloseTearDownView(t *testing.T) {
	svc, rec, store := newTestServices(stubFromBody(t, twoPackagesBody))
	sess, _ := svc.OpenSession(context.Background(), quiz.English)
	id := sess.SessionID
	completeQuiz(t, svc, id)
	waitForLoad(t, rec, id)

	got, err := svc.Restart(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Submitted || got.CurrentStep != 1 || got.Answers.Personality != "" {
		t.Errorf("expected a fresh quiz after restart, got %+v", got)
	}
	if _, err := rec.Recommendations(id); !errors.Is(err, utils.ErrQuizNotSubmitted) {
		t.Errorf("expected results view to be gone, got %v", err)
	}

	if err := svc.CloseSession(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("expected no sessions after close, got %d", store.Len())
	}
	if _, err := svc.GetSession(id); !errors.Is(err, utils.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_JanitorEvictsExpired(t *testing.T) {
	store := NewSessionStore(10*time.Millisecond, zap.NewNop())
	store.Create(quiz.English)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.RunJanitor(ctx, 5*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for store.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.Len() != 0 {
		t.Errorf("expected expired session to be swept, got %d", store.Len())
	}
}

func TestSessionStore_JanitorRejectsZeroInterval(t *testing.T) {
	store := NewSessionStore(time.Minute, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.RunJanitor(context.Background(), 0)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected janitor to return immediately for a zero interval")
	}
}

func TestSessionStore_CloseAll(t *testing.T) {
	store := NewSessionStore(time.Minute, zap.NewNop())
	store.Create(quiz.English)
	store.Create(quiz.Arabic)

	store.CloseAll()

	if store.Len() != 0 {
		t.Errorf("expected all sessions closed, got %d", store.Len())
	}
}
