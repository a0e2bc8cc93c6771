// Package view holds the results screen shown after the quiz is submitted.
package view

import (
	"context"
	"errors"
	"sync"

	"traveldna/internal/globe"
	"traveldna/internal/quiz"
	"traveldna/internal/travel"

	"go.uber.org/zap"
)

var (
	ErrClosed          = errors.New("view: closed")
	ErrStale           = errors.New("view: superseded by a newer load")
	ErrPackageNotFound = errors.New("view: package not in current list")
)

// Recommender fetches packages for a submitted Travel DNA.
type Recommender interface {
	Recommend(ctx context.Context, dna quiz.TravelDNA) (*travel.RemoteResponse, error)
}

type State struct {
	Loading    bool                   `json:"loading"`
	Error      string                 `json:"error,omitempty"`
	Retryable  bool                   `json:"retryable"`
	Packages   []travel.TravelPackage `json:"packages"`
	SelectedID *int                   `json:"selected_id"`
	Selected   *travel.TravelPackage  `json:"selected,omitempty"`
}

// RecommendationView loads packages once per submission and keeps the card
// list and the globe on the same selection. Loads are bound to the view's
// lifetime; responses that arrive after Close or after a newer load are dropped.
type RecommendationView struct {
	// syncMu orders every change that is mirrored onto the globe, so the
	// camera and the highlighted marker always describe the same package.
	// Lock order: syncMu, then mu, then the globe's own lock.
	syncMu   sync.Mutex
	mu       sync.Mutex
	dna      quiz.TravelDNA
	rec      Recommender
	globe    *globe.Globe
	logger   *zap.Logger
	lifetime context.Context
	stop     context.CancelFunc
	inflight sync.WaitGroup

	gen        uint64
	loadCancel context.CancelFunc
	loading    bool
	err        error
	packages   []travel.TravelPackage
	selected   *int
	closed     bool
}

func New(dna quiz.TravelDNA, rec Recommender, g *globe.Globe, logger *zap.Logger) *RecommendationView {
	if logger == nil {
		logger = zap.NewNop()
	}
	lifetime, stop := context.WithCancel(context.Background())
	v := &RecommendationView{
		dna:      dna,
		rec:      rec,
		globe:    g,
		logger:   logger,
		lifetime: lifetime,
		stop:     stop,
		loading:  true,
	}
	g.OnSelect(v.onGlobeSelect)
	return v
}

// Start mounts the globe and begins the first load in the background. A globe
// failure is kept in the globe's own state and does not block the list.
func (v *RecommendationView) Start(ctx context.Context) {
	if err := v.globe.Mount(ctx); err != nil {
		v.logger.Warn("globe unavailable, showing list only", zap.Error(err))
	}
	v.loadAsync()
}

// Retry restarts the load in the background, cancelling any load in flight.
func (v *RecommendationView) Retry() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	v.loading = true
	v.err = nil
	v.mu.Unlock()

	v.loadAsync()
	return nil
}

func (v *RecommendationView) loadAsync() {
	v.inflight.Add(1)
	go func() {
		defer v.inflight.Done()
		_ = v.Load(context.Background())
	}()
}

// Wait blocks until background loads started so far have finished.
func (v *RecommendationView) Wait() {
	v.inflight.Wait()
}

// Load fetches and maps packages. ctx bounds the request in addition to the
// view lifetime.
func (v *RecommendationView) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.loadCancel != nil {
		v.loadCancel()
	}
	v.gen++
	gen := v.gen
	loadCtx, cancel := context.WithCancel(v.lifetime)
	v.loadCancel = cancel
	v.loading = true
	v.err = nil
	v.mu.Unlock()

	detach := context.AfterFunc(ctx, cancel)
	defer detach()
	defer cancel()

	resp, err := v.rec.Recommend(loadCtx, v.dna)

	v.syncMu.Lock()
	defer v.syncMu.Unlock()

	v.mu.Lock()
	if v.closed || gen != v.gen {
		v.mu.Unlock()
		v.logger.Debug("dropping late recommendation response", zap.Uint64("generation", gen))
		return ErrStale
	}
	v.loading = false
	v.loadCancel = nil
	if err != nil {
		v.err = err
		v.mu.Unlock()
		v.logger.Warn("recommendation load failed", zap.Error(err))
		return err
	}

	var remote []travel.RemotePackage
	if resp != nil {
		remote = resp.Packages
	}
	prev, hadSelection := v.selectedLocked()
	v.packages = travel.MapRemotePackages(remote, v.dna.Interests)
	v.selected = nil
	if hadSelection {
		for _, p := range v.packages {
			if p.Key == prev.Key {
				id := p.ID
				v.selected = &id
				break
			}
		}
	}
	points := pointsFor(v.packages)
	sel := v.selected
	v.mu.Unlock()

	v.logger.Info("recommendations loaded", zap.Int("count", len(points)))
	v.globe.SetPoints(points)
	if sel != nil {
		_ = v.globe.Select(*sel)
	} else {
		v.globe.Reset()
	}
	return nil
}

// Select marks a package as chosen from the card list and flies the globe to it.
func (v *RecommendationView) Select(id int) error {
	v.syncMu.Lock()
	defer v.syncMu.Unlock()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if !v.hasLocked(id) {
		v.mu.Unlock()
		return ErrPackageNotFound
	}
	sel := id
	v.selected = &sel
	v.mu.Unlock()

	if err := v.globe.Select(id); err != nil {
		v.logger.Debug("globe could not focus package", zap.Int("id", id), zap.Error(err))
	}
	return nil
}

// onGlobeSelect adopts a click on the globe unless the list or the globe's
// selection has moved on since the click was taken.
func (v *RecommendationView) onGlobeSelect(p globe.Point) {
	v.syncMu.Lock()
	defer v.syncMu.Unlock()

	if id, ok := v.globe.SelectedID(); !ok || id != p.ID {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	for _, pkg := range v.packages {
		if pkg.ID == p.ID && pkg.Key == p.Key {
			sel := p.ID
			v.selected = &sel
			return
		}
	}
}

// Reset clears the selection and returns the globe to its wide view.
func (v *RecommendationView) Reset() {
	v.syncMu.Lock()
	defer v.syncMu.Unlock()

	v.mu.Lock()
	v.selected = nil
	v.mu.Unlock()
	v.globe.Reset()
}

func (v *RecommendationView) Globe() *globe.Globe {
	return v.globe
}

// Close cancels any pending load and releases the globe. It is safe to call twice.
func (v *RecommendationView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()

	v.stop()
	v.globe.Unmount()
}

func (v *RecommendationView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := State{
		Loading:  v.loading,
		Packages: append([]travel.TravelPackage{}, v.packages...),
	}
	if v.err != nil {
		st.Error = "Failed to load recommendations. Please try again."
		st.Retryable = true
	}
	if p, ok := v.selectedLocked(); ok {
		id := p.ID
		st.SelectedID = &id
		st.Selected = &p
	}
	return st
}

func (v *RecommendationView) hasLocked(id int) bool {
	for _, p := range v.packages {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (v *RecommendationView) selectedLocked() (travel.TravelPackage, bool) {
	if v.selected == nil {
		return travel.TravelPackage{}, false
	}
	for _, p := range v.packages {
		if p.ID == *v.selected {
			return p, true
		}
	}
	return travel.TravelPackage{}, false
}

func pointsFor(pkgs []travel.TravelPackage) []globe.Point {
	points := make([]globe.Point, len(pkgs))
	for i, p := range pkgs {
		points[i] = globe.Point{
			ID:       p.ID,
			Key:      p.Key,
			Lat:      p.Lat,
			Lng:      p.Lng,
			Name:     p.Name,
			City:     p.City,
			Country:  p.Country,
			Duration: p.Duration,
			Price:    p.Price,
		}
	}
	return points
}
