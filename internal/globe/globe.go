package globe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

var (
	ErrNotReady     = errors.New("globe: renderer not ready")
	ErrUnknownPoint = errors.New("globe: point not plotted")
)

const loadFailedMessage = "Failed to load globe. Please try reloading."

type State struct {
	Status       Status         `json:"status"`
	Error        string         `json:"error,omitempty"`
	AutoRotating bool           `json:"auto_rotating"`
	SelectedID   *int           `json:"selected_id"`
	Points       []Point        `json:"points"`
	Scene        *SceneSnapshot `json:"scene,omitempty"`
}

// Globe owns one renderer for the lifetime of a results view. Mount is
// idempotent; Unmount detaches callbacks and releases the renderer.
type Globe struct {
	mu           sync.Mutex
	factory      Factory
	logger       *zap.Logger
	renderer     Renderer
	status       Status
	errMsg       string
	autoRotating bool
	points       []Point
	selected     *int
	width        int
	height       int
	onSelect     func(Point)
}

func New(factory Factory, logger *zap.Logger) *Globe {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Globe{
		factory:      factory,
		logger:       logger,
		status:       StatusLoading,
		autoRotating: true,
	}
}

// OnSelect registers the callback fired when a point is clicked on the globe.
func (g *Globe) OnSelect(fn func(Point)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSelect = fn
}

func (g *Globe) Mount(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.renderer != nil {
		return nil
	}

	g.status = StatusLoading
	g.errMsg = ""

	r, err := g.factory(ctx)
	if err != nil {
		g.status = StatusFailed
		g.errMsg = loadFailedMessage
		g.logger.Warn("globe renderer init failed", zap.Error(err))
		return fmt.Errorf("mount globe: %w", err)
	}

	g.renderer = r
	r.OnSelect(g.handleClick)
	r.SetAutoRotate(g.autoRotating)
	if g.width > 0 && g.height > 0 {
		r.Resize(g.width, g.height)
	}
	g.pushLocked()
	if p, ok := g.selectedPointLocked(); ok {
		r.Focus(p)
	}
	g.status = StatusReady
	return nil
}

// Reload retries a failed mount.
func (g *Globe) Reload(ctx context.Context) error {
	g.Unmount()
	return g.Mount(ctx)
}

func (g *Globe) Unmount() {
	g.mu.Lock()
	r := g.renderer
	g.renderer = nil
	if g.status == StatusReady {
		g.status = StatusLoading
	}
	g.mu.Unlock()

	if r == nil {
		return
	}
	r.OnSelect(nil)
	if err := r.Close(); err != nil {
		g.logger.Debug("globe renderer close", zap.Error(err))
	}
}

// SetPoints replaces the plotted points. A selection that no longer exists
// is dropped.
func (g *Globe) SetPoints(points []Point) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.points = append([]Point{}, points...)
	if _, ok := g.selectedPointLocked(); !ok {
		g.selected = nil
	}
	g.pushLocked()
}

// Select focuses the camera on a point and stops auto-rotation.
func (g *Globe) Select(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selectLocked(id)
}

func (g *Globe) selectLocked(id int) error {
	var (
		p     Point
		found bool
	)
	for _, candidate := range g.points {
		if candidate.ID == id {
			p, found = candidate, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %d", ErrUnknownPoint, id)
	}

	sel := id
	g.selected = &sel
	g.autoRotating = false
	if g.renderer != nil {
		g.renderer.SetAutoRotate(false)
		g.renderer.Focus(p)
	}
	g.pushLocked()
	return nil
}

// Click forwards a click to the renderer, which reports back via OnSelect.
func (g *Globe) Click(id int) error {
	g.mu.Lock()
	r := g.renderer
	g.mu.Unlock()

	if r == nil {
		return ErrNotReady
	}
	clicker, ok := r.(PointClicker)
	if !ok {
		return fmt.Errorf("globe: renderer does not accept clicks")
	}
	if !clicker.Click(id) {
		return fmt.Errorf("%w: %d", ErrUnknownPoint, id)
	}
	return nil
}

func (g *Globe) handleClick(p Point) {
	g.mu.Lock()
	if err := g.selectLocked(p.ID); err != nil {
		g.mu.Unlock()
		return
	}
	fn := g.onSelect
	g.mu.Unlock()

	if fn != nil {
		fn(p)
	}
}

// Reset returns to the wide view, clears the selection and resumes rotation.
func (g *Globe) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.selected = nil
	g.autoRotating = true
	if g.renderer != nil {
		g.renderer.Reset()
		g.renderer.SetAutoRotate(true)
	}
	g.pushLocked()
}

func (g *Globe) Resize(width, height int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	g.width, g.height = width, height
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}

// SelectedID reports the point the camera is focused on, if any.
func (g *Globe) SelectedID() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == nil {
		return 0, false
	}
	return *g.selected, true
}

func (g *Globe) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := State{
		Status:       g.status,
		Error:        g.errMsg,
		AutoRotating: g.autoRotating,
		Points:       g.decoratedLocked(),
	}
	if g.selected != nil {
		sel := *g.selected
		st.SelectedID = &sel
	}
	if s, ok := g.renderer.(Snapshotter); ok {
		snap := s.Snapshot()
		st.Scene = &snap
	}
	return st
}

func (g *Globe) selectedPointLocked() (Point, bool) {
	if g.selected == nil {
		return Point{}, false
	}
	for _, p := range g.points {
		if p.ID == *g.selected {
			return p, true
		}
	}
	return Point{}, false
}

func (g *Globe) decoratedLocked() []Point {
	out := make([]Point, len(g.points))
	for i, p := range g.points {
		p.Selected = g.selected != nil && p.ID == *g.selected
		out[i] = p
	}
	return out
}

func (g *Globe) pushLocked() {
	if g.renderer != nil {
		g.renderer.SetPoints(g.decoratedLocked())
	}
}
