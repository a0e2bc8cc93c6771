package globe

import (
	"errors"
	"sync"
)

var ErrSceneClosed = errors.New("globe: scene closed")

type Marker struct {
	Point
	Radius   float64 `json:"radius"`
	Color    string  `json:"color"`
	Altitude float64 `json:"altitude"`
}

type SceneSnapshot struct {
	Markers         []Marker    `json:"markers"`
	PointOfView     PointOfView `json:"point_of_view"`
	TransitionMs    int         `json:"transition_ms"`
	AutoRotate      bool        `json:"auto_rotate"`
	AutoRotateSpeed float64     `json:"auto_rotate_speed"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
}

// Scene is a headless Renderer. The browser applies its snapshot to globe.gl.
type Scene struct {
	mu         sync.Mutex
	markers    []Marker
	pov        PointOfView
	transition int
	autoRotate bool
	width      int
	height     int
	onSelect   func(Point)
	closed     bool
}

func NewScene() *Scene {
	return &Scene{
		pov:    DefaultView,
		width:  800,
		height: 600,
	}
}

func (s *Scene) SetPoints(points []Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	markers := make([]Marker, 0, len(points))
	for _, p := range points {
		m := Marker{Point: p, Radius: RadiusDefault, Color: ColorDefault, Altitude: MarkerAltitude}
		if p.Selected {
			m.Radius = RadiusSelected
			m.Color = ColorSelected
		}
		markers = append(markers, m)
	}
	s.markers = markers
}

func (s *Scene) Focus(p Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pov = PointOfView{Lat: p.Lat, Lng: p.Lng, Altitude: FocusAltitude}
	s.transition = TransitionMillis
}

func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pov = DefaultView
	s.transition = TransitionMillis
}

func (s *Scene) OnSelect(fn func(Point)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSelect = fn
}

func (s *Scene) SetAutoRotate(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRotate = on
}

func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

func (s *Scene) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSceneClosed
	}
	s.closed = true
	s.onSelect = nil
	s.markers = nil
	return nil
}

// Click dispatches a point click to the selection callback. It reports false
// when the point is unknown, nobody listens, or the scene is closed.
func (s *Scene) Click(id int) bool {
	s.mu.Lock()
	if s.closed || s.onSelect == nil {
		s.mu.Unlock()
		return false
	}
	var (
		hit   Point
		found bool
	)
	for _, m := range s.markers {
		if m.ID == id {
			hit, found = m.Point, true
			break
		}
	}
	fn := s.onSelect
	s.mu.Unlock()

	if !found {
		return false
	}
	fn(hit)
	return true
}

func (s *Scene) Snapshot() SceneSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	speed := 0.0
	if s.autoRotate {
		speed = AutoRotateSpeed
	}
	return SceneSnapshot{
		Markers:         append([]Marker{}, s.markers...),
		PointOfView:     s.pov,
		TransitionMs:    s.transition,
		AutoRotate:      s.autoRotate,
		AutoRotateSpeed: speed,
		Width:           s.width,
		Height:          s.height,
	}
}
