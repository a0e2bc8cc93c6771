// Package globe models the interactive globe: a narrow renderer contract, a
// headless scene the browser mirrors, and a component that owns its lifecycle.
package globe

import "context"

const (
	DefaultAltitude  = 2.0
	FocusAltitude    = 1.5
	TransitionMillis = 1500
	AutoRotateSpeed  = 0.5

	MarkerAltitude = 0.02
	RadiusSelected = 0.8
	RadiusDefault  = 0.5
	ColorSelected  = "#ef4444"
	ColorDefault   = "#3b82f6"
)

type Point struct {
	ID       int     `json:"id"`
	Key      string  `json:"key"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Duration string  `json:"duration"`
	Price    string  `json:"price"`
	Selected bool    `json:"selected"`
}

type PointOfView struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

var DefaultView = PointOfView{Lat: 0, Lng: 0, Altitude: DefaultAltitude}

// Renderer is everything the rest of the system may ask of a globe engine.
type Renderer interface {
	SetPoints(points []Point)
	Focus(p Point)
	Reset()
	OnSelect(fn func(Point))
	SetAutoRotate(on bool)
	Resize(width, height int)
	Close() error
}

// PointClicker is implemented by renderers that accept click input from outside.
type PointClicker interface {
	Click(id int) bool
}

// Snapshotter is implemented by renderers whose state can be mirrored by a client.
type Snapshotter interface {
	Snapshot() SceneSnapshot
}

type Factory func(ctx context.Context) (Renderer, error)

func SceneFactory() Factory {
	return func(ctx context.Context) (Renderer, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return NewScene(), nil
	}
}
