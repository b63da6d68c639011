package board

import (
	"testing"

	"github.com/matzehuels/pinboard/pkg/geom"
)

type fixedRect struct{ r geom.Rect }

func (f fixedRect) BoundingRect() geom.Rect { return f.r }

func TestNewWorkspace(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantSurface bool
	}{
		{"Headless", Options{}, false},
		{"RenderedNoCapability", Options{Rendered: true}, false},
		{"CapabilityNotRendered", Options{AcceleratedSurface: true}, false},
		{"RenderedWithCapability", Options{Rendered: true, AcceleratedSurface: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorkspace(tt.opts)

			if w.CanvasRoot() == nil {
				t.Fatal("workspace must always own a canvas root")
			}
			if got := w.Surface() != nil; got != tt.wantSurface {
				t.Errorf("surface allocated = %v, want %v", got, tt.wantSurface)
			}
			if got := w.UseDragSurface(); got != tt.wantSurface {
				t.Errorf("UseDragSurface = %v, want %v", got, tt.wantSurface)
			}
		})
	}
}

func TestWorkspaceDefaultScale(t *testing.T) {
	w := NewWorkspace(Options{})
	if w.Scale() != 1 {
		t.Errorf("default scale = %v, want 1", w.Scale())
	}
}

func TestSetScale(t *testing.T) {
	w := NewWorkspace(Options{})

	if err := w.SetScale(2.5); err != nil {
		t.Fatalf("SetScale(2.5): %v", err)
	}
	if w.Scale() != 2.5 {
		t.Errorf("scale = %v, want 2.5", w.Scale())
	}

	if err := w.SetScale(0); err == nil {
		t.Error("SetScale(0) should fail")
	}
	if err := w.SetScale(-1); err == nil {
		t.Error("SetScale(-1) should fail")
	}
	if w.Scale() != 2.5 {
		t.Error("failed SetScale must not change the scale")
	}
}

func TestViewportRoundTrip(t *testing.T) {
	w := NewWorkspace(Options{Scale: 2})
	w.ScrollTo(geom.Point{X: 100, Y: -50})

	tests := []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 20},
		{X: -7.5, Y: 3.25},
	}

	for _, p := range tests {
		screen := w.WorkspaceToScreen(p)
		back := w.ScreenToWorkspace(screen)
		if !back.Near(p, 1e-9) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}

	// Spot check the mapping itself: screen = workspace*scale + scroll.
	got := w.WorkspaceToScreen(geom.Point{X: 10, Y: 20})
	if want := (geom.Point{X: 120, Y: -10}); got != want {
		t.Errorf("WorkspaceToScreen = %v, want %v", got, want)
	}
}

func TestResizeContents(t *testing.T) {
	w := NewWorkspace(Options{})

	a := fixedRect{geom.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}}
	b := fixedRect{geom.Rect{Left: 50, Top: -20, Right: 60, Bottom: 5}}
	w.RegisterBounds(a)
	w.RegisterBounds(b)

	w.ResizeContents()

	want := geom.Rect{Left: 0, Top: -20, Right: 60, Bottom: 10}
	if got := w.ContentBounds(); got != want {
		t.Errorf("ContentBounds = %+v, want %+v", got, want)
	}

	w.UnregisterBounds(b)
	w.ResizeContents()
	if got := w.ContentBounds(); got != a.r {
		t.Errorf("ContentBounds after unregister = %+v, want %+v", got, a.r)
	}
}

func TestResizeContentsEmpty(t *testing.T) {
	w := NewWorkspace(Options{})
	w.ResizeContents()
	if got := w.ContentBounds(); !got.Empty() {
		t.Errorf("ContentBounds = %+v, want empty", got)
	}
}

func TestRegisterBoundsNil(t *testing.T) {
	w := NewWorkspace(Options{})
	w.RegisterBounds(nil)
	w.ResizeContents() // must not panic
}
