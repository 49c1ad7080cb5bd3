package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 100, 50)

	if cam.X != 100 || cam.Y != 50 {
		t.Errorf("expected camera at (100, 50), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 100, 50)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(100, 50)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, -30, 200)
	cam.SetZoom(2)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestFollowConverges(t *testing.T) {
	cam := New(1280, 720, 0, 0)

	for i := 0; i < 200; i++ {
		cam.Follow(500, -300, 0.1)
	}

	if math.Abs(float64(cam.X-500)) > 0.1 || math.Abs(float64(cam.Y+300)) > 0.1 {
		t.Errorf("expected camera near (500, -300), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestFollowSnapAtFullSmoothing(t *testing.T) {
	cam := New(1280, 720, 0, 0)

	cam.Follow(42, 24, 1)

	if cam.X != 42 || cam.Y != 24 {
		t.Errorf("expected immediate snap to (42, 24), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 0, 0)

	cam.SetZoom(0.01) // Below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 0, 0)

	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2000, 2000, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(-680, 0, 100) {
		t.Error("edge point with large radius should be visible")
	}
}
