package terrain

import (
	"math"
	"testing"

	"github.com/automoto/skater/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const levelHeight = 200

// newPark builds a floor at z=40, a ramp rising to z=80 over x 100..140 and a
// box with its top at z=100 over x 300..340.
func newPark() *Tracer {
	space := resolv.NewSpace(640, levelHeight, 16, 16)
	space.Add(
		NewSolid(0, 160, 640, 40),
		NewRamp(100, 120, 40, 40, tags.Slope45UpRight),
		NewSolid(300, 100, 40, 60),
		NewDeadZone(400, 190, 40, 10),
	)
	return NewTracer(space, levelHeight)
}

func TestLineTrace(t *testing.T) {
	tr := newPark()

	tests := []struct {
		name       string
		start, end mgl64.Vec3
		hit        bool
		point      mgl64.Vec3
	}{
		{"floor", mgl64.Vec3{50, 0, 90}, mgl64.Vec3{50, 0, -10}, true, mgl64.Vec3{50, 0, 40}},
		{"ramp above floor", mgl64.Vec3{120, 0, 110}, mgl64.Vec3{120, 0, 10}, true, mgl64.Vec3{120, 0, 60}},
		{"ramp foot", mgl64.Vec3{100, 0, 90}, mgl64.Vec3{100, 0, -10}, true, mgl64.Vec3{100, 0, 40}},
		{"box top", mgl64.Vec3{320, 0, 150}, mgl64.Vec3{320, 0, 50}, true, mgl64.Vec3{320, 0, 100}},
		{"lateral offset ignored", mgl64.Vec3{50, 25, 90}, mgl64.Vec3{50, 25, -10}, true, mgl64.Vec3{50, 25, 40}},
		{"outside level", mgl64.Vec3{700, 0, 90}, mgl64.Vec3{700, 0, -10}, false, mgl64.Vec3{}},
		{"segment too short", mgl64.Vec3{50, 0, 100}, mgl64.Vec3{50, 0, 60}, false, mgl64.Vec3{}},
		{"dead zone is not ground", mgl64.Vec3{420, 0, 30}, mgl64.Vec3{420, 0, 0}, false, mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, hit := tr.LineTrace(tt.start, tt.end)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if !point.ApproxEqualThreshold(tt.point, 1e-9) {
				t.Fatalf("point = %v, want %v", point, tt.point)
			}
		})
	}
}

func TestLineTraceSlantedSegment(t *testing.T) {
	tr := newPark()
	point, hit := tr.LineTrace(mgl64.Vec3{40, 0, 60}, mgl64.Vec3{60, 0, 20})
	if !hit {
		t.Fatalf("expected a hit")
	}
	if !point.ApproxEqualThreshold(mgl64.Vec3{50, 0, 40}, 1e-9) {
		t.Fatalf("point = %v", point)
	}
}

func TestGroundBelow(t *testing.T) {
	tr := newPark()

	tests := []struct {
		name   string
		x, z   float64
		ok     bool
		ground float64
	}{
		{"standing on box", 320, 150, true, 100},
		{"beside box top", 320, 90, true, 40},
		{"mid ramp", 130, 200, true, 70},
		{"below floor", 50, 10, false, 0},
		{"past the edge", 650, 100, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground, ok := tr.GroundBelow(tt.x, tt.z)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && math.Abs(ground-tt.ground) > 1e-9 {
				t.Fatalf("ground = %v, want %v", ground, tt.ground)
			}
		})
	}
}

func TestBlocked(t *testing.T) {
	tr := newPark()

	if tr.Blocked(50, 40, 8, 32) {
		t.Fatalf("resting on the floor should not block")
	}
	if tr.Blocked(290, 40, 8, 32) {
		t.Fatalf("body beside the box should not block")
	}
	if !tr.Blocked(305, 40, 8, 32) {
		t.Fatalf("body inside the box should block")
	}
	if tr.Blocked(120, 40, 8, 32) {
		t.Fatalf("ramps never block")
	}
	if tr.Blocked(320, 100, 8, 32) {
		t.Fatalf("standing on top of the box should not block")
	}

	if n := len(tr.Space().Objects()); n != 4 {
		t.Fatalf("probe left in space: %d objects", n)
	}
}

func TestCoordinateMapping(t *testing.T) {
	tr := newPark()
	x, y := tr.ToSpace(mgl64.Vec3{12, 3, 40})
	if x != 12 || y != 160 {
		t.Fatalf("ToSpace = %v,%v", x, y)
	}
	if p := tr.ToWorld(12, 160); p != (mgl64.Vec3{12, 0, 40}) {
		t.Fatalf("ToWorld = %v", p)
	}
}

func TestNilSpace(t *testing.T) {
	tr := NewTracer(nil, levelHeight)
	if _, hit := tr.LineTrace(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -10}); hit {
		t.Fatalf("nil space should miss")
	}
	if tr.Blocked(0, 0, 8, 8) {
		t.Fatalf("nil space should not block")
	}
}
