package locomotion

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const frame = 1.0 / 60.0

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.10f, want %.10f (tol=%.10f)", field, got, want, tol)
	}
}

func checkFinite(t *testing.T, r gamemath.Rotator) {
	t.Helper()
	for _, v := range []float64{r.Roll, r.Pitch, r.Yaw} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("rotation not finite: %+v", r)
		}
	}
}

func TestSmoothSpeedSnapsAtEquilibrium(t *testing.T) {
	tu := DefaultTuning()
	tests := []struct {
		name            string
		current, target float64
		expect          float64
	}{
		{"exact match", 0.5, 0.5, 0.5},
		{"inside tolerance above", 0.5, 0.5 + 5e-7, 0.5 + 5e-7},
		{"inside tolerance below", 0.5, 0.5 - 5e-7, 0.5 - 5e-7},
		{"tiny negative target clamps to zero", 0, -5e-7, 0},
		{"full speed", 1, 1, 1},
	}

	for _, tt := range tests {
		for _, dt := range []float64{0, frame, 0.5, 100} {
			got := SmoothSpeed(tt.current, tt.target, dt, tu)
			if got != tt.expect {
				t.Fatalf("%s dt=%v: got %v, want %v", tt.name, dt, got, tt.expect)
			}
		}
	}
}

func TestSmoothSpeedStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New(Host{}, DefaultTuning())

	for i := 0; i < 5000; i++ {
		steer := mgl64.Vec2{rng.Float64()*6 - 3, rng.Float64()*6 - 3}
		dt := rng.Float64() * 0.5
		out := c.Update(dt, Frame{Steering: steer})
		if out.SmoothedSpeed < 0 || out.SmoothedSpeed > 1 {
			t.Fatalf("tick %d: speed %v out of [0,1]", i, out.SmoothedSpeed)
		}
	}
}

func TestBrakingNeverGoesNegative(t *testing.T) {
	c := New(Host{}, DefaultTuning())
	for i := 0; i < 120; i++ {
		c.Update(frame, Frame{Steering: mgl64.Vec2{0, 1}})
	}
	if c.State().SmoothedSpeed <= 0 {
		t.Fatalf("expected some speed after pushing")
	}

	for i := 0; i < 2000; i++ {
		out := c.Update(frame, Frame{Steering: mgl64.Vec2{0, -1}})
		if out.SmoothedSpeed < 0 {
			t.Fatalf("tick %d: speed went negative: %v", i, out.SmoothedSpeed)
		}
	}
	approxEqual(t, c.State().SmoothedSpeed, 0, 0, "speed after long brake")
}

func TestHeldThrottleConverges(t *testing.T) {
	rec := newRecorder()
	c := New(rec.host(), DefaultTuning())

	for i := 0; i < 120; i++ {
		out := c.Update(frame, Frame{Steering: mgl64.Vec2{0, 1}})
		if out.StrafeInput != 0 {
			t.Fatalf("tick %d: strafe = %v, want 0", i, out.StrafeInput)
		}
	}
	// Exponential smoothing at rate 1 closes 1-e^-2 of the gap in two seconds.
	approxEqual(t, c.State().SmoothedSpeed, 1-math.Exp(-2), 1e-9, "speed after 2s")

	for i := 0; i < 600; i++ {
		c.Update(frame, Frame{Steering: mgl64.Vec2{0, 1}})
	}
	if got := c.State().SmoothedSpeed; got != 1 {
		t.Fatalf("speed after 12s = %v, want exactly 1", got)
	}
}

// slopeTracer reports the front wheel on a higher ground point than the back.
func slopeTracer(front, back mgl64.Vec3) func(start, end mgl64.Vec3) (mgl64.Vec3, bool) {
	return func(start, _ mgl64.Vec3) (mgl64.Vec3, bool) {
		if start.X() > 0 {
			return front, true
		}
		return back, true
	}
}

func TestAlignmentOnlyTouchesPitch(t *testing.T) {
	rec := newRecorder()
	rec.tracePoint = slopeTracer(mgl64.Vec3{30, 0, 10}, mgl64.Vec3{-30, 0, -10})
	c := New(rec.host(), DefaultTuning())
	c.SetBoard(gamemath.Rotator{Roll: 5, Yaw: 30})

	target := mgl64.RadToDeg(math.Atan2(20, 60))
	prevGap := math.Abs(target - c.State().Board.Pitch)

	for i := 0; i < 60; i++ {
		out := c.Tick(frame)
		approxEqual(t, out.Board.Roll, 5, 0, "roll")
		approxEqual(t, out.Board.Yaw, 30, 0, "yaw")

		gap := math.Abs(target - out.Board.Pitch)
		if gap > prevGap {
			t.Fatalf("tick %d: pitch moved away from target (%v > %v)", i, gap, prevGap)
		}
		prevGap = gap
	}

	out := c.Tick(1000)
	approxEqual(t, out.Board.Pitch, target, 1e-9, "pitch after huge dt")
	approxEqual(t, out.Board.Roll, 5, 0, "roll")
	approxEqual(t, out.Board.Yaw, 30, 0, "yaw")
}

func TestAlignPitchConvergesWithLargeDt(t *testing.T) {
	front := mgl64.Vec3{10, 0, 10}
	back := mgl64.Vec3{}
	current := gamemath.Rotator{Roll: -3, Pitch: -20, Yaw: 45}

	prev := math.Abs(45 - current.Pitch)
	for _, dt := range []float64{0.01, 0.1, 0.5, 1, 10} {
		got := AlignPitch(current, front, back, dt, 10)
		gap := math.Abs(45 - got.Pitch)
		if gap > prev {
			t.Fatalf("dt=%v: gap %v larger than %v", dt, gap, prev)
		}
		prev = gap
		approxEqual(t, got.Roll, -3, 0, "roll")
		approxEqual(t, got.Yaw, 45, 0, "yaw")
	}
	approxEqual(t, prev, 0, 1e-9, "final gap")
}

func TestBothProbesMiss(t *testing.T) {
	rec := newRecorder()
	c := New(rec.host(), DefaultTuning())
	c.SetBoard(gamemath.Rotator{Pitch: 20, Yaw: 10})

	var out Outputs
	for i := 0; i < 300; i++ {
		out = c.Tick(frame)
		checkFinite(t, out.Board)
		if out.FrontProbe.Hit() || out.BackProbe.Hit() {
			t.Fatalf("probes should miss")
		}
		if out.FrontProbe.Point != (mgl64.Vec3{}) {
			t.Fatalf("miss point = %v, want zero vector", out.FrontProbe.Point)
		}
	}
	// Looking from origin to origin yields a level target.
	approxEqual(t, out.Board.Pitch, 0, 1e-6, "pitch")
	approxEqual(t, out.Board.Yaw, 10, 0, "yaw")
}

func TestNilHostDoesNotPanic(t *testing.T) {
	c := New(Host{}, DefaultTuning())
	c.Jump()
	out := c.Update(frame, Frame{Steering: mgl64.Vec2{0.5, 1}, JumpRequested: true})
	checkFinite(t, out.Board)
	if out.Jumping {
		t.Fatalf("no airborne query should clear the jump")
	}
}

func TestProbeStatus(t *testing.T) {
	tests := []struct {
		name   string
		point  mgl64.Vec3
		hit    bool
		expect ProbeStatus
	}{
		{"miss", mgl64.Vec3{}, false, ProbeMiss},
		{"hit", mgl64.Vec3{5, 0, 2}, true, ProbeHit},
		{"hit at origin", mgl64.Vec3{}, true, ProbeHitAtOrigin},
		{"miss ignores point", mgl64.Vec3{1, 2, 3}, false, ProbeMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			rec.tracePoint = func(_, _ mgl64.Vec3) (mgl64.Vec3, bool) { return tt.point, tt.hit }
			got := Probe(rec, mgl64.Vec3{0, 0, 20}, 50)
			if got.Status != tt.expect {
				t.Fatalf("status = %v, want %v", got.Status, tt.expect)
			}
			if got.Status == ProbeMiss && got.Point != (mgl64.Vec3{}) {
				t.Fatalf("miss point = %v", got.Point)
			}
			if got.Start != (mgl64.Vec3{0, 0, 70}) || got.End != (mgl64.Vec3{0, 0, -30}) {
				t.Fatalf("segment = %v..%v", got.Start, got.End)
			}
		})
	}

	if Probe(nil, mgl64.Vec3{}, 50).Hit() {
		t.Fatalf("nil tracer must miss")
	}
}

func TestJumpIsIdempotent(t *testing.T) {
	rec := newRecorder()
	rec.falling = true
	c := New(rec.host(), DefaultTuning())

	c.Jump()
	c.Jump()
	c.Tick(frame)
	c.Jump()

	if rec.jumps != 1 {
		t.Fatalf("jump commands = %d, want 1", rec.jumps)
	}
	if len(rec.impulses) != 1 {
		t.Fatalf("impulses = %d, want 1", len(rec.impulses))
	}
	if rec.cues != 1 {
		t.Fatalf("cues = %d, want 1", rec.cues)
	}
	if !rec.impulses[0].ApproxEqual(mgl64.Vec3{20, 0, 0}) {
		t.Fatalf("impulse = %v, want board forward * 20", rec.impulses[0])
	}
}

func TestJumpImpulseFollowsBoard(t *testing.T) {
	rec := newRecorder()
	tu := DefaultTuning()
	tu.JumpImpulse = 500
	c := New(rec.host(), tu)
	c.SetBoard(gamemath.Rotator{Pitch: 30})

	c.Jump()
	want := gamemath.Rotator{Pitch: 30}.Forward().Mul(500)
	if !rec.impulses[0].ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("impulse = %v, want %v", rec.impulses[0], want)
	}
}

func TestAirborneCorrection(t *testing.T) {
	rec := newRecorder()
	rec.falling = true
	c := New(rec.host(), DefaultTuning())

	c.Jump()
	for i := 0; i < 90; i++ {
		if out := c.Tick(frame); !out.Jumping {
			t.Fatalf("tick %d: jump cleared while still falling", i)
		}
	}

	rec.falling = false
	if out := c.Tick(frame); out.Jumping {
		t.Fatalf("jump not cleared on the tick falling stopped")
	}
	if c.State().Jump != Grounded {
		t.Fatalf("state = %v, want Grounded", c.State().Jump)
	}

	// A new jump is allowed once grounded.
	c.Jump()
	if rec.jumps != 2 {
		t.Fatalf("jump commands = %d, want 2", rec.jumps)
	}
}

func TestFieldOfView(t *testing.T) {
	tu := DefaultTuning()
	tests := []struct {
		speed, expect float64
	}{
		{0, 90},
		{0.3, 90},
		{0.5, 90},
		{0.75, 105},
		{1.0, 120},
	}
	for _, tt := range tests {
		approxEqual(t, FieldOfView(tt.speed, tu), tt.expect, 1e-9, "fov")
	}
}

func TestOutputsFollowSpeed(t *testing.T) {
	rec := newRecorder()
	c := New(rec.host(), DefaultTuning())

	for i := 0; i < 720; i++ {
		c.Update(frame, Frame{Steering: mgl64.Vec2{0, 1}})
	}
	last := len(rec.fovs) - 1
	approxEqual(t, rec.fovs[last], 120, 0, "fov at full speed")
	approxEqual(t, rec.weights[last], 1, 0, "blend at full speed")
	approxEqual(t, rec.volumes[len(rec.volumes)-1], 1, 0, "volume at full speed")
	approxEqual(t, rec.fades[0], 0.1, 0, "fade time")

	c.Reset()
	out := c.Tick(frame)
	approxEqual(t, out.FieldOfView, 90, 0, "fov after reset")
	approxEqual(t, out.BlendWeight, 0, 0, "blend after reset")
}

func TestInactiveAudioIsSkipped(t *testing.T) {
	rec := newRecorder()
	rec.audioOn = false
	c := New(rec.host(), DefaultTuning())

	c.Update(frame, Frame{Steering: mgl64.Vec2{0, 1}})
	if len(rec.volumes) != 0 {
		t.Fatalf("volume adjusted on inactive sound")
	}
	if len(rec.fovs) != 1 || len(rec.weights) != 1 {
		t.Fatalf("other mappings should still run")
	}
}

func TestMovementInputs(t *testing.T) {
	tu := DefaultTuning()
	tests := []struct {
		name            string
		speed           float64
		board           gamemath.Rotator
		steering        mgl64.Vec2
		forward, strafe float64
	}{
		{"level at rest", 0, gamemath.Rotator{}, mgl64.Vec2{}, 0, 0},
		{"level full speed", 1, gamemath.Rotator{}, mgl64.Vec2{0, 1}, 1, 0},
		{"downhill adds push", 0, gamemath.Rotator{Pitch: -30}, mgl64.Vec2{}, 0.35, 0},
		{"uphill takes push", 1, gamemath.Rotator{Pitch: 30}, mgl64.Vec2{}, 0.65, 0},
		{"vertical wall compressed", 0.5, gamemath.Rotator{Pitch: 90}, mgl64.Vec2{}, -0.2, 0},
		{"strafe is raw", 0, gamemath.Rotator{}, mgl64.Vec2{-1, 0}, 0, -0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd, strafe := MovementInputs(tt.speed, tt.board, tt.steering, tu)
			approxEqual(t, fwd, tt.forward, 1e-9, "forward")
			approxEqual(t, strafe, tt.strafe, 1e-12, "strafe")
		})
	}
}

func TestMovementUsesBoardAxes(t *testing.T) {
	rec := newRecorder()
	c := New(rec.host(), DefaultTuning())
	board := gamemath.Rotator{Pitch: -30, Yaw: 90}
	c.SetBoard(board)
	rec.tracePoint = nil

	c.Move(mgl64.Vec2{1, 0})
	c.Tick(0)

	if len(rec.inputs) != 2 {
		t.Fatalf("movement inputs = %d, want 2", len(rec.inputs))
	}
	if !rec.inputs[0].dir.ApproxEqualThreshold(board.Forward(), 1e-9) {
		t.Fatalf("forward dir = %v, want %v", rec.inputs[0].dir, board.Forward())
	}
	if !rec.inputs[1].dir.ApproxEqualThreshold(board.Right(), 1e-9) {
		t.Fatalf("strafe dir = %v, want %v", rec.inputs[1].dir, board.Right())
	}
	approxEqual(t, rec.inputs[1].scale, 0.05, 1e-12, "strafe scale")
}

func TestTickOrder(t *testing.T) {
	rec := newRecorder()
	rec.falling = true
	c := New(rec.host(), DefaultTuning())

	c.Jump()
	rec.reset()
	c.Tick(frame)

	want := []string{
		"trace", "trace",
		"volume/0",
		"input", "input",
		"blend", "fov",
		"falling?",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Fatalf("call order = %v\nwant %v", rec.calls, want)
	}
}

func TestResetRestoresSpawnBoard(t *testing.T) {
	rec := newRecorder()
	rec.falling = true
	c := New(rec.host(), DefaultTuning())
	spawn := gamemath.Rotator{Yaw: 15}
	c.SetBoard(spawn)

	c.Update(frame, Frame{Steering: mgl64.Vec2{1, 1}, JumpRequested: true})
	c.Reset()

	s := c.State()
	if s.Board != spawn || s.SmoothedSpeed != 0 || s.Jump != Grounded || s.LastSteering != (mgl64.Vec2{}) {
		t.Fatalf("state after reset = %+v", s)
	}
}
