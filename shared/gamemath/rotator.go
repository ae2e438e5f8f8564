package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator is an orientation in degrees. X is forward, Y is right and Z is up.
type Rotator struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

func (r Rotator) sinCos() (sp, cp, sy, cy, sr, cr float64) {
	sp, cp = math.Sincos(mgl64.DegToRad(r.Pitch))
	sy, cy = math.Sincos(mgl64.DegToRad(r.Yaw))
	sr, cr = math.Sincos(mgl64.DegToRad(r.Roll))
	return
}

// Forward returns the unit X axis of the rotation.
func (r Rotator) Forward() mgl64.Vec3 {
	sp, cp, sy, cy, _, _ := r.sinCos()
	return mgl64.Vec3{cp * cy, cp * sy, sp}
}

// Right returns the unit Y axis of the rotation.
func (r Rotator) Right() mgl64.Vec3 {
	sp, cp, sy, cy, sr, cr := r.sinCos()
	return mgl64.Vec3{
		sr*sp*cy - cr*sy,
		sr*sp*sy + cr*cy,
		-sr * cp,
	}
}

// Up returns the unit Z axis of the rotation.
func (r Rotator) Up() mgl64.Vec3 {
	sp, cp, sy, cy, sr, cr := r.sinCos()
	return mgl64.Vec3{
		-(cr*sp*cy + sr*sy),
		cy*sr - cr*sp*sy,
		cr * cp,
	}
}

// RotateVector transforms a local-space vector into the rotated frame.
func (r Rotator) RotateVector(v mgl64.Vec3) mgl64.Vec3 {
	return r.Forward().Mul(v.X()).
		Add(r.Right().Mul(v.Y())).
		Add(r.Up().Mul(v.Z()))
}

// Normalized wraps every axis to (-180, 180].
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Roll:  NormalizeAxis(r.Roll),
		Pitch: NormalizeAxis(r.Pitch),
		Yaw:   NormalizeAxis(r.Yaw),
	}
}

// RotatorFromX builds the rotation whose forward axis points along dir.
// Roll is always zero. A zero direction yields the zero rotator.
func RotatorFromX(dir mgl64.Vec3) Rotator {
	horizontal := math.Hypot(dir.X(), dir.Y())
	if horizontal == 0 && dir.Z() == 0 {
		return Rotator{}
	}
	return Rotator{
		Pitch: mgl64.RadToDeg(math.Atan2(dir.Z(), horizontal)),
		Yaw:   mgl64.RadToDeg(math.Atan2(dir.Y(), dir.X())),
	}
}

// FindLookAtRotation returns the rotation that points from start toward target.
func FindLookAtRotation(start, target mgl64.Vec3) Rotator {
	return RotatorFromX(target.Sub(start))
}

// RInterpTo blends current toward target along the shortest arc of every axis.
func RInterpTo(current, target Rotator, dt, speed float64) Rotator {
	if dt <= 0 || current == target {
		return current
	}
	if speed <= 0 {
		return target
	}

	delta := Rotator{
		Roll:  NormalizeAxis(target.Roll - current.Roll),
		Pitch: NormalizeAxis(target.Pitch - current.Pitch),
		Yaw:   NormalizeAxis(target.Yaw - current.Yaw),
	}
	if delta.Roll*delta.Roll+delta.Pitch*delta.Pitch+delta.Yaw*delta.Yaw < SmallNumber {
		return target
	}

	alpha := InterpAlpha(dt, speed)
	return Rotator{
		Roll:  current.Roll + delta.Roll*alpha,
		Pitch: current.Pitch + delta.Pitch*alpha,
		Yaw:   current.Yaw + delta.Yaw*alpha,
	}.Normalized()
}
