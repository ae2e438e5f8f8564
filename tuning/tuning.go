// Package tuning loads optional YAML overrides for the skate and movement
// constants. Fields left out of the file keep their defaults.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/movement"
	"gopkg.in/yaml.v3"
)

type File struct {
	Skate    Skate    `yaml:"skate"`
	Movement Movement `yaml:"movement"`
}

type Skate struct {
	AlignInterpSpeed   *float64 `yaml:"align_interp_speed"`
	SpeedInterpRate    *float64 `yaml:"speed_interp_rate"`
	SpeedSnapTolerance *float64 `yaml:"speed_snap_tolerance"`
	ProbeHalfSpan      *float64 `yaml:"probe_half_span"`
	WheelBase          *float64 `yaml:"wheel_base"`
	SlopeCompression   *float64 `yaml:"slope_compression"`
	StrafeScale        *float64 `yaml:"strafe_scale"`
	JumpImpulse        *float64 `yaml:"jump_impulse"`
	VolumeFadeSeconds  *float64 `yaml:"volume_fade_seconds"`
	FOVSpeedMin        *float64 `yaml:"fov_speed_min"`
	FOVSpeedMax        *float64 `yaml:"fov_speed_max"`
	FOVMin             *float64 `yaml:"fov_min"`
	FOVMax             *float64 `yaml:"fov_max"`
}

type Movement struct {
	MaxSpeed      *float64 `yaml:"max_speed"`
	Acceleration  *float64 `yaml:"acceleration"`
	BrakingDecel  *float64 `yaml:"braking_decel"`
	AirControl    *float64 `yaml:"air_control"`
	Gravity       *float64 `yaml:"gravity"`
	MaxFallSpeed  *float64 `yaml:"max_fall_speed"`
	JumpZVelocity *float64 `yaml:"jump_z_velocity"`
	MaxStepHeight *float64 `yaml:"max_step_height"`
}

var (
	ErrNegative    = errors.New("value must not be negative")
	ErrNotPositive = errors.New("value must be positive")
)

// Load reads and validates a tuning file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates tuning YAML. Unknown keys are rejected so a
// typo does not silently fall back to a default.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Validate() error {
	nonNegative := map[string]*float64{
		"skate.align_interp_speed":   f.Skate.AlignInterpSpeed,
		"skate.speed_interp_rate":    f.Skate.SpeedInterpRate,
		"skate.speed_snap_tolerance": f.Skate.SpeedSnapTolerance,
		"skate.slope_compression":    f.Skate.SlopeCompression,
		"skate.volume_fade_seconds":  f.Skate.VolumeFadeSeconds,
		"movement.max_speed":         f.Movement.MaxSpeed,
		"movement.acceleration":      f.Movement.Acceleration,
		"movement.braking_decel":     f.Movement.BrakingDecel,
		"movement.air_control":       f.Movement.AirControl,
		"movement.max_step_height":   f.Movement.MaxStepHeight,
	}
	for name, v := range nonNegative {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s = %v: %w", name, *v, ErrNegative)
		}
	}

	positive := map[string]*float64{
		"skate.probe_half_span":   f.Skate.ProbeHalfSpan,
		"skate.wheel_base":        f.Skate.WheelBase,
		"movement.gravity":        f.Movement.Gravity,
		"movement.max_fall_speed": f.Movement.MaxFallSpeed,
	}
	for name, v := range positive {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s = %v: %w", name, *v, ErrNotPositive)
		}
	}
	return nil
}

// Apply copies every set field onto the given defaults.
func (f *File) Apply(skate *locomotion.Tuning, move *movement.Params) {
	s := f.Skate
	set(&skate.AlignInterpSpeed, s.AlignInterpSpeed)
	set(&skate.SpeedInterpRate, s.SpeedInterpRate)
	set(&skate.SpeedSnapTolerance, s.SpeedSnapTolerance)
	set(&skate.ProbeHalfSpan, s.ProbeHalfSpan)
	set(&skate.SlopeCompression, s.SlopeCompression)
	set(&skate.StrafeScale, s.StrafeScale)
	set(&skate.JumpImpulse, s.JumpImpulse)
	set(&skate.VolumeFadeSeconds, s.VolumeFadeSeconds)
	set(&skate.FOVSpeedMin, s.FOVSpeedMin)
	set(&skate.FOVSpeedMax, s.FOVSpeedMax)
	set(&skate.FOVMin, s.FOVMin)
	set(&skate.FOVMax, s.FOVMax)
	if s.WheelBase != nil {
		half := *s.WheelBase / 2
		skate.FrontWheelOffset[0] = half
		skate.BackWheelOffset[0] = -half
	}

	m := f.Movement
	set(&move.MaxSpeed, m.MaxSpeed)
	set(&move.Acceleration, m.Acceleration)
	set(&move.BrakingDecel, m.BrakingDecel)
	set(&move.AirControl, m.AirControl)
	set(&move.Gravity, m.Gravity)
	set(&move.MaxFallSpeed, m.MaxFallSpeed)
	set(&move.JumpZVelocity, m.JumpZVelocity)
	set(&move.MaxStepHeight, m.MaxStepHeight)
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
