package locomotion

import "github.com/automoto/skater/shared/gamemath"

// Volume is the rolling sound level for a throttle value.
func Volume(speed float64) float64 {
	return gamemath.Clamp(speed, 0, 1)
}

// FieldOfView maps throttle to camera FOV in degrees. Below the lower speed
// bound the FOV stays at its minimum.
func FieldOfView(speed float64, t Tuning) float64 {
	return gamemath.MapRangeClamped(speed, t.FOVSpeedMin, t.FOVSpeedMax, t.FOVMin, t.FOVMax)
}

func (c *Controller) applyVolume() float64 {
	volume := Volume(c.state.SmoothedSpeed)
	if c.host.Audio != nil && c.host.Audio.IsActive() {
		c.host.Audio.AdjustVolume(c.tuning.VolumeFadeSeconds, volume, FadeLinear)
	}
	return volume
}

func (c *Controller) applyView() (weight, fov float64) {
	weight = c.state.SmoothedSpeed
	fov = FieldOfView(c.state.SmoothedSpeed, c.tuning)

	if c.host.PostProcess != nil {
		c.host.PostProcess.SetBlendWeight(weight)
	}
	if c.host.Camera != nil {
		c.host.Camera.SetFieldOfView(fov)
	}
	return weight, fov
}
