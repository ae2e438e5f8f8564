package systems

import (
	"log"
	"sync"

	"github.com/automoto/skater/assets"
	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalSoundBank    *assets.SoundBank
	globalMasterVolume float64 = cfg.Audio.DefaultMasterVol
	audioInitOnce      sync.Once

	// Each rider's wheel noise gets its own seed.
	rollingSeed   int64
	rollingFailed bool
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSoundBank = assets.NewSoundBank(globalAudioContext)
	})
}

// PreloadAllSFX renders every effect at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Gains {
		if err := globalSoundBank.Preload(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// UpdateSkateAudio starts each rider's wheel loop, advances its fade and
// plays queued effects.
func UpdateSkateAudio(e *ecs.ECS) {
	initGlobalAudio()
	dt := tickSeconds()

	components.SkateAudio.Each(e.World, func(entry *donburi.Entry) {
		a := components.SkateAudio.Get(entry)
		if a.Player == nil && !rollingFailed {
			startRolling(a)
		}

		if a.Fader != nil && a.Player != nil {
			v := a.Fader.Advance(dt)
			a.Player.SetVolume(v * cfg.Audio.RollingGain * globalMasterVolume)
			// Idle wheels stop synthesizing until the rider moves again.
			a.Loop.SetPaused(v == 0 && a.Fader.Target() == 0)
		}

		for _, id := range a.PendingSFX {
			playSFX(id)
		}
		a.PendingSFX = a.PendingSFX[:0]
	})
}

func startRolling(a *components.SkateAudioData) {
	rollingSeed++
	loop, player, err := globalSoundBank.NewRollingPlayer(rollingSeed)
	if err != nil {
		log.Printf("Warning: Could not start wheel sound: %v", err)
		rollingFailed = true
		return
	}
	player.SetVolume(0)
	player.Play()
	a.Loop = loop
	a.Player = player
}

func playSFX(id cfg.SoundID) {
	if globalMasterVolume <= 0 {
		return
	}

	player, err := globalSoundBank.NewPlayer(id)
	if err != nil {
		return
	}

	volume := globalMasterVolume
	if gain, ok := cfg.Sound.Gains[id]; ok {
		volume *= gain
	}
	player.SetVolume(volume)
	player.Play()
}

// SetMasterVolume sets the volume applied on top of every sound.
func SetMasterVolume(v float64) {
	globalMasterVolume = v
}

func GetMasterVolume() float64 {
	return globalMasterVolume
}
