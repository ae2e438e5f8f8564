package components

import (
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/sound"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// SkateAudioData is the rolling-wheel sound of one rider.
type SkateAudioData struct {
	Fader      *sound.Fader
	Loop       *sound.Loop
	Player     *audio.Player
	PendingSFX []cfg.SoundID
}

var SkateAudio = donburi.NewComponentType[SkateAudioData]()
