package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SpeedBlurShader draws the world layer with radial blur and a vignette
	SpeedBlurShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/speedblur.kage")
	if err != nil {
		return fmt.Errorf("read speed blur shader: %w", err)
	}
	SpeedBlurShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile speed blur shader: %w", err)
	}
	return nil
}
