package tuning

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/skater/locomotion"
	"github.com/automoto/skater/movement"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    error
		validate   func(t *testing.T, skate locomotion.Tuning, move movement.Params)
	}{
		{
			name:       "partial override",
			createFile: true,
			content: `skate:
  jump_impulse: 500
  fov_max: 110
  wheel_base: 80
movement:
  gravity: 1200
`,
			validate: func(t *testing.T, skate locomotion.Tuning, move movement.Params) {
				if skate.JumpImpulse != 500 {
					t.Errorf("JumpImpulse = %v, want 500", skate.JumpImpulse)
				}
				if skate.FOVMax != 110 {
					t.Errorf("FOVMax = %v, want 110", skate.FOVMax)
				}
				if skate.FrontWheelOffset.X() != 40 || skate.BackWheelOffset.X() != -40 {
					t.Errorf("wheel offsets = %v %v", skate.FrontWheelOffset, skate.BackWheelOffset)
				}
				if skate.FOVMin != 90 {
					t.Errorf("FOVMin = %v, want default 90", skate.FOVMin)
				}
				if move.Gravity != 1200 {
					t.Errorf("Gravity = %v, want 1200", move.Gravity)
				}
				if move.JumpZVelocity != movement.DefaultParams().JumpZVelocity {
					t.Errorf("JumpZVelocity changed: %v", move.JumpZVelocity)
				}
			},
		},
		{
			name:       "empty file keeps defaults",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, skate locomotion.Tuning, move movement.Params) {
				if skate != locomotion.DefaultTuning() {
					t.Errorf("skate tuning changed: %+v", skate)
				}
				if move != movement.DefaultParams() {
					t.Errorf("movement params changed: %+v", move)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    os.ErrNotExist,
		},
		{
			name:       "negative rate",
			createFile: true,
			content:    "skate:\n  speed_interp_rate: -1\n",
			wantErr:    ErrNegative,
		},
		{
			name:       "zero gravity",
			createFile: true,
			content:    "movement:\n  gravity: 0\n",
			wantErr:    ErrNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}

			f, err := Load(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			skate := locomotion.DefaultTuning()
			move := movement.DefaultParams()
			f.Apply(&skate, &move)
			tt.validate(t, skate, move)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("skate:\n  jump_impulsee: 3\n")); err == nil {
		t.Fatalf("expected an error for a misspelled key")
	}
	if _, err := Parse([]byte("skate: [1, 2")); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
