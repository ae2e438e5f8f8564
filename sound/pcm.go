package sound

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4 // 16-bit little endian stereo

// Loop adapts an endless streamer to an io.Reader of 16-bit little endian
// stereo PCM, which is what ebiten's audio player consumes. Read runs on the
// audio goroutine, so pausing goes through the lock.
type Loop struct {
	mu   sync.Mutex
	ctrl *beep.Ctrl
	buf  [][2]float64
}

func NewLoop(s beep.Streamer) *Loop {
	return &Loop{ctrl: &beep.Ctrl{Streamer: s}}
}

func (l *Loop) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cap(l.buf) < frames {
		l.buf = make([][2]float64, frames)
	}
	buf := l.buf[:frames]
	n, _ := l.ctrl.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	encode(p, buf)
	return frames * bytesPerFrame, nil
}

// SetPaused silences the loop without losing its position.
func (l *Loop) SetPaused(paused bool) {
	l.mu.Lock()
	l.ctrl.Paused = paused
	l.mu.Unlock()
}

func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctrl.Paused
}

// Render drains a finite streamer into a PCM buffer.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	chunk := make([]byte, len(buf)*bytesPerFrame)

	for {
		n, ok := s.Stream(buf)
		if n > 0 {
			encode(chunk, buf[:n])
			out = append(out, chunk[:n*bytesPerFrame]...)
		}
		if !ok {
			return out
		}
	}
}

func encode(p []byte, samples [][2]float64) {
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[i*4:], uint16(toInt16(s[0])))
		binary.LittleEndian.PutUint16(p[i*4+2:], uint16(toInt16(s[1])))
	}
}

func toInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
