package sound

import (
	"github.com/gopxl/beep"
)

// EncodePCM16 drains a finite streamer into signed 16-bit little-endian
// interleaved stereo, the layout ebiten's audio players consume.
func EncodePCM16(s beep.Streamer) ([]byte, error) {
	out := make([]byte, 0, 64*1024)
	samples := make([][2]float64, 512)
	frame := make([]byte, Format.Width())

	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			Format.EncodeSigned(frame, samples[i])
			out = append(out, frame...)
		}
		if !ok {
			break
		}
	}
	return out, s.Err()
}
