// Package audio synthesizes the game's sound effects as raw PCM,
// so no audio assets need to be shipped or decoded.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Blip synthesis parameters: a short percussive "whack".
const (
	blipDuration  = 0.08  // seconds
	blipFrequency = 880.0 // Hz
	blipDecay     = 18.0  // exponential decay rate
	blipAmplitude = 0.6   // peak amplitude, 0..1
)

// SynthesizeBlip renders the hit sound as 16-bit little-endian stereo
// PCM at the given sample rate, the layout expected by
// ebiten's audio.Context.NewPlayerFromBytes.
//
// The waveform is a decaying sine: sin(2π·880·t) · e^(−18t) · 0.6.
func SynthesizeBlip(sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}

	sampleCount := int(float64(sampleRate) * blipDuration)
	// 4 bytes per frame: int16 left + int16 right
	buf := make([]byte, sampleCount*4)

	for i := 0; i < sampleCount; i++ {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2*math.Pi*blipFrequency*t) * math.Exp(-blipDecay*t) * blipAmplitude
		s := int16(v * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}

	return buf, nil
}
