package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams until exhaustion and returns total sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected identical channels", i)
		}
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies the oscillator drains after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(300.0, 60*time.Millisecond, WaveTriangle, rate)

	if got, want := drain(osc), rate.N(60*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestEnvelopeRamps verifies attack starts silent and sustain is unity
func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected unity sustain, got %f", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= 1.0 {
		t.Errorf("Expected release ramp on last sample, got %f", samples[99][0])
	}
}

// TestSoundEffectsDurations verifies each effect drains at its configured length
func TestSoundEffectsDurations(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  int
	}{
		{SoundWallBounce, rate.N(60 * time.Millisecond)},
		{SoundKick, rate.N(120 * time.Millisecond)},
		{SoundGoal, rate.N(200 * time.Millisecond)},
		{SoundWhistle, rate.N(250 * time.Millisecond)},
		{SoundGameOver, 2 * rate.N(300*time.Millisecond)},
	}

	for _, tt := range tests {
		s := GetSoundEffect(tt.sound, cfg)
		if s == nil {
			t.Fatalf("%s: expected streamer, got nil", tt.sound)
		}
		if got := drain(s); got != tt.want {
			t.Errorf("%s: expected %d samples, got %d", tt.sound, tt.want, got)
		}
	}
}

// TestGetSoundEffectUnknown verifies unknown types yield nil
func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(soundTypeCount, DefaultAudioConfig()); s != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}
