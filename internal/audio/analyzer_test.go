package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 44100

// binTone returns n stereo samples of a sine centred on FFT bin k, so the
// window holds a whole number of cycles.
func binTone(n, k int, amp float64) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		v := amp * math.Sin(2*math.Pi*float64(k)*float64(i)/float64(n))
		out[i] = [2]float64{v, v}
	}
	return out
}

func TestNewAnalyzer_RejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewAnalyzer(1000, testRate, 0.8, 1)
	assert.Error(t, err)
	_, err = NewAnalyzer(1024, testRate, 0.8, 1)
	assert.NoError(t, err)
}

func TestAnalyze_SilenceIsZero(t *testing.T) {
	a, err := NewAnalyzer(1024, testRate, 0.8, 2)
	require.NoError(t, err)

	r := a.Analyze(nil)
	assert.Equal(t, 0.0, r.Level)
	assert.Equal(t, 0.0, r.Bands.Low)
	assert.Equal(t, 0.0, r.Bands.High)
	for _, v := range a.Spectrum() {
		assert.Equal(t, 0.0, v)
	}
}

func TestAnalyze_LevelIsRMSWithGain(t *testing.T) {
	a, err := NewAnalyzer(1024, testRate, 0, 2)
	require.NoError(t, err)

	r := a.Analyze(binTone(1024, 4, 0.05))
	// RMS of a sine is amp/sqrt2, doubled by the gain.
	assert.InDelta(t, 0.1/math.Sqrt2, r.Level, 1e-9)
}

func TestAnalyze_ShortBufferPadsWithSilence(t *testing.T) {
	a, err := NewAnalyzer(1024, testRate, 0, 1)
	require.NoError(t, err)

	r := a.Analyze(binTone(256, 1, 1))
	// A quarter of the window holds a full sine cycle, the rest is silence.
	assert.InDelta(t, math.Sqrt(0.5/4), r.Level, 1e-9)
}

func TestAnalyze_BandBalanceFollowsPitch(t *testing.T) {
	bass, err := NewAnalyzer(1024, testRate, 0, 1)
	require.NoError(t, err)
	low := bass.Analyze(binTone(1024, 4, 0.5)) // ~172 Hz

	treble, err := NewAnalyzer(1024, testRate, 0, 1)
	require.NoError(t, err)
	high := treble.Analyze(binTone(1024, 200, 0.5)) // ~8.6 kHz

	assert.Greater(t, low.Bands.Low, low.Bands.High)
	assert.Greater(t, low.Bands.Bass, low.Bands.Treble)
	assert.Greater(t, high.Bands.High, high.Bands.Low)
	assert.Greater(t, high.Bands.Treble, high.Bands.Bass)

	assert.Equal(t, 255.0, bass.Spectrum()[4])
	assert.Equal(t, 255.0, treble.Spectrum()[200])
}

func TestAnalyze_SmoothingDecaysGradually(t *testing.T) {
	a, err := NewAnalyzer(1024, testRate, 0.8, 1)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		a.Analyze(binTone(1024, 20, 0.5))
	}
	loud := a.Spectrum()[20]
	require.Greater(t, loud, 0.0)

	a.Analyze(nil)
	after := a.Spectrum()[20]
	assert.Greater(t, after, 0.0, "smoothing keeps energy for a frame")
	assert.LessOrEqual(t, after, loud)

	for i := 0; i < 500; i++ {
		a.Analyze(nil)
	}
	assert.Equal(t, 0.0, a.Spectrum()[20])
}

func TestEnergy_AveragesInclusiveRange(t *testing.T) {
	a, err := NewAnalyzer(8, 16, 0, 1)
	require.NoError(t, err)
	copy(a.spectrum, []float64{10, 20, 30, 40})

	// Nyquist 8 Hz over 4 bins: 2 Hz per bin.
	assert.Equal(t, 25.0, a.Energy(2, 4))
	assert.Equal(t, 25.0, a.Energy(4, 2))
	assert.Equal(t, 40.0, a.Energy(100, 200))
	assert.Equal(t, 10.0, a.Energy(0, 0))
}
