// Package audio feeds the frame loop with what it hears: a beep player whose
// output is tapped, and an analyzer reducing the tapped samples to an
// amplitude level and a byte-scaled magnitude spectrum.
package audio

import (
	"fmt"
	"math"

	"github.com/argusdusty/gofft"
	"github.com/iburimskiy/pulse-heart/internal/config"
	"github.com/iburimskiy/pulse-heart/internal/signal"
)

// Named frequency ranges in Hz.
var (
	BassRange    = [2]float64{20, 140}
	LowMidRange  = [2]float64{140, 400}
	MidRange     = [2]float64{400, 2600}
	HighMidRange = [2]float64{2600, 5200}
	TrebleRange  = [2]float64{5200, 14000}
)

// Reading is what the frame loop consumes each tick.
type Reading struct {
	Level float64
	Bands signal.Bands
}

// Analyzer keeps the smoothed spectrum between frames. Not safe for
// concurrent use; it belongs to the frame loop.
type Analyzer struct {
	size       int
	sampleRate float64
	smoothing  float64
	gain       float64

	window   []float64
	smoothed []float64
	spectrum []float64
}

// NewAnalyzer builds an analyzer for an FFT of size samples (a power of two).
func NewAnalyzer(size int, sampleRate, smoothing, gain float64) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("fft size %d is not a power of two", size)
	}
	return &Analyzer{
		size:       size,
		sampleRate: sampleRate,
		smoothing:  smoothing,
		gain:       gain,
		window:     blackman(size),
		smoothed:   make([]float64, size/2),
		spectrum:   make([]float64, size/2),
	}, nil
}

// blackman returns the window used by the browser analyser node.
func blackman(n int) []float64 {
	const alpha = 0.16
	a0, a1, a2 := (1-alpha)/2, 0.5, alpha/2
	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return w
}

// Analyze reduces stereo samples (oldest first) to a level and updates the
// spectrum. Missing samples count as silence.
func (a *Analyzer) Analyze(samples [][2]float64) Reading {
	mono := make([]float64, a.size)
	if len(samples) > a.size {
		samples = samples[len(samples)-a.size:]
	}
	offset := a.size - len(samples)
	for i, s := range samples {
		mono[offset+i] = (s[0] + s[1]) * 0.5 * a.gain
	}

	var sumSquares float64
	for _, v := range mono {
		sumSquares += v * v
	}
	level := math.Sqrt(sumSquares / float64(a.size))

	a.updateSpectrum(mono)
	return Reading{Level: level, Bands: a.Bands()}
}

func (a *Analyzer) updateSpectrum(mono []float64) {
	windowed := make([]float64, a.size)
	for i, v := range mono {
		windowed[i] = v * a.window[i]
	}
	coeffs := gofft.Float64ToComplex128Array(windowed)
	if err := gofft.FFT(coeffs); err != nil {
		// Size is validated in NewAnalyzer.
		panic(err)
	}

	span := config.MaxDecibels - config.MinDecibels
	for k := range a.smoothed {
		mag := math.Hypot(real(coeffs[k]), imag(coeffs[k])) / float64(a.size)
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag

		if a.smoothed[k] <= 0 {
			a.spectrum[k] = 0
			continue
		}
		db := 20 * math.Log10(a.smoothed[k])
		a.spectrum[k] = math.Floor(math.Max(0, math.Min(255, 255*(db-config.MinDecibels)/span)))
	}
}

// Spectrum returns the latest byte-scaled spectrum, one value per bin up to
// Nyquist. The slice is reused on the next Analyze.
func (a *Analyzer) Spectrum() []float64 { return a.spectrum }

// Energy averages the spectrum between two frequencies in Hz, inclusive.
func (a *Analyzer) Energy(fromHz, toHz float64) float64 {
	if fromHz > toHz {
		fromHz, toHz = toHz, fromHz
	}
	nyquist := a.sampleRate / 2
	last := len(a.spectrum) - 1
	lo := clampIndex(int(math.Round(fromHz/nyquist*float64(len(a.spectrum)))), last)
	hi := clampIndex(int(math.Round(toHz/nyquist*float64(len(a.spectrum)))), last)

	var sum float64
	for i := lo; i <= hi; i++ {
		sum += a.spectrum[i]
	}
	return sum / float64(hi-lo+1)
}

func clampIndex(i, last int) int {
	return max(0, min(i, last))
}

// Bands collects the energies the color and shape strategies read.
func (a *Analyzer) Bands() signal.Bands {
	return signal.Bands{
		Low:    a.Energy(config.LowBandFrom, config.LowBandTo),
		High:   a.Energy(config.HighBandFrom, config.HighBandTo),
		Bass:   a.Energy(BassRange[0], BassRange[1]),
		Mid:    a.Energy(MidRange[0], MidRange[1]),
		Treble: a.Energy(TrebleRange[0], TrebleRange[1]),
	}
}
