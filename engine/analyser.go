// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const (
	minFFTSize     = 32
	maxFFTSize     = 32768
	defaultFFTSize = 2048

	// floor reported for empty bins
	minDecibels = -130.0
)

// AnalyserNode passes audio through unchanged while keeping the most
// recent fftSize mono frames for inspection.
type AnalyserNode struct {
	node

	fftSize int
	ring    []float64
	write   int

	plan   *algofft.Plan[complex128]
	window []float64
	fftIn  []complex128
	fftOut []complex128
}

// CreateAnalyser returns an analyser with a 2048 point FFT.
func (c *Context) CreateAnalyser() *AnalyserNode {
	a := &AnalyserNode{}
	a.init(c, a, "analyser")
	// the default size is always valid
	_ = a.resize(defaultFFTSize)
	return a
}

func (a *AnalyserNode) FFTSize() int {
	a.ctx.mu.Lock()
	defer a.ctx.mu.Unlock()

	return a.fftSize
}

// SetFFTSize changes the window length and clears the history.
func (a *AnalyserNode) SetFFTSize(n int) error {
	a.ctx.mu.Lock()
	defer a.ctx.mu.Unlock()

	return a.resize(n)
}

func (a *AnalyserNode) resize(n int) error {
	if n < minFFTSize || n > maxFFTSize || n&(n-1) != 0 {
		return ErrInvalidFFTSize
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFFTSize, err)
	}

	a.fftSize = n
	a.plan = plan
	a.ring = make([]float64, n)
	a.write = 0
	a.fftIn = make([]complex128, n)
	a.fftOut = make([]complex128, n)

	// Blackman window
	a.window = make([]float64, n)
	for i := range a.window {
		x := 2 * math.Pi * float64(i) / float64(n)
		a.window[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	}

	return nil
}

func (a *AnalyserNode) process(_ *Context, in, out [][2]float64) {
	copy(out, in)
	for i := range in {
		a.ring[a.write] = (in[i][0] + in[i][1]) * 0.5
		a.write = (a.write + 1) % a.fftSize
	}
}

// TimeDomainData copies the latest frames, oldest first, into dst and
// returns how many were written.
func (a *AnalyserNode) TimeDomainData(dst []float64) int {
	a.ctx.mu.Lock()
	defer a.ctx.mu.Unlock()

	n := min(len(dst), a.fftSize)
	start := a.write + a.fftSize - n
	for i := range n {
		dst[i] = a.ring[(start+i)%a.fftSize]
	}
	return n
}

// FrequencyData writes the magnitude spectrum in dBFS for bins
// 0..fftSize/2-1 into dst and returns how many bins were written.
func (a *AnalyserNode) FrequencyData(dst []float64) (int, error) {
	a.ctx.mu.Lock()
	defer a.ctx.mu.Unlock()

	for i := range a.fftIn {
		sample := a.ring[(a.write+i)%a.fftSize]
		a.fftIn[i] = complex(sample*a.window[i], 0)
	}

	if err := a.plan.Forward(a.fftOut, a.fftIn); err != nil {
		return 0, fmt.Errorf("analyser fft: %w", err)
	}

	n := min(len(dst), a.fftSize/2)
	scale := 1 / float64(a.fftSize)
	for i := range n {
		re, im := real(a.fftOut[i]), imag(a.fftOut[i])
		mag := math.Hypot(re, im) * scale
		if mag <= 0 {
			dst[i] = minDecibels
			continue
		}
		dst[i] = max(20*math.Log10(mag), minDecibels)
	}

	return n, nil
}
