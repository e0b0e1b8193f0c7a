// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"

	"github.com/ik5/audsound/utils"
)

// StereoPannerNode applies an equal-power left/right balance.
type StereoPannerNode struct {
	node
	pan float64
}

func (c *Context) CreateStereoPanner() *StereoPannerNode {
	p := &StereoPannerNode{}
	p.init(c, p, "stereo-panner")
	return p
}

func (p *StereoPannerNode) Pan() float64 {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	return p.pan
}

// SetPan sets the balance in [-1, 1]; values outside are clamped.
func (p *StereoPannerNode) SetPan(v float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	p.pan = utils.Clamp(v, -1, 1)
}

func (p *StereoPannerNode) process(_ *Context, in, out [][2]float64) {
	pan := p.pan
	x := pan
	if pan <= 0 {
		x = pan + 1
	}
	gl := math.Cos(x * math.Pi / 2)
	gr := math.Sin(x * math.Pi / 2)

	for i := range out {
		l, r := in[i][0], in[i][1]
		if pan <= 0 {
			out[i][0] = l + r*gl
			out[i][1] = r * gr
		} else {
			out[i][0] = l * gl
			out[i][1] = r + l*gr
		}
	}
}

// PannerNode positions a source in 3D space relative to a listener at the
// origin facing -Z with +Y up. Panning is equal-power on the downmixed
// input; distance attenuation follows the inverse model.
type PannerNode struct {
	node
	x, y, z       float64
	refDistance   float64
	rolloffFactor float64
}

func (c *Context) CreatePanner() *PannerNode {
	p := &PannerNode{refDistance: 1, rolloffFactor: 1}
	p.init(c, p, "panner")
	return p
}

func (p *PannerNode) Position() (x, y, z float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	return p.x, p.y, p.z
}

func (p *PannerNode) SetPosition(x, y, z float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	p.x, p.y, p.z = x, y, z
}

// SetDistanceModel sets the inverse-model reference distance and rolloff.
// Non-positive reference distances are ignored.
func (p *PannerNode) SetDistanceModel(refDistance, rolloff float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()

	if refDistance > 0 {
		p.refDistance = refDistance
	}
	p.rolloffFactor = max(rolloff, 0)
}

// gains returns the left/right gain for the current position.
func (p *PannerNode) gains() (float64, float64) {
	dist := math.Sqrt(p.x*p.x + p.y*p.y + p.z*p.z)

	azimuth := 0.0
	if dist > 0 {
		// right = +X, front = -Z
		azimuth = math.Atan2(p.x, -p.z) * 180 / math.Pi
	}
	// fold rear positions onto the front half
	if azimuth < -90 {
		azimuth = -180 - azimuth
	} else if azimuth > 90 {
		azimuth = 180 - azimuth
	}

	x := (azimuth + 90) / 180
	gl := math.Cos(x * math.Pi / 2)
	gr := math.Sin(x * math.Pi / 2)

	d := max(dist, p.refDistance)
	att := p.refDistance / (p.refDistance + p.rolloffFactor*(d-p.refDistance))

	return gl * att, gr * att
}

func (p *PannerNode) process(_ *Context, in, out [][2]float64) {
	gl, gr := p.gains()
	for i := range out {
		mono := (in[i][0] + in[i][1]) * 0.5
		out[i][0] = mono * gl
		out[i][1] = mono * gr
	}
}
