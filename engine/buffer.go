// SPDX-License-Identifier: EPL-2.0

package engine

// Buffer is decoded PCM held in memory, one float32 slice per channel.
type Buffer struct {
	channels [][]float32
	rate     int
}

// NewBuffer wraps channels without copying them. Every channel must have
// the same length.
func NewBuffer(channels [][]float32, sampleRate int) (*Buffer, error) {
	if len(channels) == 0 || sampleRate <= 0 {
		return nil, ErrInvalidBuffer
	}
	for _, ch := range channels[1:] {
		if len(ch) != len(channels[0]) {
			return nil, ErrInvalidBuffer
		}
	}

	return &Buffer{channels: channels, rate: sampleRate}, nil
}

// NewEmptyBuffer allocates a silent buffer.
func NewEmptyBuffer(numChannels, frames, sampleRate int) (*Buffer, error) {
	if numChannels <= 0 || frames < 0 {
		return nil, ErrInvalidBuffer
	}

	channels := make([][]float32, numChannels)
	for i := range channels {
		channels[i] = make([]float32, frames)
	}
	return NewBuffer(channels, sampleRate)
}

func (b *Buffer) NumberOfChannels() int { return len(b.channels) }
func (b *Buffer) SampleRate() int       { return b.rate }

// Length in frames.
func (b *Buffer) Length() int { return len(b.channels[0]) }

// Duration in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Length()) / float64(b.rate)
}

// ChannelData returns the live samples of channel i, or nil when i is out
// of range.
func (b *Buffer) ChannelData(i int) []float32 {
	if i < 0 || i >= len(b.channels) {
		return nil
	}
	return b.channels[i]
}
