// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrAlreadyStarted    = errors.New("buffer source can only be started once")
	ErrNotStarted        = errors.New("buffer source has not been started")
	ErrInvalidBuffer     = errors.New("buffer needs at least one channel, equal channel lengths and a positive sample rate")
	ErrEmptyBuffer       = errors.New("decoded audio has no channels")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrContextMismatch   = errors.New("nodes belong to different contexts")
	ErrDestinationOutput = errors.New("destination node has no outputs")
	ErrInvalidFFTSize    = errors.New("fft size must be a power of two between 32 and 32768")
	ErrClosed            = errors.New("context is closed")
)
