// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"

	"github.com/ik5/audsound/engine"
)

type sourceKind int

const (
	kindInvalid sourceKind = iota
	kindURL
	kindBytes
	kindBuffer
)

// Source describes where a Sound gets its audio from. The zero value is
// not a valid source.
type Source struct {
	kind   sourceKind
	url    string
	data   []byte
	buffer *engine.Buffer
}

// FromURL loads encoded audio from an absolute URL (scheme://...) or from
// a path relative to the configured origin.
func FromURL(url string) Source {
	return Source{kind: kindURL, url: url}
}

// FromBytes decodes data with the context decoder. data is not copied.
func FromBytes(data []byte) Source {
	return Source{kind: kindBytes, data: data}
}

// FromBuffer uses an already decoded buffer.
func FromBuffer(b *engine.Buffer) Source {
	return Source{kind: kindBuffer, buffer: b}
}

func (s Source) validate() error {
	switch {
	case s.kind == kindURL && s.url != "":
	case s.kind == kindBytes && s.data != nil:
	case s.kind == kindBuffer && s.buffer != nil:
	default:
		return ErrInvalidSourceType
	}
	return nil
}

func (s Source) String() string {
	switch s.kind {
	case kindURL:
		return s.url
	case kindBytes:
		return fmt.Sprintf("bytes(%d)", len(s.data))
	case kindBuffer:
		if s.buffer == nil {
			return "buffer(nil)"
		}
		return fmt.Sprintf("buffer(%dch, %d Hz, %d frames)",
			s.buffer.NumberOfChannels(), s.buffer.SampleRate(), s.buffer.Length())
	default:
		return "invalid"
	}
}
