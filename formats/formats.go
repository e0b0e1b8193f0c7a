// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into a single registry.
package formats

import (
	"bytes"
	"fmt"

	"github.com/ik5/audsound/audio"
	"github.com/ik5/audsound/formats/aiff"
	"github.com/ik5/audsound/formats/mp3"
	"github.com/ik5/audsound/formats/vorbis"
	"github.com/ik5/audsound/formats/wav"
)

// Format keys used by NewRegistry.
const (
	WAV    = "wav"
	AIFF   = "aiff"
	Vorbis = "ogg"
	MP3    = "mp3"
)

// NewRegistry returns a registry holding the WAV, AIFF, Ogg Vorbis and MP3
// decoders. MP3 is registered last because its frame-sync check is the
// loosest signature.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(WAV, wav.Decoder{})
	reg.Register(AIFF, aiff.Decoder{})
	reg.Register(Vorbis, vorbis.Decoder{})
	reg.Register(MP3, mp3.Decoder{})
	return reg
}

// Decode sniffs data against reg and decodes it with the matching decoder.
// It returns the detected format key with the source.
func Decode(reg *audio.Registry, data []byte) (audio.Source, string, error) {
	header := data[:min(len(data), audio.SniffLen)]

	format, dec, ok := reg.Detect(header)
	if !ok {
		return nil, "", audio.ErrUnknownFormat
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decoding %s: %w", format, err)
	}

	return src, format, nil
}
