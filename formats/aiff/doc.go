// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Integer PCM at 8, 16, 24 and 32 bits is supported for any channel count
// and sample rate. Compressed AIFF-C payloads are rejected.
//
// # Decoding AIFF Files
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples come out interleaved as float32 in [-1.0, 1.0]. Readers that
// cannot seek are buffered in memory first, since go-audio needs to seek
// between chunks.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: The sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: No usable COMM chunk
//
// Decoder implements audio.Sniffer, matching FORM containers of type AIFF
// or AIFC.
package aiff
