// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1/2
// Layer III streams. go-mp3 always produces stereo 16-bit PCM, so the
// returned source reports two channels even for mono files.
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Decoder implements audio.Sniffer: an ID3v2 tag or an MPEG frame sync at
// the start of the stream is accepted.
package mp3
