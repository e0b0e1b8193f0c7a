// SPDX-License-Identifier: EPL-2.0

// Package audsound plays decoded audio through a small software node graph.
//
// The work is split across subpackages:
//
//   - audio: streaming Source/Decoder interfaces, format sniffing, the cubic
//     Resampler and MonoMixer.
//   - formats and formats/*: WAV, AIFF, MP3 and Ogg Vorbis decoders.
//   - engine: the audio context, its nodes (gain, panners, buffer sources,
//     analyser) and the render loop.
//   - sound: Sound, a single playable object with volume, pitch, pan, loop,
//     3D position and an effect chain kept in sync with an engine graph.
//
// # Quick Start
//
//	s, err := sound.New(sound.FromURL("music/theme.ogg"), sound.WithOrigin("https://cdn.example.com"))
//	if err != nil {
//		return err
//	}
//	if err := s.Loaded(ctx); err != nil {
//		return err
//	}
//	s.SetPan(-30)
//	_ = s.Play()
//
// An engine.Context is a beep.Streamer, so it can be handed to
// speaker.Play directly, or rendered offline:
//
//	f, _ := os.Create("out.wav")
//	err := audsound.Export(f, s.Context(), 5, 16000)
//
// Export downmixes to mono and resamples with the same pipeline used by
// audio.ResampleToMono16.
package audsound
