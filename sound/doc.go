// SPDX-License-Identifier: EPL-2.0

// Package sound wraps an engine.Context in a single playable object.
//
// A Sound owns a fixed main chain (3D panner, stereo panner, gain) wired to
// the context destination, an optional stack of caller supplied effect
// nodes, and a single-use buffer source node that is rebuilt whenever it is
// spent. Every structural change rewires the whole chain inside one
// engine.Context.Update call, so the renderer never sees half a topology:
//
//	source -> effects (last pushed first) -> panner -> stereo -> gain -> destination
//
// Sources are described with FromURL, FromBytes or FromBuffer. Decoded
// buffers are installed immediately; URLs and raw bytes are fetched and
// decoded in the background, and Loaded reports the outcome.
//
// Property scales follow the accessor contract:
//
//   - Volume is a percentage (100 is unity gain) and is not clamped.
//   - Pitch is detune in cents, stored and returned unchanged.
//   - Pan is a percentage clamped to [-100, 100].
//
// Example:
//
//	s, err := sound.New(sound.FromURL("https://example.com/beep.ogg"))
//	if err != nil {
//		return err
//	}
//	if err := s.Loaded(ctx); err != nil {
//		return err
//	}
//	s.SetVolume(50)
//	if err := s.Play(); err != nil {
//		return err
//	}
package sound
