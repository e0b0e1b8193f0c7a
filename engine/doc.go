// SPDX-License-Identifier: EPL-2.0

// Package engine is a small software audio graph in the shape of a browser
// audio context.
//
// A Context owns a clock, a destination and every node created from it.
// Nodes are wired with Connect/Disconnect; a whole rewiring can be done as
// one step with Context.Update so that rendering never sees a half-built
// topology:
//
//	ctx := engine.NewContext(engine.DefaultConfig())
//	gain := ctx.CreateGain()
//	src := ctx.CreateBufferSource()
//	src.SetBuffer(buf)
//
//	ctx.Update(func(g *engine.Graph) {
//	    g.Connect(src, gain)
//	    g.Connect(gain, ctx.Destination())
//	})
//
//	ctx.Resume()
//	src.Start(0, 0, 0)
//
// Rendering is pull based and happens in fixed quanta (128 frames by
// default). The clock only advances while the context is running. All
// internal buses are stereo; mono buffers are duplicated to both sides.
//
// A Context is an audio.Source (interleaved stereo float32) and a
// beep.Streamer, so it can be fed to the audio package pipeline (resampler,
// mono mixer) or straight to a speaker.
//
// Buffer sources are single use: Start fails with ErrAlreadyStarted the
// second time. Ended callbacks are queued while the context lock is held
// and run after it is released, at most once per source.
package engine
