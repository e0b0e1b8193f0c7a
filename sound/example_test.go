// SPDX-License-Identifier: EPL-2.0

package sound_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/audsound/engine"
	"github.com/ik5/audsound/sound"
)

func newSilentSound() *sound.Sound {
	buf, _ := engine.NewEmptyBuffer(2, 44100, 44100)
	s, _ := sound.New(sound.FromBuffer(buf),
		sound.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return s
}

func ExampleSound_PushNode() {
	s := newSilentSound()
	ctx := s.Context()

	_ = s.PushNode(ctx.CreateAnalyser())
	_ = s.PushNode(ctx.CreateProcessor(nil))

	for _, n := range s.ConnectedNodes() {
		fmt.Println(n.Kind())
	}
	// Output:
	// buffer-source
	// processor
	// analyser
	// panner
	// stereo-panner
	// gain
}

func ExampleSound_SetPan() {
	s := newSilentSound()

	s.SetPan(250)
	fmt.Println(s.Pan())

	s.SetVolume(150)
	fmt.Println(s.Volume())
	// Output:
	// 100
	// 150
}
