// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audsound/utils"
)

// ResampleToMono16 resamples src to targetRate, folds it down to mono and
// collects the whole stream as 16-bit PCM.
//
// The returned rate is always targetRate. bufferSize is the read size used
// for each pull from the pipeline.
func ResampleToMono16(src Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	var pipeline Source = NewMonoMixer(src)
	if src.SampleRate() != targetRate {
		pipeline = NewMonoMixer(NewResampler(src, targetRate))
	}

	pcm16 := make([]int16, 0, targetRate)
	buf := make([]float32, bufferSize)

	for {
		n, err := pipeline.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
