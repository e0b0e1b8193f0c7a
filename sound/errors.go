// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrNotReady is returned when an operation needs a decoded buffer
	// and a source node before resolution has finished.
	ErrNotReady = errors.New("sound has not finished loading")
	// ErrInvalidSourceType is returned for a Source that was not built
	// with FromURL, FromBytes or FromBuffer.
	ErrInvalidSourceType = errors.New("invalid source type")
	ErrDecode            = errors.New("decoding audio data failed")
	ErrFetch             = errors.New("fetching audio data failed")
	ErrNodeNotFound      = errors.New("node is not in the effect chain")
	ErrNilNode           = errors.New("nil node")
)
