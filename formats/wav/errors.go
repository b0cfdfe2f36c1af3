// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout: data chunk before fmt chunk")
	ErrInvalidFmtChunk      = errors.New("invalid WAV fmt chunk")
	ErrMissingFmtChunk      = errors.New("WAV file has no fmt chunk")
	ErrMissingDataChunk     = errors.New("WAV file has no data chunk")
)
