// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/wavnorm/utils"
)

// Normalize converts buf to Linear16.
//
//	int16            passed through
//	int32            clamped to the int16 range, floor-divided by 65536
//	float32, float64 clamped to [-1, 1], scaled by 32767, truncated
//
// Any other element type yields an *UnsupportedFormatError and no output.
func Normalize(buf *Buffer) (*PCM16, error) {
	if buf == nil || buf.PCM == nil {
		return nil, ErrNilBuffer
	}

	out := &PCM16{
		SampleRate: buf.SampleRate(),
		Channels:   buf.Channels(),
	}

	switch buf.Type {
	case Int16:
		out.Data = make([]int16, len(buf.PCM.I16))
		copy(out.Data, buf.PCM.I16)

	case Int32:
		out.Data = make([]int16, len(buf.PCM.I32))
		for i, v := range buf.PCM.I32 {
			out.Data[i] = utils.Int32ToInt16(v)
		}

	case Float32:
		out.Data = make([]int16, len(buf.PCM.F32))
		for i, v := range buf.PCM.F32 {
			out.Data[i] = utils.Float32ToInt16(v)
		}

	case Float64:
		out.Data = make([]int16, len(buf.PCM.F64))
		for i, v := range buf.PCM.F64 {
			out.Data[i] = utils.Float64ToInt16(v)
		}

	default:
		return nil, &UnsupportedFormatError{Name: buf.Type.String()}
	}

	return out, nil
}
