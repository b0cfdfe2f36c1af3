// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
)

// ElementType is the storage type of decoded samples as declared by the container.
type ElementType int

const (
	Unknown ElementType = iota
	Uint8
	Int8
	Int16
	Int24
	Int32
	Float32
	Float64
)

var elementTypeNames = [...]string{
	Unknown: "unknown",
	Uint8:   "uint8",
	Int8:    "int8",
	Int16:   "int16",
	Int24:   "int24",
	Int32:   "int32",
	Float32: "float32",
	Float64: "float64",
}

func (t ElementType) String() string {
	if t < 0 || int(t) >= len(elementTypeNames) {
		return fmt.Sprintf("ElementType(%d)", int(t))
	}

	return elementTypeNames[t]
}

// Buffer holds a fully decoded, interleaved audio stream.
//
// Samples live in the PCM slice matching Type: I16 for Int16, I32 for Int32
// and Int24, F32 for Float32, F64 for Float64, I8 for Int8 and Uint8 (the
// latter re-centred around zero).
type Buffer struct {
	PCM  *goaudio.PCMBuffer
	Type ElementType
}

func newBuffer(sampleRate, channels int, dataType goaudio.PCMDataFormat, typ ElementType) *Buffer {
	return &Buffer{
		PCM: &goaudio.PCMBuffer{
			Format: &goaudio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			DataType: dataType,
		},
		Type: typ,
	}
}

// NewInt16Buffer wraps interleaved int16 samples.
func NewInt16Buffer(samples []int16, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeI16, Int16)
	b.PCM.I16 = samples
	return b
}

// NewInt32Buffer wraps interleaved int32 samples.
func NewInt32Buffer(samples []int32, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeI32, Int32)
	b.PCM.I32 = samples
	return b
}

// NewInt24Buffer wraps sign-extended 24-bit samples.
func NewInt24Buffer(samples []int32, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeI32, Int24)
	b.PCM.I32 = samples
	return b
}

// NewInt8Buffer wraps interleaved signed 8-bit samples.
func NewInt8Buffer(samples []int8, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeI8, Int8)
	b.PCM.I8 = samples
	return b
}

// NewUint8Buffer wraps unsigned 8-bit samples that were already shifted by -128.
func NewUint8Buffer(samples []int8, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeI8, Uint8)
	b.PCM.I8 = samples
	return b
}

// NewFloat32Buffer wraps interleaved float32 samples.
func NewFloat32Buffer(samples []float32, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeF32, Float32)
	b.PCM.F32 = samples
	return b
}

// NewFloat64Buffer wraps interleaved float64 samples.
func NewFloat64Buffer(samples []float64, sampleRate, channels int) *Buffer {
	b := newBuffer(sampleRate, channels, goaudio.DataTypeF64, Float64)
	b.PCM.F64 = samples
	return b
}

// SampleRate of the stream in Hz.
func (b *Buffer) SampleRate() int {
	if b == nil || b.PCM == nil || b.PCM.Format == nil {
		return 0
	}
	return b.PCM.Format.SampleRate
}

// Channels count (e.g., 1=mono, 2=stereo).
func (b *Buffer) Channels() int {
	if b == nil || b.PCM == nil || b.PCM.Format == nil {
		return 0
	}
	return b.PCM.Format.NumChannels
}

// Len is the number of samples across all channels.
func (b *Buffer) Len() int {
	if b == nil || b.PCM == nil {
		return 0
	}

	switch b.Type {
	case Uint8, Int8:
		return len(b.PCM.I8)
	case Int16:
		return len(b.PCM.I16)
	case Int24, Int32:
		return len(b.PCM.I32)
	case Float32:
		return len(b.PCM.F32)
	case Float64:
		return len(b.PCM.F64)
	default:
		return 0
	}
}

// Frames is the number of samples per channel.
func (b *Buffer) Frames() int {
	ch := b.Channels()
	if ch < 1 {
		return 0
	}
	return b.Len() / ch
}

// Info describes the buffer.
func (b *Buffer) Info() Info {
	return newInfo(b.Channels(), b.SampleRate(), b.Frames())
}

// PCM16 is a Linear16 stream: interleaved signed 16-bit samples.
type PCM16 struct {
	Data       []int16
	SampleRate int
	Channels   int
}

// Frames is the number of samples per channel.
func (p *PCM16) Frames() int {
	if p == nil || p.Channels < 1 {
		return 0
	}
	return len(p.Data) / p.Channels
}

// Info describes the stream.
func (p *PCM16) Info() Info {
	if p == nil {
		return Info{}
	}
	return newInfo(p.Channels, p.SampleRate, p.Frames())
}

// Validate reports ErrInvalidFormat when the stream cannot be written as a WAV file.
func (p *PCM16) Validate() error {
	switch {
	case p == nil:
		return ErrNilBuffer
	case p.Channels < 1:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, p.Channels)
	case p.SampleRate < 1:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, p.SampleRate)
	case len(p.Data)%p.Channels != 0:
		return fmt.Errorf("%w: %d samples is not a multiple of %d channels",
			ErrInvalidFormat, len(p.Data), p.Channels)
	}

	return nil
}

// IntBuffer converts the stream into the go-audio representation used by encoders.
func (p *PCM16) IntBuffer() *goaudio.IntBuffer {
	pcm := &goaudio.PCMBuffer{
		I16:      p.Data,
		DataType: goaudio.DataTypeI16,
		Format: &goaudio.Format{
			NumChannels: p.Channels,
			SampleRate:  p.SampleRate,
		},
	}

	buf := pcm.AsIntBuffer()
	buf.SourceBitDepth = 16
	return buf
}

// Info is the metadata exposed for an audio stream.
type Info struct {
	Channels   int     `json:"channels"`
	SampleRate int     `json:"sample_rate"`
	Duration   float64 `json:"duration"` // seconds
}

func newInfo(channels, sampleRate, frames int) Info {
	info := Info{
		Channels:   channels,
		SampleRate: sampleRate,
	}
	if sampleRate > 0 {
		info.Duration = float64(frames) / float64(sampleRate)
	}
	return info
}

// Length returns the duration as a time.Duration.
func (i Info) Length() time.Duration {
	return time.Duration(i.Duration * float64(time.Second))
}

// Decoder constructs a Buffer from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Sniffer is implemented by decoders that can recognise their container
// from its first bytes.
type Sniffer interface {
	Sniff(header []byte) bool
}

// Registry for decoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Detect returns the first registered format, in registration order, whose
// decoder recognises header.
func (r *Registry) Detect(header []byte) (string, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, format := range r.order {
		s, ok := r.codecs[format].(Sniffer)
		if ok && s.Sniff(header) {
			return format, true
		}
	}

	return "", false
}

// Formats lists the registered format keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.order...)
}
