// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds in-memory WAV and AIFF files for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/orcaman/writerseeker"
)

const (
	FormatPCM        = 1
	FormatIEEEFloat  = 3
	FormatALaw       = 6
	FormatExtensible = 0xFFFE
)

// Chunk is a raw RIFF chunk written as-is.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a RIFF/WAVE file.
type WAV struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	// Extensible writes WAVE_FORMAT_EXTENSIBLE with FormatTag as the sub-format.
	Extensible bool
	// Chunks are written between the fmt and data chunks.
	Chunks []Chunk
	Data   []byte
	// NoData omits the data chunk.
	NoData bool
	// Trailer chunks are written after the data chunk.
	Trailer []Chunk
}

// Bytes serialises the file.
func (w WAV) Bytes() []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	blockAlign := w.Channels * (w.BitsPerSample / 8)
	byteRate := w.SampleRate * uint32(blockAlign)

	fmtChunk := new(bytes.Buffer)
	tag := w.FormatTag
	if w.Extensible {
		tag = FormatExtensible
	}
	binary.Write(fmtChunk, binary.LittleEndian, tag)
	binary.Write(fmtChunk, binary.LittleEndian, w.Channels)
	binary.Write(fmtChunk, binary.LittleEndian, w.SampleRate)
	binary.Write(fmtChunk, binary.LittleEndian, byteRate)
	binary.Write(fmtChunk, binary.LittleEndian, blockAlign)
	binary.Write(fmtChunk, binary.LittleEndian, w.BitsPerSample)
	if w.Extensible {
		binary.Write(fmtChunk, binary.LittleEndian, uint16(22))         // cbSize
		binary.Write(fmtChunk, binary.LittleEndian, w.BitsPerSample)    // valid bits
		binary.Write(fmtChunk, binary.LittleEndian, uint32(0))          // channel mask
		binary.Write(fmtChunk, binary.LittleEndian, w.FormatTag)        // sub-format GUID
		fmtChunk.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})
	}
	writeChunk(body, "fmt ", fmtChunk.Bytes())

	for _, c := range w.Chunks {
		writeChunk(body, c.ID, c.Data)
	}

	if !w.NoData {
		writeChunk(body, "data", w.Data)
	}

	for _, c := range w.Trailer {
		writeChunk(body, c.ID, c.Data)
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func writeChunk(buf *bytes.Buffer, id string, data []byte) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// PCM16 builds a 16-bit integer WAV file.
func PCM16(sampleRate, channels int, samples []int16) []byte {
	return WAV{
		FormatTag:     FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 16,
		Data:          Int16LE(samples),
	}.Bytes()
}

// PCM32 builds a 32-bit integer WAV file.
func PCM32(sampleRate, channels int, samples []int32) []byte {
	return WAV{
		FormatTag:     FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 32,
		Data:          Int32LE(samples),
	}.Bytes()
}

// Float32 builds a 32-bit IEEE float WAV file.
func Float32(sampleRate, channels int, samples []float32) []byte {
	return WAV{
		FormatTag:     FormatIEEEFloat,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 32,
		Data:          Float32LE(samples),
	}.Bytes()
}

// Float64 builds a 64-bit IEEE float WAV file.
func Float64(sampleRate, channels int, samples []float64) []byte {
	return WAV{
		FormatTag:     FormatIEEEFloat,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 64,
		Data:          Float64LE(samples),
	}.Bytes()
}

func Int16LE(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Int24LE packs the low 24 bits of each sample.
func Int24LE(samples []int32) []byte {
	out := make([]byte, 3*len(samples))
	for i, s := range samples {
		out[3*i] = byte(s)
		out[3*i+1] = byte(s >> 8)
		out[3*i+2] = byte(s >> 16)
	}
	return out
}

func Int32LE(samples []int32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}
	return out
}

func Float32LE(samples []float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(s))
	}
	return out
}

func Float64LE(samples []float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(s))
	}
	return out
}

// AIFF builds an uncompressed AIFF file with the go-audio encoder.
func AIFF(sampleRate, channels, bitDepth int, samples []int) []byte {
	ws := &writerseeker.WriterSeeker{}
	enc := aiff.NewEncoder(ws, sampleRate, bitDepth, channels)

	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		panic(err)
	}
	if err := enc.Close(); err != nil {
		panic(err)
	}

	out, err := io.ReadAll(ws.Reader())
	if err != nil {
		panic(err)
	}

	return out
}

// AIFF16 builds a 16-bit AIFF file.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return AIFF(sampleRate, channels, 16, data)
}
