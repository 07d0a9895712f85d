// Package codec is the boundary to external image codecs.  The core
// consumes from it only flat pixel sequences plus dimensions; the codecs
// themselves are the standard library and golang.org/x/image.
package codec

import (
	"context"
	"image"
	"io"
	"net/http"
	"sync"
)

// Format identifies an image codec.
type Format string

const (
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatWebP    Format = "webp"
	FormatUnknown Format = "unknown"
)

// Decoder converts raw bytes from a reader into a decoded stdlib image.
type Decoder interface {
	Decode(ctx context.Context, r io.Reader) (Decoded, error)
	CanDecode(format Format) bool
}

// Decoded carries a decoded stdlib image; bridge.go converts it to owned
// buffers.
type Decoded struct {
	Image  image.Image
	Format Format
}

// Encoder serialises a stdlib image to a writer in its target format.
type Encoder interface {
	Encode(ctx context.Context, w io.Writer, img image.Image, quality int) error
	CanEncode(format Format) bool
}

// Registry maps Format values to Decoder/Encoder implementations.  It is
// safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[Format]Decoder
	encoders map[Format]Encoder
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[Format]Decoder),
		encoders: make(map[Format]Encoder),
	}
}

// NewDefaultRegistry returns a Registry with the built-in PNG, JPEG and
// WebP codecs registered (WebP is decode-only; x/image carries no encoder).
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterDecoder(FormatPNG, NewPNGDecoder())
	r.RegisterDecoder(FormatJPEG, NewJPEGDecoder())
	r.RegisterDecoder(FormatWebP, NewWebPDecoder())
	r.RegisterEncoder(FormatPNG, NewPNGEncoder())
	r.RegisterEncoder(FormatJPEG, NewJPEGEncoder())
	return r
}

func (r *Registry) RegisterDecoder(f Format, d Decoder) {
	r.mu.Lock()
	r.decoders[f] = d
	r.mu.Unlock()
}

func (r *Registry) RegisterEncoder(f Format, e Encoder) {
	r.mu.Lock()
	r.encoders[f] = e
	r.mu.Unlock()
}

func (r *Registry) DecoderFor(f Format) (Decoder, bool) {
	r.mu.RLock()
	d, ok := r.decoders[f]
	r.mu.RUnlock()
	return d, ok
}

func (r *Registry) EncoderFor(f Format) (Encoder, bool) {
	r.mu.RLock()
	e, ok := r.encoders[f]
	r.mu.RUnlock()
	return e, ok
}

// DetectFormat sniffs the leading bytes of data and returns the format.
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}
	// JPEG: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return FormatJPEG
	}
	// PNG: 89 50 4E 47
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return FormatPNG
	}
	// WebP: RIFF....WEBP
	if len(data) >= 12 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return FormatWebP
	}
	// Fallback to net/http sniffing.
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return FormatJPEG
	case "image/png":
		return FormatPNG
	case "image/webp":
		return FormatWebP
	}
	return FormatUnknown
}
