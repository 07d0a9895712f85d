package codec

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/viktorchvatal/nanocv/core"
	apperrors "github.com/viktorchvatal/nanocv/errors"
	"github.com/viktorchvatal/nanocv/utils"
)

// FromGray copies a stdlib grayscale image into an owned buffer.
func FromGray(img *image.Gray) *core.Buffer[uint8] {
	b := img.Bounds()
	size := core.NewSize(b.Dx(), b.Dy())
	dst := core.NewBuffer[uint8](size)
	for y := 0; y < size.Y; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+size.X]
		copy(dst.Row(y), src)
	}
	return dst
}

// FromImage converts any stdlib image into a grayscale buffer.
func FromImage(img image.Image) *core.Buffer[uint8] {
	if g, ok := img.(*image.Gray); ok {
		return FromGray(g)
	}
	b := img.Bounds()
	size := core.NewSize(b.Dx(), b.Dy())
	dst := core.NewBuffer[uint8](size)
	for y := 0; y < size.Y; y++ {
		row := dst.Row(y)
		for x := 0; x < size.X; x++ {
			row[x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return dst
}

// ToGray copies a buffer into a stdlib grayscale image for encoding.
func ToGray(img core.Image[uint8]) *image.Gray {
	size := img.Size()
	out := image.NewGray(image.Rect(0, 0, size.X, size.Y))
	if rr, ok := img.(core.RowReader[uint8]); ok {
		for y := 0; y < size.Y; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+size.X], rr.Row(y))
		}
		return out
	}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out.Pix[y*out.Stride+x] = img.At(x, y)
		}
	}
	return out
}

// ScaleGray resamples src to the target size with Catmull-Rom
// interpolation from golang.org/x/image/draw.
func ScaleGray(src core.Image[uint8], target core.Size) (*core.Buffer[uint8], error) {
	if target.X <= 0 || target.Y <= 0 {
		return nil, apperrors.New(apperrors.CategoryConstruct, "codec.scale", apperrors.ErrInvalidDimensions)
	}
	in := ToGray(src)
	out := image.NewGray(image.Rect(0, 0, target.X, target.Y))
	draw.CatmullRom.Scale(out, out.Bounds(), in, in.Bounds(), draw.Over, nil)
	return FromGray(out), nil
}

// DecodeGray reads an entire stream, sniffs its format, decodes it with
// the registry and converts the result to a grayscale buffer.  maxBytes
// bounds the stream length when positive.
func DecodeGray(ctx context.Context, reg *Registry, r io.Reader, maxBytes int64) (*core.Buffer[uint8], Format, error) {
	if maxBytes > 0 {
		r = &utils.LimitedReader{R: r, Max: maxBytes}
	}
	buf, err := utils.DrainReader(ctx, r, 32*1024)
	if err != nil {
		return nil, FormatUnknown, apperrors.New(apperrors.CategoryDecode, "codec.decode", err)
	}
	defer utils.ReleaseBuffer(buf)
	data := buf.Bytes()
	if len(data) == 0 {
		return nil, FormatUnknown, apperrors.New(apperrors.CategoryDecode, "codec.decode", apperrors.ErrEmptyInput)
	}
	format := DetectFormat(data)
	dec, ok := reg.DecoderFor(format)
	if !ok {
		return nil, format, apperrors.New(apperrors.CategoryDecode, "codec.decode", apperrors.ErrUnsupportedFormat)
	}
	decoded, err := dec.Decode(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, format, err
	}
	return FromImage(decoded.Image), format, nil
}

// EncodeGray serialises a grayscale buffer through the registry.
func EncodeGray(ctx context.Context, reg *Registry, w io.Writer, img core.Image[uint8], format Format, quality int) error {
	enc, ok := reg.EncoderFor(format)
	if !ok {
		return apperrors.New(apperrors.CategoryEncode, "codec.encode", apperrors.ErrUnsupportedFormat)
	}
	return enc.Encode(ctx, w, ToGray(img), quality)
}
