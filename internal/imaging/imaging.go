// Package imaging decodes uploaded images and scales them into bounded PNGs.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	// Registered decoders for uploaded logos
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
)

// ErrUnsupportedType is returned for content types outside AllowedContentTypes
var ErrUnsupportedType = errors.New("unsupported image type")

// ErrInvalidImage is returned when the payload cannot be decoded
var ErrInvalidImage = errors.New("invalid image data")

// AllowedContentTypes lists the content types accepted for uploads
var AllowedContentTypes = []string{"image/jpg", "image/jpeg", "image/gif", "image/png"}

// PNGContentType is the content type of every encoded result
const PNGContentType = "image/png"

// DefaultMaxPixels bounds the declared width x height of an upload
const DefaultMaxPixels = 25_000_000

// CheckContentType validates a declared upload content type. Parameters such as charset are ignored.
func CheckContentType(contentType string) error {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, allowed := range AllowedContentTypes {
		if mediaType == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
}

// Decode reads an image in any registered format. The header is checked first and images
// declaring more than maxPixels pixels are rejected before any pixel buffer is allocated.
// A maxPixels of zero or less selects DefaultMaxPixels.
func Decode(r io.Reader, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrInvalidImage, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidImage, cfg.Width, cfg.Height, maxPixels)
	}

	img, _, err := image.Decode(io.MultiReader(&header, r))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// FitWithin returns the target size for a width x height image bounded by maxWidth x maxHeight.
// Each axis is clamped independently and never grows.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	return min(width, maxWidth), min(height, maxHeight)
}

// Resize scales img into the bounds computed by FitWithin. Images already inside the bounds are returned as is.
func Resize(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := FitWithin(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// EncodePNG encodes img as PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail validates, decodes, bounds and re-encodes an upload as PNG
func Thumbnail(contentType string, r io.Reader, maxWidth, maxHeight, maxPixels int) ([]byte, error) {
	if err := CheckContentType(contentType); err != nil {
		return nil, err
	}
	img, err := Decode(r, maxPixels)
	if err != nil {
		return nil, err
	}
	return EncodePNG(Resize(img, maxWidth, maxHeight))
}
