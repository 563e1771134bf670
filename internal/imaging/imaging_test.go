package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"collab-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCheckContentType(t *testing.T) {
	for _, ct := range []string{"image/jpg", "image/jpeg", "image/gif", "image/png", "IMAGE/PNG", "image/png; charset=binary"} {
		assert.NoError(t, CheckContentType(ct), ct)
	}
	for _, ct := range []string{"", "image/bmp", "text/plain", "application/pdf"} {
		err := CheckContentType(ct)
		assert.ErrorIs(t, err, ErrUnsupportedType, ct)
	}
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name                 string
		w, h, maxW, maxH     int
		expectedW, expectedH int
	}{
		{"smaller image is not upscaled", 20, 30, 50, 50, 20, 30},
		{"larger image is clamped", 200, 100, 50, 50, 50, 50},
		{"only one axis too large", 20, 100, 50, 50, 20, 50},
		{"exact bounds", 50, 50, 50, 50, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitWithin(tt.w, tt.h, tt.maxW, tt.maxH)
			assert.Equal(t, tt.expectedW, w)
			assert.Equal(t, tt.expectedH, h)
			assert.LessOrEqual(t, w, tt.maxW)
			assert.LessOrEqual(t, h, tt.maxH)
			assert.LessOrEqual(t, w, tt.w)
			assert.LessOrEqual(t, h, tt.h)
		})
	}
}

func TestResize(t *testing.T) {
	t.Run("downscales", func(t *testing.T) {
		out := Resize(solid(120, 80), 50, 50)
		assert.Equal(t, 50, out.Bounds().Dx())
		assert.Equal(t, 50, out.Bounds().Dy())
	})

	t.Run("keeps small images untouched", func(t *testing.T) {
		in := solid(10, 12)
		out := Resize(in, 50, 50)
		assert.Same(t, in, out)
	})
}

func TestThumbnail(t *testing.T) {
	t.Run("png upload", func(t *testing.T) {
		data, err := Thumbnail("image/png", bytes.NewReader(encodePNG(t, solid(100, 20))), 50, 50, 0)
		require.NoError(t, err)

		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 50, cfg.Width)
		assert.Equal(t, 20, cfg.Height)
	})

	t.Run("jpeg upload is re-encoded as png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, jpeg.Encode(&buf, solid(30, 30), nil))

		data, err := Thumbnail("image/jpeg", &buf, 50, 50, 0)
		require.NoError(t, err)

		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
	})

	t.Run("gif upload", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, gif.Encode(&buf, solid(60, 60), nil))

		data, err := Thumbnail("image/gif", &buf, 50, 50, 0)
		require.NoError(t, err)
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Width)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := Thumbnail("image/bmp", bytes.NewReader(encodePNG(t, solid(5, 5))), 50, 50, 0)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("undecodable data", func(t *testing.T) {
		_, err := Thumbnail("image/png", strings.NewReader("not an image"), 50, 50, 0)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}

func TestDecode_PixelLimit(t *testing.T) {
	t.Run("declared size above the default limit", func(t *testing.T) {
		data := testutils.PNGHeader(1_000_000, 1_000_000)
		require.Less(t, len(data), 100)

		_, err := Decode(bytes.NewReader(data), 0)
		assert.ErrorIs(t, err, ErrInvalidImage)
		assert.ErrorContains(t, err, "1000000x1000000")
	})

	t.Run("declared size above a custom limit", func(t *testing.T) {
		_, err := Decode(bytes.NewReader(encodePNG(t, solid(20, 20))), 399)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("image exactly at the limit decodes", func(t *testing.T) {
		img, err := Decode(bytes.NewReader(encodePNG(t, solid(20, 20))), 400)
		require.NoError(t, err)
		assert.Equal(t, 20, img.Bounds().Dx())
	})

	t.Run("thumbnail rejects the header before decoding", func(t *testing.T) {
		_, err := Thumbnail("image/png", bytes.NewReader(testutils.PNGHeader(1_000_000, 1_000_000)), 50, 50, 0)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}
