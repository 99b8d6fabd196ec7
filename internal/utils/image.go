package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// ResizeAvatar decodes an uploaded avatar, downscales it to fit within
// maxWidth x maxHeight (keeping aspect ratio, never upscaling) and
// re-encodes it in its original format. Returns the encoded bytes and
// the file extension to store under.
func ResizeAvatar(r io.Reader, filename string, maxWidth, maxHeight uint) ([]byte, string, error) {
	img, format, err := decodeImage(r, filename)
	if err != nil {
		return nil, "", err
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width > maxWidth || height > maxHeight {
		img = resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	default:
		format = "jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), format, nil
}

func decodeImage(r io.Reader, filename string) (image.Image, string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(r)
		return img, "jpg", err
	case ".png":
		img, err := png.Decode(r)
		return img, "png", err
	default:
		return nil, "", ErrUnsupportedImage
	}
}
