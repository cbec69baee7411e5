package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

type WebPOptions struct {
	MaxWidth int
	Quality  float32
}

// IsConvertibleImage sniffs the first bytes for JPEG or PNG.
func IsConvertibleImage(head []byte) bool {
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	return ct == "image/jpeg" || ct == "image/png"
}

/* =======================================================================
   decode → resize (optional) → encode webp
======================================================================= */

func ConvertToWebP(data []byte, opts WebPOptions) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	q := opts.Quality
	if q <= 0 {
		q = 85
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// WebPName swaps the extension of a filename for .webp.
func WebPName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
}
