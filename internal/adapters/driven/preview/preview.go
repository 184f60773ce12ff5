// Package preview renders bounded local previews of image blobs.
//
// Images are decoded with the standard codecs plus WebP, BMP and TIFF
// from golang.org/x/image, then downscaled with Catmull-Rom. EXIF
// metadata (GPS position, camera, capture time) is read with imagemeta
// when the format carries it.
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"strings"
	"time"

	"github.com/evanoberholster/imagemeta"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/core/ports/driven"
	"github.com/custodia-labs/suneye-cli/internal/logger"
)

// Ensure Previewer implements the interface.
var _ driven.ImagePreviewer = (*Previewer)(nil)

// Metadata keys set on domain.ImagePreview.
const (
	MetaGPS    = "GPS"
	MetaCamera = "Camera"
	MetaTaken  = "Taken"
)

// DefaultMaxPixels bounds the decoded size of a source image.
const DefaultMaxPixels = 64 << 20

// Previewer decodes and scales images.
type Previewer struct {
	maxPixels int
}

// NewPreviewer creates a new image previewer.
func NewPreviewer() *Previewer {
	return &Previewer{maxPixels: DefaultMaxPixels}
}

// Preview decodes blob and scales it to fit maxWidth x maxHeight pixels.
// Images already within bounds are not upscaled.
func (p *Previewer) Preview(blob domain.Blob, maxWidth, maxHeight int) (*domain.ImagePreview, error) {
	if len(blob.Data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrPreviewUnavailable, blob.Name)
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("%w: invalid bounds %dx%d", domain.ErrPreviewUnavailable, maxWidth, maxHeight)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(blob.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrPreviewUnavailable, blob.Name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > p.maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: %s is %dx%d, over the %d pixel limit",
			domain.ErrPreviewUnavailable, blob.Name, cfg.Width, cfg.Height, p.maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(blob.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrPreviewUnavailable, blob.Name, err)
	}

	bounds := img.Bounds()
	w, h := FitDimensions(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)

	logger.Debug("Preview %s: %s %dx%d -> %dx%d", blob.Name, format, bounds.Dx(), bounds.Dy(), w, h)

	return &domain.ImagePreview{
		Name:         blob.Name,
		Format:       format,
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		Pixels:       scaled,
		Metadata:     readMetadata(blob),
	}, nil
}

// FitDimensions scales width x height to fit within maxWidth x maxHeight,
// keeping the aspect ratio. It never upscales and never returns zero.
func FitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	scale := min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	w := max(int(float64(width)*scale), 1)
	h := max(int(float64(height)*scale), 1)
	return w, h
}

// readMetadata extracts EXIF fields. Formats without EXIF yield an empty map.
func readMetadata(blob domain.Blob) map[string]string {
	meta := make(map[string]string)

	exif, err := imagemeta.Decode(bytes.NewReader(blob.Data))
	if err != nil {
		logger.Debug("No EXIF metadata in %s: %v", blob.Name, err)
		return meta
	}

	if lat, lon := exif.GPS.Latitude(), exif.GPS.Longitude(); lat != 0 || lon != 0 {
		meta[MetaGPS] = fmt.Sprintf("%.6f, %.6f", lat, lon)
	}

	camera := strings.TrimSpace(strings.TrimSpace(exif.Make) + " " + strings.TrimSpace(exif.Model))
	if camera != "" {
		meta[MetaCamera] = camera
	}

	if taken := exif.DateTimeOriginal(); !taken.IsZero() {
		meta[MetaTaken] = taken.Format(time.DateTime)
	}

	return meta
}
