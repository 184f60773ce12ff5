package domain

import "image"

// ImagePreview is a locally generated, size-bounded rendition of an image payload.
type ImagePreview struct {
	// Name is the source filename.
	Name string

	// Format is the decoder name (jpeg, png, webp, ...).
	Format string

	// SourceWidth and SourceHeight are the original pixel dimensions.
	SourceWidth  int
	SourceHeight int

	// Pixels is the scaled image, at most the requested bounds.
	Pixels image.Image

	// Metadata holds optional EXIF facts such as GPS position and camera model.
	Metadata map[string]string
}

// Bounds returns the scaled dimensions.
func (p *ImagePreview) Bounds() (int, int) {
	if p == nil || p.Pixels == nil {
		return 0, 0
	}
	b := p.Pixels.Bounds()
	return b.Dx(), b.Dy()
}
