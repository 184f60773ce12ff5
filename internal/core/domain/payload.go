package domain

import "strings"

// Blob is an opaque binary payload with the filename it was selected under.
// No MIME type is enforced at this layer.
type Blob struct {
	// Name is the filename sent with the multipart part.
	Name string

	// Data is the raw content.
	Data []byte

	// Path is where the blob was loaded from. Display only.
	Path string
}

// Size returns the blob length in bytes.
func (b *Blob) Size() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// present reports whether the blob counts as selected.
func (b *Blob) present() bool {
	return b != nil && b.Name != ""
}

// InputFields holds the raw values of all three input cards.
// Each mode reads only its own fields.
type InputFields struct {
	Latitude  string
	Longitude string
	File      *Blob
	Image     *Blob
}

// Ready reports whether every required field of the given mode is present.
// Other modes' fields are never consulted.
func (f InputFields) Ready(mode InputMode) bool {
	switch mode {
	case InputModeCoordinates:
		return strings.TrimSpace(f.Latitude) != "" && strings.TrimSpace(f.Longitude) != ""
	case InputModeFile:
		return f.File.present()
	case InputModeImage:
		return f.Image.present()
	default:
		return false
	}
}

// Payload is the mode-specific content of an Envelope.
// It is implemented only by CoordinatePayload, FilePayload and ImagePayload.
type Payload interface {
	Mode() InputMode
	payload()
}

// CoordinatePayload carries a latitude/longitude pair as entered.
// Range validation is left to the analysis service.
type CoordinatePayload struct {
	Latitude  string
	Longitude string
}

// Mode implements Payload.
func (CoordinatePayload) Mode() InputMode { return InputModeCoordinates }
func (CoordinatePayload) payload()        {}

// FilePayload carries a single spreadsheet.
type FilePayload struct {
	File Blob
}

// Mode implements Payload.
func (FilePayload) Mode() InputMode { return InputModeFile }
func (FilePayload) payload()        {}

// ImagePayload carries a single image.
type ImagePayload struct {
	Image Blob
}

// Mode implements Payload.
func (ImagePayload) Mode() InputMode { return InputModeImage }
func (ImagePayload) payload()        {}

// Envelope is the validated, ready-to-send payload for exactly one input mode.
type Envelope struct {
	Mode    InputMode
	Payload Payload
}

// Coordinates returns the coordinate payload, if this envelope carries one.
func (e Envelope) Coordinates() (CoordinatePayload, bool) {
	p, ok := e.Payload.(CoordinatePayload)
	return p, ok
}

// File returns the file payload, if this envelope carries one.
func (e Envelope) File() (FilePayload, bool) {
	p, ok := e.Payload.(FilePayload)
	return p, ok
}

// Image returns the image payload, if this envelope carries one.
func (e Envelope) Image() (ImagePayload, bool) {
	p, ok := e.Payload.(ImagePayload)
	return p, ok
}

// Valid reports whether the envelope is internally consistent.
func (e Envelope) Valid() bool {
	return e.Payload != nil && e.Mode.IsValid() && e.Payload.Mode() == e.Mode
}

// Describe returns a short human-readable summary of the envelope.
func (e Envelope) Describe() string {
	switch p := e.Payload.(type) {
	case CoordinatePayload:
		return "lat " + p.Latitude + ", lon " + p.Longitude
	case FilePayload:
		return p.File.Name
	case ImagePayload:
		return p.Image.Name
	default:
		return unknownDescription
	}
}
