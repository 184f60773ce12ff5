package domain

import "strings"

// InputMode identifies one of the three mutually exclusive submission kinds.
// The empty value means "absent" and only appears inside PageState.
type InputMode string

// Available input modes.
const (
	// InputModeCoordinates submits a latitude/longitude pair.
	InputModeCoordinates InputMode = "coordinates"

	// InputModeFile submits a spreadsheet of sample locations.
	InputModeFile InputMode = "file"

	// InputModeImage submits a single image.
	InputModeImage InputMode = "image"
)

// IsValid returns true if the input mode is recognised.
func (m InputMode) IsValid() bool {
	switch m {
	case InputModeCoordinates, InputModeFile, InputModeImage:
		return true
	default:
		return false
	}
}

// WireName returns the value of the input_type discriminator sent to the
// analysis service.
func (m InputMode) WireName() string {
	switch m {
	case InputModeCoordinates:
		return "text"
	case InputModeFile:
		return "file"
	case InputModeImage:
		return "image"
	default:
		return ""
	}
}

// String returns the string representation.
func (m InputMode) String() string {
	return string(m)
}

// Description returns a human-readable label for the mode.
func (m InputMode) Description() string {
	switch m {
	case InputModeCoordinates:
		return "Text Input (coordinates)"
	case InputModeFile:
		return "File Input (spreadsheet)"
	case InputModeImage:
		return "Image Input"
	default:
		return unknownDescription
	}
}

// ParseInputMode accepts either the mode name or its wire name.
func ParseInputMode(s string) (InputMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coordinates", "text":
		return InputModeCoordinates, true
	case "file":
		return InputModeFile, true
	case "image":
		return InputModeImage, true
	default:
		return "", false
	}
}

// AllInputModes returns the input modes in display order.
func AllInputModes() []InputMode {
	return []InputMode{
		InputModeCoordinates,
		InputModeFile,
		InputModeImage,
	}
}
