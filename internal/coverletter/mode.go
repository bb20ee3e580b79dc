package coverletter

import (
	"errors"
	"strings"
)

// Mode selects what a request to the generation endpoint produces.
type Mode string

const (
	// ModePreview extracts resume fields only.
	ModePreview Mode = "preview"
	// ModeGenerate produces a full cover letter.
	ModeGenerate Mode = "generate"
)

var ErrInvalidMode = errors.New("mode must be preview or generate")

// ParseMode normalizes a mode string. An empty string yields an empty Mode.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case string(ModePreview):
		return ModePreview, nil
	case string(ModeGenerate):
		return ModeGenerate, nil
	default:
		return "", ErrInvalidMode
	}
}

// ResolveMode picks the mode of a request. An explicit mode always wins. Without one,
// a request carrying a file and no meaningful form value is a preview.
func ResolveMode(explicit string, hasFile bool, form FormFields) (Mode, error) {
	mode, err := ParseMode(explicit)
	if err != nil {
		return "", err
	}
	if mode != "" {
		return mode, nil
	}
	if hasFile && form.IsBlank() {
		return ModePreview, nil
	}
	return ModeGenerate, nil
}
