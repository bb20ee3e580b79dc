package coverletter

import (
	"errors"
	"fmt"

	"coverletter-backend/internal/extract"
)

var (
	ErrMissingFile      = errors.New("a resume file is required for preview")
	ErrMalformedDate    = errors.New("malformed letter date")
	ErrGenerationFailed = errors.New("cover letter generation failed")
)

// DateError reports a letter_date that is not YYYY-MM-DD.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid letter_date %q: expected YYYY-MM-DD", e.Value)
}

func (e *DateError) Unwrap() []error {
	return []error{ErrMalformedDate, e.Err}
}

// GenerationError wraps a failure of the text generation service. Its message is the
// service's own error text.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return ErrGenerationFailed.Error()
	}
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGenerationFailed}
	}
	return []error{ErrGenerationFailed, e.Err}
}

// ExtractionMessage is the user-facing message for an extraction error.
func ExtractionMessage(err error) string {
	var xerr *extract.Error
	if !errors.As(err, &xerr) {
		return "Could not extract any text from the uploaded file."
	}
	switch {
	case errors.Is(xerr.Kind, extract.ErrUnsupportedFormat):
		return "Unsupported file format. Please upload a PDF, DOCX, or TXT file."
	case errors.Is(xerr.Kind, extract.ErrExtractionFailed):
		switch xerr.Format {
		case extract.FormatPDF:
			return "Error processing PDF: " + xerr.Cause()
		case extract.FormatDOCX:
			return "Error processing DOCX file: " + xerr.Cause()
		case extract.FormatTXT:
			return "Error processing text file: " + xerr.Cause()
		}
	case errors.Is(xerr.Kind, extract.ErrEmptyExtraction):
		switch xerr.Format {
		case extract.FormatPDF:
			return "Could not extract text from PDF. The file may be corrupted or password-protected."
		case extract.FormatDOCX:
			return "Could not extract text from DOCX file."
		}
	}
	return "Could not extract any text from the uploaded file."
}
