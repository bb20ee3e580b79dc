package coverletter

import (
	"strings"
	"time"
)

const (
	inputDateLayout  = "2006-01-02"
	letterDateLayout = "January 02, 2006"
)

// FormatLetterDate turns "2024-03-05" into "March 05, 2024". An empty value stays empty.
func FormatLetterDate(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}
	t, err := time.Parse(inputDateLayout, value)
	if err != nil {
		return "", &DateError{Value: value, Err: err}
	}
	return t.Format(letterDateLayout), nil
}
