package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/telemetry"
)

// Format is a supported upload format, named by its file extension.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

// Input is an uploaded document held in memory.
type Input struct {
	FileName    string
	ContentType string
	Data        []byte
}

// FormatFromFileName returns the format named by the final dot-segment of name.
func FormatFromFileName(name string) (Format, error) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "", &Error{Format: Format(""), Kind: ErrUnsupportedFormat}
	}
	ext := Format(strings.ToLower(strings.TrimSpace(name[idx+1:])))
	switch ext {
	case FormatPDF, FormatDOCX, FormatTXT:
		return ext, nil
	default:
		return "", &Error{Format: ext, Kind: ErrUnsupportedFormat}
	}
}

// Text extracts plain text from an uploaded document, choosing the parser by file extension.
func Text(ctx context.Context, in Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fields := map[string]any{
		"file_name":     in.FileName,
		"content_type":  in.ContentType,
		"detected_mime": mimetype.Detect(in.Data).String(),
		"bytes":         len(in.Data),
	}

	format, err := FormatFromFileName(in.FileName)
	if err != nil {
		telemetry.Warn("extract.unsupported", fields)
		metrics.IncExtraction("unsupported", "unsupported")
		return "", err
	}
	fields["format"] = string(format)
	telemetry.Debug("extract.attempt", fields)

	text, err := FromBytes(in.Data, format)
	if err != nil {
		fields["err"] = err
		outcome := "failed"
		if errors.Is(err, ErrEmptyExtraction) {
			outcome = "empty"
		}
		telemetry.Warn("extract.failed", fields)
		metrics.IncExtraction(string(format), outcome)
		return "", err
	}

	fields["text_length"] = len(text)
	telemetry.Info("extract.complete", fields)
	metrics.IncExtraction(string(format), "success")
	return text, nil
}

// FromBytes extracts text from data of a known format.
func FromBytes(data []byte, format Format) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatTXT:
		text, err = decodeText(data)
	default:
		return "", &Error{Format: format, Kind: ErrUnsupportedFormat}
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &Error{Format: format, Kind: ErrEmptyExtraction}
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = failed(FormatPDF, fmt.Errorf("malformed pdf: %v", rec))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", failed(FormatPDF, err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", failed(FormatPDF, fmt.Errorf("page %d: %w", i, err))
		}
		buf.WriteString(pageText)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", failed(FormatDOCX, errors.New("empty docx data"))
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", failed(FormatDOCX, err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", failed(FormatDOCX, err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks word/document.xml and returns the text of each w:p in order.
func docxParagraphs(raw string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var (
		paragraphs []string
		current    strings.Builder
		inPara     int
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if inPara == 0 {
					current.Reset()
				}
				inPara++
			case "t":
				inText = true
			case "tab":
				if inPara > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if inPara > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara > 0 {
					inPara--
				}
				if inPara == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && inPara > 0 {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}

// decodeText decodes UTF-8 (or BOM-marked UTF-16) bytes and drops undecodable sequences.
func decodeText(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", failed(FormatTXT, err)
	}
	if !utf8.Valid(out) {
		out = bytes.ToValidUTF8(out, nil)
	}
	return strings.ReplaceAll(string(out), string(utf8.RuneError), ""), nil
}
