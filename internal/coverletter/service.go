// Package coverletter turns an optional resume upload and form fields into either a
// preview of the recognized resume fields or a generated cover letter.
package coverletter

import (
	"context"
	"errors"
	"time"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/resumeinfo"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/telemetry"
	"coverletter-backend/internal/shared/util"
)

// Service runs one request at a time through extraction, recognition and generation.
// It holds no per-request state.
type Service struct {
	Generator llm.Generator
	Sampling  llm.SamplingConfig
	Prompts   *PromptBuilder
}

// NewService constructs a Service with the cover letter sampling configuration.
func NewService(gen llm.Generator) *Service {
	return &Service{
		Generator: gen,
		Sampling:  llm.CoverLetterSampling(),
		Prompts:   NewPromptBuilder(),
	}
}

// GenerationInput is a generation-mode request. File is nil when nothing was uploaded.
type GenerationInput struct {
	Form FormFields
	File *extract.Input
}

// Letter is a generated cover letter plus the fields recognized in the resume.
type Letter struct {
	CoverLetter string
	CVInfo      resumeinfo.ResumeInfo
}

// Preview extracts and recognizes resume fields. Extraction errors are returned as-is.
func (s *Service) Preview(ctx context.Context, file *extract.Input) (resumeinfo.ResumeInfo, error) {
	if file == nil {
		return resumeinfo.ResumeInfo{}, ErrMissingFile
	}
	text, err := extract.Text(ctx, *file)
	if err != nil {
		return resumeinfo.ResumeInfo{}, err
	}
	info := resumeinfo.Recognize(text)
	telemetry.Info("coverletter.preview", map[string]any{
		"file_name":         file.FileName,
		"text_length":       len(text),
		"recognized_fields": info.RecognizedFields(),
	})
	return info, nil
}

// Generate builds the prompt from the merged request and calls the generator. A file that
// cannot be read is logged and skipped; the letter is then built from form data only.
func (s *Service) Generate(ctx context.Context, in GenerationInput) (Letter, error) {
	if s.Generator == nil {
		return Letter{}, &GenerationError{Err: errors.New("text generation is not configured")}
	}

	var (
		cvText string
		info   resumeinfo.ResumeInfo
	)
	if in.File != nil {
		text, err := extract.Text(ctx, *in.File)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Letter{}, ctxErr
			}
			telemetry.Warn("coverletter.extract.skipped", map[string]any{
				"file_name": in.File.FileName,
				"error":     err,
			})
		} else {
			cvText = text
			info = resumeinfo.Recognize(text)
		}
	}

	req := Merge(in.Form, info)
	req.CVText = cvText

	date, err := FormatLetterDate(in.Form.LetterDate)
	if err != nil {
		return Letter{}, err
	}
	req.LetterDate = date

	builder := s.Prompts
	if builder == nil {
		builder = NewPromptBuilder()
	}
	prompt, err := builder.Build(req)
	if err != nil {
		return Letter{}, err
	}

	fields := map[string]any{
		"prompt_length":      len(prompt),
		"prompt_fingerprint": util.Fingerprint(prompt),
		"cv_text_length":     len(cvText),
	}
	telemetry.Info("coverletter.generate.start", fields)

	start := time.Now()
	text, err := s.Generator.Generate(ctx, prompt, s.Sampling)
	elapsed := time.Since(start)
	metrics.ObserveGenerationSeconds(elapsed.Seconds())
	fields["duration_ms"] = elapsed.Milliseconds()
	if err != nil {
		fields["error"] = err
		telemetry.Error("coverletter.generate.failed", fields)
		return Letter{}, &GenerationError{Err: err}
	}

	fields["letter_length"] = len(text)
	telemetry.Info("coverletter.generate.complete", fields)
	return Letter{CoverLetter: text, CVInfo: info}, nil
}
