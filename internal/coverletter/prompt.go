package coverletter

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/tyler-sommer/stick"
)

//go:embed prompts/cover_letter.twig
var coverLetterTemplate string

// PromptBuilder renders the cover letter prompt. The output depends only on the request.
type PromptBuilder struct {
	env      *stick.Env
	template string
}

// NewPromptBuilder returns a builder for the embedded cover letter template.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{env: stick.New(nil), template: coverLetterTemplate}
}

// Build renders the prompt for req.
func (b *PromptBuilder) Build(req GenerationRequest) (string, error) {
	vars := map[string]stick.Value{
		"full_name":       req.FullName,
		"email":           req.Email,
		"phone":           req.Phone,
		"address":         req.Address,
		"job_title":       req.JobTitle,
		"company_name":    req.CompanyName,
		"hiring_manager":  req.HiringManager,
		"company_address": req.CompanyAddress,
		"letter_date":     req.LetterDate,
		"skills":          req.Skills,
		"experience":      req.Experience,
		"cv_text":         req.CVText,
	}

	var out strings.Builder
	if err := b.env.Execute(b.template, &out, vars); err != nil {
		return "", fmt.Errorf("render cover letter prompt: %w", err)
	}
	return out.String(), nil
}
