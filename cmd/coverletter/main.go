package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"coverletter-backend/internal/bootstrap"
	"coverletter-backend/internal/coverletter"
	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/shared/config"
	"coverletter-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx or txt)")
	mode := flag.String("mode", "", "preview or generate (inferred when empty)")
	outPath := flag.String("out", "", "Path to write the JSON result (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider (gemini or placeholder)")
	model := flag.String("model", cfg.GeminiModel, "Gemini model")
	logLevel := flag.String("log-level", "warn", "Log level")

	var form coverletter.FormFields
	flag.StringVar(&form.FullName, "full-name", "", "Applicant full name")
	flag.StringVar(&form.Email, "email", "", "Applicant email")
	flag.StringVar(&form.Phone, "phone", "", "Applicant phone")
	flag.StringVar(&form.Address, "address", "", "Applicant address")
	flag.StringVar(&form.JobTitle, "job-title", "", "Job title")
	flag.StringVar(&form.CompanyName, "company", "", "Company name")
	flag.StringVar(&form.HiringManager, "hiring-manager", "", "Hiring manager")
	flag.StringVar(&form.CompanyAddress, "company-address", "", "Company address")
	flag.StringVar(&form.LetterDate, "date", "", "Letter date, YYYY-MM-DD")
	flag.StringVar(&form.Skills, "skills", "", "Skills")
	flag.StringVar(&form.Experience, "experience", "", "Experience")
	flag.Parse()

	if err := telemetry.Init(cfg.Env, *logLevel); err != nil {
		exitErr(fmt.Sprintf("init logger: %v", err))
	}
	defer telemetry.Sync()

	var file *extract.Input
	if strings.TrimSpace(*resumePath) != "" {
		data, err := os.ReadFile(*resumePath)
		if err != nil {
			exitErr(fmt.Sprintf("read resume: %v", err))
		}
		file = &extract.Input{
			FileName:    filepath.Base(*resumePath),
			ContentType: mimetype.Detect(data).String(),
			Data:        data,
		}
	}

	resolved, err := coverletter.ResolveMode(*mode, file != nil, form)
	if err != nil {
		exitErr(err.Error())
	}

	ctx := context.Background()
	var result map[string]any

	switch resolved {
	case coverletter.ModePreview:
		if file == nil {
			exitErr("resume path is required for preview")
		}
		svc := coverletter.NewService(nil)
		info, err := svc.Preview(ctx, file)
		if err != nil {
			exitErr(coverletter.ExtractionMessage(err))
		}
		result = map[string]any{"status": "success", "cv_info": info}
	default:
		cfg.LLMProvider = *provider
		cfg.GeminiModel = *model
		gen, err := bootstrap.NewGenerator(ctx, cfg)
		if err != nil {
			exitErr(err.Error())
		}
		letter, err := coverletter.NewService(gen).Generate(ctx, coverletter.GenerationInput{Form: form, File: file})
		if err != nil {
			exitErr(err.Error())
		}
		result = map[string]any{
			"status":       "success",
			"cover_letter": letter.CoverLetter,
			"cv_info":      letter.CVInfo,
		}
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}
	pretty = append(pretty, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
