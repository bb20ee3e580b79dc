package coverletter

import (
	"strings"

	"coverletter-backend/internal/resumeinfo"
)

// FormFields are the values posted by the cover letter form. Unknown fields, including
// the anti-forgery token, are ignored.
type FormFields struct {
	FullName       string `form:"full_name"`
	Email          string `form:"email"`
	Phone          string `form:"phone"`
	Address        string `form:"address"`
	JobTitle       string `form:"job_title"`
	CompanyName    string `form:"company_name"`
	HiringManager  string `form:"hiring_manager"`
	CompanyAddress string `form:"company_address"`
	LetterDate     string `form:"letter_date"`
	Skills         string `form:"skills"`
	Experience     string `form:"experience"`
	Mode           string `form:"mode"`
}

// IsBlank reports whether every text field is empty after trimming. Mode is not a text field.
func (f FormFields) IsBlank() bool {
	for _, v := range []string{
		f.FullName, f.Email, f.Phone, f.Address,
		f.JobTitle, f.CompanyName, f.HiringManager, f.CompanyAddress,
		f.LetterDate, f.Skills, f.Experience,
	} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// GenerationRequest is the merged view used to build the prompt.
type GenerationRequest struct {
	FullName       string
	Email          string
	Phone          string
	Address        string
	JobTitle       string
	CompanyName    string
	HiringManager  string
	CompanyAddress string
	LetterDate     string // formatted, "" when not provided
	Skills         string
	Experience     string
	CVText         string
}

// Merge combines form values with the fields recognized in the resume. A non-empty form
// value wins over the resume value.
func Merge(form FormFields, info resumeinfo.ResumeInfo) GenerationRequest {
	return GenerationRequest{
		FullName:       pick(form.FullName, info.FullName),
		Email:          pick(form.Email, info.Email),
		Phone:          pick(form.Phone, info.Phone),
		Address:        pick(form.Address, info.Address),
		JobTitle:       strings.TrimSpace(form.JobTitle),
		CompanyName:    strings.TrimSpace(form.CompanyName),
		HiringManager:  strings.TrimSpace(form.HiringManager),
		CompanyAddress: strings.TrimSpace(form.CompanyAddress),
		Skills:         pick(form.Skills, info.Skills),
		Experience:     pick(form.Experience, info.Experience),
	}
}

func pick(formValue, cvValue string) string {
	if v := strings.TrimSpace(formValue); v != "" {
		return v
	}
	return cvValue
}
