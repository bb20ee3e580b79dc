// Package resumeinfo recognizes personal and career fields in plain resume text.
package resumeinfo

// ResumeInfo holds the fields recognized in a resume. Missing fields are empty strings.
type ResumeInfo struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
}

// IsEmpty reports whether no field was recognized.
func (r ResumeInfo) IsEmpty() bool {
	return r == ResumeInfo{}
}
