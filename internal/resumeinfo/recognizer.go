package resumeinfo

import (
	"regexp"
	"strings"

	"coverletter-backend/internal/shared/telemetry"
)

var (
	emailPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_.-]+@[\p{L}\p{M}\p{N}_.-]+\.[\p{L}\p{M}\p{N}_]+`)

	phonePattern = regexp.MustCompile(`(?:(?:\+\d{1,3})?[-.\s]?)?(?:\(?\d{2,3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)

	// Anchored at the start of the text, not of a line.
	namePattern = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)

	// Only lines that start with the house number; group 1 runs to the end of that line.
	addressPattern = regexp.MustCompile(`(?im)^[ \t]*(\d+(?:[ \t]+\w+)+?[ \t]+(?:` + strings.Join(streetTypes, "|") + `)\b.*)`)

	skillsHeading     = regexp.MustCompile(`(?i)skills|expertise|competencies`)
	experienceHeading = regexp.MustCompile(`(?i)experience|work history|professional experience`)
)

var streetTypes = []string{
	"Street", "St", "Avenue", "Ave", "Boulevard", "Blvd", "Road", "Rd", "Lane", "Ln",
	"Drive", "Dr", "Court", "Ct", "Square", "Sq", "Loop", "Lp", "Terrace", "Ter",
	"Place", "Pl", "Trail", "Trl", "Parkway", "Pkwy", "Commons", "Cmns",
}

// rule recognizes one field. Rules are independent; none sees another's result.
type rule struct {
	field string
	match func(text string) (string, bool)
	set   func(info *ResumeInfo, value string)
}

var rules = []rule{
	{field: "email", match: firstMatch(emailPattern), set: func(i *ResumeInfo, v string) { i.Email = v }},
	{field: "phone", match: trimmed(firstMatch(phonePattern)), set: func(i *ResumeInfo, v string) { i.Phone = v }},
	{field: "full_name", match: firstMatch(namePattern), set: func(i *ResumeInfo, v string) { i.FullName = v }},
	{field: "address", match: trimmed(firstGroup(addressPattern)), set: func(i *ResumeInfo, v string) { i.Address = v }},
	{field: "skills", match: section(skillsHeading), set: func(i *ResumeInfo, v string) { i.Skills = v }},
	{field: "experience", match: section(experienceHeading), set: func(i *ResumeInfo, v string) { i.Experience = v }},
}

// Recognize applies every rule to text and never fails: a panicking rule yields an
// all-empty record.
func Recognize(text string) (info ResumeInfo) {
	if text == "" {
		return ResumeInfo{}
	}
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("resumeinfo.recognize.panic", map[string]any{
				"error":       rec,
				"text_length": len(text),
			})
			info = ResumeInfo{}
		}
	}()

	for _, r := range rules {
		if value, ok := r.match(text); ok {
			r.set(&info, value)
		}
	}
	return info
}

// Fields returns the record as an ordered list of name/value pairs.
func (r ResumeInfo) Fields() [][2]string {
	return [][2]string{
		{"full_name", r.FullName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
		{"skills", r.Skills},
		{"experience", r.Experience},
	}
}

// RecognizedFields lists the names of the non-empty fields.
func (r ResumeInfo) RecognizedFields() []string {
	var out []string
	for _, f := range r.Fields() {
		if f[1] != "" {
			out = append(out, f[0])
		}
	}
	return out
}

func firstMatch(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		loc := re.FindStringIndex(text)
		if loc == nil {
			return "", false
		}
		return text[loc[0]:loc[1]], true
	}
}

func firstGroup(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

// trimmed drops separator characters the loose patterns pick up at either edge.
func trimmed(match func(string) (string, bool)) func(string) (string, bool) {
	return func(text string) (string, bool) {
		value, ok := match(text)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(value), true
	}
}

// section captures the text after the first heading keyword up to the next blank line
// ("\n\n") or the end of the text, trimmed.
func section(heading *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		loc := heading.FindStringIndex(text)
		if loc == nil {
			return "", false
		}
		rest := text[loc[1]:]
		if end := strings.Index(rest, "\n\n"); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest), true
	}
}
