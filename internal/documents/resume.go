package documents

import "strings"

// WorkExperience is one employment entry on a résumé.
type WorkExperience struct {
	ID            string `json:"id"`
	JobTitle      string `json:"jobTitle"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	IsCurrentRole bool   `json:"isCurrentRole"`
	Description   string `json:"description"`
}

// Education is one degree entry on a résumé.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	School         string `json:"school"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
}

// Language is a spoken-language entry with a proficiency level.
type Language struct {
	ID          string `json:"id"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=Native Fluent Advanced Intermediate Basic"`
}

// Resume holds the validated résumé form as submitted by the browser.
// The form itself is client-held only; it is never persisted server-side.
type Resume struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedIn"`
	Portfolio string `json:"portfolio"`

	Summary string `json:"summary"`

	WorkExperience []WorkExperience `json:"workExperience" validate:"dive"`
	Education      []Education      `json:"education" validate:"dive"`
	Skills         string           `json:"skills"`
	Languages      []Language       `json:"languages" validate:"dive"`
}

// HasWorkExperience reports whether any entry carries a title or company.
// Blank placeholder rows from the form editor are skipped when rendering.
func (r *Resume) HasWorkExperience() bool {
	for _, exp := range r.WorkExperience {
		if exp.JobTitle != "" || exp.Company != "" {
			return true
		}
	}
	return false
}

// HasEducation reports whether any entry carries a degree or school.
func (r *Resume) HasEducation() bool {
	for _, edu := range r.Education {
		if edu.Degree != "" || edu.School != "" {
			return true
		}
	}
	return false
}

// HasSkills reports whether the skills free-text field is non-blank.
func (r *Resume) HasSkills() bool {
	return strings.TrimSpace(r.Skills) != ""
}

// HasLanguages reports whether any language entry is filled in.
func (r *Resume) HasLanguages() bool {
	for _, lang := range r.Languages {
		if lang.Language != "" {
			return true
		}
	}
	return false
}

// FileSlug derives a filesystem-safe fragment of the candidate name for
// the downloaded attachment filename.
func (r *Resume) FileSlug() string {
	slug := strings.ToLower(strings.TrimSpace(r.FullName))
	slug = strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return c
		case c == ' ' || c == '-' || c == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	if slug == "" {
		return "resume"
	}
	return slug
}
