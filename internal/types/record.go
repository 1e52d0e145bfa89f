// Package types provides type definitions for structured CV data used throughout the smartcv system.
package types

import "strings"

// Language identifies the language a CV record is written in.
type Language string

// Supported record languages. French is the historical default for this product.
const (
	LangFrench  Language = "fr"
	LangEnglish Language = "en"
)

// PersonalInfo holds the identity and contact block of a CV record.
type PersonalInfo struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
	PhotoPath string `json:"photo_path"`
}

// EducationEntry represents one education item on a CV.
type EducationEntry struct {
	Period  string   `json:"period"`
	Degree  string   `json:"degree"`
	School  string   `json:"school"`
	Details []string `json:"details"`
}

// ExperienceEntry represents one employment item on a CV.
type ExperienceEntry struct {
	Period  string   `json:"period"`
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Details []string `json:"details"`
}

// CVRecord is the canonical structured representation of a résumé.
// Slices preserve insertion order end to end; nothing in the system resorts them.
type CVRecord struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []string          `json:"skills"`
	Language     Language          `json:"language"`
}

// SkillGroup is one labeled category of skills, produced by the skill-grouping
// oracle. Skills is the comma-joined member list, ready for rendering.
type SkillGroup struct {
	Label  string `json:"label"`
	Skills string `json:"skills"`
}

// Clone returns a deep copy of the record. The copy shares no slice storage
// with the original, so callers may mutate one without affecting the other.
func (r CVRecord) Clone() CVRecord {
	out := r

	out.Education = make([]EducationEntry, len(r.Education))
	for i, e := range r.Education {
		e.Details = append([]string(nil), e.Details...)
		out.Education[i] = e
	}

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Details = append([]string(nil), e.Details...)
		out.Experience[i] = e
	}

	out.Skills = append([]string(nil), r.Skills...)
	return out
}

// Renderable reports whether the entry has at least one non-blank title field.
func (e EducationEntry) Renderable() bool {
	return !isBlank(e.Degree) || !isBlank(e.School)
}

// Renderable reports whether the entry has at least one non-blank title field.
func (e ExperienceEntry) Renderable() bool {
	return !isBlank(e.Role) || !isBlank(e.Company)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
