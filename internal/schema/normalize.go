package schema

import (
	"strings"

	"smartcv/internal/types"
)

// DefaultPhotoPath is the bundled placeholder image used when a record does
// not carry its own photo.
const DefaultPhotoPath = "assets/logo.png"

// Normalize fills every missing field of a record with its default so the
// composer never sees an absent key: empty strings for personal info, the
// placeholder photo, empty slices for the collections, French as the
// language. Normalize is pure and idempotent.
func Normalize(rec types.CVRecord, photoPath string) types.CVRecord {
	out := rec.Clone()

	if photoPath == "" {
		photoPath = DefaultPhotoPath
	}
	if strings.TrimSpace(out.PersonalInfo.PhotoPath) == "" {
		out.PersonalInfo.PhotoPath = photoPath
	}

	if out.Language != types.LangEnglish {
		out.Language = types.LangFrench
	}

	for i := range out.Education {
		if out.Education[i].Details == nil {
			out.Education[i].Details = []string{}
		}
	}
	for i := range out.Experience {
		if out.Experience[i].Details == nil {
			out.Experience[i].Details = []string{}
		}
	}

	return out
}

// Filter removes everything that must never reach the composer: blank
// skills, education and experience entries lacking both title fields, and
// blank detail strings inside surviving entries. Ordering of what remains is
// preserved. Filter is pure and idempotent.
func Filter(rec types.CVRecord) types.CVRecord {
	out := rec.Clone()

	skills := make([]string, 0, len(out.Skills))
	for _, s := range out.Skills {
		if strings.TrimSpace(s) != "" {
			skills = append(skills, s)
		}
	}
	out.Skills = skills

	education := make([]types.EducationEntry, 0, len(out.Education))
	for _, e := range out.Education {
		if !e.Renderable() {
			continue
		}
		e.Details = filterDetails(e.Details)
		education = append(education, e)
	}
	out.Education = education

	experience := make([]types.ExperienceEntry, 0, len(out.Experience))
	for _, e := range out.Experience {
		if !e.Renderable() {
			continue
		}
		e.Details = filterDetails(e.Details)
		experience = append(experience, e)
	}
	out.Experience = experience

	return out
}

func filterDetails(details []string) []string {
	out := make([]string, 0, len(details))
	for _, d := range details {
		if strings.TrimSpace(d) != "" {
			out = append(out, d)
		}
	}
	return out
}
