// Package anonymize produces output-only copies of CV records with
// personally identifying contact fields replaced.
package anonymize

import (
	"strings"
	"unicode"

	"smartcv/internal/types"
)

// CompanyContact holds the fixed replacement values for the candidate's
// contact fields. Values come from process configuration, never from the
// record itself.
type CompanyContact struct {
	Phone string
	Email string
}

// Anonymize returns an independent copy of the record with the name reduced
// to initials and phone/email replaced by the company contact. Every other
// field is copied unchanged. The input record is never mutated.
func Anonymize(rec types.CVRecord, contact CompanyContact) types.CVRecord {
	out := rec.Clone()
	out.PersonalInfo.Name = Initials(rec.PersonalInfo.Name)
	out.PersonalInfo.Phone = contact.Phone
	out.PersonalInfo.Email = contact.Email
	return out
}

// Initials reduces a full name to its initials form: "Ousmane SY" becomes
// "O. S." (first and last word), a single word becomes "O.", and an empty
// name stays empty.
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return upperFirst(parts[0]) + "."
	default:
		return upperFirst(parts[0]) + ". " + upperFirst(parts[len(parts)-1]) + "."
	}
}

// upperFirst returns the uppercased first rune of a word.
func upperFirst(word string) string {
	for _, r := range word {
		return string(unicode.ToUpper(r))
	}
	return ""
}
