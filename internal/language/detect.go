// Package language detects whether résumé text is written in French or English.
package language

import (
	"strings"

	"smartcv/internal/types"
)

var frenchKeywords = wordSet(
	"le", "la", "les", "des", "une", "un", "de", "du", "et", "ou", "avec", "pour", "sur", "dans",
	"entreprise", "compétences", "expérience", "formation", "diplôme", "poste", "responsable",
	"gestion", "développement", "projet", "équipe", "année", "années", "mois", "depuis",
	"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre",
	"octobre", "novembre", "décembre", "actuellement", "présent",
)

var englishKeywords = wordSet(
	"the", "a", "an", "and", "or", "with", "for", "at", "in", "on", "to", "of",
	"experience", "skills", "education", "summary", "degree", "position", "manager",
	"development", "project", "team", "year", "years", "month", "months", "since",
	"january", "february", "march", "april", "may", "june", "july", "august", "september",
	"october", "november", "december", "currently", "present",
)

// Detect scores the text against French and English marker words and returns
// the winning language. Ties and texts with no markers default to French.
func Detect(text string) types.Language {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}

	var frScore, enScore int
	for w := range words {
		if _, ok := frenchKeywords[w]; ok {
			frScore++
		}
		if _, ok := englishKeywords[w]; ok {
			enScore++
		}
	}

	if enScore > frScore {
		return types.LangEnglish
	}
	return types.LangFrench
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
