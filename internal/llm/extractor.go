package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smartcv/internal/schema"
	"smartcv/internal/types"
)

// maxExtractionInput caps the résumé text sent to the model.
const maxExtractionInput = 100000

// ExtractRecord asks the model to convert raw résumé text into a structured
// CV record in the target language. The response is decoded and validated
// through the schema package, so a model that returns garbage surfaces as a
// MalformedRecordError.
func ExtractRecord(ctx context.Context, client Client, text string, lang types.Language) (*types.CVRecord, error) {
	prompt := buildExtractionPrompt(text, lang)

	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("record extraction failed: %w", err)
	}

	rec, err := schema.Decode([]byte(raw))
	if err != nil {
		return nil, err
	}
	rec.Language = lang
	return rec, nil
}

func buildExtractionPrompt(text string, lang types.Language) string {
	langName := "French"
	if lang == types.LangEnglish {
		langName = "English"
	}

	if len(text) > maxExtractionInput {
		text = text[:maxExtractionInput]
	}

	var sb strings.Builder
	sb.WriteString("Extract data from this CV into this exact JSON structure. Respond in ")
	sb.WriteString(langName)
	sb.WriteString(" and translate content to that language if needed.\n")
	sb.WriteString("If a field is missing, use null. Do not shorten or summarize descriptions.\n")
	sb.WriteString("List experience entries newest first, exactly as ordered in the CV when dates are absent.\n")
	sb.WriteString(`Structure:
{
  "personal_info": { "name": "", "title": "", "email": "", "phone": "", "location": "", "summary": "" },
  "education": [ { "period": "YYYY - YYYY", "degree": "", "school": "", "details": [""] } ],
  "skills": ["skill1", "skill2"],
  "experience": [ { "period": "Month Year - Month Year", "role": "", "company": "", "details": [""] } ]
}
Return ONLY valid JSON.

CV Text:
`)
	sb.WriteString(text)
	return sb.String()
}

// GenerateSummary drafts a 2-3 sentence professional profile in the record's
// language, used when the extracted summary is too short to render.
func GenerateSummary(ctx context.Context, client Client, text string, lang types.Language) (string, error) {
	langName := "French"
	if lang == types.LangEnglish {
		langName = "English"
	}

	if len(text) > 8000 {
		text = text[:8000]
	}

	prompt := fmt.Sprintf(
		"Write a concise 2-3 sentence professional profile summary based on this CV. Language: %s.\n\nCV Text:\n%s",
		langName, text,
	)

	summary, err := client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// GroupSkills asks the model to organize a flat skill list into labeled
// categories with comma-joined members, for the grouped skills rendering.
// Callers treat failure as non-fatal and fall back to the flat list.
func GroupSkills(ctx context.Context, client Client, skills []string, lang types.Language) ([]types.SkillGroup, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	langName := "French"
	if lang == types.LangEnglish {
		langName = "English"
	}

	prompt := fmt.Sprintf(`Group these CV skills into 2-5 labeled categories. Category labels in %s.
Return ONLY a JSON array of objects: [{"label": "", "skills": "comma-joined skills"}].
Keep every skill, do not invent new ones.

Skills:
%s`, langName, strings.Join(skills, ", "))

	raw, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("skill grouping failed: %w", err)
	}

	var groups []types.SkillGroup
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		return nil, fmt.Errorf("skill grouping returned invalid JSON: %w", err)
	}

	out := groups[:0]
	for _, g := range groups {
		if strings.TrimSpace(g.Label) != "" && strings.TrimSpace(g.Skills) != "" {
			out = append(out, g)
		}
	}
	return out, nil
}
