package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/unidoc/unioffice/document"

	"smartcv/internal/anonymize"
	"smartcv/internal/docx"
	"smartcv/internal/llm"
	"smartcv/internal/schema"
	"smartcv/internal/types"
)

// RenderOptions holds configuration for rendering a CV record to DOCX.
type RenderOptions struct {
	// Payload is the JSON-encoded CV record to render.
	Payload []byte
	// Contact replaces the candidate's contact details in the output.
	Contact anonymize.CompanyContact
	// Client, when set, is used to group skills into labeled categories.
	// Grouping failures fall back to the flat skill list.
	Client    llm.Client
	PhotoPath string
	Log       zerolog.Logger
}

// Artifact is a rendered document ready for download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Render validates a JSON payload, anonymizes the record and produces the
// styled DOCX artifact. The filename derives from the anonymized name.
func Render(ctx context.Context, opts RenderOptions) (*Artifact, error) {
	doc, anon, err := composeDocument(ctx, opts)
	if err != nil {
		return nil, err
	}

	data, err := docx.Bytes(doc)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename:    docx.Filename(anon.PersonalInfo.Name),
		ContentType: docx.ContentType,
		Data:        data,
	}, nil
}

// composeDocument runs every rendering stage short of serialization.
func composeDocument(ctx context.Context, opts RenderOptions) (*document.Document, types.CVRecord, error) {
	rec, err := schema.Decode(opts.Payload)
	if err != nil {
		return nil, types.CVRecord{}, err
	}

	prepared := schema.Filter(schema.Normalize(*rec, opts.PhotoPath))
	anon := anonymize.Anonymize(prepared, opts.Contact)

	var groups []types.SkillGroup
	if opts.Client != nil && len(anon.Skills) > 0 {
		groups, err = llm.GroupSkills(ctx, opts.Client, anon.Skills, anon.Language)
		if err != nil {
			opts.Log.Warn().Err(err).Msg("skill grouping failed, rendering flat list")
			groups = nil
		}
	}

	doc, err := docx.NewComposer(opts.Log).Compose(anon, groups)
	if err != nil {
		return nil, types.CVRecord{}, err
	}
	return doc, anon, nil
}
