// Package pipeline provides the high-level orchestration for CV processing:
// parsing an uploaded document into a structured record and rendering a
// record into the anonymized DOCX artifact.
package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"smartcv/internal/docx"
	"smartcv/internal/extract"
	"smartcv/internal/language"
	"smartcv/internal/llm"
	"smartcv/internal/schema"
	"smartcv/internal/types"
)

// ParseOptions holds configuration for parsing an uploaded CV document.
type ParseOptions struct {
	Path      string
	Client    llm.Client
	PhotoPath string
	Log       zerolog.Logger
}

// Parse turns an uploaded document into a normalized, filtered CV record.
// It extracts the raw text, detects the language, asks the model for a
// structured record, and backfills the summary when the extracted one is
// too short to render.
func Parse(ctx context.Context, opts ParseOptions) (*types.CVRecord, error) {
	text, err := extract.Text(opts.Path)
	if err != nil {
		return nil, err
	}

	lang := language.Detect(text)
	opts.Log.Debug().Str("language", string(lang)).Int("chars", len(text)).Msg("extracted document text")

	// The fallback summary runs alongside extraction and is consulted only
	// when the extracted summary is too short to render.
	g, gCtx := errgroup.WithContext(ctx)

	var rec *types.CVRecord
	var fallbackSummary string

	g.Go(func() error {
		r, err := llm.ExtractRecord(gCtx, opts.Client, text, lang)
		if err != nil {
			return fmt.Errorf("record extraction failed: %w", err)
		}
		rec = r
		return nil
	})

	g.Go(func() error {
		s, err := llm.GenerateSummary(gCtx, opts.Client, text, lang)
		if err != nil {
			// Non-fatal, the record may already carry a usable summary.
			opts.Log.Warn().Err(err).Msg("fallback summary generation failed")
			return nil
		}
		fallbackSummary = s
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !docx.SummaryRenderable(rec.PersonalInfo.Summary) && docx.SummaryRenderable(fallbackSummary) {
		rec.PersonalInfo.Summary = fallbackSummary
	}

	normalized := schema.Filter(schema.Normalize(*rec, opts.PhotoPath))
	return &normalized, nil
}
