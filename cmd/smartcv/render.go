package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"smartcv/internal/anonymize"
	"smartcv/internal/config"
	"smartcv/internal/llm"
	"smartcv/internal/pipeline"
)

var renderCmd = &cobra.Command{
	Use:   "render <record.json>",
	Short: "Render a CV record into an anonymized DOCX",
	Long:  "Validate a JSON CV record, anonymize it and render the styled Word document. The output filename derives from the anonymized candidate name unless --out is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderOutputFile string
	renderAPIKey     string
	renderGroup      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output DOCX file (default: derived from candidate name)")
	renderCmd.Flags().StringVar(&renderAPIKey, "api-key", "", "Gemini API key for skill grouping (overrides GEMINI_API_KEY env var)")
	renderCmd.Flags().BoolVar(&renderGroup, "group-skills", false, "Group skills into labeled categories with the LLM")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}

	ctx := context.Background()

	var client llm.Client
	if renderGroup {
		apiKey := renderAPIKey
		if apiKey == "" {
			apiKey = cfg.GeminiAPIKey
		}
		if apiKey == "" {
			return fmt.Errorf("skill grouping requires an API key (set GEMINI_API_KEY or use --api-key)")
		}
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	artifact, err := pipeline.Render(ctx, pipeline.RenderOptions{
		Payload: payload,
		Contact: anonymize.CompanyContact{
			Phone: cfg.CompanyPhone,
			Email: cfg.CompanyEmail,
		},
		Client:    client,
		PhotoPath: cfg.PhotoPath,
		Log:       zerolog.New(os.Stderr).With().Timestamp().Logger(),
	})
	if err != nil {
		return err
	}

	out := renderOutputFile
	if out == "" {
		out = artifact.Filename
	}
	if err := os.WriteFile(out, artifact.Data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Document written to %s (%d bytes)\n", out, len(artifact.Data))
	return nil
}
