package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocscan/internal/api"
	"github.com/jackzampolin/tocscan/internal/engineerr"
	"github.com/jackzampolin/tocscan/internal/ingest"
	"github.com/jackzampolin/tocscan/internal/schema"
	"github.com/jackzampolin/tocscan/internal/toc"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Infer a table of contents for a plain-text article",
	Long: `scan reads the file named by its first argument as UTF-8,
normalizes CRLF/CR to LF, and runs the heading-discovery engine over it.

The result (or a null sentinel when no pattern clears the beauty
threshold) is printed in the configured --output format. Timing is
measured around the engine call and logged.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	path := args[0]
	in, err := ingest.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if in.PDF != nil {
		return fmt.Errorf("%s is a PDF (%d pages); this engine requires decoded text, not a scanned source", path, in.PDF.PageCount)
	}

	start := time.Now()
	result, err := toc.Infer(in.Text)
	elapsed := time.Since(start)

	if errors.Is(err, engineerr.ErrNoHeadingsFound) {
		logger.Info("scan completed, no result", "duration", elapsed.String())
		return api.Output(api.NewResultView(nil))
	}

	var invErr *engineerr.InvariantError
	if errors.As(err, &invErr) {
		logger.Error("invariant violation, aborting", "error", err, "duration", elapsed.String())
		return invErr
	}
	if err != nil {
		return err
	}

	view := api.NewResultView(result)
	if body, marshalErr := json.Marshal(view); marshalErr == nil {
		if schemaErr := schema.ValidateResult(body); schemaErr != nil {
			logger.Warn("result failed schema validation", "error", schemaErr)
		}
	}

	logger.Info("scan completed", "duration", elapsed.String(), "entries", len(result.Content), "beauty", result.Beauty)
	return api.Output(view)
}
