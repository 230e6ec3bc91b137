package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocscan/internal/api"
	"github.com/jackzampolin/tocscan/internal/engineerr"
	"github.com/jackzampolin/tocscan/internal/ingest"
	"github.com/jackzampolin/tocscan/internal/schema"
	"github.com/jackzampolin/tocscan/internal/svcctx"
	"github.com/jackzampolin/tocscan/internal/toc"
)

// ScanRequest is the body of POST /v1/toc. Text or Path must be set; when
// both are, Text is used and Path is ignored. Path is read (and
// CRLF-normalized) server-side.
type ScanRequest struct {
	Text string `json:"text,omitempty"`
	Path string `json:"path,omitempty"`
}

// ScanResponse wraps the engine's result with the run id it was computed
// under, mirroring the teacher's pervasive use of a correlation id.
type ScanResponse struct {
	RunID  string          `json:"run_id"`
	Result *api.ResultView `json:"result"`
}

// ScanEndpoint handles POST /v1/toc: infer a table of contents for the
// article in the request body.
type ScanEndpoint struct{}

func (e *ScanEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/v1/toc", e.handler
}

func (e *ScanEndpoint) RequiresInit() bool { return false }

func (e *ScanEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	runID := uuid.New().String()
	logger := svcctx.LoggerFrom(r.Context()).With("run_id", runID)

	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	text := req.Text
	if text == "" && req.Path != "" {
		result, err := ingest.Read(req.Path)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if result.PDF != nil {
			writeError(w, http.StatusUnprocessableEntity, "path is a PDF; submit extracted text via the text field")
			return
		}
		text = result.Text
	}
	if text == "" {
		writeError(w, http.StatusBadRequest, "request must set text or path")
		return
	}

	logger.Info("scan started", "chars", len(text))
	res, err := toc.Infer(ingest.Normalize(text))
	if errors.Is(err, engineerr.ErrNoHeadingsFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	var invErr *engineerr.InvariantError
	if errors.As(err, &invErr) {
		logger.Error("invariant violation", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	view := api.NewResultView(res)
	body, err := json.Marshal(view)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to marshal result: %v", err))
		return
	}
	if err := schema.ValidateResult(body); err != nil {
		logger.Error("result failed schema validation", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("scan completed", "beauty", res.Beauty, "entries", len(res.Content))
	writeJSON(w, http.StatusOK, ScanResponse{RunID: runID, Result: view})
}

func (e *ScanEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Infer a table of contents via the running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ScanResponse
			err := client.Post(cmd.Context(), "/v1/toc", ScanRequest{Path: args[0]}, &resp)
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
