package handlers

import (
	"net/http"
	"strings"

	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/formatter"
	"github.com/akolanti/lexgate/internal/proofread"
)

const formatModeMarkdown = "markdown"

// FormatHandler godoc
// @Summary      Format reply text
// @Description  Turns legal api reply text into blocks and safe HTML. mode=markdown renders full CommonMark instead.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      api.FormatRequest  true  "Text and optional mode"
// @Success      200      {object}  api.FormatResponse
// @Failure      400      {object}  api.JobResponse  "Missing text"
// @Router       /api/format [post]
func FormatHandler(w http.ResponseWriter, r *http.Request) {
	var req api.FormatRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "text is required")
		return
	}

	if req.Mode == formatModeMarkdown {
		html, err := formatter.RenderMarkdown(req.Text)
		if err != nil {
			logRH.Trace(r.Context()).Error("Markdown render failed", "err", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Could not format the text")
			return
		}
		writeJsonResponse(w, http.StatusOK, api.FormatResponse{HTML: html})
		return
	}

	blocks := formatter.Format(req.Text)
	writeJsonResponse(w, http.StatusOK, api.FormatResponse{Blocks: blocks, HTML: formatter.RenderHTML(blocks)})
}

// ProofreadHandler godoc
// @Summary      Proofread text
// @Description  Flags doubled words, lowercase sentence starts, space before punctuation and wordy legal phrases.
// @Tags         Tools
// @Accept       json
// @Produce      json
// @Param        request  body      api.ProofreadRequest  true  "Text to check"
// @Success      200      {object}  api.ProofreadResponse
// @Failure      400      {object}  api.JobResponse  "Missing text"
// @Router       /api/proofread [post]
func ProofreadHandler(w http.ResponseWriter, r *http.Request) {
	var req api.ProofreadRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "", "text is required")
		return
	}
	report := proofread.Analyze(req.Text)
	writeJsonResponse(w, http.StatusOK, api.ProofreadResponse{
		Report: report,
		HTML:   proofread.Highlight(req.Text, report.Suggestions, -1),
	})
}
