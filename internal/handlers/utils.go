package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akolanti/lexgate/internal/adapter"
	"github.com/akolanti/lexgate/internal/assistant"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/upstream"
)

const maxJSONBody = 1 << 20

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// status is already out, only log
		logRH.Error("Error encoding response", "err", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

// writeServiceError maps assistant and legal api errors onto the envelope.
func writeServiceError(ctx context.Context, w http.ResponseWriter, id string, err error) {
	var empty *assistant.EmptyResultError
	switch {
	case errors.Is(err, assistant.ErrWorkspaceNotFound):
		WriteErrorResponse(w, http.StatusNotFound, id, "Workspace not found")
	case errors.Is(err, documentModel.ErrNotFound):
		WriteErrorResponse(w, http.StatusNotFound, id, "Document not found")
	case errors.As(err, &empty):
		WriteErrorResponse(w, http.StatusBadGateway, id, empty.Error())
	case errors.Is(err, context.DeadlineExceeded):
		WriteErrorResponse(w, http.StatusGatewayTimeout, id, "The request took too long. Please try again.")
	default:
		logRH.Trace(ctx).Warn("Request failed", "err", err)
		WriteErrorResponse(w, upstream.HTTPStatus(err), id, upstream.UserMessage(err))
	}
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.Trace(ctx).Warn("Context error", "err", ctx.Err())
		return false
	}
	return true
}

func decodeJSON(r *http.Request, into interface{}) error {
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the request body", "err", err)
		}
	}(r.Body)
	return json.NewDecoder(io.LimitReader(r.Body, maxJSONBody)).Decode(into)
}

func getTargetDirectory(dir string) (string, error) {
	if dir == "" {
		dir = config.TempUploadDir
	}
	targetDir := dir
	if !filepath.IsAbs(dir) {
		root, err := os.Getwd()
		if err != nil {
			return "", err
		}
		targetDir = filepath.Join(root, dir)
	}
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	return targetDir, nil
}
