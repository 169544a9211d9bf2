package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/akolanti/lexgate/internal/adapter"
	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/assistant"
	"github.com/akolanti/lexgate/internal/auth"
	"github.com/akolanti/lexgate/internal/domain/chatModel"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/job"
	"github.com/akolanti/lexgate/internal/upstream"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

var (
	handlerInstance *Handler //private singleton
	logJH           = logger_i.NewLogger("JobHandler")
	logRH           = logger_i.NewLogger("RequestHandler")
)

// FileAPI is the part of the legal api that serves stored files.
type FileAPI interface {
	RecentFiles(ctx context.Context, folder string) ([]upstream.FileInfo, error)
	Download(ctx context.Context, documentID string) (io.ReadCloser, string, error)
}

type Dependencies struct {
	Jobs          *job.Service
	Documents     documentModel.DocumentStore
	Chats         chatModel.ChatStore
	Assistant     *assistant.Service
	Auth          *auth.Service
	Files         FileAPI
	SecureCookies bool
	UploadDir     string
}

type Handler struct {
	Dependencies
}

// InitHandlers installs the services the route handlers use. Calling it again replaces them.
func InitHandlers(deps Dependencies) {
	handlerInstance = &Handler{Dependencies: deps}
	logJH.Info("Handlers initialised")
}

// GetStatusHandler godoc
// @Summary      Get conversion job status
// @Description  Retrieves the state of a document conversion job. The converted document is included once it is READY.
// @Tags         Documents
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse   "Current state of the job"
// @Failure      404  {object}  api.JobResponse   "Job not found"
// @Router       /api/status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	if id == "" {
		WriteErrorResponse(w, http.StatusNotFound, id, "Job not found")
		return
	}

	result, isFound := handlerInstance.Jobs.JobStore.GetJob(r.Context(), id)
	if !isFound {
		logJH.Trace(r.Context()).Debug("Job not found", "jobId", id)
		WriteErrorResponse(w, http.StatusNotFound, id, "Job not found")
		return
	}

	var doc *documentModel.UploadedDocument
	p := result.JobPayload
	if found, err := handlerInstance.Documents.GetDocument(r.Context(), p.WorkspaceId, p.DocumentId); err == nil && found.Status == documentModel.StatusReady {
		doc = &found
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result, doc))
}
