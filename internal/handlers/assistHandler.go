package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/assistant"
	"github.com/akolanti/lexgate/internal/config"
)

// AssistHandler godoc
// @Summary      Run a legal tool
// @Description  Sends the uploaded files to one legal api operation and records the exchange in the transcript. File fields are named as the operation expects them ("file", "file1" and "file2", "files").
// @Tags         Assistant
// @Accept       multipart/form-data
// @Produce      json
// @Param        workspaceId    path      string  true   "Workspace ID"
// @Param        operation      path      string  true   "Operation name, for example recommend-clauses"
// @Param        contract_type  query     string  false  "Contract type for recommend-clauses"
// @Param        file           formData  file    false  "Document"
// @Success      200  {object}  assistant.Reply
// @Failure      400  {object}  api.JobResponse  "Missing files or unknown operation"
// @Failure      404  {object}  api.JobResponse  "Workspace not found"
// @Failure      502  {object}  api.JobResponse  "Legal api error"
// @Failure      503  {object}  api.JobResponse  "Legal api unreachable"
// @Router       /api/workspaces/{workspaceId}/assist/{operation} [post]
func AssistHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	op := assistant.Operation{Name: utils.GetChiURLParam(r, "operation")}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "File too large or bad request")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
		files, err := readAttachments(r)
		if err != nil {
			logRH.Trace(r.Context()).Warn("Couldn't read attachment", "err", err)
			WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "Could not retrieve file")
			return
		}
		op.Files = files
	}
	op.ContractType = r.FormValue("contract_type")

	reply, err := handlerInstance.Assistant.Run(r.Context(), workspaceId, op)
	if err != nil {
		writeServiceError(r.Context(), w, workspaceId, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, reply)
}

// readAttachments loads every file part, ordered by field so file1 comes before file2.
func readAttachments(r *http.Request) ([]assistant.UploadedFile, error) {
	fields := make([]string, 0, len(r.MultipartForm.File))
	for field := range r.MultipartForm.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []assistant.UploadedFile
	for _, field := range fields {
		for _, header := range r.MultipartForm.File[field] {
			f, err := header.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", header.Filename, err)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", header.Filename, err)
			}
			files = append(files, assistant.UploadedFile{Field: field, Name: header.Filename, Data: data})
		}
	}
	return files, nil
}

// readMessage accepts an empty body as an empty message.
func readMessage(r *http.Request) (string, error) {
	var req api.MessageRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return req.Message, nil
}

// ContinueHandler godoc
// @Summary      Follow up on a session
// @Description  Sends a message on the session opened by ipc-classifier, legal-research or upload-document.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        workspaceId  path      string              true  "Workspace ID"
// @Param        request      body      api.MessageRequest  true  "Follow-up message"
// @Success      200  {object}  assistant.Reply
// @Failure      400  {object}  api.JobResponse  "No open session or empty message"
// @Failure      404  {object}  api.JobResponse  "Workspace not found"
// @Router       /api/workspaces/{workspaceId}/continue [post]
func ContinueHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	message, err := readMessage(r)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "Bad Request")
		return
	}

	reply, err := handlerInstance.Assistant.Continue(r.Context(), workspaceId, message)
	if err != nil {
		writeServiceError(r.Context(), w, workspaceId, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, reply)
}

// DraftHandler godoc
// @Summary      Draft an agreement
// @Description  Walks the drafting questionnaire. An empty message starts the employee agreement flow. The reply is final once the document text arrives.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        workspaceId  path      string              true   "Workspace ID"
// @Param        kind         path      string              true   "employee-agreement or nda"
// @Param        request      body      api.MessageRequest  false  "Answer to the previous question"
// @Success      200  {object}  assistant.Reply
// @Failure      400  {object}  api.JobResponse  "Unknown draft kind"
// @Router       /api/workspaces/{workspaceId}/draft/{kind} [post]
func DraftHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	message, err := readMessage(r)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "Bad Request")
		return
	}

	reply, err := handlerInstance.Assistant.Draft(r.Context(), workspaceId, utils.GetChiURLParam(r, "kind"), message)
	if err != nil {
		writeServiceError(r.Context(), w, workspaceId, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, reply)
}

// RecentFilesHandler godoc
// @Summary      Recent generated files
// @Tags         Storage
// @Produce      json
// @Param        folder  path  string  true  "Folder name"
// @Success      200  {array}   upstream.FileInfo
// @Failure      502  {object}  api.JobResponse
// @Router       /api/recent-files/{folder} [get]
func RecentFilesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	folder := utils.GetChiURLParam(r, "folder")
	files, err := handlerInstance.Files.RecentFiles(r.Context(), folder)
	if err != nil {
		writeServiceError(r.Context(), w, folder, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, files)
}

// DownloadDocumentHandler godoc
// @Summary      Download a generated document
// @Tags         Storage
// @Produce      octet-stream
// @Param        documentId  path  string  true  "Document ID returned by a drafting call"
// @Success      200
// @Failure      502  {object}  api.JobResponse
// @Router       /api/download-document/{documentId} [get]
func DownloadDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	documentId := utils.GetChiURLParam(r, "documentId")
	body, contentType, err := handlerInstance.Files.Download(r.Context(), documentId)
	if err != nil {
		writeServiceError(r.Context(), w, documentId, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", documentId+".docx"))
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, body); err != nil {
		logRH.Trace(r.Context()).Warn("Download interrupted", "err", err)
	}
}
