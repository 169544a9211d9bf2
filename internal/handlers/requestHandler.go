package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akolanti/lexgate/internal/adapter"
	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/ingest"
	"github.com/akolanti/lexgate/internal/metrics"
)

// PostDocumentsHandler godoc
// @Summary      Upload documents for preview
// @Description  Accepts one or more files in the repeatable "file" field. Each admitted file gets a PENDING document and a conversion job. DOC and unsupported files are reported in warnings and get no record.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        workspaceId  path      string  true  "Workspace ID"
// @Param        file         formData  file    true  "PDF, DOCX or TXT file"
// @Success      202  {object}  api.UploadResponse  "Accepted documents and warnings"
// @Failure      400  {object}  api.JobResponse     "Missing file or body too large"
// @Failure      404  {object}  api.JobResponse     "Workspace not found"
// @Failure      415  {object}  api.UploadResponse  "No file could be admitted"
// @Router       /api/workspaces/{workspaceId}/documents [post]
func PostDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	ctx := r.Context()
	log := logRH.Trace(ctx)
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	if !handlerInstance.Documents.WorkspaceExists(ctx, workspaceId) {
		WriteErrorResponse(w, http.StatusNotFound, workspaceId, "Workspace not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "File too large or bad request")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn("Couldn't clean multipart files", "err", err)
		}
	}()

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, workspaceId, "file is required")
		return
	}

	targetDir, err := getTargetDirectory(handlerInstance.UploadDir)
	if err != nil {
		log.Error("Couldn't get target directory", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, workspaceId, "Storage Error")
		return
	}

	res := api.UploadResponse{Documents: []api.UploadAccepted{}, Warnings: []string{}}
	for _, header := range files {
		mimeType := header.Header.Get("Content-Type")
		docType, warning := ingest.Admit(header.Filename, mimeType)
		if warning != "" {
			log.Info("Upload rejected", "file", header.Filename, "docType", docType)
			metrics.CountRejectedUpload(string(docType))
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s", header.Filename, warning))
			continue
		}

		accepted, err := acceptUpload(r, workspaceId, targetDir, header, docType)
		if err != nil {
			log.Error("Couldn't queue upload", "file", header.Filename, "err", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: Could not store the file. Please try again.", header.Filename))
			continue
		}
		res.Documents = append(res.Documents, accepted)
	}

	if len(res.Documents) == 0 {
		writeJsonResponse(w, http.StatusUnsupportedMediaType, res)
		return
	}
	writeJsonResponse(w, http.StatusAccepted, res)
}

// acceptUpload stores one admitted file, creates its PENDING record and queues the conversion.
func acceptUpload(r *http.Request, workspaceId string, targetDir string, header *multipart.FileHeader, docType documentModel.DocType) (api.UploadAccepted, error) {
	ctx := r.Context()
	path, err := saveUpload(targetDir, header)
	if err != nil {
		return api.UploadAccepted{}, err
	}

	doc := documentModel.UploadedDocument{
		Id:          utils.GetNewUUID(),
		WorkspaceId: workspaceId,
		Name:        header.Filename,
		MimeType:    header.Header.Get("Content-Type"),
		DocType:     docType,
		Status:      documentModel.StatusPending,
		SourceFile:  path,
		JobId:       utils.GetNewUUID(),
		CreatedAt:   time.Now(),
	}
	if err = handlerInstance.Documents.SaveDocument(ctx, doc); err != nil {
		removeUpload(path)
		return api.UploadAccepted{}, fmt.Errorf("save pending document: %w", err)
	}

	queued, err := handlerInstance.Jobs.EnqueueConversion(ctx, doc.JobId, jobModel.JobPayload{
		WorkspaceId: workspaceId,
		DocumentId:  doc.Id,
		FileName:    doc.Name,
		FilePath:    path,
		MimeType:    doc.MimeType,
		DocType:     docType,
	})
	if err != nil {
		_ = handlerInstance.Documents.DeleteDocument(ctx, workspaceId, doc.Id)
		removeUpload(path)
		return api.UploadAccepted{}, err
	}
	return adapter.ToUploadAccepted(queued), nil
}

func saveUpload(targetDir string, header *multipart.FileHeader) (string, error) {
	fileReader, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer fileReader.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	tempFilePath := filepath.Join(targetDir, filename)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer destinationFileWriter.Close()

	if _, err = io.Copy(destinationFileWriter, fileReader); err != nil {
		removeUpload(tempFilePath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return tempFilePath, nil
}

func removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logRH.Warn("Couldn't remove temp file", "path", path, "err", err)
	}
}

// ListDocumentsHandler godoc
// @Summary      List workspace documents
// @Tags         Documents
// @Produce      json
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Success      200  {array}   api.DocumentResponse
// @Failure      404  {object}  api.JobResponse  "Workspace not found"
// @Router       /api/workspaces/{workspaceId}/documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	if !handlerInstance.Documents.WorkspaceExists(r.Context(), workspaceId) {
		WriteErrorResponse(w, http.StatusNotFound, workspaceId, "Workspace not found")
		return
	}
	docs, err := handlerInstance.Documents.ListDocuments(r.Context(), workspaceId)
	if err != nil {
		logRH.Trace(r.Context()).Error("Couldn't list documents", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, workspaceId, "Storage Error")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentList(docs))
}

// GetDocumentHandler godoc
// @Summary      Get one document
// @Tags         Documents
// @Produce      json
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Param        documentId   path  string  true  "Document ID"
// @Success      200  {object}  api.DocumentResponse
// @Failure      404  {object}  api.JobResponse  "Document not found"
// @Router       /api/workspaces/{workspaceId}/documents/{documentId} [get]
func GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	documentId := utils.GetChiURLParam(r, "documentId")
	doc, err := handlerInstance.Documents.GetDocument(r.Context(), workspaceId, documentId)
	if err != nil {
		writeServiceError(r.Context(), w, documentId, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponse(doc))
}

// DeleteDocumentHandler godoc
// @Summary      Remove a document
// @Description  Deletes the record and revokes its preview.
// @Tags         Documents
// @Param        workspaceId  path  string  true  "Workspace ID"
// @Param        documentId   path  string  true  "Document ID"
// @Success      204
// @Failure      404  {object}  api.JobResponse  "Document not found"
// @Router       /api/workspaces/{workspaceId}/documents/{documentId} [delete]
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	workspaceId := utils.GetChiURLParam(r, "workspaceId")
	documentId := utils.GetChiURLParam(r, "documentId")
	if err := handlerInstance.Jobs.RemoveDocument(r.Context(), workspaceId, documentId); err != nil {
		writeServiceError(r.Context(), w, documentId, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPreviewHandler godoc
// @Summary      Serve a stored preview
// @Description  Streams the original PDF bytes behind a document preview url.
// @Tags         Documents
// @Produce      application/pdf
// @Param        token  path  string  true  "Preview token"
// @Success      200
// @Failure      404  {object}  api.JobResponse  "Preview revoked or unknown"
// @Router       /api/previews/{token} [get]
func GetPreviewHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	token := utils.GetChiURLParam(r, "token")
	blob, err := handlerInstance.Documents.GetBlob(r.Context(), token)
	if err != nil {
		if !errors.Is(err, documentModel.ErrNotFound) {
			logRH.Trace(r.Context()).Error("Couldn't load preview", "err", err)
		}
		WriteErrorResponse(w, http.StatusNotFound, token, "Preview not found")
		return
	}
	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Cache-Control", "private, no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(blob.Data); err != nil {
		logRH.Trace(r.Context()).Warn("Couldn't write preview", "err", err)
	}
}
