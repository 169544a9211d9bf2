package job

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/ingest"
)

// ProcessConversion settles one uploaded document. On failure the document
// is dropped and the job carries the reason. The temp file is always removed.
func (s *Service) ProcessConversion(ctx context.Context, job jobModel.Job) jobModel.Job {
	p := job.JobPayload
	log := logger.Trace(ctx).With("jobId", job.Id, "documentId", p.DocumentId)
	defer removeTempFile(p.FilePath)

	job.CurrentStep = jobModel.ConvertReading
	doc, err := s.DocumentStore.GetDocument(ctx, p.WorkspaceId, p.DocumentId)
	if err != nil {
		log.Warn("Document gone before conversion", "error", err)
		return failJob(job, http.StatusGone, "The document was removed before conversion finished.")
	}

	job.CurrentStep = stepFor(p.DocType)
	conv, err := ingest.Convert(ctx, p.FilePath, p.DocType)
	if err != nil {
		log.Error("Conversion failed, dropping document", "error", err)
		s.dropDocument(ctx, doc)
		return failJob(job, http.StatusUnprocessableEntity, fmt.Sprintf("Could not convert %s. The document was removed.", p.FileName))
	}

	job.CurrentStep = jobModel.ConvertSaving
	if conv.Blob != nil {
		conv.Blob.DocumentId = doc.Id
		if err = s.DocumentStore.SaveBlob(ctx, conv.PreviewToken, *conv.Blob); err != nil {
			log.Error("Saving preview failed, dropping document", "error", err)
			s.dropDocument(ctx, doc)
			return failJob(job, http.StatusInternalServerError, "Could not store the document preview. The document was removed.")
		}
		doc.PreviewToken = conv.PreviewToken
		preview := conv.Content
		doc.PreviewURL = &preview
	}

	content := conv.Content
	doc.Content = &content
	doc.ContentKind = conv.ContentKind
	doc.Text = conv.Text
	doc.Status = documentModel.StatusReady
	doc.SourceFile = ""

	//the user may have removed it while we were converting
	if err = s.DocumentStore.UpdateDocument(ctx, doc); errors.Is(err, documentModel.ErrNotFound) {
		log.Warn("Document removed during conversion")
		s.revoke(ctx, doc.PreviewToken)
		return failJob(job, http.StatusGone, "The document was removed before conversion finished.")
	} else if err != nil {
		log.Error("Saving converted document failed", "error", err)
		s.dropDocument(ctx, doc)
		return failJob(job, http.StatusInternalServerError, "Could not save the converted document. The document was removed.")
	}

	log.Info("Document ready", "kind", doc.ContentKind)
	job.CurrentStep = jobModel.Complete
	job.Status = jobModel.JobStatusComplete
	return job
}

// RemoveDocument deletes a document and revokes its preview.
func (s *Service) RemoveDocument(ctx context.Context, workspaceId string, documentId string) error {
	doc, err := s.DocumentStore.GetDocument(ctx, workspaceId, documentId)
	if err != nil {
		return err
	}
	s.revoke(ctx, doc.PreviewToken)
	return s.DocumentStore.DeleteDocument(ctx, workspaceId, documentId)
}

// RemoveWorkspace deletes every document, its previews and the workspace itself.
func (s *Service) RemoveWorkspace(ctx context.Context, workspaceId string) error {
	docs, err := s.DocumentStore.ListDocuments(ctx, workspaceId)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		s.revoke(ctx, doc.PreviewToken)
	}
	return s.DocumentStore.DeleteWorkspace(ctx, workspaceId)
}

func (s *Service) dropDocument(ctx context.Context, doc documentModel.UploadedDocument) {
	s.revoke(ctx, doc.PreviewToken)
	if err := s.DocumentStore.DeleteDocument(ctx, doc.WorkspaceId, doc.Id); err != nil && !errors.Is(err, documentModel.ErrNotFound) {
		logger.Trace(ctx).Error("Failed to drop document", "documentId", doc.Id, "error", err)
	}
}

func (s *Service) revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.DocumentStore.RevokeBlob(ctx, token); err != nil {
		logger.Trace(ctx).Error("Failed to revoke preview", "error", err)
	}
}

func failJob(job jobModel.Job, code int, message string) jobModel.Job {
	job.CurrentStep = jobModel.ConvertDropped
	job.Status = jobModel.JobStatusError
	job.Error = jobModel.JobError{Code: code, Message: message, Retry: false}
	return job
}

func stepFor(docType documentModel.DocType) jobModel.InternalStatus {
	switch docType {
	case documentModel.PDF:
		return jobModel.ConvertPDF
	case documentModel.DOCX:
		return jobModel.ConvertDOCX
	default:
		return jobModel.ConvertText
	}
}

func removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Error("Error removing temp file", "path", path, "error", err)
	}
}
