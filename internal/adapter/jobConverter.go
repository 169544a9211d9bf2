package adapter

import (
	"time"

	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
)

func StatusURL(jobId string) string {
	return config.StatusRoutePrefix + jobId
}

func ToUploadAccepted(job jobModel.Job) api.UploadAccepted {
	return api.UploadAccepted{
		DocumentId: job.JobPayload.DocumentId,
		JobId:      job.Id,
		Name:       job.JobPayload.FileName,
		StatusURL:  StatusURL(job.Id),
	}
}

// ToAPIResponse renders a job. doc is nil until the document is READY.
func ToAPIResponse(job jobModel.Job, doc *documentModel.UploadedDocument) api.JobResponse {
	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status: string(job.Status),
		Step:   string(job.CurrentStep),
	}
	if doc != nil {
		view := ToDocumentResponse(*doc)
		result.Document = &view
	}

	return api.JobResponse{
		Id:         job.Id,
		DocumentId: job.JobPayload.DocumentId,
		StartTime:  job.CreatedTime,
		EndTime:    job.EndTime,
		Error:      errorPtr,
		Result:     result,
	}
}

func ToDocumentResponse(doc documentModel.UploadedDocument) api.DocumentResponse {
	return api.DocumentResponse{
		Id:          doc.Id,
		WorkspaceId: doc.WorkspaceId,
		Name:        doc.Name,
		ContentType: doc.MimeType,
		DocType:     string(doc.DocType),
		Status:      string(doc.Status),
		Content:     doc.Content,
		ContentKind: string(doc.ContentKind),
		PreviewURL:  doc.PreviewURL,
		JobId:       doc.JobId,
		CreatedAt:   doc.CreatedAt,
	}
}

func ToDocumentList(docs []documentModel.UploadedDocument) []api.DocumentResponse {
	views := make([]api.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		views = append(views, ToDocumentResponse(doc))
	}
	return views
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   code == 429 || code == 503,
		},
	}
}
