package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/lexgate/internal/domain/documentModel"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	ConvertInit    InternalStatus = "ConvertInit"
	ConvertReading InternalStatus = "ConvertReading"
	ConvertPDF     InternalStatus = "ConvertPDF"
	ConvertDOCX    InternalStatus = "ConvertDOCX"
	ConvertText    InternalStatus = "ConvertText"
	ConvertSaving  InternalStatus = "ConvertSaving"
	ConvertDropped InternalStatus = "ConvertDropped"
	Complete       InternalStatus = "Complete"

	JobTypeConvert JobType = "Convert"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	WorkspaceId string                `json:"workspace_id"`
	DocumentId  string                `json:"document_id"`
	FileName    string                `json:"file_name"`
	FilePath    string                `json:"file_path"`
	MimeType    string                `json:"mime_type,omitempty"`
	DocType     documentModel.DocType `json:"doc_type"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
