package api

import (
	"time"

	"github.com/akolanti/lexgate/internal/domain/chatModel"
	"github.com/akolanti/lexgate/internal/domain/userModel"
	"github.com/akolanti/lexgate/internal/formatter"
	"github.com/akolanti/lexgate/internal/proofread"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

// JobResponse is the conversion job view and also the error envelope.
type JobResponse struct {
	Id         string            `json:"id" example:"job_cz109"`
	DocumentId string            `json:"document_id,omitempty" example:"doc_550"`
	Result     Result            `json:"result"`
	Error      *JobOutgoingError `json:"error,omitempty"`
	StartTime  time.Time         `json:"start_time"`
	EndTime    time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status   string            `json:"status" example:"COMPLETE"`
	Step     string            `json:"step,omitempty" example:"Complete"`
	Document *DocumentResponse `json:"document,omitempty"`
}

type DocumentResponse struct {
	Id          string    `json:"id"`
	WorkspaceId string    `json:"workspace_id"`
	Name        string    `json:"name" example:"lease.pdf"`
	ContentType string    `json:"content_type" example:"application/pdf"`
	DocType     string    `json:"doc_type" example:"PDF"`
	Status      string    `json:"status" example:"READY"`
	Content     *string   `json:"content"`
	ContentKind string    `json:"content_kind,omitempty" example:"url"`
	PreviewURL  *string   `json:"preview_url"`
	JobId       string    `json:"job_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type UploadAccepted struct {
	DocumentId string `json:"document_id"`
	JobId      string `json:"job_id"`
	Name       string `json:"name"`
	StatusURL  string `json:"status_url" example:"/api/status/job_cz109"`
}

type UploadResponse struct {
	Documents []UploadAccepted `json:"documents"`
	Warnings  []string         `json:"warnings"`
}

type WorkspaceResponse struct {
	Id string `json:"id"`
}

type AuthResponse struct {
	Message string         `json:"message" example:"Login successful"`
	User    userModel.User `json:"user"`
}

type SignupResponse struct {
	Message string `json:"message" example:"User created successfully"`
	UserId  int64  `json:"userId" example:"2"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

type CheckResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          userModel.User `json:"user"`
}

// AuthError is the body of failed auth calls.
type AuthError struct {
	Error string `json:"error" example:"Invalid credentials"`
}

type FormatResponse struct {
	Blocks []formatter.Block `json:"blocks,omitempty"`
	HTML   string            `json:"html"`
}

type ProofreadResponse struct {
	Report proofread.Report `json:"report"`
	HTML   string           `json:"html"`
}

type MessagesResponse struct {
	Messages []chatModel.ChatMessage `json:"messages"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// requests---------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type MessageRequest struct {
	Message string `json:"message"`
}

type FormatRequest struct {
	Text string `json:"text" validate:"required"`
	Mode string `json:"mode,omitempty" example:"markdown"`
}

type ProofreadRequest struct {
	Text string `json:"text" validate:"required"`
}
