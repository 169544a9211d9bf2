package documentModel

import (
	"context"
	"errors"
	"time"
)

type DocType string

const (
	PDF         DocType = "PDF"
	DOCX        DocType = "DOCX"
	DOC         DocType = "DOC"
	TXT         DocType = "TXT"
	UNSUPPORTED DocType = "UNSUPPORTED"
)

type ContentKind string

const (
	ContentURL  ContentKind = "url"
	ContentHTML ContentKind = "html"
	ContentText ContentKind = "text"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusReady   Status = "READY"
)

var ErrNotFound = errors.New("document not found")

// UploadedDocument is a user file prepared for preview. Content stays nil
// until conversion settles.
type UploadedDocument struct {
	Id           string      `json:"id"`
	WorkspaceId  string      `json:"workspace_id"`
	Name         string      `json:"name"`
	MimeType     string      `json:"mime_type"`
	DocType      DocType     `json:"doc_type"`
	Content      *string     `json:"content"`
	ContentKind  ContentKind `json:"content_kind,omitempty"`
	PreviewURL   *string     `json:"preview_url"`
	PreviewToken string      `json:"preview_token,omitempty"` //keys the stored blob behind PreviewURL
	Text         string      `json:"text,omitempty"`
	SourceFile   string      `json:"source_file,omitempty"`
	Status       Status      `json:"status"`
	JobId        string      `json:"job_id"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Blob is a stored preview payload.
type Blob struct {
	DocumentId  string `json:"document_id"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type DocumentStore interface {
	CreateWorkspace(ctx context.Context, workspaceId string) error
	WorkspaceExists(ctx context.Context, workspaceId string) bool
	// DeleteWorkspace drops the workspace and its document records. Blobs are revoked by the caller.
	DeleteWorkspace(ctx context.Context, workspaceId string) error

	// SaveDocument creates or replaces a record. It fails with ErrNotFound once the workspace is gone.
	SaveDocument(ctx context.Context, doc UploadedDocument) error
	// UpdateDocument only replaces a record that still exists.
	UpdateDocument(ctx context.Context, doc UploadedDocument) error
	GetDocument(ctx context.Context, workspaceId string, id string) (UploadedDocument, error)
	ListDocuments(ctx context.Context, workspaceId string) ([]UploadedDocument, error)
	DeleteDocument(ctx context.Context, workspaceId string, id string) error

	SaveBlob(ctx context.Context, token string, blob Blob) error
	GetBlob(ctx context.Context, token string) (Blob, error)
	RevokeBlob(ctx context.Context, token string) error
}
