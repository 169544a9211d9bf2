// Package assistant runs the legal tools for a workspace: it calls the legal
// API, keeps the chat transcript and threads follow-up sessions.
package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/chatModel"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/internal/formatter"
	"github.com/akolanti/lexgate/internal/ingest"
	"github.com/akolanti/lexgate/internal/llm"
	"github.com/akolanti/lexgate/internal/upstream"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

const (
	DraftEmployeeAgreement = "employee-agreement"
	DraftNDA               = "nda"

	defaultDocumentGreeting = "You can ask your query related to the document."
	defaultDraftQuestion    = "Unknown question"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

// EmptyResultError is a successful call whose body lacks the expected field.
type EmptyResultError struct {
	Label string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("No %s found in the response", e.Label)
}

type LegalAPI interface {
	Submit(ctx context.Context, name string, sub upstream.Submission) (*upstream.Result, error)
	Converse(ctx context.Context, name string, payload map[string]string) (*upstream.Result, error)
}

// UploadedFile is an assist attachment held in memory for the duration of the call.
type UploadedFile struct {
	Field string
	Name  string
	Data  []byte
}

type Operation struct {
	Name         string
	Files        []UploadedFile
	ContractType string
}

type Reply struct {
	Operation  string            `json:"operation"`
	Text       string            `json:"text"`
	Blocks     []formatter.Block `json:"blocks"`
	HTML       string            `json:"html"`
	Clauses    []string          `json:"clauses,omitempty"`
	Points     []string          `json:"points,omitempty"`
	SessionID  string            `json:"session_id,omitempty"`
	DocumentID string            `json:"document_id,omitempty"`
	ViewURL    string            `json:"view_url,omitempty"`
	Final      bool              `json:"final"`
	Fallback   bool              `json:"fallback,omitempty"`
}

type Service struct {
	api        LegalAPI
	chats      chatModel.ChatStore
	documents  documentModel.DocumentStore
	summariser llm.Summariser
	logger     *logger_i.Logger
}

type ServiceConfig struct {
	API        LegalAPI
	Chats      chatModel.ChatStore
	Documents  documentModel.DocumentStore
	Summariser llm.Summariser
}

func NewService(cfg ServiceConfig) *Service {
	return &Service{
		api:        cfg.API,
		chats:      cfg.Chats,
		documents:  cfg.Documents,
		summariser: cfg.Summariser,
		logger:     logger_i.NewLogger("Assistant"),
	}
}

// multipart operations reachable through Run
var runnable = map[string]bool{
	upstream.RecommendClauses:  true,
	upstream.SummarizeContract: true,
	upstream.CompareContracts:  true,
	upstream.LegalLens:         true,
	upstream.Headnote:          true,
	upstream.IPCClassifier:     true,
	upstream.LegalResearch:     true,
	upstream.TextSummarizer:    true,
	upstream.UploadDocument:    true,
}

// follow-up endpoint for operations that open a session
var continuations = map[string]string{
	upstream.IPCClassifier:  upstream.ContinueIPC,
	upstream.LegalResearch:  upstream.ContinueLegalResearch,
	upstream.UploadDocument: upstream.QueryDocument,
}

func IsRunnable(name string) bool {
	return runnable[name]
}

// Run submits the files to one legal tool and records the exchange.
func (s *Service) Run(ctx context.Context, workspaceId string, op Operation) (Reply, error) {
	log := s.logger.Trace(ctx).With("workspaceId", workspaceId, "operation", op.Name)
	if !runnable[op.Name] {
		return Reply{}, fmt.Errorf("%w: %s", upstream.ErrUnknownEndpoint, op.Name)
	}
	if err := s.requireWorkspace(ctx, workspaceId); err != nil {
		return Reply{}, err
	}

	sub := upstream.Submission{}
	names := make([]string, 0, len(op.Files))
	for _, f := range op.Files {
		sub.Files = append(sub.Files, upstream.File{Field: f.Field, Name: f.Name, Reader: bytes.NewReader(f.Data)})
		names = append(names, f.Name)
	}
	if op.ContractType != "" {
		sub.Query = map[string]string{"contract_type": op.ContractType}
	}

	res, err := s.api.Submit(ctx, op.Name, sub)
	fallback := false
	if err != nil {
		res, err = s.tryFallback(ctx, op, err)
		if err != nil {
			log.Warn("Legal api call failed", "error", err)
			return Reply{}, err
		}
		fallback = true
	}

	text := res.Text
	if !res.Found {
		if op.Name != upstream.UploadDocument {
			ep, _ := upstream.Lookup(op.Name)
			return Reply{}, &EmptyResultError{Label: ep.Label}
		}
		text = defaultDocumentGreeting
	}
	if op.Name == upstream.IPCClassifier {
		text = "**Identified IPC Sections:**\n" + text
	}

	reply := s.newReply(op.Name, text)
	reply.Final = true
	reply.Fallback = fallback
	reply.SessionID = res.SessionID
	reply.DocumentID = res.DocumentID
	reply.ViewURL = res.ViewURL

	switch op.Name {
	case upstream.RecommendClauses:
		reply.Clauses = upstream.SplitClauses(res.Text)
	case upstream.Headnote:
		reply.Points = formatter.SplitPoints(res.Text)
	}

	if next, ok := continuations[op.Name]; ok && (res.SessionID != "" || res.DocumentID != "") {
		conv := chatModel.Conversation{SessionID: res.SessionID, DocumentID: res.DocumentID, Endpoint: next}
		if err := s.chats.SaveConversation(ctx, workspaceId, conv); err != nil {
			log.Error("Failed to save conversation", "error", err)
		}
	}

	s.record(ctx, workspaceId, fmt.Sprintf("Submitted %s", strings.Join(names, ", ")), text)
	return reply, nil
}

// Continue sends a follow-up message on the workspace's open session.
func (s *Service) Continue(ctx context.Context, workspaceId string, message string) (Reply, error) {
	if err := s.requireWorkspace(ctx, workspaceId); err != nil {
		return Reply{}, err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, &upstream.ValidationError{Field: "message", Message: "message is required"}
	}

	conv, ok := s.chats.GetConversation(ctx, workspaceId)
	if !ok || (conv.SessionID == "" && conv.DocumentID == "") {
		return Reply{}, &upstream.ValidationError{Field: "session_id", Message: "Upload a document first to start a conversation."}
	}

	var payload map[string]string
	switch conv.Endpoint {
	case upstream.QueryDocument:
		payload = map[string]string{"query": message, "document_id": conv.DocumentID}
	default:
		payload = map[string]string{"user_input": message, "session_id": conv.SessionID}
	}

	res, err := s.api.Converse(ctx, conv.Endpoint, payload)
	if err != nil {
		s.logger.Trace(ctx).Warn("Continue conversation failed", "endpoint", conv.Endpoint, "error", err)
		return Reply{}, err
	}
	if !res.Found {
		ep, _ := upstream.Lookup(conv.Endpoint)
		return Reply{}, &EmptyResultError{Label: ep.Label}
	}

	reply := s.newReply(conv.Endpoint, res.Text)
	reply.Final = true
	reply.SessionID = conv.SessionID
	reply.DocumentID = conv.DocumentID
	s.record(ctx, workspaceId, message, res.Text)
	return reply, nil
}

// Draft walks the drafting questionnaire. A reply is Final once the API
// returns the document text.
func (s *Service) Draft(ctx context.Context, workspaceId string, kind string, message string) (Reply, error) {
	if err := s.requireWorkspace(ctx, workspaceId); err != nil {
		return Reply{}, err
	}
	message = strings.TrimSpace(message)

	var (
		res *upstream.Result
		err error
	)
	switch {
	case kind == DraftEmployeeAgreement && message == "":
		res, err = s.api.Converse(ctx, upstream.EmployeeAgreementChat, nil)
		if err == nil {
			res.Prompt, res.Found = res.Text, false
		}
	case kind == DraftEmployeeAgreement:
		res, err = s.api.Converse(ctx, upstream.EmployeeAgreement, map[string]string{"message": message})
	case kind == DraftNDA:
		res, err = s.api.Converse(ctx, upstream.NDA, map[string]string{"message": message})
	default:
		return Reply{}, fmt.Errorf("%w: %s", upstream.ErrUnknownEndpoint, kind)
	}
	if err != nil {
		s.logger.Trace(ctx).Warn("Drafting call failed", "kind", kind, "error", err)
		return Reply{}, err
	}

	if res.Found {
		reply := s.newReply(kind, res.Text)
		reply.Final = true
		reply.DocumentID = res.DocumentID
		s.record(ctx, workspaceId, message, res.Text)
		return reply, nil
	}

	question := res.Prompt
	if question == "" {
		question = defaultDraftQuestion
	}
	s.record(ctx, workspaceId, message, question)
	return s.newReply(kind, question), nil
}

func (s *Service) History(ctx context.Context, workspaceId string) ([]chatModel.ChatMessage, error) {
	if err := s.requireWorkspace(ctx, workspaceId); err != nil {
		return nil, err
	}
	return s.chats.History(ctx, workspaceId)
}

func (s *Service) newReply(operation string, text string) Reply {
	blocks := formatter.Format(text)
	return Reply{
		Operation: operation,
		Text:      text,
		Blocks:    blocks,
		HTML:      formatter.RenderHTML(blocks),
	}
}

// record appends the user action and bot reply. Transcript failures never fail the call.
func (s *Service) record(ctx context.Context, workspaceId string, userText string, botText string) {
	if userText != "" {
		if err := s.chats.Append(ctx, workspaceId, chatModel.NewMessage(chatModel.SenderUser, userText)); err != nil {
			s.logger.Trace(ctx).Error("Failed to record user message", "error", err)
		}
	}
	if err := s.chats.Append(ctx, workspaceId, chatModel.NewMessage(chatModel.SenderBot, botText)); err != nil {
		s.logger.Trace(ctx).Error("Failed to record bot message", "error", err)
	}
}

func (s *Service) requireWorkspace(ctx context.Context, workspaceId string) error {
	if workspaceId == "" || !s.documents.WorkspaceExists(ctx, workspaceId) {
		return ErrWorkspaceNotFound
	}
	return nil
}

// tryFallback summarises locally when the legal API is down for a summary call.
func (s *Service) tryFallback(ctx context.Context, op Operation, callErr error) (*upstream.Result, error) {
	var nErr *upstream.NetworkError
	if s.summariser == nil || !errors.As(callErr, &nErr) {
		return nil, callErr
	}
	if op.Name != upstream.SummarizeContract && op.Name != upstream.TextSummarizer {
		return nil, callErr
	}
	if len(op.Files) == 0 {
		return nil, callErr
	}

	log := s.logger.Trace(ctx)
	file := op.Files[0]
	text, err := extractLocal(ctx, file)
	if err != nil {
		log.Warn("Fallback summariser could not read the file", "file", file.Name, "error", err)
		return nil, callErr
	}

	summary, err := s.summariser.Summarise(ctx, file.Name, text)
	if err != nil {
		log.Error("Fallback summariser failed", "error", err)
		return nil, callErr
	}
	log.Info("Served summary from fallback summariser", "file", file.Name)
	return &upstream.Result{Text: summary, Found: true}, nil
}

func extractLocal(ctx context.Context, file UploadedFile) (string, error) {
	docType := ingest.Detect(file.Name, "")
	if docType == documentModel.DOC || docType == documentModel.UNSUPPORTED {
		return "", fmt.Errorf("%w: %s", ingest.ErrUnsupported, docType)
	}

	if err := os.MkdirAll(config.TempUploadDir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(config.TempUploadDir, "fallback-*"+filepath.Ext(file.Name))
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(file.Data); err != nil {
		tmp.Close()
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	return ingest.ExtractText(ctx, tmp.Name(), docType)
}
