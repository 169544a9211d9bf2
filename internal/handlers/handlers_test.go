package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/assistant"
	"github.com/akolanti/lexgate/internal/auth"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/data/store"
	"github.com/akolanti/lexgate/internal/domain/jobModel"
	"github.com/akolanti/lexgate/internal/handlers"
	"github.com/akolanti/lexgate/internal/job"
	"github.com/akolanti/lexgate/internal/server"
	"github.com/akolanti/lexgate/internal/upstream"
)

var remoteCount int64

type testEnv struct {
	router http.Handler
	jobs   *job.Service
	legal  *httptest.Server
}

// newEnv wires in-memory stores and a fake legal api. legal may be nil.
func newEnv(t *testing.T, legal http.HandlerFunc) *testEnv {
	t.Helper()
	if legal == nil {
		legal = func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) }
	}
	legalServer := httptest.NewServer(legal)
	t.Cleanup(legalServer.Close)

	docs := store.InitInMemoryDocumentStore()
	chats := store.InitInMemoryChatStore()
	jobs := job.InitJobService(job.ServiceConfig{
		JobChannel:        make(chan jobModel.Job, 10),
		DispatcherChannel: make(chan bool, 10),
		JobStore:          store.InitInMemoryJobStore(),
		DocumentStore:     docs,
	})
	client := upstream.NewClient(legalServer.URL, nil)

	handlers.InitHandlers(handlers.Dependencies{
		Jobs:      jobs,
		Documents: docs,
		Chats:     chats,
		Assistant: assistant.NewService(assistant.ServiceConfig{API: client, Chats: chats, Documents: docs}),
		Auth: auth.NewService(auth.StaticUser{
			Id:       config.StaticUserID,
			Name:     config.StaticUserName,
			Email:    config.StaticUserEmail,
			Password: config.StaticUserPassword,
		}, store.InitInMemoryUserStore()),
		Files:     client,
		UploadDir: t.TempDir(),
	})
	return &testEnv{router: server.Routes(), jobs: jobs, legal: legalServer}
}

// do sends each request from its own address so the rate limiter stays out of the way.
func (e *testEnv) do(t *testing.T, method string, path string, body io.Reader, contentType string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	n := atomic.AddInt64(&remoteCount, 1)
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:4000", n/250, n%250+1)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method string, path string, payload any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return e.do(t, method, path, bytes.NewReader(data), "application/json", cookie)
}

func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.doJSON(t, http.MethodPost, "/api/auth/login", api.LoginRequest{Email: config.StaticUserEmail, Password: config.StaticUserPassword}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == config.AuthCookieName {
			return c
		}
	}
	t.Fatal("login set no auth cookie")
	return nil
}

func (e *testEnv) workspace(t *testing.T, cookie *http.Cookie) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/workspaces", nil, "", cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create workspace: %d", rec.Code)
	}
	var ws api.WorkspaceResponse
	decode(t, rec, &ws)
	return ws.Id
}

// drain runs the queued conversions the way a worker would.
func (e *testEnv) drain(t *testing.T) {
	t.Helper()
	for {
		select {
		case queued := <-e.jobs.JobChannel:
			done := e.jobs.ProcessConversion(context.Background(), queued)
			if err := e.jobs.JobStore.SaveJob(context.Background(), done); err != nil {
				t.Fatal(err)
			}
		default:
			return
		}
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

type part struct {
	field string
	name  string
	data  string
}

func multipartBody(t *testing.T, parts ...part) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := mw.CreateFormFile(p.field, p.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = fw.Write([]byte(p.data)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func TestLoginSetsCookieAndCheckAccepts(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)

	if !cookie.HttpOnly || cookie.Path != "/" || cookie.MaxAge != int(config.AuthCookieMaxAge.Seconds()) {
		t.Errorf("Unexpected cookie attributes: %+v", cookie)
	}

	rec := env.do(t, http.MethodGet, "/api/auth/check", nil, "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var check api.CheckResponse
	decode(t, rec, &check)
	if !check.Authenticated || check.User.Email != config.StaticUserEmail || check.User.Name != config.StaticUserName {
		t.Errorf("Unexpected check response: %+v", check)
	}
}

func TestLoginFailures(t *testing.T) {
	env := newEnv(t, nil)

	tests := []struct {
		name     string
		req      api.LoginRequest
		wantCode int
		wantErr  string
	}{
		{"wrong password", api.LoginRequest{Email: config.StaticUserEmail, Password: "nope"}, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown user", api.LoginRequest{Email: "who@example.com", Password: "x"}, http.StatusUnauthorized, "Invalid credentials"},
		{"missing password", api.LoginRequest{Email: config.StaticUserEmail}, http.StatusBadRequest, "Email and password are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.doJSON(t, http.MethodPost, "/api/auth/login", tt.req, nil)
			if rec.Code != tt.wantCode {
				t.Fatalf("Expected %d, got %d", tt.wantCode, rec.Code)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("No cookie expected on a failed login")
			}
			var body api.AuthError
			decode(t, rec, &body)
			if body.Error != tt.wantErr {
				t.Errorf("Expected %q, got %q", tt.wantErr, body.Error)
			}
		})
	}
}

func TestCheckWithoutCookie(t *testing.T) {
	env := newEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/api/auth/check", nil, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", rec.Code)
	}
	var body api.AuthError
	decode(t, rec, &body)
	if body.Error != "Not authenticated" {
		t.Errorf("Unexpected error %q", body.Error)
	}
}

func TestCheckAcceptsStringUserId(t *testing.T) {
	env := newEnv(t, nil)
	cookie := &http.Cookie{Name: config.AuthCookieName, Value: url.QueryEscape(`{"userId":"u-42","email":"a@b.in"}`)}

	rec := env.do(t, http.MethodGet, "/api/auth/check", nil, "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var body api.CheckResponse
	decode(t, rec, &body)
	if !body.Authenticated || body.User.Email != "a@b.in" {
		t.Errorf("Unexpected check response %+v", body)
	}
}

func TestSignupThenLogin(t *testing.T) {
	env := newEnv(t, nil)
	signup := api.SignupRequest{Name: "Asha", Email: "asha@example.com", Password: "s3cret"}

	rec := env.doJSON(t, http.MethodPost, "/api/auth/signup", signup, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d %s", rec.Code, rec.Body.String())
	}

	rec = env.doJSON(t, http.MethodPost, "/api/auth/signup", signup, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409 on duplicate, got %d", rec.Code)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/auth/signup", api.SignupRequest{Email: "x@example.com"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 on missing fields, got %d", rec.Code)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/auth/login", api.LoginRequest{Email: signup.Email, Password: signup.Password}, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected the new account to log in, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newEnv(t, nil)
	rec := env.do(t, http.MethodPost, "/api/auth/logout", nil, "", env.login(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("Expected an expired cookie, got %+v", cookies)
	}
}

func TestPageRedirects(t *testing.T) {
	env := newEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/dashboard", nil, "", nil)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login?from="+url.QueryEscape("/dashboard") {
		t.Errorf("Expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cookie := env.login(t)
	rec = env.do(t, http.MethodGet, "/login", nil, "", cookie)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Errorf("Expected redirect to dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = env.do(t, http.MethodGet, "/legal-lens", nil, "", cookie)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Legal Lens") {
		t.Errorf("Expected the page shell, got %d", rec.Code)
	}
}

func TestPageRedirects_NestedProtectedPath(t *testing.T) {
	env := newEnv(t, nil)

	for _, path := range []string{"/dashboard/settings", "/profile/edit", "/legal-lens/history"} {
		rec := env.do(t, http.MethodGet, path, nil, "", nil)
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login?from="+url.QueryEscape(path) {
			t.Errorf("%s: expected redirect to login, got %d %q", path, rec.Code, rec.Header().Get("Location"))
		}
	}

	rec := env.do(t, http.MethodGet, "/no-such-page", nil, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for an unprotected unknown path, got %d", rec.Code)
	}
}

func TestAPIRequiresCookie(t *testing.T) {
	env := newEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/api/menu", nil, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestUploadConvertAndStatus(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	body, contentType := multipartBody(t,
		part{"file", "notes.txt", "Clause 1 applies."},
		part{"file", "old.doc", "binary"},
	)
	rec := env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/documents", body, contentType, cookie)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d %s", rec.Code, rec.Body.String())
	}
	var upload api.UploadResponse
	decode(t, rec, &upload)
	if len(upload.Documents) != 1 || len(upload.Warnings) != 1 {
		t.Fatalf("Expected one document and one warning, got %+v", upload)
	}
	if !strings.Contains(upload.Warnings[0], "DOC files are not supported") {
		t.Errorf("Unexpected warning %q", upload.Warnings[0])
	}

	accepted := upload.Documents[0]
	rec = env.do(t, http.MethodGet, accepted.StatusURL, nil, "", cookie)
	var status api.JobResponse
	decode(t, rec, &status)
	if status.Result.Status != string(jobModel.JobStatusQueued) || status.Result.Document != nil {
		t.Errorf("Expected a queued job without document, got %+v", status.Result)
	}

	env.drain(t)

	rec = env.do(t, http.MethodGet, accepted.StatusURL, nil, "", cookie)
	decode(t, rec, &status)
	if status.Result.Status != string(jobModel.JobStatusComplete) || status.Result.Document == nil {
		t.Fatalf("Expected a complete job with document, got %+v", status.Result)
	}
	if doc := status.Result.Document; doc.Content == nil || *doc.Content != "Clause 1 applies." || doc.Status != "READY" {
		t.Errorf("Unexpected document %+v", doc)
	}

	rec = env.do(t, http.MethodGet, "/api/workspaces/"+ws+"/documents", nil, "", cookie)
	var docs []api.DocumentResponse
	decode(t, rec, &docs)
	if len(docs) != 1 {
		t.Errorf("Expected exactly one record, got %d", len(docs))
	}
}

func TestUploadNothingAdmitted(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	body, contentType := multipartBody(t, part{"file", "photo.png", "png"})
	rec := env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/documents", body, contentType, cookie)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("Expected 415, got %d", rec.Code)
	}
	var upload api.UploadResponse
	decode(t, rec, &upload)
	if len(upload.Documents) != 0 || len(upload.Warnings) != 1 {
		t.Errorf("Unexpected response %+v", upload)
	}

	rec = env.do(t, http.MethodPost, "/api/workspaces/missing/documents", body, contentType, cookie)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown workspace, got %d", rec.Code)
	}
}

func TestPreviewRevokedWithDocument(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	body, contentType := multipartBody(t, part{"file", "lease.pdf", "%PDF-1.4 not really"})
	rec := env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/documents", body, contentType, cookie)
	var upload api.UploadResponse
	decode(t, rec, &upload)
	env.drain(t)

	docPath := "/api/workspaces/" + ws + "/documents/" + upload.Documents[0].DocumentId
	rec = env.do(t, http.MethodGet, docPath, nil, "", cookie)
	var doc api.DocumentResponse
	decode(t, rec, &doc)
	if doc.PreviewURL == nil || doc.ContentKind != "url" {
		t.Fatalf("Expected a preview url, got %+v", doc)
	}

	rec = env.do(t, http.MethodGet, *doc.PreviewURL, nil, "", cookie)
	if rec.Code != http.StatusOK || rec.Body.String() != "%PDF-1.4 not really" || rec.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("Preview not served: %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}

	if rec = env.do(t, http.MethodDelete, docPath, nil, "", cookie); rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	if rec = env.do(t, http.MethodGet, *doc.PreviewURL, nil, "", cookie); rec.Code != http.StatusNotFound {
		t.Errorf("Expected the preview to be revoked, got %d", rec.Code)
	}
}

func TestAssistRecommendClauses(t *testing.T) {
	var contractType string
	env := newEnv(t, func(w http.ResponseWriter, r *http.Request) {
		contractType = r.URL.Query().Get("contract_type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"additional_clauses":{"clause":"1. **Term**: one year 2. **Notice**: thirty days"}}`))
	})
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	body, contentType := multipartBody(t, part{"file", "lease.pdf", "%PDF"})
	rec := env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/assist/recommend-clauses?contract_type=lease", body, contentType, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var reply assistant.Reply
	decode(t, rec, &reply)
	if len(reply.Clauses) != 2 || contractType != "lease" {
		t.Errorf("Unexpected reply %+v (contract_type %q)", reply.Clauses, contractType)
	}

	rec = env.do(t, http.MethodGet, "/api/workspaces/"+ws+"/messages", nil, "", cookie)
	var transcript api.MessagesResponse
	decode(t, rec, &transcript)
	if len(transcript.Messages) != 2 || transcript.Messages[0].Text != "Submitted lease.pdf" {
		t.Errorf("Unexpected transcript %+v", transcript.Messages)
	}
}

func TestAssistUpstreamErrors(t *testing.T) {
	env := newEnv(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Model overloaded"}`))
	})
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	body, contentType := multipartBody(t, part{"file", "case.pdf", "%PDF"})
	rec := env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/assist/headnote", body, contentType, cookie)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}
	var envelope api.JobResponse
	decode(t, rec, &envelope)
	if envelope.Error == nil || envelope.Error.Message != "Model overloaded" {
		t.Errorf("Expected the upstream detail, got %+v", envelope.Error)
	}

	body, contentType = multipartBody(t, part{"other", "case.pdf", "%PDF"})
	rec = env.do(t, http.MethodPost, "/api/workspaces/"+ws+"/assist/headnote", body, contentType, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing file field, got %d", rec.Code)
	}
}

func TestContinueWithoutSession(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	rec := env.doJSON(t, http.MethodPost, "/api/workspaces/"+ws+"/continue", api.MessageRequest{Message: "and then?"}, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	var envelope api.JobResponse
	decode(t, rec, &envelope)
	if envelope.Error.Message != "Upload a document first to start a conversation." {
		t.Errorf("Unexpected message %q", envelope.Error.Message)
	}
}

func TestFormatAndProofread(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)

	rec := env.doJSON(t, http.MethodPost, "/api/format", api.FormatRequest{Text: "### Summary\n**Term** is one year"}, cookie)
	var formatted api.FormatResponse
	decode(t, rec, &formatted)
	if len(formatted.Blocks) != 2 || !strings.Contains(formatted.HTML, "<h3>Summary</h3>") {
		t.Errorf("Unexpected format response %+v", formatted)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/format", api.FormatRequest{Text: "- a\n- b", Mode: "markdown"}, cookie)
	decode(t, rec, &formatted)
	if !strings.Contains(formatted.HTML, "<li>a</li>") {
		t.Errorf("Expected a markdown list, got %q", formatted.HTML)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/proofread", api.ProofreadRequest{Text: "the the contract is void prior to signing."}, cookie)
	var proof api.ProofreadResponse
	decode(t, rec, &proof)
	if proof.Report.Issues.Grammar == 0 || proof.Report.Issues.Terminology != 1 || proof.HTML == "" {
		t.Errorf("Unexpected proofread report %+v", proof.Report)
	}

	rec = env.doJSON(t, http.MethodPost, "/api/proofread", api.ProofreadRequest{}, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty text, got %d", rec.Code)
	}
}

func TestDeleteWorkspace(t *testing.T) {
	env := newEnv(t, nil)
	cookie := env.login(t)
	ws := env.workspace(t, cookie)

	if rec := env.do(t, http.MethodDelete, "/api/workspaces/"+ws, nil, "", cookie); rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/api/workspaces/"+ws+"/messages", nil, "", cookie); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	env := newEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/healthz", nil, "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}
