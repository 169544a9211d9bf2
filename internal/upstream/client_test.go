package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
)

const threeClauses = `1. **Confidentiality**: Each party keeps the other's information secret.
2. **Termination**: Either party may end the agreement with 30 days notice.
3. **Governing Law**: The laws of India apply.`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, nil), &hits
}

func contractFile() File {
	return File{Field: "file", Name: "contract.pdf", Reader: strings.NewReader("%PDF-1.4")}
}

func TestSubmit_RecommendClauses(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend-clauses" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("contract_type") != "Employment Agreement" {
			t.Errorf("contract_type = %q", r.URL.Query().Get("contract_type"))
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file: %v", err)
		}
		defer f.Close()
		if header.Filename != "contract.pdf" {
			t.Errorf("filename = %s", header.Filename)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"additional_clauses": map[string]string{"clause": threeClauses},
		})
	})

	res, err := client.Submit(context.Background(), RecommendClauses, Submission{
		Files: []File{contractFile()},
		Query: map[string]string{"contract_type": "Employment Agreement"},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !res.Found {
		t.Fatal("expected result to be found")
	}

	clauses := SplitClauses(res.Text)
	want := []string{
		"Each party keeps the other's information secret.",
		"Either party may end the agreement with 30 days notice.",
		"The laws of India apply.",
	}
	if !reflect.DeepEqual(clauses, want) {
		t.Errorf("clauses = %q, want %q", clauses, want)
	}
}

func TestSplitClauses_FallsBackToBlankLines(t *testing.T) {
	got := SplitClauses("First clause text.\n\nSecond clause text.\n\n  \n\n")
	want := []string{"First clause text.", "Second clause text."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitClauses = %q, want %q", got, want)
	}
	if got := SplitClauses("Keep it confidential.\n\nPay on time."); len(got) != 2 {
		t.Errorf("expected two clauses without headings, got %q", got)
	}
	if got := SplitClauses("   "); len(got) != 0 {
		t.Errorf("expected no clauses, got %q", got)
	}
}

func TestSubmit_ValidationSendsNothing(t *testing.T) {
	client, hits := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Submit(context.Background(), RecommendClauses, Submission{Files: []File{contractFile()}})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "contract_type" {
		t.Fatalf("expected contract_type validation error, got %v", err)
	}

	_, err = client.Submit(context.Background(), CompareContracts, Submission{Files: []File{{Field: "file_v1", Name: "a.pdf", Reader: strings.NewReader("a")}}})
	if !errors.As(err, &vErr) || vErr.Field != "file_v2" {
		t.Fatalf("expected file_v2 validation error, got %v", err)
	}

	if atomic.LoadInt32(hits) != 0 {
		t.Errorf("no request should be sent, got %d", *hits)
	}
	if HTTPStatus(err) != http.StatusBadRequest {
		t.Errorf("status = %d", HTTPStatus(err))
	}
}

func TestSubmit_DetailString(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"Unsupported contract type"}`))
	})

	_, err := client.Submit(context.Background(), SummarizeContract, Submission{Files: []File{contractFile()}})
	var uErr *UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if uErr.Status != http.StatusUnprocessableEntity || uErr.Detail != "Unsupported contract type" {
		t.Errorf("error = %+v", uErr)
	}
	if UserMessage(err) != "Unsupported contract type" {
		t.Errorf("message = %q", UserMessage(err))
	}
}

func TestSubmit_DetailObjectIsStringified(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":[{"loc":["file"],"msg":"field required"}]}`))
	})

	_, err := client.Submit(context.Background(), SummarizeContract, Submission{Files: []File{contractFile()}})
	var uErr *UpstreamError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if uErr.Detail != `[{"loc":["file"],"msg":"field required"}]` {
		t.Errorf("detail = %q", uErr.Detail)
	}
}

func TestSubmit_DetailMissingUsesDefault(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Submit(context.Background(), RecommendClauses, Submission{
		Files: []File{contractFile()},
		Query: map[string]string{"contract_type": "NDA"},
	})
	if UserMessage(err) != "Failed to fetch recommended clauses." {
		t.Errorf("message = %q", UserMessage(err))
	}
	if HTTPStatus(err) != http.StatusBadGateway {
		t.Errorf("status = %d", HTTPStatus(err))
	}
}

func TestSubmit_MalformedJSON(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"contract_summary": "cut off`))
	})

	_, err := client.Submit(context.Background(), SummarizeContract, Submission{Files: []File{contractFile()}})
	var dErr *DecodeError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestSubmit_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, nil)

	_, err := client.Submit(context.Background(), SummarizeContract, Submission{Files: []File{contractFile()}})
	var nErr *NetworkError
	if !errors.As(err, &nErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if UserMessage(err) != noResponseMessage {
		t.Errorf("message = %q", UserMessage(err))
	}
	if HTTPStatus(err) != http.StatusServiceUnavailable {
		t.Errorf("status = %d", HTTPStatus(err))
	}
}

func TestSubmit_SessionAndArrayResult(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ipc_sections":["Section 302","Section 304"],"session_id":"s-1","view_url":"/view/1"}`))
	})

	res, err := client.Submit(context.Background(), IPCClassifier, Submission{Files: []File{contractFile()}})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.Text != "Section 302\nSection 304" || res.SessionID != "s-1" || res.ViewURL != "/view/1" {
		t.Errorf("result = %+v", res)
	}
}

func TestSubmit_HostOverride(t *testing.T) {
	var overrideHit bool
	override := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overrideHit = true
		w.Write([]byte(`{"proofread_report":{"proofread_analysis":"Looks fine."}}`))
	}))
	defer override.Close()

	client := NewClient("http://127.0.0.1:1", map[string]string{LegalLens: override.URL})
	res, err := client.Submit(context.Background(), LegalLens, Submission{Files: []File{contractFile()}})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !overrideHit || res.Text != "Looks fine." {
		t.Errorf("override not used, result = %+v", res)
	}
}

func TestConverse(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["session_id"] != "s-1" || body["user_input"] != "and section 304?" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"response":"Section 304 covers culpable homicide."}`))
	})

	res, err := client.Converse(context.Background(), ContinueIPC, map[string]string{
		"user_input": "and section 304?",
		"session_id": "s-1",
	})
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if res.Text != "Section 304 covers culpable homicide." {
		t.Errorf("text = %q", res.Text)
	}

	_, err = client.Converse(context.Background(), ContinueIPC, map[string]string{"user_input": "hi"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "session_id" {
		t.Errorf("expected session_id validation error, got %v", err)
	}
}

func TestConverse_DraftPrompt(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"What is the employee's start date?"}`))
	})

	res, err := client.Converse(context.Background(), EmployeeAgreement, map[string]string{"message": "Acme Ltd"})
	if err != nil {
		t.Fatalf("Converse failed: %v", err)
	}
	if res.Found || res.Prompt != "What is the employee's start date?" {
		t.Errorf("result = %+v", res)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	if _, err := client.Submit(context.Background(), "nope", Submission{}); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("expected ErrUnknownEndpoint, got %v", err)
	}
	if _, err := client.Converse(context.Background(), SummarizeContract, nil); !errors.Is(err, ErrUnknownEndpoint) {
		t.Errorf("multipart endpoint through Converse should fail, got %v", err)
	}
}

func TestRecentFilesAndDownload(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/recent-files/summaries":
			w.Write([]byte(`[{"name":"a.pdf","path":"/files/a.pdf","modified_time":"2024-01-02T10:00:00"}]`))
		case "/download-document/doc-9":
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
			w.Write([]byte("docx-bytes"))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Document not found"}`))
		}
	})

	files, err := client.RecentFiles(context.Background(), "summaries")
	if err != nil {
		t.Fatalf("RecentFiles failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != "a.pdf" || files[0].ModifiedTime != "2024-01-02T10:00:00" {
		t.Errorf("files = %+v", files)
	}

	body, contentType, err := client.Download(context.Background(), "doc-9")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	data, _ := io.ReadAll(body)
	body.Close()
	if string(data) != "docx-bytes" || !strings.Contains(contentType, "wordprocessingml") {
		t.Errorf("download = %q %q", data, contentType)
	}

	_, _, err = client.Download(context.Background(), "missing")
	if UserMessage(err) != "Document not found" {
		t.Errorf("message = %q", UserMessage(err))
	}
}
