// Package upstream is the single client for the external legal API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/customHttpClient"
	"github.com/akolanti/lexgate/internal/metrics"
	"github.com/akolanti/lexgate/pkg/logger_i"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 16 << 20

type Client struct {
	baseURL    string
	overrides  map[string]string
	httpClient *http.Client
	logger     *logger_i.Logger
}

type File struct {
	Field  string
	Name   string
	Reader io.Reader
}

// Submission is one multipart call: files, extra form fields and query params.
type Submission struct {
	Files  []File
	Fields map[string]string
	Query  map[string]string
}

type Result struct {
	Text       string
	Prompt     string
	Found      bool
	SessionID  string
	DocumentID string
	ViewURL    string
	Raw        string
}

type FileInfo struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	ModifiedTime string `json:"modified_time"`
}

func NewClient(baseURL string, overrides map[string]string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		overrides:  overrides,
		httpClient: customHttpClient.NewClient(config.UpstreamRequestTimeout),
		logger:     logger_i.NewLogger("LegalAPI"),
	}
}

// Submit posts a multipart form to a file endpoint.
func (c *Client) Submit(ctx context.Context, name string, sub Submission) (*Result, error) {
	ep, ok := Lookup(name)
	if !ok || ep.JSON || ep.Method != http.MethodPost {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}
	if err := validateSubmission(ep, sub); err != nil {
		return nil, err
	}

	body, contentType, err := buildMultipart(sub)
	if err != nil {
		return nil, fmt.Errorf("build %s form: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(ep, nil, sub.Query), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", contentType)

	raw, err := c.call(ctx, ep, req)
	if err != nil {
		return nil, err
	}
	return parseResult(ep, raw)
}

// Converse posts a JSON body to a conversational endpoint.
func (c *Client) Converse(ctx context.Context, name string, payload map[string]string) (*Result, error) {
	ep, ok := Lookup(name)
	if !ok || !ep.JSON {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}
	for _, key := range ep.RequiredJSON {
		if strings.TrimSpace(payload[key]) == "" {
			return nil, missing(key)
		}
	}
	if payload == nil {
		payload = map[string]string{}
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(ep, nil, nil), bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.call(ctx, ep, req)
	if err != nil {
		return nil, err
	}
	return parseResult(ep, raw)
}

// RecentFiles lists what the legal API stored for a folder.
func (c *Client) RecentFiles(ctx context.Context, folder string) ([]FileInfo, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, missing("folder")
	}
	ep, _ := Lookup(RecentFiles)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(ep, map[string]string{"folder": folder}, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("build recent files request: %w", err)
	}

	raw, err := c.call(ctx, ep, req)
	if err != nil {
		return nil, err
	}
	parsed := gjson.ParseBytes(raw)
	if !gjson.ValidBytes(raw) || !parsed.IsArray() {
		return nil, &DecodeError{Endpoint: ep.Name, Body: snippet(raw)}
	}

	files := make([]FileInfo, 0)
	parsed.ForEach(func(_, item gjson.Result) bool {
		files = append(files, FileInfo{
			Name:         item.Get("name").String(),
			Path:         item.Get("path").String(),
			ModifiedTime: item.Get("modified_time").String(),
		})
		return true
	})
	return files, nil
}

// Download streams a generated document. The caller closes the body.
func (c *Client) Download(ctx context.Context, documentID string) (io.ReadCloser, string, error) {
	if strings.TrimSpace(documentID) == "" {
		return nil, "", missing("document_id")
	}
	ep, _ := Lookup(DownloadDocument)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(ep, map[string]string{"id": documentID}, nil), nil)
	if err != nil {
		return nil, "", fmt.Errorf("build download request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.CaptureExecutionMetrics("legal-api:"+ep.Name, time.Since(start))
	if err != nil {
		return nil, "", &NetworkError{Endpoint: ep.Name, Err: err}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		return nil, "", &UpstreamError{Endpoint: ep.Name, Status: resp.StatusCode, Detail: detailFrom(ep, raw)}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return resp.Body, contentType, nil
}

func (c *Client) call(ctx context.Context, ep Endpoint, req *http.Request) ([]byte, error) {
	log := c.logger.Trace(ctx).With("endpoint", ep.Name)
	log.Debug("Calling legal api", "url", req.URL.String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.CaptureExecutionMetrics("legal-api:"+ep.Name, time.Since(start))
	if err != nil {
		log.Error("Legal api unreachable", "error", err)
		return nil, &NetworkError{Endpoint: ep.Name, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Error("Reading legal api response failed", "error", err)
		return nil, &NetworkError{Endpoint: ep.Name, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		uErr := &UpstreamError{Endpoint: ep.Name, Status: resp.StatusCode, Detail: detailFrom(ep, raw)}
		log.Warn("Legal api returned an error", "status", resp.StatusCode, "detail", uErr.Detail)
		return nil, uErr
	}
	log.Debug("Legal api call done", "status", resp.StatusCode, "took", time.Since(start).String())
	return raw, nil
}

func (c *Client) endpointURL(ep Endpoint, pathParams map[string]string, query map[string]string) string {
	base := c.baseURL
	if override, ok := c.overrides[ep.Name]; ok {
		base = override
	}

	path := ep.Path
	for key, value := range pathParams {
		path = strings.ReplaceAll(path, "{"+key+"}", url.PathEscape(value))
	}

	if len(query) == 0 {
		return base + path
	}
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	return base + path + "?" + values.Encode()
}

func validateSubmission(ep Endpoint, sub Submission) error {
	for _, field := range ep.FileFields {
		count := 0
		for _, f := range sub.Files {
			if f.Field == field && f.Reader != nil {
				count++
			}
		}
		if count == 0 {
			return missing(field)
		}
		if count > 1 && !ep.MultiFile {
			return &ValidationError{Field: field, Message: fmt.Sprintf("only one %s is accepted", field)}
		}
	}
	for _, param := range ep.QueryParams {
		if strings.TrimSpace(sub.Query[param]) == "" {
			return missing(param)
		}
	}
	return nil
}

func buildMultipart(sub Submission) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range sub.Files {
		part, err := mw.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err = io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}
	for key, value := range sub.Fields {
		if err := mw.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func parseResult(ep Endpoint, raw []byte) (*Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &DecodeError{Endpoint: ep.Name, Body: snippet(raw)}
	}
	doc := gjson.ParseBytes(raw)
	value := doc.Get(ep.ResultPath)

	res := &Result{
		Text:       resultText(value),
		Found:      value.Exists(),
		SessionID:  doc.Get("session_id").String(),
		DocumentID: doc.Get("document_id").String(),
		ViewURL:    doc.Get("view_url").String(),
		Raw:        doc.Raw,
	}
	if ep.PromptPath != "" && !res.Found {
		res.Prompt = resultText(doc.Get(ep.PromptPath))
	}
	return res, nil
}

// resultText stringifies whatever the API put at the result path.
func resultText(value gjson.Result) string {
	switch {
	case !value.Exists():
		return ""
	case value.Type == gjson.String:
		return value.String()
	case value.IsArray():
		parts := make([]string, 0)
		value.ForEach(func(_, item gjson.Result) bool {
			parts = append(parts, resultText(item))
			return true
		})
		return strings.Join(parts, "\n")
	default:
		return value.Raw
	}
}

// detailFrom surfaces "detail" verbatim when it is a string, stringified when not.
func detailFrom(ep Endpoint, raw []byte) string {
	if gjson.ValidBytes(raw) {
		detail := gjson.GetBytes(raw, "detail")
		if detail.Exists() && detail.Type != gjson.Null {
			if detail.Type == gjson.String {
				return detail.String()
			}
			return detail.Raw
		}
	}
	return fmt.Sprintf("Failed to fetch %s.", ep.Label)
}

func snippet(raw []byte) string {
	const limit = 200
	if len(raw) > limit {
		return string(raw[:limit])
	}
	return string(raw)
}
