// Package ingest turns uploaded files into previewable content and plain text.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/akolanti/lexgate/internal/adapter/utils"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/domain/documentModel"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

const (
	WarningDOC         = "DOC files are not supported for direct preview. Please convert to DOCX or PDF."
	WarningUnsupported = "Unsupported file format. Please upload a PDF, DOCX, or TXT file."

	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
)

var (
	ErrUnsupported = errors.New("unsupported document type")

	logger = logger_i.NewLogger("Ingest")
)

// Conversion is what a settled document looks like. Blob is set for PDF only.
type Conversion struct {
	Content      string
	ContentKind  documentModel.ContentKind
	Text         string
	PreviewToken string
	Blob         *documentModel.Blob
}

// Detect dispatches on the mime type first and falls back to the extension.
func Detect(name string, mimeType string) documentModel.DocType {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}

	switch {
	case mediaType == mimePDF:
		return documentModel.PDF
	case mediaType == mimeDOCX:
		return documentModel.DOCX
	case mediaType == mimeDOC:
		return documentModel.DOC
	case strings.HasPrefix(mediaType, "text/"):
		return documentModel.TXT
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return documentModel.PDF
	case ".docx":
		return documentModel.DOCX
	case ".doc":
		return documentModel.DOC
	case ".txt":
		return documentModel.TXT
	default:
		return documentModel.UNSUPPORTED
	}
}

// Admit returns the detected type and, for files that get no record, the
// warning the user should see.
func Admit(name string, mimeType string) (documentModel.DocType, string) {
	docType := Detect(name, mimeType)
	switch docType {
	case documentModel.DOC:
		return docType, WarningDOC
	case documentModel.UNSUPPORTED:
		return docType, WarningUnsupported
	default:
		return docType, ""
	}
}

// Convert reads the file at path and produces its preview content.
func Convert(ctx context.Context, path string, docType documentModel.DocType) (Conversion, error) {
	log := logger.Trace(ctx)
	log.Debug("Converting document", "path", path, "type", docType)

	switch docType {
	case documentModel.PDF:
		return convertPDF(ctx, path)
	case documentModel.DOCX:
		return convertDOCX(path)
	case documentModel.TXT:
		text, err := readText(path)
		if err != nil {
			return Conversion{}, err
		}
		return Conversion{Content: text, ContentKind: documentModel.ContentText, Text: text}, nil
	default:
		return Conversion{}, fmt.Errorf("%w: %s", ErrUnsupported, docType)
	}
}

// ExtractText returns the plain text of a document. PDF pages are joined by newline.
func ExtractText(ctx context.Context, path string, docType documentModel.DocType) (string, error) {
	switch docType {
	case documentModel.PDF:
		pages, err := extractPDF(ctx, path)
		if err != nil {
			return "", err
		}
		return joinPages(pages), nil
	case documentModel.DOCX:
		return extractDOCXText(path)
	case documentModel.TXT:
		return readText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, docType)
	}
}

func convertPDF(ctx context.Context, path string) (Conversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Conversion{}, fmt.Errorf("read pdf: %w", err)
	}

	//the preview is the raw file, text is a best effort
	text := ""
	if pages, err := extractPDF(ctx, path); err != nil {
		logger.Trace(ctx).Warn("PDF text extraction failed", "path", path, "error", err)
	} else {
		text = joinPages(pages)
	}

	token := utils.GetNewUUID()
	return Conversion{
		Content:      config.PreviewRoutePrefix + token,
		ContentKind:  documentModel.ContentURL,
		Text:         text,
		PreviewToken: token,
		Blob: &documentModel.Blob{
			ContentType: mimePDF,
			Data:        data,
		},
	}, nil
}

func convertDOCX(path string) (Conversion, error) {
	paragraphs, err := readDOCX(path)
	if err != nil {
		return Conversion{}, err
	}

	text, err := extractDOCXText(path)
	if err != nil {
		logger.Warn("Falling back to parsed docx text", "path", path, "error", err)
		text = paragraphsText(paragraphs)
	}

	return Conversion{
		Content:     renderParagraphs(paragraphs),
		ContentKind: documentModel.ContentHTML,
		Text:        text,
	}, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")
	return strings.ToValidUTF8(text, "\uFFFD"), nil
}
