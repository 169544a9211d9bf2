package ingest

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/akolanti/lexgate/internal/formatter"
	"github.com/lu4p/cat"
)

const docxBody = "word/document.xml"

type docxRun struct {
	Text   string
	Bold   bool
	Italic bool
}

// docxParagraph is one w:p. Level is 1-6 for heading styles, 0 for body text.
type docxParagraph struct {
	Level int
	Runs  []docxRun
}

func extractDOCXText(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}

func readDOCX(path string) ([]docxParagraph, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", docxBody, err)
		}
		defer rc.Close()
		return parseDocumentXML(rc)
	}
	return nil, errors.New("docx: " + docxBody + " missing")
}

// openParagraph is a w:p being read. Text boxes nest a w:p inside a run of
// the outer one, so paragraphs and runs are both kept on stacks. runBase is
// the run depth when the paragraph opened.
type openParagraph struct {
	para    docxParagraph
	runBase int
}

// parseDocumentXML walks the WordprocessingML tokens. Table cells hold plain
// w:p elements, so tables come out as a run of paragraphs. A nested paragraph
// is emitted before the one holding it.
func parseDocumentXML(r io.Reader) ([]docxParagraph, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []docxParagraph
		open       []*openParagraph
		runs       []*docxRun
		inRunProps bool
		inText     bool
	)

	// innermost run of the innermost paragraph, nil between runs
	currentRun := func() *docxRun {
		if len(runs) == 0 || (len(open) > 0 && len(runs) <= open[len(open)-1].runBase) {
			return nil
		}
		return runs[len(runs)-1]
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse docx: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			run := currentRun()
			switch t.Name.Local {
			case "p":
				open = append(open, &openParagraph{runBase: len(runs)})
			case "pStyle":
				if len(open) > 0 {
					open[len(open)-1].para.Level = headingLevel(attrValue(t, "val"))
				}
			case "r":
				runs = append(runs, &docxRun{})
			case "rPr":
				inRunProps = run != nil
			case "b":
				if inRunProps && run != nil {
					run.Bold = toggleOn(t)
				}
			case "i":
				if inRunProps && run != nil {
					run.Italic = toggleOn(t)
				}
			case "t":
				inText = run != nil
			case "tab":
				if run != nil {
					run.Text += "\t"
				}
			case "br", "cr":
				if run != nil {
					run.Text += "\n"
				}
			}

		case xml.CharData:
			if run := currentRun(); inText && run != nil {
				run.Text += string(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRunProps = false
			case "r":
				if len(runs) == 0 {
					continue
				}
				run := runs[len(runs)-1]
				runs = runs[:len(runs)-1]
				if len(open) > 0 && run.Text != "" {
					top := open[len(open)-1]
					top.para.Runs = append(top.para.Runs, *run)
				}
			case "p":
				if len(open) == 0 {
					continue
				}
				top := open[len(open)-1]
				open = open[:len(open)-1]
				paragraphs = append(paragraphs, top.para)
			}
		}
	}
	return paragraphs, nil
}

func renderParagraphs(paragraphs []docxParagraph) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		if strings.TrimSpace(paragraphText(p)) == "" {
			continue
		}
		if p.Level > 0 {
			tag := "h" + strconv.Itoa(p.Level)
			sb.WriteString("<" + tag + ">" + html.EscapeString(paragraphText(p)) + "</" + tag + ">\n")
			continue
		}
		sb.WriteString("<p>")
		for _, r := range p.Runs {
			sb.WriteString(renderRun(r))
		}
		sb.WriteString("</p>\n")
	}
	return formatter.SanitizeHTML(sb.String())
}

func renderRun(r docxRun) string {
	out := strings.ReplaceAll(html.EscapeString(r.Text), "\n", "<br>")
	if r.Italic {
		out = "<em>" + out + "</em>"
	}
	if r.Bold {
		out = "<strong>" + out + "</strong>"
	}
	return out
}

func paragraphText(p docxParagraph) string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func paragraphsText(paragraphs []docxParagraph) string {
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, paragraphText(p))
	}
	return strings.Join(lines, "\n")
}

// headingLevel maps "Heading2", "heading 2" and "Title" style ids.
func headingLevel(style string) int {
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if style == "title" {
		return 1
	}
	rest, ok := strings.CutPrefix(style, "heading")
	if !ok {
		return 0
	}
	level, err := strconv.Atoi(rest)
	if err != nil || level < 1 || level > 6 {
		return 0
	}
	return level
}

func toggleOn(t xml.StartElement) bool {
	switch strings.ToLower(attrValue(t, "val")) {
	case "0", "false", "none":
		return false
	default:
		return true
	}
}

func attrValue(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
