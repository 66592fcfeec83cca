// Package export renders articles into text formats for download.
package export

import (
	"fmt"
	"strings"

	"summa-reader/internal/domain"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// MarkdownExporter renders article content as Markdown.
// Passages may carry inline HTML, which is converted rather than escaped.
type MarkdownExporter struct {
	converter *md.Converter
}

// NewMarkdownExporter creates an exporter
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{converter: md.NewConverter("", true, nil)}
}

// Article renders the article in lang. A missing language produces a short notice
// instead of an error.
func (e *MarkdownExporter) Article(partID string, questionID int, article *domain.Article, lang string) (string, error) {
	if article == nil {
		return "", fmt.Errorf("nil article")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Artículo %d: %s\n\n", article.ID, article.Title)
	fmt.Fprintf(&b, "_Parte %s, Cuestión %d_\n\n", partID, questionID)

	content, ok := article.ContentFor(lang)
	if !ok {
		fmt.Fprintf(&b, "Contenido no disponible en %s\n", lang)
		return b.String(), nil
	}

	if content.HasObjections() {
		b.WriteString("## Objeciones\n\n")
		for _, o := range content.Objections {
			text, err := e.passage(o.Text)
			if err != nil {
				return "", fmt.Errorf("objection %d: %w", o.ID, err)
			}
			fmt.Fprintf(&b, "**%d.** %s\n\n", o.ID, text)
		}
	}
	if content.HasSedContra() {
		text, err := e.passage(content.SedContra)
		if err != nil {
			return "", fmt.Errorf("sed contra: %w", err)
		}
		fmt.Fprintf(&b, "## Sed Contra\n\n%s\n\n", text)
	}
	if content.HasCorpus() {
		text, err := e.passage(content.Corpus)
		if err != nil {
			return "", fmt.Errorf("corpus: %w", err)
		}
		fmt.Fprintf(&b, "## Respuesta\n\n%s\n\n", text)
	}
	if content.HasReplies() {
		b.WriteString("## Respuestas a las objeciones\n\n")
		for _, r := range content.Replies {
			text, err := e.passage(r.Text)
			if err != nil {
				return "", fmt.Errorf("reply to %d: %w", r.ToObjection, err)
			}
			fmt.Fprintf(&b, "**Ad %d.** %s\n\n", r.ToObjection, text)
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func (e *MarkdownExporter) passage(html string) (string, error) {
	out, err := e.converter.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
