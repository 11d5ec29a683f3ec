package pipeline

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/document.html
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "templates/document.html"))

// DocumentData is everything substituted into the rendered document.
type DocumentData struct {
	Title       string
	Keywords    string
	Author      string
	Description string
	Content     string // inserted verbatim
}

// Render assembles the final HTML document. Title, keywords, author and
// description are escaped; the content is written byte-for-byte.
func Render(data DocumentData) (string, error) {
	var buf strings.Builder

	err := documentTemplate.Execute(&buf, struct {
		Title       string
		Keywords    string
		Author      string
		Description string
		Content     template.HTML
	}{
		Title:       data.Title,
		Keywords:    data.Keywords,
		Author:      data.Author,
		Description: data.Description,
		Content:     template.HTML(data.Content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render document: %w", err)
	}

	return buf.String(), nil
}
