package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// HTMLBuilder handles HTML generation with goldmark
type HTMLBuilder struct {
	goldmark goldmark.Markdown
	page     *template.Template
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(), // Allow raw HTML in markdown
		),
	)

	return &HTMLBuilder{
		goldmark: md,
		page:     template.Must(template.New("report").Parse(pageTemplate)),
	}
}

// TemplateData represents the data structure for the HTML report page
type TemplateData struct {
	Location       string
	Date           string
	GeneratedAt    string
	Content        template.HTML
	ChartImage     string
	WindSpeedChart template.HTML
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildReportPage creates the complete HTML document for one location.
func (h *HTMLBuilder) BuildReportPage(location, markdown, chartImage, chartHTML string, generatedAt time.Time) (string, error) {
	content, err := h.ConvertMarkdownToHTML(markdown)
	if err != nil {
		return "", err
	}

	data := TemplateData{
		Location:       location,
		Date:           generatedAt.Format("2006-01-02"),
		GeneratedAt:    generatedAt.Format("2006-01-02 15:04:05 MST"),
		Content:        template.HTML(content),
		ChartImage:     chartImage,
		WindSpeedChart: template.HTML(chartHTML),
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Wind Forecast: {{.Location}} ({{.Date}})</title>
<style>
body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 0 auto; max-width: 960px; padding: 1rem; color: #222; }
h1, h2 { color: #1a4d7a; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: right; }
th:first-child, td:first-child { text-align: left; }
img.chart { max-width: 100%; height: auto; border: 1px solid #ddd; }
footer { margin-top: 2rem; font-size: 0.8rem; color: #888; }
</style>
</head>
<body>
{{.Content}}
{{if .ChartImage}}<img class="chart" src="{{.ChartImage}}" alt="Wind speed chart for {{.Location}}">{{end}}
{{.WindSpeedChart}}
<footer>Generated {{.GeneratedAt}}</footer>
</body>
</html>
`
