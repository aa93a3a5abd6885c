// Package report renders the final interview report as a standalone
// HTML document, going through markdown so the body stays readable in
// plain text too.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"hirescope/domain/interview"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Interview Report - %s</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
table { border-collapse: collapse; width: 100%%; }
th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
blockquote { border-left: 3px solid #888; margin-left: 0; padding-left: 1rem; color: #444; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Renderer implements ports.ReportRenderer.
type Renderer struct{}

// NewRenderer creates an HTML report renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces a full HTML document for the report.
func (r *Renderer) Render(report *interview.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(buildMarkdown(report)), p, renderer)

	return []byte(fmt.Sprintf(htmlShell, report.Role, bytes.TrimSpace(body))), nil
}

// buildMarkdown lays out the report body: summary, dimension table,
// then one section per evaluated answer.
func buildMarkdown(report *interview.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Interview Report: %s\n\n", report.Role)
	fmt.Fprintf(&b, "**Total Score:** %.1f / 100\n\n", report.TotalScore)
	fmt.Fprintf(&b, "**Decision:** %s\n\n", report.Decision)

	b.WriteString("## Rubric Averages\n\n")
	b.WriteString("| Dimension | Average |\n|---|---|\n")
	for _, dim := range interview.Dimensions() {
		fmt.Fprintf(&b, "| %s | %.1f |\n", dim, report.BreakdownAvg[dim])
	}
	b.WriteString("\n")

	for i, item := range report.Items {
		fmt.Fprintf(&b, "## Question %d\n\n", i+1)
		fmt.Fprintf(&b, "**Q:** %s\n\n", item.Question)
		fmt.Fprintf(&b, "> %s\n\n", item.Answer)
		fmt.Fprintf(&b, "Score: %.1f, recommendation %s", item.Evaluation.Score, item.Evaluation.Recommendation)
		if item.Evaluation.Fallback {
			b.WriteString(" (heuristic)")
		}
		b.WriteString("\n\n")

		if len(item.Evaluation.Strengths) > 0 {
			b.WriteString("Strengths:\n\n")
			for _, s := range item.Evaluation.Strengths {
				fmt.Fprintf(&b, "- %s\n", s)
			}
			b.WriteString("\n")
		}
		if len(item.Evaluation.Weaknesses) > 0 {
			b.WriteString("Weaknesses:\n\n")
			for _, w := range item.Evaluation.Weaknesses {
				fmt.Fprintf(&b, "- %s\n", w)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
