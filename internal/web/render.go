package web

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/saulo-duarte/roadmap-lambda/internal/document"
)

var policy = bluemonday.UGCPolicy()

// renderRoadmap turns model output into a small, sanitized HTML fragment:
// headings, bullet lists and paragraphs.
func renderRoadmap(text string) string {
	var sb strings.Builder
	inList := false

	closeList := func() {
		if inList {
			sb.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, block := range document.Parse(text) {
		content := html.EscapeString(block.Text)
		switch block.Kind {
		case document.BlockHeading:
			closeList()
			sb.WriteString("<h3>" + content + "</h3>\n")
		case document.BlockBullet:
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			sb.WriteString("<li>" + content + "</li>\n")
		case document.BlockParagraph:
			closeList()
			sb.WriteString("<p>" + content + "</p>\n")
		default:
			closeList()
		}
	}
	closeList()

	return policy.Sanitize(sb.String())
}
