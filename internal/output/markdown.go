package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownWidth is the word wrap width for rendered markdown.
const markdownWidth = 80

// RenderMarkdown renders md for the terminal. Off a TTY, or if rendering
// fails, the raw markdown is returned so piped output stays readable.
func RenderMarkdown(md string) string {
	if !IsTTY() {
		return strings.TrimSpace(md) + "\n"
	}

	rendered, err := renderMarkdown(md)
	if err != nil {
		Debug("rendering markdown", "err", err)
		return strings.TrimSpace(md) + "\n"
	}
	return rendered
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
