package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"showcase/internal/catalog"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	// The document embeds raw HTML (centered divs, badges, galleries),
	// so the HTML renderer must pass it through.
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

const htmlPageShell = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: #0d0d0d;
            color: #e0e0e0;
            max-width: 900px;
            margin: 0 auto;
            padding: 40px 20px;
            line-height: 1.6;
        }
        h1, h2, h3 { color: #ffffff; }
        h1 { font-size: 2em; border-bottom: 1px solid #333; padding-bottom: 10px; }
        h2 { font-size: 1.5em; margin-top: 30px; }
        h3 { font-size: 1.2em; margin-top: 20px; color: #ccc; }
        a { color: #60a5fa; }
        code {
            background: #1e1e1e;
            padding: 2px 6px;
            border-radius: 4px;
            font-family: 'Cascadia Code', monospace;
            color: #22c55e;
        }
        img { max-width: 100%%; border-radius: 8px; margin: 10px 0; }
        p { margin: 10px 0; }
        ul { padding-left: 20px; }
        li { margin: 5px 0; }
        hr { border: none; border-top: 1px solid #333; margin: 30px 0; }
        div[align="center"] { text-align: center; }
        table { border-collapse: collapse; margin: 20px 0; }
        td { padding: 8px; }
    </style>
</head>
<body>
%s
</body>
</html>
`

// RenderHTML produces a standalone dark-theme preview page for a catalog.
func (r *Renderer) RenderHTML(c *catalog.Catalog) (string, error) {
	md := r.Render(c)

	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("converting markdown to HTML: %w", err)
	}

	title := c.Header.Title
	if title == "" {
		title = "Preview"
	}

	return fmt.Sprintf(htmlPageShell, title, body.String()), nil
}
