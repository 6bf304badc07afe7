package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"storyseq/internal/ports"
)

// TitleReader implements ports.TitleReader using goldmark AST parsing
type TitleReader struct {
	md goldmark.Markdown
}

// Ensure TitleReader implements ports.TitleReader
var _ ports.TitleReader = (*TitleReader)(nil)

// NewTitleReader creates a new goldmark title reader
func NewTitleReader() *TitleReader {
	return &TitleReader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

// Title returns the text of the first level-1 heading, or "" if there is none
func (r *TitleReader) Title(src string) string {
	if src == "" {
		return ""
	}

	content := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = nodeText(heading, content)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}

// nodeText concatenates the inline text below n
func nodeText(n ast.Node, content []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(content))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}
