package edit

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RenderMarkdown turns a markdown body into a lightly styled terminal
// preview: headings bold, list items bulleted, code blocks dimmed.
func RenderMarkdown(src string) string {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			b.WriteString(headingStyle.Render(string(node.Text(source))))
			b.WriteString("\n\n")
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if _, inList := node.Parent().(*ast.ListItem); inList {
				return ast.WalkContinue, nil
			}
			b.WriteString(blockText(node, source))
			b.WriteString("\n\n")
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			var parts []string
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t := blockText(c, source); t != "" {
					parts = append(parts, t)
				}
			}
			b.WriteString("  • " + strings.Join(parts, " ") + "\n")
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			b.WriteString(codeStyle.Render(blockLines(node, source)))
			b.WriteString("\n")
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			b.WriteString(mutedStyle.Render("────────") + "\n\n")
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimRight(b.String(), "\n")
}

// blockText joins the source lines of a block node into one line.
func blockText(n ast.Node, source []byte) string {
	return strings.TrimSpace(strings.ReplaceAll(blockLines(n, source), "\n", " "))
}

func blockLines(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
