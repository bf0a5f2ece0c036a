package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// CodeFence is one fenced code block extracted from a document.
type CodeFence struct {
	// Info is the text following the opening fence, "" when absent.
	Info string

	// Code is the raw fence body.
	Code string

	// Line is the 1-based line number of the opening fence, or 0 when the
	// block is empty and carries no info string to anchor on.
	Line int
}

var fenceMarkdown = goldmark.New()

// Fences parses content and returns every fenced code block in document
// order. Indented code blocks are not reported; only fenced blocks carry an
// info string worth checking.
func Fences(content []byte) []CodeFence {
	reader := text.NewReader(content)
	doc := fenceMarkdown.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var fences []CodeFence

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		fences = append(fences, CodeFence{
			Info: fenceInfo(block, content),
			Code: fenceBody(block, content),
			Line: fenceLine(block, content),
		})

		return ast.WalkContinue, nil
	})

	return fences
}

func fenceInfo(block *ast.FencedCodeBlock, content []byte) string {
	if block.Info == nil {
		return ""
	}
	return string(block.Info.Value(content))
}

func fenceBody(block *ast.FencedCodeBlock, content []byte) string {
	var buf bytes.Buffer

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(content))
	}

	return buf.String()
}

// fenceLine locates the opening fence: one line above the first body line,
// or the info-string line when the body is empty.
func fenceLine(block *ast.FencedCodeBlock, content []byte) int {
	if lines := block.Lines(); lines.Len() > 0 {
		return lineOfOffset(content, lines.At(0).Start) - 1
	}
	if block.Info != nil {
		return lineOfOffset(content, block.Info.Segment.Start)
	}
	return 0
}

func lineOfOffset(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return 1 + bytes.Count(content[:offset], []byte{'\n'})
}
