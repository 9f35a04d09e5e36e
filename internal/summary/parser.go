package summary

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Chapter represents one entry of the book's table of contents.
type Chapter struct {
	// Title is the link text from the summary entry.
	Title string
	// Path is the cleaned destination, relative to the content root
	// (forward slashes, no leading "./", no fragment).
	Path string
	// Part is the section heading the entry appears under, if any.
	Part string
	// Depth is the list nesting depth, starting at 0 for top-level entries.
	Depth int
}

// Draft represents a chapter declared in the summary without a destination,
// the mdBook convention for planned-but-unwritten content.
type Draft struct {
	Title string
	Part  string
}

// Summary is the parsed table of contents.
type Summary struct {
	Chapters []Chapter
	Drafts   []Draft
}

// Parser parses SUMMARY.md files using goldmark AST parsing.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new summary parser.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(),
	}
}

// ParseFile reads and parses the summary file at the given path.
func (p *Parser) ParseFile(path string) (*Summary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file %s: %w", path, err)
	}
	return p.Parse(content)
}

// Parse parses summary content and returns the chapters and drafts it
// declares. Duplicate destinations are kept once, first occurrence wins.
// A summary with zero chapter links is valid.
func (p *Parser) Parse(content []byte) (*Summary, error) {
	reader := text.NewReader(content)
	doc := p.md.Parser().Parse(reader)

	summary := &Summary{}
	seen := make(map[string]bool)
	currentPart := ""

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			// Headings between lists name the book parts. The document
			// title heading ("Summary") is not a part.
			heading := extractText(node, content)
			if strings.EqualFold(heading, "summary") {
				currentPart = ""
			} else {
				currentPart = heading
			}
			return ast.WalkSkipChildren, nil

		case *ast.Link:
			title := extractText(node, content)
			dest := strings.TrimSpace(string(node.Destination))
			if dest == "" {
				summary.Drafts = append(summary.Drafts, Draft{
					Title: title,
					Part:  currentPart,
				})
				return ast.WalkSkipChildren, nil
			}

			rel, ok := cleanDestination(dest)
			if !ok {
				// External URLs and non-markdown targets are not chapters.
				return ast.WalkSkipChildren, nil
			}
			if seen[rel] {
				return ast.WalkSkipChildren, nil
			}
			seen[rel] = true

			summary.Chapters = append(summary.Chapters, Chapter{
				Title: title,
				Path:  rel,
				Part:  currentPart,
				Depth: listDepth(node),
			})
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk summary AST: %w", err)
	}

	return summary, nil
}

// cleanDestination normalizes a link destination into a content-root
// relative path. It reports false for destinations that are not local
// markdown files.
func cleanDestination(dest string) (string, bool) {
	if strings.Contains(dest, "://") {
		return "", false
	}

	// Drop a fragment like ch1.md#section
	if i := strings.IndexByte(dest, '#'); i >= 0 {
		dest = dest[:i]
	}
	if dest == "" {
		return "", false
	}

	dest = strings.ReplaceAll(dest, "\\", "/")
	dest = strings.TrimPrefix(dest, "./")
	dest = path.Clean(dest)

	if !strings.HasSuffix(dest, ".md") {
		return "", false
	}
	return dest, true
}

// listDepth counts how many lists enclose the node, minus one, so a
// top-level summary entry has depth 0.
func listDepth(n ast.Node) int {
	depth := 0
	for parent := n.Parent(); parent != nil; parent = parent.Parent() {
		if _, ok := parent.(*ast.List); ok {
			depth++
		}
	}
	if depth > 0 {
		depth--
	}
	return depth
}

// extractText collects the plain text under a node.
func extractText(n ast.Node, content []byte) string {
	var textBuilder strings.Builder

	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			segment := v.Segment
			textBuilder.Write(segment.Value(content))
		case *ast.String:
			textBuilder.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(textBuilder.String())
}
