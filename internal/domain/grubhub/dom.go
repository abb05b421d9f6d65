package grubhub

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// The document tree is supplied by the caller already parsed; the helpers
// here only walk it. Paths are slash-separated element steps relative to a
// node, each step a tag name with an optional 1-based index: "table[3]"
// selects the third <table> child, an unindexed step fans out to every
// matching child the way an XPath step does.

type pathStep struct {
	tag   string
	index int // 1-based, 0 means all
}

func parsePath(path string) []pathStep {
	parts := strings.Split(path, "/")
	steps := make([]pathStep, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		step := pathStep{tag: part}
		if open := strings.IndexByte(part, '['); open >= 0 && strings.HasSuffix(part, "]") {
			if n, err := strconv.Atoi(part[open+1 : len(part)-1]); err == nil {
				step.tag = part[:open]
				step.index = n
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// selectAll returns every node reached by following path from root.
func selectAll(root *html.Node, path string) []*html.Node {
	frontier := []*html.Node{root}
	for _, step := range parsePath(path) {
		var next []*html.Node
		for _, n := range frontier {
			children := elementChildren(n, step.tag)
			if step.index > 0 {
				if step.index <= len(children) {
					next = append(next, children[step.index-1])
				}
				continue
			}
			next = append(next, children...)
		}
		if len(next) == 0 {
			return nil
		}
		frontier = next
	}
	return frontier
}

// selectOne returns the first node reached by path, or nil.
func selectOne(root *html.Node, path string) *html.Node {
	if nodes := selectAll(root, path); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// elementChildren returns the direct element children of n with the given tag.
func elementChildren(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
	}
	return out
}

// firstElement returns the first direct element child with the given tag.
func firstElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// findBody locates the <body> element of a parsed document.
func findBody(doc *html.Node) *html.Node {
	return findElement(doc, func(n *html.Node) bool { return n.Data == "body" })
}

// findByClass locates the first element with the given tag and class
// attribute anywhere under root.
func findByClass(root *html.Node, tag, class string) *html.Node {
	return findElement(root, func(n *html.Node) bool {
		if n.Data != tag {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key == "class" && attr.Val == class {
				return true
			}
		}
		return false
	})
}

func findElement(root *html.Node, match func(*html.Node) bool) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

// innerText concatenates the text content under n.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// collapseSpace trims and collapses runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
