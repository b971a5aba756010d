package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Fixed table of known feed namespaces, iterated in this order when
// capturing extension elements.
var knownNamespaces = []struct {
	prefix string
	uri    string
}{
	{"rss", "http://purl.org/rss/1.0/"},
	{"content", "http://purl.org/rss/1.0/modules/content/"},
	{"wfw", "http://wellformedweb.org/CommentAPI/"},
	{"dc", "http://purl.org/dc/elements/1.1/"},
	{"atom", "http://www.w3.org/2005/Atom"},
	{"sy", "http://purl.org/rss/1.0/modules/syndication/"},
	{"slash", "http://purl.org/rss/1.0/modules/slash/"},
}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run extracts all items from a feed document. It never fails: a document
// that cannot be decoded contributes zero items, logged, so a single broken
// feed does not abort the whole run.
func (e *Extractor) Run(data []byte) []Item {
	root, err := decodeTree(data)
	if err != nil {
		slog.Error("Failed to parse feed document", "error", err)
		return nil
	}

	var items []Item
	for _, el := range findItems(root) {
		items = append(items, extractItem(el))
	}

	return items
}

func extractItem(el *node) Item {
	item := Item{
		Extensions: make(map[string]string),
	}

	item.Title = childText(el, "title")
	item.Link = childText(el, "link")
	item.Description = childText(el, "description")
	item.PubDate = childText(el, "pubDate")
	item.GUID = childText(el, "guid")

	for _, ns := range knownNamespaces {
		for _, match := range findNamespace(el, ns.uri) {
			item.Extensions[ns.prefix+":"+match.local] = match.text
		}
	}

	for _, child := range el.children {
		if child.space == "" && child.local == "category" && child.text != "" {
			item.Categories = append(item.Categories, child.text)
		}
	}

	return item
}

// node is one element of the decoded document tree. text holds only the
// character data before the first child element.
type node struct {
	space    string
	local    string
	text     string
	children []*node
}

func decodeTree(data []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root *node
	var stack []*node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{space: t.Name.Space, local: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, errors.New("multiple root elements")
			}
			stack = append(stack, n)
		case xml.CharData:
			if len(stack) > 0 {
				n := stack[len(stack)-1]
				if len(n.children) == 0 {
					n.text += string(t)
				}
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}

	return root, nil
}

// findItems collects every element named "item" below root, at any depth and
// in any namespace. Feeds in the wild nest items in unexpected places, so no
// RSS 2.0 channel structure is assumed.
func findItems(root *node) []*node {
	var items []*node

	var walk func(n *node)
	walk = func(n *node) {
		for _, child := range n.children {
			if child.local == "item" {
				items = append(items, child)
			}
			walk(child)
		}
	}
	walk(root)

	return items
}

// findNamespace returns el and all its descendants belonging to the given
// namespace, in document order.
func findNamespace(el *node, uri string) []*node {
	var matches []*node

	var walk func(n *node)
	walk = func(n *node) {
		if n.space == uri {
			matches = append(matches, n)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(el)

	return matches
}

// childText returns the text of the first direct, unqualified child with the
// given name, or nil when no such child exists. Present-but-empty elements
// yield a pointer to "".
func childText(el *node, name string) *string {
	for _, child := range el.children {
		if child.space == "" && child.local == name {
			text := child.text
			return &text
		}
	}
	return nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset: %s", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
