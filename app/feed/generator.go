package feed

import (
	"bytes"
	"encoding/xml"
	"time"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the consolidated feed as a single RSS 2.0 document. The six
// namespace declarations are always present on the root element, whether or
// not any item uses them. Extension fields captured during extraction are
// not emitted; the output carries only the five simple fields plus
// categories.
func (g *Generator) Run(channel Channel, items []Item) string {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0"` +
		` xmlns:content="http://purl.org/rss/1.0/modules/content/"` +
		` xmlns:wfw="http://wellformedweb.org/CommentAPI/"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:atom="http://www.w3.org/2005/Atom"` +
		` xmlns:sy="http://purl.org/rss/1.0/modules/syndication/"` +
		` xmlns:slash="http://purl.org/rss/1.0/modules/slash/">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", channel.Title, 4)
	g.writeElement(&buf, "link", channel.Link, 4)
	g.writeElement(&buf, "description", channel.Description, 4)
	g.writeElement(&buf, "lastBuildDate", time.Now().In(time.Local).Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "language", channel.Language, 4)

	for _, item := range items {
		g.writeItem(&buf, item)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String()
}

func (g *Generator) writeItem(buf *bytes.Buffer, item Item) {
	buf.WriteString("    <item>\n")

	g.writeOptionalElement(buf, "title", item.Title)
	g.writeOptionalElement(buf, "link", item.Link)
	g.writeOptionalElement(buf, "description", item.Description)
	g.writeOptionalElement(buf, "pubDate", item.PubDate)
	g.writeOptionalElement(buf, "guid", item.GUID)

	for _, category := range item.Categories {
		g.writeElement(buf, "category", category, 6)
	}

	buf.WriteString("    </item>\n")
}

// writeOptionalElement emits nothing for absent or empty fields; an empty
// element would misrepresent a field the source never provided.
func (g *Generator) writeOptionalElement(buf *bytes.Buffer, tag string, content *string) {
	if content == nil {
		return
	}
	g.writeElement(buf, tag, *content, 6)
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
