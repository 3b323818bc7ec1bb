// Package htmldoc turns raw saved-page bytes into a queryable document tree.
// It is the only place the parser choice lives; the extraction core consumes
// "select by CSS query", "text", and "attribute" and tolerates whatever the
// parser produced for malformed markup.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Parse decodes raw page bytes into a document. Saved listing pages are
// frequently not UTF-8, so the byte stream runs through charset detection
// (BOM, meta tags, content sniffing) before the lenient HTML parser.
func Parse(raw []byte) (*goquery.Document, error) {
	var r io.Reader = bytes.NewReader(raw)
	if dec, err := charset.NewReader(r, "text/html"); err == nil {
		r = dec
	} else {
		// Unknown charset: parse the raw bytes as-is rather than failing.
		r = bytes.NewReader(raw)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
