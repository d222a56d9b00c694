// Package feed extracts articles from an RSS document by pattern matching.
// The input shape is fixed by a single producer, so no general XML parser is
// involved: a scanner discovers raw item blocks and extractors pull fields out
// of each block, falling back to empty values.
package feed

import (
	"iter"
	"strings"
)

const (
	itemOpen  = "<item"
	itemClose = "</item>"
)

// Items returns a lazy sequence of raw item bodies (the text between the
// opening and closing item tags) in document order. A trailing item without a
// closing tag is discarded.
func Items(doc string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := &scanner{doc: doc}
		for {
			block, ok := s.next()
			if !ok || !yield(block) {
				return
			}
		}
	}
}

type scanner struct {
	doc string
	pos int
}

func (x *scanner) next() (string, bool) {
	for x.pos < len(x.doc) {
		i := strings.Index(x.doc[x.pos:], itemOpen)
		if i < 0 {
			break
		}

		start := x.pos + i + len(itemOpen)
		if start >= len(x.doc) {
			break
		}

		switch c := x.doc[start]; {
		case c == '>':
			start++
		case isSpace(c):
			end := strings.IndexByte(x.doc[start:], '>')
			if end < 0 {
				x.pos = len(x.doc)
				return "", false
			}
			if x.doc[start+end-1] == '/' {
				// <item ... /> carries no body
				x.pos = start + end + 1
				continue
			}
			start += end + 1
		default:
			// another tag sharing the prefix, e.g. <itemref>
			x.pos = start
			continue
		}

		end := strings.Index(x.doc[start:], itemClose)
		if end < 0 {
			break
		}

		x.pos = start + end + len(itemClose)
		return x.doc[start : start+end], true
	}

	x.pos = len(x.doc)
	return "", false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
