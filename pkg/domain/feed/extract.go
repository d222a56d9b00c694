package feed

import (
	"regexp"
	"strings"

	"github.com/asaleem9/folio/pkg/domain/model"
)

// TrackingPixelMarker identifies analytics pixels embedded in article content.
// It is a heuristic for the Medium feed, not a general detector.
const TrackingPixelMarker = "stat?event="

var (
	ptnTitle    = regexp.MustCompile(`(?s)<title>(.*?)</title>`)
	ptnLink     = regexp.MustCompile(`<link>(.*?)</link>`)
	ptnPubDate  = regexp.MustCompile(`<pubDate>(.*?)</pubDate>`)
	ptnContent  = regexp.MustCompile(`(?s)<content:encoded>(.*?)</content:encoded>`)
	ptnCategory = regexp.MustCompile(`(?s)<category>(.*?)</category>`)
	ptnImage    = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)
	ptnCDATA    = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
)

// ParseItem extracts an article from a raw item body. The second return value
// is false when title or link is missing. Fields are read only from the item's
// own children, never from markup embedded in the encoded content.
func ParseItem(block string) (*model.Article, bool) {
	fields, content := splitContent(block)

	article := &model.Article{
		Title:      unwrapCDATA(firstGroup(ptnTitle, fields)),
		Link:       strings.TrimSpace(firstGroup(ptnLink, fields)),
		PubDate:    strings.TrimSpace(firstGroup(ptnPubDate, fields)),
		ImageURL:   leadImage(unwrapCDATA(content)),
		Categories: categories(fields),
	}

	if !article.Valid() {
		return nil, false
	}
	return article, true
}

// splitContent cuts the content:encoded element out of block. It returns the
// remaining markup and the element body.
func splitContent(block string) (string, string) {
	loc := ptnContent.FindStringSubmatchIndex(block)
	if loc == nil {
		return block, ""
	}
	return block[:loc[0]] + block[loc[1]:], block[loc[2]:loc[3]]
}

// Parse extracts every well-formed article of doc in document order and
// reports how many item blocks were dropped.
func Parse(doc string) ([]*model.Article, int) {
	articles := []*model.Article{}
	var dropped int

	for block := range Items(doc) {
		article, ok := ParseItem(block)
		if !ok {
			dropped++
			continue
		}
		articles = append(articles, article)
	}

	return articles, dropped
}

func firstGroup(ptn *regexp.Regexp, s string) string {
	m := ptn.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func unwrapCDATA(s string) string {
	return strings.TrimSpace(ptnCDATA.ReplaceAllString(s, "$1"))
}

func leadImage(content string) *string {
	src := firstGroup(ptnImage, content)
	if src == "" || strings.Contains(src, TrackingPixelMarker) {
		return nil
	}
	return &src
}

func categories(block string) []string {
	matches := ptnCategory.FindAllStringSubmatch(block, -1)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, unwrapCDATA(m[1]))
	}
	return result
}
