package content

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	excerptLen     = 160
	wordsPerMinute = 200
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// Render converts a markdown body to HTML.
func Render(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Excerpt returns the leading plain text of a markdown body, cut on a word
// boundary near excerptLen runes.
func Excerpt(body string) string {
	rendered, err := Render(body)
	if err != nil {
		return ""
	}
	text := plainText(string(rendered))
	runes := []rune(text)
	if len(runes) <= excerptLen {
		return text
	}
	cut := string(runes[:excerptLen])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

// ReadTime estimates minutes to read body, never less than one.
func ReadTime(body string) int {
	words := len(strings.Fields(body))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title, folds accented letters to their base letter and
// joins the remaining alphanumeric runs with hyphens.
func Slugify(title string) string {
	folded := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, norm.NFD.String(cases.Lower(language.Und).String(title)))
	return strings.Trim(nonSlug.ReplaceAllString(folded, "-"), "-")
}

// plainText extracts readable text from rendered HTML, skipping code blocks.
func plainText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "pre" || n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
