// Package termui renders catalog entities for the terminal.
package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/folio/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// RenderField prints a label in title case followed by its value.
func RenderField(label, value string) string {
	return labelStyle.Render(cases.Title(language.English).String(label)+":") + " " + value
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderPost renders a post header followed by its markdown body.
func RenderPost(p catalog.Post) (string, error) {
	fields := []string{
		RenderField("category", p.Category),
		RenderField("date", p.Date.Format("January 2, 2006")),
		RenderField("read time", fmt.Sprintf("%d min", p.ReadTime)),
	}
	if len(p.Tags) > 0 {
		fields = append(fields, RenderField("tags", strings.Join(p.Tags, ", ")))
	}
	if p.Author.Name != "" {
		fields = append(fields, RenderField("author", p.Author.Name))
	}
	body, err := RenderMarkdown(p.Body)
	if err != nil {
		return "", err
	}
	return RenderEntityHeader(p.Title, fields) + body, nil
}

// RenderProfile renders the counters shown above the repository list.
func RenderProfile(p catalog.Profile) string {
	name := p.Name
	if name == "" {
		name = p.Login
	}
	return RenderEntityHeader(name, []string{
		RenderField("public repos", humanize.Comma(int64(p.PublicRepos))),
		RenderField("followers", humanize.Comma(int64(p.Followers))),
		RenderField("following", humanize.Comma(int64(p.Following))),
		RenderField("public gists", humanize.Comma(int64(p.PublicGists))),
	})
}

// RenderError formats a terminal failure message.
func RenderError(msg string) string {
	return errorStyle.Render(msg)
}
