package termui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/Zachkp/folio/internal/catalog"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderPostTable(posts []catalog.Post) string {
	if len(posts) == 0 {
		return "No posts found."
	}
	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{p.Slug, p.Title, p.Category, p.Date.Format("2006-01-02"), strings.Join(p.Tags, ", ")}
	}
	return renderTable([]string{"Slug", "Title", "Category", "Date", "Tags"}, rows)
}

func RenderProjectTable(projects []catalog.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}
	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{p.ID, p.Title, p.Category, strings.Join(p.Technologies, ", ")}
	}
	return renderTable([]string{"ID", "Title", "Category", "Technologies"}, rows)
}

func RenderPhotoTable(photos []catalog.Photo) string {
	if len(photos) == 0 {
		return "No photos found."
	}
	rows := make([][]string, len(photos))
	for i, p := range photos {
		collection := p.Collection
		if collection == "" {
			collection = "-"
		}
		rows[i] = []string{p.ID, p.Title, p.Category, collection, strings.Join(p.Tags, ", ")}
	}
	return renderTable([]string{"ID", "Title", "Category", "Collection", "Tags"}, rows)
}

func RenderRepoTable(repos []catalog.Repository) string {
	if len(repos) == 0 {
		return "No repositories found."
	}
	rows := make([][]string, len(repos))
	for i, r := range repos {
		lang := "-"
		if r.Language != nil {
			lang = *r.Language
		}
		rows[i] = []string{
			r.Name,
			lang,
			humanize.Comma(int64(r.Stars)),
			humanize.Comma(int64(r.Forks)),
			humanize.Time(r.UpdatedAt),
		}
	}
	return renderTable([]string{"Name", "Language", "Stars", "Forks", "Updated"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
