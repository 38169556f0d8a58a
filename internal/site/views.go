package site

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/filter"
)

// option is one clickable filter chip.
type option struct {
	Label  string
	URL    string
	Active bool
}

// filterBar is everything a page template needs to draw its filter controls.
type filterBar struct {
	Path          string
	CategoryParam string
	Categories    []option
	Collections   []option
	Tags          []option
	Sorts         []option
	Query         string
	Hidden        url.Values
	Active        bool
	ClearURL      string
}

// filterData is the JSON echo of the active predicates.
type filterData struct {
	Category   string   `json:"category"`
	Collection string   `json:"collection"`
	Tags       []string `json:"tags"`
	Query      string   `json:"query"`
}

func newFilterData(st filter.State) filterData {
	tags := st.Tags()
	if tags == nil {
		tags = []string{}
	}
	return filterData{Category: st.Category(), Collection: st.Collection(), Tags: tags, Query: st.Query()}
}

type barOptions struct {
	path          string
	categoryParam string
	collections   bool
	tags          bool
	sort          filter.SortKey
	sortable      bool
}

func newFilterBar[T filter.Item](v *filter.View[T], o barOptions) filterBar {
	st := v.State()
	enc := func(next filter.State, sort filter.SortKey) string {
		return link(o.path, encodeState(next, o.categoryParam, sort))
	}

	bar := filterBar{
		Path:          o.path,
		CategoryParam: o.categoryParam,
		Query:         st.Query(),
		Active:        st.Active(),
		ClearURL:      enc(st.Cleared(), o.sort),
	}
	for _, cat := range v.Categories() {
		bar.Categories = append(bar.Categories, option{
			Label:  cat,
			URL:    enc(st.WithCategory(cat), o.sort),
			Active: st.Category() == cat,
		})
	}
	if o.collections {
		for _, col := range v.Collections() {
			bar.Collections = append(bar.Collections, option{
				Label:  col,
				URL:    enc(st.WithCollection(col), o.sort),
				Active: st.Collection() == col,
			})
		}
	}
	if o.tags {
		for _, tag := range v.Tags() {
			bar.Tags = append(bar.Tags, option{
				Label:  tag,
				URL:    enc(st.ToggleTag(tag), o.sort),
				Active: st.HasTag(tag),
			})
		}
	}
	if o.sortable {
		for _, key := range filter.SortKeys {
			bar.Sorts = append(bar.Sorts, option{
				Label:  string(key),
				URL:    enc(st, key),
				Active: key == o.sort,
			})
		}
	}

	// The search form resubmits every other active predicate.
	bar.Hidden = encodeState(st.WithQuery(""), o.categoryParam, o.sort)
	return bar
}

// photoLink keeps the gallery's filters on the detail page so prev/next walk
// the same Derived View.
func photoLink(id string, st filter.State) string {
	return link("/photos/"+id, encodeState(st, "category", filter.SortNone))
}

var templateFuncs = template.FuncMap{
	"ago": humanize.Time,
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"join": strings.Join,
	"lang": func(r catalog.Repository) string {
		if r.Language == nil {
			return ""
		}
		return *r.Language
	},
	"langColor": languageColor,
}

var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"TypeScript": "#3178c6",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"PHP":        "#4F5D95",
	"C#":         "#178600",
	"C++":        "#f34b7d",
	"Ruby":       "#701516",
	"Go":         "#00ADD8",
	"Swift":      "#ffac45",
	"Kotlin":     "#F18E33",
	"Rust":       "#dea584",
	"Dart":       "#00B4AB",
}

// languageColor falls back to grey for unknown or missing languages.
func languageColor(lang string) string {
	if c, ok := languageColors[lang]; ok {
		return c
	}
	return "#4b5563"
}
