package catalog

import (
	"slices"
	"time"
)

// The accessors below let every entity flow through the same filter engine.
// Search fields are fixed per entity: title-like, description-like, then tags.

func (p Post) Key() string            { return p.ID }
func (p Post) FilterCategory() string { return p.Category }
func (p Post) FilterTags() []string   { return p.Tags }
func (p Post) SearchFields() []string { return searchFields(p.Title, p.Excerpt, p.Tags) }

func (p Project) Key() string            { return p.ID }
func (p Project) FilterCategory() string { return p.Category }
func (p Project) FilterTags() []string   { return p.Technologies }
func (p Project) SearchFields() []string { return searchFields(p.Title, p.Description, p.Technologies) }

func (p Photo) Key() string              { return p.ID }
func (p Photo) FilterCategory() string   { return p.Category }
func (p Photo) FilterCollection() string { return p.Collection }
func (p Photo) FilterTags() []string     { return p.Tags }
func (p Photo) SearchFields() []string   { return searchFields(p.Title, p.Description, p.Tags) }

func (r Repository) Key() string { return r.Name }

// FilterCategory is the repository language; repositories without a
// detected language never match a language filter.
func (r Repository) FilterCategory() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

func (r Repository) FilterTags() []string   { return r.Topics }
func (r Repository) SearchFields() []string { return searchFields(r.Name, r.Description, r.Topics) }
func (r Repository) RankStars() int         { return r.Stars }
func (r Repository) RankForks() int         { return r.Forks }
func (r Repository) RankUpdated() time.Time { return r.UpdatedAt }

func searchFields(title, text string, tags []string) []string {
	fields := make([]string, 0, len(tags)+2)
	fields = append(fields, title, text)
	return append(fields, tags...)
}

func sortPostsByDate(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		return b.Date.Compare(a.Date)
	})
}
