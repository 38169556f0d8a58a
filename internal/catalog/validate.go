package catalog

import "fmt"

func (p *Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("post title is required")
	}
	if p.Category == "" {
		return fmt.Errorf("post category is required")
	}
	return nil
}

func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("project title is required")
	}
	if p.Category == "" {
		return fmt.Errorf("project category is required")
	}
	return nil
}

func (p *Photo) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("photo id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("photo title is required")
	}
	if p.Category == "" {
		return fmt.Errorf("photo category is required")
	}
	if p.Src == "" {
		return fmt.Errorf("photo src is required")
	}
	return nil
}

// Validate checks every entity and rejects duplicate ids and slugs within a
// Source List.
func (c *Catalog) Validate() error {
	ids := map[string]bool{}
	slugs := map[string]bool{}
	for i := range c.Posts {
		p := &c.Posts[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate post id %q", p.ID)
		}
		if slugs[p.Slug] {
			return fmt.Errorf("duplicate post slug %q", p.Slug)
		}
		ids[p.ID], slugs[p.Slug] = true, true
	}

	ids = map[string]bool{}
	for i := range c.Projects {
		if err := c.Projects[i].Validate(); err != nil {
			return err
		}
		if ids[c.Projects[i].ID] {
			return fmt.Errorf("duplicate project id %q", c.Projects[i].ID)
		}
		ids[c.Projects[i].ID] = true
	}

	ids = map[string]bool{}
	for i := range c.Photos {
		if err := c.Photos[i].Validate(); err != nil {
			return err
		}
		if ids[c.Photos[i].ID] {
			return fmt.Errorf("duplicate photo id %q", c.Photos[i].ID)
		}
		ids[c.Photos[i].ID] = true
	}
	return nil
}
