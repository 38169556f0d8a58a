package site

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/filter"
)

func (s *Server) home(c *gin.Context) {
	cat := s.currentCatalog()
	featured, hasFeatured := catalog.FeaturedPost(cat.Posts)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":            "Home",
		"aboutMeContent":   AboutMe,
		"featuredProjects": catalog.FeaturedProjects(cat.Projects),
		"featuredPost":     featured,
		"hasFeatured":      hasFeatured,
		"latestPosts":      catalog.LatestPosts(cat.Posts, latestPostCount),
		"projectCount":     len(cat.Projects),
		"postCount":        len(cat.Posts),
		"photoCount":       len(cat.Photos),
	})
}

func (s *Server) projectsPage(c *gin.Context) {
	v := filter.NewView(s.currentCatalog().Projects).Replace(parseState(c))
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"title":    "Projects",
		"projects": v.Items(),
		"empty":    v.Empty(),
		"filters":  newFilterBar(v, barOptions{path: "/projects", categoryParam: "category", tags: true}),
	})
}

func (s *Server) blogPage(c *gin.Context) {
	cat := s.currentCatalog()
	v := filter.NewView(cat.Posts).Replace(parseState(c))
	featured, hasFeatured := catalog.FeaturedPost(cat.Posts)
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"title":        "Blog",
		"posts":        v.Items(),
		"empty":        v.Empty(),
		"featuredPost": featured,
		"hasFeatured":  hasFeatured && !v.State().Active(),
		"filters":      newFilterBar(v, barOptions{path: "/blog", categoryParam: "category", tags: true}),
	})
}

func (s *Server) postPage(c *gin.Context) {
	post, ok := s.currentCatalog().PostBySlug(c.Param("slug"))
	if !ok {
		s.notFound(c)
		return
	}
	body, err := content.Render(post.Body)
	if err != nil {
		log.Printf("[%s] Error rendering post %s: %v", reqID(c), post.Slug, err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"title": "Error",
			"error": "Sorry, this post could not be displayed.",
		})
		return
	}
	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": post.Title,
		"post":  post,
		"body":  body,
	})
}

func (s *Server) photosPage(c *gin.Context) {
	st := parseState(c)
	v := filter.NewView(s.currentCatalog().Photos).Replace(st)
	links := make(map[string]string, len(v.Items()))
	for _, p := range v.Items() {
		links[p.ID] = photoLink(p.ID, st)
	}
	c.HTML(http.StatusOK, "photos.html", gin.H{
		"title":   "Photos",
		"photos":  v.Items(),
		"links":   links,
		"empty":   v.Empty(),
		"filters": newFilterBar(v, barOptions{path: "/photos", categoryParam: "category", collections: true, tags: true}),
	})
}

// photoPage shows one photo with prev/next links that wrap around the
// gallery's current Derived View. A photo outside the view has no neighbours.
func (s *Server) photoPage(c *gin.Context) {
	id := c.Param("id")
	cat := s.currentCatalog()

	var photo catalog.Photo
	found := false
	for _, p := range cat.Photos {
		if p.ID == id {
			photo, found = p, true
			break
		}
	}
	if !found {
		s.notFound(c)
		return
	}

	st := parseState(c)
	items := filter.NewView(cat.Photos).Replace(st).Items()
	data := gin.H{
		"title":   photo.Title,
		"photo":   photo,
		"backURL": link("/photos", encodeState(st, "category", filter.SortNone)),
	}
	if prev, ok := filter.Neighbor(items, id, filter.Prev); ok {
		data["prevURL"] = photoLink(prev.ID, st)
	}
	if next, ok := filter.Neighbor(items, id, filter.Next); ok {
		data["nextURL"] = photoLink(next.ID, st)
	}
	c.HTML(http.StatusOK, "photo.html", data)
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"title": "Not Found",
		"error": "The page you are looking for does not exist.",
	})
}
