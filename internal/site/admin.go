package site

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/store"
)

const adminCookie = "admin_token"

type adminAuth struct {
	creds config.Admin
	token string
	salt  string
}

func newAdminAuth(creds config.Admin) *adminAuth {
	a := &adminAuth{creds: creds, token: generateToken(), salt: generateToken()}

	log.Printf("Admin access available at: /admin/login")
	if creds.UsingDefaults() && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate admin token:", err)
	}
	return hex.EncodeToString(b)
}

// hashIP keeps client addresses out of the logs while still letting repeated
// attempts from one address be correlated.
func (a *adminAuth) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (a *adminAuth) check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	return userOK && passOK
}

func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type AdminStats struct {
	Posts          int              `json:"posts"`
	Projects       int              `json:"projects"`
	Photos         int              `json:"photos"`
	PostCategories []CategoryCount  `json:"post_categories"`
	PhotoTags      int              `json:"photo_tags"`
	GitHubStatus   github.Status    `json:"github_status"`
	Repositories   int              `json:"repositories"`
	GitHubFetched  time.Time        `json:"github_fetched_at"`
	LastImport     *store.ImportRun `json:"last_import,omitempty"`
	StartedAt      time.Time        `json:"started_at"`
}

func (s *Server) adminStats(c *gin.Context) (*AdminStats, error) {
	cat := s.currentCatalog()
	stats := &AdminStats{
		Posts:          len(cat.Posts),
		Projects:       len(cat.Projects),
		Photos:         len(cat.Photos),
		PostCategories: categoryCounts(cat.Posts),
		PhotoTags:      len(filter.Tags(cat.Photos)),
		StartedAt:      s.started,
	}

	loader := s.currentLoader()
	stats.GitHubStatus = loader.Status()
	if snap, _ := loader.Result(); snap != nil {
		stats.Repositories = len(snap.Repositories)
		stats.GitHubFetched = snap.FetchedAt
	}

	if s.imports != nil {
		run, err := s.imports.LastImport(c.Request.Context())
		switch {
		case err == nil:
			stats.LastImport = run
		case !errors.Is(err, store.ErrNoImport):
			return nil, err
		}
	}
	return stats, nil
}

// categoryCounts tallies posts per category, in category option order.
func categoryCounts(posts []catalog.Post) []CategoryCount {
	var out []CategoryCount
	for _, name := range filter.Categories(posts)[1:] {
		n := len(filter.Apply(posts, filter.NewState().WithCategory(name)))
		out = append(out, CategoryCount{Name: name, Count: n})
	}
	return out
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	a := s.admin

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.check(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", a.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", a.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(a.middleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			log.Printf("[%s] Error loading admin stats: %v", reqID(c), err)
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"title": "Error",
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/github/reload", func(c *gin.Context) {
		s.ResetGitHub()
		log.Printf("GitHub session reset by admin from %s", a.hashIP(c.ClientIP()))
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	})

	adminGroup.POST("/catalog/reload", func(c *gin.Context) {
		if err := s.ReloadCatalog(c.Request.Context()); err != nil {
			log.Printf("[%s] Error reloading catalog: %v", reqID(c), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	})
}
