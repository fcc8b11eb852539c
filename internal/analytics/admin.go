package analytics

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminCookie = "admin_token"

// Admin serves the owner-only statistics pages.
type Admin struct {
	store     *Store
	hasher    *Hasher
	username  string
	password  string
	token     string
	retention int
}

// NewAdmin prepares the admin pages. A fresh session token is generated
// per process, so restarting the server signs the owner out.
func NewAdmin(store *Store, hasher *Hasher, username, password string, retentionMonths int) (*Admin, error) {
	if username == "" || password == "" {
		return nil, errors.New("admin username and password are required")
	}
	token, err := randomToken()
	if err != nil {
		return nil, err
	}
	return &Admin{
		store:     store,
		hasher:    hasher,
		username:  username,
		password:  password,
		token:     token,
		retention: retentionMonths,
	}, nil
}

func (a *Admin) authorized(c *gin.Context) bool {
	token, err := c.Cookie(adminCookie)
	return err == nil && subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) == 1
}

func (a *Admin) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authorized(c) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *Admin) credentialsMatch(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// RegisterRoutes mounts the login flow and the protected /admin group.
func (a *Admin) RegisterRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !a.credentialsMatch(c.PostForm("username"), c.PostForm("password")) {
			log.Printf("Failed admin login attempt from %s", a.hasher.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", a.hasher.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.requireAuth())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"title": "Error",
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title":     "Dashboard",
			"stats":     stats,
			"retention": a.retention,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		log.Printf("Admin stats exported by %s", a.hasher.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	group.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.store.Cleanup(c.Request.Context(), a.retention)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
