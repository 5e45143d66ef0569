// admin.go - privacy-conscious admin system
package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Saivya1/Portfolio/internal/store"
)

const adminCookie = "admin_token"

// visitWriteTimeout bounds a single background visitor insert.
const visitWriteTimeout = 5 * time.Second

// Middleware to check admin authentication
func (a *app) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// untracked paths never produce a visitor record.
var untracked = []string{
	"/static/",
	"/images/",
	"/admin",
	"/favicon",
	"/privacy",
	"/api/motion/",
	"/healthz",
}

// Privacy-conscious visitor tracking middleware
func (a *app) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || isUntracked(path) {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		a.visits.Add(1)
		go func() {
			defer a.visits.Done()
			ctx, cancel := context.WithTimeout(context.Background(), visitWriteTimeout)
			defer cancel()
			if err := a.store.RecordVisit(ctx, ip, ua, path); err != nil {
				a.logger.Error("recording visitor", "err", err)
			}
		}()
		c.Next()
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untracked {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// cleanupOldVisitors removes visits older than the configured retention.
func (a *app) cleanupOldVisitors(ctx context.Context) (int64, error) {
	n, err := a.store.CleanupVisitors(ctx, a.cfg.Privacy.Retention)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		a.logger.Info("privacy cleanup", "removed", n, "retention", a.cfg.Privacy.Retention)
	}
	return n, nil
}

func retentionMonths(d time.Duration) int {
	return int(d.Hours() / (24 * 365) * 12)
}

// Setup all admin routes
func setupAdminRoutes(r *gin.Engine, a *app) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title":  "Privacy Policy",
			"note":   PrivacyNote,
			"months": retentionMonths(a.cfg.Privacy.Retention),
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Admin.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Admin.Password)) == 1
		if userOK && passOK {
			// Set secure cookie (24 hours)
			c.SetCookie(adminCookie, a.adminToken, 3600*24, "/admin", "", false, true)
			a.logger.Info("admin login", "from", a.store.HashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}

		a.logger.Warn("failed admin login", "from", a.store.HashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.logger.Info("admin logout", "from", a.store.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(a.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			a.logger.Error("loading admin stats", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Admin API endpoints for HTMX/AJAX
	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.store.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			a.logger.Error("loading visitors", "err", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	adminGroup.DELETE("/visitors/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visitor id"})
			return
		}

		err = a.store.DeleteVisitor(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
			return
		case err != nil:
			a.logger.Error("deleting visitor", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visitor"})
			return
		}

		a.logger.Info("visitor deleted", "id", id, "by", a.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "Visitor deleted successfully"})
	})

	// Privacy compliance endpoint - run the retention cleanup now
	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := a.cleanupOldVisitors(c.Request.Context())
		if err != nil {
			a.logger.Error("privacy cleanup", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Privacy cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "removed": n})
	})

	// Admin statistics export (for backups or analysis)
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Set headers for file download
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")

		a.logger.Info("admin stats exported", "by", a.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
}
