package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/Saivya1/Portfolio/internal/config"
	"github.com/Saivya1/Portfolio/internal/contact"
	"github.com/Saivya1/Portfolio/internal/content"
	"github.com/Saivya1/Portfolio/internal/logging"
	"github.com/Saivya1/Portfolio/internal/store"
)

func main() {
	Execute()
}

// app holds everything the handlers share.
type app struct {
	cfg        config.Config
	portfolio  *content.Portfolio
	store      *store.Store
	contact    *contact.Service
	logger     *log.Logger
	adminToken string

	// visits tracks in-flight visitor writes so shutdown can drain them.
	visits sync.WaitGroup
}

func newApp(cfg config.Config, st *store.Store, logger *log.Logger) (*app, error) {
	portfolio, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	token, err := store.RandomToken()
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}

	sender, err := newSender(cfg.Contact, logger)
	if err != nil {
		return nil, err
	}
	svc := contact.NewService(sender,
		contact.WithRecorder(st),
		contact.WithLogger(logger.WithPrefix("contact")),
	)

	return &app{
		cfg:        cfg,
		portfolio:  portfolio,
		store:      st,
		contact:    svc,
		logger:     logger,
		adminToken: token,
	}, nil
}

func newSender(cfg config.Contact, logger *log.Logger) (contact.Sender, error) {
	mock := &contact.MockSender{Delay: cfg.MockDelay, Jitter: cfg.MockJitter, Logger: logger.WithPrefix("contact")}
	if cfg.Transport != config.TransportSMTP {
		return mock, nil
	}
	smtpCfg, err := contact.LoadSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("smtp config: %w", err)
	}
	if !smtpCfg.Configured() {
		logger.Warn("SMTP credentials not configured, falling back to simulated delivery")
		return mock, nil
	}
	logger.Info("contact form delivers over SMTP", "host", smtpCfg.Host, "port", smtpCfg.Port)
	return contact.NewSMTPSender(smtpCfg), nil
}

func newRouter(a *app) *gin.Engine {
	gin.SetMode(a.cfg.Mode)
	r := gin.New()
	r.Use(logging.Middleware(a.logger.WithPrefix("http")), gin.Recovery())
	r.Use(a.visitorTrackingMiddleware())

	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob(filepath.Join(a.cfg.TemplatesDir, "*"))

	r.Static("/images", a.cfg.ImagesDir)
	r.Static("/static", a.cfg.StaticDir)

	setupSiteRoutes(r, a)
	setupMotionRoutes(r)
	setupAdminRoutes(r, a)
	return r
}

func setupSiteRoutes(r *gin.Engine, a *app) {
	p := a.portfolio

	// Home page route
	r.GET("/", func(c *gin.Context) {
		projectCat := c.DefaultQuery("projects", content.AllCategory)
		certCat := c.DefaultQuery("certs", content.AllCategory)

		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":      p.Profile,
			"nav":          p.Nav,
			"shapes":       heroShapes(p.Hero.Shapes),
			"layers":       backgroundLayers(),
			"about":        p.About,
			"stats":        p.Stats,
			"skills":       p.Skills,
			"experience":   p.Experience,
			"education":    p.Education,
			"achievements": p.Achievements,
			"projects":     projectsData(p, projectCat),
			"certs":        certificationsData(p, certCat),
			"copy":         pageCopy(),
			"year":         time.Now().Year(),
		})
	})

	// HTMX category filters - return just the grid
	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", projectsData(p, c.DefaultQuery("category", content.AllCategory)))
	})
	r.GET("/certifications", func(c *gin.Context) {
		c.HTML(http.StatusOK, "certifications.html", certificationsData(p, c.DefaultQuery("category", content.AllCategory)))
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		var msg contact.Message
		if err := c.ShouldBind(&msg); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": contact.MsgFailed})
			return
		}

		res := a.contact.Submit(c.Request.Context(), msg)
		if !res.Success {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": res.Error})
			return
		}
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success":   contact.MsgSent,
			"messageId": res.MessageID,
		})
	})

	// JSON contact endpoint
	r.POST("/api/contact", func(c *gin.Context) {
		var msg contact.Message
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, contact.Result{Error: contact.MsgFailed})
			return
		}
		res := a.contact.Submit(c.Request.Context(), msg)
		c.JSON(contactStatus(res), res)
	})

	// Certificates are always served as PDFs
	r.GET("/certs/*file", func(c *gin.Context) {
		name := strings.TrimPrefix(c.Param("file"), "/")
		if _, ok := p.Certification(name); !ok {
			c.String(http.StatusNotFound, "certificate not found")
			return
		}
		c.Header("Content-Type", "application/pdf")
		c.File(filepath.Join(a.cfg.StaticDir, "certs", name))
	})

	r.GET("/resume.pdf", func(c *gin.Context) {
		c.Header("Content-Type", "application/pdf")
		c.File(filepath.Join(a.cfg.StaticDir, "resume.pdf"))
	})

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func contactStatus(res contact.Result) int {
	switch {
	case res.Success:
		return http.StatusOK
	case res.Error == contact.MsgMissingFields, res.Error == contact.MsgInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func projectsData(p *content.Portfolio, category string) gin.H {
	return gin.H{
		"categories": p.ProjectCategories(),
		"active":     category,
		"items":      p.FilterProjects(category),
	}
}

func certificationsData(p *content.Portfolio, category string) gin.H {
	return gin.H{
		"categories": p.CertificationCategories(),
		"active":     category,
		"items":      p.FilterCertifications(category),
	}
}

func pageCopy() gin.H {
	return gin.H{
		"heroGreeting":        HeroGreeting,
		"aboutHeading":        AboutHeading,
		"skillsHeading":       SkillsHeading,
		"skillsIntro":         SkillsIntro,
		"experienceHeading":   ExperienceHeading,
		"projectsHeading":     ProjectsHeading,
		"projectsIntro":       ProjectsIntro,
		"educationHeading":    EducationHeading,
		"achievementsHeading": AchievementsHeading,
		"contactHeading":      ContactHeading,
		"contactIntro":        ContactIntro,
	}
}
