package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Saivya1/Portfolio/internal/motion"
	"github.com/Saivya1/Portfolio/internal/viewport"
)

var errBadQuery = errors.New("bad query parameter")

func queryFloat(c *gin.Context, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %v", errBadQuery, key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w %s: not a finite number", errBadQuery, key)
	}
	return v, nil
}

// queryMillis reads a millisecond count as a duration.
func queryMillis(c *gin.Context, key string, def time.Duration) (time.Duration, error) {
	ms, err := queryFloat(c, key, float64(def.Milliseconds()))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms * float64(time.Millisecond)), nil
}

func badQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func setupMotionRoutes(r *gin.Engine) {
	api := r.Group("/api/motion")

	// Background and hero transforms for one scroll position
	api.GET("/parallax", func(c *gin.Context) {
		scroll, err := queryFloat(c, "scroll", 0)
		height, herr := queryFloat(c, "height", 800)
		page, perr := queryFloat(c, "page", 4*height)
		if err = errors.Join(err, herr, perr); err != nil {
			badQuery(c, err)
			return
		}
		if height <= 0 {
			badQuery(c, errors.New("height must be positive"))
			return
		}
		scroll = max(scroll, 0)

		c.JSON(http.StatusOK, gin.H{
			"background":    motion.SampleBackground(scroll, height, page),
			"hero":          motion.SampleScrollSet(scroll),
			"scrolled":      viewport.Scrolled(scroll),
			"scroll_to_top": viewport.ShowScrollToTop(scroll),
		})
	})

	// One element passing through the viewport
	api.GET("/element", func(c *gin.Context) {
		scroll, err1 := queryFloat(c, "scroll", 0)
		height, err2 := queryFloat(c, "height", 800)
		top, err3 := queryFloat(c, "top", 0)
		size, err4 := queryFloat(c, "size", 0)
		speed, err5 := queryFloat(c, "speed", 10)
		if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
			badQuery(c, err)
			return
		}

		rect := viewport.Rect{Top: top, Height: size}
		vp := viewport.Viewport{ScrollY: max(scroll, 0), Height: height}
		progress := motion.ElementProgress(vp.ScrollY, vp.Height, rect.Top, rect.Height)
		el := motion.ParallaxElement{Direction: motion.Direction(c.DefaultQuery("direction", string(motion.DirectionUp))), Speed: speed}
		headerY, headerOpacity := motion.SectionHeader(progress)

		c.JSON(http.StatusOK, gin.H{
			"fraction":  viewport.VisibleFraction(rect, vp),
			"visible":   viewport.VisibleFraction(rect, vp) >= motion.DefaultThreshold,
			"progress":  progress,
			"transform": el.Transform(progress),
			"header":    gin.H{"y_percent": headerY, "opacity": headerOpacity},
		})
	})

	// Sample an entrance animation at a point in time
	api.GET("/variants/:name", func(c *gin.Context) {
		elapsed, err := queryMillis(c, "elapsed", 0)
		if err != nil {
			badQuery(c, err)
			return
		}
		var d motion.Descriptor
		if c.Query("child") == "true" {
			index, _ := strconv.Atoi(c.DefaultQuery("index", "0"))
			d = motion.ChildVariant(c.Param("name")).WithDelay(motion.DefaultStagger().Delay(index))
		} else {
			d = motion.Variant(c.Param("name"))
		}
		style := d.At(elapsed)
		c.JSON(http.StatusOK, gin.H{
			"descriptor": d,
			"style":      style,
			"transform":  style.Transform(),
			"css":        d.CSS(),
		})
	})

	api.GET("/variants", func(c *gin.Context) {
		stagger := motion.DefaultStagger()
		c.JSON(http.StatusOK, gin.H{
			"variants":  motion.Variants(),
			"threshold": motion.DefaultThreshold,
			"once":      true,
			"stagger": gin.H{
				"base_ms":      stagger.Base.Milliseconds(),
				"step_ms":      stagger.Step.Milliseconds(),
				"word_step_ms": motion.WordStaggerStep.Milliseconds(),
			},
			"count_up_ms": motion.DefaultCountUpDuration.Milliseconds(),
		})
	})

	// Ambient offset of a floating shape
	api.GET("/drift", func(c *gin.Context) {
		at := time.Now()
		if raw := c.Query("at"); raw != "" {
			ms, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				badQuery(c, fmt.Errorf("%w at: %v", errBadQuery, err))
				return
			}
			at = time.UnixMilli(ms)
		}
		p := motion.Pattern(c.DefaultQuery("pattern", string(motion.PatternDefault)))
		x, y := motion.Drift(p, at)
		ax, ay := motion.Amplitude(p)
		c.JSON(http.StatusOK, gin.H{
			"x":           x,
			"y":           y,
			"amplitude":   gin.H{"x": ax, "y": ay},
			"interval_ms": motion.DriftInterval.Milliseconds(),
		})
	})

	// Smooth scroll fallback for nav links
	api.GET("/scroll-to", func(c *gin.Context) {
		from, err1 := queryFloat(c, "from", 0)
		top, err2 := queryFloat(c, "top", 0)
		elapsed, err3 := queryMillis(c, "elapsed", viewport.DefaultSmoothScroll)
		if err := errors.Join(err1, err2, err3); err != nil {
			badQuery(c, err)
			return
		}
		target := viewport.ScrollTarget(top, viewport.HeaderOffset)
		c.JSON(http.StatusOK, gin.H{
			"target":   target,
			"position": viewport.SmoothScrollPosition(from, target, elapsed, viewport.DefaultSmoothScroll),
			"easing":   motion.EasingEaseInOutCubic,
		})
	})
}
