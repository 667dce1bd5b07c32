// Package site - the server-rendered pages of the personal site.
// The site is ONLY responsible for: routing, template rendering, static
// assets. Pricing and lead handling live behind the JSON API.
package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MaRkS1234567/MySite-web/core/directions"
	"github.com/MaRkS1234567/MySite-web/core/locale"
	"github.com/MaRkS1234567/MySite-web/core/pricing"
)

// Config configures the site
type Config struct {
	// TemplatesGlob locates the HTML templates
	TemplatesGlob string

	// StaticDir serves /static
	StaticDir string
}

// Site serves the HTML pages.
type Site struct {
	engine *gin.Engine
	table  *pricing.Table
	stats  *StatsProvider
	lang   locale.Lang
}

// New creates the site with its routes registered.
func New(cfg Config, table *pricing.Table, stats *StatsProvider) *Site {
	if table == nil {
		table = pricing.DefaultTable()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.LoadHTMLGlob(cfg.TemplatesGlob)
	engine.Static("/static", cfg.StaticDir)

	s := &Site{
		engine: engine,
		table:  table,
		stats:  stats,
		lang:   locale.RU,
	}
	s.registerRoutes()
	return s
}

// Handler returns the site as an http.Handler.
func (s *Site) Handler() http.Handler {
	return s.engine
}

func (s *Site) registerRoutes() {
	s.engine.GET("/", s.handleHome)
	s.engine.GET("/tutor", s.handleTutor)
	s.engine.GET("/dev", s.handleDev)
	s.engine.GET("/cv", s.handleCV)
	s.engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"title": "Страница не найдена",
		})
	})
}

func (s *Site) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Марк Шарапов — разработка и репетиторство",
		"stats": HomeStats,
		"tags":  HomeTags,
	})
}

// option is one selectable configurator value with its display label.
type option struct {
	Value string
	Label string
}

// directionView is one expandable direction card.
type directionView struct {
	ID       string
	Title    string
	Promise  string
	Audience string
	Bullets  []string
	Tags     []string
	Goal     string
}

func (s *Site) handleTutor(c *gin.Context) {
	// The configurator opens on its defaults; the initial range shown
	// matches what the estimate endpoint returns for them.
	cfg := pricing.NewConfigurator(s.table).Config()
	price := s.table.Calculate(cfg)
	monthly := pricing.MonthlyEstimate(price, cfg.Frequency)

	c.HTML(http.StatusOK, "tutor.html", gin.H{
		"title":       "Репетитор по информатике и математике",
		"directions":  s.directionViews(),
		"formats":     formatViews(s.lang),
		"intensities": intensityViews(s.lang),
		"frequencies": frequencyViews(s.lang),
		"goals":       goalViews(s.lang),
		"durations":   pricing.DurationOptions,
		"defaults":    cfg,
		"priceMin":    pricing.FormatPrice(price.Min),
		"priceMax":    pricing.FormatPrice(price.Max),
		"monthlyMin":  pricing.FormatPrice(monthly.Min),
		"monthlyMax":  pricing.FormatPrice(monthly.Max),
		"includes":    cfg.Intensity.Includes(s.lang),
	})
}

func (s *Site) handleDev(c *gin.Context) {
	c.HTML(http.StatusOK, "dev.html", gin.H{
		"title":    "Разработка под ключ",
		"services": DevServices,
		"cases":    DevCases,
	})
}

func (s *Site) handleCV(c *gin.Context) {
	c.HTML(http.StatusOK, "cv.html", gin.H{
		"title":  CV.Name + " — резюме",
		"cv":     CV,
		"github": s.stats.Get(c.Request.Context()),
	})
}

func (s *Site) directionViews() []directionView {
	views := make([]directionView, 0, len(directions.Catalog))
	for _, d := range directions.Catalog {
		views = append(views, directionView{
			ID:       string(d.ID),
			Title:    d.Title.Get(s.lang),
			Promise:  d.Promise.Get(s.lang),
			Audience: d.Audience.Get(s.lang),
			Bullets:  d.Bullets.Get(s.lang),
			Tags:     d.Tags.Get(s.lang),
			Goal:     d.Goal.Get(s.lang),
		})
	}
	return views
}

func formatViews(lang locale.Lang) []option {
	views := make([]option, 0, len(pricing.FormatOptions))
	for _, f := range pricing.FormatOptions {
		views = append(views, option{Value: string(f), Label: f.Label(lang)})
	}
	return views
}

func intensityViews(lang locale.Lang) []option {
	views := make([]option, 0, len(pricing.IntensityOptions))
	for _, i := range pricing.IntensityOptions {
		views = append(views, option{Value: string(i), Label: i.Label(lang)})
	}
	return views
}

func frequencyViews(lang locale.Lang) []option {
	views := make([]option, 0, len(pricing.FrequencyOptions))
	for _, f := range pricing.FrequencyOptions {
		views = append(views, option{Value: string(f), Label: f.Label(lang)})
	}
	return views
}

func goalViews(lang locale.Lang) []option {
	views := make([]option, 0, len(pricing.GoalOptions))
	for _, g := range pricing.GoalOptions {
		views = append(views, option{Value: string(g), Label: g.Label(lang)})
	}
	return views
}
