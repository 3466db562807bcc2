package portfolio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/pkg/domain"
)

// Fetcher is the content API surface the loader reads from.
type Fetcher interface {
	SiteConfig(ctx context.Context) (*domain.SiteConfig, error)
	About(ctx context.Context) (*domain.Profile, error)
	Skills(ctx context.Context) (*domain.SkillsResponse, error)
	Projects(ctx context.Context) ([]domain.Project, error)
	Experience(ctx context.Context) ([]domain.Experience, error)
	Education(ctx context.Context) ([]domain.Education, error)
	Contact(ctx context.Context) (*domain.Contact, error)
}

// maxParallel bounds concurrent section fetches in LoadAll.
const maxParallel = 4

// Loader fetches sections and normalizes them for a language.
type Loader struct {
	api     Fetcher
	baseURL string
	logger  *zap.Logger
}

// NewLoader returns a Loader. baseURL resolves site asset paths.
func NewLoader(api Fetcher, baseURL string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{api: api, baseURL: baseURL, logger: logger}
}

// Load fetches and normalizes one section.
func (l *Loader) Load(ctx context.Context, s Section, lang domain.Lang) (Content, error) {
	c := Content{Section: s, Lang: lang}
	switch s {
	case SectionSite:
		cfg, err := l.api.SiteConfig(ctx)
		if err != nil {
			return c, err
		}
		v := normalize.Site(cfg, l.baseURL)
		c.Site = &v
	case SectionAbout:
		p, err := l.api.About(ctx)
		if err != nil {
			return c, err
		}
		c.About = aboutContent(p, lang)
	case SectionSkills:
		resp, err := l.api.Skills(ctx)
		if err != nil {
			return c, err
		}
		v := normalize.Skills(resp)
		c.Skills = &v
	case SectionProjects:
		items, err := l.api.Projects(ctx)
		if err != nil {
			return c, err
		}
		c.Projects = normalize.Projects(items, lang)
	case SectionExperience:
		items, err := l.api.Experience(ctx)
		if err != nil {
			return c, err
		}
		c.Experience = normalize.Experience(items, lang)
	case SectionEducation:
		items, err := l.api.Education(ctx)
		if err != nil {
			return c, err
		}
		c.Education = normalize.Education(items, lang)
	case SectionContact:
		contact, err := l.api.Contact(ctx)
		if err != nil {
			return c, err
		}
		v := normalize.Contact(contact, lang)
		c.Contact = &v
	default:
		return c, fmt.Errorf("portfolio: unknown section %q", s)
	}
	return c, nil
}

// LoadOrFallback is Load that substitutes sample content on failure. The
// returned Content carries the error and Fallback is set.
func (l *Loader) LoadOrFallback(ctx context.Context, s Section, lang domain.Lang) Content {
	start := time.Now()
	c, err := l.Load(ctx, s, lang)
	if err == nil {
		l.logger.Debug("section loaded",
			zap.String("section", string(s)),
			zap.String("lang", string(lang)),
			zap.Duration("took", time.Since(start)))
		return c
	}
	l.logger.Warn("section unavailable, showing fallback",
		zap.String("section", string(s)),
		zap.String("lang", string(lang)),
		zap.Error(err))
	fb := Fallback(s, lang)
	fb.Err = err
	return fb
}

// LoadAll loads sections concurrently. Each section settles on its own; a
// failure only affects that section's entry.
func (l *Loader) LoadAll(ctx context.Context, sections []Section, lang domain.Lang) map[Section]Content {
	out := make(map[Section]Content, len(sections))
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxParallel)
	for _, s := range sections {
		g.Go(func() error {
			c := l.LoadOrFallback(ctx, s, lang)
			mu.Lock()
			out[s] = c
			mu.Unlock()
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never fail
	return out
}

func aboutContent(p *domain.Profile, lang domain.Lang) *AboutContent {
	return &AboutContent{
		About: normalize.About(p, lang),
		Hero:  normalize.Hero(p, lang),
		Cards: normalize.ContactCards(p),
	}
}
