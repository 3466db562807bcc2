package portfolio

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naveenspark/folio/pkg/domain"
)

type fakeAPI struct {
	profile  *domain.Profile
	projects []domain.Project
	err      map[Section]error
	calls    atomic.Int32
}

func (f *fakeAPI) fail(s Section) error {
	f.calls.Add(1)
	return f.err[s]
}

func (f *fakeAPI) SiteConfig(context.Context) (*domain.SiteConfig, error) {
	if err := f.fail(SectionSite); err != nil {
		return nil, err
	}
	return &domain.SiteConfig{SiteTitle: "Ada", FaviconFile: ptr("/media/f.ico")}, nil
}

func (f *fakeAPI) About(context.Context) (*domain.Profile, error) {
	if err := f.fail(SectionAbout); err != nil {
		return nil, err
	}
	return f.profile, nil
}

func (f *fakeAPI) Skills(context.Context) (*domain.SkillsResponse, error) {
	if err := f.fail(SectionSkills); err != nil {
		return nil, err
	}
	return &domain.SkillsResponse{Categories: []domain.SkillCategory{{ID: "x", Skills: []domain.Skill{{Name: "Go"}}}}}, nil
}

func (f *fakeAPI) Projects(context.Context) ([]domain.Project, error) {
	if err := f.fail(SectionProjects); err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeAPI) Experience(context.Context) ([]domain.Experience, error) {
	if err := f.fail(SectionExperience); err != nil {
		return nil, err
	}
	return []domain.Experience{{Company: "Now", StartDate: "2022/01/01", Active: true}}, nil
}

func (f *fakeAPI) Education(context.Context) ([]domain.Education, error) {
	if err := f.fail(SectionEducation); err != nil {
		return nil, err
	}
	return []domain.Education{{Institution: "Uni", DegreeEN: "BSc", Active: true}}, nil
}

func (f *fakeAPI) Contact(context.Context) (*domain.Contact, error) {
	if err := f.fail(SectionContact); err != nil {
		return nil, err
	}
	return &domain.Contact{GitHubURL: ptr("https://github.com/ada")}, nil
}

func newFake() *fakeAPI {
	return &fakeAPI{
		profile: &domain.Profile{Name: "Ada", LastName: "Lovelace", Email: "ada@example.com", BioEN: "Hi", BioES: "Hola"},
		projects: []domain.Project{
			{ID: 1, TitleEN: "B", DisplayOrder: 2, Active: true},
			{ID: 2, TitleEN: "A", DisplayOrder: 1, Active: true},
			{ID: 3, TitleEN: "Off", Active: false},
		},
		err: map[Section]error{},
	}
}

func TestLoad(t *testing.T) {
	l := NewLoader(newFake(), "http://api.test", nil)
	ctx := context.Background()

	c, err := l.Load(ctx, SectionAbout, domain.Spanish)
	require.NoError(t, err)
	require.NotNil(t, c.About)
	assert.Equal(t, "Ada Lovelace", c.About.About.FullName)
	assert.Equal(t, []string{"Hola"}, c.About.About.Description)
	assert.Len(t, c.About.Cards, 1)
	assert.Same(t, c.About, c.View())

	c, err = l.Load(ctx, SectionProjects, domain.English)
	require.NoError(t, err)
	require.Len(t, c.Projects, 2)
	assert.Equal(t, "A", c.Projects[0].Title)

	c, err = l.Load(ctx, SectionSite, domain.English)
	require.NoError(t, err)
	assert.Equal(t, "http://api.test/media/f.ico", c.Site.Favicon)

	c, err = l.Load(ctx, SectionExperience, domain.English)
	require.NoError(t, err)
	assert.Equal(t, "January 2022 - Present", c.Experience[0].Period)

	_, err = l.Load(ctx, Section("blog"), domain.English)
	assert.Error(t, err)
}

func TestLoadOrFallback(t *testing.T) {
	api := newFake()
	boom := errors.New("connection refused")
	api.err[SectionProjects] = boom

	c := NewLoader(api, "", nil).LoadOrFallback(context.Background(), SectionProjects, domain.Spanish)
	assert.True(t, c.Fallback)
	assert.ErrorIs(t, c.Err, boom)
	require.NotEmpty(t, c.Projects)
	assert.Equal(t, "Sitio de portafolio", c.Projects[0].Title)
}

func TestLoadAllIsolatesFailures(t *testing.T) {
	api := newFake()
	api.err[SectionSkills] = errors.New("timeout")

	got := NewLoader(api, "", nil).LoadAll(context.Background(), Sections, domain.English)
	require.Len(t, got, len(Sections))
	assert.True(t, got[SectionSkills].Fallback)
	assert.Error(t, got[SectionSkills].Err)
	for _, s := range Sections {
		if s == SectionSkills {
			continue
		}
		assert.False(t, got[s].Fallback, "section %s", s)
		assert.NoError(t, got[s].Err, "section %s", s)
	}
	assert.Equal(t, int32(len(Sections)), api.calls.Load())
}

func TestFallbackCoversEverySection(t *testing.T) {
	for _, s := range append([]Section{SectionSite}, Sections...) {
		for _, lang := range []domain.Lang{domain.English, domain.Spanish} {
			c := Fallback(s, lang)
			assert.True(t, c.Fallback)
			assert.NotNil(t, c.View(), "section %s lang %s", s, lang)
		}
	}
	assert.NotEqual(t, Notice(domain.English), Notice(domain.Spanish))
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection(" Projects ")
	require.NoError(t, err)
	assert.Equal(t, SectionProjects, s)

	s, err = ParseSection("site")
	require.NoError(t, err)
	assert.Equal(t, SectionSite, s)

	_, err = ParseSection("blog")
	assert.Error(t, err)
}

func TestLanguageSensitive(t *testing.T) {
	assert.True(t, SectionAbout.LanguageSensitive())
	assert.True(t, SectionEducation.LanguageSensitive())
	assert.False(t, SectionSkills.LanguageSensitive())
	assert.False(t, SectionContact.LanguageSensitive())
	assert.Equal(t, "Proyectos", SectionProjects.Title(domain.Spanish))
	assert.Equal(t, "Projects", SectionProjects.Title(domain.English))
}

func TestGenerationsDropStaleResponse(t *testing.T) {
	var g Generations

	english := g.Next(SectionAbout)
	spanish := g.Next(SectionAbout)
	other := g.Next(SectionProjects)

	assert.False(t, g.IsCurrent(SectionAbout, english), "older request is stale")
	assert.True(t, g.IsCurrent(SectionAbout, spanish))
	assert.True(t, g.IsCurrent(SectionProjects, other), "sections are tracked independently")
}

// A slow response for the first language resolving after a fast response for
// the second must not win.
func TestGenerationsOutOfOrderCompletion(t *testing.T) {
	var (
		g       Generations
		mu      sync.Mutex
		applied []domain.Lang
		wg      sync.WaitGroup
	)
	fetch := func(lang domain.Lang, delay time.Duration) {
		gen := g.Next(SectionAbout)
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(delay)
			if !g.IsCurrent(SectionAbout, gen) {
				return
			}
			mu.Lock()
			applied = append(applied, lang)
			mu.Unlock()
		}()
	}

	fetch(domain.English, 50*time.Millisecond)
	fetch(domain.Spanish, 0)
	wg.Wait()

	assert.Equal(t, []domain.Lang{domain.Spanish}, applied)
}
