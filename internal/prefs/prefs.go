// Package prefs holds the user's theme and language preferences, keeps a
// presentation document in sync with them and persists them across sessions.
package prefs

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/naveenspark/folio/pkg/domain"
)

// Theme is the color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t == Light || t == Dark }

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", fmt.Errorf("prefs: unknown theme %q", s)
	}
	return t, nil
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (domain.Lang, error) {
	l := domain.Lang(s)
	if !l.Valid() {
		return "", fmt.Errorf("prefs: unsupported language %q", s)
	}
	return l, nil
}

// Preferences is a snapshot of both values. The zero value of a field means
// "not set" when loaded from a Persister.
type Preferences struct {
	Theme    Theme       `json:"theme,omitempty"`
	Language domain.Lang `json:"language,omitempty"`
}

// Persister loads and saves preferences. Load returns the zero Preferences
// when nothing has been saved yet.
type Persister interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// Document receives presentation side effects for preference changes.
type Document interface {
	SetDark(dark bool)
	SetLang(lang domain.Lang)
}

// Store owns the two preferences. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	theme   Theme
	lang    domain.Lang
	persist Persister
	doc     Document
	logger  *zap.Logger

	subMu  sync.Mutex
	subs   map[int]func(Preferences)
	nextID int
}

// Option configures a Store.
type Option func(*config)

type config struct {
	persist    Persister
	doc        Document
	systemTh   func() Theme
	systemLang func() string
	logger     *zap.Logger
}

// WithPersister sets where preferences are loaded from and saved to.
func WithPersister(p Persister) Option { return func(c *config) { c.persist = p } }

// WithDocument sets the side-effect target kept in sync with the values.
func WithDocument(d Document) Option { return func(c *config) { c.doc = d } }

// WithSystemTheme sets the color-scheme probe used when no theme is persisted.
func WithSystemTheme(f func() Theme) Option { return func(c *config) { c.systemTh = f } }

// WithSystemLanguage sets the locale probe used when no language is persisted.
func WithSystemLanguage(f func() string) Option { return func(c *config) { c.systemLang = f } }

// WithLogger sets the logger for swallowed persistence failures.
func WithLogger(l *zap.Logger) Option { return func(c *config) { c.logger = l } }

// New builds a Store. Each value comes from the persister when it holds a
// valid one, otherwise from the system probe. A failing persister never
// fails construction.
func New(opts ...Option) *Store {
	cfg := config{
		persist:    NewMemoryStore(),
		systemTh:   SystemTheme,
		systemLang: SystemLanguage,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.persist == nil {
		cfg.persist = NewMemoryStore()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	s := &Store{
		persist: cfg.persist,
		doc:     cfg.doc,
		logger:  cfg.logger,
		subs:    map[int]func(Preferences){},
	}

	saved, err := s.persist.Load()
	if err != nil {
		s.logger.Debug("preferences unavailable, using defaults", zap.Error(err))
		saved = Preferences{}
	}

	s.theme = saved.Theme
	if !s.theme.Valid() {
		s.theme = Light
		if cfg.systemTh != nil && cfg.systemTh() == Dark {
			s.theme = Dark
		}
	}
	s.lang = saved.Language
	if !s.lang.Valid() {
		s.lang = DefaultLanguage(cfg.systemLang)
	}

	if s.doc != nil {
		s.doc.SetDark(s.theme == Dark)
		s.doc.SetLang(s.lang)
	}
	return s
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Language returns the current language.
func (s *Store) Language() domain.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Snapshot returns both values.
func (s *Store) Snapshot() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Preferences{Theme: s.theme, Language: s.lang}
}

// SetTheme assigns the theme.
func (s *Store) SetTheme(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("prefs: unknown theme %q", t)
	}
	s.update(func() bool {
		if s.theme == t {
			return false
		}
		s.theme = t
		if s.doc != nil {
			s.doc.SetDark(t == Dark)
		}
		return true
	})
	return nil
}

// ToggleTheme flips the theme and returns the new value.
func (s *Store) ToggleTheme() Theme {
	var next Theme
	s.update(func() bool {
		next = Dark
		if s.theme == Dark {
			next = Light
		}
		s.theme = next
		if s.doc != nil {
			s.doc.SetDark(next == Dark)
		}
		return true
	})
	return next
}

// SetLanguage assigns the language.
func (s *Store) SetLanguage(l domain.Lang) error {
	if !l.Valid() {
		return fmt.Errorf("prefs: unsupported language %q", l)
	}
	s.update(func() bool {
		if s.lang == l {
			return false
		}
		s.lang = l
		if s.doc != nil {
			s.doc.SetLang(l)
		}
		return true
	})
	return nil
}

// ToggleLanguage switches between English and Spanish and returns the new value.
func (s *Store) ToggleLanguage() domain.Lang {
	var next domain.Lang
	s.update(func() bool {
		next = s.lang.Other()
		s.lang = next
		if s.doc != nil {
			s.doc.SetLang(next)
		}
		return true
	})
	return next
}

// Subscribe registers fn to be called with the new snapshot after every
// change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Preferences)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// update runs mutate under the lock; when it reports a change the snapshot
// is persisted and subscribers are notified after the lock is released.
func (s *Store) update(mutate func() bool) {
	s.mu.Lock()
	if !mutate() {
		s.mu.Unlock()
		return
	}
	snap := Preferences{Theme: s.theme, Language: s.lang}
	if err := s.persist.Save(snap); err != nil {
		s.logger.Debug("preferences not saved", zap.Error(err))
	}
	s.mu.Unlock()

	s.subMu.Lock()
	fns := make([]func(Preferences), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
