package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/folio/internal/browser"
	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/internal/prefs"
	"github.com/naveenspark/folio/pkg/domain"
)

// sectionLoadedMsg carries one section fetch. gen is checked against the
// section's latest generation so an overtaken response is dropped.
type sectionLoadedMsg struct {
	section portfolio.Section
	gen     uint64
	content portfolio.Content
}

// PreferencesMsg reports a change made through the preference store.
type PreferencesMsg prefs.Preferences

// WatchPreferences forwards every change of store to send as a
// PreferencesMsg. send runs on the goroutine that changed the store, so
// with a tea.Program it must hand off to p.Send without blocking.
func WatchPreferences(store *prefs.Store, send func(tea.Msg)) (stop func()) {
	return store.Subscribe(func(p prefs.Preferences) {
		send(PreferencesMsg(p))
	})
}

type openResultMsg struct{ err error }

type copyResultMsg struct{ err error }

type sectionState struct {
	content portfolio.Content
	loaded  bool
	cursor  int
}

// Options wires the App to its collaborators.
type Options struct {
	Loader  *portfolio.Loader
	Prefs   *prefs.Store
	Contact ContactSender
	Title   string
}

// App is the root Bubbletea model.
type App struct {
	loader   *portfolio.Loader
	prefs    *prefs.Store
	gens     *portfolio.Generations
	sections map[portfolio.Section]sectionState
	active   int
	lang     domain.Lang
	theme    prefs.Theme
	title    string
	contact  contactModel
	formOpen bool
	helpOpen bool
	status   string
	openURL  func(string) error
	copyText func(string) error
	width    int
	height   int
	frame    int // logo shimmer animation frame
}

// NewApp creates the portfolio browser.
func NewApp(o Options) App {
	p := o.Prefs
	if p == nil {
		p = prefs.New(prefs.WithDocument(Document{}))
	}
	title := o.Title
	if title == "" {
		title = "folio"
	}
	return App{
		loader:   o.Loader,
		prefs:    p,
		gens:     &portfolio.Generations{},
		sections: map[portfolio.Section]sectionState{},
		lang:     p.Language(),
		theme:    p.Theme(),
		title:    title,
		contact:  newContactModel(o.Contact),
		openURL:  browser.Open,
		copyText: clipboard.WriteAll,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd(), a.load(portfolio.SectionSite)}
	for _, s := range portfolio.Sections {
		cmds = append(cmds, a.load(s))
	}
	return tea.Batch(cmds...)
}

// load starts a fetch of s in the current language. Issuing the generation
// here, not inside the command, keeps ordering tied to Update.
func (a App) load(s portfolio.Section) tea.Cmd {
	if a.loader == nil {
		return nil
	}
	gen := a.gens.Next(s)
	loader, lang := a.loader, a.lang
	return func() tea.Msg {
		c := loader.LoadOrFallback(context.Background(), s, lang)
		return sectionLoadedMsg{section: s, gen: gen, content: c}
	}
}

func (a App) activeSection() portfolio.Section {
	return portfolio.Sections[a.active]
}

func (a App) selected() (item, bool) {
	st := a.sections[a.activeSection()]
	if !st.loaded {
		return item{}, false
	}
	items := sectionItems(st.content)
	if st.cursor < 0 || st.cursor >= len(items) {
		return item{}, false
	}
	return items[st.cursor], true
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case PreferencesMsg:
		a.theme = msg.Theme
		if msg.Language == a.lang {
			return a, nil
		}
		a.lang = msg.Language
		return a, a.reloadLanguageSensitive()

	case sectionLoadedMsg:
		if !a.gens.IsCurrent(msg.section, msg.gen) {
			return a, nil
		}
		if msg.section == portfolio.SectionSite {
			if !msg.content.Fallback && msg.content.Site != nil {
				if t := firstNonEmpty(msg.content.Site.Brand, msg.content.Site.Title); t != "" {
					a.title = t
				}
			}
			return a, nil
		}
		st := a.sections[msg.section]
		st.content = msg.content
		st.loaded = true
		if n := len(sectionItems(msg.content)); st.cursor >= n {
			st.cursor = max(n-1, 0)
		}
		a.sections[msg.section] = st
		return a, nil

	case openResultMsg:
		if msg.err != nil {
			a.status = errorStyle.Render(msg.err.Error())
		} else {
			a.status = accentStyle.Render(tr("opened"))
		}
		return a, nil

	case copyResultMsg:
		if msg.err != nil {
			a.status = errorStyle.Render(msg.err.Error())
		} else {
			a.status = accentStyle.Render(tr("copied"))
		}
		return a, nil

	case contactSentMsg:
		var cmd tea.Cmd
		a.contact, cmd = a.contact.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	// Help overlay captures all keys when open
	if a.helpOpen {
		switch msg.String() {
		case "h", "esc":
			a.helpOpen = false
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.formOpen {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.contact, cmd = a.contact.Update(msg)
		if a.contact.closed {
			a.contact.closed = false
			a.formOpen = false
		}
		return a, cmd
	}

	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "h", "?":
		a.helpOpen = true
	case "1", "2", "3", "4", "5", "6":
		if i := int(key[0] - '1'); i < len(portfolio.Sections) {
			a.active = i
		}
	case "tab", "right":
		a.active = (a.active + 1) % len(portfolio.Sections)
	case "shift+tab", "left":
		a.active = (a.active - 1 + len(portfolio.Sections)) % len(portfolio.Sections)
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "t":
		a.theme = a.prefs.ToggleTheme()
	case "l":
		a.lang = a.prefs.ToggleLanguage()
		return a, a.reloadLanguageSensitive()
	case "r":
		return a, a.load(a.activeSection())
	case "w":
		a.formOpen = true
	case "enter", "o":
		it, ok := a.selected()
		if !ok || it.link == "" {
			a.status = dimStyle.Render(tr("no link"))
			return a, nil
		}
		return a, a.open(it.link)
	case "c":
		it, ok := a.selected()
		if !ok || it.value == "" {
			a.status = dimStyle.Render(tr("no link"))
			return a, nil
		}
		text, copyText := it.value, a.copyText
		return a, func() tea.Msg {
			return copyResultMsg{err: copyText(text)}
		}
	case "v":
		st := a.sections[portfolio.SectionContact]
		if !st.loaded || st.content.Contact == nil || st.content.Contact.CV == "" {
			a.status = dimStyle.Render(tr("no cv"))
			return a, nil
		}
		return a, a.open(st.content.Contact.CV)
	}
	return a, nil
}

func (a App) open(link string) tea.Cmd {
	openURL := a.openURL
	return func() tea.Msg {
		return openResultMsg{err: openURL(link)}
	}
}

func (a *App) moveCursor(delta int) {
	s := a.activeSection()
	st := a.sections[s]
	n := len(sectionItems(st.content))
	if n == 0 {
		return
	}
	st.cursor = min(max(st.cursor+delta, 0), n-1)
	a.sections[s] = st
}

// reloadLanguageSensitive re-fetches the sections whose text depends on the
// language. The previous content stays visible until the new one arrives.
func (a App) reloadLanguageSensitive() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range portfolio.Sections {
		if s.LanguageSensitive() {
			cmds = append(cmds, a.load(s))
		}
	}
	return tea.Batch(cmds...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (a App) View() string {
	header := center(renderShimmerLogo(a.title, a.frame), a.width)
	themeLabel := tr(string(a.theme))
	meta := metaStyle.Render(themeLabel + " · " + strings.ToUpper(string(a.lang)))
	header += "\n" + center(meta, a.width)

	// Tab bar: equal-width columns spread across the terminal
	colWidth := a.width / len(portfolio.Sections)
	var tabBar strings.Builder
	for i, s := range portfolio.Sections {
		key := string(rune('1' + i))
		name := s.Title(a.lang)
		var label string
		if i == a.active {
			label = accentStyle.Render(key) + " " + selectedStyle.Underline(true).Render(name)
		} else {
			label = metaStyle.Render(key) + " " + dimStyle.Render(name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := max((colWidth-labelWidth)/2, 0)
		rightPad := max(colWidth-labelWidth-leftPad, 0)
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	active := a.activeSection()
	st := a.sections[active]

	var body, help string
	switch {
	case a.helpOpen:
		body = helpView(a.title)
		help = helpBar(helpEntry("esc", tr("close")), helpEntry("q", tr("quit")))
	case a.formOpen:
		body = a.contact.View()
		help = helpBar(helpEntry("tab", tr("next")), helpEntry("ctrl+s", tr("send")), helpEntry("esc", tr("cancel")))
	case !st.loaded:
		body = "\n  " + dimStyle.Render(tr("loading"))
		help = a.navHelp(active)
	default:
		body = renderSection(st.content, a.lang, st.cursor, a.width)
		help = a.navHelp(active)
	}

	// Status line: transient action result, else the fallback notice
	statusLine := ""
	switch {
	case a.status != "":
		statusLine = " " + a.status
	case st.loaded && st.content.Fallback && !a.helpOpen && !a.formOpen:
		statusLine = " " + noticeStyle.Render(portfolio.Notice(a.lang))
	}

	// Chrome budget: header(2) + tabs(1) + status(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return header + "\n" + tabBar.String() + "\n" + body + "\n" + statusLine + "\n" + help
}

func (a App) navHelp(s portfolio.Section) string {
	entries := []string{helpEntry("1-6", tr("tabs"))}
	if len(sectionItems(a.sections[s].content)) > 0 {
		entries = append(entries, helpEntry("j/k", tr("nav")), helpEntry("enter", tr("open")), helpEntry("c", tr("copy")))
	}
	if s == portfolio.SectionContact {
		entries = append(entries, helpEntry("v", tr("cv")))
	}
	entries = append(entries,
		helpEntry("w", tr("write")),
		helpEntry("t", tr("theme")),
		helpEntry("l", tr("lang")),
		helpEntry("h", tr("help")),
		helpEntry("q", tr("quit")))
	return helpBar(entries...)
}
