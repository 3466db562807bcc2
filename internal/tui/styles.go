package tui

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/pkg/domain"
)

// Shimmer animation for the header title.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// maxLogoRunes caps the spaced-out header title.
const maxLogoRunes = 16

type rgb struct{ r, g, b float64 }

var (
	shimmerDark  = [2]rgb{{26, 58, 36}, {74, 222, 128}}
	shimmerLight = [2]rgb{{134, 239, 172}, {21, 128, 61}}
)

// renderShimmerLogo renders title in spaced capitals with a flowing wave of
// green light. The gradient is inverted on light backgrounds.
func renderShimmerLogo(title string, frame int) string {
	runes := []rune(strings.ToUpper(truncStr(strings.TrimSpace(title), maxLogoRunes)))
	n := len(runes)
	if n == 0 {
		return ""
	}

	grad := shimmerLight
	if lipgloss.HasDarkBackground() {
		grad = shimmerDark
	}

	var out strings.Builder
	t := float64(frame)
	for i, ch := range runes {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}

		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18
		b = math.Max(0.05, math.Min(1.0, b))

		r := clampByte(grad[0].r + b*(grad[1].r-grad[0].r))
		g := clampByte(grad[0].g + b*(grad[1].g-grad[0].g))
		bl := clampByte(grad[0].b + b*(grad[1].b-grad[0].b))

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, bl)))
		out.WriteString(s.Render(string(ch)))

		if i < n-1 {
			out.WriteString("  ")
		}
	}
	return out.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// Palette. Every color adapts to the renderer's background flag, which the
// theme preference drives through Document.
var (
	colorDim      = lipgloss.AdaptiveColor{Light: "#5c6370", Dark: "#8890a0"}
	colorSelected = lipgloss.AdaptiveColor{Light: "#111118", Dark: "#e4e4ec"}
	colorNormal   = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#c0c4d0"}
	colorMeta     = lipgloss.AdaptiveColor{Light: "#8a90a0", Dark: "#505868"}
	colorAccent   = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#34d474"}
	colorLink     = lipgloss.AdaptiveColor{Light: "#0e7490", Dark: "#22d3ee"}
	colorNotice   = lipgloss.AdaptiveColor{Light: "#a16207", Dark: "#d4a844"}
	colorError    = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#b45555"}
	colorRowBg    = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1e1e2a"}

	dimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSelected).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(colorNormal)
	metaStyle     = lipgloss.NewStyle().Foreground(colorMeta)

	// Help bar
	helpKeyStyle   = lipgloss.NewStyle().Foreground(colorDim)
	helpLabelStyle = lipgloss.NewStyle().Foreground(colorMeta)

	accentStyle = lipgloss.NewStyle().Foreground(colorAccent)
	linkStyle   = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	noticeStyle = lipgloss.NewStyle().Foreground(colorNotice).Italic(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)

	headingStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	sectionHeaderStyle = lipgloss.NewStyle().Foreground(colorDim).Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#b0b6c2", Dark: "#343c4a"})

	selectedRowBg = lipgloss.NewStyle().Background(colorRowBg)

	techStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#b080d0"})
)

// skillClassColors maps the utility color classes the content API uses to
// terminal colors.
var skillClassColors = map[string]lipgloss.AdaptiveColor{
	"text-yellow-500": {Light: "#a16207", Dark: "#eab308"},
	"text-blue-500":   {Light: "#1d4ed8", Dark: "#3b82f6"},
	"text-blue-600":   {Light: "#1e40af", Dark: "#2563eb"},
	"text-green-600":  {Light: "#15803d", Dark: "#16a34a"},
	"text-orange-600": {Light: "#c2410c", Dark: "#ea580c"},
	"text-purple-600": {Light: "#7e22ce", Dark: "#9333ea"},
	"text-gray-600":   {Light: "#4b5563", Dark: "#9ca3af"},
}

// SkillStyle returns a bold style colored for a skill. Literal hex colors are
// used as-is; other CSS color forms and unknown classes get the default.
func SkillStyle(s normalize.SkillView) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if s.Custom {
		if strings.HasPrefix(s.Color, "#") {
			return style.Foreground(lipgloss.Color(s.Color))
		}
		return style.Foreground(skillClassColors[normalize.DefaultSkillColor])
	}
	if c, ok := skillClassColors[s.Color]; ok {
		return style.Foreground(c)
	}
	return style.Foreground(skillClassColors[normalize.DefaultSkillColor])
}

// Document applies preference side effects to the terminal: the theme flips
// the renderer's background flag and the language switches chrome labels.
type Document struct{}

// SetDark implements prefs.Document.
func (Document) SetDark(dark bool) { lipgloss.SetHasDarkBackground(dark) }

// SetLang implements prefs.Document.
func (Document) SetLang(lang domain.Lang) { chromeLang.Store(lang) }

var chromeLang atomic.Value // domain.Lang

func currentLang() domain.Lang {
	if l, ok := chromeLang.Load().(domain.Lang); ok && l.Valid() {
		return l
	}
	return domain.English
}

// labels holds chrome text as {en, es}.
var labels = map[string][2]string{
	"tabs":        {"tabs", "secciones"},
	"nav":         {"nav", "navegar"},
	"open":        {"open", "abrir"},
	"copy":        {"copy", "copiar"},
	"cv":          {"cv", "cv"},
	"write":       {"write", "escribir"},
	"theme":       {"theme", "tema"},
	"lang":        {"español", "english"},
	"refresh":     {"refresh", "recargar"},
	"help":        {"help", "ayuda"},
	"quit":        {"quit", "salir"},
	"close":       {"close", "cerrar"},
	"next":        {"next", "siguiente"},
	"send":        {"send", "enviar"},
	"cancel":      {"cancel", "cancelar"},
	"loading":     {"loading...", "cargando..."},
	"sending":     {"sending...", "enviando..."},
	"empty":       {"nothing here yet", "todavía no hay nada"},
	"copied":      {"copied", "copiado"},
	"opened":      {"opened", "abierto"},
	"no link":     {"no link for this item", "este elemento no tiene enlace"},
	"no cv":       {"no CV available", "no hay CV disponible"},
	"sent":        {"message sent", "mensaje enviado"},
	"send failed": {"failed to send message", "no se pudo enviar el mensaje"},
	"name":        {"name", "nombre"},
	"email":       {"email", "correo"},
	"message":     {"message", "mensaje"},
	"required":    {"all fields are required", "todos los campos son obligatorios"},
	"bad email":   {"invalid email address", "correo electrónico no válido"},
	"light":       {"light", "claro"},
	"dark":        {"dark", "oscuro"},
	"source":      {"source", "código"},
	"demo":        {"demo", "demo"},
	"current":     {"current", "actual"},
}

// tr returns the chrome label for key in the current language.
func tr(key string) string {
	l, ok := labels[key]
	if !ok {
		return key
	}
	if currentLang() == domain.Spanish {
		return l[1]
	}
	return l[0]
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

func helpBar(entries ...string) string {
	return " " + strings.Join(entries, "  ")
}

// helpView renders the help overlay.
func helpView(title string) string {
	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(colorDim)

	es := currentLang() == domain.Spanish
	pick := func(en, sp string) string {
		if es {
			return sp
		}
		return en
	}

	keys := []struct{ key, desc string }{
		{"1-6", pick("Switch section", "Cambiar de sección")},
		{"j/k", pick("Move through items", "Recorrer elementos")},
		{"enter/o", pick("Open the selected link", "Abrir el enlace seleccionado")},
		{"c", pick("Copy the selected link", "Copiar el enlace seleccionado")},
		{"v", pick("Open the CV", "Abrir el CV")},
		{"w", pick("Write a message", "Escribir un mensaje")},
		{"t", pick("Toggle light/dark theme", "Alternar tema claro/oscuro")},
		{"l", pick("Toggle English/Spanish", "Alternar inglés/español")},
		{"r", pick("Reload the section", "Recargar la sección")},
	}
	commands := []struct{ cmd, desc string }{
		{"folio", pick("Browse the portfolio", "Explorar el portafolio")},
		{"folio show <section>", pick("Print a section as JSON", "Mostrar una sección como JSON")},
		{"folio theme [light|dark]", pick("Show or set the theme", "Ver o cambiar el tema")},
		{"folio lang [en|es]", pick("Show or set the language", "Ver o cambiar el idioma")},
		{"folio serve", pick("Run the HTTP relay", "Ejecutar el relé HTTP")},
		{"folio --version", pick("Show version", "Mostrar la versión")},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", headingStyle.Render(title))

	fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render(pick("Keys", "Teclas")))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-8s", k.key)), descStyle.Render(k.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionHeaderStyle.Render(pick("Commands", "Comandos")))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-26s", c.cmd)), descStyle.Render(c.desc))
	}
	return b.String()
}
