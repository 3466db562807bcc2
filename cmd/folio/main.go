package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/config"
	"github.com/naveenspark/folio/internal/logging"
	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/internal/prefs"
	"github.com/naveenspark/folio/internal/server"
	"github.com/naveenspark/folio/internal/tui"
	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env holds everything built from the configuration.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	api    *client.Client
	loader *portfolio.Loader
}

func setup() (*env, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	logger := logging.NewOrNop(cfg.LogFile, cfg.LogLevel)
	api := client.New(cfg.APIURL,
		client.WithTimeout(cfg.APITimeout.Duration),
		client.WithRetry(cfg.RetryAttempts, cfg.RetryDelay.Duration),
		client.WithLogger(logger),
	)
	return &env{
		cfg:    cfg,
		logger: logger,
		api:    api,
		loader: portfolio.NewLoader(api, cfg.APIURL, logger),
	}, nil
}

func (e *env) store(opts ...prefs.Option) *prefs.Store {
	base := []prefs.Option{
		prefs.WithPersister(prefs.NewFileStore(e.cfg.PrefsFile)),
		prefs.WithLogger(e.logger),
	}
	return prefs.New(append(base, opts...)...)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Fprintln(stdout, "folio "+version)
			return nil
		case "help", "--help", "-h":
			printHelp(stdout)
			return nil
		}
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync() //nolint:errcheck

	if len(args) > 0 {
		switch args[0] {
		case "theme":
			return runTheme(e, args[1:], stdout)
		case "lang":
			return runLang(e, args[1:], stdout)
		case "show":
			return runShow(e, args[1:], stdout, stderr)
		case "serve":
			return runServe(e, args[1:], stdout)
		default:
			return fmt.Errorf("unknown command %q (see folio help)", args[0])
		}
	}

	store := e.store(prefs.WithDocument(tui.Document{}))
	app := tui.NewApp(tui.Options{
		Loader:  e.loader,
		Prefs:   store,
		Contact: e.api,
		Title:   e.cfg.AppTitle,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	stop := tui.WatchPreferences(store, func(msg tea.Msg) { go p.Send(msg) })
	defer stop()
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runTheme(e *env, args []string, stdout io.Writer) error {
	store := e.store()
	if len(args) > 0 {
		switch args[0] {
		case "toggle":
			store.ToggleTheme()
		default:
			th, err := prefs.ParseTheme(strings.ToLower(args[0]))
			if err != nil {
				return err
			}
			if err := store.SetTheme(th); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(stdout, store.Theme())
	return nil
}

func runLang(e *env, args []string, stdout io.Writer) error {
	store := e.store()
	if len(args) > 0 {
		switch args[0] {
		case "toggle":
			store.ToggleLanguage()
		default:
			lang, ok := normalize.ParseLang(args[0])
			if !ok {
				return fmt.Errorf("unsupported language %q (use en or es)", args[0])
			}
			if err := store.SetLanguage(lang); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(stdout, store.Language())
	return nil
}

func runShow(e *env, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	langFlag := fs.String("lang", "", "language (en or es); defaults to the saved preference")
	if err := fs.Parse(reorderFlags(args)); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: folio show <section|all> [--lang en|es]")
	}

	lang := e.store().Language()
	if *langFlag != "" {
		l, ok := normalize.ParseLang(*langFlag)
		if !ok {
			return fmt.Errorf("unsupported language %q (use en or es)", *langFlag)
		}
		lang = l
	}

	ctx := context.Background()
	var out any
	if name := fs.Arg(0); name == "all" {
		sections := append([]portfolio.Section{portfolio.SectionSite}, portfolio.Sections...)
		loaded := e.loader.LoadAll(ctx, sections, lang)
		list := make([]portfolio.Content, 0, len(sections))
		for _, s := range sections {
			c := loaded[s]
			warnFallback(stderr, c)
			list = append(list, c)
		}
		out = list
	} else {
		s, err := portfolio.ParseSection(name)
		if err != nil {
			return err
		}
		c := e.loader.LoadOrFallback(ctx, s, lang)
		warnFallback(stderr, c)
		out = c
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func warnFallback(stderr io.Writer, c portfolio.Content) {
	if c.Fallback {
		fmt.Fprintf(stderr, "warning: %s: %v (showing sample content)\n", c.Section, c.Err)
	}
}

// reorderFlags moves flags ahead of positional arguments so
// "show projects --lang es" parses like "show --lang es projects".
func reorderFlags(args []string) []string {
	var flags, rest []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "-") && a != "-" {
			flags = append(flags, a)
			if !strings.Contains(a, "=") && i+1 < len(args) {
				flags = append(flags, args[i+1])
				i++
			}
			continue
		}
		rest = append(rest, a)
	}
	return append(flags, rest...)
}

func runServe(e *env, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", e.cfg.ListenAddr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srv := server.New(server.Config{
		Address:     *addr,
		Loader:      e.loader,
		Contact:     e.api,
		Logger:      e.logger,
		DefaultLang: defaultLang(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	fmt.Fprintf(stdout, "folio relay listening on %s (content API %s)\n", *addr, e.api.BaseURL())
	e.logger.Info("relay started", zap.String("addr", *addr), zap.String("api_url", e.api.BaseURL()))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("serve: shutdown: %w", err)
	}
	e.logger.Info("relay stopped")
	return nil
}

func defaultLang() domain.Lang {
	return prefs.DefaultLanguage(prefs.SystemLanguage)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `folio - portfolio reader

Usage:
  folio                               browse the portfolio (interactive TUI)
  folio show <section|all> [--lang L] print normalized section content as JSON
  folio theme [light|dark|toggle]     show or change the saved theme
  folio lang [en|es|toggle]           show or change the saved language
  folio serve [--addr :8080]          run the HTTP JSON relay
  folio version                       show version

Sections: about, skills, projects, experience, education, contact, site

Configuration is read from ~/.folio/config.yaml (or FOLIO_CONFIG), a .env file
in the working directory, and FOLIO_* environment variables.
`)
}
