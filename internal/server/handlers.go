package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/naveenspark/folio/internal/normalize"
	"github.com/naveenspark/folio/internal/portfolio"
	"github.com/naveenspark/folio/pkg/client"
	"github.com/naveenspark/folio/pkg/domain"
)

const maxContactBody = 64 << 10

type handlers struct {
	loader      *portfolio.Loader
	contact     ContactSender
	logger      *zap.Logger
	defaultLang domain.Lang
}

type sectionResponse struct {
	Section  portfolio.Section `json:"section"`
	Lang     domain.Lang       `json:"lang"`
	Fallback bool              `json:"fallback,omitempty"`
	Error    string            `json:"error,omitempty"`
	Data     any               `json:"data"`
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listSections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sections":   portfolio.Sections,
		"navigation": portfolio.NavigationSections,
	})
}

func (h *handlers) getSection(w http.ResponseWriter, r *http.Request) {
	section, err := portfolio.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "unknown_section", err.Error())
		return
	}
	lang, ok := h.language(w, r)
	if !ok {
		return
	}

	c, err := h.loader.Load(r.Context(), section, lang)
	if err != nil {
		status, code := upstreamStatus(err)
		h.logger.Warn("section fetch failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("section", string(section)),
			zap.Error(err))
		writeError(w, r, status, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sectionResponse{Section: section, Lang: lang, Data: c.View()})
}

func (h *handlers) getPortfolio(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	all := h.loader.LoadAll(r.Context(), portfolio.Sections, lang)
	out := make([]sectionResponse, 0, len(portfolio.Sections))
	for _, s := range portfolio.Sections {
		c := all[s]
		resp := sectionResponse{Section: s, Lang: lang, Fallback: c.Fallback, Data: c.View()}
		if c.Err != nil {
			resp.Error = c.Err.Error()
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, map[string]any{"lang": lang, "sections": out})
}

func (h *handlers) postContact(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	dec := json.NewDecoder(io.LimitReader(r.Body, maxContactBody))
	if err := dec.Decode(&msg); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_body", "request body must be a JSON object")
		return
	}
	msg = msg.Trimmed()
	if err := msg.Validate(); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid_contact", err.Error())
		return
	}

	res, err := h.contact.SendContactMessage(r.Context(), msg)
	if err != nil {
		status, code := upstreamStatus(err)
		h.logger.Error("contact relay failed",
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err))
		writeError(w, r, status, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// language resolves ?lang, then Accept-Language, then the default. An
// unsupported ?lang writes a 400 and reports false.
func (h *handlers) language(w http.ResponseWriter, r *http.Request) (domain.Lang, bool) {
	if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
		lang, ok := normalize.ParseLang(q)
		if !ok {
			writeError(w, r, http.StatusBadRequest, "unsupported_language", "lang must be en or es")
			return "", false
		}
		return lang, true
	}
	if lang, ok := normalize.MatchAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return lang, true
	}
	return h.defaultLang, true
}

// upstreamStatus maps a content API failure to a relay status and error code.
func upstreamStatus(err error) (int, string) {
	var apiErr *client.APIError
	switch {
	case client.IsTimeout(err):
		return http.StatusGatewayTimeout, "upstream_timeout"
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode, "upstream_rejected"
		}
		return http.StatusBadGateway, "upstream_error"
	case client.IsNetwork(err):
		return http.StatusBadGateway, "upstream_unreachable"
	case client.IsParse(err):
		return http.StatusBadGateway, "upstream_malformed"
	}
	return http.StatusInternalServerError, "internal"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	payload := map[string]any{
		"error":   code,
		"message": message,
		"status":  status,
	}
	if id := chimw.GetReqID(r.Context()); id != "" {
		payload["request_id"] = id
	}
	writeJSON(w, status, payload)
}
