// Package handler is the thin HTTP layer over the catalog service. It parses
// and validates query parameters, delegates to the service, and translates
// coded errors into JSON responses; no business logic lives here.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	dErrors "sentinelles/pkg/domainerrors"
	"sentinelles/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service.go -package=mocks Service

// Service defines the catalog operations the handler depends on.
type Service interface {
	ListWhistleblowers(ctx context.Context, f store.ListFilter) ([]models.WhistleblowerListItem, error)
	GetWhistleblower(ctx context.Context, identifier string) (*models.WhistleblowerDetail, error)
	ListCases(ctx context.Context, f store.ListFilter) ([]models.CaseListItem, error)
	GetCase(ctx context.Context, identifier string) (*models.CaseDetail, error)
	ListEntities(ctx context.Context, search string) ([]models.EntityListItem, error)
	GetEntity(ctx context.Context, identifier string) (*models.EntityDetail, error)
	Search(ctx context.Context, query string) (*models.SearchResult, error)
	Stats(ctx context.Context) (*models.Stats, error)
	DomainFacets(ctx context.Context) ([]models.DomainFacet, error)
}

// Handler handles the public catalog endpoints.
type Handler struct {
	logger  *slog.Logger
	catalog Service
}

// New creates a catalog Handler.
func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, catalog: catalog}
}

// Register mounts the catalog routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Get("/stats", h.handleStats)
	r.Get("/domains", h.handleDomains)
	r.Get("/whistleblowers", h.handleListWhistleblowers)
	r.Get("/whistleblowers/{identifier}", h.handleGetWhistleblower)
	r.Get("/cases", h.handleListCases)
	r.Get("/cases/{identifier}", h.handleGetCase)
	r.Get("/entities", h.handleListEntities)
	r.Get("/entities/{identifier}", h.handleGetEntity)
	r.Get("/search", h.handleSearch)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service":     "Sentinelles API",
		"version":     "2.0.0",
		"description": "Hommage aux lanceurs d'alerte",
		"project":     "Declic.cloud",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats(r.Context())
	if err != nil {
		h.fail(w, r, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleDomains(w http.ResponseWriter, r *http.Request) {
	facets, err := h.catalog.DomainFacets(r.Context())
	if err != nil {
		h.fail(w, r, "domains", err)
		return
	}
	writeJSON(w, http.StatusOK, facets)
}

func (h *Handler) handleListWhistleblowers(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r, true)
	if err != nil {
		WriteError(w, err)
		return
	}
	list, err := h.catalog.ListWhistleblowers(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "list whistleblowers", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetWhistleblower(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetWhistleblower(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.fail(w, r, "get whistleblower", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r, false)
	if err != nil {
		WriteError(w, err)
		return
	}
	list, err := h.catalog.ListCases(r.Context(), filter)
	if err != nil {
		h.fail(w, r, "list cases", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetCase(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetCase(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.fail(w, r, "get case", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleListEntities(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListEntities(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		h.fail(w, r, "list entities", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetEntity(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetEntity(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.fail(w, r, "get entity", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	result, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		h.fail(w, r, "search", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// fail logs internal failures and writes the coded error. Not-found misses
// are expected traffic and skip the log.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if !dErrors.Is(err, dErrors.CodeNotFound) {
		h.logger.ErrorContext(r.Context(), op+" failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err.Error(),
		)
	}
	WriteError(w, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError centralizes coded-error translation to HTTP responses so every
// endpoint emits the same JSON error envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	message := "internal error"
	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		message = de.Message
	}
	writeJSON(w, dErrors.ToHTTPStatus(code), map[string]string{
		"error":   string(code),
		"message": message,
	})
}
