package handler

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	dErrors "sentinelles/pkg/domainerrors"
)

// Minimum query length for global search, enforced here so the service never
// sees a degenerate term.
const minSearchLength = 2

func badRequest(message string) error {
	return dErrors.New(dErrors.CodeBadRequest, message)
}

// parseListFilter validates the shared list-endpoint parameters. The domain
// and status values are checked against the closed enumerations instead of
// being passed through as literal predicates that silently match nothing.
// forWhistleblowers selects which status enumeration applies.
func parseListFilter(r *http.Request, forWhistleblowers bool) (store.ListFilter, error) {
	q := r.URL.Query()
	f := store.ListFilter{
		Domain: q.Get("domain"),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Limit:  store.DefaultLimit,
	}

	if f.Domain != "" && !models.Domain(f.Domain).Valid() {
		return f, badRequest("unknown domain: " + f.Domain)
	}
	if f.Status != "" {
		valid := models.CaseStatus(f.Status).Valid()
		if forWhistleblowers {
			valid = models.WhistleblowerStatus(f.Status).Valid()
		}
		if !valid {
			return f, badRequest("unknown status: " + f.Status)
		}
	}

	if raw := q.Get("featured_only"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return f, badRequest("featured_only must be a boolean")
		}
		f.FeaturedOnly = b
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > store.MaxLimit {
			return f, badRequest("limit must be an integer between 1 and 100")
		}
		f.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return f, badRequest("offset must be a non-negative integer")
		}
		f.Offset = n
	}
	return f, nil
}

// parseSearchQuery enforces the minimum length on the global search term.
// Length is counted in characters, not bytes, so accented terms are measured
// the same as plain ASCII ones.
func parseSearchQuery(r *http.Request) (string, error) {
	query := r.URL.Query().Get("q")
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minSearchLength {
		return "", badRequest("q must be at least 2 characters")
	}
	return query, nil
}
