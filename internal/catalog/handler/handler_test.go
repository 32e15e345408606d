package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sentinelles/internal/catalog/handler/mocks"
	"sentinelles/internal/catalog/models"
	"sentinelles/internal/catalog/store"
	dErrors "sentinelles/pkg/domainerrors"
	"sentinelles/pkg/testutil"
)

func newCatalogRouter(t *testing.T) (*mocks.MockService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return svc, r
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, target))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	testutil.DecodeJSON(t, rec, &v)
	return v
}

func TestRoot(t *testing.T) {
	_, router := newCatalogRouter(t)
	rec := get(t, router, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Sentinelles API", body["service"])
	assert.Equal(t, "2.0.0", body["version"])
}

func TestHealth(t *testing.T) {
	_, router := newCatalogRouter(t)
	rec := get(t, router, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestListWhistleblowersDefaultFilter(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		ListWhistleblowers(gomock.Any(), store.ListFilter{Limit: store.DefaultLimit}).
		Return([]models.WhistleblowerListItem{
			{ID: 1, Slug: "edward-snowden", Name: "Edward Snowden", Status: models.StatusExile},
		}, nil)

	rec := get(t, router, "/whistleblowers")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.WhistleblowerListItem](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "edward-snowden", list[0].Slug)
}

func TestListWhistleblowersForwardsFilters(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		ListWhistleblowers(gomock.Any(), store.ListFilter{
			Domain:       "surveillance",
			Status:       "exilé",
			Search:       "snowden",
			FeaturedOnly: true,
			Limit:        20,
			Offset:       40,
		}).
		Return([]models.WhistleblowerListItem{}, nil)

	rec := get(t, router, "/whistleblowers?domain=surveillance&status=exil%C3%A9&search=snowden&featured_only=true&limit=20&offset=40")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListWhistleblowersRejectsUnknownDomain(t *testing.T) {
	_, router := newCatalogRouter(t)
	rec := get(t, router, "/whistleblowers?domain=astrologie")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, string(dErrors.CodeBadRequest), body["error"])
}

func TestStatusEnumerationsArePerEndpoint(t *testing.T) {
	// "exilé" is a person status, not a case status.
	svc, router := newCatalogRouter(t)
	rec := get(t, router, "/cases?status=exil%C3%A9")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().
		ListCases(gomock.Any(), store.ListFilter{Status: "impuni", Limit: store.DefaultLimit}).
		Return([]models.CaseListItem{}, nil)
	rec = get(t, router, "/cases?status=impuni")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListValidationRejections(t *testing.T) {
	_, router := newCatalogRouter(t)

	for _, target := range []string{
		"/whistleblowers?limit=0",
		"/whistleblowers?limit=101",
		"/whistleblowers?limit=dix",
		"/whistleblowers?offset=-1",
		"/whistleblowers?featured_only=oui",
		"/cases?domain=inexistant",
	} {
		rec := get(t, router, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "expected 400 for %s", target)
	}
}

func TestListLimitBoundaryAccepted(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		ListCases(gomock.Any(), store.ListFilter{Limit: store.MaxLimit}).
		Return([]models.CaseListItem{}, nil)

	rec := get(t, router, "/cases?limit=100")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetWhistleblowerNotFound(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		GetWhistleblower(gomock.Any(), "inconnu").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "Lanceur d'alerte non trouvé"))

	rec := get(t, router, "/whistleblowers/inconnu")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Lanceur d'alerte non trouvé", body["message"])
}

func TestGetCasePassesIdentifierThrough(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		GetCase(gomock.Any(), "42").
		Return(&models.CaseDetail{ID: 42, Slug: "nsa-prism", Name: "Révélations sur la surveillance de masse de la NSA"}, nil)

	rec := get(t, router, "/cases/42")

	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody[models.CaseDetail](t, rec)
	assert.Equal(t, int64(42), detail.ID)
	assert.Equal(t, "nsa-prism", detail.Slug)
}

func TestListEntitiesForwardsSearch(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		ListEntities(gomock.Any(), "hsbc").
		Return([]models.EntityListItem{{ID: 4, Slug: "hsbc", Name: "HSBC", CasesCount: 1}}, nil)

	rec := get(t, router, "/entities?search=hsbc")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]models.EntityListItem](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].CasesCount)
}

func TestSearchRejectsShortQuery(t *testing.T) {
	_, router := newCatalogRouter(t)

	rec := get(t, router, "/search?q=n")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, router, "/search")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Whitespace padding does not satisfy the minimum length.
	rec = get(t, router, "/search?q=%20a%20")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// "é" is one character even though it is two bytes.
	rec = get(t, router, "/search?q=%C3%A9")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchAcceptsTwoAccentedCharacters(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		Search(gomock.Any(), "éa").
		Return(&models.SearchResult{
			Query:          "éa",
			Whistleblowers: []models.SearchHit{},
			Cases:          []models.SearchHit{},
			Entities:       []models.SearchHit{},
		}, nil)

	rec := get(t, router, "/search?q=%C3%A9a")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchEchoesQuery(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		Search(gomock.Any(), "ns").
		Return(&models.SearchResult{
			Query:          "ns",
			Whistleblowers: []models.SearchHit{},
			Cases:          []models.SearchHit{{ID: 3, Slug: "nsa-prism", Name: "NSA/PRISM", Type: "case"}},
			Entities:       []models.SearchHit{},
		}, nil)

	rec := get(t, router, "/search?q=ns")

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody[models.SearchResult](t, rec)
	assert.Equal(t, "ns", result.Query)
	require.Len(t, result.Cases, 1)
	assert.Equal(t, "case", result.Cases[0].Type)
	assert.NotNil(t, result.Whistleblowers)
}

func TestStatsEndpoint(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		Stats(gomock.Any()).
		Return(&models.Stats{TotalWhistleblowers: 9, TotalCases: 4}, nil)

	rec := get(t, router, "/stats")

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[models.Stats](t, rec)
	assert.Equal(t, 9, stats.TotalWhistleblowers)
}

func TestDomainsEndpoint(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		DomainFacets(gomock.Any()).
		Return([]models.DomainFacet{{Domain: "surveillance", Whistleblowers: 3, Cases: 2}}, nil)

	rec := get(t, router, "/domains")

	require.Equal(t, http.StatusOK, rec.Code)
	facets := decodeBody[[]models.DomainFacet](t, rec)
	require.Len(t, facets, 1)
	assert.Equal(t, "surveillance", facets[0].Domain)
}

func TestInternalErrorEnvelope(t *testing.T) {
	svc, router := newCatalogRouter(t)
	svc.EXPECT().
		Stats(gomock.Any()).
		Return(nil, dErrors.Wrap(dErrors.CodeInternal, "compute stats", assert.AnError))

	rec := get(t, router, "/stats")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "internal", body["error"])
	// The cause never reaches the response body.
	assert.Equal(t, "compute stats", body["message"])
}
