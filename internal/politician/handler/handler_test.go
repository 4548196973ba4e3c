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
	"github.com/stretchr/testify/suite"

	"papertrail/internal/politician"
	"papertrail/internal/storage"
)

// PoliticianHandlerSuite drives the handler with the real service over an in-memory store.
type PoliticianHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestPoliticianHandlerSuite(t *testing.T) {
	suite.Run(t, new(PoliticianHandlerSuite))
}

func (s *PoliticianHandlerSuite) SetupTest() {
	data := storage.NewDataset()
	data.AddPolitician(storage.PoliticianRow{ID: 7, FirstName: "Adam", LastName: "Smith", Party: "D", State: "WA", IsActive: true, Role: storage.Ptr("Representative")})
	data.AddPolitician(storage.PoliticianRow{ID: 8, FirstName: "Jason", LastName: "Smithers", Party: "R", State: "MO"})

	svc, err := politician.NewService(politician.NewInMemory(data))
	require.NoError(s.T(), err)

	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *PoliticianHandlerSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *PoliticianHandlerSuite) TestSearch() {
	rec := s.get("/api/politicians/search?name=smi")

	require.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `[
		{"politicianid":7,"firstname":"Adam","lastname":"Smith","party":"D","state":"WA","role":"Representative","isactive":true},
		{"politicianid":8,"firstname":"Jason","lastname":"Smithers","party":"R","state":"MO","role":null,"isactive":false}
	]`, rec.Body.String())
}

func (s *PoliticianHandlerSuite) TestSearchTooShort() {
	rec := s.get("/api/politicians/search?name=a")

	require.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `[]`, rec.Body.String())
}

func (s *PoliticianHandlerSuite) TestGet() {
	rec := s.get("/api/politician/7")

	require.Equal(s.T(), http.StatusOK, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), `"lastname":"Smith"`)
}

func (s *PoliticianHandlerSuite) TestGetMissing() {
	rec := s.get("/api/politician/999")

	require.Equal(s.T(), http.StatusNotFound, rec.Code)
	assert.JSONEq(s.T(), `{"error":"not_found","error_description":"politician not found"}`, rec.Body.String())
}
