//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	teamModel "github.com/footballdb/football-db/internal/team/model"
)

func (s *E2ETestSuite) TestHealth() {
	resp := s.doRequest(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestTeamLifecycle() {
	// create
	var created teamModel.TeamResponse
	resp := s.doRequest(http.MethodPost, "/api/v1/teams", map[string]any{
		"name":    "FC Barcelona",
		"acronym": "FCB",
		"budget":  "100000.00",
	}, &created)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.NotEqual(uuid.Nil, created.ID)
	s.True(created.Budget.Equal(decimal.RequireFromString("100000.00")),
		"budget %s should equal 100000.00 exactly", created.Budget)
	s.Empty(created.Players)

	// merge-patch: only the name changes
	var updated teamModel.TeamResponse
	resp = s.doRequest(http.MethodPut, "/api/v1/teams/"+created.ID.String(), map[string]any{
		"name": "FC Barcelona B",
	}, &updated)
	s.Require().Equal(http.StatusAccepted, resp.StatusCode)
	s.Equal("FC Barcelona B", updated.Name)

	var fetched teamModel.TeamResponse
	resp = s.doRequest(http.MethodGet, "/api/v1/teams/"+created.ID.String(), nil, &fetched)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("FC Barcelona B", fetched.Name)
	s.Equal("FCB", fetched.Acronym)
	s.True(fetched.Budget.Equal(decimal.RequireFromString("100000.00")))

	// delete
	resp = s.doRequest(http.MethodDelete, "/api/v1/teams/"+created.ID.String(), nil, nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.doRequest(http.MethodGet, "/api/v1/teams/"+created.ID.String(), nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestCreateTeamWithPlayers() {
	var created teamModel.TeamResponse
	resp := s.doRequest(http.MethodPost, "/api/v1/teams", map[string]any{
		"name":    "FC Barcelona",
		"acronym": "FCB",
		"budget":  "100000.00",
		"players": []map[string]any{
			{"name": "Ter Stegen", "position": "GOALKEEPER"},
			{"name": "Ronald Araujo", "position": "DEFENDER"},
			{"name": "Pedri", "position": "MIDFIELDER"},
			{"name": "Lewandowski", "position": "ATTACKER"},
		},
	}, &created)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	s.Require().Len(created.Players, 4)
	s.Equal("Ter Stegen", created.Players[0].Name)
	s.Equal("Lewandowski", created.Players[3].Name)

	seen := map[uuid.UUID]bool{}
	for _, p := range created.Players {
		s.NotEqual(uuid.Nil, p.ID)
		s.False(seen[p.ID], "player id %s issued twice", p.ID)
		seen[p.ID] = true
	}

	// deleting the team cascades to its roster
	resp = s.doRequest(http.MethodDelete, "/api/v1/teams/"+created.ID.String(), nil, nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	var count int64
	s.Require().NoError(s.db.Table("players").Count(&count).Error)
	s.EqualValues(0, count)
}

func (s *E2ETestSuite) TestValidationErrors() {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		} `json:"error"`
	}
	resp := s.doRequest(http.MethodPost, "/api/v1/teams", map[string]any{
		"name":    "",
		"acronym": "",
		"budget":  "-5",
	}, &body)
	s.Require().Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("VALIDATION_FAILED", body.Error.Code)
	s.Len(body.Error.Details, 3)

	// nothing was persisted
	var page teamModel.PagedTeamsResponse
	resp = s.doRequest(http.MethodGet, "/api/v1/teams", nil, &page)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.EqualValues(0, page.TotalElements)
}

func (s *E2ETestSuite) TestPagination() {
	for i := 0; i < 15; i++ {
		resp := s.doRequest(http.MethodPost, "/api/v1/teams", map[string]any{
			"name":    fmt.Sprintf("Team %02d", i),
			"acronym": fmt.Sprintf("T%02d", i),
			"budget":  "1000.00",
		}, nil)
		s.Require().Equal(http.StatusCreated, resp.StatusCode)
	}

	var first teamModel.PagedTeamsResponse
	resp := s.doRequest(http.MethodGet, "/api/v1/teams?page=0&page_size=10", nil, &first)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.EqualValues(15, first.TotalElements)
	s.EqualValues(2, first.TotalPages)
	s.Len(first.Items, 10)

	var second teamModel.PagedTeamsResponse
	resp = s.doRequest(http.MethodGet, "/api/v1/teams?page=1&page_size=10", nil, &second)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(second.Items, 5)

	// deterministic order: first page repeated yields the same teams
	var again teamModel.PagedTeamsResponse
	resp = s.doRequest(http.MethodGet, "/api/v1/teams?page=0&page_size=10", nil, &again)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(again.Items, 10)
	for i := range first.Items {
		s.Equal(first.Items[i].ID, again.Items[i].ID)
	}
}

func (s *E2ETestSuite) TestUnknownIDAlwaysNotFound() {
	id := uuid.New().String()

	resp := s.doRequest(http.MethodGet, "/api/v1/teams/"+id, nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.doRequest(http.MethodPut, "/api/v1/teams/"+id, map[string]any{"name": "X"}, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp = s.doRequest(http.MethodDelete, "/api/v1/teams/"+id, nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *E2ETestSuite) TestMalformedID() {
	resp := s.doRequest(http.MethodGet, "/api/v1/teams/42", nil, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
