package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jonathan/smarthire/internal/analytics"
	"github.com/jonathan/smarthire/internal/dataset"
	"github.com/jonathan/smarthire/internal/export"
	"github.com/jonathan/smarthire/internal/ranking"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/server/middleware"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
)

// Response wraps a session result with the notifications the action raised.
type Response struct {
	Data          any                  `json:"data"`
	Notifications []types.Notification `json:"notifications,omitempty"`
}

// CandidateRow is one listed candidate with its session flags.
type CandidateRow struct {
	types.ScoredCandidate
	Selected    bool `json:"selected"`
	Shortlisted bool `json:"shortlisted"`
}

// CandidateList is the dashboard listing.
type CandidateList struct {
	View       types.ViewMode    `json:"view"`
	Filters    types.FilterState `json:"filters"`
	Total      int               `json:"total"`
	Count      int               `json:"count"`
	Candidates []CandidateRow    `json:"candidates"`
}

// CandidateDetail is one candidate with the score breakdown for the current filters.
type CandidateDetail struct {
	CandidateRow
	Breakdown ranking.Breakdown `json:"breakdown"`
}

// TeamView is the selected team with its diversity.
type TeamView struct {
	Members        []types.ScoredCandidate `json:"members"`
	Size           int                     `json:"size"`
	Capacity       int                     `json:"capacity"`
	DiversityScore int                     `json:"diversity_score"`
	Insights       analytics.Insights      `json:"insights"`
}

// AutoSelectRequest optionally names the selection strategy.
type AutoSelectRequest struct {
	Strategy string `json:"strategy" validate:"omitempty,oneof=weighted unique-triple"`
}

// ViewRequest switches the listing mode.
type ViewRequest struct {
	Mode types.ViewMode `json:"mode" validate:"required,oneof=all shortlisted selected"`
}

// withSession runs fn on the caller's session and writes its result with
// any notifications raised meanwhile.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*session.Store) (any, error)) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess := s.sessions.get(userID)
	sess.mu.Lock()
	data, err := fn(sess.store)
	notes := sess.notes.Drain()
	sess.mu.Unlock()

	if err != nil {
		writeJSON(w, HTTPStatus(err), map[string]any{
			"error":         err.Error(),
			"notifications": notes,
		})
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: data, Notifications: notes})
}

func rowOf(st *session.Store, c types.ScoredCandidate) CandidateRow {
	return CandidateRow{
		ScoredCandidate: c,
		Selected:        st.IsSelected(c.ID),
		Shortlisted:     st.IsShortlisted(c.ID),
	}
}

func listOf(st *session.Store) CandidateList {
	displayed := st.Displayed()
	rows := make([]CandidateRow, len(displayed))
	for i, c := range displayed {
		rows[i] = rowOf(st, c)
	}
	return CandidateList{
		View:       st.View(),
		Filters:    st.Filters(),
		Total:      len(st.Candidates()),
		Count:      len(rows),
		Candidates: rows,
	}
}

func teamOf(st *session.Store) TeamView {
	members := st.TeamScored()
	return TeamView{
		Members:        members,
		Size:           len(members),
		Capacity:       selection.MaxTeamSize,
		DiversityScore: st.DiversityScore(),
		Insights:       analytics.Explain(members),
	}
}

// candidateID parses the {id} path value and checks it exists in the pool.
func candidateID(r *http.Request, st *session.Store) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrValidation{Field: "id", Message: fmt.Sprintf("not a candidate id: %q", raw)}
	}
	if _, ok := st.Candidate(id); !ok {
		return 0, &ErrCandidateNotFound{ID: id}
	}
	return id, nil
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.authHandler.validator.Struct(v); err != nil {
		return &ErrValidation{Field: "body", Message: extractValidationErrors(err)}
	}
	return nil
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return listOf(st), nil
	})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		id, err := candidateID(r, st)
		if err != nil {
			return nil, err
		}
		c, _ := st.Candidate(id)
		breakdown := ranking.Explain(&c, st.Filters())
		return CandidateDetail{
			CandidateRow: rowOf(st, types.ScoredCandidate{Candidate: c, Score: breakdown.Score}),
			Breakdown:    breakdown,
		}, nil
	})
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return dataset.FacetsOf(st.Candidates()), nil
	})
}

func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return st.Filters(), nil
	})
}

// handleReplaceFilters sets every filter field at once.
func (s *Server) handleReplaceFilters(w http.ResponseWriter, r *http.Request) {
	var req types.FilterState
	if err := s.decode(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.ResetFilters()
		st.SetFilter(types.FilterCategory, req.Category)
		st.SetFilter(types.FilterExperienceLevel, req.ExperienceLevel)
		st.SetFilter(types.FilterLocation, req.Location)
		st.SetFilter(types.FilterSkills, req.Skills)
		st.SetFilter(types.FilterMinScore, strconv.Itoa(req.MinScore))
		return listOf(st), nil
	})
}

// handleSetFilter sets a single filter field.
func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req types.SetFilterRequest
	if err := s.decode(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.SetFilter(types.FilterField(req.Field), req.Value)
		return listOf(st), nil
	})
}

func (s *Server) handleResetFilters(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.ResetFilters()
		return listOf(st), nil
	})
}

func (s *Server) handleSetView(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if err := s.decode(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.SetView(req.Mode)
		return listOf(st), nil
	})
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.ResetAll()
		return listOf(st), nil
	})
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return teamOf(st), nil
	})
}

func (s *Server) handleClearTeam(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.ClearTeam()
		return teamOf(st), nil
	})
}

func (s *Server) handleToggleTeam(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		id, err := candidateID(r, st)
		if err != nil {
			return nil, err
		}
		st.ToggleSelect(id)
		return teamOf(st), nil
	})
}

func (s *Server) handleAutoSelect(w http.ResponseWriter, r *http.Request) {
	var req AutoSelectRequest
	if r.ContentLength != 0 {
		if err := s.decode(r, &req); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	strategy, err := s.selectionStrategy(req.Strategy)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.AutoSelectTeam(strategy)
		return teamOf(st), nil
	})
}

// selectionStrategy builds the named strategy, falling back to the configured one.
func (s *Server) selectionStrategy(name string) (selection.Strategy, error) {
	if name == "" {
		name = s.strategy
	}
	var rng *rand.Rand
	if s.seed != 0 {
		rng = selection.NewSeededRand(s.seed)
	}
	return selection.StrategyByName(name, rng, s.attempts)
}

func (s *Server) handleExportTeam(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess := s.sessions.get(userID)
	sess.mu.Lock()
	payload, err := sess.store.ExportTeam(s.now())
	notes := sess.notes.Drain()
	sess.mu.Unlock()

	if err != nil {
		writeJSON(w, HTTPStatus(err), map[string]any{
			"error":         err.Error(),
			"notifications": notes,
		})
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, payload); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode export: %v", err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(payload)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleGetShortlist(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return st.Shortlist(), nil
	})
}

func (s *Server) handleClearShortlist(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		st.ClearShortlist()
		return st.Shortlist(), nil
	})
}

func (s *Server) handleToggleShortlist(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		id, err := candidateID(r, st)
		if err != nil {
			return nil, err
		}
		st.ToggleShortlist(id)
		return st.Shortlist(), nil
	})
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return analytics.Build(st), nil
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(st *session.Store) (any, error) {
		return analytics.ForSession(st), nil
	})
}
