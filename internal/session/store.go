// Package session holds the state of one dashboard session: filters, the
// selected team, the shortlist and the view mode.
//
// A Store is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
package session

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/smarthire/internal/ranking"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/types"
)

// ErrEmptyTeam is returned when exporting a session with no selected team.
var ErrEmptyTeam = errors.New("cannot export empty team")

// Notification messages.
const (
	MsgReset         = "🔄 All selections and filters have been reset!"
	MsgExported      = "📥 Team data exported successfully!"
	MsgExportEmpty   = "Cannot export an empty team. Select at least one candidate first."
	MsgNoCandidates  = "No candidates available for team selection."
	msgAutoSelectFmt = "🎯 Auto-selected a %d-member team with %d%% diversity!"
)

// Store is the single owner of a session's selection state. Every derived
// view is recomputed from the current state on each call.
type Store struct {
	pool     []types.Candidate
	index    map[int]int
	filters  types.FilterState
	team     []int
	short    []int
	view     types.ViewMode
	notifier Notifier
}

// New creates a Store over a classified candidate pool. A nil notifier drops notifications.
func New(pool []types.Candidate, notifier Notifier) *Store {
	if notifier == nil {
		notifier = discard{}
	}
	index := make(map[int]int, len(pool))
	for i, c := range pool {
		index[c.ID] = i
	}
	return &Store{
		pool:     pool,
		index:    index,
		view:     types.ViewAll,
		notifier: notifier,
	}
}

// Candidate looks up a candidate by id.
func (s *Store) Candidate(id int) (types.Candidate, bool) {
	i, ok := s.index[id]
	if !ok {
		return types.Candidate{}, false
	}
	return s.pool[i], true
}

// ToggleSelect removes the candidate from the team if present, otherwise adds
// it when the team has room. Unknown ids are ignored.
func (s *Store) ToggleSelect(id int) {
	if _, ok := s.index[id]; !ok {
		return
	}
	if i := slices.Index(s.team, id); i >= 0 {
		s.team = slices.Delete(s.team, i, i+1)
		return
	}
	if len(s.team) < selection.MaxTeamSize {
		s.team = append(s.team, id)
	}
}

// ToggleShortlist adds or removes the candidate from the shortlist. Unknown ids are ignored.
func (s *Store) ToggleShortlist(id int) {
	if _, ok := s.index[id]; !ok {
		return
	}
	if i := slices.Index(s.short, id); i >= 0 {
		s.short = slices.Delete(s.short, i, i+1)
		return
	}
	s.short = append(s.short, id)
}

// SetFilter sets one filter field from its text value. Unknown fields and
// values outside a field's domain leave the filters unchanged. minScore is
// clamped to [0, 100].
func (s *Store) SetFilter(field types.FilterField, value string) {
	switch field {
	case types.FilterCategory:
		if value == "" || slices.Contains(categories, types.Category(value)) {
			s.filters.Category = value
		}
	case types.FilterExperienceLevel:
		if value == "" || slices.Contains(types.ExperienceLevels, types.ExperienceLevel(value)) {
			s.filters.ExperienceLevel = value
		}
	case types.FilterLocation:
		s.filters.Location = value
	case types.FilterSkills:
		s.filters.Skills = value
	case types.FilterMinScore:
		value = strings.TrimSpace(value)
		if value == "" {
			s.filters.MinScore = 0
			return
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		s.filters.MinScore = max(0, min(n, 100))
	}
}

var categories = []types.Category{
	types.CategoryEngineering,
	types.CategoryDesign,
	types.CategoryProduct,
	types.CategoryLegal,
	types.CategoryMarketing,
	types.CategorySales,
	types.CategoryOther,
}

// SetView switches the listed candidates. Unknown modes are ignored.
func (s *Store) SetView(mode types.ViewMode) {
	if mode.Valid() {
		s.view = mode
	}
}

// ClearTeam empties the selected team.
func (s *Store) ClearTeam() {
	s.team = nil
}

// ClearShortlist empties the shortlist.
func (s *Store) ClearShortlist() {
	s.short = nil
}

// ResetFilters clears every filter field.
func (s *Store) ResetFilters() {
	s.filters = types.FilterState{}
}

// ResetAll clears the team, the shortlist and the filters.
func (s *Store) ResetAll() {
	s.ClearTeam()
	s.ClearShortlist()
	s.ResetFilters()
	s.notifier.Notify(types.Notification{Message: MsgReset, Severity: types.SeveritySuccess})
}

// ReplaceTeam replaces the team with the given members, in order. Unknown
// and repeated ids are skipped and at most MaxTeamSize members are kept.
func (s *Store) ReplaceTeam(team []types.Candidate) {
	ids := make([]int, 0, selection.MaxTeamSize)
	for _, c := range team {
		if len(ids) == selection.MaxTeamSize {
			break
		}
		if _, ok := s.index[c.ID]; ok && !slices.Contains(ids, c.ID) {
			ids = append(ids, c.ID)
		}
	}
	s.team = ids
}

// AutoSelectTeam replaces the team with the strategy's pick from the whole
// scored pool and returns the new team.
func (s *Store) AutoSelectTeam(strategy selection.Strategy) []types.ScoredCandidate {
	if len(s.pool) == 0 {
		s.notifier.Notify(types.Notification{Message: MsgNoCandidates, Severity: types.SeverityWarning})
		return nil
	}

	team := strategy.Select(s.Scored())
	s.ReplaceTeam(selection.Members(team))
	s.notifier.Notify(types.Notification{
		Message:  fmt.Sprintf(msgAutoSelectFmt, len(s.team), s.DiversityScore()),
		Severity: types.SeveritySuccess,
	})
	return s.TeamScored()
}

// ExportTeam builds the export payload for the current team. It fails with
// ErrEmptyTeam when no candidate is selected.
func (s *Store) ExportTeam(now time.Time) (*types.TeamExport, error) {
	if len(s.team) == 0 {
		s.notifier.Notify(types.Notification{Message: MsgExportEmpty, Severity: types.SeverityError})
		return nil, ErrEmptyTeam
	}

	team := s.TeamScored()
	members := make([]types.TeamMember, len(team))
	for i, c := range team {
		members[i] = types.NewTeamMember(c)
	}

	export := &types.TeamExport{
		ExportID:       uuid.New(),
		ExportedAt:     now.UTC(),
		Filters:        s.filters,
		DiversityScore: s.DiversityScore(),
		TeamSize:       len(members),
		Members:        members,
	}
	s.notifier.Notify(types.Notification{Message: MsgExported, Severity: types.SeveritySuccess})
	return export, nil
}

// Candidates returns the whole pool in load order.
func (s *Store) Candidates() []types.Candidate {
	return s.pool
}

// Scored returns the whole pool scored against the current filters, best first.
func (s *Store) Scored() []types.ScoredCandidate {
	return ranking.ScoreAll(s.pool, s.filters)
}

// Filtered returns the scored candidates passing the current filters.
func (s *Store) Filtered() []types.ScoredCandidate {
	return ranking.Filter(s.Scored(), s.filters)
}

// Displayed returns the candidates listed in the current view. The
// shortlisted and selected views ignore the filters but keep score order.
func (s *Store) Displayed() []types.ScoredCandidate {
	switch s.view {
	case types.ViewShortlisted:
		return s.scoredWithin(s.short)
	case types.ViewSelected:
		return s.scoredWithin(s.team)
	default:
		return s.Filtered()
	}
}

func (s *Store) scoredWithin(ids []int) []types.ScoredCandidate {
	var out []types.ScoredCandidate
	for _, c := range s.Scored() {
		if slices.Contains(ids, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Team returns the selected members in insertion order.
func (s *Store) Team() []types.Candidate {
	team := make([]types.Candidate, len(s.team))
	for i, id := range s.team {
		team[i] = s.pool[s.index[id]]
	}
	return team
}

// TeamScored returns the selected members in insertion order, scored against the current filters.
func (s *Store) TeamScored() []types.ScoredCandidate {
	team := make([]types.ScoredCandidate, len(s.team))
	for i, id := range s.team {
		c := &s.pool[s.index[id]]
		team[i] = types.ScoredCandidate{Candidate: *c, Score: ranking.Score(c, s.filters)}
	}
	return team
}

// TeamIDs returns the selected ids in insertion order.
func (s *Store) TeamIDs() []int {
	return slices.Clone(s.team)
}

// Shortlist returns the shortlisted ids in the order they were added.
func (s *Store) Shortlist() []int {
	return slices.Clone(s.short)
}

// IsSelected reports whether the candidate is on the team.
func (s *Store) IsSelected(id int) bool {
	return slices.Contains(s.team, id)
}

// IsShortlisted reports whether the candidate is shortlisted.
func (s *Store) IsShortlisted(id int) bool {
	return slices.Contains(s.short, id)
}

// Filters returns the current filter values.
func (s *Store) Filters() types.FilterState {
	return s.filters
}

// View returns the current view mode.
func (s *Store) View() types.ViewMode {
	return s.view
}

// HasActiveFilters reports whether any filter is set.
func (s *Store) HasActiveFilters() bool {
	return s.filters.IsActive()
}

// DiversityScore returns the diversity of the selected team.
func (s *Store) DiversityScore() int {
	return selection.Diversity(s.Team())
}
