// Package observability provides formatted, human-readable output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/smarthire/internal/analytics"
	"github.com/jonathan/smarthire/internal/ranking"
	"github.com/jonathan/smarthire/internal/selection"
	"github.com/jonathan/smarthire/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func scoreText(score *int) string {
	if score == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", *score)
}

// PrintCandidates outputs the first limit candidates of a ranked list.
// A limit of zero or less shows maxItemsToShow candidates.
func (p *Printer) PrintCandidates(scored []types.ScoredCandidate, limit int) {
	if limit <= 0 {
		limit = maxItemsToShow
	}

	var sb strings.Builder
	count := min(len(scored), limit)
	sb.WriteString(fmt.Sprintf("Showing %d of %d candidates\n", count, len(scored)))

	for i := 0; i < count; i++ {
		c := scored[i]
		sb.WriteString(fmt.Sprintf("\n#%d  %s (id %d)\n", i+1, c.Name, c.ID))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", c.Category, c.ExperienceLevel, c.Location))
		sb.WriteString(fmt.Sprintf("    Score: %s\n", scoreText(c.Score)))
		if len(c.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", strings.Join(c.Skills, ", ")))
		}
	}

	if len(scored) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates\n", len(scored)-count))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs how a candidate's score was put together.
func (p *Printer) PrintBreakdown(c *types.Candidate, b ranking.Breakdown) {
	if c == nil {
		return
	}

	var sb strings.Builder
	if !b.FiltersApplied {
		sb.WriteString("No filters set; candidates are not scored.")
		p.printBox("SCORE BREAKDOWN: "+c.Name, sb.String())
		return
	}

	line := func(label string, got, limit int) {
		if limit > 0 {
			sb.WriteString(fmt.Sprintf("%-12s %3d / %d\n", label, got, limit))
		}
	}
	line("Category", b.Category, b.CategoryMax)
	line("Experience", b.Experience, b.ExperienceMax)
	line("Location", b.Location, b.LocationMax)
	line("Skills", b.Skills, b.SkillsMax)
	line("Quality", b.Quality, b.QualityMax)
	if len(b.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:     %s\n", strings.Join(b.MatchedSkills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("\nTotal        %3d / %d  →  %s", b.Points, b.MaxPoints, scoreText(b.Score)))

	p.printBox("SCORE BREAKDOWN: "+c.Name, sb.String())
}

// PrintTeam outputs the selected team with its insights.
func (p *Printer) PrintTeam(team []types.ScoredCandidate, insights analytics.Insights) {
	if len(team) == 0 {
		p.printBox("SELECTED TEAM", "No candidates selected.")
		return
	}

	var sb strings.Builder
	for i, c := range team {
		sb.WriteString(fmt.Sprintf("%d. %s (id %d)\n", i+1, c.Name, c.ID))
		sb.WriteString(fmt.Sprintf("   %s · %s · %s\n", c.Category, c.ExperienceLevel, c.Location))
	}

	sb.WriteString(fmt.Sprintf("\nDiversity:     %d%%\n", insights.DiversityScore))
	sb.WriteString(fmt.Sprintf("Categories:    %d\n", insights.CategoriesCount))
	sb.WriteString(fmt.Sprintf("Avg score:     %s\n", scoreText(insights.AverageScore)))
	sb.WriteString(fmt.Sprintf("Salary range:  $%d - $%d\n", insights.SalaryMin, insights.SalaryMax))

	if len(insights.Reasons) > 0 {
		sb.WriteString("\nWhy this team works:\n")
		for _, r := range insights.Reasons {
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	p.printBox(fmt.Sprintf("SELECTED TEAM (%d/%d)", len(team), selection.MaxTeamSize), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalytics outputs the distribution and headline stats of a session.
func (p *Printer) PrintAnalytics(report analytics.Report) {
	d := report.Distribution

	var sb strings.Builder
	sb.WriteString(d.Description() + "\n")
	sb.WriteString(fmt.Sprintf("Applicants: %d   Shortlisted: %d   Team: %s   Diversity: %d%%\n",
		report.Stats.TotalApplicants, report.Stats.Shortlisted, report.Stats.TeamLabel(), report.Stats.DiversityScore))

	section := func(title string, counts []analytics.Count) {
		if len(counts) == 0 {
			return
		}
		sb.WriteString("\n" + title + ":\n")
		shown := min(len(counts), maxItemsToShow)
		for _, c := range counts[:shown] {
			sb.WriteString(fmt.Sprintf("  %-28s %d\n", c.Name, c.Value))
		}
		if len(counts) > shown {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(counts)-shown))
		}
	}
	section("Categories", d.Categories)
	section("Locations", d.Locations)
	section("Experience", d.Experience)
	section("Top skills", d.Skills)

	p.printBox(strings.ToUpper(d.Title("Candidate Analytics")), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNotification outputs a single session notification.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotification(n types.Notification) {
	fmt.Fprintf(p.out, "[%s] %s\n", n.Severity, n.Message)
}
