package domain

import "strconv"

// GridCell is one (race, player) cell in the standings grid.
type GridCell struct {
	// Present reports whether a stat exists for the pair at all.
	Present bool
	DNF     bool
	Points  int
}

// Display renders the cell the way the standings table shows it: the points
// value, "DNF", or blank when the player has no stat for the race.
func (c GridCell) Display() string {
	if !c.Present {
		return ""
	}
	if c.DNF {
		return "DNF"
	}
	return strconv.Itoa(c.Points)
}

// StandingsRow is one race of the grid, with one cell per tracked player in
// column order.
type StandingsRow struct {
	JobURL   string
	JobTitle string
	Cells    []GridCell
}

// Standings is the aggregated view of a playlist's results: per-player point
// totals and a race-by-player placement grid. Players holds the column order.
type Standings struct {
	Players        []string
	PerPlayerTotal map[string]int
	Rows           []StandingsRow
	GrandTotal     int
}
