package app

import (
	"github.com/Amund211/gridline/internal/domain"
)

// ComputeStandings aggregates a playlist's results into per-player point
// totals and a race-by-player grid.
//
// The tracked player set is the union of the playlist roster and the distinct
// usernames appearing in its stats, so a rostered player with no results
// still shows up with a total of 0. Column order is deterministic: roster
// order first, then stat-only usernames in first-appearance order.
func ComputeStandings(playlist domain.Playlist) domain.Standings {
	players := trackedPlayers(playlist)

	perPlayerTotal := make(map[string]int, len(players))
	for _, player := range players {
		perPlayerTotal[player] = 0
	}

	statByPair := make(map[string]map[string]domain.PlayerStat, len(players))
	for _, stat := range playlist.Stats {
		if _, tracked := perPlayerTotal[stat.Username]; !tracked {
			// Stat for an untracked player (e.g. removed from the roster
			// after the union was narrowed) contributes nothing and gets no
			// grid exposure.
			continue
		}

		perPlayerTotal[stat.Username] += stat.Placement.Points()

		byJob, ok := statByPair[stat.Username]
		if !ok {
			byJob = make(map[string]domain.PlayerStat)
			statByPair[stat.Username] = byJob
		}
		byJob[stat.JobURL] = stat
	}

	rows := make([]domain.StandingsRow, 0, len(playlist.Jobs))
	for _, job := range playlist.Jobs {
		cells := make([]domain.GridCell, 0, len(players))
		for _, player := range players {
			stat, ok := statByPair[player][job.URL]
			if !ok {
				cells = append(cells, domain.GridCell{})
				continue
			}
			cells = append(cells, domain.GridCell{
				Present: true,
				DNF:     stat.Placement.IsDNF(),
				Points:  stat.Placement.Points(),
			})
		}
		rows = append(rows, domain.StandingsRow{
			JobURL:   job.URL,
			JobTitle: job.Title,
			Cells:    cells,
		})
	}

	grandTotal := 0
	for _, total := range perPlayerTotal {
		grandTotal += total
	}

	return domain.Standings{
		Players:        players,
		PerPlayerTotal: perPlayerTotal,
		Rows:           rows,
		GrandTotal:     grandTotal,
	}
}

func trackedPlayers(playlist domain.Playlist) []string {
	players := make([]string, 0, len(playlist.Players))
	seen := make(map[string]struct{}, len(playlist.Players))

	for _, player := range playlist.Players {
		if _, ok := seen[player]; ok {
			continue
		}
		seen[player] = struct{}{}
		players = append(players, player)
	}

	for _, stat := range playlist.Stats {
		if _, ok := seen[stat.Username]; ok {
			continue
		}
		seen[stat.Username] = struct{}{}
		players = append(players, stat.Username)
	}

	return players
}
