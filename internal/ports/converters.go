package ports

import (
	"time"

	"github.com/Amund211/gridline/internal/domain"
)

type jobDTO struct {
	URL            string           `json:"url"`
	Title          string           `json:"title"`
	Creator        string           `json:"creator"`
	Description    string           `json:"description,omitempty"`
	Rating         string           `json:"rating,omitempty"`
	GameMode       string           `json:"gameMode,omitempty"`
	RouteType      string           `json:"routeType,omitempty"`
	RouteLength    string           `json:"routeLength,omitempty"`
	Players        string           `json:"players,omitempty"`
	Teams          string           `json:"teams,omitempty"`
	PlayCount      int              `json:"playCount,omitempty"`
	CreationDate   string           `json:"creationDate,omitempty"`
	LastUpdated    string           `json:"lastUpdated,omitempty"`
	LastPlayed     string           `json:"lastPlayed,omitempty"`
	VehicleClasses []string         `json:"vehicleClasses,omitempty"`
	Locations      []string         `json:"locations,omitempty"`
	ScrapedAt      *time.Time       `json:"scrapedAt,omitempty"`
}

func jobToDTO(job domain.Job) jobDTO {
	dto := jobDTO{
		URL:            job.URL,
		Title:          job.Title,
		Creator:        job.Creator,
		Description:    job.Description,
		Rating:         job.Rating,
		GameMode:       job.GameMode,
		RouteType:      job.RouteType,
		RouteLength:    job.RouteLength,
		Players:        job.Players,
		Teams:          job.Teams,
		PlayCount:      job.PlayCount,
		CreationDate:   job.CreationDate,
		LastUpdated:    job.LastUpdated,
		LastPlayed:     job.LastPlayed,
		VehicleClasses: job.VehicleClasses,
		Locations:      job.Locations,
	}
	if !job.ScrapedAt.IsZero() {
		scrapedAt := job.ScrapedAt
		dto.ScrapedAt = &scrapedAt
	}
	return dto
}

func jobFromDTO(dto jobDTO) domain.Job {
	job := domain.Job{
		URL:            dto.URL,
		Title:          dto.Title,
		Creator:        dto.Creator,
		Description:    dto.Description,
		Rating:         dto.Rating,
		GameMode:       dto.GameMode,
		RouteType:      dto.RouteType,
		RouteLength:    dto.RouteLength,
		Players:        dto.Players,
		Teams:          dto.Teams,
		PlayCount:      dto.PlayCount,
		CreationDate:   dto.CreationDate,
		LastUpdated:    dto.LastUpdated,
		LastPlayed:     dto.LastPlayed,
		VehicleClasses: dto.VehicleClasses,
		Locations:      dto.Locations,
	}
	if dto.ScrapedAt != nil {
		job.ScrapedAt = *dto.ScrapedAt
	}
	return job
}

func jobsToDTOs(jobs []domain.Job) []jobDTO {
	dtos := make([]jobDTO, 0, len(jobs))
	for _, job := range jobs {
		dtos = append(dtos, jobToDTO(job))
	}
	return dtos
}

func jobsFromDTOs(dtos []jobDTO) []domain.Job {
	jobs := make([]domain.Job, 0, len(dtos))
	for _, dto := range dtos {
		jobs = append(jobs, jobFromDTO(dto))
	}
	return jobs
}

type playerStatDTO struct {
	Username  string           `json:"username"`
	JobURL    string           `json:"jobUrl"`
	Placement domain.Placement `json:"placement"`
	LapTime   string           `json:"lapTime,omitempty"`
}

func playerStatToDTO(stat domain.PlayerStat) playerStatDTO {
	return playerStatDTO{
		Username:  stat.Username,
		JobURL:    stat.JobURL,
		Placement: stat.Placement,
		LapTime:   stat.LapTime,
	}
}

func playerStatFromDTO(dto playerStatDTO) domain.PlayerStat {
	return domain.PlayerStat{
		Username:  dto.Username,
		JobURL:    dto.JobURL,
		Placement: dto.Placement,
		LapTime:   dto.LapTime,
	}
}

func playerStatsToDTOs(stats []domain.PlayerStat) []playerStatDTO {
	dtos := make([]playerStatDTO, 0, len(stats))
	for _, stat := range stats {
		dtos = append(dtos, playerStatToDTO(stat))
	}
	return dtos
}

func playerStatsFromDTOs(dtos []playerStatDTO) []domain.PlayerStat {
	stats := make([]domain.PlayerStat, 0, len(dtos))
	for _, dto := range dtos {
		stats = append(stats, playerStatFromDTO(dto))
	}
	return stats
}

type playlistDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Jobs      []jobDTO        `json:"jobs"`
	Stats     []playerStatDTO `json:"stats"`
	Players   []string        `json:"players"`
	Scores    map[string]int  `json:"scores"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func playlistToDTO(playlist domain.Playlist) playlistDTO {
	players := playlist.Players
	if players == nil {
		players = []string{}
	}
	scores := playlist.Scores
	if scores == nil {
		scores = map[string]int{}
	}

	return playlistDTO{
		ID:        playlist.ID,
		Name:      playlist.Name,
		Jobs:      jobsToDTOs(playlist.Jobs),
		Stats:     playerStatsToDTOs(playlist.Stats),
		Players:   players,
		Scores:    scores,
		CreatedAt: playlist.CreatedAt,
		UpdatedAt: playlist.UpdatedAt,
	}
}

func playlistsToDTOs(playlists []domain.Playlist) []playlistDTO {
	dtos := make([]playlistDTO, 0, len(playlists))
	for _, playlist := range playlists {
		dtos = append(dtos, playlistToDTO(playlist))
	}
	return dtos
}

type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func userToDTO(user domain.User) userDTO {
	return userDTO{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func usersToDTOs(users []domain.User) []userDTO {
	dtos := make([]userDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, userToDTO(user))
	}
	return dtos
}

type gridCellDTO struct {
	Present bool   `json:"present"`
	Display string `json:"display"`
	Points  int    `json:"points"`
}

type standingsRowDTO struct {
	JobURL   string        `json:"jobUrl"`
	JobTitle string        `json:"jobTitle"`
	Cells    []gridCellDTO `json:"cells"`
}

type standingsDTO struct {
	Players    []string          `json:"players"`
	Totals     map[string]int    `json:"totals"`
	Rows       []standingsRowDTO `json:"rows"`
	GrandTotal int               `json:"grandTotal"`
}

func standingsToDTO(standings domain.Standings) standingsDTO {
	rows := make([]standingsRowDTO, 0, len(standings.Rows))
	for _, row := range standings.Rows {
		cells := make([]gridCellDTO, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, gridCellDTO{
				Present: cell.Present,
				Display: cell.Display(),
				Points:  cell.Points,
			})
		}
		rows = append(rows, standingsRowDTO{
			JobURL:   row.JobURL,
			JobTitle: row.JobTitle,
			Cells:    cells,
		})
	}

	return standingsDTO{
		Players:    standings.Players,
		Totals:     standings.PerPlayerTotal,
		Rows:       rows,
		GrandTotal: standings.GrandTotal,
	}
}
