package ports

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Amund211/gridline/internal/app"
)

func MakeCreatePlaylistHandler(createPlaylist app.CreatePlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("create_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		playlist, err := createPlaylist(ctx, body.Name)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusCreated, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeGetPlaylistHandler(getPlaylist app.GetPlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("get_playlist", true, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		playlist, err := getPlaylist(ctx, r.PathValue("id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeListPlaylistsHandler(listPlaylists app.ListPlaylists, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("list_playlists", true, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		playlists, err := listPlaylists(ctx)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistsToDTOs(playlists))
	}

	return middleware(handler)
}

func MakeRenamePlaylistHandler(renamePlaylist app.RenamePlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("rename_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		playlist, err := renamePlaylist(ctx, r.PathValue("id"), body.Name)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeDeletePlaylistHandler(deletePlaylist app.DeletePlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("delete_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := deletePlaylist(ctx, r.PathValue("id")); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}

	return middleware(handler)
}

func MakeAddJobsToPlaylistHandler(addJobs app.AddJobsToPlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("add_jobs_to_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Jobs []jobDTO `json:"jobs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		playlist, err := addJobs(ctx, r.PathValue("id"), jobsFromDTOs(body.Jobs))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeRemoveJobFromPlaylistHandler(removeJob app.RemoveJobFromPlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("remove_job_from_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		jobURL, err := url.PathUnescape(r.PathValue("url"))
		if err != nil || jobURL == "" {
			writeJSONError(w, "Invalid job url", http.StatusBadRequest)
			return
		}

		playlist, err := removeJob(ctx, r.PathValue("id"), jobURL)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeReorderPlaylistHandler(reorderPlaylist app.ReorderPlaylist, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("reorder_playlist", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			FromIndex *int `json:"fromIndex"`
			ToIndex   *int `json:"toIndex"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if body.FromIndex == nil || body.ToIndex == nil {
			writeJSONError(w, "fromIndex and toIndex are required", http.StatusBadRequest)
			return
		}

		playlist, err := reorderPlaylist(ctx, r.PathValue("id"), *body.FromIndex, *body.ToIndex)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeSetPlaylistPlayersHandler(setPlayers app.SetPlaylistPlayers, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("set_playlist_players", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Players []string `json:"players"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if len(body.Players) == 0 {
			writeJSONError(w, "players must not be empty", http.StatusBadRequest)
			return
		}

		playlist, err := setPlayers(ctx, r.PathValue("id"), body.Players)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeSetPlaylistStatsHandler(setStats app.SetPlaylistStats, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("set_playlist_stats", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Stats []playerStatDTO `json:"stats"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		playlist, err := setStats(ctx, r.PathValue("id"), playerStatsFromDTOs(body.Stats))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeSetPlaylistScoresHandler(setScores app.SetPlaylistScores, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("set_playlist_scores", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Scores map[string]int `json:"scores"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		playlist, err := setScores(ctx, r.PathValue("id"), body.Scores)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, playlistToDTO(playlist))
	}

	return middleware(handler)
}

func MakeGetStandingsHandler(getStandings app.GetStandings, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("get_standings", true, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		standings, err := getStandings(ctx, r.PathValue("id"))
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, standingsToDTO(standings))
	}

	return middleware(handler)
}
