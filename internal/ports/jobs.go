package ports

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Amund211/gridline/internal/app"
	"github.com/Amund211/gridline/internal/logging"
)

func MakeListJobsHandler(listJobs app.ListJobs, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("list_jobs", true, false)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		jobs, err := listJobs(ctx)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, jobsToDTOs(jobs))
	}

	return middleware(handler)
}

func MakeSaveJobHandler(saveJob app.SaveJob, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("save_job", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var dto jobDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			writeJSONError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		overwrite := r.URL.Query().Get("overwrite") == "true"

		saved, err := saveJob(ctx, jobFromDTO(dto), overwrite)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		logging.FromContext(ctx).InfoContext(ctx, "Stored scraped job",
			slog.String("url", saved.URL),
			slog.Bool("overwrite", overwrite),
		)

		statusCode := http.StatusCreated
		if overwrite {
			statusCode = http.StatusOK
		}
		writeJSON(ctx, w, statusCode, jobToDTO(saved))
	}

	return middleware(handler)
}

func MakeDeleteJobHandler(deleteJob app.DeleteJob, deps *HandlerDeps) http.HandlerFunc {
	middleware := deps.buildMiddleware("delete_job", true, true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		jobURL, err := url.PathUnescape(r.PathValue("url"))
		if err != nil || jobURL == "" {
			writeJSONError(w, "Invalid job url", http.StatusBadRequest)
			return
		}

		if err := deleteJob(ctx, jobURL); err != nil {
			writeUsecaseError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}

	return middleware(handler)
}
