package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Amund211/gridline/internal/adapters/cache"
	"github.com/Amund211/gridline/internal/adapters/database"
	"github.com/Amund211/gridline/internal/adapters/jobrepository"
	"github.com/Amund211/gridline/internal/adapters/playlistrepository"
	"github.com/Amund211/gridline/internal/adapters/userrepository"
	"github.com/Amund211/gridline/internal/app"
	"github.com/Amund211/gridline/internal/config"
	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/ports"
	"github.com/Amund211/gridline/internal/ratelimiting"
	"github.com/Amund211/gridline/internal/reporting"
	"github.com/Amund211/gridline/internal/telemetry"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "gridline.app"
const STAGING_DOMAIN_SUFFIX = "gridline.pages.dev"

func main() {
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	ctx := context.Background()

	otelShutdown, err := telemetry.SetupOTelSDK(ctx, "gridline")
	if err != nil {
		fail("Failed to initialize OpenTelemetry", "error", err.Error())
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error("Failed to shut down OpenTelemetry", "error", err.Error())
		}
	}()

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	connectionString := config.DatabaseURL()
	if connectionString == "" {
		connectionString = database.LOCAL_CONNECTION_STRING
	}

	logger.Info("Initializing database connection")
	db, err := database.NewPostgresDatabase(connectionString)
	if err != nil {
		fail("Failed to initialize database connection", "error", err.Error())
	}
	logger.Info("Initialized database connection")

	schemaName := database.GetSchemaName(!config.IsProduction())

	err = database.NewDatabaseMigrator(db, logger.With("component", "migrator")).Migrate(ctx, schemaName)
	if err != nil {
		fail("Failed to migrate database", "error", err.Error())
	}

	jobRepo := jobrepository.NewPostgres(db, schemaName)
	playlistRepo := playlistrepository.NewPostgres(db, schemaName)
	userRepo := userrepository.NewPostgres(db, schemaName, func() string { return uuid.New().String() }, time.Now)
	logger.Info("Initialized repositories")

	catalogCache := cache.NewTTLCache[[]domain.Job](1 * time.Minute)

	rateLimiter, stopRateLimiter := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(10),
	)
	defer stopRateLimiter()

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX, STAGING_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	deps := &ports.HandlerDeps{
		AllowedOrigins:   allowedOrigins,
		RootLogger:       logger,
		SentryMiddleware: sentryMiddleware,
		WebsitePassword:  config.WebsitePassword(),
		RateLimiter:      ratelimiting.NewRequestBasedRateLimiter(rateLimiter, ratelimiting.IPKeyFunc),
	}

	listJobs := app.BuildListJobsWithCache(catalogCache, jobRepo)
	saveJob := app.BuildSaveJob(jobRepo, catalogCache, time.Now)
	deleteJob := app.BuildDeleteJob(jobRepo, catalogCache)

	createPlaylist := app.BuildCreatePlaylist(playlistRepo, func() string { return uuid.New().String() }, time.Now)
	getPlaylist := app.BuildGetPlaylist(playlistRepo)
	listPlaylists := app.BuildListPlaylists(playlistRepo)
	renamePlaylist := app.BuildRenamePlaylist(playlistRepo, time.Now)
	deletePlaylist := app.BuildDeletePlaylist(playlistRepo)
	addJobsToPlaylist := app.BuildAddJobsToPlaylist(playlistRepo, time.Now)
	removeJobFromPlaylist := app.BuildRemoveJobFromPlaylist(playlistRepo, time.Now)
	reorderPlaylist := app.BuildReorderPlaylist(playlistRepo, time.Now)
	setPlaylistPlayers := app.BuildSetPlaylistPlayers(playlistRepo, time.Now)
	setPlaylistStats := app.BuildSetPlaylistStats(playlistRepo, time.Now)
	setPlaylistScores := app.BuildSetPlaylistScores(playlistRepo, time.Now)
	getStandings := app.BuildGetStandings(playlistRepo)

	createOrGetUser := app.BuildCreateOrGetUser(userRepo)
	listUsers := app.BuildListUsers(userRepo)
	deleteUser := app.BuildDeleteUser(userRepo, playlistRepo, time.Now)

	corsHandler := ports.BuildCORSHandler(allowedOrigins)

	http.HandleFunc("GET /api", ports.MakeHealthHandler(deps))

	http.HandleFunc("OPTIONS /api/users", corsHandler)
	http.HandleFunc("POST /api/users", ports.MakeCreateOrGetUserHandler(createOrGetUser, deps))
	http.HandleFunc("GET /api/users", ports.MakeListUsersHandler(listUsers, deps))

	http.HandleFunc("OPTIONS /api/users/{username}", corsHandler)
	http.HandleFunc("DELETE /api/users/{username}", ports.MakeDeleteUserHandler(deleteUser, deps))

	http.HandleFunc("OPTIONS /api/jobs", corsHandler)
	http.HandleFunc("POST /api/jobs", ports.MakeSaveJobHandler(saveJob, deps))
	http.HandleFunc("GET /api/jobs", ports.MakeListJobsHandler(listJobs, deps))

	http.HandleFunc("OPTIONS /api/jobs/{url}", corsHandler)
	http.HandleFunc("DELETE /api/jobs/{url}", ports.MakeDeleteJobHandler(deleteJob, deps))

	http.HandleFunc("OPTIONS /api/playlists", corsHandler)
	http.HandleFunc("POST /api/playlists", ports.MakeCreatePlaylistHandler(createPlaylist, deps))
	http.HandleFunc("GET /api/playlists", ports.MakeListPlaylistsHandler(listPlaylists, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}", corsHandler)
	http.HandleFunc("GET /api/playlists/{id}", ports.MakeGetPlaylistHandler(getPlaylist, deps))
	http.HandleFunc("PUT /api/playlists/{id}", ports.MakeRenamePlaylistHandler(renamePlaylist, deps))
	http.HandleFunc("DELETE /api/playlists/{id}", ports.MakeDeletePlaylistHandler(deletePlaylist, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/jobs", corsHandler)
	http.HandleFunc("POST /api/playlists/{id}/jobs", ports.MakeAddJobsToPlaylistHandler(addJobsToPlaylist, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/jobs/{url}", corsHandler)
	http.HandleFunc("DELETE /api/playlists/{id}/jobs/{url}", ports.MakeRemoveJobFromPlaylistHandler(removeJobFromPlaylist, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/reorder", corsHandler)
	http.HandleFunc("POST /api/playlists/{id}/reorder", ports.MakeReorderPlaylistHandler(reorderPlaylist, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/players", corsHandler)
	http.HandleFunc("PUT /api/playlists/{id}/players", ports.MakeSetPlaylistPlayersHandler(setPlaylistPlayers, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/stats", corsHandler)
	http.HandleFunc("PUT /api/playlists/{id}/stats", ports.MakeSetPlaylistStatsHandler(setPlaylistStats, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/scores", corsHandler)
	http.HandleFunc("PUT /api/playlists/{id}/scores", ports.MakeSetPlaylistScoresHandler(setPlaylistScores, deps))

	http.HandleFunc("OPTIONS /api/playlists/{id}/standings", corsHandler)
	http.HandleFunc("GET /api/playlists/{id}/standings", ports.MakeGetStandingsHandler(getStandings, deps))

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), nil)
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
