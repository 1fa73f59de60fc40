package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/mkoskela/gymlog/internal/envstruct"
	"github.com/mkoskela/gymlog/internal/errors"
	"github.com/mkoskela/gymlog/internal/logging"
	"github.com/mkoskela/gymlog/internal/nutrition"
	"github.com/mkoskela/gymlog/internal/program"
	"github.com/mkoskela/gymlog/internal/sqlite"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	templateFS       fs.FS
	database         *sqlite.Database
	programService   *program.Service
	nutritionService *nutrition.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"GYMLOG_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database backing the session store.
	// You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"GYMLOG_SESSIONS_SQLITE_URL" envDefault:"./gymlog-sessions.sqlite3"`
	// ConfigPath is the path to the exercise configuration document.
	ConfigPath string `env:"GYMLOG_CONFIG_PATH" envDefault:"./config.json"`
	// ProgressPath is the path to the progress log document.
	ProgressPath string `env:"GYMLOG_PROGRESS_PATH" envDefault:"./progress_data.json"`
	// NutritionPath is the path to the nutrition document.
	NutritionPath string `env:"GYMLOG_NUTRITION_PATH" envDefault:"./nutrition_data.json"`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"GYMLOG_TEMPLATE_PATH" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	programService, err := program.NewService(cfg.ConfigPath, cfg.ProgressPath, logger)
	if err != nil {
		return errors.Wrap(err, "new program service", slog.String("configPath", cfg.ConfigPath))
	}

	app := application{
		logger:           logger,
		sessionManager:   initializeSessionManager(db),
		templateFS:       os.DirFS(htmlTemplatePath),
		database:         db,
		programService:   programService,
		nutritionService: nutrition.NewService(cfg.NutritionPath, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                                //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
