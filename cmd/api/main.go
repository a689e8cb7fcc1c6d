// @title StudyFlow API
// @description API for study tracker app "StudyFlow": study sessions, daily streak and progress reports
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/limbo/studyflow/docs"
	"github.com/limbo/studyflow/internal/api"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/internal/service"
	"github.com/limbo/studyflow/pkg/cleanup"
	"github.com/limbo/studyflow/pkg/config"
	"github.com/limbo/studyflow/pkg/datebucket"
	jwtservice "github.com/limbo/studyflow/pkg/jwt_service"
	"github.com/pressly/goose"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	service.InitValidator()
}

func setupLogger(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if path := cfg.GetString("LOG_FILE"); path != "" {
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    rotating.Close,
		})
		out = io.MultiWriter(os.Stdout, rotating)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func migrate(connString, dir string) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		log.Fatal("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
}

func main() {
	cfg := config.New()
	setupLogger(cfg)
	defer cleanup.CleanUp()

	offset, err := datebucket.ParseOffset(cfg.GetStringOr("STREAK_UTC_OFFSET", "+05:30"))
	if err != nil {
		log.Fatal("invalid STREAK_UTC_OFFSET: " + err.Error())
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	migrate(dbCfg.ConnString(), cfg.GetStringOr("MIGRATIONS_DIR", "./migrations"))
	pool := repository.NewPool(&dbCfg)

	sessionsRepo := repository.NewSessionsRepo(pool)
	streaksRepo := repository.NewStreaksRepo(pool)
	reportsRepo := repository.NewReportsRepo(pool)
	tx := repository.NewTransactor(pool)

	reportService := service.NewReportsService(sessionsRepo, streaksRepo, reportsRepo, offset)
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(repository.NewUsersRepo(pool)),
		SessionService: service.NewStudySessionsService(tx, sessionsRepo, reportService, offset),
		StreakService:  service.NewStreakService(tx, streaksRepo, offset),
		ReportService:  reportService,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 30*24*time.Hour)),
		DB:             pool,
		Limiter:        api.NewClientLimiter(cfg.GetFloat("RATE_LIMIT_RPS", 10), cfg.GetInt("RATE_LIMIT_BURST", 20)),
		CORSOrigins:    cfg.GetList("CORS_ORIGINS"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.Info("starting studyflow", slog.String("streak_offset", offset.String()))
	err = serv.Run(ctx, cfg.GetString("API_ADDRESS"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
