package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/limbo/studyflow/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	sessionService service.StudySessionsServiceI
	streakService  service.StreakServiceI
	reportService  service.ReportsServiceI
	jwtService     JWTServiceI
	db             Pinger
	limiter        *ClientLimiter
	corsOrigins    []string
}

type ServicesList struct {
	UserService    service.UserServiceI
	SessionService service.StudySessionsServiceI
	StreakService  service.StreakServiceI
	ReportService  service.ReportsServiceI
	JwtService     JWTServiceI
	DB             Pinger
	// Optional, requests aren't limited when nil
	Limiter     *ClientLimiter
	CORSOrigins []string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		sessionService: servicesOptions.SessionService,
		streakService:  servicesOptions.StreakService,
		reportService:  servicesOptions.ReportService,
		jwtService:     servicesOptions.JwtService,
		db:             servicesOptions.DB,
		limiter:        servicesOptions.Limiter,
		corsOrigins:    servicesOptions.CORSOrigins,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Limiter keys on the peer address, before RealIP trusts forwarding headers
	s.mx.Use(middleware.Recoverer, s.RateLimitMiddleware, middleware.RealIP)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	if len(s.corsOrigins) > 0 {
		s.mx.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/users/me", s.DeleteAccount)

			r.Route("/study-sessions", func(r chi.Router) {
				r.Post("/start", s.StartSession)
				r.Patch("/end", s.EndSession)
				r.Get("/", s.GetSessions)
				r.Patch("/{id}/report", s.SaveSessionNotes)
				r.Get("/{id}", s.GetSession)
				r.Delete("/{id}", s.DeleteSession)
			})

			r.Get("/streak", s.GetStreak)
			r.Put("/streak/update", s.UpdateStreak)

			r.Route("/reports", func(r chi.Router) {
				r.Post("/generate/{type}", s.GenerateReport)
				r.Get("/", s.GetReports)
				r.Get("/{id}", s.GetReport)
				r.Delete("/{id}", s.DeleteReport)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	if s.limiter != nil {
		s.limiter.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
