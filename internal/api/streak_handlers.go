package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/studyflow/pkg/httputil"
)

// @Summary Get streak
// @Tags streak
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /streak [get]
func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	streak, err := s.streakService.GetStreak(ctx, uid)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"streak":  streak,
	})
}

// @Summary Touch streak for today
// @Tags streak
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /streak/update [put]
func (s *Server) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	streak, err := s.streakService.TouchToday(ctx, uid)
	if err != nil {
		logger.Error("update streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "streak updated",
		"streak":  streak.Summary(),
	})
	logger.Info("streak touched", slog.Int("current", streak.CurrentStreak))
}
