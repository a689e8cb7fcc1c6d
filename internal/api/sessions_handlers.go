package api

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/service"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/limbo/studyflow/pkg/httputil"
)

type StartSessionRequest struct {
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	PlannedDuration int    `json:"plannedDuration"`
}

type EndSessionRequest struct {
	SessionID   string `json:"sessionId"`
	ElapsedTime *int   `json:"elapsedTime"`
}

type SaveNotesRequest struct {
	Notes string `json:"notes"`
}

type StreakView struct {
	CurrentStreak int `json:"currentStreak"`
	HighestStreak int `json:"highestStreak"`
}

type EndSessionResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Session     *entity.StudySession `json:"session"`
	Streak      StreakView           `json:"streak"`
	Report      *entity.Report       `json:"report,omitempty"`
	ReportError string               `json:"reportError,omitempty"`
}

type GetSessionsResponse struct {
	Success  bool                   `json:"success"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Count    int                    `json:"count"`
	Sessions []*entity.StudySession `json:"sessions"`
}

// @Summary Start study session
// @Tags study-sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body StartSessionRequest true "Session data"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Router /study-sessions/start [post]
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartSessionRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("start session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionService.StartSession(ctx, uid, service.StartSessionRequest{
		Subject:         req.Subject,
		Topic:           req.Topic,
		PlannedDuration: req.PlannedDuration,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("start session error: invalid session data", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "subject, topic and positive plannedDuration are required", err)
		default:
			logger.Error("start session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "study session started",
		"session": session,
	})
	logger.Info("session started", slog.String("session_id", session.ID.String()))
}

// @Summary End active study session
// @Tags study-sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body EndSessionRequest true "Session id and elapsed time"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /study-sessions/end [patch]
func (s *Server) EndSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("end session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req EndSessionRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("end session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.SessionID == "" {
		logger.Error("end session error: no session id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "sessionId is required", nil)
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		logger.Error("end session error: invalid session id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid sessionId", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	res, err := s.sessionService.EndSession(ctx, uid, service.EndSessionRequest{
		SessionID:   sessionID,
		ElapsedTime: req.ElapsedTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("end session error: invalid elapsed time")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "elapsedTime must not be negative", nil)
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("end session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "study session not found", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("end session error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not authorized to end this session", nil)
		case errors.Is(err, errorvalues.ErrSessionAlreadyEnded):
			logger.Error("end session error: session already ended")
			httputil.WriteErrorResponse(w, http.StatusConflict, "study session already ended", nil)
		default:
			logger.Error("end session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while ending session", nil)
		}
		return
	}
	resp := EndSessionResponse{
		Success: true,
		Message: "study session ended",
		Session: res.Session,
		Report:  res.Report,
	}
	if res.Streak != nil {
		resp.Streak = StreakView{
			CurrentStreak: res.Streak.CurrentStreak,
			HighestStreak: res.Streak.HighestStreak,
		}
	}
	if res.ReportErr != nil {
		logger.Warn("session report wasn't stored", slog.String("error", res.ReportErr.Error()))
		resp.ReportError = "failed to store session report"
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("session ended", slog.String("session_id", sessionID.String()))
}

// @Summary Save session notes
// @Tags study-sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body SaveNotesRequest true "Notes"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /study-sessions/{id}/report [patch]
func (s *Server) SaveSessionNotes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save notes error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("save notes error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	var req SaveNotesRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("save notes error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionService.SaveNotes(ctx, id, uid, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyNotes):
			logger.Error("save notes error: empty notes")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "notes are required", nil)
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("save notes error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "study session not found", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("save notes error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not authorized to update this session", nil)
		default:
			logger.Error("save notes error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving notes", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "notes saved",
		"session": session,
	})
	logger.Info("session notes saved")
}

// @Summary List user sessions
// @Tags study-sessions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]any
// @Router /study-sessions [get]
func (s *Server) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get sessions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit := httputil.QueryInt(r, "limit", 50, 1, 100)
	page := httputil.QueryInt(r, "page", 1, 1, math.MaxInt32)
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	sessions, err := s.sessionService.GetUserSessions(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting sessions list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting sessions list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetSessionsResponse{
		Success:  true,
		Page:     page,
		Limit:    limit,
		Count:    len(sessions),
		Sessions: sessions,
	})
	logger.Info("sessions provided")
}

// @Summary Get session
// @Tags study-sessions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /study-sessions/{id} [get]
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionService.GetSession(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("get session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "study session not found", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get session error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not authorized to view this session", nil)
		default:
			logger.Error("get session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"session": session,
	})
}

// @Summary Delete session
// @Tags study-sessions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /study-sessions/{id} [delete]
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("session deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("session deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.sessionService.DeleteSession(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("session deletion error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "study session not found", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("session deletion error: session has different owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not authorized to delete this session", nil)
		default:
			logger.Error("session deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "study session deleted",
	})
	logger.Info("session deleted")
}
