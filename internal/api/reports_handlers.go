package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/service"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/limbo/studyflow/pkg/httputil"
)

type CustomReportRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// @Summary Generate report
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param type path string true "weekly, monthly or custom"
// @Param input body CustomReportRequest false "Bounds, custom only"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httputil.ErrorResponse
// @Router /reports/generate/{type} [post]
func (s *Server) GenerateReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("generate report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req := service.GenerateReportRequest{
		Type: entity.ReportType(r.PathValue("type")),
	}
	if req.Type == entity.ReportCustom {
		var body CustomReportRequest
		err = httputil.DecodeJSON(w, r, &body)
		if err != nil {
			logger.Error("generate report error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		req.StartDate = body.StartDate
		req.EndDate = body.EndDate
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	generated, err := s.reportService.GenerateReport(ctx, uid, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidReportType):
			logger.Error("generate report error: invalid report type", slog.String("type", string(req.Type)))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report type", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("generate report error: invalid bounds", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "startDate and endDate are required for custom reports", err)
		case errors.Is(err, errorvalues.ErrInvalidDateRange):
			logger.Error("generate report error: end before start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "endDate must not be before startDate", nil)
		case errors.Is(err, errorvalues.ErrNoSessionsInPeriod):
			logger.Error("generate report error: no sessions in period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "no completed study sessions in this period", nil)
		default:
			logger.Error("generate report error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while generating report", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": string(req.Type) + " report generated",
		"report":  generated.Report,
		"stats":   generated.Stats,
	})
	logger.Info("report generated", slog.String("type", string(req.Type)))
}

// @Summary List user reports
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /reports [get]
func (s *Server) GetReports(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reports error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	reports, err := s.reportService.GetUserReports(ctx, uid)
	if err != nil {
		logger.Error("getting reports list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting reports list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(reports),
		"reports": reports,
	})
}

// @Summary Get report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httputil.ErrorResponse
// @Router /reports/{id} [get]
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get report error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	report, err := s.reportService.GetReport(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReportNotFound):
			logger.Error("get report error: unexist report")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "report not found", nil)
		default:
			logger.Error("get report error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting report", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  report,
	})
}

// @Summary Delete report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httputil.ErrorResponse
// @Router /reports/{id} [delete]
func (s *Server) DeleteReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("report deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("report deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.reportService.DeleteReport(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReportNotFound):
			logger.Error("report deletion error: unexist report")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "report not found", nil)
		default:
			logger.Error("report deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting report", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "report deleted",
	})
	logger.Info("report deleted")
}
