package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	stddec "github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/store"
)

const (
	msgProfileRequired  = "User financial data is required."
	msgScenariosFailed  = "An error occurred while generating scenarios."
	msgProjectionFailed = "An error occurred while generating projections."
	msgMetricsFailed    = "An error occurred while calculating metrics."
	msgRunsFailed       = "An error occurred while loading run history."
	msgRunNotFound      = "Run not found."
	msgTimedOut         = "The request timed out."
)

// projectionRequest is the body of POST /projections. Rates are annual percentages.
type projectionRequest struct {
	UserFinancialData *domain.FinancialProfile `json:"userFinancialData"`
	ReturnRate        stddec.Decimal           `json:"returnRate"`
	InflationRate     stddec.Decimal           `json:"inflationRate"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
}

func (s *Server) generateScenarios(c *gin.Context) {
	profile, ok := bindProfile(c)
	if !ok {
		return
	}

	result, err := s.planner.RunPlan(c.Request.Context(), *profile, "")
	if err != nil {
		s.respondError(c, err, msgScenariosFailed)
		return
	}

	resp := gin.H{"success": true, "data": result.Scenarios}
	if id := s.recordRun(c, result); id != "" {
		resp["runId"] = id
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) generateProjections(c *gin.Context) {
	var req projectionRequest
	if !decodeBody(c, &req) || req.UserFinancialData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgProfileRequired})
		return
	}

	if errs := s.planner.Validate(*req.UserFinancialData); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	projections := s.planner.GenerateProjections(*req.UserFinancialData, req.ReturnRate, req.InflationRate)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": projections})
}

func (s *Server) dashboardMetrics(c *gin.Context) {
	profile, ok := bindProfile(c)
	if !ok {
		return
	}

	result, err := s.planner.RunPlan(c.Request.Context(), *profile, c.Query("scenario"))
	if err != nil {
		s.respondError(c, err, msgMetricsFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"scenarioId": result.SelectedScenarioID,
		"data":       result.Metrics,
	})
}

func (s *Server) listRuns(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer."})
			return
		}
		limit = n
	}

	runs, err := s.runs.ListRuns(c.Request.Context(), limit)
	if err != nil {
		s.respondError(c, err, msgRunsFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": runs})
}

func (s *Server) getRun(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgRunNotFound})
		return
	}
	if err != nil {
		s.respondError(c, err, msgRunsFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": run})
}

// recordRun stores the result when a run store is configured. Storage
// failures are logged and do not fail the request.
func (s *Server) recordRun(c *gin.Context, result *domain.PlanResult) string {
	if s.runs == nil {
		return ""
	}
	id, err := s.runs.SaveRun(c.Request.Context(), result)
	if err != nil {
		s.log.Warn("failed to record run", zap.String("request_id", RequestIDFrom(c)), zap.Error(err))
		return ""
	}
	return id
}

func (s *Server) respondError(c *gin.Context, err error, message string) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgTimedOut})
	default:
		s.log.Error(message, zap.String("request_id", RequestIDFrom(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": message, "details": err.Error()})
	}
}

// bindProfile decodes a FinancialProfile body and answers 400 when it is
// missing or malformed.
func bindProfile(c *gin.Context) (*domain.FinancialProfile, bool) {
	var profile *domain.FinancialProfile
	if !decodeBody(c, &profile) || profile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgProfileRequired})
		return nil, false
	}
	return profile, true
}

func decodeBody(c *gin.Context, v any) bool {
	data, err := c.GetRawData()
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
