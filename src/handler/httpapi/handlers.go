package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codescope/src/controller"
	"codescope/src/service/language"
	"codescope/src/util"
)

// AnalyzeRequest is the payload for POST /api/v1/analyze
type AnalyzeRequest struct {
	Path            string   `json:"path" binding:"required"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`
}

// AnalyzeResponse wraps the analysis result
type AnalyzeResponse struct {
	Success        bool    `json:"success"`
	AnalysisResult any     `json:"analysis_result,omitempty"`
	Error          string  `json:"error,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	start := time.Now()

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, AnalyzeResponse{
			Success:        false,
			Error:          err.Error(),
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}

	analysisCtrl := controller.NewAnalysisController(s.cfg)
	report, err := analysisCtrl.Analyze(c.Request.Context(), controller.AnalyzeRequest{
		BaseDir:         req.Path,
		IncludePatterns: req.IncludePatterns,
		ExcludePatterns: req.ExcludePatterns,
	})
	if err != nil {
		util.Error("API analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, AnalyzeResponse{
			Success:        false,
			Error:          err.Error(),
			ProcessingTime: time.Since(start).Seconds(),
		})
		return
	}

	s.analysesRun.Add(1)
	s.filesAnalyzed.Add(int64(report.Summary.TotalFiles))
	s.findingsFound.Add(int64(report.Summary.TotalFindings))
	s.clonesFound.Add(int64(report.Clones.Metrics.TotalClones))

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:        true,
		AnalysisResult: report,
		ProcessingTime: time.Since(start).Seconds(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   s.cfg.Agent.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"components": gin.H{
			"analysis_engine": true,
			"clone_detector":  true,
			"report_writer":   true,
		},
	})
}

func (s *Server) handleSupportedLanguages(c *gin.Context) {
	type entry struct {
		Language   string   `json:"language"`
		Extensions []string `json:"extensions"`
	}

	var languages []entry
	for _, l := range language.Supported() {
		languages = append(languages, entry{
			Language:   string(l.Language),
			Extensions: l.Extensions,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"supported_languages": languages,
		"total":               len(languages),
	})
}

func (s *Server) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"analyses_run":     s.analysesRun.Load(),
		"files_analyzed":   s.filesAnalyzed.Load(),
		"findings_emitted": s.findingsFound.Load(),
		"clones_detected":  s.clonesFound.Load(),
		"uptime_seconds":   time.Since(s.started).Seconds(),
	})
}
