package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lotogen/adapters/excel"
	"lotogen/app"
	"lotogen/domain/core"
	"lotogen/internal/generator"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate runs one generation round. Body fields: count,
// strategy, mode, persist.
func (s *Server) handleGenerate(c *gin.Context) {
	var req struct {
		Count    int    `json:"count"`
		Strategy string `json:"strategy"`
		Mode     string `json:"mode"`
		Persist  bool   `json:"persist"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	result, err := s.generation.Generate(c.Request.Context(), app.GenerateRequest{
		Count:    req.Count,
		Strategy: generator.StrategyName(req.Strategy),
		Mode:     app.GenerationMode(req.Mode),
		Persist:  req.Persist,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleConfer settles pending games against the official result of
// one contest and reports the adapted weights.
func (s *Server) handleConfer(c *gin.Context) {
	contest, err := strconv.Atoi(c.Param("contest"))
	if err != nil || contest <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contest number"})
		return
	}

	result, err := s.reconcile.Reconcile(c.Request.Context(), contest)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleClassify checks a combination against the anomaly rules.
func (s *Server) handleClassify(c *gin.Context) {
	var req struct {
		Numerals []int `json:"numerals"`
		Contest  int   `json:"contest"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.analysis.Classify(c.Request.Context(), req.Numerals, req.Contest)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleValidate checks a combination against the constraint profile
// of a generation mode.
func (s *Server) handleValidate(c *gin.Context) {
	var req struct {
		Numerals []int  `json:"numerals"`
		Mode     string `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	outcome, err := app.ValidateCombination(req.Numerals, app.GenerationMode(req.Mode))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// handleImport loads draw history from a spreadsheet on the server
// filesystem.
func (s *Server) handleImport(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	result, err := s.importer.Import(c.Request.Context(), excel.NewHistoryReader(req.Path))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleContext(c *gin.Context) {
	snapshot, err := s.analysis.Snapshot(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) handleBaseline(c *gin.Context) {
	baseline, err := s.analysis.Baseline(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, baseline)
}

func (s *Server) handleListDraws(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = v
	}

	history, err := s.draws.ListDraws(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draws": history, "count": len(history)})
}

func (s *Server) handleLatestDraw(c *gin.Context) {
	draw, err := s.draws.LatestDraw(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

func (s *Server) handleSessionGames(c *gin.Context) {
	sessionID, err := core.ParseSessionID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	games, err := s.games.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
}

func (s *Server) handleGetGame(c *gin.Context) {
	gameID, err := core.ParseGameID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	g, err := s.games.GetGame(c.Request.Context(), gameID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// fail maps domain errors to HTTP status codes.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
