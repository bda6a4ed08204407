// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmendieta/plotproof/spatial"
)

// mapZoom is the fixed zoom level the map centers on.
const mapZoom = 14

// Server exposes the audit dashboard: an HTML view plus the JSON API the
// view drives. One server owns one session.
type Server struct {
	session *Session
	auditor *Auditor
}

// NewServer creates a dashboard server around a fresh session.
func NewServer(lookup TerritoryLookup) *Server {
	return &Server{
		session: NewSession(),
		auditor: NewAuditor(lookup),
	}
}

// Session exposes the server's session, mainly for tests.
func (s *Server) Session() *Session {
	return s.session
}

// Run serves the dashboard on addr until the process exits.
func (s *Server) Run(addr string) error {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.New("").ParseGlob("templates/*.html")))

	s.registerRoutes(r)

	return r.Run(addr)
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/", s.dashboardView)
	r.POST("/api/points/manual", s.addManualPoint)
	r.POST("/api/points/upload", s.uploadSurvey)
	r.POST("/api/points/reset", s.resetPoints)
	r.POST("/api/session", s.setEntity)
	r.GET("/api/audit", s.runAudit)
	r.GET("/api/export", s.exportGeoJSON)
}

func (s *Server) dashboardView(ctx *gin.Context) {
	operator, commodity := s.session.Entity()

	ctx.HTML(http.StatusOK, "audit.html", gin.H{
		"Operator":    operator,
		"Commodity":   commodity,
		"Commodities": Commodities,
	})
}

// ManualPointRequest carries one manually entered coordinate pair. Values
// default to 0.0 and are accepted without bounds validation.
type ManualPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (s *Server) addManualPoint(ctx *gin.Context) {
	var req ManualPointRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	s.session.AddManual(spatial.Point{Lat: req.Latitude, Lng: req.Longitude})

	ctx.JSON(http.StatusOK, gin.H{"count": s.session.Count()})
}

func (s *Server) uploadSurvey(ctx *gin.Context) {
	file, err := ctx.FormFile("survey")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "survey file is required"})

		return
	}

	f, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	defer f.Close()

	points, err := ParseWorkbook(f)
	if err != nil {
		// Corrupt files and missing columns surface as a message; the
		// imported sequence stays untouched.
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

		return
	}

	s.session.ReplaceImported(points)

	ctx.JSON(http.StatusOK, gin.H{"imported": len(points), "count": s.session.Count()})
}

func (s *Server) resetPoints(ctx *gin.Context) {
	s.session.Reset()

	ctx.JSON(http.StatusOK, gin.H{"count": 0})
}

// EntityRequest carries the operator name and commodity under review.
type EntityRequest struct {
	Operator  string `json:"operator"`
	Commodity string `json:"commodity"`
}

func (s *Server) setEntity(ctx *gin.Context) {
	var req EntityRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if !ValidCommodity(req.Commodity) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown commodity: " + req.Commodity})

		return
	}

	s.session.SetEntity(req.Operator, req.Commodity)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// AuditResponse is the full render payload: everything the map, tooltip, and
// report table need. Recomputed from scratch on every call.
type AuditResponse struct {
	Status      string        `json:"status"`
	Centroid    spatial.Point `json:"centroid"`
	Zoom        int           `json:"zoom"`
	Risk        string        `json:"risk"`
	Fill        [4]int        `json:"fill"`
	Line        [4]int        `json:"line"`
	Tribes      []string      `json:"tribes"`
	Unavailable bool          `json:"unavailable"`
	Locator     string        `json:"locator"`
	Polygon     [][2]float64  `json:"polygon"`
	PointCount  int           `json:"point_count"`
	Operator    string        `json:"operator"`
	Commodity   string        `json:"commodity"`
	Report      []ReportRow   `json:"report"`
}

func (s *Server) runAudit(ctx *gin.Context) {
	points := s.session.Points()

	if len(points) < MinPoints {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "awaiting",
			"point_count": len(points),
			"needed":      MinPoints,
			"message":     "System Ready. Upload an Excel survey or add 3 manual points to generate the verification map.",
		})

		return
	}

	result, err := s.auditor.Run(ctx.Request.Context(), points)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	polygon := make([][2]float64, 0, len(points))
	for _, p := range points {
		polygon = append(polygon, [2]float64{p.Lng, p.Lat})
	}

	tribes := result.Territories
	if tribes == nil {
		tribes = []string{}
	}

	operator, commodity := s.session.Entity()

	ctx.JSON(http.StatusOK, AuditResponse{
		Status:      "ok",
		Centroid:    result.Centroid,
		Zoom:        mapZoom,
		Risk:        result.Risk,
		Fill:        result.Fill,
		Line:        result.Line,
		Tribes:      tribes,
		Unavailable: result.Unavailable,
		Locator:     result.Locator,
		Polygon:     polygon,
		PointCount:  len(points),
		Operator:    operator,
		Commodity:   commodity,
		Report:      BuildReport(result, len(points)),
	})
}

func (s *Server) exportGeoJSON(ctx *gin.Context) {
	points := s.session.Points()

	result, err := s.auditor.Run(ctx.Request.Context(), points)
	if err != nil {
		if errors.Is(err, ErrInsufficientPoints) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})

			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	ctx.JSON(http.StatusOK, Export(points, result))
}
