package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pamirlabs/glacier-atlas/internal/catalog"
	"github.com/pamirlabs/glacier-atlas/internal/mesh"
	"github.com/pamirlabs/glacier-atlas/internal/models"
	"github.com/pamirlabs/glacier-atlas/internal/repository"
	"github.com/pamirlabs/glacier-atlas/internal/scene"
	"github.com/pamirlabs/glacier-atlas/internal/simulation"
	"github.com/pamirlabs/glacier-atlas/internal/stream"
)

type Handler struct {
	catalog     *catalog.Catalog
	meshes      *mesh.Cache
	runner      *simulation.Runner
	repo        repository.SimulationRepository
	broadcaster *stream.Broadcaster

	defaultResolution int
	maxResolution     int
}

func NewHandler(
	cat *catalog.Catalog,
	meshes *mesh.Cache,
	runner *simulation.Runner,
	repo repository.SimulationRepository,
	broadcaster *stream.Broadcaster,
	defaultResolution, maxResolution int,
) *Handler {
	return &Handler{
		catalog:           cat,
		meshes:            meshes,
		runner:            runner,
		repo:              repo,
		broadcaster:       broadcaster,
		defaultResolution: defaultResolution,
		maxResolution:     maxResolution,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	r.GET("/api/glaciers", h.getGlaciers)
	r.GET("/api/glaciers/:id", h.getGlacier)

	geom := RateLimit(geometryRequestsPerSec, 2*geometryRequestsPerSec)
	r.GET("/api/glaciers/:id/terrain", geom, h.getTerrain)
	r.GET("/api/glaciers/:id/mesh", geom, h.getMesh)
	r.GET("/api/glaciers/:id/scene", geom, h.getScene)

	r.GET("/api/layers", h.getLayers)
	r.GET("/api/stats", h.getStats)

	r.POST("/api/simulations", h.createSimulation)
	r.GET("/api/simulations", h.listSimulations)
	r.GET("/api/simulations/stream", h.streamSimulations)
	r.GET("/api/simulations/:id", h.getSimulation)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getGlaciers(c *gin.Context) {
	glaciers := h.catalog.All()

	if region := c.Query("region"); region != "" {
		glaciers = filterGlaciers(glaciers, func(g *models.Glacier) bool {
			return g.Region == region
		})
	}
	if status := c.Query("status"); status != "" {
		s := models.GlacierStatus(status)
		glaciers = filterGlaciers(glaciers, func(g *models.Glacier) bool {
			return g.Status == s
		})
	}
	if risk := c.Query("risk"); risk != "" {
		rl := models.RiskLevel(risk)
		glaciers = filterGlaciers(glaciers, func(g *models.Glacier) bool {
			return g.Risk == rl
		})
	}
	if m := c.Query("min_area"); m != "" {
		if minArea, err := strconv.ParseFloat(m, 64); err == nil {
			glaciers = filterGlaciers(glaciers, func(g *models.Glacier) bool {
				return g.AreaKm2 >= minArea
			})
		}
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim < len(glaciers) {
			glaciers = glaciers[:lim]
		}
	}

	fc := toGeoJSON(glaciers)
	c.Header("Content-Type", "application/geo+json")
	c.JSON(http.StatusOK, fc)
}

func (h *Handler) getGlacier(c *gin.Context) {
	g := h.catalog.ByID(c.Param("id"))
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "glacier not found"})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *Handler) getTerrain(c *gin.Context) {
	g := h.catalog.ByID(c.Param("id"))
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "glacier not found"})
		return
	}
	c.JSON(http.StatusOK, h.meshes.Terrain(h.resolution(c), g))
}

func (h *Handler) getMesh(c *gin.Context) {
	g := h.catalog.ByID(c.Param("id"))
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "glacier not found"})
		return
	}
	c.JSON(http.StatusOK, h.meshes.GlacierBody(h.resolution(c), g))
}

func (h *Handler) getScene(c *gin.Context) {
	g := h.catalog.ByID(c.Param("id"))
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "glacier not found"})
		return
	}
	c.JSON(http.StatusOK, scene.Compose(g, h.meshes, h.resolution(c)))
}

func (h *Handler) getLayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"layers": h.catalog.Layers()})
}

func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

func (h *Handler) createSimulation(c *gin.Context) {
	var in models.SimulationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if in.GlacierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "glacier_id is required"})
		return
	}
	g := h.catalog.ByID(in.GlacierID)
	if g == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown glacier: " + in.GlacierID})
		return
	}
	if !in.Stress.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stress_type must be rockfall, seismic or warming"})
		return
	}
	if in.Intensity < simulation.MinIntensity || in.Intensity > simulation.MaxIntensity {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intensity must be in [10,100]"})
		return
	}
	if in.TemperatureDelta < simulation.MinTempDelta || in.TemperatureDelta > simulation.MaxTempDelta {
		c.JSON(http.StatusBadRequest, gin.H{"error": "temperature_delta must be in [1,10]"})
		return
	}

	run, err := h.runner.Start(c.Request.Context(), g, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start simulation"})
		return
	}
	c.JSON(http.StatusCreated, run)
}

func (h *Handler) listSimulations(c *gin.Context) {
	filter := repository.Filter{Limit: 20}

	if id := c.Query("glacier_id"); id != "" {
		filter.GlacierID = &id
	}
	if s := c.Query("stress_type"); s != "" {
		st := models.StressType(s)
		if st.Valid() {
			filter.Stress = &st
		}
	}
	if l := c.Query("limit"); l != "" {
		if lim, err := strconv.Atoi(l); err == nil && lim > 0 && lim <= 500 {
			filter.Limit = lim
		}
	}

	runs, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list simulations"})
		return
	}
	if runs == nil {
		runs = []models.SimulationRun{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handler) getSimulation(c *gin.Context) {
	run, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch simulation"})
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "simulation not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}

// resolution parses the ?resolution query, clamped to the configured bounds.
func (h *Handler) resolution(c *gin.Context) int {
	res := h.defaultResolution
	if r := c.Query("resolution"); r != "" {
		if v, err := strconv.Atoi(r); err == nil && v >= 2 {
			res = v
		}
	}
	if res > h.maxResolution {
		res = h.maxResolution
	}
	return res
}

func filterGlaciers(in []models.Glacier, pred func(*models.Glacier) bool) []models.Glacier {
	out := in[:0:0]
	for i := range in {
		if pred(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}
