package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/engine"
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
	"github.com/tsmith4014/gridiron-guru-ai/internal/services"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/utils"
)

// DraftHandler serves recommendation passes. The cache is optional;
// with no redis configured every request hits the engine directly.
type DraftHandler struct {
	engine   *engine.Engine
	cache    *services.CacheService
	cacheTTL time.Duration
	log      *logrus.Logger
}

func NewDraftHandler(eng *engine.Engine, cache *services.CacheService, cacheTTL time.Duration, log *logrus.Logger) *DraftHandler {
	return &DraftHandler{
		engine:   eng,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Recommend handles POST /api/v1/draft/recommend
func (h *DraftHandler) Recommend(c *gin.Context) {
	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	if h.cache != nil {
		key := services.RecommendationCacheKey(req)
		var cached models.DraftResponse
		if err := h.cache.Get(c.Request.Context(), key, &cached); err == nil {
			h.log.WithField("cache_key", key).Debug("Serving cached recommendations")
			utils.SendSuccess(c, cached)
			return
		}
	}

	resp := h.engine.Recommend(req)

	if h.cache != nil {
		key := services.RecommendationCacheKey(req)
		if err := h.cache.Set(c.Request.Context(), key, resp, h.cacheTTL); err != nil {
			h.log.WithError(err).Warn("Could not cache recommendations")
		}
	}

	utils.SendSuccess(c, resp)
}
