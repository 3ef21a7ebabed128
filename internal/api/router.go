package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/api/handlers"
	"github.com/tsmith4014/gridiron-guru-ai/internal/engine"
	"github.com/tsmith4014/gridiron-guru-ai/internal/services"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, eng *engine.Engine, estimator *engine.RegressionEstimator, store *services.PlayerStore, cache *services.CacheService, cfg *config.Config, log *logrus.Logger) {
	cacheTTL := time.Duration(cfg.CacheExpirationSecs) * time.Second

	draftHandler := handlers.NewDraftHandler(eng, cache, cacheTTL, log)
	playerHandler := handlers.NewPlayerHandler(store)
	modelHandler := handlers.NewModelHandler(estimator, cfg.ModelPath, log)

	group.POST("/draft/recommend", draftHandler.Recommend)
	group.GET("/players", playerHandler.ListPlayers)
	group.POST("/model/retrain", modelHandler.Retrain)
}
