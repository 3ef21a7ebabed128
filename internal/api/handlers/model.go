package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/engine"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/utils"
)

// ModelHandler exposes retraining of the learned value estimator.
type ModelHandler struct {
	estimator *engine.RegressionEstimator
	modelPath string
	log       *logrus.Logger
}

func NewModelHandler(estimator *engine.RegressionEstimator, modelPath string, log *logrus.Logger) *ModelHandler {
	return &ModelHandler{
		estimator: estimator,
		modelPath: modelPath,
		log:       log,
	}
}

// Retrain handles POST /api/v1/model/retrain. Scoring passes keep
// reading the previous bundle until the new one is swapped in.
func (h *ModelHandler) Retrain(c *gin.Context) {
	if err := h.estimator.Train(); err != nil {
		utils.SendInternalError(c, "Retrain failed: "+err.Error())
		return
	}
	if h.modelPath != "" {
		if err := h.estimator.Save(h.modelPath); err != nil {
			h.log.WithError(err).Warn("Could not persist retrained bundle")
		}
	}
	utils.SendSuccess(c, gin.H{"message": "model retrained successfully"})
}
