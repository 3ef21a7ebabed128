package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsmith4014/gridiron-guru-ai/internal/engine"
	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func draftRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	eng := engine.New(engine.FormulaEstimator{}, engine.DefaultWeights(), testLogger())
	handler := NewDraftHandler(eng, nil, time.Minute, testLogger())

	r := gin.New()
	r.POST("/api/v1/draft/recommend", handler.Recommend)
	return r
}

func TestDraftHandler_Recommend(t *testing.T) {
	router := draftRouter()

	body := map[string]interface{}{
		"available_players": []map[string]interface{}{
			{"name": "RB A", "position": "RB", "team": "SF", "adp": 3, "tier": 1},
			{"name": "WR A", "position": "WR", "team": "DAL", "adp": 8, "tier": 1},
		},
		"current_roster": []map[string]interface{}{},
		"current_round":  1,
		"draft_slot":     1,
		"teams":          10,
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/draft/recommend", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    models.DraftResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data.Recommendations, 2)
	assert.Equal(t, "RB A", envelope.Data.Recommendations[0].Player.Name)
	assert.NotEmpty(t, envelope.Data.Strategy)
	assert.NotEmpty(t, envelope.Data.Recommendations[0].Reasoning)
}

func TestDraftHandler_Recommend_InvalidBody(t *testing.T) {
	router := draftRouter()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing pool", `{"current_round":1,"draft_slot":1,"teams":10}`},
		{"zero round", `{"available_players":[{"name":"A","position":"RB","team":"SF","adp":1,"tier":1}],"current_round":0,"draft_slot":1,"teams":10}`},
		{"one team", `{"available_players":[{"name":"A","position":"RB","team":"SF","adp":1,"tier":1}],"current_round":1,"draft_slot":1,"teams":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/draft/recommend", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var envelope struct {
				Success bool `json:"success"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.False(t, envelope.Success)
		})
	}
}
