// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// pingTimeout is short on purpose: a slow primary should flip the probe
// rather than hang the load balancer.
const pingTimeout = 2 * time.Second

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type status struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
}

// ServeHealth handles GET /health. It reports 200 when MongoDB answers
// a ping and 503 otherwise.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	st := status{Status: "ok", Mongo: "ok"}
	code := http.StatusOK
	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health ping failed", zap.Error(err))
		st = status{Status: "degraded", Mongo: "unreachable"}
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(st); err != nil {
		h.Log.Warn("health response encode failed", zap.Error(err))
	}
}
