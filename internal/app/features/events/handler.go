// internal/app/features/events/handler.go
package events

import (
	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/app/system/uploader"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public event list and the admin event pages.
type Handler struct {
	DB       *mongo.Database
	ErrLog   *uierrors.ErrorLogger
	Uploader uploader.ImageUploader
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, up uploader.ImageUploader, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		ErrLog:   errLog,
		Uploader: up,
		Log:      logger,
	}
}
