package feed

import (
	"context"

	"level-list/core/sections"
	"level-list/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	ctx     context.Context
	service *Service
	handler *Handler
	err     error
	enabled bool
}

// NewFeature creates the feed feature. The engine goroutine lives until ctx is done.
// A source that cannot be built disables the feature instead of failing startup.
func NewFeature(ctx context.Context, cfg Config, list sections.Config, db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	f := &Feature{ctx: ctx}

	source, err := NewSource(cfg, db, client, bucket)
	if err != nil {
		logger.Warn("Feed source unavailable", zap.String("source", cfg.Source), zap.Error(err))
		return f
	}
	f.enabled = true

	svc, err := NewService(cfg, list, source, logger)
	if err != nil {
		f.err = err
		return f
	}
	f.service = svc
	f.handler = NewHandler(svc)
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "feed"
}

// IsEnabled reports whether the feed source could be built.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load checks the source, starts the engine and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if f.err != nil {
		return f.err
	}
	if err := f.service.Check(f.ctx); err != nil {
		return err
	}
	go func() {
		if err := f.service.Run(f.ctx); err != nil && f.ctx.Err() == nil {
			f.service.Logger().Error("Feed engine stopped", zap.Error(err))
		}
	}()
	f.handler.RegisterRoutes(app)
	return nil
}
