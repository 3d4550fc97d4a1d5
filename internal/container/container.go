package container

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/roadmap-lambda/internal/archive"
	"github.com/saulo-duarte/roadmap-lambda/internal/auth"
	"github.com/saulo-duarte/roadmap-lambda/internal/config"
	"github.com/saulo-duarte/roadmap-lambda/internal/roadmap"
	"github.com/saulo-duarte/roadmap-lambda/internal/router"
	"github.com/saulo-duarte/roadmap-lambda/internal/telemetry"
	"github.com/saulo-duarte/roadmap-lambda/internal/web"
)

type Container struct {
	Config           *config.Config
	Telemetry        *telemetry.Telemetry
	RoadmapContainer *roadmap.RoadmapContainer
	ArchiveContainer *archive.Container
	Router           http.Handler
}

func New(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	config.InitLogger(cfg)

	tel, err := telemetry.Setup(ctx, cfg.OTel)
	if err != nil {
		return nil, fmt.Errorf("setting up telemetry: %w", err)
	}

	if cfg.JWTSecret != "" {
		auth.Init(cfg.JWTSecret)
	} else {
		config.Log.Warn("JWT_SECRET not set, archive endpoints disabled")
	}

	var sealer archive.Sealer
	if cfg.CryptoKey != "" {
		cipher, err := config.NewCipher(cfg.CryptoKey)
		if err != nil {
			return nil, err
		}
		sealer = cipher
	}

	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		db, err = config.Connect(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := archive.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrating archive: %w", err)
		}
	} else {
		config.Log.Info("DATABASE_DSN not set, archiving in memory")
	}

	archiveContainer := archive.NewContainer(db, sealer)

	// archived roadmaps are only readable by an authenticated owner
	var archived archive.Service
	if auth.Enabled() {
		archived = archiveContainer.Service
	}
	roadmapContainer, err := roadmap.NewRoadmapContainer(ctx, cfg, archived)
	if err != nil {
		return nil, fmt.Errorf("building roadmap service: %w", err)
	}

	routerCfg := router.RouterConfig{
		RoadmapHandler: roadmapContainer.Handler,
		WebHandler:     web.NewHandler(roadmapContainer.Service),
		AuthHandler:    auth.NewHandler(cfg.CookieDomain),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		ServiceName:    cfg.OTel.ServiceName,
		Tracing:        tel != nil,
	}
	if archived != nil {
		routerCfg.ArchiveHandler = archiveContainer.Handler
	}

	config.Log.WithField("provider", cfg.Provider).Info("Container ready")

	return &Container{
		Config:           cfg,
		Telemetry:        tel,
		RoadmapContainer: roadmapContainer,
		ArchiveContainer: archiveContainer,
		Router:           router.New(routerCfg),
	}, nil
}
