// main.go
package main

import (
	"context"
	"log"

	"photodesk/cmd"
	"photodesk/internal/bus"
	"photodesk/internal/catalog"
	"photodesk/internal/data/repository"
	"photodesk/internal/jobs"
	"photodesk/internal/wire"
	"photodesk/internal/ws"
	"photodesk/pkg/database"
	"photodesk/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// In-memory catalog backing the booking form, seeded from config until the
	// settings row is loaded
	store := catalog.NewStore(catalog.Settings{
		TravelSpeedKmh:     config.Booking.TravelSpeedKmh,
		DefaultDurationMin: config.Booking.DefaultDurationMin,
	})

	// Event bus and websocket hub for notifications
	eventBus := bus.New(logger)
	go eventBus.Run()
	defer eventBus.Stop()

	hub := ws.NewHub(logger)
	go hub.Run()

	// Wire all dependencies
	app := wire.Wiring(repos, config, store, eventBus, hub, logger)

	// Persist notifications and push them over the websocket
	stopNotifications := app.Service.Notification.Start()
	defer stopNotifications()

	ctx := context.Background()

	// Load business settings (seeding defaults on first boot) and warm the
	// pickers' catalog
	if _, err := app.Service.Settings.Load(ctx); err != nil {
		logger.Fatal("Failed to load settings", zap.Error(err))
	}
	warmCatalog(ctx, repos, store, logger)

	// Scheduled jobs: booking reminders, session cleanup
	scheduler := jobs.NewScheduler(repos, eventBus, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}

func warmCatalog(ctx context.Context, repos *repository.Repository, store *catalog.Store, logger *zap.Logger) {
	services, err := repos.Service.FindAll(ctx, true)
	if err != nil {
		logger.Fatal("Failed to load services", zap.Error(err))
	}
	infos := make([]catalog.ServiceInfo, 0, len(services))
	for _, service := range services {
		infos = append(infos, catalog.ServiceInfo{
			ID:              service.ID,
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
			PriceCents:      service.PriceCents,
		})
	}
	store.ReplaceServices(infos)

	agents, err := repos.Agent.FindAll(ctx)
	if err != nil {
		logger.Fatal("Failed to load agents", zap.Error(err))
	}
	agentInfos := make([]catalog.AgentInfo, 0, len(agents))
	for _, agent := range agents {
		info := catalog.AgentInfo{ID: agent.ID, Name: agent.Name}
		if agent.Company != nil {
			info.Company = *agent.Company
		}
		agentInfos = append(agentInfos, info)
	}
	store.ReplaceAgents(agentInfos)

	photographers, err := repos.Photographer.FindAll(ctx, true)
	if err != nil {
		logger.Fatal("Failed to load photographers", zap.Error(err))
	}
	photographerInfos := make([]catalog.PhotographerInfo, 0, len(photographers))
	for _, photographer := range photographers {
		photographerInfos = append(photographerInfos, catalog.PhotographerInfo{
			ID:   photographer.ID,
			Name: photographer.Name,
		})
	}
	store.ReplacePhotographers(photographerInfos)

	logger.Info("Catalog loaded",
		zap.Int("services", len(infos)),
		zap.Int("agents", len(agentInfos)),
		zap.Int("photographers", len(photographerInfos)),
	)
}
