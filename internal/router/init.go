package router

import (
	"crm-lead-tracker/internal/application"
	"crm-lead-tracker/internal/container"
	pginfra "crm-lead-tracker/internal/infrastructure/postgres"
	handlers "crm-lead-tracker/internal/interface/http"
	"crm-lead-tracker/internal/interface/middleware"
	"crm-lead-tracker/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	clientRepo := pginfra.NewClientRepository(pool)
	buyerRepo := pginfra.NewBuyerRepository(pool)
	alertRepo := pginfra.NewAlertRepository(pool)
	fileRepo := pginfra.NewFileRepository(pool)
	imageRepo := pginfra.NewImageRepository(pool)
	statsRepo := pginfra.NewStatsRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetTokens(), logger)
	clientSvc := application.NewClientService(clientRepo, logger, container.GetES(), cfg.ESClientsIndex)
	buyerSvc := application.NewBuyerService(buyerRepo)
	alertSvc := application.NewAlertService(alertRepo, clientRepo, container.GetRabbitPub(), logger, cfg.MailSendEnabled)
	uploadSvc := application.NewUploadService(fileRepo, imageRepo, clientRepo, buyerRepo, container.GetGCS(), cfg.GCSBucket, logger)
	statsSvc := application.NewStatsService(statsRepo, container.GetRedis(), logger)

	authMW := middleware.Auth(authSvc, logger)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetCookies(), logger, cfg)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pool, logger)))
	r.Add(modules.NewAuthModule(authHandler, authMW))
	r.Add(modules.NewClientModule(handlers.NewClientHandler(clientSvc, logger), authMW))
	r.Add(modules.NewBuyerModule(handlers.NewBuyerHandler(buyerSvc, logger), authMW))
	r.Add(modules.NewAlertModule(handlers.NewAlertHandler(alertSvc, logger), authMW))
	r.Add(modules.NewUploadModule(handlers.NewFileHandler(uploadSvc, logger), handlers.NewImageHandler(uploadSvc, logger), authMW))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(statsSvc, logger), authMW))

	if cfg.DebugLoginAllowed() {
		r.Add(modules.NewDebugModule(authHandler))
	}
}
