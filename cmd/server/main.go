package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "volunteerhub-backend/internal/api/http"
	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/pdf"
	"volunteerhub-backend/internal/repository/postgres"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	fontPath := flag.String("font", "config/fonts/NotoSansJP-Regular.ttf", "Path to the certificate font")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VolunteerHub backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	sessions := security.NewSessionManager(
		cfg.Session.Secret,
		time.Duration(cfg.Session.ExpiryMinutes)*time.Minute,
		cfg.Session.SecureCookies,
	)

	// Initialize Services
	sink := service.NewSendGridSink(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	renderer := pdf.NewCertificateRenderer(*fontPath)

	authService := service.NewAuthService(store.VolunteerRepository, store.AdminUserRepository, store.SuperAdminRepository)
	volunteerService := service.NewVolunteerService(store.VolunteerRepository, store.ApplicationRepository)
	catalogService := service.NewCatalogService(store.RecruitmentRepository, store.CategoryRepository, store.VolunteerRepository, sink, cfg.App.BaseURL)
	applicationService := service.NewApplicationService(store.ApplicationRepository, store.RecruitmentRepository)
	bulkImportService := service.NewBulkImportService(store.RecruitmentRepository, store.CategoryRepository)
	certificateService := service.NewCertificateService(store.ApplicationRepository, renderer)
	staffService := service.NewStaffService(store.VolunteerRepository, store.OrganizationRepository, store.AdminUserRepository, sink, cfg.App.BaseURL)
	adminService := service.NewAdminService(store.OrganizationRepository, store.PrefectureRepository, store.AdminUserRepository, store.SuperAdminRepository, store.CategoryRepository)
	inquiryService := service.NewInquiryService(store.InquiryRepository, store.RecruitmentRepository, store.AdminUserRepository, sink, cfg.SendGrid.OperatorEmail)

	// Initialize HTTP layer
	mw := httpapi.NewMiddleware(sessions)
	router := httpapi.NewRouter(httpapi.Handlers{
		Public:    httpapi.NewPublicHandler(catalogService, adminService, inquiryService),
		Volunteer: httpapi.NewVolunteerHandler(authService, volunteerService, applicationService, certificateService, inquiryService, sessions, cfg.App.PublicOrgID),
		Staff:     httpapi.NewStaffHandler(authService, catalogService, applicationService, bulkImportService, staffService, sessions),
		Admin:     httpapi.NewAdminHandler(authService, adminService, sessions),
		Assets:    httpapi.NewAssetHandler(cfg.App.TemplateDir),
	}, mw)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
