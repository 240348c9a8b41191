package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lharari/jobboard/internal/config"
	"github.com/lharari/jobboard/internal/database"
	"github.com/lharari/jobboard/internal/handlers"
	"github.com/lharari/jobboard/internal/mailer"
	"github.com/lharari/jobboard/internal/middleware"
	"github.com/lharari/jobboard/internal/models"
	"github.com/lharari/jobboard/internal/search"
	"github.com/lharari/jobboard/internal/services"
	"github.com/lharari/jobboard/internal/storage"
)

func main() {
	// 1. Configuration
	cfg := config.MustLoad()

	// 2. Database Connection + Migrations
	db := database.Connect(cfg.DBDSN)

	// 3. File storage for resume uploads
	files, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload dir:", err)
	}

	// 4. Search index (optional; nil disables search)
	index, err := search.New(cfg.ElasticsearchURL, cfg.ElasticsearchAPIKey)
	if err != nil {
		log.Fatal("Failed to connect to Elasticsearch:", err)
	}
	if index.Enabled() {
		log.Println("Elasticsearch connected; job search enabled")
	} else {
		log.Println("Elasticsearch not configured; job search disabled")
	}

	// 5. Delivery chain
	mailCfg := mailer.Config{
		From:         cfg.MailFrom,
		ResendAPIKey: cfg.ResendAPIKey,
	}
	if cfg.SMTPHost != "" {
		mailCfg.SMTP = &mailer.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
		}
	}
	sequencer := mailer.NewSequencer(mailCfg)

	var primary mailer.Mechanism
	if cfg.ResendAPIKey != "" {
		primary = mailer.NewResendMechanism(cfg.ResendAPIKey, cfg.MailFrom)
	}

	// 6. Core Services
	jobService := services.NewJobService(db, index)
	templateService := services.NewTemplateService(db)
	applicationService := services.NewApplicationService(db, files)
	messageService := services.NewMessageService(templateService, cfg.MailDefaultRecipient)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	aiService := services.NewAIService(cfg.OpenAIAPIKey)
	if aiService.Enabled() {
		log.Println("OpenAI configured; resume summaries enabled")
	} else {
		log.Println("OpenAI not configured; resume summaries disabled")
	}

	// 7. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, messageService, sequencer)
	templateHandler := handlers.NewTemplateHandler(templateService)
	messageHandler := handlers.NewMessageHandler(applicationService, messageService, primary)
	authHandler := handlers.NewAuthHandler(authService)
	aiHandler := handlers.NewAIHandler(aiService)

	// 8. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.MaxMultipartMemory = storage.MaxResumeSize

	authenticate := middleware.Authenticate(cfg.JWTSecret)
	triage := middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.GET("/", handlers.HealthCheck)

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Public job discovery + apply
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.GET("/search/jobs", jobHandler.SearchJobs)
		api.POST("/jobs/:id/apply", applicationHandler.Apply)

		// Recruiter/admin job management
		api.POST("/jobs", authenticate, triage, jobHandler.CreateJob)
		api.PUT("/jobs/:id", authenticate, triage, jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", authenticate, adminOnly, jobHandler.DeleteJob)

		// Application triage
		api.GET("/applications", authenticate, triage, applicationHandler.List)
		api.GET("/jobs/:id/applications", authenticate, triage, applicationHandler.ListForJob)
		api.GET("/applications/:id/resume", authenticate, triage, applicationHandler.DownloadResume)
		api.DELETE("/applications/:id", authenticate, triage, applicationHandler.Delete)
		api.PATCH("/applications/:id/status", authenticate, triage, applicationHandler.SetStatus)
		api.POST("/applications/:id/message", authenticate, triage, applicationHandler.SendMessage)

		// Templates
		api.GET("/templates", authenticate, triage, templateHandler.List)
		api.GET("/templates/:id", authenticate, triage, templateHandler.Get)
		api.POST("/templates", authenticate, triage, templateHandler.Create)
		api.PUT("/templates/:id", authenticate, triage, templateHandler.Update)
		api.DELETE("/templates/:id", authenticate, triage, templateHandler.Delete)

		// Direct provider send
		api.POST("/messages/resend", authenticate, triage, messageHandler.SendDirect)

		// Resume summary
		api.POST("/ai/summarize", authenticate, triage, aiHandler.Summarize)
	}

	log.Printf("Server starting on port %s...", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
