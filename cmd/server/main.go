package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ankitsaini000/rwew-sub002/admin"
	"github.com/ankitsaini000/rwew-sub002/categories"
	categoryRepository "github.com/ankitsaini000/rwew-sub002/categories/repository"
	categoryServices "github.com/ankitsaini000/rwew-sub002/categories/services"
	"github.com/ankitsaini000/rwew-sub002/creators"
	"github.com/ankitsaini000/rwew-sub002/creators/publish"
	creatorRepository "github.com/ankitsaini000/rwew-sub002/creators/repository"
	creatorServices "github.com/ankitsaini000/rwew-sub002/creators/services"
	"github.com/ankitsaini000/rwew-sub002/internal/cache"
	"github.com/ankitsaini000/rwew-sub002/internal/database/postgres"
	"github.com/ankitsaini000/rwew-sub002/internal/draftstore"
	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
	platformemail "github.com/ankitsaini000/rwew-sub002/internal/platform/email"
	platformsms "github.com/ankitsaini000/rwew-sub002/internal/platform/sms"
	"github.com/ankitsaini000/rwew-sub002/media"
	mediaprovider "github.com/ankitsaini000/rwew-sub002/media/provider"
	mediaServices "github.com/ankitsaini000/rwew-sub002/media/services"
	"github.com/ankitsaini000/rwew-sub002/notifications"
	notificationRepository "github.com/ankitsaini000/rwew-sub002/notifications/repository"
	notificationServices "github.com/ankitsaini000/rwew-sub002/notifications/services"
	"github.com/ankitsaini000/rwew-sub002/notifications/ws"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load platform config: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Error("Failed to connect to postgres: %v", err)
		os.Exit(1)
	}

	cacheConfig := cache.FromPlatformConfig(cfg.Cache)
	cacheBackend, err := cache.New(cacheConfig)
	if err != nil {
		log.Error("Failed to create cache backend: %v", err)
		os.Exit(1)
	}
	cacheService := cache.NewGenericCacheService(cacheBackend, cacheConfig)

	drafts := draftstore.New(cacheBackend, draftstore.Config{
		QuotaBytes: cfg.Drafts.QuotaBytes,
		TTL:        cfg.Drafts.TTL,
	})

	// Repositories share the same connection pool
	creatorRepo := creatorRepository.NewPostgresCreatorRepository(pgClient)
	notificationRepo := notificationRepository.NewPostgresNotificationRepository(pgClient)
	categoryRepo := categoryRepository.NewPostgresCategoryRepository(pgClient)

	// Notification channel. The hub pushes newNotification events to every
	// open socket of the recipient.
	hub := ws.NewHub()
	go hub.Heartbeat(30 * time.Second)

	notificationService := notificationServices.NewService(notificationRepo, hub)
	lifecycleNotifier := notificationServices.NewLifecycleNotifier(notificationService)

	creatorService := creatorServices.NewService(creatorRepo, drafts, cacheService, lifecycleNotifier)

	// Outbound senders fall back to log-only delivery in development
	var smsSender platformsms.Sender
	if cfg.SMS.LogOnly || cfg.SMS.AuthID == "" {
		smsSender = platformsms.NewLogSender()
	} else {
		smsSender, err = platformsms.NewPlivoSender(cfg.SMS.AuthID, cfg.SMS.AuthToken, cfg.SMS.SourceNumber)
		if err != nil {
			log.Error("Failed to create Plivo sender: %v", err)
			os.Exit(1)
		}
	}

	var emailSender platformemail.Sender
	if cfg.Email.SMTPHost != "" {
		emailSender, err = platformemail.NewSMTPSender(
			cfg.Email.SMTPHost,
			fmt.Sprintf("%d", cfg.Email.SMTPPort),
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPass,
		)
		if err != nil {
			log.Error("Failed to create SMTP sender: %v", err)
			os.Exit(1)
		}
	} else {
		emailSender = platformemail.NewLogSender()
	}

	limiter := publish.NewRateLimiter(
		cfg.RateLimits.Verification.Max,
		5,
		cfg.RateLimits.Verification.Duration,
	)
	publishService := publish.NewService(cacheBackend, creatorService, smsSender, emailSender, limiter, publish.Config{
		Bypass:    cfg.App.BypassVerification,
		OrgName:   cfg.App.OrgName,
		FromEmail: cfg.Email.SMTPEmail,
	})

	categoryService := categoryServices.NewService(categoryRepo, cacheService)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	creators.RegisterRoutes(app, &creators.CreatorHandlers{
		CreatorHandler: creators.NewCreatorHandler(creatorService, publishService),
	}, cfg)

	notifications.RegisterRoutes(app, &notifications.NotificationHandlers{
		NotificationHandler: notifications.NewNotificationHandler(notificationService, hub),
	}, cfg)

	categories.RegisterRoutes(app, &categories.CategoryHandlers{
		CategoryHandler: categories.NewCategoryHandler(categoryService),
	}, cfg)

	// Media routes come up only when storage is configured
	if cfg.Storage.AccessKeyID != "" {
		blobs, err := mediaprovider.NewS3Provider(&cfg.Storage)
		if err != nil {
			log.Error("Failed to create storage provider: %v", err)
			os.Exit(1)
		}
		media.RegisterRoutes(app, &media.MediaHandlers{
			MediaHandler: media.NewMediaHandler(mediaServices.NewService(blobs)),
		}, cfg)
	} else {
		log.Warn("Storage credentials missing, media routes disabled")
	}

	admin.RegisterRoutes(app, &admin.Handlers{
		AdminHandler: admin.NewHandler(creatorService),
	}, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info("Starting %s on %s", cfg.App.Name, addr)
		if err := app.Listen(addr); err != nil {
			log.Error("Server stopped: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	hub.Close()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	if err := pgClient.Close(); err != nil {
		log.Error("Postgres close error: %v", err)
	}
}
