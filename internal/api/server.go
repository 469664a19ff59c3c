package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/handmadefactory/backend/config"
	"github.com/handmadefactory/backend/infra/queue"
	"github.com/handmadefactory/backend/internal/api/rest/handlers"
	"github.com/handmadefactory/backend/internal/api/rest/middleware"
	"github.com/handmadefactory/backend/internal/domain"
	"github.com/handmadefactory/backend/internal/helper"
	"github.com/handmadefactory/backend/internal/interfaces"
	"github.com/handmadefactory/backend/internal/repository"
	"github.com/handmadefactory/backend/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("database instance error: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	if err := Seed(db, cfg); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	app := NewApp(db, cfg, producer)

	log.Println("listening on", cfg.ServerPort)
	log.Fatal(app.Listen(cfg.ServerPort))
}

// Migrate creates the schema, parents before join and log tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.UserRole{},
		&domain.Item{},
		&domain.AuditLog{},
	)
}

// NewApp wires repositories, services, middlewares and routes onto a fiber
// app. It takes an already migrated database so tests can hand it one of
// their own.
func NewApp(db *gorm.DB, cfg config.Config, producer *queue.Producer) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authHelper := helper.SetupAuth(cfg.JWTSecret, cfg.AccessTokenTTLMin)

	userRepo := repository.NewUserRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	itemRepo := repository.NewItemRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	var publisher interfaces.ProducerHandler
	if producer != nil {
		publisher = producer
	}

	authSvc := services.NewAuthService(userRepo, userRoleRepo)
	itemSvc := services.NewItemService(itemRepo)
	auditSvc := services.NewAuditService(auditRepo, publisher)

	authHandler := handlers.NewAuthHandler(authSvc, authHelper)
	itemHandler := handlers.NewItemHandler(itemSvc)

	api := app.Group("/api", middleware.Audit(auditSvc))

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.Authenticate(authHelper, authSvc), authHandler.Me)

	items := api.Group("/items", middleware.Authenticate(authHelper, authSvc))
	items.Get("/", middleware.RequireRoles(domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer), itemHandler.List)
	items.Post("/", middleware.RequireRoles(domain.RoleAdmin, domain.RoleEditor), itemHandler.Create)
	items.Delete("/:id", middleware.RequireRoles(domain.RoleAdmin), itemHandler.Delete)

	return app
}
