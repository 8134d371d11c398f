package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"

	"portfolio-backend/internal/domains/client"
	clientHandler "portfolio-backend/internal/domains/client/handler"
	clientRepo "portfolio-backend/internal/domains/client/repository"
	clientService "portfolio-backend/internal/domains/client/service"
	"portfolio-backend/internal/domains/contact"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/domains/newsletter"
	newsletterHandler "portfolio-backend/internal/domains/newsletter/handler"
	newsletterRepo "portfolio-backend/internal/domains/newsletter/repository"
	newsletterService "portfolio-backend/internal/domains/newsletter/service"
	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
// Mọi component là singleton - khởi tạo một lần lúc startup
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config         *config.Config
	DB             *database.PostgresDB
	Cache          cache.Cache
	Storage        storage.ObjectStorage // local disk hoặc MinIO theo UPLOAD_DRIVER
	ImageProcessor *storage.ImageProcessor
	AsynqClient    *asynq.Client

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	ProjectRepo    project.Repository
	ClientRepo     client.Repository
	ContactRepo    contact.Repository
	NewsletterRepo newsletter.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	ProjectService    project.Service
	ClientService     client.Service
	ContactService    contact.Service
	NewsletterService newsletter.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	ProjectHandler    *projectHandler.ProjectHandler
	ClientHandler     *clientHandler.ClientHandler
	ContactHandler    *contactHandler.ContactHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Cache, Storage, Queue) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Type assertion để gọi Connect (không có trong interface)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure không critical - cache miss mọi request
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE STORAGE & IMAGE PIPELINE
	// ========================================
	log.Printf("📁 Initializing object storage (driver: %s)...", cfg.Upload.Driver)

	objStorage, err := newObjectStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}
	c.Storage = objStorage
	c.ImageProcessor = storage.NewImageProcessor(cfg.Upload)
	log.Println("✅ Storage initialized")

	// ========================================
	// STEP 5: INITIALIZE TASK QUEUE CLIENT
	// ========================================
	log.Println("📬 Initializing task queue client...")

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Println("✅ Task queue client initialized")

	// ========================================
	// STEP 6: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 7: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 8: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// newObjectStorage chọn driver theo config
func newObjectStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	switch cfg.Upload.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg.Upload.Dir)
	}
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.ClientRepo = clientRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ProjectService = projectService.NewProjectService(
		c.ProjectRepo,
		c.Storage,
		c.ImageProcessor,
		c.Cache,
		c.Config.Upload,
		c.Config.App.BackendURL,
	)

	c.ClientService = clientService.NewClientService(
		c.ClientRepo,
		c.Storage,
		c.ImageProcessor,
		c.Cache,
		c.Config.Upload,
		c.Config.App.BackendURL,
	)

	c.ContactService = contactService.NewContactService(
		c.ContactRepo,
		c.AsynqClient,
	)

	c.NewsletterService = newsletterService.NewNewsletterService(
		c.NewsletterRepo,
		c.AsynqClient,
	)
}

func (c *Container) initHandlers() {
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.ClientHandler = clientHandler.NewClientHandler(c.ClientService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close task queue client: %v", err)
		} else {
			log.Println("✅ Task queue client closed")
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
