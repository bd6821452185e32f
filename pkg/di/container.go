package di

import (
	"context"
	"fmt"

	"elfateh-admin/application/serviceimpl"
	"elfateh-admin/domain/ports"
	"elfateh-admin/domain/repositories"
	"elfateh-admin/domain/services"
	natspkg "elfateh-admin/infrastructure/nats"
	redispkg "elfateh-admin/infrastructure/redis"
	"elfateh-admin/infrastructure/storage"
	"elfateh-admin/infrastructure/upstream"
	"elfateh-admin/infrastructure/websocket"
	"elfateh-admin/interfaces/api/handlers"
	"elfateh-admin/pkg/config"
	"elfateh-admin/pkg/logger"
	"elfateh-admin/pkg/scheduler"
)

// stockScanCron ตรวจ stock ทุกต้นชั่วโมง
const stockScanCron = "0 * * * *"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	RedisClient    *redispkg.Client   // session / notification / settings store
	NATSClient     *natspkg.Client    // notification event bus (optional)
	UpstreamClient *upstream.Client   // commerce REST API
	Storage        ports.StoragePort  // รูปสินค้า/หมวดหมู่/avatar
	EventScheduler scheduler.EventScheduler

	// Messaging Ports
	NotificationPublisher  ports.NotificationPublisherPort
	NotificationSubscriber ports.NotificationSubscriberPort

	// WebSocket & Broadcasting
	Hub                     *websocket.Hub
	NotificationBroadcaster *websocket.NotificationBroadcaster

	// Repositories
	SessionRepository      repositories.SessionRepository
	NotificationRepository repositories.NotificationRepository
	SettingRepository      repositories.SettingRepository
	AuthRepository         repositories.AuthRepository
	CategoryRepository     repositories.CategoryRepository
	ProductRepository      repositories.ProductRepository
	OrderRepository        repositories.OrderRepository
	CouponRepository       repositories.CouponRepository
	UserRepository         repositories.UserRepository

	// Services
	AuthService         services.AuthService
	CategoryService     services.CategoryService
	ProductService      services.ProductService
	OrderService        services.OrderService
	CouponService       services.CouponService
	UserService         services.UserService
	DashboardService    services.DashboardService
	NotificationService services.NotificationService
	SettingsService     services.SettingsService
	MediaService        services.MediaService

	// Background
	StockMonitor *serviceimpl.StockMonitor
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initBroadcaster(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Redis เป็น session/notification/settings store — ขาดไม่ได้
	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	c.RedisClient = redisClient
	logger.Info("Redis client initialized", "url", c.Config.Redis.URL)

	// NATS เป็นทางผ่านของ push notification — ไม่มีก็รันได้
	// (feed ยังทำงานปกติ แค่ dashboard instance อื่นไม่เห็น event สด)
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS client initialization failed (push disabled)", "error", err)
	} else {
		c.NATSClient = natsClient
		c.NotificationPublisher = natspkg.NewPublisher(natsClient)
		c.NotificationSubscriber = natspkg.NewSubscriber(natsClient)
	}

	if err := c.initStorage(); err != nil {
		return err
	}

	return nil
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Provider {
	case "s3":
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localConfig := storage.LocalStorageConfig{
			BasePath: c.Config.Storage.Local.BasePath,
			BaseURL:  c.Config.Storage.Local.BaseURL,
		}
		localStorage, err := storage.NewLocalStorage(localConfig)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.Local.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	// Redis-backed stores
	c.SessionRepository = redispkg.NewSessionRepository(c.RedisClient)
	c.NotificationRepository = redispkg.NewNotificationRepository(c.RedisClient)
	c.SettingRepository = redispkg.NewSettingRepository(c.RedisClient)

	// Upstream client — token มาจาก session store, 401 จาก endpoint
	// ที่ไม่ใช่ auth แปลว่า token หมดอายุแล้ว ต้องล้าง session
	c.UpstreamClient = upstream.NewClient(
		c.Config.Upstream.BaseURL,
		func(ctx context.Context) string {
			token, err := c.SessionRepository.Token(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Failed to read session token", "error", err)
				return ""
			}
			return token
		},
		func(ctx context.Context) {
			if err := c.SessionRepository.ClearAuth(ctx); err != nil {
				logger.WarnContext(ctx, "Failed to clear expired session", "error", err)
			}
		},
	)

	// Upstream-backed resources
	c.AuthRepository = upstream.NewAuthRepository(c.UpstreamClient)
	c.CategoryRepository = upstream.NewCategoryRepository(c.UpstreamClient)
	c.ProductRepository = upstream.NewProductRepository(c.UpstreamClient)
	c.OrderRepository = upstream.NewOrderRepository(c.UpstreamClient)
	c.CouponRepository = upstream.NewCouponRepository(c.UpstreamClient)
	c.UserRepository = upstream.NewUserRepository(c.UpstreamClient)

	logger.Info("Repositories initialized", "upstream", c.Config.Upstream.BaseURL)
	return nil
}

func (c *Container) initServices() error {
	// SettingsService ก่อน — notification/coupon พึ่งมัน
	c.SettingsService = serviceimpl.NewSettingsService(c.SettingRepository)

	c.NotificationService = serviceimpl.NewNotificationService(
		c.NotificationRepository,
		c.NotificationPublisher,
		c.SettingsService,
	)

	c.AuthService = serviceimpl.NewAuthService(c.AuthRepository, c.SessionRepository, c.Config.JWT.Secret)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.ProductService = serviceimpl.NewProductService(c.ProductRepository)
	c.OrderService = serviceimpl.NewOrderService(c.OrderRepository, c.NotificationService)
	c.CouponService = serviceimpl.NewCouponService(c.CouponRepository, c.SettingsService)
	c.MediaService = serviceimpl.NewMediaService(c.Storage)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.MediaService)

	c.DashboardService = serviceimpl.NewDashboardService(
		c.ProductRepository,
		c.CategoryRepository,
		c.OrderRepository,
		c.CouponRepository,
		c.UserRepository,
	)

	logger.Info("Services initialized")
	return nil
}

// initBroadcaster ต่อ NATS เข้า websocket hub
func (c *Container) initBroadcaster() error {
	c.Hub = websocket.NewHub()

	if c.NotificationSubscriber == nil {
		logger.Warn("Notification broadcaster disabled (NATS not available)")
		return nil
	}

	c.NotificationBroadcaster = websocket.NewNotificationBroadcaster(c.Hub, c.NotificationSubscriber)
	if err := c.NotificationBroadcaster.Start(context.Background()); err != nil {
		logger.Warn("Failed to start notification broadcaster", "error", err)
		c.NotificationBroadcaster = nil
		return nil
	}

	logger.Info("Notification broadcaster started (NATS → WebSocket)")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.StockMonitor = serviceimpl.NewStockMonitor(c.ProductRepository, c.NotificationService)

	c.EventScheduler.Start()

	err := c.EventScheduler.AddJob("stock-scan", stockScanCron, func() {
		c.StockMonitor.Scan(context.Background())
	})
	if err != nil {
		logger.Warn("Failed to schedule stock scan", "error", err)
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.NotificationBroadcaster != nil {
		c.NotificationBroadcaster.Stop()
		logger.Info("Notification broadcaster stopped")
	}

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:         c.AuthService,
		CategoryService:     c.CategoryService,
		ProductService:      c.ProductService,
		OrderService:        c.OrderService,
		CouponService:       c.CouponService,
		UserService:         c.UserService,
		DashboardService:    c.DashboardService,
		NotificationService: c.NotificationService,
		SettingsService:     c.SettingsService,
		MediaService:        c.MediaService,
		MaxUploadSize:       c.Config.Storage.MaxUploadSize,
	}
}
