package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muffme/bakery-backend/internal/config"
	"github.com/muffme/bakery-backend/internal/domain"
	"github.com/muffme/bakery-backend/internal/handlers"
	"github.com/muffme/bakery-backend/internal/repository/postgres"
	"github.com/muffme/bakery-backend/internal/service"
	"github.com/muffme/bakery-backend/internal/utils/jwt"
	"github.com/muffme/bakery-backend/internal/utils/password"
	"github.com/muffme/bakery-backend/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user         domain.UserRepository
	verification domain.VerificationRepository
	product      domain.ProductRepository
	cart         domain.CartRepository
	order        domain.OrderRepository
	ledger       domain.LedgerRepository
	stats        domain.StatsRepository
}

// services содержит все сервисы приложения
type services struct {
	auth     domain.AuthService
	user     domain.UserService
	product  domain.ProductService
	cart     domain.CartService
	order    domain.OrderService
	bonus    domain.BonusService
	admin    domain.AdminService
	preorder domain.PreorderService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	profile  *handlers.ProfileHandler
	bonus    *handlers.BonusHandler
	products *handlers.ProductsHandler
	cart     *handlers.CartHandler
	orders   *handlers.OrdersHandler
	preorder *handlers.PreorderHandler
	admin    *handlers.AdminHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:         postgres.NewUserRepository(dbPool),
		verification: postgres.NewVerificationRepository(dbPool),
		product:      postgres.NewProductRepository(dbPool),
		cart:         postgres.NewCartRepository(dbPool),
		order:        postgres.NewOrderRepository(dbPool),
		ledger:       postgres.NewLedgerRepository(dbPool),
		stats:        postgres.NewStatsRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Шлюзы: в режиме разработки SMS и почта уходят в лог
	var smsSender domain.SMSSender
	var mailSender domain.MailSender
	if cfg.DevMode {
		smsSender = service.NewNoopSMSSender(logger)
		mailSender = service.NewLogMailSender(logger)
	} else {
		smsSender = service.NewSMSCClient(cfg.SMSCLogin, cfg.SMSCPassword, cfg.SMSCAPIKey, logger)
		mailSender = service.NewSMTPMailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.PreorderTo)
	}

	// Создание сервисов
	bonusService := service.NewBonusService(cfg.Tiers, repos.user, repos.ledger)
	userService := service.NewUserService(repos.user, bonusService)
	svcs := &services{
		auth:     service.NewAuthService(repos.user, repos.verification, userService, smsSender, jwtManager, cfg.DevMode),
		user:     userService,
		product:  service.NewProductService(repos.product),
		cart:     service.NewCartService(repos.cart, repos.product, repos.user, bonusService),
		order:    service.NewOrderService(repos.order, repos.cart, bonusService),
		bonus:    bonusService,
		admin:    service.NewAdminService(repos.stats, passwordHasher, jwtManager, cfg.AdminPasswordHash),
		preorder: service.NewPreorderService(mailSender),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		profile:  handlers.NewProfileHandler(svcs.user, logger),
		bonus:    handlers.NewBonusHandler(svcs.bonus, logger),
		products: handlers.NewProductsHandler(svcs.product, logger),
		cart:     handlers.NewCartHandler(svcs.cart, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		preorder: handlers.NewPreorderHandler(svcs.preorder, logger),
		admin:    handlers.NewAdminHandler(svcs.admin, svcs.order, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
	}
	workerPool := worker.NewPool(workerPoolConfig, repos.order, bonusService, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
