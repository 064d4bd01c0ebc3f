package provider

import (
	"strings"
	"time"

	"github.com/shucheng-next/internal/config"
	"github.com/shucheng-next/internal/logger"
	"github.com/shucheng-next/internal/models"
	"github.com/shucheng-next/internal/repository"
	"github.com/shucheng-next/internal/service"
	"github.com/shucheng-next/internal/session"
)

// Container 依赖注入容器
type Container struct {
	Config       *config.Config
	SessionStore session.Store

	// Repositories
	BookRepo  repository.BookRepository
	OrderRepo repository.OrderRepository

	// Services
	CatalogService *service.CatalogService
	CartService    *service.CartService
	OrderService   *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	c.SessionStore = newSessionStore(cfg)

	// 1. 初始化 Repositories
	db := models.DB
	c.BookRepo = repository.NewBookRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)

	// 2. 初始化 Services
	c.CatalogService = service.NewCatalogService(c.BookRepo, cfg.Catalog.PageSize)
	c.CartService = service.NewCartService(c.SessionStore)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.BookRepo)

	return c
}

// newSessionStore 按配置选择会话后端，默认走内存
func newSessionStore(cfg *config.Config) session.Store {
	backend := strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	if backend == "redis" && cfg.Redis.Enabled {
		ttl := time.Duration(cfg.Session.MaxAgeSeconds) * time.Second
		logger.Infow("session_store_init", "backend", "redis", "addr", cfg.Redis.Addr())
		return session.NewRedisStore(cfg.Redis, ttl)
	}
	if backend == "redis" {
		logger.Warnw("session_store_redis_disabled_fallback_memory")
	}
	return session.NewMemoryStore()
}
