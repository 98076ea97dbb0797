package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/cenentury0941/ready-api/config"
	"github.com/cenentury0941/ready-api/internal/adapters/profile"
	redisadapter "github.com/cenentury0941/ready-api/internal/adapters/redis"
	"github.com/cenentury0941/ready-api/internal/data"
	"github.com/cenentury0941/ready-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Books  *service.BookService
	Notes  *service.NoteService
	Cart   *service.CartService
	Orders *service.OrderService
	Auth   *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	BookRepo  *data.BookRepo
	OrderRepo *data.OrderRepo
	CartStore *redisadapter.CartStore
	Profile   *profile.Directory
}

func buildRepositories(deps *ServiceDeps, logger *slog.Logger) serviceRepositories {
	var appCfg config.AppConfig
	if deps.Config != nil {
		appCfg = *deps.Config
	}

	return serviceRepositories{
		BookRepo:  data.NewBookRepo(deps.DB),
		OrderRepo: data.NewOrderRepo(deps.DB),
		CartStore: redisadapter.NewCartStore(deps.RedisClient),
		Profile: profile.NewDirectory(profile.Options{
			Config: appCfg.Profile,
			Logger: logger,
		}),
	}
}

// NewServices wires repositories and adapters into the service layer.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps, logger)

	authService := BuildAuthService(AuthConfig{
		Auth:        appCfg.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	return ServiceContainer{
		Books: service.NewBookService(service.BookServiceOptions{
			Repo:   repos.BookRepo,
			Logger: logger,
		}),
		Notes: service.NewNoteService(service.NoteServiceOptions{
			Repo:    repos.BookRepo,
			Profile: repos.Profile,
			Logger:  logger,
		}),
		Cart: service.NewCartService(service.CartServiceOptions{
			Store:  repos.CartStore,
			Books:  repos.BookRepo,
			Logger: logger,
		}),
		Orders: service.NewOrderService(service.OrderServiceOptions{
			Orders:  repos.OrderRepo,
			Books:   repos.BookRepo,
			Cart:    repos.CartStore,
			Profile: repos.Profile,
			Logger:  logger,
		}),
		Auth: authService,
	}
}
