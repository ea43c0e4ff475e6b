package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	cartapp "github.com/wyfcoding/pizzeria/internal/cart/application"
	cartclient "github.com/wyfcoding/pizzeria/internal/cart/infrastructure/client"
	cartmsg "github.com/wyfcoding/pizzeria/internal/cart/infrastructure/messaging"
	cartredis "github.com/wyfcoding/pizzeria/internal/cart/infrastructure/persistence/redis"
	carthttp "github.com/wyfcoding/pizzeria/internal/cart/interfaces/http"
	menuapp "github.com/wyfcoding/pizzeria/internal/menu/application"
	menuredis "github.com/wyfcoding/pizzeria/internal/menu/infrastructure/persistence/redis"
	menuhttp "github.com/wyfcoding/pizzeria/internal/menu/interfaces/http"
	orderapp "github.com/wyfcoding/pizzeria/internal/order/application"
	orderdomain "github.com/wyfcoding/pizzeria/internal/order/domain"
	orderhttp "github.com/wyfcoding/pizzeria/internal/order/interfaces/http"
	"github.com/wyfcoding/pizzeria/internal/pizzaapi"
	"github.com/wyfcoding/pizzeria/pkg/cache"
	"github.com/wyfcoding/pizzeria/pkg/config"
	"github.com/wyfcoding/pizzeria/pkg/logger"
	"github.com/wyfcoding/pizzeria/pkg/metrics"
	"github.com/wyfcoding/pizzeria/pkg/middleware"
	"github.com/wyfcoding/pizzeria/pkg/mq"
)

var configPath = flag.String("config", "configs/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	ctx := context.Background()
	logger.Info(ctx, "starting service", "service", cfg.ServiceName, "version", cfg.Version, "environment", cfg.Environment)

	// 3. 指标
	m := metrics.New(cfg.ServiceName)
	if err := m.Register(); err != nil {
		logger.Fatal(ctx, "failed to register metrics", "error", err)
	}
	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
				logger.Error(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	// 4. Redis
	redisCache, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect redis", "error", err)
	}
	defer redisCache.Close()

	// 5. Kafka（可选）
	var publisher = cartmsg.NewNoopEventPublisher()
	if cfg.Kafka.Enabled {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Fatal(ctx, "failed to create kafka producer", "error", err)
		}
		defer producer.Close()
		publisher = cartmsg.NewKafkaEventPublisher(producer)
	}

	// 6. 上游披萨 API 客户端
	apiClient := pizzaapi.NewClient(
		cfg.PizzaAPI.BaseURL,
		cfg.PizzaAPI.LocationID,
		time.Duration(cfg.PizzaAPI.Timeout)*time.Second,
		m,
	)

	// 7. 仓储与应用服务
	menuCache := menuredis.NewMenuRedisRepository(
		redisCache.GetClient(),
		time.Duration(cfg.PizzaAPI.MenuCacheTTL)*time.Second,
	)
	menuService := menuapp.NewMenuQueryService(apiClient, menuCache)

	cartRepo := cartredis.NewCartRedisRepository(redisCache.GetClient(), 0)
	namer := cartclient.NewNameSuggesterClient(
		cfg.NameSuggester.Endpoint,
		time.Duration(cfg.NameSuggester.TimeoutMs)*time.Millisecond,
	)
	cartService := cartapp.NewCartApplicationService(cartRepo, menuService, namer, publisher, m)

	var orderPublisher orderdomain.EventPublisher = publisher
	checkoutService := orderapp.NewCheckoutService(cartRepo, apiClient, orderPublisher, cfg.PizzaAPI.LocationID, m)
	orderCmdService := orderapp.NewOrderCommandService(apiClient, orderPublisher)
	orderQueryService := orderapp.NewOrderQueryService(apiClient)

	// 8. HTTP 接口
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinCORSMiddleware(),
	)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	root := engine.Group("")
	menuhttp.NewMenuHandler(menuService).RegisterRoutes(root)
	carthttp.NewCartHandler(cartService).RegisterRoutes(root)
	orderhttp.NewOrderHandler(checkoutService, orderCmdService, orderQueryService).RegisterRoutes(root)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "http server failed", "error", err)
		}
	}()

	// 9. 优雅退出
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "http server shutdown failed", "error", err)
	}
}
