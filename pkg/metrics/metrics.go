// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/pizzeria/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram
	// HTTP 请求大小
	HTTPRequestSize prometheus.Histogram
	// HTTP 响应大小
	HTTPResponseSize prometheus.Histogram

	// Redis 操作计数
	RedisOpsTotal prometheus.Counter
	// Redis 操作耗时
	RedisOpDuration prometheus.Histogram

	// 上游披萨 API 请求计数
	PizzaAPIRequestsTotal prometheus.Counter
	// 上游披萨 API 请求耗时
	PizzaAPIRequestDuration prometheus.Histogram

	// 业务指标
	CartItemsAddedTotal  prometheus.Counter
	OrdersSubmittedTotal prometheus.Counter
	OrdersFailedTotal    prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		// HTTP 指标
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPRequestSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "http_request_size_bytes",
			Help:      "HTTP request size in bytes",
			Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
		}),
		HTTPResponseSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "http_response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
		}),

		// Redis 指标
		RedisOpsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "redis_ops_total",
			Help:      "Total Redis operations",
		}),
		RedisOpDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "redis_op_duration_seconds",
			Help:      "Redis operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		// 上游 API 指标
		PizzaAPIRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "pizza_api_requests_total",
			Help:      "Total requests to the upstream pizza API",
		}),
		PizzaAPIRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "pizza_api_request_duration_seconds",
			Help:      "Upstream pizza API request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		// 业务指标
		CartItemsAddedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "cart_items_added_total",
			Help:      "Total line items added to carts",
		}),
		OrdersSubmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "orders_submitted_total",
			Help:      "Total orders submitted to the upstream API",
		}),
		OrdersFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: serviceName,
			Name:      "orders_failed_total",
			Help:      "Total order submissions rejected by the upstream API",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	metrics := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestSize,
		m.HTTPResponseSize,
		m.RedisOpsTotal,
		m.RedisOpDuration,
		m.PizzaAPIRequestsTotal,
		m.PizzaAPIRequestDuration,
		m.CartItemsAddedTotal,
		m.OrdersSubmittedTotal,
		m.OrdersFailedTotal,
	}

	for _, metric := range metrics {
		if err := prometheus.DefaultRegisterer.Register(metric); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}
