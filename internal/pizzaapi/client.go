// Package pizzaapi 封装外部披萨 API 的 REST 客户端。
// 菜单、价格表和订单的事实状态都由该 API 持有。
package pizzaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	orderdomain "github.com/wyfcoding/pizzeria/internal/order/domain"
	"github.com/wyfcoding/pizzeria/pkg/metrics"
)

// APIError 上游返回非 2xx 时的错误
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pizza api returned %d: %s", e.StatusCode, e.Message)
}

// Client 外部披萨 API 客户端
type Client struct {
	baseURL    string
	locationID string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

// NewClient 创建客户端实例
func NewClient(baseURL, locationID string, timeout time.Duration, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		locationID: locationID,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// SpecialtyPizzas 拉取门店的招牌披萨目录
func (c *Client) SpecialtyPizzas(ctx context.Context) ([]menudomain.SpecialtyPizza, error) {
	var body struct {
		SpecialtyPizzas []menudomain.SpecialtyPizza `json:"specialtyPizzas"`
	}
	path := fmt.Sprintf("/api/location/%s/specialty-pizzas", url.PathEscape(c.locationID))
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return body.SpecialtyPizzas, nil
}

// PricingTable 拉取门店的价格表
func (c *Client) PricingTable(ctx context.Context) (*menudomain.PricingTable, error) {
	var table menudomain.PricingTable
	path := fmt.Sprintf("/api/location/%s/pizza-pricing", url.PathEscape(c.locationID))
	if err := c.do(ctx, http.MethodGet, path, nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// Create 提交订单
func (c *Client) Create(ctx context.Context, req *orderdomain.OrderRequest) (*orderdomain.Order, error) {
	var body struct {
		Order orderdomain.Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/pizza", req, &body); err != nil {
		return nil, err
	}
	return &body.Order, nil
}

// Get 按订单 ID 回读订单
func (c *Client) Get(ctx context.Context, orderID string) (*orderdomain.Order, error) {
	var body struct {
		Order orderdomain.Order `json:"order"`
	}
	path := "/api/pizza?orderId=" + url.QueryEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return &body.Order, nil
}

// Cancel 取消订单
func (c *Client) Cancel(ctx context.Context, orderID string) (*orderdomain.Order, error) {
	var body struct {
		Order orderdomain.Order `json:"order"`
	}
	payload := map[string]string{"orderId": orderID}
	if err := c.do(ctx, http.MethodPost, "/api/pizza/cancel", payload, &body); err != nil {
		return nil, err
	}
	return &body.Order, nil
}

// UpdateStatus 推进订单状态
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status orderdomain.OrderStatus) (*orderdomain.Order, error) {
	var body struct {
		Order orderdomain.Order `json:"order"`
	}
	payload := map[string]string{"orderId": orderID, "status": string(status)}
	if err := c.do(ctx, http.MethodPut, "/api/pizza/status", payload, &body); err != nil {
		return nil, err
	}
	return &body.Order, nil
}

// ListByLocation 列出门店的全部订单
func (c *Client) ListByLocation(ctx context.Context, locationID string) ([]*orderdomain.Order, error) {
	if locationID == "" {
		locationID = c.locationID
	}
	var body struct {
		Orders []*orderdomain.Order `json:"orders"`
	}
	path := "/api/pizzas?locationId=" + url.QueryEscape(locationID)
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	return body.Orders, nil
}

// errorMessage 提取错误响应体中的消息字段，非 JSON 时回退为原始文本
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return string(bytes.TrimSpace(raw))
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.PizzaAPIRequestsTotal.Inc()
		c.metrics.PizzaAPIRequestDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return fmt.Errorf("pizza api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode pizza api response: %w", err)
	}
	return nil
}
