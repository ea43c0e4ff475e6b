package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	menudomain "github.com/wyfcoding/pizzeria/internal/menu/domain"
	"github.com/wyfcoding/pizzeria/pkg/logger"
)

const fallbackName = "Custom Pizza"

// NameSuggesterClient 调用外部起名服务为自选披萨生成名字。
// 调用带超时上限，任何失败都回退到默认名字，从不向上返回错误。
type NameSuggesterClient struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

func NewNameSuggesterClient(endpoint string, timeout time.Duration) *NameSuggesterClient {
	if timeout <= 0 {
		timeout = 800 * time.Millisecond
	}
	return &NameSuggesterClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}
}

// SuggestName 根据配料组合取一个披萨名
func (c *NameSuggesterClient) SuggestName(ctx context.Context, toppings []menudomain.Topping) string {
	if c.endpoint == "" {
		return fallbackName
	}

	names := make([]string, 0, len(toppings))
	for _, t := range toppings {
		names = append(names, t.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?toppings=%s", c.endpoint, url.QueryEscape(strings.Join(names, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fallbackName
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "name suggester unavailable, using fallback", "error", err)
		return fallbackName
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, "name suggester returned non-200", "status", resp.StatusCode)
		return fallbackName
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Name == "" {
		return fallbackName
	}
	return body.Name
}
