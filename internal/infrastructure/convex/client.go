package convex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"task-agent/internal/application/port/output"
)

const (
	// APITimeout bounds a single function call to the deployment.
	APITimeout = 10 * time.Second

	statusSuccess = "success"
)

// Client talks to a Convex deployment over its HTTP function API:
// POST {base}/api/query or /api/mutation with a deploy-key authorization
// header. No retries; a failed call surfaces as an error to the tool layer.
type Client struct {
	baseURL    string
	deployKey  string
	httpClient *http.Client
	logger     output.LoggerPort
}

type Config struct {
	BaseURL   string
	DeployKey string
	Timeout   time.Duration
	Logger    output.LoggerPort
}

func DefaultConfig(baseURL, deployKey string) Config {
	return Config{
		BaseURL:   baseURL,
		DeployKey: deployKey,
		Timeout:   APITimeout,
	}
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = APITimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		deployKey:  cfg.DeployKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     cfg.Logger,
	}
}

type functionRequest struct {
	Path   string                 `json:"path"`
	Args   map[string]interface{} `json:"args"`
	Format string                 `json:"format"`
}

type functionResponse struct {
	Status       string          `json:"status"`
	Value        json.RawMessage `json:"value"`
	ErrorMessage string          `json:"errorMessage"`
}

// Query calls a read-only Convex function.
func (c *Client) Query(ctx context.Context, path string, args map[string]interface{}) (json.RawMessage, error) {
	return c.call(ctx, "query", path, args)
}

// Mutation calls a Convex function that writes.
func (c *Client) Mutation(ctx context.Context, path string, args map[string]interface{}) (json.RawMessage, error) {
	return c.call(ctx, "mutation", path, args)
}

func (c *Client) call(ctx context.Context, kind, path string, args map[string]interface{}) (json.RawMessage, error) {
	if args == nil {
		args = map[string]interface{}{}
	}

	body, err := json.Marshal(functionRequest{
		Path:   path,
		Args:   args,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", kind, err)
	}

	url := fmt.Sprintf("%s/api/%s", c.baseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", kind, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Convex "+c.deployKey)

	if c.logger != nil {
		c.logger.Debug("Convex call", "kind", kind, "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", kind, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", kind, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s returned HTTP %d: %s", kind, path, resp.StatusCode, truncateBody(respBody))
	}

	var fnResp functionResponse
	if err := json.Unmarshal(respBody, &fnResp); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", kind, err)
	}

	if fnResp.Status != statusSuccess {
		if fnResp.ErrorMessage != "" {
			return nil, fmt.Errorf("%s %s: %s", kind, path, fnResp.ErrorMessage)
		}
		return nil, fmt.Errorf("%s %s returned status %q", kind, path, fnResp.Status)
	}

	return fnResp.Value, nil
}

func truncateBody(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
