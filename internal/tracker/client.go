package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"staffbot/internal/models"
	"staffbot/pkg/logger"
)

// API is the subset of the tracker the rest of the system depends on.
// Domain managers take this interface so tests can inject a fake.
type API interface {
	CreateIssue(ctx context.Context, issue models.Issue) (models.Issue, error)
	GetIssue(ctx context.Context, key string) (models.Issue, error)
	UpdateIssue(ctx context.Context, key string, patch IssuePatch) (models.Issue, error)
	SearchIssues(ctx context.Context, query string) ([]models.Issue, error)
	AddComment(ctx context.Context, key, text string) error
}

// IssuePatch is a partial issue update. Nil/empty fields are omitted from the
// request body so the tracker leaves them untouched.
type IssuePatch struct {
	Summary      string         `json:"summary,omitempty"`
	Description  string         `json:"description,omitempty"`
	Status       string         `json:"status,omitempty"`
	CustomFields map[string]any `json:"customFields,omitempty"`
}

// Config for the tracker client.
type Config struct {
	BaseURL string
	OrgID   string
	Token   string
	Timeout time.Duration
}

// Client issues blocking HTTP calls against the tracker. Each call is sent
// exactly once; there is no retry policy, callers decide whether to surface
// the failure.
type Client struct {
	baseURL    string
	orgID      string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

const defaultTimeout = 10 * time.Second

func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		orgID:   cfg.OrgID,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

var _ API = (*Client)(nil)

func (c *Client) CreateIssue(ctx context.Context, issue models.Issue) (models.Issue, error) {
	var created models.Issue
	if err := c.do(ctx, http.MethodPost, "/issues", issue, &created); err != nil {
		return models.Issue{}, fmt.Errorf("create issue: %w", err)
	}
	c.log.Debug("issue created",
		zap.String(logger.FieldIssueKey, created.Key),
		zap.String(logger.FieldQueue, issue.Queue))
	return created, nil
}

func (c *Client) GetIssue(ctx context.Context, key string) (models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(key), nil, &issue); err != nil {
		return models.Issue{}, fmt.Errorf("get issue %s: %w", key, err)
	}
	return issue, nil
}

func (c *Client) UpdateIssue(ctx context.Context, key string, patch IssuePatch) (models.Issue, error) {
	var updated models.Issue
	if err := c.do(ctx, http.MethodPatch, "/issues/"+url.PathEscape(key), patch, &updated); err != nil {
		return models.Issue{}, fmt.Errorf("update issue %s: %w", key, err)
	}
	return updated, nil
}

type searchRequest struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields"`
}

func (c *Client) SearchIssues(ctx context.Context, query string) ([]models.Issue, error) {
	body := searchRequest{
		Query:  query,
		Fields: []string{"key", "summary", "description", "status", "assignee", "created", "updated"},
	}
	var issues []models.Issue
	if err := c.do(ctx, http.MethodPost, "/issues/_search", body, &issues); err != nil {
		return nil, fmt.Errorf("search issues: %w", err)
	}
	return issues, nil
}

type commentRequest struct {
	Text string `json:"text"`
}

func (c *Client) AddComment(ctx context.Context, key, text string) error {
	path := "/issues/" + url.PathEscape(key) + "/comments"
	if err := c.do(ctx, http.MethodPost, path, commentRequest{Text: text}, nil); err != nil {
		return fmt.Errorf("add comment to %s: %w", key, err)
	}
	return nil
}

const maxErrorBody = 4 << 10

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("X-Org-ID", c.orgID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
