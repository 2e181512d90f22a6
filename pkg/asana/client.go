package asana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultBaseURL is the Asana REST API root.
const DefaultBaseURL = "https://app.asana.com/api/1.0"

// taskPageSize is the page size requested from the task-listing API. The API
// may return fewer rows per page; pagination relies only on next_page.
const taskPageSize = 100

const (
	projectOptFields = "name,notes,archived,created_at,modified_at,owner.name"
	taskOptFields    = "name,notes,completed,completed_at,due_on,due_at,assignee.name,tags.name,permalink_url,created_at,modified_at"
)

// ErrSourceUnavailable marks any network, auth, or API error from the Asana
// source service.
var ErrSourceUnavailable = errors.New("asana source unavailable")

// Client is the HTTP wrapper for the Asana REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Asana HTTP client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL, accessToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// ListProjects fetches all projects in the given workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	query := url.Values{}
	query.Set("workspace", workspaceID)
	query.Set("opt_fields", projectOptFields)

	var page struct {
		Data []Project `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("%s/projects?%s", c.baseURL, query.Encode()), &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// ListTasks fetches every task of a project, following the opaque
// next_page.offset continuation token until the API reports no further page.
// A failure on any page discards pages already fetched and returns the error.
func (c *Client) ListTasks(ctx context.Context, projectGID string) ([]Task, error) {
	var tasks []Task
	offset := ""

	for {
		query := url.Values{}
		query.Set("limit", fmt.Sprintf("%d", taskPageSize))
		query.Set("opt_fields", taskOptFields)
		if offset != "" {
			query.Set("offset", offset)
		}

		var page struct {
			Data     []Task    `json:"data"`
			NextPage *NextPage `json:"next_page"`
		}
		reqURL := fmt.Sprintf("%s/projects/%s/tasks?%s", c.baseURL, projectGID, query.Encode())
		if err := c.get(ctx, reqURL, &page); err != nil {
			return nil, err
		}

		tasks = append(tasks, page.Data...)

		if page.NextPage == nil || page.NextPage.Offset == "" {
			return tasks, nil
		}
		offset = page.NextPage.Offset
	}
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build asana request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: asana API error %d: %s", ErrSourceUnavailable, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode asana response: %v", ErrSourceUnavailable, err)
	}
	return nil
}
