package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/showcase/internal/form"
	"github.com/alimgiray/showcase/internal/models"
)

const createProjectPath = "/api/projects/post-project"

// ProjectClient posts creation requests to the project creation endpoint
type ProjectClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewProjectClient creates a client for the API at baseURL. httpClient may be nil.
func NewProjectClient(baseURL string, httpClient *http.Client) *ProjectClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ProjectClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateProject sends request as JSON. A non-2xx answer is returned as *form.ResponseError.
func (c *ProjectClient) CreateProject(ctx context.Context, request *models.CreateProjectRequest) (*models.Project, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createProjectPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		responseErr := &form.ResponseError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil {
			responseErr.Reason = errResp.Error
		}
		return nil, responseErr
	}

	var project models.Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("failed to decode created project: %w", err)
	}
	return &project, nil
}
