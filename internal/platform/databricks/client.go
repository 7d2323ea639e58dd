// Package databricks is a minimal client for the Databricks REST API,
// covering cluster creation and JAR job submission.
package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// API endpoints, relative to the workspace URL.
const (
	EndpointClusterCreate = "/api/2.0/clusters/create"
	EndpointJobCreate     = "/api/2.1/jobs/create"
	EndpointJobRunNow     = "/api/2.1/jobs/run-now"
)

// Client talks to a single Databricks workspace.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request made by the client. The HTTP client
// itself is left untouched, so it may be shared.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the workspace at workspaceURL, authenticating
// with an Azure AD bearer token.
func NewClient(workspaceURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(workspaceURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is returned for any response other than 200 OK.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("databricks %s: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// ClusterSpec is the body of a cluster create request.
type ClusterSpec struct {
	ClusterName            string            `json:"cluster_name"`
	SparkVersion           string            `json:"spark_version"`
	NodeTypeID             string            `json:"node_type_id"`
	NumWorkers             int               `json:"num_workers"`
	AutoterminationMinutes int               `json:"autotermination_minutes,omitempty"`
	SparkConf              map[string]string `json:"spark_conf,omitempty"`
}

// JobSpec is the body of a job create request.
type JobSpec struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Task is a single job task.
type Task struct {
	TaskKey           string        `json:"task_key"`
	Description       string        `json:"description,omitempty"`
	ExistingClusterID string        `json:"existing_cluster_id,omitempty"`
	SparkJarTask      *SparkJarTask `json:"spark_jar_task,omitempty"`
	Libraries         []Library     `json:"libraries,omitempty"`
}

// SparkJarTask runs the main class of a JAR library.
type SparkJarTask struct {
	MainClassName string `json:"main_class_name"`
}

// Library is a task dependency.
type Library struct {
	Jar string `json:"jar,omitempty"`
}

type clusterCreateResponse struct {
	ClusterID string `json:"cluster_id"`
}

type jobCreateResponse struct {
	JobID int64 `json:"job_id"`
}

type runNowRequest struct {
	JobID int64 `json:"job_id"`
}

type runNowResponse struct {
	RunID int64 `json:"run_id"`
}

// CreateCluster creates a cluster and returns its ID.
func (c *Client) CreateCluster(ctx context.Context, spec ClusterSpec) (string, error) {
	var resp clusterCreateResponse
	if err := c.post(ctx, EndpointClusterCreate, spec, &resp); err != nil {
		return "", fmt.Errorf("create cluster %s: %w", spec.ClusterName, err)
	}
	if resp.ClusterID == "" {
		return "", fmt.Errorf("create cluster %s: response has no cluster_id", spec.ClusterName)
	}
	return resp.ClusterID, nil
}

// CreateJob creates a job and returns its ID.
func (c *Client) CreateJob(ctx context.Context, spec JobSpec) (int64, error) {
	var resp jobCreateResponse
	if err := c.post(ctx, EndpointJobCreate, spec, &resp); err != nil {
		return 0, fmt.Errorf("create job %s: %w", spec.Name, err)
	}
	if resp.JobID == 0 {
		return 0, fmt.Errorf("create job %s: response has no job_id", spec.Name)
	}
	return resp.JobID, nil
}

// RunNow triggers a run of the job and returns the run ID.
func (c *Client) RunNow(ctx context.Context, jobID int64) (int64, error) {
	var resp runNowResponse
	if err := c.post(ctx, EndpointJobRunNow, runNowRequest{JobID: jobID}, &resp); err != nil {
		return 0, fmt.Errorf("run job %d: %w", jobID, err)
	}
	if resp.RunID == 0 {
		return 0, fmt.Errorf("run job %d: response has no run_id", jobID)
	}
	return resp.RunID, nil
}

func (c *Client) post(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, endpoint, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	if c.timeout > 0 {
		ctx, cancel := context.WithTimeout(req.Context(), c.timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
