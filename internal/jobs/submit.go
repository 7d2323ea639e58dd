package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/imamik/adbvnet/internal/identity"
	"github.com/imamik/adbvnet/internal/platform/databricks"
	"github.com/imamik/adbvnet/internal/provisioning"
)

// DatabricksScope is the Azure AD scope of the Databricks resource application.
const DatabricksScope = "2ff814a6-3304-4ab8-85cb-cd0e6f879c1d/.default"

// PipelineName identifies the job pipeline in logs and metrics.
const PipelineName = "job"

// Step names, in execution order.
const (
	StepClientID      = "managed-identity-client"
	StepWorkspaceURL  = "workspace-url"
	StepToken         = "databricks-token"
	StepClusterCreate = "cluster-create"
	StepJobCreate     = "job-create"
	StepRunNow        = "run-now"
)

// API is the subset of the Databricks REST API used for submission.
type API interface {
	CreateCluster(ctx context.Context, spec databricks.ClusterSpec) (string, error)
	CreateJob(ctx context.Context, spec databricks.JobSpec) (int64, error)
	RunNow(ctx context.Context, jobID int64) (int64, error)
}

// APIFactory creates an API client for a workspace.
type APIFactory func(workspaceURL, token string, timeout time.Duration) API

func defaultAPIFactory(workspaceURL, token string, timeout time.Duration) API {
	var opts []databricks.Option
	if timeout > 0 {
		opts = append(opts, databricks.WithTimeout(timeout))
	}
	return databricks.NewClient(workspaceURL, token, opts...)
}

// Result holds the identifiers produced by a submission.
type Result struct {
	ClusterID string
	JobID     int64
	RunID     int64
}

// ResultFrom extracts the submission result from pipeline state.
func ResultFrom(st *provisioning.State) Result {
	return Result{ClusterID: st.ClusterID, JobID: st.JobID, RunID: st.RunID}
}

// Submitter builds job submission pipelines.
type Submitter struct {
	cred   azcore.TokenCredential
	newAPI APIFactory

	api API
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithAPIFactory replaces the Databricks client constructor.
func WithAPIFactory(f APIFactory) Option {
	return func(s *Submitter) { s.newAPI = f }
}

// NewSubmitter creates a submitter that authenticates with cred.
func NewSubmitter(cred azcore.TokenCredential, opts ...Option) *Submitter {
	s := &Submitter{cred: cred, newAPI: defaultAPIFactory}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pipeline returns the submission pipeline.
func (s *Submitter) Pipeline() *provisioning.Pipeline {
	return provisioning.NewPipeline(PipelineName, false,
		&provisioning.StepFunc{StepName: StepClientID, ProvisionFn: s.resolveClientID},
		&provisioning.StepFunc{StepName: StepWorkspaceURL, ProvisionFn: s.resolveWorkspaceURL},
		&provisioning.StepFunc{StepName: StepToken, ProvisionFn: s.acquireToken},
		&provisioning.StepFunc{StepName: StepClusterCreate, ProvisionFn: s.createCluster},
		&provisioning.StepFunc{StepName: StepJobCreate, ProvisionFn: s.createJob},
		&provisioning.StepFunc{StepName: StepRunNow, ProvisionFn: s.runNow},
	)
}

func (s *Submitter) resolveClientID(ctx *provisioning.Context) error {
	clientID, err := identity.NewResolver(ctx.Cloud, ctx.Config).Resolve(ctx, identity.FieldClientID)
	if err != nil {
		return err
	}
	ctx.State.ClientID = clientID
	ctx.Observer.Printf("[%s] Managed identity client ID %s", StepClientID, clientID)
	return nil
}

func (s *Submitter) resolveWorkspaceURL(ctx *provisioning.Context) error {
	cfg := ctx.Config
	if cfg.Jobs.WorkspaceURL != "" {
		ctx.State.WorkspaceURL = cfg.Jobs.WorkspaceURL
		return nil
	}

	ws, err := ctx.Cloud.GetWorkspace(ctx, cfg.ResourceGroup, cfg.Workspace.Name)
	if err != nil {
		return fmt.Errorf("failed to get workspace %s: %w", cfg.Workspace.Name, err)
	}
	if ws == nil {
		return fmt.Errorf("%w: %s", identity.ErrWorkspaceLookup, cfg.Workspace.Name)
	}
	if ws.URL == "" {
		return fmt.Errorf("workspace %s has no URL", cfg.Workspace.Name)
	}
	ctx.State.WorkspaceURL = ws.URL
	ctx.Observer.Printf("[%s] Using workspace %s", StepWorkspaceURL, ws.URL)
	return nil
}

func (s *Submitter) acquireToken(ctx *provisioning.Context) error {
	tok, err := s.cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{DatabricksScope}})
	if err != nil {
		return fmt.Errorf("failed to acquire Databricks token: %w", err)
	}

	var timeout time.Duration
	if ctx.Timeouts != nil {
		timeout = ctx.Timeouts.HTTP
	}
	s.api = s.newAPI(ctx.State.WorkspaceURL, tok.Token, timeout)
	return nil
}

func (s *Submitter) createCluster(ctx *provisioning.Context) error {
	spec := ClusterSpec(ctx.Config, ctx.State.ClientID)
	provisioning.LogResourceCreating(ctx.Observer, StepClusterCreate, "cluster", spec.ClusterName)
	id, err := s.api.CreateCluster(ctx, spec)
	if err != nil {
		return err
	}
	ctx.State.ClusterID = id
	provisioning.LogResourceCreated(ctx.Observer, StepClusterCreate, "cluster", spec.ClusterName, id)
	return nil
}

func (s *Submitter) createJob(ctx *provisioning.Context) error {
	spec := JobSpec(ctx.Config, ctx.State.ClusterID)
	provisioning.LogResourceCreating(ctx.Observer, StepJobCreate, "job", spec.Name)
	id, err := s.api.CreateJob(ctx, spec)
	if err != nil {
		return err
	}
	ctx.State.JobID = id
	provisioning.LogResourceCreated(ctx.Observer, StepJobCreate, "job", spec.Name, fmt.Sprint(id))
	return nil
}

func (s *Submitter) runNow(ctx *provisioning.Context) error {
	id, err := s.api.RunNow(ctx, ctx.State.JobID)
	if err != nil {
		return err
	}
	ctx.State.RunID = id
	ctx.Observer.Printf("[%s] Job %d started run %d", StepRunNow, ctx.State.JobID, id)
	return nil
}
