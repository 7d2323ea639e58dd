// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/jobs"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/provisioning/network"
	"github.com/imamik/adbvnet/internal/provisioning/storage"
	"github.com/imamik/adbvnet/internal/ui/report"
)

// Options are the global flags shared by every command.
type Options struct {
	ConfigPath  string
	MetricsFile string
	Verbose     bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads and validates the configuration file.
	loadConfig = config.Load

	// newLogger creates the zap logger behind the console observer.
	newLogger = provisioning.NewLogger

	// newCredential creates the Azure credential.
	newCredential = azure.NewCredential

	// newCloudClient creates the Azure Resource Manager client.
	newCloudClient = func(subscriptionID string, cred azcore.TokenCredential) (azure.Client, error) {
		return azure.NewRealClient(subscriptionID, cred, azure.WithClientOptions(azure.NoRetryOptions()))
	}

	// newSubmitter creates the job submitter.
	newSubmitter = func(cred azcore.TokenCredential) *jobs.Submitter {
		return jobs.NewSubmitter(cred)
	}

	// isInteractive reports whether stdout is a terminal.
	isInteractive = isInteractiveTTY

	// stdout receives plans and run summaries.
	stdout io.Writer = os.Stdout
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func configPath(opts Options) string {
	if opts.ConfigPath != "" {
		return opts.ConfigPath
	}
	return config.DefaultConfigPath()
}

// session holds everything a command needs to run pipelines against Azure.
type session struct {
	cfg      *config.Config
	cred     azcore.TokenCredential
	pctx     *provisioning.Context
	logger   *zap.Logger
	outcomes []report.Outcome
}

// newSession loads the configuration, runs the extra validators and creates
// the Azure clients.
func newSession(ctx context.Context, opts Options, validators ...func(*config.Config) error) (*session, error) {
	cfg, err := loadConfig(configPath(opts))
	if err != nil {
		return nil, err
	}
	for _, validate := range validators {
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return openSession(ctx, opts, cfg)
}

// openSession creates the logger and Azure clients for a loaded configuration.
func openSession(ctx context.Context, opts Options, cfg *config.Config) (*session, error) {
	logger, err := newLogger(opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cred, err := newCredential(cfg.TenantID)
	if err != nil {
		return nil, err
	}

	cloud, err := newCloudClient(cfg.SubscriptionID, cred)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure client: %w", err)
	}

	observer := provisioning.NewConsoleObserver(logger).WithFields(map[string]string{
		"subscription":   cfg.SubscriptionID,
		"resource_group": cfg.ResourceGroup,
	})

	return &session{
		cfg:    cfg,
		cred:   cred,
		pctx:   provisioning.NewContext(ctx, cfg, cloud, observer),
		logger: logger,
	}, nil
}

// run executes p and records its outcome for the summary.
func (s *session) run(p *provisioning.Pipeline) error {
	start := time.Now()
	err := p.Run(s.pctx)
	s.record(p, err, time.Since(start))
	return err
}

// destroy reverts every step of p and records the outcome.
func (s *session) destroy(p *provisioning.Pipeline) error {
	start := time.Now()
	err := p.Destroy(s.pctx)
	s.outcomes = append(s.outcomes, report.Outcome{
		Pipeline: p.Name + " destroy",
		Steps:    reversed(p.StepNames()),
		Err:      err,
		Duration: time.Since(start),
	})
	return err
}

func (s *session) record(p *provisioning.Pipeline, err error, d time.Duration) {
	s.outcomes = append(s.outcomes, report.Outcome{
		Pipeline: p.Name,
		Steps:    p.StepNames(),
		Err:      err,
		Duration: d,
		Details:  details(p.Name, s.pctx.State),
	})
}

// finish prints the run summary and writes metrics. A metrics write failure
// is returned only when the run itself succeeded.
func (s *session) finish(opts Options, runErr error) error {
	fmt.Fprint(stdout, report.RenderSummary(s.outcomes, isInteractive()))

	if opts.MetricsFile != "" {
		if err := s.pctx.Metrics.WriteTextfile(opts.MetricsFile); err != nil {
			s.pctx.Observer.Printf("Failed to write metrics to %s: %v", opts.MetricsFile, err)
			if runErr == nil {
				runErr = err
			}
		}
	}

	_ = s.logger.Sync()
	return runErr
}

func details(pipeline string, st *provisioning.State) []report.Detail {
	switch pipeline {
	case network.PipelineName:
		ws := st.Workspace
		if ws == nil {
			return nil
		}
		return []report.Detail{
			{Label: "Workspace", Value: ws.ID},
			{Label: "Workspace URL", Value: ws.URL},
			{Label: "Managed RG", Value: ws.ManagedResourceGroupID},
		}
	case storage.PipelineName:
		return []report.Detail{
			{Label: "Principal", Value: st.PrincipalID},
			{Label: "Assignment", Value: st.RoleAssignmentID},
		}
	case jobs.PipelineName:
		r := jobs.ResultFrom(st)
		return []report.Detail{
			{Label: "Cluster ID", Value: r.ClusterID},
			{Label: "Job ID", Value: formatID(r.JobID)},
			{Label: "Run ID", Value: formatID(r.RunID)},
		}
	}
	return nil
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprint(id)
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
