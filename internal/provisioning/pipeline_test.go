package provisioning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/adbvnet/internal/config"
)

// recorder tracks the order of Provision and Revert calls across steps.
type recorder struct {
	calls []string
}

func (r *recorder) step(name string, provisionErr, revertErr error) *StepFunc {
	return &StepFunc{
		StepName: name,
		ProvisionFn: func(_ *Context) error {
			r.calls = append(r.calls, "provision:"+name)
			return provisionErr
		},
		RevertFn: func(_ *Context) error {
			r.calls = append(r.calls, "revert:"+name)
			return revertErr
		},
	}
}

// plainStep implements Step without Reverter.
type plainStep struct {
	name string
	rec  *recorder
}

func (p *plainStep) Name() string { return p.name }
func (p *plainStep) Provision(_ *Context) error {
	p.rec.calls = append(p.rec.calls, "provision:"+p.name)
	return nil
}

func newTestContext() (*Context, *MockObserver) {
	obs := NewMockObserver()
	return &Context{
		Context:  context.Background(),
		Config:   &config.Config{},
		State:    NewState(),
		Observer: obs,
		Metrics:  NewMetrics(),
		Timeouts: &config.Timeouts{Step: time.Minute, Rollback: time.Minute},
	}, obs
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()
	rec := &recorder{}

	p := NewPipeline("network", true, rec.step("a", nil, nil), rec.step("b", nil, nil))

	require.NotNil(t, p)
	assert.Equal(t, "network", p.Name)
	assert.True(t, p.Rollback)
	assert.Equal(t, []string{"a", "b"}, p.StepNames())
}

func TestPipeline_Run_Success(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, obs := newTestContext()

	p := NewPipeline("network", true,
		rec.step("resource-group", nil, nil),
		rec.step("security-group", nil, nil),
		rec.step("virtual-network", nil, nil),
	)

	require.NoError(t, p.Run(ctx))
	assert.Equal(t, []string{
		"provision:resource-group", "provision:security-group", "provision:virtual-network",
	}, rec.calls)

	types := obs.Types()
	assert.Equal(t, EventPipelineStarted, types[0])
	assert.Equal(t, EventPipelineCompleted, types[len(types)-1])
	assert.NotContains(t, types, EventRollbackStarted)
	assert.Equal(t, 1.0, testutil.ToFloat64(ctx.Metrics.stepTotal.WithLabelValues("network", "virtual-network", ResultSuccess)))
}

func TestPipeline_Run_PassesStateForward(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext()
	var seen string

	p := NewPipeline("network", false,
		&StepFunc{StepName: "produce", ProvisionFn: func(c *Context) error {
			c.State.SecurityGroupID = "nsg-1"
			return nil
		}},
		&StepFunc{StepName: "consume", ProvisionFn: func(c *Context) error {
			seen = c.State.SecurityGroupID
			return nil
		}},
	)

	require.NoError(t, p.Run(ctx))
	assert.Equal(t, "nsg-1", seen)
}

func TestPipeline_Run_StopsOnErrorAndRollsBack(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, obs := newTestContext()
	boom := errors.New("quota exceeded")

	p := NewPipeline("network", true,
		rec.step("s1", nil, nil),
		rec.step("s2", nil, nil),
		rec.step("s3", boom, nil),
		rec.step("s4", nil, nil),
	)

	err := p.Run(ctx)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "network", stepErr.Pipeline)
	assert.Equal(t, "s3", stepErr.Step)
	assert.Equal(t, 3, stepErr.Index)
	assert.NoError(t, stepErr.Rollback)
	assert.ErrorIs(t, err, boom)

	// s4 never runs; s3 (the failing step) is not reverted.
	assert.Equal(t, []string{
		"provision:s1", "provision:s2", "provision:s3",
		"revert:s2", "revert:s1",
	}, rec.calls)
	assert.Contains(t, obs.Types(), EventRollbackCompleted)
}

func TestPipeline_Run_NoRollbackWhenDisabled(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, obs := newTestContext()

	p := NewPipeline("storage", false,
		rec.step("s1", nil, nil),
		rec.step("s2", errors.New("boom"), nil),
		rec.step("s3", nil, nil),
	)

	err := p.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, []string{"provision:s1", "provision:s2"}, rec.calls)
	assert.NotContains(t, obs.Types(), EventRollbackStarted)
}

func TestPipeline_Run_FirstStepFails(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, _ := newTestContext()

	p := NewPipeline("network", true, rec.step("s1", errors.New("boom"), nil), rec.step("s2", nil, nil))

	err := p.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, []string{"provision:s1"}, rec.calls)
}

func TestPipeline_Run_RollbackFailuresAttached(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, _ := newTestContext()
	revertErr := errors.New("delete refused")

	p := NewPipeline("network", true,
		rec.step("s1", nil, nil),
		rec.step("s2", nil, revertErr),
		rec.step("s3", errors.New("boom"), nil),
	)

	err := p.Run(ctx)
	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)

	// The failing revert of s2 does not stop the revert of s1.
	assert.Equal(t, []string{"provision:s1", "provision:s2", "provision:s3", "revert:s2", "revert:s1"}, rec.calls)

	var rbErr *RollbackError
	require.ErrorAs(t, stepErr.Rollback, &rbErr)
	assert.Len(t, rbErr.Errors, 1)
	assert.ErrorIs(t, stepErr.Rollback, revertErr)
	assert.Contains(t, err.Error(), "rollback incomplete")
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, _ := newTestContext()
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	ctx.Context = cancelled

	p := NewPipeline("network", true, rec.step("s1", nil, nil))

	err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls)
}

func TestPipeline_Run_StepTimeout(t *testing.T) {
	t.Parallel()
	ctx, _ := newTestContext()
	ctx.Timeouts.Step = 10 * time.Millisecond

	p := NewPipeline("network", false, &StepFunc{StepName: "slow", ProvisionFn: func(c *Context) error {
		<-c.Done()
		return c.Err()
	}})

	err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPipeline_Destroy(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, _ := newTestContext()

	p := NewPipeline("network", true, rec.step("s1", nil, nil), &plainStep{name: "s2", rec: rec}, rec.step("s3", nil, nil))

	require.NoError(t, p.Destroy(ctx))
	assert.Equal(t, []string{"revert:s3", "revert:s1"}, rec.calls)
}

func TestPipeline_Destroy_SkipsMissingResources(t *testing.T) {
	t.Parallel()
	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}
	conflict := &azcore.ResponseError{StatusCode: http.StatusConflict, ErrorCode: "InUseSubnetCannotBeDeleted"}

	tests := []struct {
		name      string
		revertErr error
		wantErr   bool
	}{
		{name: "not found", revertErr: fmt.Errorf("delete endpoint: %w", notFound)},
		{name: "all joined not found", revertErr: errors.Join(notFound, notFound)},
		{name: "conflict", revertErr: conflict, wantErr: true},
		{name: "joined with conflict", revertErr: errors.Join(notFound, conflict), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			ctx, obs := newTestContext()
			p := NewPipeline("storage", false, rec.step("s1", nil, nil), rec.step("s2", nil, tt.revertErr))

			err := p.Destroy(ctx)

			assert.Equal(t, []string{"revert:s2", "revert:s1"}, rec.calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 1.0, testutil.ToFloat64(ctx.Metrics.rollbackTotal.WithLabelValues("storage", "s2", ResultError)))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1.0, testutil.ToFloat64(ctx.Metrics.rollbackTotal.WithLabelValues("storage", "s2", ResultSuccess)))
			assert.Contains(t, obs.Types(), EventRollbackStep)
		})
	}
}

func TestRollback_NotFoundIsAnError(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	ctx, _ := newTestContext()
	notFound := &azcore.ResponseError{StatusCode: http.StatusNotFound}

	err := Rollback(ctx, "network", []Step{rec.step("s1", nil, notFound)})

	var rbErr *RollbackError
	require.ErrorAs(t, err, &rbErr)
	assert.Len(t, rbErr.Errors, 1)
}

func TestStepError_Error(t *testing.T) {
	t.Parallel()

	err := &StepError{Pipeline: "network", Step: "workspace", Index: 4, Err: errors.New("boom")}
	assert.Equal(t, "network pipeline: workspace step (4) failed: boom", err.Error())
}
