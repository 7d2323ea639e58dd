package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// CreateOperation encapsulates a long-running create-or-update call for any
// ARM resource: start the operation, then block on the poller.
//
// Usage example:
//
//	resp, err := (&CreateOperation[armnetwork.SecurityGroupsClientCreateOrUpdateResponse]{
//	    Name:         name,
//	    ResourceType: "network security group",
//	    Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.SecurityGroupsClientCreateOrUpdateResponse], error) {
//	        return c.securityGroups.BeginCreateOrUpdate(ctx, rg, name, params, nil)
//	    },
//	}).Execute(ctx)
type CreateOperation[T any] struct {
	Name         string
	ResourceType string

	// Begin starts the operation and returns its poller
	Begin func(ctx context.Context) (*runtime.Poller[T], error)
}

// Execute starts the operation and waits for it to reach a terminal state.
func (op *CreateOperation[T]) Execute(ctx context.Context) (T, error) {
	var zero T
	poller, err := op.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s %s: %w", op.ResourceType, op.Name, err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed waiting for %s %s: %w", op.ResourceType, op.Name, err)
	}
	return resp, nil
}

// DeleteOperation encapsulates a long-running delete for any ARM resource.
// Deleting a missing resource surfaces the service's error unchanged so the
// caller can report it.
type DeleteOperation[T any] struct {
	Name         string
	ResourceType string

	// Begin starts the deletion and returns its poller
	Begin func(ctx context.Context) (*runtime.Poller[T], error)
}

// Execute starts the deletion and waits for it to complete.
func (op *DeleteOperation[T]) Execute(ctx context.Context) error {
	poller, err := op.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", op.ResourceType, op.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed waiting for %s %s deletion: %w", op.ResourceType, op.Name, err)
	}
	return nil
}
