package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/adbvnet/internal/config"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// Field names a property of a managed identity.
type Field string

const (
	// FieldPrincipalID is the object ID used for role assignments.
	FieldPrincipalID Field = "principalId"
	// FieldClientID is the application ID used for token acquisition.
	FieldClientID Field = "clientId"
)

var (
	// ErrWorkspaceLookup indicates the workspace could not be fetched.
	ErrWorkspaceLookup = errors.New("workspace lookup failed")
	// ErrManagedResourceGroupMissing indicates the workspace has no managed resource group.
	ErrManagedResourceGroupMissing = errors.New("workspace has no managed resource group")
	// ErrIdentityLookup indicates the identity could not be fetched.
	ErrIdentityLookup = errors.New("managed identity lookup failed")
	// ErrIdentityNotFound indicates the identity does not exist.
	ErrIdentityNotFound = errors.New("managed identity not found")
	// ErrIdentityFieldMissing indicates the identity exists but lacks the requested field.
	ErrIdentityFieldMissing = errors.New("managed identity field missing")
)

// Client is the subset of the Azure client the resolver needs.
type Client interface {
	GetWorkspace(ctx context.Context, resourceGroup, name string) (*azure.Workspace, error)
	GetResourceProperties(ctx context.Context, id, apiVersion string) (map[string]any, error)
}

// Resolver looks up the workspace-managed identity.
type Resolver struct {
	client         Client
	subscriptionID string
	resourceGroup  string
	workspace      string
	identityName   string
	apiVersion     string
}

// NewResolver creates a resolver for the workspace described by cfg.
func NewResolver(client Client, cfg *config.Config) *Resolver {
	return &Resolver{
		client:         client,
		subscriptionID: cfg.SubscriptionID,
		resourceGroup:  cfg.ResourceGroup,
		workspace:      cfg.Workspace.Name,
		identityName:   cfg.Identity.Name,
		apiVersion:     cfg.Identity.APIVersion,
	}
}

// IdentityID returns the resource ID of the managed identity.
func (r *Resolver) IdentityID(ctx context.Context) (string, error) {
	ws, err := r.client.GetWorkspace(ctx, r.resourceGroup, r.workspace)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWorkspaceLookup, r.workspace, err)
	}
	if ws == nil {
		return "", fmt.Errorf("%w: %s", ErrWorkspaceLookup, r.workspace)
	}

	managedRG := naming.LastSegment(ws.ManagedResourceGroupID)
	if managedRG == "" {
		return "", fmt.Errorf("%w: %s", ErrManagedResourceGroupMissing, r.workspace)
	}

	return naming.UserAssignedIdentity(r.subscriptionID, managedRG, r.identityName), nil
}

// Resolve returns the requested field of the managed identity.
func (r *Resolver) Resolve(ctx context.Context, field Field) (string, error) {
	id, err := r.IdentityID(ctx)
	if err != nil {
		return "", err
	}

	props, err := r.client.GetResourceProperties(ctx, id, r.apiVersion)
	if err != nil {
		if azure.IsNotFound(err) {
			return "", fmt.Errorf("%w: %s: %w", ErrIdentityNotFound, id, err)
		}
		return "", fmt.Errorf("%w: %s: %w", ErrIdentityLookup, id, err)
	}

	value, _ := props[string(field)].(string)
	if value == "" {
		return "", fmt.Errorf("%w: %s has no %s", ErrIdentityFieldMissing, id, field)
	}
	return value, nil
}
