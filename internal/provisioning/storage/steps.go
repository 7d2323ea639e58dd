package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/imamik/adbvnet/internal/identity"
	"github.com/imamik/adbvnet/internal/platform/azure"
	"github.com/imamik/adbvnet/internal/provisioning"
	"github.com/imamik/adbvnet/internal/util/naming"
)

// storageAccountStep looks up the existing storage account.
type storageAccountStep struct{}

func (s *storageAccountStep) Name() string { return StepStorageAccount }

func (s *storageAccountStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	name := cfg.Storage.AccountName
	id, err := ctx.Cloud.GetStorageAccountID(ctx, cfg.StorageResourceGroup(), name)
	if err != nil {
		return fmt.Errorf("failed to get storage account %s: %w", name, err)
	}
	ctx.State.StorageAccountID = id
	ctx.Observer.Printf("[%s] Found storage account %s", StepStorageAccount, id)
	return nil
}

// virtualNetworkLookupStep records the existing virtual network and its subnets.
type virtualNetworkLookupStep struct{}

func (s *virtualNetworkLookupStep) Name() string { return StepVirtualNetwork }

func (s *virtualNetworkLookupStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	vnet, err := ctx.Cloud.GetVirtualNetwork(ctx, cfg.ResourceGroup, cfg.Network.Name)
	if err != nil {
		return fmt.Errorf("failed to get virtual network %s: %w", cfg.Network.Name, err)
	}
	ctx.State.VirtualNetwork = vnet
	ctx.Observer.Printf("[%s] Found virtual network %s", StepVirtualNetwork, vnet.ID)
	return nil
}

func storageAccountID(ctx *provisioning.Context) (string, error) {
	if ctx.State.StorageAccountID == "" {
		return "", fmt.Errorf("storage account %s has not been looked up", ctx.Config.Storage.AccountName)
	}
	return ctx.State.StorageAccountID, nil
}

// managedIdentityStep resolves the principal ID of the workspace-managed identity.
type managedIdentityStep struct{}

func (s *managedIdentityStep) Name() string { return StepManagedIdentity }

func (s *managedIdentityStep) Provision(ctx *provisioning.Context) error {
	principalID, err := identity.NewResolver(ctx.Cloud, ctx.Config).Resolve(ctx, identity.FieldPrincipalID)
	if err != nil {
		return err
	}
	ctx.State.PrincipalID = principalID
	ctx.Observer.Printf("[%s] Resolved principal %s", StepManagedIdentity, principalID)
	return nil
}

// roleDefinitionStep finds the role definition to grant at subscription scope.
type roleDefinitionStep struct{}

func (s *roleDefinitionStep) Name() string { return StepRoleDefinition }

func (s *roleDefinitionStep) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config
	id, err := ctx.Cloud.FindRoleDefinitionID(ctx, naming.Subscription(cfg.SubscriptionID), cfg.Storage.RoleName)
	if err != nil {
		return fmt.Errorf("failed to find role %q: %w", cfg.Storage.RoleName, err)
	}
	ctx.State.RoleDefinitionID = id
	return nil
}

// roleAssignmentStep grants the role to the managed identity on the storage account.
type roleAssignmentStep struct{}

func (s *roleAssignmentStep) Name() string { return StepRoleAssignment }

func (s *roleAssignmentStep) Provision(ctx *provisioning.Context) error {
	st := ctx.State
	if st.PrincipalID == "" || st.RoleDefinitionID == "" || st.StorageAccountID == "" {
		return fmt.Errorf("role assignment needs principal, role definition and storage account IDs")
	}

	// Assignment names are GUIDs and must be unique per assignment.
	name := uuid.NewString()
	provisioning.LogResourceCreating(ctx.Observer, StepRoleAssignment, "role-assignment", name)
	id, err := ctx.Cloud.CreateRoleAssignment(ctx, st.StorageAccountID, name, azure.RoleAssignmentSpec{
		PrincipalID:      st.PrincipalID,
		RoleDefinitionID: st.RoleDefinitionID,
		PrincipalType:    azure.PrincipalTypeServicePrincipal,
	})
	if err != nil {
		return fmt.Errorf("failed to assign role %q to %s: %w", ctx.Config.Storage.RoleName, st.PrincipalID, err)
	}
	st.RoleAssignmentName = name
	st.RoleAssignmentID = id
	provisioning.LogResourceCreated(ctx.Observer, StepRoleAssignment, "role-assignment", name, id)
	return nil
}

func (s *roleAssignmentStep) Revert(ctx *provisioning.Context) error {
	st := ctx.State
	scope, names := st.StorageAccountID, []string{st.RoleAssignmentName}
	if st.RoleAssignmentName == "" {
		var err error
		if scope, names, err = findRoleAssignments(ctx); err != nil {
			return err
		}
	}

	for _, name := range names {
		provisioning.LogResourceDeleting(ctx.Observer, StepRoleAssignment, "role-assignment", name)
		if err := ctx.Cloud.DeleteRoleAssignment(ctx, scope, name); err != nil {
			return fmt.Errorf("failed to delete role assignment %s: %w", name, err)
		}
		provisioning.LogResourceDeleted(ctx.Observer, StepRoleAssignment, "role-assignment", name)
	}
	st.RoleAssignmentName = ""
	st.RoleAssignmentID = ""
	return nil
}

// findRoleAssignments locates the grant from configuration when this run did
// not create it. A missing workspace identity leaves nothing to revoke.
func findRoleAssignments(ctx *provisioning.Context) (string, []string, error) {
	cfg := ctx.Config
	scope, err := ctx.Cloud.GetStorageAccountID(ctx, cfg.StorageResourceGroup(), cfg.Storage.AccountName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get storage account %s: %w", cfg.Storage.AccountName, err)
	}

	principalID, err := identity.NewResolver(ctx.Cloud, cfg).Resolve(ctx, identity.FieldPrincipalID)
	if err != nil {
		if azure.IsNotFound(err) {
			ctx.Observer.Printf("[%s] Managed identity not found, nothing to revoke", StepRoleAssignment)
			return scope, nil, nil
		}
		return "", nil, err
	}

	roleID, err := ctx.Cloud.FindRoleDefinitionID(ctx, naming.Subscription(cfg.SubscriptionID), cfg.Storage.RoleName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find role %q: %w", cfg.Storage.RoleName, err)
	}

	names, err := ctx.Cloud.FindRoleAssignments(ctx, scope, principalID, roleID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find role assignments of %s: %w", principalID, err)
	}
	return scope, names, nil
}
