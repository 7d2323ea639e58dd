package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// FindRoleDefinitionID returns the ID of the first role definition named
// roleName at scope.
func (c *RealClient) FindRoleDefinitionID(ctx context.Context, scope, roleName string) (string, error) {
	pager := c.roleDefinitions.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("roleName eq '%s'", roleName)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list role definitions: %w", err)
		}
		for _, def := range page.Value {
			if def != nil && def.ID != nil {
				return *def.ID, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q at %s", ErrRoleNotFound, roleName, scope)
}

// CreateRoleAssignment grants spec.RoleDefinitionID to spec.PrincipalID at scope.
func (c *RealClient) CreateRoleAssignment(ctx context.Context, scope, name string, spec RoleAssignmentSpec) (string, error) {
	principalType := spec.PrincipalType
	if principalType == "" {
		principalType = PrincipalTypeServicePrincipal
	}
	resp, err := c.roleAssignments.Create(ctx, scope, name, armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			PrincipalID:      to.Ptr(spec.PrincipalID),
			RoleDefinitionID: to.Ptr(spec.RoleDefinitionID),
			PrincipalType:    to.Ptr(armauthorization.PrincipalType(principalType)),
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create role assignment %s: %w", name, err)
	}
	return deref(resp.ID), nil
}

// FindRoleAssignments lists the assignments of principalID at scope and
// keeps those for roleDefinitionID. Inherited assignments are skipped.
func (c *RealClient) FindRoleAssignments(ctx context.Context, scope, principalID, roleDefinitionID string) ([]string, error) {
	pager := c.roleAssignments.NewListForScopePager(scope, &armauthorization.RoleAssignmentsClientListForScopeOptions{
		Filter: to.Ptr(fmt.Sprintf("principalId eq '%s'", principalID)),
	})
	var names []string
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list role assignments at %s: %w", scope, err)
		}
		for _, ra := range page.Value {
			if ra == nil || ra.Name == nil || ra.Properties == nil {
				continue
			}
			if !strings.EqualFold(deref(ra.Properties.Scope), scope) {
				continue
			}
			if !sameRoleDefinition(deref(ra.Properties.RoleDefinitionID), roleDefinitionID) {
				continue
			}
			names = append(names, *ra.Name)
		}
	}
	return names, nil
}

// sameRoleDefinition compares role definition IDs by their trailing GUID,
// since the same role is reported under different scopes.
func sameRoleDefinition(a, b string) bool {
	return a != "" && strings.EqualFold(a[strings.LastIndex(a, "/")+1:], b[strings.LastIndex(b, "/")+1:])
}

// DeleteRoleAssignment removes a role assignment by name.
func (c *RealClient) DeleteRoleAssignment(ctx context.Context, scope, name string) error {
	if _, err := c.roleAssignments.Delete(ctx, scope, name, nil); err != nil {
		return fmt.Errorf("failed to delete role assignment %s: %w", name, err)
	}
	return nil
}
