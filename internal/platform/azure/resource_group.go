package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/imamik/adbvnet/internal/util/labels"
)

// CreateResourceGroup creates or updates the resource group and returns its ID.
func (c *RealClient) CreateResourceGroup(ctx context.Context, name, location string, tags map[string]string) (string, error) {
	resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(location),
		Tags:     labels.ToAzure(tags),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create resource group %s: %w", name, err)
	}
	return deref(resp.ID), nil
}

// DeleteResourceGroup deletes the resource group and everything in it.
func (c *RealClient) DeleteResourceGroup(ctx context.Context, name string) error {
	return (&DeleteOperation[armresources.ResourceGroupsClientDeleteResponse]{
		Name:         name,
		ResourceType: "resource group",
		Begin: func(ctx context.Context) (*runtime.Poller[armresources.ResourceGroupsClientDeleteResponse], error) {
			return c.groups.BeginDelete(ctx, name, nil)
		},
	}).Execute(ctx)
}
