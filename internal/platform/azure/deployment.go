package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// DeployTemplate runs an incremental ARM deployment with no parameters.
func (c *RealClient) DeployTemplate(ctx context.Context, resourceGroup, name string, template map[string]any) error {
	_, err := (&CreateOperation[armresources.DeploymentsClientCreateOrUpdateResponse]{
		Name:         name,
		ResourceType: "deployment",
		Begin: func(ctx context.Context) (*runtime.Poller[armresources.DeploymentsClientCreateOrUpdateResponse], error) {
			return c.deployments.BeginCreateOrUpdate(ctx, resourceGroup, name, armresources.Deployment{
				Properties: &armresources.DeploymentProperties{
					Mode:       to.Ptr(armresources.DeploymentModeIncremental),
					Template:   template,
					Parameters: map[string]any{},
				},
			}, nil)
		},
	}).Execute(ctx)
	return err
}
