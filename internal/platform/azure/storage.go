package azure

import (
	"context"
	"fmt"
)

// GetStorageAccountID returns the resource ID of an existing storage account.
func (c *RealClient) GetStorageAccountID(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.accounts.GetProperties(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get storage account %s: %w", name, err)
	}
	if resp.ID == nil {
		return "", fmt.Errorf("storage account %s has no resource ID", name)
	}
	return *resp.ID, nil
}
