package azure

import (
	"context"
	"fmt"
)

// GetResourceProperties fetches any resource by ID and returns its
// properties. A resource without properties yields a nil map.
func (c *RealClient) GetResourceProperties(ctx context.Context, id, apiVersion string) (map[string]any, error) {
	resp, err := c.resources.GetByID(ctx, id, apiVersion, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get resource %s: %w", id, err)
	}
	if resp.Properties == nil {
		return nil, nil
	}
	props, ok := resp.Properties.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("resource %s has unexpected properties type %T", id, resp.Properties)
	}
	return props, nil
}
