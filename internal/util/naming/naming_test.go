package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	sub, rg := "sub-1", "adqueryvnettestrg"
	vnet := VirtualNetwork(sub, rg, "vnet")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Subscription",
			got:      Subscription(sub),
			expected: "/subscriptions/sub-1",
		},
		{
			name:     "ResourceGroup",
			got:      ResourceGroup(sub, rg),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg",
		},
		{
			name:     "SecurityGroup",
			got:      SecurityGroup(sub, rg, "databricksnsg"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Network/networkSecurityGroups/databricksnsg",
		},
		{
			name:     "VirtualNetwork",
			got:      vnet,
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Network/virtualNetworks/vnet",
		},
		{
			name:     "Subnet",
			got:      Subnet(vnet, "PrivateLink"),
			expected: vnet + "/subnets/PrivateLink",
		},
		{
			name:     "Subnet trailing slash",
			got:      Subnet("vnet-123/", "PrivateLink"),
			expected: "vnet-123/subnets/PrivateLink",
		},
		{
			name:     "PrivateEndpoint",
			got:      PrivateEndpoint(sub, rg, "pe"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Network/privateEndpoints/pe",
		},
		{
			name:     "PrivateDNSZoneGroup",
			got:      PrivateDNSZoneGroup(sub, rg, "pe"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Network/privateEndpoints/pe/privateDnsZoneGroups/default",
		},
		{
			name:     "PrivateDNSZone",
			got:      PrivateDNSZone(sub, rg, "privatelink.azuredatabricks.net"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Network/privateDnsZones/privatelink.azuredatabricks.net",
		},
		{
			name:     "Workspace",
			got:      Workspace(sub, rg, "ws"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Databricks/workspaces/ws",
		},
		{
			name:     "StorageAccount",
			got:      StorageAccount(sub, rg, "adls"),
			expected: "/subscriptions/sub-1/resourceGroups/adqueryvnettestrg/providers/Microsoft.Storage/storageAccounts/adls",
		},
		{
			name:     "UserAssignedIdentity",
			got:      UserAssignedIdentity(sub, "mrg-abc", "dbmanagedidentity"),
			expected: "/subscriptions/sub-1/resourceGroups/mrg-abc/providers/Microsoft.ManagedIdentity/userAssignedIdentities/dbmanagedidentity",
		},
		{
			name:     "DNSZoneLink",
			got:      DNSZoneLink("privatelink.dfs.core.windows.net"),
			expected: "privatelink.dfs.core.windows.net-link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/subscriptions/s/resourceGroups/mrg-abc", "mrg-abc"},
		{"/subscriptions/s/resourceGroups/mrg-abc/", "mrg-abc"},
		{"mrg-abc", "mrg-abc"},
		{"", ""},
		{"/", ""},
	}
	for _, tt := range tests {
		if got := LastSegment(tt.in); got != tt.want {
			t.Errorf("LastSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
