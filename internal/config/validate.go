package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
)

// storageAccountRegex matches Azure storage account names: 3-24 lowercase letters or digits.
var storageAccountRegex = regexp.MustCompile(`^[a-z0-9]{3,24}$`)

// Validate checks the configuration shared by every pipeline.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscriptionId is required (or set %s)", EnvSubscriptionID)
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("resourceGroup is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location is required")
	}

	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}

	if err := c.validateWorkspace(); err != nil {
		return fmt.Errorf("workspace validation failed: %w", err)
	}

	return nil
}

// validateNetwork enforces that subnet prefixes are disjoint and fit inside the address space.
func (c *Config) validateNetwork() error {
	n := c.Network
	if n.Name == "" {
		return fmt.Errorf("network.name is required")
	}
	if len(n.AddressSpace) == 0 {
		return fmt.Errorf("network.addressSpace must contain at least one CIDR")
	}

	space := make([]netip.Prefix, 0, len(n.AddressSpace))
	for _, cidr := range n.AddressSpace {
		p, err := ParsePrefix(cidr)
		if err != nil {
			return err
		}
		space = append(space, p)
	}

	seen := make(map[string]bool, len(n.Subnets))
	prefixes := make([]netip.Prefix, 0, len(n.Subnets))
	for _, s := range n.Subnets {
		if s.Name == "" {
			return fmt.Errorf("subnet name is required")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate subnet name %q", s.Name)
		}
		seen[s.Name] = true

		p, err := ParsePrefix(s.AddressPrefix)
		if err != nil {
			return fmt.Errorf("subnet %s: %w", s.Name, err)
		}

		inside := false
		for _, sp := range space {
			if PrefixContains(sp, p) {
				inside = true
				break
			}
		}
		if !inside {
			return fmt.Errorf("subnet %s (%s) is outside the network address space %v", s.Name, s.AddressPrefix, n.AddressSpace)
		}

		for i, other := range prefixes {
			if PrefixesOverlap(p, other) {
				return fmt.Errorf("subnet %s (%s) overlaps subnet %s (%s)",
					s.Name, s.AddressPrefix, n.Subnets[i].Name, n.Subnets[i].AddressPrefix)
			}
		}
		prefixes = append(prefixes, p)

		if err := validatePolicy(s.PrivateEndpointNetworkPolicies); err != nil {
			return fmt.Errorf("subnet %s privateEndpointNetworkPolicies: %w", s.Name, err)
		}
		if err := validatePolicy(s.PrivateLinkServiceNetworkPolicies); err != nil {
			return fmt.Errorf("subnet %s privateLinkServiceNetworkPolicies: %w", s.Name, err)
		}
	}

	if n.Subnet(n.PrivateLinkSubnet) == nil {
		return fmt.Errorf("privateLinkSubnet %q is not one of the configured subnets", n.PrivateLinkSubnet)
	}

	return nil
}

func validatePolicy(v string) error {
	switch v {
	case "", PolicyEnabled, PolicyDisabled:
		return nil
	default:
		return fmt.Errorf("invalid value %q: must be %s or %s", v, PolicyEnabled, PolicyDisabled)
	}
}

func (c *Config) validateWorkspace() error {
	w := c.Workspace
	if w.Name == "" {
		return fmt.Errorf("workspace.name is required")
	}
	if w.PrivateEndpoint.Name == "" {
		return fmt.Errorf("workspace.privateEndpoint.name is required")
	}
	for _, name := range []string{w.PublicSubnet, w.PrivateSubnet} {
		s := c.Network.Subnet(name)
		if s == nil {
			return fmt.Errorf("workspace subnet %q is not one of the configured subnets", name)
		}
		if s.Delegation != DefaultDelegationService {
			return fmt.Errorf("workspace subnet %q must be delegated to %s", name, DefaultDelegationService)
		}
	}
	if w.PublicSubnet == w.PrivateSubnet {
		return fmt.Errorf("workspace public and private subnets must differ")
	}
	return nil
}

// ValidateStorage checks the fields used by the storage pipeline.
func (c *Config) ValidateStorage() error {
	s := c.Storage
	if !storageAccountRegex.MatchString(s.AccountName) {
		return fmt.Errorf("storage.accountName %q must be 3-24 lowercase letters or digits", s.AccountName)
	}
	if s.PrivateEndpoint.Name == "" {
		return fmt.Errorf("storage.privateEndpoint.name is required")
	}
	if s.RoleName == "" {
		return fmt.Errorf("storage.roleName is required")
	}
	return nil
}

// ValidateEndpoint checks the fields used by the endpoint pipeline.
func (c *Config) ValidateEndpoint() error {
	e := c.Endpoint
	if e.Name == "" {
		return fmt.Errorf("endpoint.name is required")
	}
	if !strings.HasPrefix(strings.ToLower(e.TargetResourceID), "/subscriptions/") {
		return fmt.Errorf("endpoint.targetResourceId %q must be a full resource ID", e.TargetResourceID)
	}
	return nil
}

// ValidateJobs checks the fields used by job submission. The workspace URL may
// be empty, in which case it is read from the workspace.
func (c *Config) ValidateJobs() error {
	j := c.Jobs
	if j.WorkspaceURL != "" {
		u, err := url.Parse(j.WorkspaceURL)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("jobs.workspaceUrl %q must be an https URL", j.WorkspaceURL)
		}
	}
	if c.TenantID == "" {
		return fmt.Errorf("tenantId is required for job submission (or set %s)", EnvTenantID)
	}
	if j.JarStorageAccount == "" {
		return fmt.Errorf("jobs.jarStorageAccount is required")
	}
	if j.Job.MainClass == "" {
		return fmt.Errorf("jobs.job.mainClass is required")
	}
	if j.Job.Jar == "" {
		return fmt.Errorf("jobs.job.jar is required")
	}
	if j.Cluster.Workers < 0 {
		return fmt.Errorf("jobs.cluster.workers must not be negative")
	}
	return nil
}
