package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads, completes and validates the configuration at path.
func Load(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML data, applies environment overrides and defaults,
// then validates the result.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseConfig parses YAML data into a Config, rejecting unknown fields.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// applyEnv fills identity fields from the environment when the file leaves them empty.
func (c *Config) applyEnv() {
	if c.SubscriptionID == "" {
		c.SubscriptionID = os.Getenv(EnvSubscriptionID)
	}
	if c.TenantID == "" {
		c.TenantID = os.Getenv(EnvTenantID)
	}
	if c.Jobs.WorkspaceURL == "" {
		c.Jobs.WorkspaceURL = os.Getenv(EnvDatabricksWorkspaceURL)
	}
}

// ApplyDefaults fills every empty field that has a well-known default.
func (c *Config) ApplyDefaults() error {
	if c.Location == "" {
		c.Location = DefaultLocation
	}

	n := &c.Network
	if n.SecurityGroup == "" {
		n.SecurityGroup = DefaultSecurityGroup
	}
	if len(n.AddressSpace) == 0 {
		n.AddressSpace = []string{DefaultAddressSpace}
	}
	if n.PrivateLinkSubnet == "" {
		n.PrivateLinkSubnet = DefaultPrivateLinkSubnet
	}

	w := &c.Workspace
	if w.SKU == "" {
		w.SKU = DefaultWorkspaceSKU
	}
	if w.PublicSubnet == "" {
		w.PublicSubnet = DefaultPublicSubnet
	}
	if w.PrivateSubnet == "" {
		w.PrivateSubnet = DefaultPrivateSubnet
	}
	if w.PrivateDNSZone == "" {
		w.PrivateDNSZone = DefaultWorkspaceDNSZone
	}
	if w.PrivateEndpoint.ConnectionName == "" {
		w.PrivateEndpoint.ConnectionName = w.PrivateEndpoint.Name
	}
	if len(w.PrivateEndpoint.GroupIDs) == 0 {
		w.PrivateEndpoint.GroupIDs = []string{DefaultWorkspaceGroupID}
	}
	if w.PrivateEndpoint.ZoneConfigName == "" {
		w.PrivateEndpoint.ZoneConfigName = w.PrivateDNSZone
	}

	if len(n.Subnets) == 0 {
		subnets, err := DefaultSubnets(n.AddressSpace[0], w.PublicSubnet, w.PrivateSubnet, n.PrivateLinkSubnet)
		if err != nil {
			return err
		}
		n.Subnets = subnets
	}

	s := &c.Storage
	if s.PrivateDNSZone == "" {
		s.PrivateDNSZone = DefaultStorageDNSZone
	}
	if s.RoleName == "" {
		s.RoleName = DefaultStorageRole
	}
	if s.PrivateEndpoint.ConnectionName == "" {
		s.PrivateEndpoint.ConnectionName = DefaultStorageConnection
	}
	if len(s.PrivateEndpoint.GroupIDs) == 0 {
		s.PrivateEndpoint.GroupIDs = []string{DefaultStorageGroupID}
	}
	if s.PrivateEndpoint.ZoneConfigName == "" {
		s.PrivateEndpoint.ZoneConfigName = DefaultStorageZoneConfig
	}

	if c.Identity.Name == "" {
		c.Identity.Name = DefaultIdentityName
	}
	if c.Identity.APIVersion == "" {
		c.Identity.APIVersion = DefaultIdentityAPIVersion
	}

	e := &c.Endpoint
	if e.ConnectionName == "" {
		e.ConnectionName = e.Name
	}
	if len(e.GroupIDs) == 0 {
		e.GroupIDs = []string{DefaultWorkspaceGroupID}
	}
	if e.PrivateDNSZone == "" {
		e.PrivateDNSZone = DefaultWorkspaceDNSZone
	}

	c.applyJobDefaults()
	return nil
}

func (c *Config) applyJobDefaults() {
	cl := &c.Jobs.Cluster
	if cl.Name == "" {
		cl.Name = DefaultClusterName
	}
	if cl.SparkVersion == "" {
		cl.SparkVersion = DefaultSparkVersion
	}
	if cl.NodeType == "" {
		cl.NodeType = DefaultNodeType
	}
	if cl.Workers == 0 {
		cl.Workers = DefaultClusterWorkers
	}
	if cl.AutoTerminationMinutes == 0 {
		cl.AutoTerminationMinutes = DefaultAutoTermination
	}

	j := &c.Jobs.Job
	if j.Name == "" {
		j.Name = DefaultJobName
	}
	if j.TaskKey == "" {
		j.TaskKey = DefaultTaskKey
	}
	if j.Description == "" {
		j.Description = DefaultTaskDescription
	}
	if c.Jobs.JarStorageAccount == "" {
		c.Jobs.JarStorageAccount = c.Storage.AccountName
	}
}

// DefaultConfigPath returns the default config file path in the working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(cwd, DefaultConfigFilename)
}
