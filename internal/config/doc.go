// Package config defines the provisioning configuration model.
//
// The [Config] struct describes the desired Azure topology: the resource
// group, the injected virtual network and its subnets, the Databricks
// workspace, the storage account to connect, the cross-workspace private
// endpoint and the job to submit. It is loaded from a YAML file, completed
// with defaults and validated before any remote call is made.
package config
