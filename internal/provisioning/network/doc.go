// Package network builds the pipeline that provisions a VNet-injected
// Databricks workspace: resource group, network security group, virtual
// network with delegated subnets, workspace, and the workspace's private
// endpoint with its DNS zone and zone group.
//
// The pipeline runs with rollback enabled; each step can revert itself from
// configuration names alone, which also backs the destroy command.
package network
