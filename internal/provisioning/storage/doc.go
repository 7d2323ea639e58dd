// Package storage builds the pipeline that connects an existing ADLS Gen2
// storage account to the workspace: a private endpoint on the private-link
// subnet, the blob DNS zone and zone group, and a role assignment granting
// the workspace-managed identity access to the account.
//
// Everything the pipeline reads (storage account, virtual network, workspace)
// must already exist. The pipeline runs without rollback.
package storage
