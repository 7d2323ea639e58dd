// Package provisioning provides the step sequencer and rollback sequencer
// shared by every provisioning pipeline.
//
// # Subpackages
//
//   - network/: Resource group, NSG, VNet, workspace, workspace private endpoint and DNS
//   - storage/: Storage private endpoint and DNS, managed identity role grant
//   - endpoint/: Private endpoint to a workspace in another network
//
// # Core Types
//
// Context carries configuration, state, the Azure client, observer and metrics.
// Step defines a provisioning step with Name() and Provision() methods; steps
// that create something also implement Reverter.
// State accumulates identifiers produced by each step for the steps after it.
// Pipeline runs steps strictly in order and, when enabled, rolls back the
// completed steps in reverse order after the first failure.
package provisioning
