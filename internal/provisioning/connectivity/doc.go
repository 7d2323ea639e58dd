// Package connectivity provides the private connectivity steps shared by the
// network, storage and endpoint pipelines: private endpoints, private DNS
// zones linked to the virtual network, and DNS zone groups binding an
// endpoint to a zone.
//
// Steps take their inputs from configuration and resolve runtime identifiers
// (subnet IDs, target resource IDs) through Resolve functions, so the same
// step works whether the identifier was produced earlier in the run, looked
// up from Azure, or formatted from names.
package connectivity
