// Package endpoint builds the pipeline that connects the local virtual
// network to a Databricks workspace living in another deployment: a private
// endpoint targeting the remote workspace and a zone group registering it in
// the existing workspace DNS zone.
//
// Subnet and zone IDs are formatted from configuration names rather than
// looked up. The pipeline runs without rollback.
package endpoint
