// Package identity resolves the user-assigned managed identity that Azure
// creates inside a Databricks workspace's managed resource group.
//
// Resolution is a chain of lookups: the workspace yields its managed
// resource group ID, whose last segment names the group holding the
// identity; the identity is then fetched by resource ID and a single field
// (principalId or clientId) is read from its properties.
//
// Each link of the chain fails with its own sentinel error so callers can
// tell a failed call apart from a lookup that succeeded but returned no value.
package identity
