// Package labels builds the tag sets applied to provisioned Azure resources.
//
// Every resource carries a managed-by tag and the workspace it belongs to,
// merged with the user's configured tags.
package labels
