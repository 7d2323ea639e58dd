// Package naming builds Azure resource names and resource IDs.
//
// Resource IDs follow the Azure Resource Manager layout
// /subscriptions/{sub}/resourceGroups/{rg}/providers/{namespace}/{type}/{name}.
// Steps that only know names format IDs with these helpers instead of
// looking the resource up.
package naming
