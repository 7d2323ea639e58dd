// Package armtemplate builds the ARM deployment templates used for private
// DNS wiring: a private DNS zone with its virtual network link, and the DNS
// zone group that binds a private endpoint to that zone.
//
// Templates are plain map[string]any documents so they can be handed to the
// deployments API as-is and inspected in tests.
package armtemplate
