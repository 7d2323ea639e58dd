package armtemplate

import (
	"fmt"

	"github.com/imamik/adbvnet/internal/util/naming"
)

const (
	schemaURL       = "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#"
	contentVersion  = "1.0.0.0"
	dnsAPIVersion   = "2020-06-01"
	groupAPIVersion = "2020-03-01"
	globalLocation  = "global"
)

// Template is an ARM deployment template document.
type Template = map[string]any

func newTemplate(resources ...map[string]any) Template {
	return Template{
		"$schema":        schemaURL,
		"contentVersion": contentVersion,
		"resources":      resources,
	}
}

// PrivateDNSZone returns a template creating zone and linking it to vnetID
// with auto-registration disabled.
func PrivateDNSZone(zone, vnetID string) Template {
	return newTemplate(
		map[string]any{
			"type":       "Microsoft.Network/privateDnsZones",
			"apiVersion": dnsAPIVersion,
			"name":       zone,
			"location":   globalLocation,
			"properties": map[string]any{},
		},
		map[string]any{
			"type":       "Microsoft.Network/privateDnsZones/virtualNetworkLinks",
			"apiVersion": dnsAPIVersion,
			"name":       zone + "/" + naming.DNSZoneLink(zone),
			"location":   globalLocation,
			"dependsOn": []string{
				fmt.Sprintf("[resourceId('Microsoft.Network/privateDnsZones', '%s')]", zone),
			},
			"properties": map[string]any{
				"virtualNetwork":      map[string]any{"id": vnetID},
				"registrationEnabled": false,
			},
		},
	)
}

// PrivateDNSZoneGroup returns a template attaching the "default" zone group
// to endpoint, with one zone config named configName pointing at zoneID.
func PrivateDNSZoneGroup(endpoint, configName, zoneID string) Template {
	return newTemplate(
		map[string]any{
			"type":       "Microsoft.Network/privateEndpoints/privateDnsZoneGroups",
			"apiVersion": groupAPIVersion,
			"name":       endpoint + "/" + naming.DefaultZoneGroup,
			"location":   globalLocation,
			"properties": map[string]any{
				"privateDnsZoneConfigs": []map[string]any{
					{
						"name": configName,
						"properties": map[string]any{
							"privateDnsZoneId": zoneID,
						},
					},
				},
			},
		},
	)
}
