package services

import (
	"sort"
	"strings"
)

// servicesForGroup maps a group name to the daemon services it starts.
var servicesForGroup = map[string][]string{
	"all": split(
		"hydrangea_harvester hydrangea_timelord_launcher hydrangea_timelord hydrangea_farmer " +
			"hydrangea_full_node hydrangea_wallet hydrangea_data_layer hydrangea_data_layer_http"),
	"data":                   split("hydrangea_wallet hydrangea_data_layer"),
	"data_layer_http":        split("hydrangea_data_layer_http"),
	"node":                   split("hydrangea_full_node"),
	"harvester":              split("hydrangea_harvester"),
	"farmer":                 split("hydrangea_harvester hydrangea_farmer hydrangea_full_node hydrangea_wallet"),
	"farmer-no-wallet":       split("hydrangea_harvester hydrangea_farmer hydrangea_full_node"),
	"farmer-only":            split("hydrangea_farmer"),
	"timelord":               split("hydrangea_timelord_launcher hydrangea_timelord hydrangea_full_node"),
	"timelord-only":          split("hydrangea_timelord"),
	"timelord-launcher-only": split("hydrangea_timelord_launcher"),
	"wallet":                 split("hydrangea_wallet"),
	"introducer":             split("hydrangea_introducer"),
	"simulator":              split("hydrangea_full_node_simulator"),
	"crawler":                split("hydrangea_crawler"),
	"seeder":                 split("hydrangea_crawler hydrangea_seeder"),
	"seeder-only":            split("hydrangea_seeder"),
}

func split(s string) []string {
	return strings.Fields(s)
}

// AllGroups returns every known group name, sorted.
func AllGroups() []string {
	groups := make([]string, 0, len(servicesForGroup))
	for g := range servicesForGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// ForGroups expands group names into their services, preserving group order.
// Unknown groups are skipped; use ValidGroup to check membership first.
func ForGroups(groups ...string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, servicesForGroup[g]...)
	}
	return out
}

// ValidGroup reports whether the given group name is known.
func ValidGroup(group string) bool {
	_, ok := servicesForGroup[group]
	return ok
}

// ValidService reports whether any group starts the given service.
func ValidService(service string) bool {
	for _, svcs := range servicesForGroup {
		for _, s := range svcs {
			if s == service {
				return true
			}
		}
	}
	return false
}
