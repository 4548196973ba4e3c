// Package taxonomy maps policy topics onto the donor industries that lobby them.
package taxonomy

import "sort"

// topics is never mutated after init; accessors hand out copies.
var topics = map[string][]string{
	"Health": {
		"Health Professionals",
		"Pharmaceuticals",
		"Health Services",
		"Hospitals & Nursing Homes",
	},
	"Finance": {
		"Real Estate",
		"Commercial Banks",
		"Securities & Investment",
		"Insurance",
		"Finance",
	},
	"Technology": {
		"Telecom Services",
		"Internet",
		"Electronics",
	},
	"Defense": {
		"Defense Aerospace",
	},
	"Energy": {
		"Oil & Gas",
		"Electric Utilities",
		"Gas Utilities",
	},
	"Law": {
		"Lawyers & Lobbyists",
		"Consulting",
		"Business Services",
	},
	"Education": {
		"Education",
	},
	"Foreign Relations": {
		"Pro-Israel",
	},
	"Government Operations": {
		"Government",
	},
}

// Industries returns the industries for topic. Lookup is exact and case-sensitive.
func Industries(topic string) ([]string, bool) {
	industries, ok := topics[topic]
	if !ok {
		return nil, false
	}
	return append([]string(nil), industries...), true
}

// Topics lists every known topic label in ascending order.
func Topics() []string {
	out := make([]string, 0, len(topics))
	for t := range topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
