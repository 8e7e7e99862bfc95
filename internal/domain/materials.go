package domain

import "strings"

// Material is a copper-scrap grade handled by the yard.
type Material string

const (
	MaterialCobreMel       Material = "cobre_mel"
	MaterialCobreMisto     Material = "cobre_misto"
	MaterialCobreQueimado  Material = "cobre_queimado"
	MaterialCobreEsmaltado Material = "cobre_esmaltado"
	MaterialCaboCobre      Material = "cabo_cobre"
	MaterialLatao          Material = "latao"
	MaterialBronze         Material = "bronze"
	MaterialBorra          Material = "borra"
)

// Materials is the fixed catalog, in display order.
var Materials = []Material{
	MaterialCobreMel,
	MaterialCobreMisto,
	MaterialCobreQueimado,
	MaterialCobreEsmaltado,
	MaterialCaboCobre,
	MaterialLatao,
	MaterialBronze,
	MaterialBorra,
}

// ParseMaterial normalizes s and looks it up in the catalog.
func ParseMaterial(s string) (Material, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Materials {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}
