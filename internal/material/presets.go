package material

import (
	"fmt"
	"strings"
)

// Preset is the parameter record for one material. Stresses and moduli are in Pa.
type Preset struct {
	Name                 string
	DisplayName          string
	ElasticModulus       float64
	YieldStress          float64
	FractureStress       float64
	MaxStrain            float64
	HardeningExponent    float64
	HardeningCoefficient float64
	PlateauWidth         float64 // strain span of the yield plateau, may be zero
	Color                string  // curve color name
}

// ElasticLimitStrain is the strain at which the linear regime ends.
func (p Preset) ElasticLimitStrain() float64 {
	return p.YieldStress / p.ElasticModulus
}

// PlateauEndStrain is the strain at which hardening begins.
func (p Preset) PlateauEndStrain() float64 {
	return p.ElasticLimitStrain() + p.PlateauWidth
}

var presets = map[string]Preset{
	"steel": {
		Name: "steel", DisplayName: "Steel",
		ElasticModulus: 200e9, YieldStress: 250e6, FractureStress: 400e6,
		MaxStrain: 0.20, HardeningExponent: 0.2, HardeningCoefficient: 800e6,
		PlateauWidth: 0.01, Color: "blue",
	},
	"aluminum": {
		Name: "aluminum", DisplayName: "Aluminum",
		ElasticModulus: 70e9, YieldStress: 150e6, FractureStress: 300e6,
		MaxStrain: 0.12, HardeningExponent: 0.15, HardeningCoefficient: 500e6,
		PlateauWidth: 0.005, Color: "green",
	},
	"copper": {
		Name: "copper", DisplayName: "Copper",
		ElasticModulus: 110e9, YieldStress: 210e6, FractureStress: 350e6,
		MaxStrain: 0.35, HardeningExponent: 0.25, HardeningCoefficient: 650e6,
		PlateauWidth: 0.0, Color: "red",
	},
}

// order fixes the selector order.
var order = []string{"steel", "aluminum", "copper"}

// classroom aliases
var aliases = map[string]string{
	"aco":       "steel",
	"aço":       "steel",
	"aluminio":  "aluminum",
	"alumínio":  "aluminum",
	"aluminium": "aluminum",
	"cobre":     "copper",
}

// Lookup returns the preset registered under name. Matching is case-insensitive
// and accepts the classroom aliases.
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMaterial, name, strings.Join(order, ", "))
	}
	return p, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Preset {
	p, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Names lists the canonical preset names in selector order.
func Names() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}

// All returns every preset in selector order.
func All() []Preset {
	all := make([]Preset, 0, len(order))
	for _, name := range order {
		all = append(all, presets[name])
	}
	return all
}
