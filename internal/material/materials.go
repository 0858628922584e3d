package material

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMaterial is returned when a name is not present in the table.
var ErrUnknownMaterial = errors.New("material: unknown material")

// Model holds the strain-life constants of one material (SI units, MPa)
type Model struct {
	Name string `yaml:"name"`

	// Monotonic properties
	YieldStrength    float64 `yaml:"yield_strength"`    // s0 - 0.2% yield strength
	UltimateStrength float64 `yaml:"ultimate_strength"` // su - ultimate tensile strength
	ElasticModulus   float64 `yaml:"elastic_modulus"`   // E

	// Cyclic stress-strain curve
	CyclicStrengthCoefficient float64 `yaml:"cyclic_strength_coefficient"` // H'
	CyclicHardeningExponent   float64 `yaml:"cyclic_hardening_exponent"`   // n'

	// Strain-life constants
	FatigueStrengthCoefficient  float64 `yaml:"fatigue_strength_coefficient"`  // sf'
	FatigueStrengthExponent     float64 `yaml:"fatigue_strength_exponent"`     // b
	WalkerExponent              float64 `yaml:"walker_exponent"`               // y
	FatigueDuctilityCoefficient float64 `yaml:"fatigue_ductility_coefficient"` // ef'
	FatigueDuctilityExponent    float64 `yaml:"fatigue_ductility_exponent"`    // c
}

// Validate checks the constants the stress-strain curve depends on
func (m Model) Validate() error {
	if m.Name == "" {
		return &ValidationError{"material name is required"}
	}
	if m.ElasticModulus <= 0 {
		return &ValidationError{fmt.Sprintf("%s: elastic modulus must be positive", m.Name)}
	}
	if m.CyclicStrengthCoefficient <= 0 {
		return &ValidationError{fmt.Sprintf("%s: cyclic strength coefficient H' must be positive", m.Name)}
	}
	if m.CyclicHardeningExponent <= 0 {
		return &ValidationError{fmt.Sprintf("%s: cyclic strain hardening exponent n' must be positive", m.Name)}
	}
	if m.UltimateStrength <= 0 {
		return &ValidationError{fmt.Sprintf("%s: ultimate tensile strength must be positive", m.Name)}
	}
	return nil
}

// ValidationError represents an invalid material definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// builtin holds the default material table
var builtin = []Model{
	{
		Name:                        "2024 T351-AL",
		YieldStrength:               379,
		UltimateStrength:            455,
		ElasticModulus:              73100,
		CyclicStrengthCoefficient:   662,
		CyclicHardeningExponent:     0.07,
		FatigueStrengthCoefficient:  927,
		FatigueStrengthExponent:     -0.113,
		WalkerExponent:              0.5,
		FatigueDuctilityCoefficient: 0.409,
		FatigueDuctilityExponent:    -0.713,
	},
	{
		Name:                        "SAE1015",
		YieldStrength:               228,
		UltimateStrength:            415,
		ElasticModulus:              207000,
		CyclicStrengthCoefficient:   1349,
		CyclicHardeningExponent:     0.282,
		FatigueStrengthCoefficient:  1020,
		FatigueStrengthExponent:     -0.138,
		WalkerExponent:              0.735,
		FatigueDuctilityCoefficient: 0.439,
		FatigueDuctilityExponent:    -0.513,
	},
	{
		Name:                        "Ti-AI-4V",
		YieldStrength:               1185,
		UltimateStrength:            1233,
		ElasticModulus:              117000,
		CyclicStrengthCoefficient:   1772,
		CyclicHardeningExponent:     0.106,
		FatigueStrengthCoefficient:  2030,
		FatigueStrengthExponent:     -0.104,
		WalkerExponent:              0.5,
		FatigueDuctilityCoefficient: 0.841,
		FatigueDuctilityExponent:    -0.688,
	},
	{
		Name:                        "AISI4340 Aircraft",
		YieldStrength:               1103,
		UltimateStrength:            1172,
		ElasticModulus:              207000,
		CyclicStrengthCoefficient:   1655,
		CyclicHardeningExponent:     0.131,
		FatigueStrengthCoefficient:  1758,
		FatigueStrengthExponent:     -0.0977,
		WalkerExponent:              0.65,
		FatigueDuctilityCoefficient: 2.12,
		FatigueDuctilityExponent:    -0.774,
	},
	{
		// Same constants as SAE1015 in the published source table
		Name:                        "AISI 4340 (409 HB)",
		YieldStrength:               228,
		UltimateStrength:            415,
		ElasticModulus:              207000,
		CyclicStrengthCoefficient:   1349,
		CyclicHardeningExponent:     0.282,
		FatigueStrengthCoefficient:  1020,
		FatigueStrengthExponent:     -0.138,
		WalkerExponent:              0.735,
		FatigueDuctilityCoefficient: 0.439,
		FatigueDuctilityExponent:    -0.513,
	},
}

// Table is a named collection of materials
type Table struct {
	models map[string]Model
}

// Default returns a table holding the built-in materials
func Default() *Table {
	t := &Table{models: make(map[string]Model, len(builtin))}
	for _, m := range builtin {
		t.models[m.Name] = m
	}
	return t
}

// With returns a copy of the table extended with custom materials.
// A custom entry replaces a built-in entry of the same name.
func (t *Table) With(custom ...Model) (*Table, error) {
	out := &Table{models: make(map[string]Model, len(t.models)+len(custom))}
	for name, m := range t.models {
		out.models[name] = m
	}
	for _, m := range custom {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		out.models[m.Name] = m
	}
	return out, nil
}

// Lookup returns the material registered under name
func (t *Table) Lookup(name string) (Model, error) {
	m, ok := t.models[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Names returns the material names in sorted order
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.models))
	for name := range t.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every material sorted by name
func (t *Table) All() []Model {
	names := t.Names()
	models := make([]Model, len(names))
	for i, name := range names {
		models[i] = t.models[name]
	}
	return models
}
