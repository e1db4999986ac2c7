package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/armory/schema"
	"gopkg.in/yaml.v3"
)

//go:embed weapons.yaml
var weaponsRawData []byte

// catalogFile is the top-level structure of a catalog YAML document.
type catalogFile struct {
	Weapons []weaponEntry `yaml:"weapons"`
}

type weaponEntry struct {
	Name       string                 `yaml:"name"`
	DamageType string                 `yaml:"damage_type"`
	Attacks    map[string]attackEntry `yaml:"attacks"`
}

type attackEntry struct {
	WindupMs float64 `yaml:"windup_ms"`
	ComboMs  float64 `yaml:"combo_ms"`
	RangeCm  float64 `yaml:"range_cm"`
	Damage   float64 `yaml:"damage"`
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
	builtinErr  error
)

// Builtin returns the catalog embedded in the binary, parsed on first access.
func Builtin() (*Catalog, error) {
	builtinOnce.Do(func() {
		builtin, builtinErr = Parse(weaponsRawData)
	})
	return builtin, builtinErr
}

// LoadFile parses a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Load returns the catalog at path, or the builtin catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	return LoadFile(path)
}

// Parse decodes a catalog YAML document. Enumerations are resolved here so
// that everything past this point only deals with typed values.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}

	weapons := make([]schema.Weapon, 0, len(f.Weapons))
	for _, e := range f.Weapons {
		dt, ok := schema.ParseDamageType(e.DamageType)
		if !ok {
			return nil, fmt.Errorf("catalog: weapon %q: unknown damage type %q", e.Name, e.DamageType)
		}
		attacks := make(map[schema.AttackKind]schema.Attack, len(e.Attacks))
		for kind, a := range e.Attacks {
			k, ok := schema.ParseAttackKind(kind)
			if !ok {
				return nil, fmt.Errorf("catalog: weapon %q: unknown attack kind %q", e.Name, kind)
			}
			attacks[k] = schema.Attack(a)
		}
		weapons = append(weapons, schema.Weapon{Name: e.Name, DamageType: dt, Attacks: attacks})
	}
	return New(weapons)
}
