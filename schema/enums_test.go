package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/huangsam/armory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected schema.Target
		ok       bool
	}{
		{"Canonical Average", "Average", schema.TargetAverage, true},
		{"Canonical Heavy", "Heavy", schema.TargetHeavy, true},
		{"Lower Case", "light", schema.TargetLight, true},
		{"Upper Case", "MEDIUM", schema.TargetMedium, true},
		{"Unknown", "Plate", 0, false},
		{"Empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schema.ParseTarget(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	for _, target := range schema.AllTargets {
		got, ok := schema.ParseTarget(target.String())
		require.True(t, ok, target.String())
		assert.Equal(t, target, got)
	}
	for _, dt := range schema.AllDamageTypes {
		got, ok := schema.ParseDamageType(dt.String())
		require.True(t, ok, dt.String())
		assert.Equal(t, dt, got)
	}
	for _, u := range schema.AllUnits {
		got, ok := schema.ParseUnit(u.String())
		require.True(t, ok, u.String())
		assert.Equal(t, u, got)
	}
	for _, k := range schema.AllAttackKinds {
		got, ok := schema.ParseAttackKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.False(t, schema.Target(-1).Valid())
	assert.False(t, schema.Target(len(schema.AllTargets)).Valid())
	assert.False(t, schema.DamageType(99).Valid())
	assert.False(t, schema.Unit(99).Valid())
	assert.Equal(t, "Target(7)", schema.Target(7).String())
	assert.Empty(t, schema.Unit(42).Suffix())
	assert.Equal(t, "atk/s", schema.UnitSpeed.Suffix())
}

func TestEnumJSON(t *testing.T) {
	w := schema.Weapon{
		Name:       "Messer",
		DamageType: schema.Cut,
		Attacks: map[schema.AttackKind]schema.Attack{
			schema.Stab: {WindupMs: 400, ComboMs: 200, RangeCm: 90, Damage: 30},
		},
	}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Messer",
		"damage_type": "cut",
		"attacks": {"stab": {"windup_ms": 400, "combo_ms": 200, "range_cm": 90, "damage": 30}}
	}`, string(data))

	data, err = json.Marshal(schema.TargetHeavy)
	require.NoError(t, err)
	assert.Equal(t, `"Heavy"`, string(data))
}

func TestUnitSetAndRange(t *testing.T) {
	set := schema.NewUnitSet(schema.UnitSpeed, schema.UnitDamage)
	assert.True(t, set.Has(schema.UnitSpeed))
	assert.False(t, set.Has(schema.UnitTime))

	var empty schema.UnitSet
	assert.False(t, empty.Has(schema.UnitSpeed))

	assert.True(t, schema.UnitRange{Min: 3, Max: 3}.Degenerate())
	assert.False(t, schema.UnitRange{Min: 1, Max: 3}.Degenerate())
}

func TestEnumUnmarshalJSON(t *testing.T) {
	var payload struct {
		Target     schema.Target     `json:"target"`
		DamageType schema.DamageType `json:"damage_type"`
		Unit       schema.Unit       `json:"unit"`
		Categories []schema.Category `json:"categories"`
	}
	data := `{"target":"heavy","damage_type":"Pierce","unit":"distance","categories":["Damage - Stab","speed-average"]}`
	require.NoError(t, json.Unmarshal([]byte(data), &payload))
	assert.Equal(t, schema.TargetHeavy, payload.Target)
	assert.Equal(t, schema.Pierce, payload.DamageType)
	assert.Equal(t, schema.UnitDistance, payload.Unit)
	assert.Equal(t, []schema.Category{schema.DamageStab, schema.SpeedAverage}, payload.Categories)

	var target schema.Target
	err := json.Unmarshal([]byte(`"Plate"`), &target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "Plate"`)
	assert.Error(t, json.Unmarshal([]byte(`3`), &target))
}
