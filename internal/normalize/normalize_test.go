package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelscan/internal/normalize"
)

func TestToNumber_CommaDecimal(t *testing.T) {
	got := normalize.ToNumber("4,5")
	require.NotNil(t, got)
	assert.InDelta(t, 4.5, *got, 1e-9)
}

func TestToNumber_NumberWithUnit(t *testing.T) {
	got := normalize.ToNumber("500 g")
	require.NotNil(t, got)
	assert.InDelta(t, 500.0, *got, 1e-9)
}

func TestToNumber_Passthrough(t *testing.T) {
	got := normalize.ToNumber(12.75)
	require.NotNil(t, got)
	assert.InDelta(t, 12.75, *got, 1e-9)

	got = normalize.ToNumber(3)
	require.NotNil(t, got)
	assert.InDelta(t, 3.0, *got, 1e-9)
}

func TestToNumber_Signed(t *testing.T) {
	got := normalize.ToNumber("-1,2 g")
	require.NotNil(t, got)
	assert.InDelta(t, -1.2, *got, 1e-9)
}

func TestToNumber_Unrecognizable(t *testing.T) {
	assert.Nil(t, normalize.ToNumber(nil))
	assert.Nil(t, normalize.ToNumber("no digits here"))
	assert.Nil(t, normalize.ToNumber(true))
	assert.Nil(t, normalize.ToNumber([]string{"4,5"}))
}

func TestToUnit_KnownUnits(t *testing.T) {
	cases := map[string]string{
		"500 g": "g",
		"1.5L":  "l",
		"2kg":   "kg",
		"12 oz": "oz",
		"6 db":  "db",
	}
	for input, want := range cases {
		got := normalize.ToUnit(input)
		require.NotNil(t, got, "input %q", input)
		assert.Equal(t, want, *got, "input %q", input)
	}
}

func TestToUnit_FirstVocabularyMatchWins(t *testing.T) {
	// The vocabulary is scanned in order, so "l" matches before "ml" is
	// ever considered.
	got := normalize.ToUnit("330 ml")
	require.NotNil(t, got)
	assert.Equal(t, "l", *got)
}

func TestToUnit_Unknown(t *testing.T) {
	assert.Nil(t, normalize.ToUnit("6 pieces"))
	assert.Nil(t, normalize.ToUnit(""))
}

func TestApply_NutritionFieldsBecomeFloats(t *testing.T) {
	data := map[string]any{
		"nutrition": map[string]any{
			"energy_kj": "1200 kJ",
			"fat_g":     "4,5",
			"protein_g": 7.2,
			"sugars_g":  nil,
			"fiber_g":   "n/a",
			"salt_g":    nil,
			"sodium_g":  nil,
		},
	}

	got := normalize.Apply(data)

	nutrition := got["nutrition"].(map[string]any)
	assert.InDelta(t, 1200.0, nutrition["energy_kj"].(float64), 1e-9)
	assert.InDelta(t, 4.5, nutrition["fat_g"].(float64), 1e-9)
	assert.InDelta(t, 7.2, nutrition["protein_g"].(float64), 1e-9)
	assert.Nil(t, nutrition["sugars_g"])
	assert.Nil(t, nutrition["fiber_g"])
}

func TestApply_DerivesSodiumFromSalt(t *testing.T) {
	data := map[string]any{
		"nutrition": map[string]any{
			"salt_g":   2.0,
			"sodium_g": nil,
		},
	}

	got := normalize.Apply(data)

	nutrition := got["nutrition"].(map[string]any)
	require.NotNil(t, nutrition["sodium_g"])
	assert.InDelta(t, 0.8, nutrition["sodium_g"].(float64), 1e-9)
}

func TestApply_KeepsExplicitSodium(t *testing.T) {
	data := map[string]any{
		"nutrition": map[string]any{
			"salt_g":   2.0,
			"sodium_g": 1.1,
		},
	}

	got := normalize.Apply(data)

	nutrition := got["nutrition"].(map[string]any)
	assert.InDelta(t, 1.1, nutrition["sodium_g"].(float64), 1e-9)
}

func TestApply_StringNetQuantity(t *testing.T) {
	data := map[string]any{"net_quantity": "500 g"}

	got := normalize.Apply(data)

	qty := got["net_quantity"].(map[string]any)
	assert.InDelta(t, 500.0, qty["amount"].(float64), 1e-9)
	assert.Equal(t, "g", qty["unit"])
}

func TestApply_StringServingSize(t *testing.T) {
	data := map[string]any{
		"nutrition": map[string]any{
			"serving_size": "25g",
		},
	}

	got := normalize.Apply(data)

	nutrition := got["nutrition"].(map[string]any)
	ss := nutrition["serving_size"].(map[string]any)
	assert.InDelta(t, 25.0, ss["amount"].(float64), 1e-9)
	assert.Equal(t, "g", ss["unit"])
}

func TestApply_NilInput(t *testing.T) {
	got := normalize.Apply(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
