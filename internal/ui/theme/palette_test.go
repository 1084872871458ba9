package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
)

func TestParseHSL(t *testing.T) {
	white, err := ParseHSL("0 0% 100%")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", white.Hex())

	black, err := ParseHSL("0 0% 0%")
	require.NoError(t, err)
	assert.Equal(t, "#000000", black.Hex())

	red, err := ParseHSL("0 100% 50%")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", red.Hex())
}

func TestParseHSL_Invalid(t *testing.T) {
	for _, in := range []string{"", "0.5rem", "a 10% 10%", "0 x% 10%", "0 10% y%"} {
		_, err := ParseHSL(in)
		assert.Error(t, err, in)
	}
}

func TestPaletteFor(t *testing.T) {
	light := PaletteFor(entity.ThemeLight)
	dark := PaletteFor(entity.ThemeDark)

	require.NoError(t, light.Validate())
	require.NoError(t, dark.Validate())

	assert.Equal(t, "#ffffff", light.Background)
	assert.Equal(t, light.Foreground, dark.Background)
	assert.NotEqual(t, light.Ring, dark.Ring)
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor("#abc"))
	assert.NoError(t, ValidateHexColor("#a1b2c3"))
	assert.Error(t, ValidateHexColor("abc"))
	assert.Error(t, ValidateHexColor(""))
}
