package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unioffice/measurement"
)

func TestLookup_AllRolesPresent(t *testing.T) {
	roles := []StyleRole{
		StyleNameHeading,
		StyleTitleLine,
		StyleContactLine,
		StyleSectionHeading,
		StyleBodyText,
		StylePeriodLabel,
		StyleSummaryText,
	}

	for _, role := range roles {
		st, err := Lookup(role)
		require.NoError(t, err, "role %s", role)
		assert.Equal(t, fontFamily, st.Font, "role %s", role)
		assert.NotZero(t, st.Size, "role %s", role)
	}
}

func TestLookup_UnknownRoleFails(t *testing.T) {
	_, err := Lookup(StyleRole("footer-text"))
	require.Error(t, err)
	var composeErr *ComposeError
	assert.ErrorAs(t, err, &composeErr)
}

func TestRegistry_ExactConstants(t *testing.T) {
	name, err := Lookup(StyleNameHeading)
	require.NoError(t, err)
	assert.Equal(t, measurement.Distance(17*measurement.Point), name.Size)
	assert.True(t, name.Bold)
	assert.Equal(t, accentBlue, name.Color)

	title, err := Lookup(StyleTitleLine)
	require.NoError(t, err)
	assert.Equal(t, measurement.Distance(15*measurement.Point), title.Size)
	assert.Equal(t, titleBlue, title.Color)

	heading, err := Lookup(StyleSectionHeading)
	require.NoError(t, err)
	assert.Equal(t, measurement.Distance(11*measurement.Point), heading.Size)
	assert.True(t, heading.Bold)
	assert.Equal(t, measurement.Distance(12*measurement.Point), heading.LeftIndent)

	period, err := Lookup(StylePeriodLabel)
	require.NoError(t, err)
	assert.True(t, period.Bold)
	assert.Equal(t, accentBlue, period.Color)

	summary, err := Lookup(StyleSummaryText)
	require.NoError(t, err)
	assert.True(t, summary.Italic)
	assert.Equal(t, grayText, summary.Color)
}
