package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsNegativeStart(t *testing.T) {
	c := DefaultConfig()
	c.Start = -1
	assert.ErrorIs(t, c.Validate(), ErrNegativeStart)
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	c := DefaultConfig()
	c.Timeout = 0
	assert.ErrorIs(t, c.Validate(), ErrNonPositiveTimeout)
}

func TestValidateRejectsOutOfRangeLutSize(t *testing.T) {
	c := DefaultConfig()
	c.LutSize = 7
	assert.ErrorIs(t, c.Validate(), ErrInvalidLutSize)

	c.LutSize = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidLutSize)
}

func TestValidateRejectsNonPositivePriority(t *testing.T) {
	c := DefaultConfig()
	c.Priority = 0
	assert.ErrorIs(t, c.Validate(), ErrNonPositivePriority)
}

func TestValidateRejectsUnknownReorderingMode(t *testing.T) {
	c := DefaultConfig()
	c.ReorderingMode = ReorderingMode(4)
	assert.ErrorIs(t, c.Validate(), ErrInvalidReorderingMode)
}

func TestValidateRejectsBadBreakingChar(t *testing.T) {
	c := DefaultConfig()
	c.Breaking = "Cz"
	assert.ErrorIs(t, c.Validate(), ErrInvalidBreakingChar)
}

func TestParseBreakingSetsExpectedFlags(t *testing.T) {
	f, err := ParseBreaking("Cly")
	require.NoError(t, err)
	assert.True(t, f.Commutative)
	assert.True(t, f.LexOrder)
	assert.True(t, f.SymVars)
	assert.False(t, f.Involution)
	assert.False(t, f.SelEquiv)
	assert.False(t, f.AllZero)
	assert.False(t, f.Transitivity)
}

func TestParseBreakingEmptyMaskIsAllFalse(t *testing.T) {
	f, err := ParseBreaking("")
	require.NoError(t, err)
	assert.Equal(t, BreakingFlags{}, f)
}

func TestReorderingModeString(t *testing.T) {
	assert.Equal(t, "none", ReorderNone.String())
	assert.Equal(t, "naive", ReorderNaive.String())
	assert.Equal(t, "local", ReorderLocal.String())
	assert.Equal(t, "global", ReorderGlobal.String())
	assert.Equal(t, "unknown", ReorderingMode(99).String())
}
