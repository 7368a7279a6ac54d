package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStatus(t *testing.T) {
	cases := map[string]string{
		"In Use":    StatusInUse,
		"  in use ": StatusInUse,
		"AVAILABLE": StatusAvailable,
		"retired\t": StatusRetired,
	}
	for in, want := range cases {
		got, ok := CanonicalStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := CanonicalStatus("Broken")
	assert.False(t, ok)
	assert.Equal(t, "Broken", got)
}

func TestValidate(t *testing.T) {
	ok := ItemFields{DeviceName: "Dell Latitude 5420", Status: "In Use"}
	assert.True(t, Validate(ok).OK())
	assert.NoError(t, Validate(ok).Err())

	// серийный номер, локация и ответственный не проверяются
	assert.True(t, Validate(ItemFields{DeviceName: "x", Status: "retired", Location: "  "}).OK())

	res := Validate(ItemFields{DeviceName: "   ", Status: "Broken"})
	require.Len(t, res.Problems, 2)
	assert.Equal(t, "device_name", res.Problems[0].Field)
	assert.Equal(t, "status", res.Problems[1].Field)

	err := res.Err()
	assert.True(t, errors.Is(err, ErrValidation))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Problems, 2)
	assert.Contains(t, err.Error(), "device_name: is required")
}

func TestLocationOptions(t *testing.T) {
	opts := LocationOptions([]string{"crudo", " parisa ", "", "HR", "Other"})
	assert.Equal(t, "IT Office", opts[0])
	assert.Equal(t, LocationOther, opts[len(opts)-1])
	assert.Contains(t, opts, "crudo")
	assert.Contains(t, opts, "parisa")
	assert.Len(t, opts, len(DefaultLocations)+3)
}

func TestNormalizeAndSplitLocation(t *testing.T) {
	assert.Equal(t, "Lobby", NormalizeLocation("Lobby", "ignored"))
	assert.Equal(t, "Roof Terrace", NormalizeLocation(LocationOther, "  Roof Terrace "))

	opts := LocationOptions(DefaultSiteLocations)
	choice, other := SplitLocation("Server Room", opts)
	assert.Equal(t, "Server Room", choice)
	assert.Empty(t, other)

	choice, other = SplitLocation("Roof Terrace", opts)
	assert.Equal(t, LocationOther, choice)
	assert.Equal(t, "Roof Terrace", other)

	// буквальное "Other" как значение остаётся ручным вводом
	choice, other = SplitLocation(LocationOther, opts)
	assert.Equal(t, LocationOther, choice)
	assert.Equal(t, LocationOther, other)
}

func TestItemFields_Values(t *testing.T) {
	f := ItemFields{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, f.Values())
}
