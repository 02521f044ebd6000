package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFieldAcceptsAlphanumeric(t *testing.T) {
	for _, value := range []string{"home", "kitchen2", "A", "0", "Motion42"} {
		ok, msg := ValidateField("majorThing", true, value)
		require.True(t, ok, "value %q", value)
		require.Empty(t, msg)
	}
}

func TestValidateFieldRejectsNonAlphanumeric(t *testing.T) {
	for _, value := range []string{"home;", "kit chen", "a-b", "motion!", "входная", "a.b"} {
		ok, msg := ValidateField("event", true, value)
		require.False(t, ok, "value %q", value)
		require.Equal(t, "event must be alphanumeric.", msg)
	}
}

func TestValidateFieldRequired(t *testing.T) {
	ok, msg := ValidateField("majorThing", true, "")
	require.False(t, ok)
	require.Equal(t, "majorThing is required.", msg)
}

func TestValidateFieldOptionalAbsent(t *testing.T) {
	ok, msg := ValidateField("minorThing", false, "")
	require.True(t, ok)
	require.Empty(t, msg)
}

func TestValidateFieldOptionalPresentButInvalid(t *testing.T) {
	ok, msg := ValidateField("minorThing", false, "kit chen")
	require.False(t, ok)
	require.Equal(t, "minorThing must be alphanumeric.", msg)
}

func TestIsISO8601(t *testing.T) {
	valid := []string{
		"2024-03-01T12:30:00Z",
		"2024-03-01T12:30:00.123Z",
		"2024-03-01T12:30:00+02:00",
		"2024-03-01T12:30:00",
		"2024-03-01",
	}
	for _, value := range valid {
		require.True(t, IsISO8601(value), "value %q", value)
	}

	invalid := []string{"", "yesterday", "03/01/2024", "2024-13-01", "1709294400"}
	for _, value := range invalid {
		require.False(t, IsISO8601(value), "value %q", value)
	}
}
