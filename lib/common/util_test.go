package common

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetENVValue(t *testing.T) {
	key := "VOTRIFY_TEST_GET_ENV_VALUE"

	os.Unsetenv(key)
	require.Equal(t, "default", GetENVValue(key, "default"))

	os.Setenv(key, "")
	defer os.Unsetenv(key)
	require.Equal(t, "", GetENVValue(key, "default"), "set but empty must not fall back")

	os.Setenv(key, "showme")
	require.Equal(t, "showme", GetENVValue(key, "default"))
}

func TestIsStringArrayEqual(t *testing.T) {
	require.True(t, IsStringArrayEqual(nil, []string{}))
	require.True(t, IsStringArrayEqual([]string{"a", "b"}, []string{"a", "b"}))
	require.False(t, IsStringArrayEqual([]string{"a", "b"}, []string{"b", "a"}))
	require.False(t, IsStringArrayEqual([]string{"a"}, []string{"a", "b"}))
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("alice bob\n\ncarol\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"alice bob", "", "carol"}, lines)

	require.Equal(t, []string{"a", "b"}, SplitLines([]byte("a\nb")))
	require.Nil(t, SplitLines(nil))
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	require.Equal(t, 36, len(a))
	require.NotEqual(t, a, GenerateUUID())
}
