package util

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorfKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("zone not found")
	err := WrapErrorf(cause, ErrNotFound, "source zone %q", "Mill")

	assert.Equal(t, `source zone "Mill": zone not found`, err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, ErrorCode(err), ErrNotFound)

	assert.ErrorIs(t, ErrorCode(cause), ErrInternalServerError)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, "a", Min("b", "a"))

	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)

	assert.Equal(t, "north gate", NormalizeName("  North Gate "))
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a,, b c ,"))
	assert.Empty(t, SplitList(""))

	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ReadConfig(dir))
	assert.Equal(t, "./data/air_sensors.csv", viper.GetString(CONFIG_ZONES_FILE))
	assert.Equal(t, 6060, viper.GetInt(CONFIG_API_PORT))

	cfg := "ZONES_FILE: \"/srv/zones.csv\"\nAPI_PORT: 7070\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o600))
	require.NoError(t, ReadConfig(dir))
	assert.Equal(t, "/srv/zones.csv", viper.GetString(CONFIG_ZONES_FILE))
	assert.Equal(t, 7070, viper.GetInt(CONFIG_API_PORT))
	assert.Equal(t, "./data/zone_links.csv", viper.GetString(CONFIG_LINKS_FILE))
}
