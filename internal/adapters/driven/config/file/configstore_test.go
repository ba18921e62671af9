package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("backend.url", "http://search.local"))
	require.NoError(t, store.Set("backend.timeout_seconds", 10))
	require.NoError(t, store.Set("filters.categories", []string{"Wired", "Byte"}))

	assert.Equal(t, "http://search.local", store.GetString("backend.url"))
	assert.Equal(t, 10, store.GetInt("backend.timeout_seconds"))
	assert.Equal(t, []string{"Wired", "Byte"}, store.GetStringSlice("filters.categories"))

	// Wrong types and missing keys fall back to zero values
	assert.Equal(t, "", store.GetString("backend.timeout_seconds"))
	assert.Equal(t, 0, store.GetInt("backend.url"))
	assert.Nil(t, store.GetStringSlice("backend.url"))
	assert.Nil(t, store.GetStringSlice("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("backend.url", "http://search.local"))
	require.NoError(t, store.Set("search.debounce_ms", 250))
	require.NoError(t, store.Set("filters.categories", []string{"Wired"}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[backend]")
	assert.Contains(t, string(raw), "[search]")

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://search.local", reopened.GetString("backend.url"))
	assert.Equal(t, 250, reopened.GetInt("search.debounce_ms"))
	assert.Equal(t, []string{"Wired"}, reopened.GetStringSlice("filters.categories"))
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[backend]
url = "https://example.org"
rate_limit = 0

[query]
extra_operators = ["NEAR"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://example.org", store.GetString("backend.url"))
	v, ok := store.Get("backend.rate_limit")
	assert.True(t, ok)
	assert.EqualValues(t, 0, v)
	assert.Equal(t, []string{"NEAR"}, store.GetStringSlice("query.extra_operators"))
}

func TestConfigStore_Unset(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("backend.url", "http://a"))
	require.NoError(t, store.Unset("backend.url"))
	require.NoError(t, store.Unset("never.set"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	_, ok := reopened.Get("backend.url")
	assert.False(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("backend.url", "http://a"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("search.debounce_ms", n)
			_ = store.GetInt("search.debounce_ms")
		}(i)
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"backend.url":        "http://a",
		"backend.rate_limit": 3,
		"top":                true,
	})

	assert.Equal(t, map[string]any{
		"backend": map[string]any{"url": "http://a", "rate_limit": 3},
		"top":     true,
	}, nested)
	assert.Equal(t, map[string]any{
		"backend.url":        "http://a",
		"backend.rate_limit": 3,
		"top":                true,
	}, flattenMap(nested, ""))
}

func TestConfigStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- store.Watch(ctx, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	content := []byte("[backend]\nurl = \"http://reloaded\"\n")
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(store.Path(), content, 0600)
		select {
		case <-changed:
			return true
		case <-time.After(200 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, "http://reloaded", store.GetString("backend.url"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
