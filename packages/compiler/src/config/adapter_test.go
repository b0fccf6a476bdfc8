package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsx2mp-go/packages/compiler/src/config"
)

func TestAdapterPresets(t *testing.T) {
	t.Run("should use wx:key and static keys on wechat", func(t *testing.T) {
		want := &config.Adapter{
			Platform:         config.PlatformWeChat,
			KeyAttrName:      "wx:key",
			StyleKeyword:     true,
			NeedTransformKey: true,
			TriggerRef:       true,
		}
		if diff := cmp.Diff(want, config.AdapterFor(config.PlatformWeChat)); diff != "" {
			t.Errorf("AdapterFor() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should fall back to the ali preset", func(t *testing.T) {
		adapter := config.AdapterFor(config.Platform(0))
		assert.Equal(t, config.PlatformAli, adapter.Platform)
		assert.Equal(t, "a:key", adapter.KeyAttrName)
		assert.False(t, adapter.StyleKeyword)
	})

	t.Run("should apply options over the preset", func(t *testing.T) {
		adapter := config.NewAdapter(config.PlatformQuickApp,
			config.WithKeyAttrName("key"),
			config.WithTriggerRef(true),
		)
		assert.True(t, adapter.IsQuickApp())
		assert.Equal(t, "key", adapter.KeyAttrName)
		assert.True(t, adapter.TriggerRef)
		assert.True(t, adapter.StyleKeyword)
	})

	t.Run("should return fresh presets", func(t *testing.T) {
		a := config.AdapterFor(config.PlatformAli)
		a.KeyAttrName = "changed"
		assert.Equal(t, "a:key", config.AdapterFor(config.PlatformAli).KeyAttrName)
	})
}

func TestParsePlatform(t *testing.T) {
	for _, p := range config.Platforms {
		got, err := config.ParsePlatform(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := config.ParsePlatform("harmony")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "harmony")

	assert.Equal(t, "wxml", config.PlatformWeChat.TemplateExt())
	assert.Equal(t, "ux", config.PlatformQuickApp.TemplateExt())
}

func TestParseAdapter(t *testing.T) {
	t.Run("should override only the given keys", func(t *testing.T) {
		adapter, err := config.ParseAdapter([]byte("platform: bytedance\ntriggerRef: false\n"))
		require.NoError(t, err)

		want := &config.Adapter{
			Platform:         config.PlatformByteDance,
			KeyAttrName:      "tt:key",
			StyleKeyword:     true,
			NeedTransformKey: true,
			TriggerRef:       false,
		}
		if diff := cmp.Diff(want, adapter); diff != "" {
			t.Errorf("ParseAdapter() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should require a platform", func(t *testing.T) {
		_, err := config.ParseAdapter([]byte("key: k\n"))
		require.Error(t, err)
	})

	t.Run("should reject unknown platforms", func(t *testing.T) {
		_, err := config.ParseAdapter([]byte("platform: nope\n"))
		require.Error(t, err)
	})

	t.Run("should reject an empty key", func(t *testing.T) {
		_, err := config.ParseAdapter([]byte("platform: ali\nkey: \"\"\n"))
		require.Error(t, err)
	})

	t.Run("should round trip through a file", func(t *testing.T) {
		data, err := config.MarshalAdapter(config.AdapterFor(config.PlatformQuickApp))
		require.NoError(t, err)
		assert.Contains(t, string(data), "platform: quickapp")

		path := filepath.Join(t.TempDir(), "adapter.yaml")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		adapter, err := config.LoadAdapterFile(path)
		require.NoError(t, err)
		if diff := cmp.Diff(config.AdapterFor(config.PlatformQuickApp), adapter); diff != "" {
			t.Errorf("LoadAdapterFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should report missing files", func(t *testing.T) {
		_, err := config.LoadAdapterFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
