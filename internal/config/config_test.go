package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()

	restore := func(orig string, listeners MultiStringFlag) func() {
		return func() {
			*pagesRoot = orig
			listenHTTP = listeners
		}
	}(*pagesRoot, listenHTTP)
	t.Cleanup(restore)

	*pagesRoot = root
	listenHTTP = MultiStringFlag{value: []string{"127.0.0.1:8080,127.0.0.1:8081"}, separator: ","}

	cfg, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, root, cfg.General.RootDir)
	require.Equal(t, []string{"127.0.0.1:8080", "127.0.0.1:8081"}, cfg.Listeners.HTTP)
	require.Equal(t, RewriteModeSPA, cfg.Rewrite.Mode)
	require.Equal(t, "index.html", cfg.Rewrite.RootObject)
	require.Equal(t, "extension", cfg.Rewrite.Policy)
	require.Equal(t, 1024, cfg.General.MaxURILength)

	LogConfig(cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	orig := listenHTTP
	t.Cleanup(func() { listenHTTP = orig })

	listenHTTP = MultiStringFlag{separator: ","}

	_, err := loadConfig()
	require.True(t, errors.Is(err, ErrNoListener))
}
