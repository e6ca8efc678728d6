package commands

import (
	"testing"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCatalogCredentials(t *testing.T) {
	cfg := shared.Config{CatalogURL: "https://catalog.example.com", CatalogUser: "admin", CatalogPass: "secret"}

	t.Run("should fall back to the configuration", func(t *testing.T) {
		cmd := &cobra.Command{}
		addCatalogFlags(cmd)
		url, user, pass := catalogCredentials(cmd, cfg)
		assert.Equal(t, "https://catalog.example.com", url)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)
	})

	t.Run("should prefer the flags", func(t *testing.T) {
		cmd := &cobra.Command{}
		addCatalogFlags(cmd)
		assert.NoError(t, cmd.Flags().Set("catalog-url", "http://localhost:8080"))
		assert.NoError(t, cmd.Flags().Set("catalog-user", "ci"))
		url, user, pass := catalogCredentials(cmd, cfg)
		assert.Equal(t, "http://localhost:8080", url)
		assert.Equal(t, "ci", user)
		assert.Equal(t, "secret", pass)
	})
}
