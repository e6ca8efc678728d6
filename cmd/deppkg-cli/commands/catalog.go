// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/deppkg/client"
	"github.com/l3montree-dev/deppkg/database"
	"github.com/l3montree-dev/deppkg/database/repositories"
	"github.com/l3montree-dev/deppkg/origin"
	"github.com/l3montree-dev/deppkg/services"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/vulndb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog-url", "", "base url of the catalog, defaults to CATALOG_URL")
	cmd.Flags().String("catalog-user", "", "catalog user, defaults to CATALOG_USER")
	cmd.Flags().String("catalog-pass", "", "catalog password, defaults to CATALOG_PASS")
}

// catalogCredentials prefers the flags over the configuration.
func catalogCredentials(cmd *cobra.Command, cfg shared.Config) (string, string, string) {
	url, _ := cmd.Flags().GetString("catalog-url")
	user, _ := cmd.Flags().GetString("catalog-user")
	pass, _ := cmd.Flags().GetString("catalog-pass")
	if url == "" {
		url = cfg.CatalogURL
	}
	if user == "" {
		user = cfg.CatalogUser
	}
	if pass == "" {
		pass = cfg.CatalogPass
	}
	return url, user, pass
}

func login(ctx context.Context, catalogClient shared.CatalogClient, cmd *cobra.Command, cfg shared.Config) (shared.CatalogSession, error) {
	url, user, pass := catalogCredentials(cmd, cfg)
	if url == "" || user == "" {
		return shared.CatalogSession{}, errors.New("catalog url and user are required")
	}
	return catalogClient.Login(ctx, url, user, pass)
}

// wiring builds the services the server would receive through dependency injection.
type wiring struct {
	pool            *pgxpool.Pool
	catalogClient   shared.CatalogClient
	identityService shared.ComponentIdentityService
	vulnScanService shared.VulnScanService
}

func newWiring(cfg shared.Config) (*wiring, error) {
	pool, db, err := database.NewConnection(database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	catalogClient := client.NewCatalogClient()
	identityService := services.NewComponentIdentityService(
		catalogClient,
		origin.NewResolverFromConfig(cfg),
		repositories.NewCatalogComponentRepository(db),
	)
	vulnScanService := services.NewVulnScanService(
		vulndb.NewOSVService(cfg),
		identityService,
		repositories.NewVulnerabilityRepository(db),
		repositories.NewComponentDependencyRepository(db),
		cfg,
	)

	return &wiring{
		pool:            pool,
		catalogClient:   catalogClient,
		identityService: identityService,
		vulnScanService: vulnScanService,
	}, nil
}

func (w *wiring) Close() {
	w.pool.Close()
}
