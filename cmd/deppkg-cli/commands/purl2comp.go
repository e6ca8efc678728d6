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
	"log/slog"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/spf13/cobra"
)

func NewPurl2CompCommand() *cobra.Command {
	purl2compCmd := cobra.Command{
		Use:     "purl2comp <purl>...",
		Short:   "Creates the catalog components of packages including their provenance",
		Example: "deppkg-cli purl2comp --catalog-url https://catalog.example.com pkg:npm/left-pad@1.3.0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.ReadConfig()
			if err != nil {
				return err
			}
			w, err := newWiring(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			session, err := login(cmd.Context(), w.catalogClient, cmd, cfg)
			if err != nil {
				return err
			}

			for _, purl := range args {
				if err := w.identityService.EnsureComponentForPurl(cmd.Context(), session, purl); err != nil {
					slog.Error("could not create component", "purl", purl, "err", err)
					continue
				}
				slog.Info("component created", "purl", purl)
			}
			return nil
		},
	}
	addCatalogFlags(&purl2compCmd)
	return &purl2compCmd
}
