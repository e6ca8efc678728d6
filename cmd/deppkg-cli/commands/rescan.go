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
	"time"

	"github.com/l3montree-dev/deppkg/shared"
	"github.com/spf13/cobra"
)

func NewRescanCommand() *cobra.Command {
	rescanCmd := cobra.Command{
		Use:   "rescan",
		Short: "Queries the vulnerability database again for every stored license package",
		Args:  cobra.ExactArgs(0),
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

			var session *shared.CatalogSession
			withCatalog, err := cmd.Flags().GetBool("catalog")
			if err != nil {
				return err
			}
			if withCatalog {
				s, err := login(cmd.Context(), w.catalogClient, cmd, cfg)
				if err != nil {
					return err
				}
				session = &s
			}

			start := time.Now()
			if err := w.vulnScanService.RescanAll(cmd.Context(), session); err != nil {
				return err
			}
			slog.Info("rescan done", "duration", time.Since(start))
			return nil
		},
	}
	rescanCmd.Flags().Bool("catalog", false, "if set, also creates the catalog components of every package")
	addCatalogFlags(&rescanCmd)
	return &rescanCmd
}
