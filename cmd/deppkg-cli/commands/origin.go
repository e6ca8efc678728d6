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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/deppkg/normalize"
	"github.com/l3montree-dev/deppkg/origin"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/l3montree-dev/deppkg/utils"
	"github.com/spf13/cobra"
)

func NewOriginCommand() *cobra.Command {
	originCmd := cobra.Command{
		Use:     "origin <purl>...",
		Short:   "Resolves the source repository and commit of packages",
		Example: "deppkg-cli origin pkg:npm/left-pad@1.3.0 pkg:pypi/requests@2.31.0",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shared.ReadConfig()
			if err != nil {
				return err
			}
			resolver := origin.NewResolverFromConfig(cfg)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Purl", "Repository", "Commit"})
			for _, purl := range args {
				coordinate, err := normalize.ParseCoordinate(purl)
				if err != nil {
					t.AppendRow(table.Row{purl, "invalid purl", ""})
					continue
				}
				record := resolver.Resolve(cmd.Context(), coordinate)
				t.AppendRow(table.Row{purl, utils.SafeDereference(record.RepoURL), utils.SafeDereference(record.CommitSHA)})
			}
			t.Render()
			return nil
		},
	}
	return &originCmd
}
