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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/deppkg/vulndb"
	"github.com/spf13/cobra"
)

func NewSeverityCommand() *cobra.Command {
	severityCmd := cobra.Command{
		Use:     "severity <vector>...",
		Short:   "Computes base score and severity bucket of cvss vectors",
		Example: `deppkg-cli severity "CVSS:3.1/AV:N/AC:L/PR:N/UI:R/S:C/C:L/I:L/A:N"`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Vector", "Score", "Severity"})
			for _, vector := range args {
				score, err := vulndb.BaseScore(vector)
				if err != nil {
					t.AppendRow(table.Row{vector, "-", err.Error()})
					continue
				}
				t.AppendRow(table.Row{vector, fmt.Sprintf("%.1f", score), vulndb.BucketScore(score)})
			}
			t.Render()
		},
	}
	return &severityCmd
}
