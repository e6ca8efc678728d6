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

package normalize

import (
	"context"
	"fmt"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/pkg/errors"
	"github.com/spdx/tools-golang/spdx"
)

const (
	spdxLicenseURLPrefix = "https://spdx.org/licenses/"
	spdxNoAssertion      = "NOASSERTION"
)

// firstLicense keeps the first entry of a comma separated license list.
func firstLicense(license string) string {
	license, _, _ = strings.Cut(license, ",")
	return license
}

func spdxLicenseURL(license string) string {
	if license == "" {
		return ""
	}
	return spdxLicenseURLPrefix + license + ".html"
}

// CycloneDXLicenseTuples maps every component of the bom to its first license.
func CycloneDXLicenseTuples(bom *cdx.BOM) []dtos.ComponentDependencyTuple {
	if bom == nil || bom.Components == nil {
		return nil
	}

	tuples := make([]dtos.ComponentDependencyTuple, 0, len(*bom.Components))
	for _, component := range *bom.Components {
		license := ""
		if component.Licenses != nil && len(*component.Licenses) > 0 {
			if l := (*component.Licenses)[0].License; l != nil {
				if l.ID != "" {
					license = l.ID
				} else {
					license = firstLicense(l.Name)
				}
			}
		}

		tuples = append(tuples, dtos.ComponentDependencyTuple{
			PackageName:    component.Name,
			PackageVersion: component.Version,
			Purl:           component.PackageURL,
			PkgType:        PurlType(component.PackageURL),
			Name:           license,
			URL:            spdxLicenseURL(license),
		})
	}
	return tuples
}

// SPDXLicenseTuples maps every package of the document to its declared license.
func SPDXLicenseTuples(doc *spdx.Document) []dtos.ComponentDependencyTuple {
	if doc == nil {
		return nil
	}

	tuples := make([]dtos.ComponentDependencyTuple, 0, len(doc.Packages))
	for _, pkg := range doc.Packages {
		if pkg == nil {
			continue
		}

		purl := ""
		for _, ref := range pkg.PackageExternalReferences {
			if ref != nil && ref.RefType == spdx.PackageManagerPURL {
				purl = ref.Locator
			}
		}

		// the url is built from the complete expression
		license, url := "", ""
		if declared := pkg.PackageLicenseDeclared; declared != "" && declared != spdxNoAssertion {
			license = firstLicense(declared)
			url = spdxLicenseURL(declared)
		}

		tuples = append(tuples, dtos.ComponentDependencyTuple{
			PackageName:    pkg.PackageName,
			PackageVersion: pkg.PackageVersion,
			Purl:           purl,
			PkgType:        PurlType(purl),
			Name:           license,
			URL:            url,
		})
	}
	return tuples
}

// SafetyReportRow is one finding of a python safety report:
// [name, specifier, version, advisory, safety id, ...]
type SafetyReportRow []any

func (r SafetyReportRow) field(i int) string {
	switch v := r[i].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

type cveLookup interface {
	LookupCVE(ctx context.Context, packageName, safetyID string) (string, string)
}

// SafetyCVETuples maps the findings of a safety report to cve tuples.
func SafetyCVETuples(ctx context.Context, rows []SafetyReportRow, lookup cveLookup) ([]dtos.ComponentDependencyTuple, error) {
	tuples := make([]dtos.ComponentDependencyTuple, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, errors.Errorf("safety finding %d has %d fields, expected at least 5", i, len(row))
		}

		packageName := row.field(0)
		name, url := lookup.LookupCVE(ctx, packageName, row.field(4))
		tuples = append(tuples, dtos.ComponentDependencyTuple{
			PackageName:    packageName,
			PackageVersion: row.field(2),
			Name:           name,
			URL:            url,
			Summary:        row.field(3),
		})
	}
	return tuples, nil
}
