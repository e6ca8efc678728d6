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

package dtos

type DepType string

const (
	DepTypeLicense DepType = "license"
	DepTypeCVE     DepType = "cve"
)

// ComponentDependencyTuple is the flat shape every sbom adapter produces.
// Name carries the license or vulnerability id depending on the DepType.
type ComponentDependencyTuple struct {
	PackageName    string
	PackageVersion string
	Purl           string
	PkgType        string
	Name           string
	URL            string
	Summary        string
}

// PackageRow is the input of a vulnerability scan.
type PackageRow struct {
	PackageName    string
	PackageVersion string
	Purl           string
}

type Purl2CompRequest struct {
	Purl string `json:"purl" validate:"required"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ServiceName string `json:"service_name"`
}

type SBOMTypeResponse struct {
	SBOMType string `json:"SBOMType"`
}

// SafetyAdvisory is one entry of the pyup.io insecure_full.json database.
type SafetyAdvisory struct {
	ID       string   `json:"id"`
	CVE      string   `json:"cve"`
	Advisory string   `json:"advisory"`
	Specs    []string `json:"specs"`
	V        string   `json:"v"`
}

// SafetyDB maps package names to their advisories. The "$meta" key of the
// upstream document is not an advisory list and is skipped while decoding.
type SafetyDB map[string][]SafetyAdvisory
