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
	"strings"

	"github.com/package-url/packageurl-go"
	"github.com/pkg/errors"
)

type Ecosystem string

const (
	EcosystemPyPI    Ecosystem = "pypi"
	EcosystemNPM     Ecosystem = "npm"
	EcosystemGolang  Ecosystem = "golang"
	EcosystemMaven   Ecosystem = "maven"
	EcosystemCargo   Ecosystem = "cargo"
	EcosystemDebian  Ecosystem = "deb"
	EcosystemUnknown Ecosystem = "unknown"
)

// OpenSourceDomain is the catalog domain all purl derived components live in.
const OpenSourceDomain = "GLOBAL.Open Source"

func ecosystemFromType(purlType string) Ecosystem {
	switch Ecosystem(strings.ToLower(purlType)) {
	case EcosystemPyPI:
		return EcosystemPyPI
	case EcosystemNPM:
		return EcosystemNPM
	case EcosystemGolang:
		return EcosystemGolang
	case EcosystemMaven:
		return EcosystemMaven
	case EcosystemCargo:
		return EcosystemCargo
	case EcosystemDebian:
		return EcosystemDebian
	}
	return EcosystemUnknown
}

// PackageCoordinate is a parsed purl. It is a value type and never mutated after parsing.
type PackageCoordinate struct {
	Ecosystem Ecosystem
	// Type keeps the raw purl type, also for unknown ecosystems
	Type      string
	Namespace string
	Name      string
	Version   string
	Purl      string
}

func ParseCoordinate(purl string) (PackageCoordinate, error) {
	purl = strings.TrimSpace(purl)
	if purl == "" {
		return PackageCoordinate{}, errors.New("empty purl")
	}

	p, err := packageurl.FromString(purl)
	if err != nil {
		return PackageCoordinate{}, errors.Wrap(err, "could not parse purl")
	}

	return PackageCoordinate{
		Ecosystem: ecosystemFromType(p.Type),
		Type:      p.Type,
		Namespace: p.Namespace,
		Name:      p.Name,
		Version:   p.Version,
		Purl:      purl,
	}, nil
}

var domainReplacer = strings.NewReplacer("/", ".", "-", "_", "+", "_", "@", "")

// CatalogDomain derives the catalog domain a package lives in,
// e.g. pkg:maven/org.apache/commons -> GLOBAL.Open Source.maven.org_apache
func (c PackageCoordinate) CatalogDomain() string {
	domain := OpenSourceDomain + "." + c.Type
	if c.Namespace != "" {
		domain += "." + strings.ReplaceAll(c.Namespace, ".", "_")
	}
	return domainReplacer.Replace(domain)
}

// PackageName is the catalog safe package name without domain.
func (c PackageCoordinate) PackageName() string {
	return strings.ReplaceAll(CleanName(c.Name), ".", "_")
}

// FamilyName is the fully qualified name of the base component of the package.
func (c PackageCoordinate) FamilyName() string {
	return c.CatalogDomain() + "." + c.PackageName()
}

// VersionedName is the name the catalog stores for the versioned component.
func (c PackageCoordinate) VersionedName() string {
	name := strings.ReplaceAll(c.Name, ".", "_")
	if c.Version == "" {
		return CleanName(name)
	}
	return CleanName(name + QualifierSeparator + c.Version)
}

// VulnQueryPurl lower-cases the purl and strips the qualifiers.
func VulnQueryPurl(purl string) string {
	purl, _, _ = strings.Cut(purl, "?")
	return strings.ToLower(purl)
}

// PurlType returns the type segment of a purl without parsing it,
// e.g. pkg:npm/left-pad@1.3.0 -> npm. Malformed input yields an empty string.
func PurlType(purl string) string {
	head, _, _ := strings.Cut(purl, "/")
	if !strings.HasPrefix(head, "pkg:") {
		return ""
	}
	return head[len("pkg:"):]
}
