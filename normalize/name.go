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

import "strings"

// QualifierSeparator separates name, variant and version inside a catalog name.
const QualifierSeparator = ";"

// Replacement is a single pass. "/" becomes ".", which a second pass turns into "_",
// so CleanName must only run once on a value.
var catalogNameReplacer = strings.NewReplacer(
	".", "_",
	"-", "_",
	"/", ".",
	"+", "_",
	":", "_",
	"~", "_",
	"(", "",
	")", "",
	"#", "_",
	"@", "",
)

// CleanName maps a free-form package name, variant or version onto the
// characters the catalog accepts.
func CleanName(name string) string {
	return catalogNameReplacer.Replace(name)
}

// NormalizeQualifiers cleans variant and version and promotes a lonely
// version into the variant slot. A single qualifier is always a variant.
func NormalizeQualifiers(variant, version string) (string, string) {
	variant = CleanName(variant)
	version = CleanName(version)

	if variant == "" && version != "" {
		variant, version = version, ""
	}

	return strings.TrimRight(variant, QualifierSeparator), strings.TrimRight(version, QualifierSeparator)
}

// QualifiedName joins the parts to name[;variant[;version]].
// The version is only appended when a variant exists.
func QualifiedName(name, variant, version string) string {
	if variant == "" {
		return name
	}
	if version == "" {
		return name + QualifierSeparator + variant
	}
	return name + QualifierSeparator + variant + QualifierSeparator + version
}

// ShortName strips the domain from a fully qualified component name.
func ShortName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// CheckName is the name the catalog reports for an exact match of the
// given component: the short name followed by its qualifiers.
func CheckName(name, variant, version string) string {
	return QualifiedName(ShortName(name), variant, version)
}
