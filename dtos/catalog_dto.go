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

import (
	"bytes"
	"strconv"
	"strings"
)

// CatalogID is a catalog object id. The catalog encodes ids as numbers
// in some responses and as strings in others.
type CatalogID int

func (id *CatalogID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	s := strings.Trim(string(data), `"`)
	if s == "" {
		*id = 0
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*id = CatalogID(v)
	return nil
}

type CatalogComponentVersion struct {
	ID   CatalogID `json:"id"`
	Name string    `json:"name"`
}

type CatalogComponent struct {
	ID       CatalogID                 `json:"id"`
	Name     string                    `json:"name"`
	Domain   string                    `json:"domain"`
	Versions []CatalogComponentVersion `json:"versions"`
}

// CatalogResponse wraps every json answer of the catalog api.
type CatalogResponse[T any] struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Result  *T     `json:"result,omitempty"`
}

type CatalogObjectRef struct {
	ID CatalogID `json:"id"`
}

// ItemAttribute is a single key/value pair of a component item.
// The "name" key names the item itself.
type ItemAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ComponentItem []ItemAttribute

// Name returns the value of the "name" attribute.
func (item ComponentItem) Name() string {
	for _, attr := range item {
		if strings.EqualFold(attr.Key, "name") {
			return attr.Value
		}
	}
	return ""
}

// Attributes returns every attribute except the name.
func (item ComponentItem) Attributes() []ItemAttribute {
	res := make([]ItemAttribute, 0, len(item))
	for _, attr := range item {
		if strings.EqualFold(attr.Key, "name") {
			continue
		}
		res = append(res, attr)
	}
	return res
}

type ComponentKind string

const (
	ComponentKindDocker ComponentKind = "docker"
	ComponentKindFile   ComponentKind = "file"
)

func ParseComponentKind(s string) ComponentKind {
	if strings.EqualFold(s, string(ComponentKindDocker)) {
		return ComponentKindDocker
	}
	return ComponentKindFile
}

// ProvenanceAttributes are attached to a catalog component after origin resolution.
type ProvenanceAttributes struct {
	Purl           string `json:"Purl,omitempty"`
	GitURL         string `json:"GitUrl,omitempty"`
	GitOrg         string `json:"GitOrg,omitempty"`
	GitRepo        string `json:"GitRepo,omitempty"`
	GitRepoProject string `json:"GitRepoProject,omitempty"`
	GitTag         string `json:"GitTag,omitempty"`
	GitCommit      string `json:"GitCommit,omitempty"`
}

// ComponentRequest describes the component the identity engine should find or create.
type ComponentRequest struct {
	// Name is the fully qualified name including the domain
	Name    string
	Variant string
	Version string
	Kind    ComponentKind
	Items   []ComponentItem
	// AutoIncrement set to any value reuses the latest found version instead of creating a new one
	AutoIncrement *bool
}

type ComponentItemRequest struct {
	Name       string
	Kind       ComponentKind
	YPos       int
	Attributes []ItemAttribute
	// RemoveAll clears all existing items of the component before creating this one
	RemoveAll bool
}
