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

package models

// ComponentDependency is a license or vulnerability row attached to a catalog component.
type ComponentDependency struct {
	CompID         int     `json:"compid" gorm:"column:compid;primaryKey;autoIncrement:false"`
	PackageName    string  `json:"packagename" gorm:"column:packagename;primaryKey"`
	PackageVersion string  `json:"packageversion" gorm:"column:packageversion;primaryKey"`
	DepType        string  `json:"deptype" gorm:"column:deptype;primaryKey"`
	Name           string  `json:"name" gorm:"column:name;primaryKey"`
	URL            *string `json:"url" gorm:"column:url"`
	Summary        *string `json:"summary" gorm:"column:summary"`
	Purl           *string `json:"purl" gorm:"column:purl"`
	PkgType        *string `json:"pkgtype" gorm:"column:pkgtype"`
}

func (ComponentDependency) TableName() string {
	return "dm.dm_componentdeps"
}

// Key identifies a row inside one upload batch.
func (c ComponentDependency) Key() string {
	return c.PackageName + "\x00" + c.PackageVersion + "\x00" + c.DepType + "\x00" + c.Name
}
