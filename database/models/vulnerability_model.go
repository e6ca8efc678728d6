package models

// Vulnerability is a normalized finding of the vulnerability database for one package version.
type Vulnerability struct {
	PackageName    string  `json:"packagename" gorm:"column:packagename;primaryKey"`
	PackageVersion string  `json:"packageversion" gorm:"column:packageversion;primaryKey"`
	Purl           string  `json:"purl" gorm:"column:purl;primaryKey"`
	ID             string  `json:"id" gorm:"column:id;primaryKey"`
	Summary        string  `json:"summary" gorm:"column:summary"`
	RiskLevel      string  `json:"risklevel" gorm:"column:risklevel"`
	CVSS           *string `json:"cvss" gorm:"column:cvss"`
}

func (Vulnerability) TableName() string {
	return "dm.dm_vulns"
}

// NaturalKey is unique in storage. Findings sharing it are duplicates.
func (v Vulnerability) NaturalKey() string {
	return v.PackageName + "\x00" + v.PackageVersion + "\x00" + v.ID
}
