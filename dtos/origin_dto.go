package dtos

import (
	"encoding/json"
	"encoding/xml"
)

// OriginRecord is the source repository and commit a package release was built from.
// Both fields are nil when they could not be resolved.
type OriginRecord struct {
	RepoURL   *string `json:"repo_url"`
	CommitSHA *string `json:"commit_sha"`
}

type PyPIPackageInfo struct {
	Info struct {
		HomePage    string            `json:"home_page"`
		ProjectURLs map[string]string `json:"project_urls"`
	} `json:"info"`
}

type NPMPackageVersion struct {
	Repository NPMRepository `json:"repository"`
}

// NPMRepository is either a plain string or an object with a url field.
type NPMRepository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (r *NPMRepository) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		r.URL = url
		return nil
	}

	type plain NPMRepository
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = NPMRepository(p)
	return nil
}

type GoProxyVersionInfo struct {
	Version string `json:"Version"`
	Origin  struct {
		VCS  string `json:"VCS"`
		URL  string `json:"URL"`
		Hash string `json:"Hash"`
		Ref  string `json:"Ref"`
	} `json:"Origin"`
}

type CargoCrateVersion struct {
	Crate struct {
		Repository string `json:"repository"`
	} `json:"crate"`
}

type MavenPOM struct {
	XMLName xml.Name `xml:"project"`
	SCM     struct {
		URL        string `xml:"url"`
		Connection string `xml:"connection"`
	} `xml:"scm"`
}
