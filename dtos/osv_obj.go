package dtos

import (
	"strings"
)

type OSVPackage struct {
	Name      string `json:"name,omitempty"`
	Ecosystem string `json:"ecosystem,omitempty"`
	Purl      string `json:"purl,omitempty"`
}

// OSVQuery is the body of a POST /v1/query request.
// Either Package.Purl is set or Package.Name together with Version.
type OSVQuery struct {
	Package   OSVPackage `json:"package"`
	Version   string     `json:"version,omitempty"`
	PageToken string     `json:"page_token,omitempty"`
}

type OSVSeverity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

type OSVDatabaseSpecific struct {
	Severity string `json:"severity"`
}

type OSV struct {
	ID               string              `json:"id"`
	Summary          string              `json:"summary"`
	Details          string              `json:"details"`
	Aliases          []string            `json:"aliases"`
	Severity         []OSVSeverity       `json:"severity"`
	DatabaseSpecific OSVDatabaseSpecific `json:"database_specific"`
}

type OSVQueryResponse struct {
	Vulns         []OSV  `json:"vulns"`
	NextPageToken string `json:"next_page_token"`
}

// DisplaySummary prefixes the summary with the space joined aliases.
func (osv OSV) DisplaySummary() string {
	aliases := strings.Join(osv.Aliases, " ")
	switch {
	case aliases == "":
		return osv.Summary
	case osv.Summary == "":
		return aliases
	}
	return aliases + ": " + osv.Summary
}

// Vector returns the first severity score which is usually a cvss vector.
func (osv OSV) Vector() string {
	if len(osv.Severity) == 0 {
		return ""
	}
	return osv.Severity[0].Score
}
