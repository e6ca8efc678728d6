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

package vulndb

import (
	"log/slog"
	"strings"

	"github.com/l3montree-dev/deppkg/dtos"
	gocvss20 "github.com/pandatix/go-cvss/20"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	gocvss40 "github.com/pandatix/go-cvss/40"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	RiskLevelNone     = "None"
	RiskLevelLow      = "Low"
	RiskLevelMedium   = "Medium"
	RiskLevelHigh     = "High"
	RiskLevelCritical = "Critical"
)

// BaseScore computes the cvss base score of vector.
// Vectors starting with CVSS:3 or CVSS:4 use the matching version, everything else is parsed as CVSS 2.
func BaseScore(vector string) (float64, error) {
	switch {
	case strings.HasPrefix(vector, "CVSS:3.0"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			return 0, err
		}
		return cvss.BaseScore(), nil
	case strings.HasPrefix(vector, "CVSS:3"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			return 0, err
		}
		return cvss.BaseScore(), nil
	case strings.HasPrefix(vector, "CVSS:4"):
		cvss, err := gocvss40.ParseVector(vector)
		if err != nil {
			return 0, err
		}
		return cvss.Score(), nil
	default:
		cvss, err := gocvss20.ParseVector(vector)
		if err != nil {
			return 0, err
		}
		return cvss.BaseScore(), nil
	}
}

// BucketScore maps a cvss base score onto its qualitative rating.
func BucketScore(score float64) string {
	switch {
	case score <= 0:
		return RiskLevelNone
	case score < 4:
		return RiskLevelLow
	case score < 7:
		return RiskLevelMedium
	case score < 9:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// NormalizeRiskLevel capitalizes a qualitative severity, "moderate" is reported as Medium.
func NormalizeRiskLevel(level string) string {
	// a Caser is stateful, it must not be shared between goroutines
	level = cases.Title(language.Und).String(strings.TrimSpace(level))
	if level == "Moderate" {
		return RiskLevelMedium
	}
	return level
}

// RiskLevel derives the severity of a finding. The cvss vector wins,
// the qualitative severity of the database is the fallback.
func RiskLevel(osv dtos.OSV) string {
	if vector := osv.Vector(); vector != "" {
		score, err := BaseScore(vector)
		if err == nil {
			return BucketScore(score)
		}
		slog.Warn("could not parse cvss vector", "vector", vector, "id", osv.ID, "err", err)
	}
	return NormalizeRiskLevel(osv.DatabaseSpecific.Severity)
}
