package vulndb

import (
	"testing"

	"github.com/l3montree-dev/deppkg/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketScore(t *testing.T) {
	cases := map[float64]string{
		0.0:  RiskLevelNone,
		0.1:  RiskLevelLow,
		3.9:  RiskLevelLow,
		4.0:  RiskLevelMedium,
		6.9:  RiskLevelMedium,
		7.0:  RiskLevelHigh,
		8.9:  RiskLevelHigh,
		9.0:  RiskLevelCritical,
		10.0: RiskLevelCritical,
	}
	for score, expected := range cases {
		assert.Equal(t, expected, BucketScore(score), "score %v", score)
	}
}

func TestBaseScore(t *testing.T) {
	t.Run("cvss 3.1", func(t *testing.T) {
		score, err := BaseScore("CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
		require.NoError(t, err)
		assert.InDelta(t, 9.8, score, 0.001)
	})

	t.Run("cvss 3.0", func(t *testing.T) {
		score, err := BaseScore("CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:N/I:N/A:N")
		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 0.001)
	})

	t.Run("cvss 2 has no prefix", func(t *testing.T) {
		score, err := BaseScore("AV:N/AC:L/Au:N/C:P/I:P/A:P")
		require.NoError(t, err)
		assert.InDelta(t, 7.5, score, 0.001)
	})

	t.Run("cvss 4.0", func(t *testing.T) {
		score, err := BaseScore("CVSS:4.0/AV:N/AC:L/AT:N/PR:N/UI:N/VC:H/VI:H/VA:H/SC:N/SI:N/SA:N")
		require.NoError(t, err)
		assert.Equal(t, RiskLevelCritical, BucketScore(score))
	})

	t.Run("invalid vector", func(t *testing.T) {
		_, err := BaseScore("not a vector")
		assert.Error(t, err)
	})
}

func TestNormalizeRiskLevel(t *testing.T) {
	assert.Equal(t, RiskLevelMedium, NormalizeRiskLevel("MODERATE"))
	assert.Equal(t, RiskLevelMedium, NormalizeRiskLevel("moderate"))
	assert.Equal(t, RiskLevelHigh, NormalizeRiskLevel("high"))
	assert.Equal(t, "", NormalizeRiskLevel(""))
}

func TestRiskLevel(t *testing.T) {
	t.Run("vector wins over the database severity", func(t *testing.T) {
		osv := dtos.OSV{
			ID:               "GHSA-1",
			Severity:         []dtos.OSVSeverity{{Type: "CVSS_V3", Score: "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"}},
			DatabaseSpecific: dtos.OSVDatabaseSpecific{Severity: "LOW"},
		}
		assert.Equal(t, RiskLevelCritical, RiskLevel(osv))
	})

	t.Run("falls back to the database severity on a broken vector", func(t *testing.T) {
		osv := dtos.OSV{
			ID:               "GHSA-2",
			Severity:         []dtos.OSVSeverity{{Type: "CVSS_V3", Score: "CVSS:3.1/broken"}},
			DatabaseSpecific: dtos.OSVDatabaseSpecific{Severity: "MODERATE"},
		}
		assert.Equal(t, RiskLevelMedium, RiskLevel(osv))
	})

	t.Run("falls back to the database severity without a vector", func(t *testing.T) {
		osv := dtos.OSV{ID: "GHSA-3", DatabaseSpecific: dtos.OSVDatabaseSpecific{Severity: "high"}}
		assert.Equal(t, RiskLevelHigh, RiskLevel(osv))
	})
}
