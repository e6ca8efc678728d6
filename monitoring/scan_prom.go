// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var VulnScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "deppkg_vuln_scan_duration_seconds",
	Help:    "Duration of vulnerability scans of a package set in seconds",
	Buckets: prometheus.DefBuckets,
})

var VulnFindingsInserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "deppkg_vuln_findings_inserted_total",
	Help: "Number of vulnerability findings written to the store",
})

var VulnDBQueryFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "deppkg_vulndb_query_failures_total",
	Help: "Number of failed vulnerability database queries",
})

var RescanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "deppkg_daemon_rescan_duration_minutes",
	Help:    "Duration of the periodic rescan of all known packages in minutes",
	Buckets: prometheus.DefBuckets,
})
