// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CatalogComponentsCreated counts created catalog components by kind: base or version.
var CatalogComponentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "deppkg_catalog_components_created_total",
	Help: "Number of components created in the catalog",
}, []string{"kind"})

var CatalogDivergentNameMatches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "deppkg_catalog_divergent_name_matches_total",
	Help: "Number of catalog lookups which answered with a different component name than requested",
})

// OriginResolutions counts origin lookups by ecosystem and outcome: none, url or commit.
var OriginResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "deppkg_origin_resolutions_total",
	Help: "Number of package origin resolutions",
}, []string{"ecosystem", "outcome"})

var ComponentDependenciesStored = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "deppkg_component_dependencies_stored_total",
	Help: "Number of stored component dependency rows by type",
}, []string{"deptype"})
