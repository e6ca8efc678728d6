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

package daemons

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/l3montree-dev/deppkg/monitoring"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
)

// RescanDaemon periodically queries the vulnerability database again for every
// package stored through a license sbom.
type RescanDaemon struct {
	vulnScanService shared.VulnScanService
	catalogClient   shared.CatalogClient
	leaderElector   shared.LeaderElector

	interval    time.Duration
	catalogURL  string
	catalogUser string
	catalogPass string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRescanDaemon(vulnScanService shared.VulnScanService, catalogClient shared.CatalogClient, leaderElector shared.LeaderElector, cfg shared.Config) *RescanDaemon {
	return &RescanDaemon{
		vulnScanService: vulnScanService,
		catalogClient:   catalogClient,
		leaderElector:   leaderElector,
		interval:        cfg.RescanInterval,
		catalogURL:      cfg.CatalogURL,
		catalogUser:     cfg.CatalogUser,
		catalogPass:     cfg.CatalogPass,
	}
}

// Start is a no-op if no rescan interval is configured.
func (d *RescanDaemon) Start() {
	if d.interval <= 0 {
		slog.Info("background rescan disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !d.leaderElector.IsLeader() {
					slog.Debug("not the leader - skipping background rescan")
					continue
				}
				if err := d.tick(ctx); err != nil {
					slog.Error("background rescan failed", "err", err)
				}
			}
		}
	}()
}

// Stop waits until a running rescan returned.
func (d *RescanDaemon) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.wg.Wait()
}

func (d *RescanDaemon) tick(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("background rescan panicked", errors.Errorf("%v", r))
			err = errors.New("background rescan panicked")
		}
	}()

	start := time.Now()
	slog.Info("starting background rescan")

	session := d.login(ctx)
	if err := d.vulnScanService.RescanAll(ctx, session); err != nil {
		return err
	}

	slog.Info("background rescan done", "duration", time.Since(start))
	return nil
}

// login returns nil if the catalog is not configured or refuses the credentials.
// The rescan then only refreshes the vulnerability table.
func (d *RescanDaemon) login(ctx context.Context) *shared.CatalogSession {
	if d.catalogURL == "" || d.catalogUser == "" {
		return nil
	}
	session, err := d.catalogClient.Login(ctx, d.catalogURL, d.catalogUser, d.catalogPass)
	if err != nil {
		slog.Warn("could not login to catalog, rescanning without enrichment", "err", err)
		return nil
	}
	return &session
}

var _ shared.DaemonRunner = (*RescanDaemon)(nil)
