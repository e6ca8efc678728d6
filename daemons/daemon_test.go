package daemons

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRescanDaemonTick(t *testing.T) {
	t.Run("should rescan without session if the catalog is not configured", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		client := mocks.NewCatalogClient(t)
		scan.On("RescanAll", mock.Anything, (*shared.CatalogSession)(nil)).Return(nil)

		d := NewRescanDaemon(scan, client, mocks.NewLeaderElector(t), shared.Config{RescanInterval: time.Hour})
		assert.NoError(t, d.tick(context.Background()))
	})

	t.Run("should pass the catalog session after login", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		client := mocks.NewCatalogClient(t)
		session := shared.CatalogSession{BaseURL: "https://catalog.example.com"}
		client.On("Login", mock.Anything, "https://catalog.example.com", "admin", "secret").Return(session, nil)
		scan.On("RescanAll", mock.Anything, &session).Return(nil)

		d := NewRescanDaemon(scan, client, mocks.NewLeaderElector(t), shared.Config{
			CatalogURL:  "https://catalog.example.com",
			CatalogUser: "admin",
			CatalogPass: "secret",
		})
		assert.NoError(t, d.tick(context.Background()))
	})

	t.Run("should still rescan if the login fails", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		client := mocks.NewCatalogClient(t)
		client.On("Login", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(shared.CatalogSession{}, fmt.Errorf("bad credentials"))
		scan.On("RescanAll", mock.Anything, (*shared.CatalogSession)(nil)).Return(nil)

		d := NewRescanDaemon(scan, client, mocks.NewLeaderElector(t), shared.Config{CatalogURL: "https://catalog.example.com", CatalogUser: "admin"})
		assert.NoError(t, d.tick(context.Background()))
	})

	t.Run("should report rescan errors", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		client := mocks.NewCatalogClient(t)
		scan.On("RescanAll", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))

		d := NewRescanDaemon(scan, client, mocks.NewLeaderElector(t), shared.Config{})
		assert.EqualError(t, d.tick(context.Background()), "db down")
	})

	t.Run("should turn a panic into an error", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		client := mocks.NewCatalogClient(t)
		scan.On("RescanAll", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") })

		d := NewRescanDaemon(scan, client, mocks.NewLeaderElector(t), shared.Config{})
		assert.Error(t, d.tick(context.Background()))
	})
}

func TestRescanDaemonStartStop(t *testing.T) {
	t.Run("should not start without interval", func(t *testing.T) {
		d := NewRescanDaemon(mocks.NewVulnScanService(t), mocks.NewCatalogClient(t), mocks.NewLeaderElector(t), shared.Config{})
		d.Start()
		d.Stop()
		assert.Nil(t, d.cancel)
	})

	t.Run("should rescan on every tick until stopped", func(t *testing.T) {
		scan := mocks.NewVulnScanService(t)
		called := make(chan struct{}, 1)
		scan.On("RescanAll", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).Return(nil)

		leaderElector := mocks.NewLeaderElector(t)
		leaderElector.On("IsLeader").Return(true)

		d := NewRescanDaemon(scan, mocks.NewCatalogClient(t), leaderElector, shared.Config{RescanInterval: 10 * time.Millisecond})
		d.Start()

		select {
		case <-called:
		case <-time.After(2 * time.Second):
			t.Fatal("rescan was not triggered")
		}
		d.Stop()
	})

	t.Run("should skip the rescan on followers", func(t *testing.T) {
		leaderElector := mocks.NewLeaderElector(t)
		asked := make(chan struct{}, 1)
		leaderElector.On("IsLeader").Run(func(mock.Arguments) {
			select {
			case asked <- struct{}{}:
			default:
			}
		}).Return(false)

		d := NewRescanDaemon(mocks.NewVulnScanService(t), mocks.NewCatalogClient(t), leaderElector, shared.Config{RescanInterval: 10 * time.Millisecond})
		d.Start()

		select {
		case <-asked:
		case <-time.After(2 * time.Second):
			t.Fatal("leadership was not checked")
		}
		d.Stop()
	})
}
