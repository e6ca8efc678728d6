package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/deppkg/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	leaderElectionKey = "deppkg.leaderElection"
	// a leader which did not ping for this long is considered dead
	leaderLease = 360 * time.Second
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // this variable gets updated by a daemon goroutine. Usage of atomic is required.

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService: configService,
		// generate a random ID for this leader elector
		leaderElectorID: uuid.New().String(),
	}
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

// Start checks the leadership once synchronously and then keeps renewing it in the background.
func (e *databaseLeaderElector) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	e.refresh(ctx)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			// the renewal interval stays below the lease
			wait := time.Duration(randomNumberBetween(60, 300)) * time.Second
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
				e.refresh(ctx)
			}
		}
	}()
}

func (e *databaseLeaderElector) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	e.wg.Wait()
}

func (e *databaseLeaderElector) refresh(ctx context.Context) {
	isLeader, err := e.checkIfLeader(ctx)
	if err != nil {
		slog.Error("could not check if leader", "err", err)
	}
	e.isLeader.Store(isLeader)
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) makeLeader(ctx context.Context) error {
	return e.configService.SetJSONConfig(ctx, leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: time.Now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader(ctx context.Context) (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(ctx, leaderElectionKey, &config)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// there is no leader yet
		if err := e.makeLeader(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if config.LeaderID == e.leaderElectorID || time.Now().Unix()-config.LastPing > int64(leaderLease.Seconds()) {
		// renew our own lease or take over from a dead leader
		if err := e.makeLeader(ctx); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

var _ shared.LeaderElector = (*databaseLeaderElector)(nil)
