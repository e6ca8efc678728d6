package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/l3montree-dev/deppkg/database/models"
	"github.com/l3montree-dev/deppkg/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func storedLeader(leaderID string, lastPing time.Time) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		config := args.Get(2).(*leaderElectionConfig)
		config.LeaderID = leaderID
		config.LastPing = lastPing.Unix()
	}
}

func TestCheckIfLeader(t *testing.T) {
	t.Run("should become leader if nobody is", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(gorm.ErrRecordNotFound)
		configService.On("SetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(nil)

		e := NewDatabaseLeaderElector(configService)
		isLeader, err := e.checkIfLeader(context.Background())
		assert.NoError(t, err)
		assert.True(t, isLeader)
	})

	t.Run("should stay follower while the leader pings", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Run(storedLeader("other", time.Now())).Return(nil)

		e := NewDatabaseLeaderElector(configService)
		isLeader, err := e.checkIfLeader(context.Background())
		assert.NoError(t, err)
		assert.False(t, isLeader)
	})

	t.Run("should take over from a dead leader", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Run(storedLeader("other", time.Now().Add(-time.Hour))).Return(nil)
		configService.On("SetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(nil)

		e := NewDatabaseLeaderElector(configService)
		isLeader, err := e.checkIfLeader(context.Background())
		assert.NoError(t, err)
		assert.True(t, isLeader)
	})

	t.Run("should renew the own lease", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		e := NewDatabaseLeaderElector(configService)
		configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Run(storedLeader(e.leaderElectorID, time.Now().Add(-time.Minute))).Return(nil)
		configService.On("SetJSONConfig", mock.Anything, leaderElectionKey, mock.MatchedBy(func(c leaderElectionConfig) bool {
			return c.LeaderID == e.leaderElectorID && time.Since(time.Unix(c.LastPing, 0)) < time.Minute
		})).Return(nil)

		isLeader, err := e.checkIfLeader(context.Background())
		assert.NoError(t, err)
		assert.True(t, isLeader)
	})

	t.Run("should not claim leadership if the database fails", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(fmt.Errorf("connection refused"))

		e := NewDatabaseLeaderElector(configService)
		isLeader, err := e.checkIfLeader(context.Background())
		assert.Error(t, err)
		assert.False(t, isLeader)
	})
}

func TestLeaderElectorStart(t *testing.T) {
	configService := mocks.NewConfigService(t)
	configService.On("GetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(gorm.ErrRecordNotFound)
	configService.On("SetJSONConfig", mock.Anything, leaderElectionKey, mock.Anything).Return(nil)

	e := NewDatabaseLeaderElector(configService)
	e.Start()
	defer e.Stop()

	assert.True(t, e.IsLeader())
}

func TestConfigService(t *testing.T) {
	t.Run("should marshal the value as json", func(t *testing.T) {
		repository := mocks.NewConfigRepository(t)
		repository.On("Save", mock.Anything, &models.Config{Key: "k", Val: `{"leaderId":"a","lastPing":1}`}).Return(nil)

		err := NewConfigService(repository).SetJSONConfig(context.Background(), "k", leaderElectionConfig{LeaderID: "a", LastPing: 1})
		assert.NoError(t, err)
	})

	t.Run("should unmarshal the stored value", func(t *testing.T) {
		repository := mocks.NewConfigRepository(t)
		b, _ := json.Marshal(leaderElectionConfig{LeaderID: "a", LastPing: 1})
		repository.On("Find", mock.Anything, "k").Return(models.Config{Key: "k", Val: string(b)}, nil)

		var config leaderElectionConfig
		assert.NoError(t, NewConfigService(repository).GetJSONConfig(context.Background(), "k", &config))
		assert.Equal(t, "a", config.LeaderID)
	})

	t.Run("should pass through a missing key", func(t *testing.T) {
		repository := mocks.NewConfigRepository(t)
		repository.On("Find", mock.Anything, "k").Return(models.Config{}, gorm.ErrRecordNotFound)

		var config leaderElectionConfig
		assert.ErrorIs(t, NewConfigService(repository).GetJSONConfig(context.Background(), "k", &config), gorm.ErrRecordNotFound)
	})
}
