package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings external services and keeps the latest
// snapshot. It is constructed once in main and handed to whoever serves it.
type HealthMonitor struct {
	mongoClient  *mongo.Client
	redisClients []*redis.Client
	interval     time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

// NewHealthMonitor builds a monitor over the given clients.
func NewHealthMonitor(mongoClient *mongo.Client, redisClients []*redis.Client) *HealthMonitor {
	return &HealthMonitor{
		mongoClient:  mongoClient,
		redisClients: redisClients,
		interval:     60 * time.Second,
	}
}

// Snapshot returns the latest stored health snapshot.
func (m *HealthMonitor) Snapshot() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start performs periodic health checks until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.check(ctx)

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.check(ctx)
			}
		}
	}()
}

func (m *HealthMonitor) check(ctx context.Context) {
	var redisHealth []bool
	for _, client := range m.redisClients {
		err := client.Ping(ctx).Err()
		redisHealth = append(redisHealth, err == nil)
	}

	mongoHealthy := m.mongoClient.Ping(ctx, nil) == nil

	m.mu.Lock()
	m.current = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	m.mu.Unlock()
}
