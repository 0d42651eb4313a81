package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Service dumps the booking collections to timestamped JSON files. It is
// constructed once in main and shared between the cron worker and the admin
// endpoint.
type Service struct {
	DB          *mongo.Database
	Dir         string
	Collections []string
	Logger      *zap.Logger
}

// Result summarizes one backup run.
type Result struct {
	Dir            string         `json:"dir"`
	StartedAt      time.Time      `json:"startedAt"`
	Duration       string         `json:"duration"`
	DocumentCounts map[string]int `json:"documentCounts"`
}

// Run exports every configured collection into a new timestamped directory.
// A failed collection aborts the run; partial dumps are left on disk for
// inspection rather than silently deleted.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	dir := filepath.Join(s.Dir, started.Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir %s: %w", dir, err)
	}

	counts := make(map[string]int, len(s.Collections))
	for _, name := range s.Collections {
		n, err := s.dumpCollection(ctx, name, dir)
		if err != nil {
			return nil, fmt.Errorf("backup of collection %s failed: %w", name, err)
		}
		counts[name] = n
	}

	res := &Result{
		Dir:            dir,
		StartedAt:      started,
		Duration:       time.Since(started).String(),
		DocumentCounts: counts,
	}
	s.Logger.Info("backup completed",
		zap.String("dir", dir),
		zap.Any("documentCounts", counts),
		zap.Duration("took", time.Since(started)))
	return res, nil
}

func (s *Service) dumpCollection(ctx context.Context, name, dir string) (int, error) {
	cursor, err := s.DB.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("find failed: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return 0, fmt.Errorf("cursor read failed: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, name+".json"))
	if err != nil {
		return 0, fmt.Errorf("create dump file failed: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(docs); err != nil {
		return 0, fmt.Errorf("encode failed: %w", err)
	}
	return len(docs), nil
}
