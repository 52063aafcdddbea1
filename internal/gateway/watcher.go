package gateway

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Watcher is the realtime channel over a table: it invokes the callback
// whenever rows appear, change or disappear. The hosted backend's push
// channel is not available over plain REST, so changes are observed by
// polling the newest updated_at together with the row count.
type Watcher struct {
	api      TableAPI
	table    string
	interval time.Duration
	log      *zap.Logger

	lastStamp int64
	lastTotal int64
	primed    bool
}

func NewWatcher(api TableAPI, table string, interval time.Duration, log *zap.Logger) *Watcher {
	return &Watcher{api: api, table: table, interval: interval, log: log}
}

// Run blocks until ctx is cancelled. The first poll only establishes the
// cursor; callbacks start with the second.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.poll(ctx) {
				w.log.Info("table changed", zap.String("table", w.table))
				onChange()
			}
		}
	}
}

func (w *Watcher) poll(ctx context.Context) bool {
	rows, total, err := w.api.Select(ctx, w.table, SelectOptions{
		OrderBy: "updated_at",
		Desc:    true,
		Limit:   1,
	})
	if err != nil {
		w.log.Warn("watch poll failed", zap.String("table", w.table), zap.Error(err))
		return false
	}

	var stamp int64
	if len(rows) > 0 {
		var head struct {
			UpdatedAt int64 `json:"updated_at"`
		}
		if err := json.Unmarshal(rows[0], &head); err == nil {
			stamp = head.UpdatedAt
		}
	}

	if !w.primed {
		w.primed = true
		w.lastStamp, w.lastTotal = stamp, total
		return false
	}

	changed := stamp != w.lastStamp || total != w.lastTotal
	w.lastStamp, w.lastTotal = stamp, total
	return changed
}
