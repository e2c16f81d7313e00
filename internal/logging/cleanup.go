package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/autoassist/auto-assist-api/internal/models"
)

// logRetention is how long persisted ERROR rows are kept.
const logRetention = 30 * 24 * time.Hour

// StartCleanup prunes system_logs rows older than the retention window once
// a day. The returned stop function ends the loop.
func StartCleanup(db *gorm.DB) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				res := db.Where("timestamp < ?", time.Now().Add(-logRetention)).Delete(&models.SystemLog{})
				switch {
				case res.Error != nil:
					slog.Error("log cleanup failed", "error", res.Error)
				case res.RowsAffected > 0:
					slog.Info("log cleanup completed", "deleted", res.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}
