package utils

import (
	"log"
	"time"

	"vikasini/recordstore"

	"github.com/robfig/cron/v3"
)

// StartTempFileSweeper schedules an hourly sweep of temp files left behind
// by interrupted record-store writes. Returns the scheduler so the caller
// can stop it on shutdown.
func StartTempFileSweeper(store *recordstore.Store) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		removed, err := store.SweepTempFiles(time.Hour)
		if err != nil {
			log.Printf("[SWEEPER] Error sweeping temp files: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("[SWEEPER] Removed %d stale temp file(s)", removed)
		}
	})

	c.Start()
	return c
}
