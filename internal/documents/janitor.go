package documents

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const purgeAfter = 30 * 24 * time.Hour

// Janitor permanently removes long-soft-deleted documents on a nightly
// schedule.
type Janitor struct {
	repo *Repo
	cron *cron.Cron
}

func NewJanitor(repo *Repo) *Janitor {
	return &Janitor{repo: repo, cron: cron.New()}
}

// Start schedules the nightly purge (00:30) and runs the scheduler in its
// own goroutine.
func (j *Janitor) Start() {
	_, err := j.cron.AddFunc("30 0 * * *", j.runPurge)
	if err != nil {
		log.Printf("Failed to create purge cron job: %v", err)
		return
	}
	log.Println("Archive janitor started (purging nightly at 00:30)")
	j.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.repo.PurgeDeleted(ctx, purgeAfter)
	if err != nil {
		log.Printf("Archive purge failed: %v", err)
		return
	}
	log.Printf("Archive purge removed %d documents", n)
}
