package task

import (
	"log"

	"knowledgehub-api/repositories"

	"github.com/robfig/cron/v3"
)

// Job is a named cron task.
type Job interface {
	cron.Job
	Name() string
}

// Scheduler owns the cron instance and the background jobs that reconcile the
// two stores.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler(articleRepo repositories.ArticleRepository, versionRepo repositories.ArticleVersionRepository) *Scheduler {
	c := cron.New(
		cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Scheduler{
		cron: c,
		jobs: []Job{
			NewOrphanVersionSweepJob(articleRepo, versionRepo),
		},
	}
}

// RegisterJobs wires every job into the cron table. The orphan sweep runs
// hourly; anything it finds is leftover from a crash between the version-store
// write and the live-store write.
func (s *Scheduler) RegisterJobs() error {
	for _, job := range s.jobs {
		if _, err := s.cron.AddJob("@hourly", job); err != nil {
			return err
		}
		log.Printf("Registered job %s", job.Name())
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
