package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sdko-org/website-generator/internal/workflow"
	"github.com/sirupsen/logrus"
)

// Scheduler triggers a generation workflow on a cron expression. Runs are
// fire-and-log: a tick launches the run and returns, the outcome only shows
// up in logs and the audit table.
type Scheduler struct {
	cron     *cron.Cron
	workflow *workflow.Workflow
	spec     string
	ctx      context.Context
	cancel   context.CancelFunc
	log      *logrus.Entry
}

func New(logger *logrus.Logger, wf *workflow.Workflow, spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		workflow: wf,
		spec:     spec,
		ctx:      ctx,
		cancel:   cancel,
		log:      logger.WithField("component", "scheduler"),
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.log.WithFields(logrus.Fields{
			"cron":           s.spec,
			"scheduled_time": time.Now().UTC(),
		}).Info("CRON triggered: starting website generation workflow")

		go func() {
			result, err := s.workflow.Run(s.ctx, "cron")
			if err != nil {
				s.log.WithError(err).Error("Scheduled generation failed")
				return
			}
			s.log.WithFields(logrus.Fields{
				"workflow_id": result.InstanceID,
				"date":        result.Date,
				"model":       result.Model,
			}).Info("Scheduled generation completed")
		}()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.WithField("cron", s.spec).Info("Scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Info("Scheduler stopped")
}
