package workflow

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sdko-org/website-generator/internal/catalog"
	"github.com/sdko-org/website-generator/internal/models"
	"github.com/sdko-org/website-generator/internal/openrouter"
	"github.com/sdko-org/website-generator/internal/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Generator is the remote generation capability. Implemented by
// openrouter.Client; swapped for a fake in tests.
type Generator interface {
	GenerateWebsite(ctx context.Context, model, prompt string) (*openrouter.Generation, error)
	GenerationCost(ctx context.Context, generationID string) (float64, error)
}

// Result summarizes a completed run.
type Result struct {
	InstanceID string
	Date       string
	IndexKey   string
	Model      string
}

// Workflow runs one generation end to end: SelectModel, Generate, Publish.
// A run either completes every step or fails; there is no partial success and
// no retry, the next scheduled trigger simply starts over.
type Workflow struct {
	generator Generator
	storage   storage.Storage
	db        *gorm.DB
	models    []string
	rng       *rand.Rand
	log       *logrus.Entry
}

func New(logger *logrus.Logger, generator Generator, store storage.Storage, db *gorm.DB) *Workflow {
	return &Workflow{
		generator: generator,
		storage:   store,
		db:        db,
		models:    catalog.Models,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       logger.WithField("component", "workflow"),
	}
}

// Run executes the workflow once. trigger names the cause ("cron" or
// "manual") and only shows up in logs and the audit row.
func (w *Workflow) Run(ctx context.Context, trigger string) (*Result, error) {
	instanceID := uuid.NewString()
	startedAt := time.Now().UTC()

	log := w.log.WithFields(logrus.Fields{
		"workflow_id": instanceID,
		"trigger":     trigger,
	})
	log.Info("Starting website generation workflow")

	log.Info("Step select-model started")
	model, err := catalog.SelectFrom(w.rng, w.models)
	if err != nil {
		log.WithError(err).Error("Step select-model failed")
		w.recordRun(ctx, instanceID, trigger, startedAt, "", nil, nil, err)
		return nil, err
	}
	log.WithField("model", model).Info("Step select-model completed")

	log.WithField("model", model).Info("Step generate started")
	gen, err := w.generator.GenerateWebsite(ctx, model, catalog.Prompt)
	if err != nil {
		log.WithError(err).Error("Step generate failed")
		w.recordRun(ctx, instanceID, trigger, startedAt, model, nil, nil, err)
		return nil, err
	}

	// Cost is an enrichment, never a reason to fail the run.
	var cost *float64
	if c, err := w.generator.GenerationCost(ctx, gen.ID); err != nil {
		log.WithError(err).Warn("Cost lookup failed, omitting cost")
	} else {
		cost = &c
	}

	log.WithFields(logrus.Fields{
		"duration_ms":       gen.DurationMs,
		"prompt_tokens":     gen.PromptTokens,
		"completion_tokens": gen.CompletionTokens,
		"total_tokens":      gen.TotalTokens,
	}).Info("Step generate completed")

	date := startedAt.Format("2006-01-02")
	indexKey := storage.IndexKey(date)
	metadata := storage.Metadata{
		Model:     model,
		Timestamp: startedAt.UnixMilli(),
		Generation: storage.GenerationStats{
			DurationMs:       gen.DurationMs,
			PromptTokens:     gen.PromptTokens,
			CompletionTokens: gen.CompletionTokens,
			TotalTokens:      gen.TotalTokens,
			Cost:             cost,
		},
	}

	log.WithField("key", indexKey).Info("Step publish started")
	if err := w.storage.Put(ctx, indexKey, gen.HTML, metadata); err != nil {
		log.WithError(err).Error("Step publish failed")
		w.recordRun(ctx, instanceID, trigger, startedAt, model, gen, cost, err)
		return nil, err
	}
	log.WithField("key", indexKey).Info("Step publish completed")

	w.recordRun(ctx, instanceID, trigger, startedAt, model, gen, cost, nil)

	log.WithFields(logrus.Fields{
		"date":  date,
		"model": model,
		"key":   indexKey,
	}).Info("Website generation workflow completed")

	return &Result{
		InstanceID: instanceID,
		Date:       date,
		IndexKey:   indexKey,
		Model:      model,
	}, nil
}

func (w *Workflow) recordRun(ctx context.Context, instanceID, trigger string, startedAt time.Time, model string, gen *openrouter.Generation, cost *float64, runErr error) {
	if w.db == nil {
		return
	}

	run := models.GenerationRun{
		InstanceID: instanceID,
		Trigger:    trigger,
		Date:       startedAt.Format("2006-01-02"),
		Model:      model,
		StartedAt:  startedAt,
		Status:     "succeeded",
		Cost:       cost,
	}
	if runErr != nil {
		run.Status = "failed"
		run.Error = runErr.Error()
	} else {
		run.IndexKey = storage.IndexKey(run.Date)
	}
	if gen != nil {
		run.DurationMs = gen.DurationMs
		run.PromptTokens = gen.PromptTokens
		run.CompletionTokens = gen.CompletionTokens
		run.TotalTokens = gen.TotalTokens
	}

	dbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := w.db.WithContext(dbCtx).Create(&run).Error; err != nil {
		w.log.WithError(err).Warn("Failed to save generation run record")
	}
}
