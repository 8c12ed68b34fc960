package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sdko-org/website-generator/internal/rewrite"
	"github.com/sdko-org/website-generator/internal/storage"
	"github.com/sdko-org/website-generator/internal/workflow"
	"github.com/sirupsen/logrus"
)

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y="80" font-size="80">🤖</text></svg>`

type WebsiteHandler struct {
	storage  storage.Storage
	workflow *workflow.Workflow
	log      *logrus.Entry
}

func NewWebsiteHandler(logger *logrus.Logger, store storage.Storage, wf *workflow.Workflow) *WebsiteHandler {
	return &WebsiteHandler{
		storage:  store,
		workflow: wf,
		log:      logger.WithField("component", "website_handler"),
	}
}

// HandleWebsite serves the generated page for an explicitly requested date,
// or the latest stored version when no date parameter is given.
func (h *WebsiteHandler) HandleWebsite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dateParam := r.URL.Query().Get("date")

	var indexKey, date string
	if dateParam != "" {
		indexKey = storage.IndexKey(dateParam)
		date = dateParam
	} else {
		keys, err := h.storage.List(ctx, storage.IndexKeyPrefix)
		if err != nil {
			h.log.WithError(err).Error("Failed to list website versions")
			writeError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to list website versions")
			return
		}
		if len(keys) == 0 {
			writeError(w, http.StatusNotFound, "Not Found", "No website generated yet")
			return
		}
		indexKey = storage.LatestKey(keys)
		date = storage.DateFromKey(indexKey)
	}

	entry, err := h.storage.Get(ctx, indexKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			message := "No website found"
			if dateParam != "" {
				message = "No website found for date: " + dateParam
			}
			writeError(w, http.StatusNotFound, "Not Found", message)
			return
		}
		h.log.WithError(err).WithField("key", indexKey).Error("Failed to fetch website")
		writeError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to fetch website")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rewrite.InjectMetadata(w, entry.HTML, date, entry.Metadata); err != nil {
		// Headers are already on the wire, all we can do is log.
		h.log.WithError(err).WithField("key", indexKey).Error("Failed to stream rewritten website")
	}
}

func (h *WebsiteHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	})
}

func (h *WebsiteHandler) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(faviconSVG))
}

// HandleGenerate starts an on-demand workflow run. The run is fire-and-log,
// indistinguishable from a scheduled one except for the recorded trigger.
func (h *WebsiteHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	h.log.Info("Manual generation requested")

	go func() {
		// Detached from the request context: the run outlives the response.
		result, err := h.workflow.Run(context.Background(), "manual")
		if err != nil {
			h.log.WithError(err).Error("Manual generation failed")
			return
		}
		h.log.WithFields(logrus.Fields{
			"workflow_id": result.InstanceID,
			"date":        result.Date,
			"model":       result.Model,
		}).Info("Manual generation completed")
	}()

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"status":  "accepted",
		"message": "Website generation started",
	})
}

func (h *WebsiteHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":   "Not Found",
		"path":    r.URL.Path,
		"message": "The requested resource was not found",
	})
}
