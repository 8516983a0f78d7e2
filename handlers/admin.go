package handlers

import (
	"net/http"

	"bookexpert/cron"
	"bookexpert/services/reconciler"
	"bookexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes operator endpoints.
type AdminHandler struct {
	Reconciler *reconciler.Reconciler
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(rec *reconciler.Reconciler) *AdminHandler {
	return &AdminHandler{Reconciler: rec}
}

// ReconcileHandler handles POST /api/admin/reconcile. By default the pass
// runs inline and the repair report is returned; with ?async=true the run is
// enqueued on the task queue and picked up by the worker instead.
func (h *AdminHandler) ReconcileHandler(c *gin.Context) {
	if c.Query("async") == "true" {
		if err := cron.EnqueueReconcile(c.Request.Context()); err != nil {
			zap.L().Error("failed to enqueue reconcile task", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Server Error", "failed to enqueue reconciliation")
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "Reconciliation enqueued"})
		return
	}

	report, err := h.Reconciler.Run(c.Request.Context())
	if err != nil {
		zap.L().Error("reconciliation pass failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server Error", "reconciliation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reconciliation complete", "report": report})
}
