package handler

import (
	"deals_bot/internal/worker"
)

type Handler struct {
	rec *worker.Reconciler
}

func New(rec *worker.Reconciler) *Handler {
	return &Handler{rec: rec}
}
