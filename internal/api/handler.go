package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/evmkit/chain-resolver/internal/config"
	"github.com/evmkit/chain-resolver/internal/cron"
	"github.com/evmkit/chain-resolver/internal/resolver"
	"github.com/evmkit/chain-resolver/pkg/chainid"
	"github.com/evmkit/chain-resolver/pkg/types"
)

type Handler struct {
	resolver  *resolver.Resolver
	logger    *logrus.Logger
	config    *config.Config
	Scheduler *cron.Scheduler
}

type ChainsResponse struct {
	Chains []types.ChainDetail `json:"chains"`
	Count  int                 `json:"count"`
}

func NewHandler(res *resolver.Resolver, logger *logrus.Logger, cfg *config.Config) *Handler {
	scheduler := cron.NewScheduler(logger, cfg.Jobs)

	scheduler.RegisterTask("reload-aliases", res.ReloadAliases)
	scheduler.RegisterTask("sweep-cache", func() error {
		res.SweepCache()
		return nil
	})

	if err := scheduler.LoadPredefinedJobs(cfg.Jobs.Predefined); err != nil {
		logger.Fatalf("Failed to load predefined jobs: %v", err)
	}

	return &Handler{
		resolver:  res,
		logger:    logger,
		config:    cfg,
		Scheduler: scheduler,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (h *Handler) ListChains(w http.ResponseWriter, r *http.Request) {
	chains := h.resolver.ListChains()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChainsResponse{
		Chains: chains,
		Count:  len(chains),
	})
}

func (h *Handler) GetChain(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	identifier := vars["chain"]

	detail, err := h.resolver.Resolve(identifier)
	if err != nil {
		if errors.Is(err, chainid.ErrInvalidIdentifier) {
			h.handleError(w, err, http.StatusBadRequest)
			return
		}
		h.handleError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.Scheduler.ListJobs()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"jobs":        jobs,
		"active_jobs": len(jobs),
	})
}

func (h *Handler) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	jobName := vars["name"]

	enabled, description, err := h.Scheduler.GetJobStatus(jobName)
	if err != nil {
		h.handleError(w, err, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"name":        jobName,
		"enabled":     enabled,
		"description": description,
	})
}

func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	if err := h.Scheduler.Start(); err != nil {
		h.handleError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "scheduler started successfully",
	})
}

func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	h.Scheduler.Stop()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "scheduler stopped successfully",
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error, status int) {
	h.logger.WithField("status", status).Errorf("Request failed: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	})
}
