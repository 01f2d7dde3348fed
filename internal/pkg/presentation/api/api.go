package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fabwise/equipment-mgmt/internal/pkg/application/monitor"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/logging"
	"github.com/fabwise/equipment-mgmt/internal/pkg/infrastructure/repositories/database"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, svc monitor.EquipmentMonitor, repository database.EquipmentRepository) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v0", func(r chi.Router) {
		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", listEquipmentHandler(log, repository))
			r.Get("/stats", getStatisticsHandler(log, repository))
			r.Get("/{equipmentID}", getEquipmentHandler(log, repository))
			r.Get("/{equipmentID}/alerts", getEquipmentAlertsHandler(log, repository))
		})

		r.Get("/alerts", getAlertsHandler(log, repository))
		r.Patch("/alerts/{alertID}", resolveAlertHandler(log, repository))

		r.Post("/check", triggerCheckHandler(log, svc))
	})

	return router
}

func listEquipmentHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)

		equipment, err := repository.GetEquipment(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch equipment")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, equipment)
	}
}

func getEquipmentHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)
		equipmentID := chi.URLParam(r, "equipmentID")

		equipment, err := repository.GetEquipmentByID(ctx, equipmentID)
		if err != nil {
			if errors.Is(err, database.ErrEquipmentNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msgf("unable to fetch equipment %s", equipmentID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, equipment)
	}
}

func getStatisticsHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)

		stats, err := repository.GetStatistics(ctx)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch equipment statistics")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func getAlertsHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)

		onlyUnresolved, _ := strconv.ParseBool(r.URL.Query().Get("unresolved"))

		alerts, err := repository.GetAlerts(ctx, onlyUnresolved)
		if err != nil {
			log.Error().Err(err).Msg("unable to fetch alerts")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}

func getEquipmentAlertsHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)
		equipmentID := chi.URLParam(r, "equipmentID")

		alerts, err := repository.GetAlertsByEquipmentID(ctx, equipmentID)
		if err != nil {
			log.Error().Err(err).Msgf("unable to fetch alerts for equipment %s", equipmentID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, alerts)
	}
}

// resolveAlertHandler lets the external resolution workflow mark an alert as
// handled. The core itself never resolves state change alerts.
func resolveAlertHandler(log zerolog.Logger, repository database.EquipmentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)
		defer r.Body.Close()

		alertID, err := strconv.ParseUint(chi.URLParam(r, "alertID"), 10, 32)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body := struct {
			ResolvedBy string `json:"resolvedBy"`
			Notes      string `json:"notes"`
		}{}

		err = json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		err = repository.ResolveAlert(ctx, uint(alertID), body.ResolvedBy, body.Notes)
		if err != nil {
			if errors.Is(err, database.ErrAlertNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Msgf("unable to resolve alert %d", alertID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func triggerCheckHandler(log zerolog.Logger, svc monitor.EquipmentMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.NewContextWithLogger(r.Context(), log)

		err := svc.CheckAllEquipment(ctx)
		if err != nil {
			log.Error().Err(err).Msg("manual equipment check failed")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}
