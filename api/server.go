// Package api exposes a local HTTP control surface for the station:
// EVSE status, the feature log and manual triggers for outbound calls.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"evstation/internal"
	"evstation/internal/config"
	"evstation/station"
)

const defaultLogLimit = 100

type Journal interface {
	ReadLog(limit int64) ([]internal.FeatureLogMessage, error)
}

type Server struct {
	conf       *config.Config
	logger     internal.LogHandler
	cs         *station.ChargingStation
	journal    Journal
	httpServer *http.Server
}

func NewServer(conf *config.Config, logger internal.LogHandler, cs *station.ChargingStation) *Server {
	server := &Server{
		conf:   conf,
		logger: logger,
		cs:     cs,
	}
	router := httprouter.New()
	router.GET("/api/v1/status", server.status)
	router.GET("/api/v1/log", server.readLog)
	router.POST("/api/v1/heartbeat", server.triggerHeartbeat)
	router.POST("/api/v1/evse/:id/start", server.startTransaction)
	router.POST("/api/v1/evse/:id/stop", server.stopTransaction)
	server.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port),
		Handler: router,
	}
	return server
}

func (s *Server) SetJournal(journal Journal) {
	s.journal = journal
}

func (s *Server) Start() error {
	s.logger.Debug(fmt.Sprintf("starting api server on %s", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	evses := s.cs.Handler().EVSEs()
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(renderStatusTable(evses)))
		return
	}
	s.writeJson(w, evses)
}

func (s *Server) readLog(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.journal == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	limit := int64(defaultLogLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	messages, err := s.journal.ReadLog(limit)
	if err != nil {
		s.logger.Error("read log", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.writeJson(w, messages)
}

func (s *Server) triggerHeartbeat(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	go s.cs.SendHeartbeat()
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) startTransaction(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	evseId, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	evse := s.cs.Handler().EVSE(evseId)
	if evse == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	transactionId, ok := evse.StartCharging(0)
	if !ok {
		w.WriteHeader(http.StatusConflict)
		return
	}
	go s.cs.SendTransactionEventStarted(evseId, transactionId, 0)
	s.writeJson(w, map[string]string{"transactionId": transactionId})
}

func (s *Server) stopTransaction(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	evseId, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	evse := s.cs.Handler().EVSE(evseId)
	if evse == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	transactionId := evse.CurrentTransaction()
	if !evse.StopCharging() {
		w.WriteHeader(http.StatusConflict)
		return
	}
	go s.cs.SendTransactionEventEnded(evseId, transactionId)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) writeJson(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding api response", err)
	}
}
