package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evstation/internal"
	"evstation/internal/config"
	"evstation/station"
)

type nopLogger struct{}

func (l *nopLogger) FeatureEvent(feature, id, text string) {}
func (l *nopLogger) Debug(text string)                     {}
func (l *nopLogger) Warn(text string)                      {}
func (l *nopLogger) Error(text string, err error)          {}
func (l *nopLogger) RawDataEvent(direction, data string)   {}

type fakeJournal struct {
	messages []internal.FeatureLogMessage
}

func (j *fakeJournal) ReadLog(limit int64) ([]internal.FeatureLogMessage, error) {
	if int64(len(j.messages)) > limit {
		return j.messages[:limit], nil
	}
	return j.messages, nil
}

func newTestServer() *Server {
	conf := &config.Config{}
	conf.Station.Id = "station-1"
	conf.Station.Vendor = "GraphDefined OEM"
	conf.Evse.Count = 1
	conf.Evse.ConnectorsPerEvse = 1
	conf.Listen.BindIP = "127.0.0.1"
	conf.Listen.Port = "0"
	cs := station.NewChargingStation(conf, &nopLogger{})
	return NewServer(conf, &nopLogger{}, cs)
}

func (s *Server) serve(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(recorder, request)
	return recorder
}

func TestStatusJson(t *testing.T) {
	s := newTestServer()
	recorder := s.serve(t, http.MethodGet, "/api/v1/status")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", recorder.Code)
	}
	var evses []struct {
		Id int `json:"evse_id"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &evses); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(evses) != 1 || evses[0].Id != 1 {
		t.Errorf("body = %s, want a single evse with id 1", recorder.Body.String())
	}
}

func TestStatusTextTable(t *testing.T) {
	s := newTestServer()
	recorder := s.serve(t, http.MethodGet, "/api/v1/status?format=text")
	if recorder.Code != http.StatusOK {
		t.Fatalf("status code = %d, want 200", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "EVSE") || !strings.Contains(body, "CHARGING") {
		t.Errorf("table header missing in %q", body)
	}
}

func TestStartStopRoundTrip(t *testing.T) {
	s := newTestServer()
	start := s.serve(t, http.MethodPost, "/api/v1/evse/1/start")
	if start.Code != http.StatusOK {
		t.Fatalf("start code = %d, want 200", start.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(start.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding start body: %v", err)
	}
	if payload["transactionId"] == "" {
		t.Fatal("start must return a transaction id")
	}

	conflict := s.serve(t, http.MethodPost, "/api/v1/evse/1/start")
	if conflict.Code != http.StatusConflict {
		t.Errorf("second start code = %d, want 409", conflict.Code)
	}

	stop := s.serve(t, http.MethodPost, "/api/v1/evse/1/stop")
	if stop.Code != http.StatusAccepted {
		t.Errorf("stop code = %d, want 202", stop.Code)
	}

	again := s.serve(t, http.MethodPost, "/api/v1/evse/1/stop")
	if again.Code != http.StatusConflict {
		t.Errorf("stop on idle evse code = %d, want 409", again.Code)
	}
}

func TestStartUnknownEvse(t *testing.T) {
	s := newTestServer()
	recorder := s.serve(t, http.MethodPost, "/api/v1/evse/9/start")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", recorder.Code)
	}
}

func TestReadLogWithoutJournal(t *testing.T) {
	s := newTestServer()
	recorder := s.serve(t, http.MethodGet, "/api/v1/log")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404 without a journal", recorder.Code)
	}
}

func TestReadLogLimit(t *testing.T) {
	s := newTestServer()
	journal := &fakeJournal{}
	for i := 0; i < 5; i++ {
		journal.messages = append(journal.messages, internal.FeatureLogMessage{Feature: "Heartbeat"})
	}
	s.SetJournal(journal)
	recorder := s.serve(t, http.MethodGet, "/api/v1/log?limit=2")
	if recorder.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200", recorder.Code)
	}
	var messages []internal.FeatureLogMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &messages); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("messages = %d, want 2", len(messages))
	}
}
