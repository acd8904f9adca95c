package models

import (
	"encoding/json"
	"testing"

	"evstation/types"
)

func message(id int, state types.MessageState, priority types.MessagePriority) types.MessageInfo {
	return types.MessageInfo{
		Id:       id,
		Priority: priority,
		State:    state,
		Message:  types.MessageContent{Format: types.MessageFormatUTF8, Content: "msg"},
	}
}

func TestDisplayMessageMapAddRejectsDuplicate(t *testing.T) {
	m := NewDisplayMessageMap()
	if !m.Add(message(1, types.MessageStateIdle, types.MessagePriorityNormalCycle)) {
		t.Fatal("first add must succeed")
	}
	if m.Add(message(1, types.MessageStateCharging, types.MessagePriorityInFront)) {
		t.Error("duplicate id must be rejected")
	}
}

func TestDisplayMessageMapFilter(t *testing.T) {
	m := NewDisplayMessageMap()
	m.Add(message(1, types.MessageStateIdle, types.MessagePriorityNormalCycle))
	m.Add(message(2, types.MessageStateCharging, types.MessagePriorityNormalCycle))
	m.Add(message(3, types.MessageStateCharging, types.MessagePriorityInFront))

	if got := m.Filter(nil, "", ""); len(got) != 3 {
		t.Errorf("unfiltered = %d messages, want 3", len(got))
	}
	if got := m.Filter(nil, types.MessageStateCharging, ""); len(got) != 2 {
		t.Errorf("state filter = %d messages, want 2", len(got))
	}
	if got := m.Filter([]int{3}, types.MessageStateCharging, types.MessagePriorityInFront); len(got) != 1 || got[0].Id != 3 {
		t.Errorf("combined filter = %v, want only id 3", got)
	}
	if got := m.Filter([]int{9}, "", ""); len(got) != 0 {
		t.Errorf("unknown id filter = %d messages, want 0", len(got))
	}
}

func TestReservationMap(t *testing.T) {
	m := NewReservationMap()
	m.Upsert(7)
	if !m.Contains(7) {
		t.Fatal("reservation 7 must be present after upsert")
	}
	if !m.Remove(7) {
		t.Error("removing a present reservation must report true")
	}
	if m.Remove(7) {
		t.Error("removing twice must report false")
	}
}

func TestCertificateMap(t *testing.T) {
	m := NewCertificateMap()
	m.Upsert(types.CertificateUseCSMSRootCertificate, "pem-1")
	m.Upsert(types.CertificateUseCSMSRootCertificate, "pem-2")
	installed := m.Installed()
	if installed[types.CertificateUseCSMSRootCertificate] != "pem-2" {
		t.Errorf("upsert must replace, got %s", installed[types.CertificateUseCSMSRootCertificate])
	}
	if !m.Remove(types.CertificateUseCSMSRootCertificate) {
		t.Error("removing an installed certificate must report true")
	}
	if m.Remove(types.CertificateUseCSMSRootCertificate) {
		t.Error("removing twice must report false")
	}
}

func TestEvseStartStop(t *testing.T) {
	evse := NewEVSE(1, NewConnector(1, 1, "cType2"))
	transactionId, ok := evse.StartCharging(4)
	if !ok || transactionId == "" {
		t.Fatal("start on idle evse must succeed")
	}
	if _, ok := evse.StartCharging(5); ok {
		t.Error("start on busy evse must fail")
	}
	if !evse.OwnsTransaction(transactionId) {
		t.Error("evse must own the running transaction")
	}
	if !evse.StopCharging() {
		t.Fatal("stop on busy evse must succeed")
	}
	if evse.StopCharging() {
		t.Error("stop on idle evse must fail")
	}
	if evse.CurrentTransaction() != transactionId {
		t.Error("transaction id must survive the stop for the closing event")
	}
}

func TestEvseMarshalSnapshot(t *testing.T) {
	evse := NewEVSE(1, NewConnector(1, 1, "cType2"))
	transactionId, ok := evse.StartCharging(7)
	if !ok {
		t.Fatal("start on fresh evse failed")
	}
	data, err := json.Marshal(evse)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Id            int    `json:"evse_id"`
		IsCharging    bool   `json:"is_charging"`
		TransactionId string `json:"transaction_id"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Id != 1 || !decoded.IsCharging {
		t.Errorf("snapshot = %+v, want charging evse 1", decoded)
	}
	if decoded.TransactionId != transactionId {
		t.Errorf("transaction id = %s, want %s", decoded.TransactionId, transactionId)
	}
}
