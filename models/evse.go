package models

import (
	"encoding/json"
	"sync"
	"time"

	"evstation/types"
	"evstation/utility"
)

// EVSE holds the mutable runtime state of one outlet group. All reads and
// writes go through the methods below; the struct mutex keeps a
// read-then-write sequence like StartCharging atomic.
type EVSE struct {
	Id              int                     `json:"evse_id" bson:"evse_id"`
	AdminStatus     types.OperationalStatus `json:"admin_status" bson:"admin_status"`
	Status          types.ConnectorStatus   `json:"status" bson:"status"`
	ReservationId   *int                    `json:"reservation_id,omitempty" bson:"reservation_id"`
	IsCharging      bool                    `json:"is_charging" bson:"is_charging"`
	TransactionId   *string                 `json:"transaction_id,omitempty" bson:"transaction_id"`
	RemoteStartId   *int                    `json:"remote_start_id,omitempty" bson:"remote_start_id"`
	TimeStart       *time.Time              `json:"time_start,omitempty" bson:"time_start"`
	MeterStart      *int                    `json:"meter_start,omitempty" bson:"meter_start"`
	TimeStop        *time.Time              `json:"time_stop,omitempty" bson:"time_stop"`
	MeterStop       *int                    `json:"meter_stop,omitempty" bson:"meter_stop"`
	ChargingProfile *types.ChargingProfile  `json:"charging_profile,omitempty" bson:"charging_profile"`
	DefaultTariff   *types.Tariff           `json:"default_tariff,omitempty" bson:"default_tariff"`

	connectors map[int]*Connector
	mutex      sync.Mutex
}

func NewEVSE(id int, connectors ...*Connector) *EVSE {
	evse := &EVSE{
		Id:          id,
		AdminStatus: types.OperationalStatusOperative,
		Status:      types.ConnectorStatusAvailable,
		connectors:  make(map[int]*Connector),
	}
	for _, c := range connectors {
		evse.connectors[c.Id] = c
	}
	return evse
}

// MarshalJSON serializes a consistent snapshot. Handlers mutate the EVSE
// while the status API reads it, so the encoder must hold the same lock.
func (e *EVSE) MarshalJSON() ([]byte, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	type snapshot EVSE
	return json.Marshal((*snapshot)(e))
}

func (e *EVSE) Lock() {
	e.mutex.Lock()
}

func (e *EVSE) Unlock() {
	e.mutex.Unlock()
}

// Connector returns the connector with the given id, nil when the EVSE has
// no such connector.
func (e *EVSE) Connector(id int) *Connector {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.connectors[id]
}

func (e *EVSE) Connectors() []*Connector {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	list := make([]*Connector, 0, len(e.connectors))
	for _, c := range e.connectors {
		list = append(list, c)
	}
	return list
}

func (e *EVSE) SetAdminStatus(status types.OperationalStatus) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.AdminStatus = status
}

// StartCharging begins a new transaction on an idle EVSE. It returns the
// generated transaction id, or empty string and false when the EVSE is
// already charging.
func (e *EVSE) StartCharging(remoteStartId int) (string, bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.IsCharging {
		return "", false
	}
	transactionId := utility.NewUUID()
	now := time.Now()
	meterStart := 0
	e.IsCharging = true
	e.TransactionId = &transactionId
	e.RemoteStartId = &remoteStartId
	e.TimeStart = &now
	e.MeterStart = &meterStart
	e.TimeStop = nil
	e.MeterStop = nil
	return transactionId, true
}

// StopCharging ends the active transaction. The meter stop value is a fixed
// placeholder; there is no real metering hardware behind this model.
func (e *EVSE) StopCharging() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if !e.IsCharging {
		return false
	}
	now := time.Now()
	meterStop := 123
	e.IsCharging = false
	e.TimeStop = &now
	e.MeterStop = &meterStop
	return true
}

// OwnsTransaction reports whether the EVSE currently runs the given
// transaction.
func (e *EVSE) OwnsTransaction(transactionId string) bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.TransactionId != nil && *e.TransactionId == transactionId
}

func (e *EVSE) CurrentTransaction() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.TransactionId == nil {
		return ""
	}
	return *e.TransactionId
}

func (e *EVSE) Charging() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.IsCharging
}

func (e *EVSE) SetReservation(reservationId int) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.ReservationId = &reservationId
}

func (e *EVSE) HasReservation(reservationId int) bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.ReservationId != nil && *e.ReservationId == reservationId
}

func (e *EVSE) ClearReservation() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.ReservationId = nil
}

func (e *EVSE) SetChargingProfile(profile *types.ChargingProfile) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.ChargingProfile = profile
}

func (e *EVSE) GetChargingProfile() *types.ChargingProfile {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.ChargingProfile
}

func (e *EVSE) SetDefaultTariff(tariff *types.Tariff) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.DefaultTariff = tariff
}

func (e *EVSE) GetDefaultTariff() *types.Tariff {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.DefaultTariff
}

// RemoveDefaultTariff clears the default tariff when the id filter is empty
// or matches the current tariff. It reports whether a tariff was removed;
// the second result is false when no tariff was set at all.
func (e *EVSE) RemoveDefaultTariff(tariffId string) (removed bool, present bool) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	if e.DefaultTariff == nil {
		return false, false
	}
	if tariffId == "" || e.DefaultTariff.TariffId == tariffId {
		e.DefaultTariff = nil
		return true, true
	}
	return false, true
}
