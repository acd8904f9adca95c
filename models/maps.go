package models

import (
	"sync"

	"evstation/types"
)

// ReservationMap tracks active reservation ids. Inbound handlers insert and
// remove entries concurrently, so every operation takes the map lock.
type ReservationMap struct {
	items map[int]int
	mutex sync.RWMutex
}

func NewReservationMap() *ReservationMap {
	return &ReservationMap{items: make(map[int]int)}
}

// Upsert stores the reservation id, overwriting a previous entry with the
// same id. It always succeeds.
func (m *ReservationMap) Upsert(id int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.items[id] = id
}

// Remove deletes the reservation and reports whether it was present.
func (m *ReservationMap) Remove(id int) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, found := m.items[id]
	delete(m.items, id)
	return found
}

func (m *ReservationMap) Contains(id int) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, found := m.items[id]
	return found
}

type TransactionMap struct {
	items map[string]*Transaction
	mutex sync.RWMutex
}

func NewTransactionMap() *TransactionMap {
	return &TransactionMap{items: make(map[string]*Transaction)}
}

func (m *TransactionMap) Add(transaction *Transaction) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.items[transaction.Id] = transaction
}

func (m *TransactionMap) Get(id string) *Transaction {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.items[id]
}

type CertificateMap struct {
	items map[types.CertificateUse]string
	mutex sync.RWMutex
}

func NewCertificateMap() *CertificateMap {
	return &CertificateMap{items: make(map[types.CertificateUse]string)}
}

// Upsert installs or replaces the certificate for the given use.
func (m *CertificateMap) Upsert(use types.CertificateUse, certificate string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.items[use] = certificate
}

// Remove deletes the certificate installed for the use matched by the hash
// data serial number; reports whether anything was removed.
func (m *CertificateMap) Remove(use types.CertificateUse) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, found := m.items[use]
	delete(m.items, use)
	return found
}

func (m *CertificateMap) Installed() map[types.CertificateUse]string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	installed := make(map[types.CertificateUse]string, len(m.items))
	for use, cert := range m.items {
		installed[use] = cert
	}
	return installed
}

type DisplayMessageMap struct {
	items map[int]types.MessageInfo
	mutex sync.RWMutex
}

func NewDisplayMessageMap() *DisplayMessageMap {
	return &DisplayMessageMap{items: make(map[int]types.MessageInfo)}
}

// Add stores the message and reports success. A message with an id already
// present is not replaced.
func (m *DisplayMessageMap) Add(message types.MessageInfo) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, found := m.items[message.Id]; found {
		return false
	}
	m.items[message.Id] = message
	return true
}

// Remove deletes the message and reports whether it was present.
func (m *DisplayMessageMap) Remove(id int) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	_, found := m.items[id]
	delete(m.items, id)
	return found
}

// Filter returns the stored messages matching the given criteria. A nil or
// empty id set matches every id; empty state and priority match everything.
func (m *DisplayMessageMap) Filter(ids []int, state types.MessageState, priority types.MessagePriority) []types.MessageInfo {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var result []types.MessageInfo
	for id, message := range m.items {
		if len(wanted) > 0 && !wanted[id] {
			continue
		}
		if state != "" && message.State != state {
			continue
		}
		if priority != "" && message.Priority != priority {
			continue
		}
		result = append(result, message)
	}
	return result
}
