package station

import (
	"sort"
	"sync"

	"evstation/internal"
	"evstation/internal/config"
	"evstation/models"
	"evstation/signature"
	"evstation/types"
)

// Sender is the outbound side of the station, used by business logic that
// needs to push follow-up calls to the central system. All methods are safe
// to call from detached goroutines.
type Sender interface {
	SendBootNotification()
	SendStatusNotification(evseId int, connectorId int, status types.ConnectorStatus)
	SendTransactionEventStarted(evseId int, transactionId string, remoteStartId int)
	SendTransactionEventEnded(evseId int, transactionId string)
	SendNotifyDisplayMessages(requestId int, messages []types.MessageInfo)
	SendNotifyCustomerInformation(requestId int, data string)
	SendSecurityEventNotification(eventType string, techInfo string)
}

// SystemHandler executes the business logic for every inbound request. It
// owns the device model; the pipeline in ChargingStation calls one OnX
// method per message type.
type SystemHandler struct {
	conf             *config.Config
	evses            map[int]*models.EVSE
	reservations     *models.ReservationMap
	transactions     *models.TransactionMap
	certificates     *models.CertificateMap
	displayMessages  *models.DisplayMessageMap
	policies         *signature.PolicySet
	userRoles        map[string]string
	localListVersion int
	monitoringLevel  int
	monitoringBase   string
	logger           internal.LogHandler
	sender           Sender
	mux              *sync.Mutex
}

func NewSystemHandler(conf *config.Config, policies *signature.PolicySet) *SystemHandler {
	handler := &SystemHandler{
		conf:            conf,
		evses:           make(map[int]*models.EVSE),
		reservations:    models.NewReservationMap(),
		transactions:    models.NewTransactionMap(),
		certificates:    models.NewCertificateMap(),
		displayMessages: models.NewDisplayMessageMap(),
		policies:        policies,
		userRoles:       make(map[string]string),
		mux:             &sync.Mutex{},
	}
	for id := 1; id <= conf.Evse.Count; id++ {
		connectors := make([]*models.Connector, 0, conf.Evse.ConnectorsPerEvse)
		for c := 1; c <= conf.Evse.ConnectorsPerEvse; c++ {
			connectors = append(connectors, models.NewConnector(c, id, "cType2"))
		}
		handler.evses[id] = models.NewEVSE(id, connectors...)
	}
	return handler
}

func (h *SystemHandler) SetLogger(logger internal.LogHandler) {
	h.logger = logger
}

func (h *SystemHandler) SetSender(sender Sender) {
	h.sender = sender
}

// AddEVSE registers an extra EVSE, used by tests to build small fixtures.
func (h *SystemHandler) AddEVSE(evse *models.EVSE) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.evses[evse.Id] = evse
}

func (h *SystemHandler) EVSE(id int) *models.EVSE {
	h.mux.Lock()
	defer h.mux.Unlock()
	return h.evses[id]
}

func (h *SystemHandler) allEVSEs() []*models.EVSE {
	h.mux.Lock()
	defer h.mux.Unlock()
	list := make([]*models.EVSE, 0, len(h.evses))
	for _, evse := range h.evses {
		list = append(list, evse)
	}
	return list
}

// EVSEs returns all EVSEs sorted by id.
func (h *SystemHandler) EVSEs() []*models.EVSE {
	list := h.allEVSEs()
	sort.Slice(list, func(i, j int) bool { return list[i].Id < list[j].Id })
	return list
}

// ChargingCount reports how many EVSEs run a transaction right now.
func (h *SystemHandler) ChargingCount() int {
	count := 0
	for _, evse := range h.allEVSEs() {
		if evse.Charging() {
			count++
		}
	}
	return count
}

// evseByTransaction scans for the EVSE running the given transaction.
func (h *SystemHandler) evseByTransaction(transactionId string) *models.EVSE {
	for _, evse := range h.allEVSEs() {
		if evse.OwnsTransaction(transactionId) {
			return evse
		}
	}
	return nil
}
