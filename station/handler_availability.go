package station

import (
	"fmt"

	"evstation/ocpp/availability"
)

func (h *SystemHandler) OnChangeAvailability(request *availability.ChangeAvailabilityRequest) *availability.ChangeAvailabilityResponse {
	if request.Evse == nil {
		for _, evse := range h.allEVSEs() {
			evse.SetAdminStatus(request.OperationalStatus)
		}
		return availability.NewChangeAvailabilityResponse(availability.ChangeAvailabilityStatusAccepted)
	}
	evse := h.EVSE(request.Evse.Id)
	if evse == nil {
		return availability.NewChangeAvailabilityResponse(availability.ChangeAvailabilityStatusRejected)
	}
	if request.Evse.ConnectorId != nil && evse.Connector(*request.Evse.ConnectorId) == nil {
		return availability.NewChangeAvailabilityResponse(availability.ChangeAvailabilityStatusRejected)
	}
	evse.SetAdminStatus(request.OperationalStatus)
	return availability.NewChangeAvailabilityResponse(availability.ChangeAvailabilityStatusAccepted)
}

func (h *SystemHandler) OnTriggerMessage(request *availability.TriggerMessageRequest) *availability.TriggerMessageResponse {
	switch request.RequestedMessage {
	case availability.MessageTriggerBootNotification:
		go h.sender.SendBootNotification()
		return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusAccepted)
	case availability.MessageTriggerLogStatusNotification,
		availability.MessageTriggerDiagnosticsStatusNotification,
		availability.MessageTriggerFirmwareStatusNotification,
		availability.MessageTriggerSignChargingStationCertificate:
		return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusAccepted)
	case availability.MessageTriggerMeterValues:
		if request.Evse == nil {
			return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusRejected)
		}
		return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusAccepted)
	case availability.MessageTriggerStatusNotification:
		if request.Evse == nil {
			return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusRejected)
		}
		evse := h.EVSE(request.Evse.Id)
		if evse != nil {
			connectorId := 0
			if request.Evse.ConnectorId != nil {
				connectorId = *request.Evse.ConnectorId
			}
			go h.sender.SendStatusNotification(evse.Id, connectorId, evse.Status)
		}
		return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusAccepted)
	default:
		return availability.NewTriggerMessageResponse(availability.TriggerMessageStatusRejected)
	}
}

func (h *SystemHandler) OnUnlockConnector(request *availability.UnlockConnectorRequest) *availability.UnlockConnectorResponse {
	evse := h.EVSE(request.EvseId)
	if evse == nil || evse.Connector(request.ConnectorId) == nil {
		return availability.NewUnlockConnectorResponse(availability.UnlockStatusUnknownConnector)
	}
	if evse.Charging() {
		return availability.NewUnlockConnectorResponse(availability.UnlockStatusOngoingTransaction)
	}
	h.logger.FeatureEvent(availability.UnlockConnectorFeatureName, h.conf.Station.Id,
		fmt.Sprintf("unlocked connector %d on evse %d", request.ConnectorId, request.EvseId))
	return availability.NewUnlockConnectorResponse(availability.UnlockStatusUnlocked)
}
