package station

import (
	"fmt"
	"reflect"
	"time"

	"evstation/metrics/counters"
	"evstation/ocpp"
	"evstation/ocpp/availability"
	"evstation/ocpp/datatransfer"
	"evstation/ocpp/diagnostics"
	"evstation/ocpp/display"
	"evstation/ocpp/firmware"
	"evstation/ocpp/provisioning"
	"evstation/ocpp/reservation"
	"evstation/ocpp/security"
	"evstation/ocpp/smartcharging"
	"evstation/ocpp/transactions"
	"evstation/types"
	"evstation/utility"
)

// responseTypes maps every action the station initiates to the concrete
// response type the central system answers with.
var responseTypes = make(map[string]reflect.Type)

func init() {
	register := func(response ocpp.Response) {
		responseTypes[response.GetFeatureName()] = reflect.TypeOf(response).Elem()
	}
	register(&provisioning.BootNotificationResponse{})
	register(&provisioning.HeartbeatResponse{})
	register(&provisioning.NotifyReportResponse{})
	register(&diagnostics.NotifyEventResponse{})
	register(&diagnostics.NotifyMonitoringReportResponse{})
	register(&diagnostics.LogStatusNotificationResponse{})
	register(&diagnostics.NotifyCustomerInformationResponse{})
	register(&availability.StatusNotificationResponse{})
	register(&transactions.TransactionEventResponse{})
	register(&transactions.AuthorizeResponse{})
	register(&transactions.MeterValuesResponse{})
	register(&firmware.StatusNotificationResponse{})
	register(&firmware.PublishStatusNotificationResponse{})
	register(&security.SecurityEventNotificationResponse{})
	register(&security.SignCertificateResponse{})
	register(&security.Get15118EVCertificateResponse{})
	register(&security.GetCertificateStatusResponse{})
	register(&security.GetCRLResponse{})
	register(&reservation.ReservationStatusUpdateResponse{})
	register(&smartcharging.NotifyChargingLimitResponse{})
	register(&smartcharging.ClearedChargingLimitResponse{})
	register(&smartcharging.NotifyEVChargingScheduleResponse{})
	register(&smartcharging.NotifyEVChargingNeedsResponse{})
	register(&smartcharging.ReportChargingProfilesResponse{})
	register(&smartcharging.NotifyPriorityChargingResponse{})
	register(&smartcharging.PullDynamicScheduleUpdateResponse{})
	register(&display.NotifyDisplayMessagesResponse{})
	register(&datatransfer.DataTransferResponse{})
	register(&datatransfer.BinaryDataTransferResponse{})
}

// SendRequest runs one outbound call against the central system. With no
// live channel the request is queued for the maintenance cycle and the
// call fails with UnknownOrUnreachable; the queued copy completes the
// pipeline once delivered.
func (cs *ChargingStation) SendRequest(request ocpp.Request) (ocpp.Response, error) {
	feature := request.GetFeatureName()
	started := time.Now()
	cs.events.RequestSent(feature, request)

	channel := cs.liveChannel()
	if channel == nil {
		cs.enqueueRequest(feature, request, started)
		return nil, NewUnreachableFailure(cs.conf.Csms.Url)
	}

	policy := cs.policies.Active()
	if policy != nil {
		payload, err := cs.codec.Encode(request)
		if err != nil {
			return nil, NewSignatureFailure(err.Error())
		}
		if ok, reason := policy.SignRequestMessage(request, payload); !ok {
			cs.logger.Warn(fmt.Sprintf("signing %s request failed: %s", feature, reason))
			counters.ObserveSignatureFailure(cs.conf.Station.Id, feature)
			return nil, NewSignatureFailure(reason)
		}
	}

	uniqueId := cs.requestId.Next()
	call, err := ocpp.CreateCall(request, uniqueId)
	if err != nil {
		return nil, err
	}
	data, err := cs.codec.Encode(call)
	if err != nil {
		return nil, err
	}

	cs.logger.RawDataEvent("out", string(data))
	raw, err := channel.Send(uniqueId, data)
	if err != nil {
		return nil, NewGenericFailure(err.Error())
	}
	response, err := cs.completeRequest(feature, raw, started)
	if err != nil {
		return nil, err
	}
	cs.afterResponse(feature, response)
	return response, nil
}

// enqueueRequest serializes the request for the maintenance cycle.
// Signing is best-effort here; the caller already reports the missing
// channel, so a broken key only logs and counts.
func (cs *ChargingStation) enqueueRequest(feature string, request ocpp.Request, started time.Time) {
	if policy := cs.policies.Active(); policy != nil {
		if payload, err := cs.codec.Encode(request); err == nil {
			if ok, reason := policy.SignRequestMessage(request, payload); !ok {
				cs.logger.Warn(fmt.Sprintf("signing queued %s request failed: %s", feature, reason))
				counters.ObserveSignatureFailure(cs.conf.Station.Id, feature)
			}
		}
	}
	uniqueId := cs.requestId.Next()
	call, err := ocpp.CreateCall(request, uniqueId)
	if err != nil {
		cs.logger.Error(fmt.Sprintf("queueing %s request", feature), err)
		return
	}
	data, err := cs.codec.Encode(call)
	if err != nil {
		cs.logger.Error(fmt.Sprintf("queueing %s request", feature), err)
		return
	}
	cs.queue.Enqueue(&EnqueuedRequest{
		UniqueId: uniqueId,
		Feature:  feature,
		Data:     data,
		Continuation: func(raw []byte) {
			if response, err := cs.completeRequest(feature, raw, started); err != nil {
				cs.logger.Error(fmt.Sprintf("queued %s response", feature), err)
			} else {
				cs.afterResponse(feature, response)
			}
		},
	})
	cs.logger.FeatureEvent(feature, cs.conf.Station.Id, "no channel; request queued")
}

// completeRequest decodes and verifies the raw response frame, then fires
// the response-received event with the round-trip duration.
func (cs *ChargingStation) completeRequest(feature string, raw []byte, started time.Time) (ocpp.Response, error) {
	cs.logger.RawDataEvent("in", string(raw))
	fields, err := utility.ParseJson(raw)
	if err != nil {
		return nil, err
	}
	callType, err := ocpp.MessageType(fields)
	if err != nil {
		return nil, err
	}
	if callType == ocpp.CallTypeError {
		callError, err := ocpp.ParseRawError(fields)
		if err != nil {
			return nil, err
		}
		return nil, NewGenericFailure(fmt.Sprintf("%s: %s", callError.ErrorCode, callError.ErrorDescription))
	}
	result, err := ocpp.ParseRawResult(fields)
	if err != nil {
		return nil, err
	}
	responseType, known := responseTypes[feature]
	if !known {
		return nil, NewGenericFailure(fmt.Sprintf("no response type for %s", feature))
	}
	response, err := ocpp.ParseRawJsonResponse(result.Payload, responseType)
	if err != nil {
		return nil, err
	}
	if policy := cs.policies.Active(); policy != nil {
		if payload, err := cs.codec.Encode(response); err == nil {
			if ok, reason := policy.VerifyResponseMessage(response, payload); !ok {
				cs.logger.Warn(fmt.Sprintf("%s response signature not verified: %s", feature, reason))
			}
		}
	}
	cs.events.ResponseReceived(feature, response, time.Since(started))
	return response, nil
}

func (cs *ChargingStation) afterResponse(feature string, response ocpp.Response) {
	if feature != provisioning.BootNotificationFeatureName {
		return
	}
	if boot, ok := response.(*provisioning.BootNotificationResponse); ok {
		cs.adoptBootResponse(boot)
	}
}

func (cs *ChargingStation) send(request ocpp.Request) {
	if _, err := cs.SendRequest(request); err != nil {
		cs.logger.Error(request.GetFeatureName(), err)
	}
}

func (cs *ChargingStation) SendBootNotification() {
	station := provisioning.ChargingStationType{
		Model:           cs.conf.Station.Model,
		VendorName:      cs.conf.Station.Vendor,
		SerialNumber:    cs.conf.Station.SerialNumber,
		FirmwareVersion: cs.conf.Station.FirmwareVersion,
	}
	cs.send(provisioning.NewBootNotificationRequest(provisioning.BootReasonPowerUp, station))
}

func (cs *ChargingStation) SendHeartbeat() {
	cs.send(provisioning.NewHeartbeatRequest())
}

func (cs *ChargingStation) SendStatusNotification(evseId int, connectorId int, status types.ConnectorStatus) {
	request := availability.NewStatusNotificationRequest(types.NewDateTime(cs.CurrentTime()), status, evseId, connectorId)
	cs.send(request)
}

func (cs *ChargingStation) SendTransactionEventStarted(evseId int, transactionId string, remoteStartId int) {
	info := transactions.TransactionInfo{
		TransactionId: transactionId,
		ChargingState: types.ChargingStateCharging,
		RemoteStartId: &remoteStartId,
	}
	request := transactions.NewTransactionEventRequest(transactions.TransactionEventStarted,
		types.NewDateTime(cs.CurrentTime()), transactions.TriggerReasonRemoteStart, cs.nextSeqNo(), info)
	request.Evse = types.NewEVSE(evseId)
	cs.send(request)
}

func (cs *ChargingStation) SendTransactionEventEnded(evseId int, transactionId string) {
	info := transactions.TransactionInfo{
		TransactionId: transactionId,
		ChargingState: types.ChargingStateIdle,
		StoppedReason: types.ReasonRemote,
	}
	request := transactions.NewTransactionEventRequest(transactions.TransactionEventEnded,
		types.NewDateTime(cs.CurrentTime()), transactions.TriggerReasonRemoteStop, cs.nextSeqNo(), info)
	request.Evse = types.NewEVSE(evseId)
	if evse := cs.handler.EVSE(evseId); evse != nil && evse.MeterStop != nil {
		request.MeterValue = []types.MeterValue{{
			Timestamp: types.NewDateTime(cs.CurrentTime()),
			SampledValue: []types.SampledValue{{
				Value:     float64(*evse.MeterStop),
				Context:   types.ReadingContextTransactionEnd,
				Measurand: types.MeasurandEnergyActiveImportRegister,
			}},
		}}
	}
	cs.send(request)
}

func (cs *ChargingStation) SendNotifyDisplayMessages(requestId int, messages []types.MessageInfo) {
	cs.send(display.NewNotifyDisplayMessagesRequest(requestId, messages))
}

func (cs *ChargingStation) SendNotifyCustomerInformation(requestId int, data string) {
	cs.send(&diagnostics.NotifyCustomerInformationRequest{
		Data:        data,
		SeqNo:       cs.nextSeqNo(),
		GeneratedAt: types.NewDateTime(cs.CurrentTime()),
		RequestId:   requestId,
	})
}

func (cs *ChargingStation) SendSecurityEventNotification(eventType string, techInfo string) {
	request := security.NewSecurityEventNotificationRequest(eventType, types.NewDateTime(cs.CurrentTime()))
	request.TechInfo = techInfo
	cs.send(request)
}

func (cs *ChargingStation) SendAuthorize(idToken types.IdToken) (*transactions.AuthorizeResponse, error) {
	response, err := cs.SendRequest(&transactions.AuthorizeRequest{IdToken: idToken})
	if err != nil {
		return nil, err
	}
	return response.(*transactions.AuthorizeResponse), nil
}

func (cs *ChargingStation) SendMeterValues(evseId int, meterValue []types.MeterValue) {
	cs.send(transactions.NewMeterValuesRequest(evseId, meterValue))
}

func (cs *ChargingStation) SendNotifyEvent(request *diagnostics.NotifyEventRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendNotifyReport(request *provisioning.NotifyReportRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendNotifyMonitoringReport(request *diagnostics.NotifyMonitoringReportRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendLogStatusNotification(status diagnostics.UploadLogStatus, requestId *int) {
	request := diagnostics.NewLogStatusNotificationRequest(status)
	request.RequestId = requestId
	cs.send(request)
}

func (cs *ChargingStation) SendFirmwareStatusNotification(status firmware.FirmwareStatus) {
	cs.send(firmware.NewStatusNotificationRequest(status))
}

func (cs *ChargingStation) SendPublishFirmwareStatusNotification(request *firmware.PublishStatusNotificationRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendSignCertificate(request *security.SignCertificateRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendGet15118EVCertificate(request *security.Get15118EVCertificateRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendGetCertificateStatus(request *security.GetCertificateStatusRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendGetCRL(request *security.GetCRLRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendReservationStatusUpdate(reservationId int, status reservation.ReservationUpdateStatus) {
	cs.send(reservation.NewReservationStatusUpdateRequest(reservationId, status))
}

func (cs *ChargingStation) SendNotifyEVChargingNeeds(request *smartcharging.NotifyEVChargingNeedsRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendNotifyChargingLimit(request *smartcharging.NotifyChargingLimitRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendClearedChargingLimit(request *smartcharging.ClearedChargingLimitRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendReportChargingProfiles(request *smartcharging.ReportChargingProfilesRequest) {
	cs.send(request)
}

func (cs *ChargingStation) SendNotifyEVChargingSchedule(request *smartcharging.NotifyEVChargingScheduleRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendNotifyPriorityCharging(transactionId string, activated bool) {
	cs.send(&smartcharging.NotifyPriorityChargingRequest{TransactionId: transactionId, Activated: activated})
}

func (cs *ChargingStation) SendPullDynamicScheduleUpdate(chargingProfileId int) (*smartcharging.PullDynamicScheduleUpdateResponse, error) {
	response, err := cs.SendRequest(&smartcharging.PullDynamicScheduleUpdateRequest{ChargingProfileId: chargingProfileId})
	if err != nil {
		return nil, err
	}
	return response.(*smartcharging.PullDynamicScheduleUpdateResponse), nil
}

func (cs *ChargingStation) SendDataTransfer(request *datatransfer.DataTransferRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}

func (cs *ChargingStation) SendBinaryDataTransfer(request *datatransfer.BinaryDataTransferRequest) (ocpp.Response, error) {
	return cs.SendRequest(request)
}
