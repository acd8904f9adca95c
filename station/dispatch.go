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
	"evstation/ocpp/files"
	"evstation/ocpp/firmware"
	"evstation/ocpp/localauth"
	"evstation/ocpp/provisioning"
	"evstation/ocpp/reservation"
	"evstation/ocpp/security"
	"evstation/ocpp/smartcharging"
	"evstation/ocpp/tariff"
	"evstation/ocpp/transactions"
	"evstation/types"
	"evstation/utility"
)

// requestTypes maps every action the station accepts to the concrete
// request type its raw payload decodes into.
var requestTypes = make(map[string]reflect.Type)

func init() {
	register := func(request ocpp.Request) {
		requestTypes[request.GetFeatureName()] = reflect.TypeOf(request).Elem()
	}
	register(&provisioning.ResetRequest{})
	register(&provisioning.SetVariablesRequest{})
	register(&provisioning.GetVariablesRequest{})
	register(&provisioning.GetBaseReportRequest{})
	register(&provisioning.GetReportRequest{})
	register(&provisioning.SetNetworkProfileRequest{})
	register(&diagnostics.SetMonitoringBaseRequest{})
	register(&diagnostics.SetMonitoringLevelRequest{})
	register(&diagnostics.GetMonitoringReportRequest{})
	register(&diagnostics.SetVariableMonitoringRequest{})
	register(&diagnostics.ClearVariableMonitoringRequest{})
	register(&diagnostics.GetLogRequest{})
	register(&diagnostics.CustomerInformationRequest{})
	register(&availability.ChangeAvailabilityRequest{})
	register(&availability.TriggerMessageRequest{})
	register(&availability.UnlockConnectorRequest{})
	register(&transactions.RequestStartTransactionRequest{})
	register(&transactions.RequestStopTransactionRequest{})
	register(&transactions.GetTransactionStatusRequest{})
	register(&transactions.CostUpdatedRequest{})
	register(&reservation.ReserveNowRequest{})
	register(&reservation.CancelReservationRequest{})
	register(&smartcharging.SetChargingProfileRequest{})
	register(&smartcharging.GetChargingProfilesRequest{})
	register(&smartcharging.ClearChargingProfileRequest{})
	register(&smartcharging.GetCompositeScheduleRequest{})
	register(&smartcharging.UpdateDynamicScheduleRequest{})
	register(&smartcharging.NotifyAllowedEnergyTransferRequest{})
	register(&smartcharging.UsePriorityChargingRequest{})
	register(&smartcharging.AFRRSignalRequest{})
	register(&security.CertificateSignedRequest{})
	register(&security.InstallCertificateRequest{})
	register(&security.GetInstalledCertificateIdsRequest{})
	register(&security.DeleteCertificateRequest{})
	register(&security.NotifyCRLRequest{})
	register(&security.AddSignaturePolicyRequest{})
	register(&security.UpdateSignaturePolicyRequest{})
	register(&security.DeleteSignaturePolicyRequest{})
	register(&security.AddUserRoleRequest{})
	register(&security.UpdateUserRoleRequest{})
	register(&security.DeleteUserRoleRequest{})
	register(&localauth.GetLocalListVersionRequest{})
	register(&localauth.SendLocalListRequest{})
	register(&localauth.ClearCacheRequest{})
	register(&firmware.UpdateFirmwareRequest{})
	register(&firmware.PublishFirmwareRequest{})
	register(&firmware.UnpublishFirmwareRequest{})
	register(&display.SetDisplayMessageRequest{})
	register(&display.GetDisplayMessagesRequest{})
	register(&display.ClearDisplayMessageRequest{})
	register(&datatransfer.DataTransferRequest{})
	register(&datatransfer.BinaryDataTransferRequest{})
	register(&files.GetFileRequest{})
	register(&files.SendFileRequest{})
	register(&files.DeleteFileRequest{})
	register(&files.ListDirectoryRequest{})
	register(&tariff.SetDefaultChargingTariffRequest{})
	register(&tariff.GetDefaultChargingTariffRequest{})
	register(&tariff.RemoveDefaultChargingTariffRequest{})
}

// HandleIncomingMessage processes one frame received from the central
// system. It is installed as the transport message handler; CALLRESULT and
// CALLERROR frames never reach it, the transport correlates those itself.
func (cs *ChargingStation) HandleIncomingMessage(data []byte) error {
	cs.logger.RawDataEvent("in", string(data))
	fields, err := utility.ParseJson(data)
	if err != nil {
		cs.logger.Error("parsing incoming message", err)
		return err
	}
	callType, err := ocpp.MessageType(fields)
	if err != nil {
		cs.logger.Error("reading message type", err)
		return err
	}
	if callType != ocpp.CallTypeRequest {
		return utility.Err(fmt.Sprintf("unexpected message type: %v", callType))
	}
	rawCall, err := ocpp.ParseRawCall(fields)
	if err != nil {
		cs.logger.Error("parsing call", err)
		return err
	}
	requestType, supported := requestTypes[rawCall.Action]
	if !supported {
		cs.logger.Warn(fmt.Sprintf("unsupported action: %s", rawCall.Action))
		return cs.writeFrame(ocpp.CreateCallError(rawCall.UniqueId, ocpp.NotSupportedError, rawCall.Action))
	}
	request, err := ocpp.ParseRawJsonRequest(rawCall.Payload, requestType)
	if err != nil {
		cs.logger.Error(fmt.Sprintf("decoding %s payload", rawCall.Action), err)
		return cs.writeFrame(ocpp.CreateCallError(rawCall.UniqueId, ocpp.FormationViolationError, err.Error()))
	}
	response := cs.runPipeline(rawCall.Action, request)
	result, err := ocpp.CreateCallResult(response, rawCall.UniqueId)
	if err != nil {
		return err
	}
	return cs.writeFrame(result)
}

func (cs *ChargingStation) writeFrame(frame interface{}) error {
	data, err := cs.codec.Encode(frame)
	if err != nil {
		return err
	}
	channel := cs.liveChannel()
	if channel == nil {
		return utility.Err("no channel to central system")
	}
	cs.logger.RawDataEvent("out", string(data))
	return channel.Write(data)
}

// runPipeline takes a decoded request through the inbound processing
// steps: request-received event, signature verification, business logic,
// response signing, response-sent event. A failed verification skips the
// business logic; a failed response signing is logged and ignored.
func (cs *ChargingStation) runPipeline(action string, request ocpp.Request) ocpp.Response {
	started := time.Now()
	cs.events.RequestReceived(action, request)

	var response ocpp.Response
	policy := cs.policies.Active()
	verified, reason := true, ""
	if policy != nil {
		payload, err := cs.codec.Encode(request)
		if err != nil {
			verified, reason = false, err.Error()
		} else {
			verified, reason = policy.VerifyRequestMessage(request, payload)
		}
	}
	if verified {
		response = cs.callHandler(action, request)
	} else {
		message := fmt.Sprintf("Invalid signature: %s", reason)
		cs.logger.Warn(fmt.Sprintf("%s rejected; %s", action, message))
		response = signatureReject(request, message)
		counters.ObserveSignatureFailure(cs.conf.Station.Id, action)
		go cs.SendSecurityEventNotification(security.SecurityEventInvalidMessages, action)
	}

	if policy != nil && response != nil {
		payload, err := cs.codec.Encode(response)
		if err == nil {
			if ok, signReason := policy.SignResponseMessage(response, payload); !ok {
				cs.logger.Warn(fmt.Sprintf("signing %s response failed: %s", action, signReason))
			}
		}
	}
	cs.events.ResponseSent(action, response, time.Since(started))
	return response
}

func (cs *ChargingStation) callHandler(action string, request ocpp.Request) ocpp.Response {
	h := cs.handler
	switch action {
	case provisioning.ResetFeatureName:
		return h.OnReset(request.(*provisioning.ResetRequest))
	case provisioning.SetVariablesFeatureName:
		return h.OnSetVariables(request.(*provisioning.SetVariablesRequest))
	case provisioning.GetVariablesFeatureName:
		return h.OnGetVariables(request.(*provisioning.GetVariablesRequest))
	case provisioning.GetBaseReportFeatureName:
		return h.OnGetBaseReport(request.(*provisioning.GetBaseReportRequest))
	case provisioning.GetReportFeatureName:
		return h.OnGetReport(request.(*provisioning.GetReportRequest))
	case provisioning.SetNetworkProfileFeatureName:
		return h.OnSetNetworkProfile(request.(*provisioning.SetNetworkProfileRequest))
	case diagnostics.SetMonitoringBaseFeatureName:
		return h.OnSetMonitoringBase(request.(*diagnostics.SetMonitoringBaseRequest))
	case diagnostics.SetMonitoringLevelFeatureName:
		return h.OnSetMonitoringLevel(request.(*diagnostics.SetMonitoringLevelRequest))
	case diagnostics.GetMonitoringReportFeatureName:
		return h.OnGetMonitoringReport(request.(*diagnostics.GetMonitoringReportRequest))
	case diagnostics.SetVariableMonitoringFeatureName:
		return h.OnSetVariableMonitoring(request.(*diagnostics.SetVariableMonitoringRequest))
	case diagnostics.ClearVariableMonitoringFeatureName:
		return h.OnClearVariableMonitoring(request.(*diagnostics.ClearVariableMonitoringRequest))
	case diagnostics.GetLogFeatureName:
		return h.OnGetLog(request.(*diagnostics.GetLogRequest))
	case diagnostics.CustomerInformationFeatureName:
		return h.OnCustomerInformation(request.(*diagnostics.CustomerInformationRequest))
	case availability.ChangeAvailabilityFeatureName:
		return h.OnChangeAvailability(request.(*availability.ChangeAvailabilityRequest))
	case availability.TriggerMessageFeatureName:
		return h.OnTriggerMessage(request.(*availability.TriggerMessageRequest))
	case availability.UnlockConnectorFeatureName:
		return h.OnUnlockConnector(request.(*availability.UnlockConnectorRequest))
	case transactions.RequestStartTransactionFeatureName:
		return h.OnRequestStartTransaction(request.(*transactions.RequestStartTransactionRequest))
	case transactions.RequestStopTransactionFeatureName:
		return h.OnRequestStopTransaction(request.(*transactions.RequestStopTransactionRequest))
	case transactions.GetTransactionStatusFeatureName:
		return h.OnGetTransactionStatus(request.(*transactions.GetTransactionStatusRequest))
	case transactions.CostUpdatedFeatureName:
		return h.OnCostUpdated(request.(*transactions.CostUpdatedRequest))
	case reservation.ReserveNowFeatureName:
		return h.OnReserveNow(request.(*reservation.ReserveNowRequest))
	case reservation.CancelReservationFeatureName:
		return h.OnCancelReservation(request.(*reservation.CancelReservationRequest))
	case smartcharging.SetChargingProfileFeatureName:
		return h.OnSetChargingProfile(request.(*smartcharging.SetChargingProfileRequest))
	case smartcharging.GetChargingProfilesFeatureName:
		return h.OnGetChargingProfiles(request.(*smartcharging.GetChargingProfilesRequest))
	case smartcharging.ClearChargingProfileFeatureName:
		return h.OnClearChargingProfile(request.(*smartcharging.ClearChargingProfileRequest))
	case smartcharging.GetCompositeScheduleFeatureName:
		return h.OnGetCompositeSchedule(request.(*smartcharging.GetCompositeScheduleRequest))
	case smartcharging.UpdateDynamicScheduleFeatureName:
		return h.OnUpdateDynamicSchedule(request.(*smartcharging.UpdateDynamicScheduleRequest))
	case smartcharging.NotifyAllowedEnergyTransferFeatureName:
		return h.OnNotifyAllowedEnergyTransfer(request.(*smartcharging.NotifyAllowedEnergyTransferRequest))
	case smartcharging.UsePriorityChargingFeatureName:
		return h.OnUsePriorityCharging(request.(*smartcharging.UsePriorityChargingRequest))
	case smartcharging.AFRRSignalFeatureName:
		return h.OnAFRRSignal(request.(*smartcharging.AFRRSignalRequest))
	case security.CertificateSignedFeatureName:
		return h.OnCertificateSigned(request.(*security.CertificateSignedRequest))
	case security.InstallCertificateFeatureName:
		return h.OnInstallCertificate(request.(*security.InstallCertificateRequest))
	case security.GetInstalledCertificateIdsFeatureName:
		return h.OnGetInstalledCertificateIds(request.(*security.GetInstalledCertificateIdsRequest))
	case security.DeleteCertificateFeatureName:
		return h.OnDeleteCertificate(request.(*security.DeleteCertificateRequest))
	case security.NotifyCRLFeatureName:
		return h.OnNotifyCRL(request.(*security.NotifyCRLRequest))
	case security.AddSignaturePolicyFeatureName:
		return h.OnAddSignaturePolicy(request.(*security.AddSignaturePolicyRequest))
	case security.UpdateSignaturePolicyFeatureName:
		return h.OnUpdateSignaturePolicy(request.(*security.UpdateSignaturePolicyRequest))
	case security.DeleteSignaturePolicyFeatureName:
		return h.OnDeleteSignaturePolicy(request.(*security.DeleteSignaturePolicyRequest))
	case security.AddUserRoleFeatureName:
		return h.OnAddUserRole(request.(*security.AddUserRoleRequest))
	case security.UpdateUserRoleFeatureName:
		return h.OnUpdateUserRole(request.(*security.UpdateUserRoleRequest))
	case security.DeleteUserRoleFeatureName:
		return h.OnDeleteUserRole(request.(*security.DeleteUserRoleRequest))
	case localauth.GetLocalListVersionFeatureName:
		return h.OnGetLocalListVersion(request.(*localauth.GetLocalListVersionRequest))
	case localauth.SendLocalListFeatureName:
		return h.OnSendLocalList(request.(*localauth.SendLocalListRequest))
	case localauth.ClearCacheFeatureName:
		return h.OnClearCache(request.(*localauth.ClearCacheRequest))
	case firmware.UpdateFirmwareFeatureName:
		return h.OnUpdateFirmware(request.(*firmware.UpdateFirmwareRequest))
	case firmware.PublishFirmwareFeatureName:
		return h.OnPublishFirmware(request.(*firmware.PublishFirmwareRequest))
	case firmware.UnpublishFirmwareFeatureName:
		return h.OnUnpublishFirmware(request.(*firmware.UnpublishFirmwareRequest))
	case display.SetDisplayMessageFeatureName:
		return h.OnSetDisplayMessage(request.(*display.SetDisplayMessageRequest))
	case display.GetDisplayMessagesFeatureName:
		return h.OnGetDisplayMessages(request.(*display.GetDisplayMessagesRequest))
	case display.ClearDisplayMessageFeatureName:
		return h.OnClearDisplayMessage(request.(*display.ClearDisplayMessageRequest))
	case datatransfer.DataTransferFeatureName:
		return h.OnDataTransfer(request.(*datatransfer.DataTransferRequest))
	case datatransfer.BinaryDataTransferFeatureName:
		return h.OnBinaryDataTransfer(request.(*datatransfer.BinaryDataTransferRequest))
	case files.GetFileFeatureName:
		return h.OnGetFile(request.(*files.GetFileRequest))
	case files.SendFileFeatureName:
		return h.OnSendFile(request.(*files.SendFileRequest))
	case files.DeleteFileFeatureName:
		return h.OnDeleteFile(request.(*files.DeleteFileRequest))
	case files.ListDirectoryFeatureName:
		return h.OnListDirectory(request.(*files.ListDirectoryRequest))
	case tariff.SetDefaultChargingTariffFeatureName:
		return h.OnSetDefaultChargingTariff(request.(*tariff.SetDefaultChargingTariffRequest))
	case tariff.GetDefaultChargingTariffFeatureName:
		return h.OnGetDefaultChargingTariff(request.(*tariff.GetDefaultChargingTariffRequest))
	case tariff.RemoveDefaultChargingTariffFeatureName:
		return h.OnRemoveDefaultChargingTariff(request.(*tariff.RemoveDefaultChargingTariffRequest))
	}
	return nil
}

// signatureReject builds the response for a request whose signature could
// not be verified. The business logic never runs; the response carries the
// verification failure in its status info.
func signatureReject(request ocpp.Request, message string) ocpp.Response {
	info := types.NewStatusInfo(ocpp.SecurityError, message)
	switch req := request.(type) {
	case *provisioning.ResetRequest:
		return &provisioning.ResetResponse{Status: provisioning.ResetStatusRejected, StatusInfo: info}
	case *provisioning.SetVariablesRequest:
		results := make([]provisioning.SetVariableResult, 0, len(req.SetVariableData))
		for _, data := range req.SetVariableData {
			results = append(results, provisioning.SetVariableResult{
				AttributeType:   data.AttributeType,
				AttributeStatus: provisioning.SetVariableStatusRejected,
				Component:       data.Component,
				Variable:        data.Variable,
				StatusInfo:      info,
			})
		}
		return &provisioning.SetVariablesResponse{SetVariableResult: results}
	case *provisioning.GetVariablesRequest:
		results := make([]provisioning.GetVariableResult, 0, len(req.GetVariableData))
		for _, data := range req.GetVariableData {
			results = append(results, provisioning.GetVariableResult{
				AttributeStatus: provisioning.GetVariableStatusRejected,
				AttributeType:   data.AttributeType,
				Component:       data.Component,
				Variable:        data.Variable,
			})
		}
		return &provisioning.GetVariablesResponse{GetVariableResult: results}
	case *provisioning.GetBaseReportRequest:
		return &provisioning.GetBaseReportResponse{Status: types.GenericDeviceModelStatusRejected, StatusInfo: info}
	case *provisioning.GetReportRequest:
		return &provisioning.GetReportResponse{Status: types.GenericDeviceModelStatusRejected, StatusInfo: info}
	case *provisioning.SetNetworkProfileRequest:
		return &provisioning.SetNetworkProfileResponse{Status: provisioning.SetNetworkProfileStatusRejected, StatusInfo: info}
	case *diagnostics.SetMonitoringBaseRequest:
		return &diagnostics.SetMonitoringBaseResponse{Status: types.GenericDeviceModelStatusRejected, StatusInfo: info}
	case *diagnostics.SetMonitoringLevelRequest:
		return &diagnostics.SetMonitoringLevelResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *diagnostics.GetMonitoringReportRequest:
		return &diagnostics.GetMonitoringReportResponse{Status: types.GenericDeviceModelStatusRejected, StatusInfo: info}
	case *diagnostics.SetVariableMonitoringRequest:
		results := make([]diagnostics.SetMonitoringResult, 0, len(req.SetMonitoringData))
		for _, data := range req.SetMonitoringData {
			results = append(results, diagnostics.SetMonitoringResult{
				Id:         data.Id,
				Status:     diagnostics.SetMonitoringStatusRejected,
				Type:       data.Type,
				Severity:   data.Severity,
				Component:  data.Component,
				Variable:   data.Variable,
				StatusInfo: info,
			})
		}
		return &diagnostics.SetVariableMonitoringResponse{SetMonitoringResult: results}
	case *diagnostics.ClearVariableMonitoringRequest:
		results := make([]diagnostics.ClearMonitoringResult, 0, len(req.Id))
		for _, id := range req.Id {
			results = append(results, diagnostics.ClearMonitoringResult{
				Status:     diagnostics.ClearMonitoringStatusRejected,
				Id:         id,
				StatusInfo: info,
			})
		}
		return &diagnostics.ClearVariableMonitoringResponse{ClearMonitoringResult: results}
	case *diagnostics.GetLogRequest:
		return &diagnostics.GetLogResponse{Status: diagnostics.LogStatusRejected, StatusInfo: info}
	case *diagnostics.CustomerInformationRequest:
		return &diagnostics.CustomerInformationResponse{Status: diagnostics.CustomerInformationStatusRejected, StatusInfo: info}
	case *availability.ChangeAvailabilityRequest:
		return &availability.ChangeAvailabilityResponse{Status: availability.ChangeAvailabilityStatusRejected, StatusInfo: info}
	case *availability.TriggerMessageRequest:
		return &availability.TriggerMessageResponse{Status: availability.TriggerMessageStatusRejected, StatusInfo: info}
	case *availability.UnlockConnectorRequest:
		return &availability.UnlockConnectorResponse{Status: availability.UnlockStatusUnlockFailed, StatusInfo: info}
	case *transactions.RequestStartTransactionRequest:
		return &transactions.RequestStartTransactionResponse{Status: transactions.RequestStartStopStatusRejected, StatusInfo: info}
	case *transactions.RequestStopTransactionRequest:
		return &transactions.RequestStopTransactionResponse{Status: transactions.RequestStartStopStatusRejected, StatusInfo: info}
	case *transactions.GetTransactionStatusRequest:
		return &transactions.GetTransactionStatusResponse{}
	case *transactions.CostUpdatedRequest:
		return &transactions.CostUpdatedResponse{StatusInfo: info}
	case *reservation.ReserveNowRequest:
		return &reservation.ReserveNowResponse{Status: reservation.ReserveNowStatusRejected, StatusInfo: info}
	case *reservation.CancelReservationRequest:
		return &reservation.CancelReservationResponse{Status: reservation.CancelReservationStatusRejected, StatusInfo: info}
	case *smartcharging.SetChargingProfileRequest:
		return &smartcharging.SetChargingProfileResponse{Status: smartcharging.ChargingProfileStatusRejected, StatusInfo: info}
	case *smartcharging.GetChargingProfilesRequest:
		return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusNoProfiles, StatusInfo: info}
	case *smartcharging.ClearChargingProfileRequest:
		return &smartcharging.ClearChargingProfileResponse{Status: smartcharging.ClearChargingProfileStatusUnknown, StatusInfo: info}
	case *smartcharging.GetCompositeScheduleRequest:
		return &smartcharging.GetCompositeScheduleResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *smartcharging.UpdateDynamicScheduleRequest:
		return &smartcharging.UpdateDynamicScheduleResponse{Status: smartcharging.ChargingProfileStatusRejected, StatusInfo: info}
	case *smartcharging.NotifyAllowedEnergyTransferRequest:
		return &smartcharging.NotifyAllowedEnergyTransferResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *smartcharging.UsePriorityChargingRequest:
		return &smartcharging.UsePriorityChargingResponse{Status: smartcharging.PriorityChargingStatusRejected, StatusInfo: info}
	case *smartcharging.AFRRSignalRequest:
		return &smartcharging.AFRRSignalResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.CertificateSignedRequest:
		return &security.CertificateSignedResponse{Status: security.CertificateSignedStatusRejected, StatusInfo: info}
	case *security.InstallCertificateRequest:
		return &security.InstallCertificateResponse{Status: security.InstallCertificateStatusRejected, StatusInfo: info}
	case *security.GetInstalledCertificateIdsRequest:
		return &security.GetInstalledCertificateIdsResponse{Status: security.GetInstalledCertificateStatusNotFound, StatusInfo: info}
	case *security.DeleteCertificateRequest:
		return &security.DeleteCertificateResponse{Status: security.DeleteCertificateStatusFailed, StatusInfo: info}
	case *security.NotifyCRLRequest:
		return &security.NotifyCRLResponse{}
	case *security.AddSignaturePolicyRequest:
		return &security.AddSignaturePolicyResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.UpdateSignaturePolicyRequest:
		return &security.UpdateSignaturePolicyResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.DeleteSignaturePolicyRequest:
		return &security.DeleteSignaturePolicyResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.AddUserRoleRequest:
		return &security.AddUserRoleResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.UpdateUserRoleRequest:
		return &security.UpdateUserRoleResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *security.DeleteUserRoleRequest:
		return &security.DeleteUserRoleResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *localauth.GetLocalListVersionRequest:
		return &localauth.GetLocalListVersionResponse{}
	case *localauth.SendLocalListRequest:
		return &localauth.SendLocalListResponse{Status: localauth.SendLocalListStatusFailed, StatusInfo: info}
	case *localauth.ClearCacheRequest:
		return &localauth.ClearCacheResponse{Status: localauth.ClearCacheStatusRejected, StatusInfo: info}
	case *firmware.UpdateFirmwareRequest:
		return &firmware.UpdateFirmwareResponse{Status: firmware.UpdateFirmwareStatusRejected, StatusInfo: info}
	case *firmware.PublishFirmwareRequest:
		return &firmware.PublishFirmwareResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *firmware.UnpublishFirmwareRequest:
		return &firmware.UnpublishFirmwareResponse{Status: firmware.UnpublishFirmwareStatusNoFirmware}
	case *display.SetDisplayMessageRequest:
		return &display.SetDisplayMessageResponse{Status: display.DisplayMessageStatusRejected, StatusInfo: info}
	case *display.GetDisplayMessagesRequest:
		return &display.GetDisplayMessagesResponse{Status: display.MessagesStatusUnknown, StatusInfo: info}
	case *display.ClearDisplayMessageRequest:
		return &display.ClearDisplayMessageResponse{Status: display.ClearMessageStatusUnknown, StatusInfo: info}
	case *datatransfer.DataTransferRequest:
		return &datatransfer.DataTransferResponse{Status: datatransfer.DataTransferStatusRejected, StatusInfo: info}
	case *datatransfer.BinaryDataTransferRequest:
		return &datatransfer.BinaryDataTransferResponse{Status: datatransfer.DataTransferStatusRejected, StatusInfo: info}
	case *files.GetFileRequest:
		return &files.GetFileResponse{FileName: req.FileName, Status: files.FileStatusRejected, StatusInfo: info}
	case *files.SendFileRequest:
		return &files.SendFileResponse{FileName: req.FileName, Status: files.FileStatusRejected, StatusInfo: info}
	case *files.DeleteFileRequest:
		return &files.DeleteFileResponse{FileName: req.FileName, Status: files.FileStatusRejected, StatusInfo: info}
	case *files.ListDirectoryRequest:
		return &files.ListDirectoryResponse{Directory: req.Directory, Status: files.FileStatusRejected, StatusInfo: info}
	case *tariff.SetDefaultChargingTariffRequest:
		return &tariff.SetDefaultChargingTariffResponse{Status: tariff.SetDefaultTariffStatusRejected, StatusInfo: info}
	case *tariff.GetDefaultChargingTariffRequest:
		return &tariff.GetDefaultChargingTariffResponse{Status: types.GenericStatusRejected, StatusInfo: info}
	case *tariff.RemoveDefaultChargingTariffRequest:
		return &tariff.RemoveDefaultChargingTariffResponse{Status: tariff.RemoveDefaultTariffStatusRejected, StatusInfo: info}
	}
	return nil
}
