package station

import (
	"fmt"

	"evstation/ocpp/diagnostics"
	"evstation/ocpp/provisioning"
	"evstation/types"
)

func (h *SystemHandler) OnReset(request *provisioning.ResetRequest) *provisioning.ResetResponse {
	if request.EvseId == nil {
		h.logger.FeatureEvent(provisioning.ResetFeatureName, h.conf.Station.Id, fmt.Sprintf("station reset requested: %s", request.Type))
		return provisioning.NewResetResponse(provisioning.ResetStatusAccepted)
	}
	evse := h.EVSE(*request.EvseId)
	if evse == nil {
		return provisioning.NewResetResponse(provisioning.ResetStatusRejected)
	}
	h.logger.FeatureEvent(provisioning.ResetFeatureName, h.conf.Station.Id, fmt.Sprintf("evse %d reset requested: %s", evse.Id, request.Type))
	return provisioning.NewResetResponse(provisioning.ResetStatusAccepted)
}

func (h *SystemHandler) OnSetVariables(request *provisioning.SetVariablesRequest) *provisioning.SetVariablesResponse {
	results := make([]provisioning.SetVariableResult, 0, len(request.SetVariableData))
	for _, data := range request.SetVariableData {
		results = append(results, provisioning.SetVariableResult{
			AttributeType:   data.AttributeType,
			AttributeStatus: provisioning.SetVariableStatusAccepted,
			Component:       data.Component,
			Variable:        data.Variable,
		})
	}
	return &provisioning.SetVariablesResponse{SetVariableResult: results}
}

func (h *SystemHandler) OnGetVariables(request *provisioning.GetVariablesRequest) *provisioning.GetVariablesResponse {
	results := make([]provisioning.GetVariableResult, 0, len(request.GetVariableData))
	for _, data := range request.GetVariableData {
		results = append(results, provisioning.GetVariableResult{
			AttributeStatus: provisioning.GetVariableStatusAccepted,
			AttributeType:   data.AttributeType,
			AttributeValue:  "",
			Component:       data.Component,
			Variable:        data.Variable,
		})
	}
	return &provisioning.GetVariablesResponse{GetVariableResult: results}
}

func (h *SystemHandler) OnGetBaseReport(request *provisioning.GetBaseReportRequest) *provisioning.GetBaseReportResponse {
	return &provisioning.GetBaseReportResponse{Status: types.GenericDeviceModelStatusAccepted}
}

func (h *SystemHandler) OnGetReport(request *provisioning.GetReportRequest) *provisioning.GetReportResponse {
	return &provisioning.GetReportResponse{Status: types.GenericDeviceModelStatusAccepted}
}

func (h *SystemHandler) OnSetNetworkProfile(request *provisioning.SetNetworkProfileRequest) *provisioning.SetNetworkProfileResponse {
	if request.ConnectionData.OcppCsmsUrl == "" {
		return &provisioning.SetNetworkProfileResponse{Status: provisioning.SetNetworkProfileStatusRejected}
	}
	h.logger.FeatureEvent(provisioning.SetNetworkProfileFeatureName, h.conf.Station.Id,
		fmt.Sprintf("network profile slot %d: %s", request.ConfigurationSlot, request.ConnectionData.OcppCsmsUrl))
	return &provisioning.SetNetworkProfileResponse{Status: provisioning.SetNetworkProfileStatusAccepted}
}

func (h *SystemHandler) OnSetMonitoringBase(request *diagnostics.SetMonitoringBaseRequest) *diagnostics.SetMonitoringBaseResponse {
	h.mux.Lock()
	h.monitoringBase = string(request.MonitoringBase)
	h.mux.Unlock()
	return &diagnostics.SetMonitoringBaseResponse{Status: types.GenericDeviceModelStatusAccepted}
}

func (h *SystemHandler) OnSetMonitoringLevel(request *diagnostics.SetMonitoringLevelRequest) *diagnostics.SetMonitoringLevelResponse {
	h.mux.Lock()
	h.monitoringLevel = request.Severity
	h.mux.Unlock()
	return &diagnostics.SetMonitoringLevelResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnGetMonitoringReport(request *diagnostics.GetMonitoringReportRequest) *diagnostics.GetMonitoringReportResponse {
	return &diagnostics.GetMonitoringReportResponse{Status: types.GenericDeviceModelStatusAccepted}
}

func (h *SystemHandler) OnSetVariableMonitoring(request *diagnostics.SetVariableMonitoringRequest) *diagnostics.SetVariableMonitoringResponse {
	results := make([]diagnostics.SetMonitoringResult, 0, len(request.SetMonitoringData))
	for _, data := range request.SetMonitoringData {
		results = append(results, diagnostics.SetMonitoringResult{
			Id:        data.Id,
			Status:    diagnostics.SetMonitoringStatusAccepted,
			Type:      data.Type,
			Severity:  data.Severity,
			Component: data.Component,
			Variable:  data.Variable,
		})
	}
	return &diagnostics.SetVariableMonitoringResponse{SetMonitoringResult: results}
}

func (h *SystemHandler) OnClearVariableMonitoring(request *diagnostics.ClearVariableMonitoringRequest) *diagnostics.ClearVariableMonitoringResponse {
	results := make([]diagnostics.ClearMonitoringResult, 0, len(request.Id))
	for _, id := range request.Id {
		results = append(results, diagnostics.ClearMonitoringResult{
			Status: diagnostics.ClearMonitoringStatusAccepted,
			Id:     id,
		})
	}
	return &diagnostics.ClearVariableMonitoringResponse{ClearMonitoringResult: results}
}

func (h *SystemHandler) OnGetLog(request *diagnostics.GetLogRequest) *diagnostics.GetLogResponse {
	return &diagnostics.GetLogResponse{
		Status:   diagnostics.LogStatusAccepted,
		Filename: fmt.Sprintf("%s-%d.log", request.LogType, request.RequestId),
	}
}

// OnCustomerInformation accepts synchronously; the resolved customer data is
// pushed through NotifyCustomerInformation from a detached goroutine.
func (h *SystemHandler) OnCustomerInformation(request *diagnostics.CustomerInformationRequest) *diagnostics.CustomerInformationResponse {
	requestId := request.RequestId
	identifier := request.CustomerIdentifier
	go h.sender.SendNotifyCustomerInformation(requestId, fmt.Sprintf("customer: %s", identifier))
	return &diagnostics.CustomerInformationResponse{Status: diagnostics.CustomerInformationStatusAccepted}
}
