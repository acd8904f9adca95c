package station

import (
	"evstation/ocpp/firmware"
	"evstation/ocpp/localauth"
	"evstation/types"
)

func (h *SystemHandler) OnGetLocalListVersion(request *localauth.GetLocalListVersionRequest) *localauth.GetLocalListVersionResponse {
	h.mux.Lock()
	defer h.mux.Unlock()
	return &localauth.GetLocalListVersionResponse{VersionNumber: h.localListVersion}
}

func (h *SystemHandler) OnSendLocalList(request *localauth.SendLocalListRequest) *localauth.SendLocalListResponse {
	h.mux.Lock()
	defer h.mux.Unlock()
	if request.UpdateType == localauth.UpdateTypeDifferential && request.VersionNumber <= h.localListVersion {
		return &localauth.SendLocalListResponse{Status: localauth.SendLocalListStatusVersionMismatch}
	}
	h.localListVersion = request.VersionNumber
	return &localauth.SendLocalListResponse{Status: localauth.SendLocalListStatusAccepted}
}

func (h *SystemHandler) OnClearCache(request *localauth.ClearCacheRequest) *localauth.ClearCacheResponse {
	return &localauth.ClearCacheResponse{Status: localauth.ClearCacheStatusAccepted}
}

func (h *SystemHandler) OnUpdateFirmware(request *firmware.UpdateFirmwareRequest) *firmware.UpdateFirmwareResponse {
	return &firmware.UpdateFirmwareResponse{Status: firmware.UpdateFirmwareStatusAccepted}
}

func (h *SystemHandler) OnPublishFirmware(request *firmware.PublishFirmwareRequest) *firmware.PublishFirmwareResponse {
	return &firmware.PublishFirmwareResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnUnpublishFirmware(request *firmware.UnpublishFirmwareRequest) *firmware.UnpublishFirmwareResponse {
	return &firmware.UnpublishFirmwareResponse{Status: firmware.UnpublishFirmwareStatusUnpublished}
}
