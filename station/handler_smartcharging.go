package station

import (
	"time"

	"evstation/ocpp/smartcharging"
	"evstation/types"
)

func (h *SystemHandler) OnSetChargingProfile(request *smartcharging.SetChargingProfileRequest) *smartcharging.SetChargingProfileResponse {
	profile := request.ChargingProfile
	if request.EvseId == 0 {
		// broadcast: every EVSE, or only the one running the profile's
		// transaction when one is set
		for _, evse := range h.allEVSEs() {
			if profile.TransactionId == "" || evse.OwnsTransaction(profile.TransactionId) {
				evse.SetChargingProfile(&profile)
			}
		}
		return smartcharging.NewSetChargingProfileResponse(smartcharging.ChargingProfileStatusAccepted)
	}
	evse := h.EVSE(request.EvseId)
	if evse == nil {
		return smartcharging.NewSetChargingProfileResponse(smartcharging.ChargingProfileStatusRejected)
	}
	evse.SetChargingProfile(&profile)
	return smartcharging.NewSetChargingProfileResponse(smartcharging.ChargingProfileStatusAccepted)
}

func (h *SystemHandler) OnGetChargingProfiles(request *smartcharging.GetChargingProfilesRequest) *smartcharging.GetChargingProfilesResponse {
	if request.EvseId != nil {
		evse := h.EVSE(*request.EvseId)
		if evse == nil {
			return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusNoProfiles}
		}
		if evse.GetChargingProfile() == nil {
			return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusNoProfiles}
		}
		return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusAccepted}
	}
	for _, evse := range h.allEVSEs() {
		if evse.GetChargingProfile() != nil {
			return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusAccepted}
		}
	}
	return &smartcharging.GetChargingProfilesResponse{Status: smartcharging.GetChargingProfileStatusNoProfiles}
}

func (h *SystemHandler) OnClearChargingProfile(request *smartcharging.ClearChargingProfileRequest) *smartcharging.ClearChargingProfileResponse {
	cleared := false
	for _, evse := range h.allEVSEs() {
		profile := evse.GetChargingProfile()
		if profile == nil {
			continue
		}
		if request.ChargingProfileId != nil && profile.Id != *request.ChargingProfileId {
			continue
		}
		if criteria := request.ChargingProfileCriteria; criteria != nil {
			if criteria.EvseId != nil && evse.Id != *criteria.EvseId {
				continue
			}
			if criteria.ChargingProfilePurpose != "" && profile.ChargingProfilePurpose != criteria.ChargingProfilePurpose {
				continue
			}
			if criteria.StackLevel != nil && profile.StackLevel != *criteria.StackLevel {
				continue
			}
		}
		evse.SetChargingProfile(nil)
		cleared = true
	}
	if cleared {
		return &smartcharging.ClearChargingProfileResponse{Status: smartcharging.ClearChargingProfileStatusAccepted}
	}
	return &smartcharging.ClearChargingProfileResponse{Status: smartcharging.ClearChargingProfileStatusUnknown}
}

func (h *SystemHandler) OnGetCompositeSchedule(request *smartcharging.GetCompositeScheduleRequest) *smartcharging.GetCompositeScheduleResponse {
	evse := h.EVSE(request.EvseId)
	if evse == nil {
		return &smartcharging.GetCompositeScheduleResponse{Status: types.GenericStatusRejected}
	}
	unit := request.ChargingRateUnit
	if unit == "" {
		unit = types.ChargingRateUnitWatts
	}
	schedule := &smartcharging.CompositeSchedule{
		EvseId:           evse.Id,
		Duration:         request.Duration,
		ScheduleStart:    types.NewDateTime(time.Now()),
		ChargingRateUnit: unit,
		ChargingSchedulePeriod: []types.ChargingSchedulePeriod{
			{StartPeriod: 0, Limit: 0},
		},
	}
	if profile := evse.GetChargingProfile(); profile != nil && len(profile.ChargingSchedule) > 0 {
		schedule.ChargingSchedulePeriod = profile.ChargingSchedule[0].ChargingSchedulePeriod
	}
	return &smartcharging.GetCompositeScheduleResponse{Status: types.GenericStatusAccepted, Schedule: schedule}
}

func (h *SystemHandler) OnUpdateDynamicSchedule(request *smartcharging.UpdateDynamicScheduleRequest) *smartcharging.UpdateDynamicScheduleResponse {
	for _, evse := range h.allEVSEs() {
		if profile := evse.GetChargingProfile(); profile != nil && profile.Id == request.ChargingProfileId {
			return &smartcharging.UpdateDynamicScheduleResponse{Status: smartcharging.ChargingProfileStatusAccepted}
		}
	}
	return &smartcharging.UpdateDynamicScheduleResponse{Status: smartcharging.ChargingProfileStatusRejected}
}

func (h *SystemHandler) OnNotifyAllowedEnergyTransfer(request *smartcharging.NotifyAllowedEnergyTransferRequest) *smartcharging.NotifyAllowedEnergyTransferResponse {
	if h.evseByTransaction(request.TransactionId) == nil {
		return &smartcharging.NotifyAllowedEnergyTransferResponse{Status: types.GenericStatusRejected}
	}
	return &smartcharging.NotifyAllowedEnergyTransferResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnUsePriorityCharging(request *smartcharging.UsePriorityChargingRequest) *smartcharging.UsePriorityChargingResponse {
	evse := h.evseByTransaction(request.TransactionId)
	if evse == nil {
		return &smartcharging.UsePriorityChargingResponse{Status: smartcharging.PriorityChargingStatusRejected}
	}
	if evse.GetChargingProfile() == nil {
		return &smartcharging.UsePriorityChargingResponse{Status: smartcharging.PriorityChargingStatusNoProfile}
	}
	return &smartcharging.UsePriorityChargingResponse{Status: smartcharging.PriorityChargingStatusAccepted}
}

func (h *SystemHandler) OnAFRRSignal(request *smartcharging.AFRRSignalRequest) *smartcharging.AFRRSignalResponse {
	return &smartcharging.AFRRSignalResponse{Status: types.GenericStatusAccepted}
}
