package smartcharging

import "evstation/types"

const GetChargingProfilesFeatureName = "GetChargingProfiles"
const ClearChargingProfileFeatureName = "ClearChargingProfile"
const GetCompositeScheduleFeatureName = "GetCompositeSchedule"
const ReportChargingProfilesFeatureName = "ReportChargingProfiles"

type GetChargingProfileStatus string

const (
	GetChargingProfileStatusAccepted   GetChargingProfileStatus = "Accepted"
	GetChargingProfileStatusNoProfiles GetChargingProfileStatus = "NoProfiles"
)

type ClearChargingProfileStatus string

const (
	ClearChargingProfileStatusAccepted ClearChargingProfileStatus = "Accepted"
	ClearChargingProfileStatusUnknown  ClearChargingProfileStatus = "Unknown"
)

type ChargingProfileCriterion struct {
	ChargingProfilePurpose types.ChargingProfilePurposeType `json:"chargingProfilePurpose,omitempty" validate:"omitempty,chargingProfilePurpose"`
	StackLevel             *int                             `json:"stackLevel,omitempty" validate:"omitempty,gte=0"`
	ChargingProfileId      []int                            `json:"chargingProfileId,omitempty"`
	ChargingLimitSource    []string                         `json:"chargingLimitSource,omitempty" validate:"omitempty,max=4"`
}

type GetChargingProfilesRequest struct {
	RequestId       int                      `json:"requestId" validate:"gte=0"`
	EvseId          *int                     `json:"evseId,omitempty" validate:"omitempty,gte=0"`
	ChargingProfile ChargingProfileCriterion `json:"chargingProfile" validate:"required"`
}

type GetChargingProfilesResponse struct {
	Status     GetChargingProfileStatus `json:"status" validate:"required,getChargingProfileStatus"`
	StatusInfo *types.StatusInfo        `json:"statusInfo,omitempty"`
}

type ClearChargingProfileCriterion struct {
	EvseId                 *int                             `json:"evseId,omitempty" validate:"omitempty,gte=0"`
	ChargingProfilePurpose types.ChargingProfilePurposeType `json:"chargingProfilePurpose,omitempty" validate:"omitempty,chargingProfilePurpose"`
	StackLevel             *int                             `json:"stackLevel,omitempty" validate:"omitempty,gte=0"`
}

type ClearChargingProfileRequest struct {
	ChargingProfileId       *int                           `json:"chargingProfileId,omitempty" validate:"omitempty,gte=0"`
	ChargingProfileCriteria *ClearChargingProfileCriterion `json:"chargingProfileCriteria,omitempty"`
}

type ClearChargingProfileResponse struct {
	Status     ClearChargingProfileStatus `json:"status" validate:"required,clearChargingProfileStatus"`
	StatusInfo *types.StatusInfo          `json:"statusInfo,omitempty"`
}

type CompositeSchedule struct {
	EvseId                 int                            `json:"evseId" validate:"gte=0"`
	Duration               int                            `json:"duration"`
	ScheduleStart          *types.DateTime                `json:"scheduleStart" validate:"required"`
	ChargingRateUnit       types.ChargingRateUnitType     `json:"chargingRateUnit" validate:"required,chargingRateUnit"`
	ChargingSchedulePeriod []types.ChargingSchedulePeriod `json:"chargingSchedulePeriod" validate:"required,min=1"`
}

type GetCompositeScheduleRequest struct {
	Duration         int                        `json:"duration"`
	ChargingRateUnit types.ChargingRateUnitType `json:"chargingRateUnit,omitempty" validate:"omitempty,chargingRateUnit"`
	EvseId           int                        `json:"evseId" validate:"gte=0"`
}

type GetCompositeScheduleResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	Schedule   *CompositeSchedule  `json:"schedule,omitempty"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type ReportChargingProfilesRequest struct {
	RequestId           int                     `json:"requestId" validate:"gte=0"`
	ChargingLimitSource string                  `json:"chargingLimitSource" validate:"required"`
	Tbc                 bool                    `json:"tbc,omitempty"`
	EvseId              int                     `json:"evseId" validate:"gte=0"`
	ChargingProfile     []types.ChargingProfile `json:"chargingProfile" validate:"required,min=1,dive"`
}

type ReportChargingProfilesResponse struct {
}

func (r *GetChargingProfilesRequest) GetFeatureName() string {
	return GetChargingProfilesFeatureName
}

func (r *GetChargingProfilesResponse) GetFeatureName() string {
	return GetChargingProfilesFeatureName
}

func (r *ClearChargingProfileRequest) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (r *ClearChargingProfileResponse) GetFeatureName() string {
	return ClearChargingProfileFeatureName
}

func (r *GetCompositeScheduleRequest) GetFeatureName() string {
	return GetCompositeScheduleFeatureName
}

func (r *GetCompositeScheduleResponse) GetFeatureName() string {
	return GetCompositeScheduleFeatureName
}

func (r *ReportChargingProfilesRequest) GetFeatureName() string {
	return ReportChargingProfilesFeatureName
}

func (r *ReportChargingProfilesResponse) GetFeatureName() string {
	return ReportChargingProfilesFeatureName
}
