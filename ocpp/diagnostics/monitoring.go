package diagnostics

import "evstation/types"

const SetMonitoringBaseFeatureName = "SetMonitoringBase"
const SetMonitoringLevelFeatureName = "SetMonitoringLevel"
const GetMonitoringReportFeatureName = "GetMonitoringReport"
const SetVariableMonitoringFeatureName = "SetVariableMonitoring"
const ClearVariableMonitoringFeatureName = "ClearVariableMonitoring"
const NotifyMonitoringReportFeatureName = "NotifyMonitoringReport"

type MonitoringBase string

const (
	MonitoringBaseAll            MonitoringBase = "All"
	MonitoringBaseFactoryDefault MonitoringBase = "FactoryDefault"
	MonitoringBaseHardWiredOnly  MonitoringBase = "HardWiredOnly"
)

type MonitorType string

const (
	MonitorTypeUpperThreshold       MonitorType = "UpperThreshold"
	MonitorTypeLowerThreshold       MonitorType = "LowerThreshold"
	MonitorTypeDelta                MonitorType = "Delta"
	MonitorTypePeriodic             MonitorType = "Periodic"
	MonitorTypePeriodicClockAligned MonitorType = "PeriodicClockAligned"
)

type SetMonitoringStatus string

const (
	SetMonitoringStatusAccepted         SetMonitoringStatus = "Accepted"
	SetMonitoringStatusRejected         SetMonitoringStatus = "Rejected"
	SetMonitoringStatusUnknownComponent SetMonitoringStatus = "UnknownComponent"
	SetMonitoringStatusUnknownVariable  SetMonitoringStatus = "UnknownVariable"
	SetMonitoringStatusDuplicate        SetMonitoringStatus = "Duplicate"
)

type ClearMonitoringStatus string

const (
	ClearMonitoringStatusAccepted ClearMonitoringStatus = "Accepted"
	ClearMonitoringStatusRejected ClearMonitoringStatus = "Rejected"
	ClearMonitoringStatusNotFound ClearMonitoringStatus = "NotFound"
)

type SetMonitoringBaseRequest struct {
	MonitoringBase MonitoringBase `json:"monitoringBase" validate:"required,monitoringBase"`
}

type SetMonitoringBaseResponse struct {
	Status     types.GenericDeviceModelStatus `json:"status" validate:"required,genericDeviceModelStatus"`
	StatusInfo *types.StatusInfo              `json:"statusInfo,omitempty"`
}

type SetMonitoringLevelRequest struct {
	Severity int `json:"severity" validate:"gte=0,lte=9"`
}

type SetMonitoringLevelResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type GetMonitoringReportRequest struct {
	RequestId          int      `json:"requestId" validate:"gte=0"`
	MonitoringCriteria []string `json:"monitoringCriteria,omitempty" validate:"omitempty,max=3"`
}

type GetMonitoringReportResponse struct {
	Status     types.GenericDeviceModelStatus `json:"status" validate:"required,genericDeviceModelStatus"`
	StatusInfo *types.StatusInfo              `json:"statusInfo,omitempty"`
}

type SetMonitoringData struct {
	Id          *int            `json:"id,omitempty" validate:"omitempty,gte=0"`
	Transaction bool            `json:"transaction,omitempty"`
	Value       float64         `json:"value"`
	Type        MonitorType     `json:"type" validate:"required,monitorType"`
	Severity    int             `json:"severity" validate:"gte=0,lte=9"`
	Component   types.Component `json:"component" validate:"required"`
	Variable    types.Variable  `json:"variable" validate:"required"`
}

type SetMonitoringResult struct {
	Id         *int                `json:"id,omitempty"`
	Status     SetMonitoringStatus `json:"status" validate:"required,setMonitoringStatus"`
	Type       MonitorType         `json:"type" validate:"required,monitorType"`
	Severity   int                 `json:"severity" validate:"gte=0,lte=9"`
	Component  types.Component     `json:"component" validate:"required"`
	Variable   types.Variable      `json:"variable" validate:"required"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type SetVariableMonitoringRequest struct {
	SetMonitoringData []SetMonitoringData `json:"setMonitoringData" validate:"required,min=1,dive"`
}

type SetVariableMonitoringResponse struct {
	SetMonitoringResult []SetMonitoringResult `json:"setMonitoringResult" validate:"required,min=1,dive"`
}

type ClearMonitoringResult struct {
	Status     ClearMonitoringStatus `json:"status" validate:"required,clearMonitoringStatus"`
	Id         int                   `json:"id" validate:"gte=0"`
	StatusInfo *types.StatusInfo     `json:"statusInfo,omitempty"`
}

type ClearVariableMonitoringRequest struct {
	Id []int `json:"id" validate:"required,min=1"`
}

type ClearVariableMonitoringResponse struct {
	ClearMonitoringResult []ClearMonitoringResult `json:"clearMonitoringResult" validate:"required,min=1,dive"`
}

type MonitoringData struct {
	Component          types.Component     `json:"component" validate:"required"`
	Variable           types.Variable      `json:"variable" validate:"required"`
	VariableMonitoring []SetMonitoringData `json:"variableMonitoring" validate:"required,min=1,dive"`
}

type NotifyMonitoringReportRequest struct {
	RequestId   int              `json:"requestId" validate:"gte=0"`
	Tbc         bool             `json:"tbc,omitempty"`
	SeqNo       int              `json:"seqNo" validate:"gte=0"`
	GeneratedAt *types.DateTime  `json:"generatedAt" validate:"required"`
	Monitor     []MonitoringData `json:"monitor,omitempty" validate:"omitempty,dive"`
}

type NotifyMonitoringReportResponse struct {
}

func (r *SetMonitoringBaseRequest) GetFeatureName() string {
	return SetMonitoringBaseFeatureName
}

func (r *SetMonitoringBaseResponse) GetFeatureName() string {
	return SetMonitoringBaseFeatureName
}

func (r *SetMonitoringLevelRequest) GetFeatureName() string {
	return SetMonitoringLevelFeatureName
}

func (r *SetMonitoringLevelResponse) GetFeatureName() string {
	return SetMonitoringLevelFeatureName
}

func (r *GetMonitoringReportRequest) GetFeatureName() string {
	return GetMonitoringReportFeatureName
}

func (r *GetMonitoringReportResponse) GetFeatureName() string {
	return GetMonitoringReportFeatureName
}

func (r *SetVariableMonitoringRequest) GetFeatureName() string {
	return SetVariableMonitoringFeatureName
}

func (r *SetVariableMonitoringResponse) GetFeatureName() string {
	return SetVariableMonitoringFeatureName
}

func (r *ClearVariableMonitoringRequest) GetFeatureName() string {
	return ClearVariableMonitoringFeatureName
}

func (r *ClearVariableMonitoringResponse) GetFeatureName() string {
	return ClearVariableMonitoringFeatureName
}

func (r *NotifyMonitoringReportRequest) GetFeatureName() string {
	return NotifyMonitoringReportFeatureName
}

func (r *NotifyMonitoringReportResponse) GetFeatureName() string {
	return NotifyMonitoringReportFeatureName
}
