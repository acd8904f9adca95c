package provisioning

import "evstation/types"

const GetBaseReportFeatureName = "GetBaseReport"
const GetReportFeatureName = "GetReport"
const NotifyReportFeatureName = "NotifyReport"

type ReportBase string

const (
	ReportBaseConfigurationInventory ReportBase = "ConfigurationInventory"
	ReportBaseFullInventory          ReportBase = "FullInventory"
	ReportBaseSummaryInventory       ReportBase = "SummaryInventory"
)

type GetBaseReportRequest struct {
	RequestId  int        `json:"requestId" validate:"gte=0"`
	ReportBase ReportBase `json:"reportBase" validate:"required,reportBase"`
}

type GetBaseReportResponse struct {
	Status     types.GenericDeviceModelStatus `json:"status" validate:"required,genericDeviceModelStatus"`
	StatusInfo *types.StatusInfo              `json:"statusInfo,omitempty"`
}

type ComponentVariable struct {
	Component types.Component `json:"component" validate:"required"`
	Variable  *types.Variable `json:"variable,omitempty"`
}

type GetReportRequest struct {
	RequestId         int                 `json:"requestId" validate:"gte=0"`
	ComponentCriteria []string            `json:"componentCriteria,omitempty" validate:"omitempty,max=4"`
	ComponentVariable []ComponentVariable `json:"componentVariable,omitempty" validate:"omitempty,dive"`
}

type GetReportResponse struct {
	Status     types.GenericDeviceModelStatus `json:"status" validate:"required,genericDeviceModelStatus"`
	StatusInfo *types.StatusInfo              `json:"statusInfo,omitempty"`
}

type VariableAttribute struct {
	Type       string `json:"type,omitempty"`
	Value      string `json:"value,omitempty" validate:"omitempty,max=2500"`
	Mutability string `json:"mutability,omitempty"`
	Persistent bool   `json:"persistent,omitempty"`
	Constant   bool   `json:"constant,omitempty"`
}

type ReportData struct {
	Component         types.Component     `json:"component" validate:"required"`
	Variable          types.Variable      `json:"variable" validate:"required"`
	VariableAttribute []VariableAttribute `json:"variableAttribute" validate:"required,min=1,max=4,dive"`
}

type NotifyReportRequest struct {
	RequestId   int             `json:"requestId" validate:"gte=0"`
	GeneratedAt *types.DateTime `json:"generatedAt" validate:"required"`
	Tbc         bool            `json:"tbc,omitempty"`
	SeqNo       int             `json:"seqNo" validate:"gte=0"`
	ReportData  []ReportData    `json:"reportData,omitempty" validate:"omitempty,dive"`
}

type NotifyReportResponse struct {
}

func (r *GetBaseReportRequest) GetFeatureName() string {
	return GetBaseReportFeatureName
}

func (r *GetBaseReportResponse) GetFeatureName() string {
	return GetBaseReportFeatureName
}

func (r *GetReportRequest) GetFeatureName() string {
	return GetReportFeatureName
}

func (r *GetReportResponse) GetFeatureName() string {
	return GetReportFeatureName
}

func (r *NotifyReportRequest) GetFeatureName() string {
	return NotifyReportFeatureName
}

func (r *NotifyReportResponse) GetFeatureName() string {
	return NotifyReportFeatureName
}
