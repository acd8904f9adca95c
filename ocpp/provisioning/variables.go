package provisioning

import "evstation/types"

const SetVariablesFeatureName = "SetVariables"
const GetVariablesFeatureName = "GetVariables"

type SetVariableStatus string

const (
	SetVariableStatusAccepted         SetVariableStatus = "Accepted"
	SetVariableStatusRejected         SetVariableStatus = "Rejected"
	SetVariableStatusUnknownComponent SetVariableStatus = "UnknownComponent"
	SetVariableStatusUnknownVariable  SetVariableStatus = "UnknownVariable"
	SetVariableStatusRebootRequired   SetVariableStatus = "RebootRequired"
)

type GetVariableStatus string

const (
	GetVariableStatusAccepted         GetVariableStatus = "Accepted"
	GetVariableStatusRejected         GetVariableStatus = "Rejected"
	GetVariableStatusUnknownComponent GetVariableStatus = "UnknownComponent"
	GetVariableStatusUnknownVariable  GetVariableStatus = "UnknownVariable"
)

type SetVariableData struct {
	AttributeType  string          `json:"attributeType,omitempty" validate:"omitempty,max=20"`
	AttributeValue string          `json:"attributeValue" validate:"required,max=1000"`
	Component      types.Component `json:"component" validate:"required"`
	Variable       types.Variable  `json:"variable" validate:"required"`
}

type SetVariableResult struct {
	AttributeType   string            `json:"attributeType,omitempty"`
	AttributeStatus SetVariableStatus `json:"attributeStatus" validate:"required,setVariableStatus"`
	Component       types.Component   `json:"component" validate:"required"`
	Variable        types.Variable    `json:"variable" validate:"required"`
	StatusInfo      *types.StatusInfo `json:"attributeStatusInfo,omitempty"`
}

type SetVariablesRequest struct {
	SetVariableData []SetVariableData `json:"setVariableData" validate:"required,min=1,dive"`
}

type SetVariablesResponse struct {
	SetVariableResult []SetVariableResult `json:"setVariableResult" validate:"required,min=1,dive"`
}

type GetVariableData struct {
	AttributeType string          `json:"attributeType,omitempty" validate:"omitempty,max=20"`
	Component     types.Component `json:"component" validate:"required"`
	Variable      types.Variable  `json:"variable" validate:"required"`
}

type GetVariableResult struct {
	AttributeStatus GetVariableStatus `json:"attributeStatus" validate:"required,getVariableStatus"`
	AttributeType   string            `json:"attributeType,omitempty"`
	AttributeValue  string            `json:"attributeValue,omitempty" validate:"omitempty,max=2500"`
	Component       types.Component   `json:"component" validate:"required"`
	Variable        types.Variable    `json:"variable" validate:"required"`
}

type GetVariablesRequest struct {
	GetVariableData []GetVariableData `json:"getVariableData" validate:"required,min=1,dive"`
}

type GetVariablesResponse struct {
	GetVariableResult []GetVariableResult `json:"getVariableResult" validate:"required,min=1,dive"`
}

func (r *SetVariablesRequest) GetFeatureName() string {
	return SetVariablesFeatureName
}

func (r *SetVariablesResponse) GetFeatureName() string {
	return SetVariablesFeatureName
}

func (r *GetVariablesRequest) GetFeatureName() string {
	return GetVariablesFeatureName
}

func (r *GetVariablesResponse) GetFeatureName() string {
	return GetVariablesFeatureName
}
