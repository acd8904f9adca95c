package display

import "evstation/types"

const SetDisplayMessageFeatureName = "SetDisplayMessage"
const GetDisplayMessagesFeatureName = "GetDisplayMessages"
const ClearDisplayMessageFeatureName = "ClearDisplayMessage"
const NotifyDisplayMessagesFeatureName = "NotifyDisplayMessages"

type DisplayMessageStatus string

const (
	DisplayMessageStatusAccepted                  DisplayMessageStatus = "Accepted"
	DisplayMessageStatusNotSupportedMessageFormat DisplayMessageStatus = "NotSupportedMessageFormat"
	DisplayMessageStatusRejected                  DisplayMessageStatus = "Rejected"
	DisplayMessageStatusNotSupportedPriority      DisplayMessageStatus = "NotSupportedPriority"
	DisplayMessageStatusNotSupportedState         DisplayMessageStatus = "NotSupportedState"
	DisplayMessageStatusUnknownTransaction        DisplayMessageStatus = "UnknownTransaction"
)

type ClearMessageStatus string

const (
	ClearMessageStatusAccepted ClearMessageStatus = "Accepted"
	ClearMessageStatusUnknown  ClearMessageStatus = "Unknown"
)

type MessagesStatus string

const (
	MessagesStatusAccepted MessagesStatus = "Accepted"
	MessagesStatusUnknown  MessagesStatus = "Unknown"
)

type SetDisplayMessageRequest struct {
	Message types.MessageInfo `json:"message" validate:"required"`
}

type SetDisplayMessageResponse struct {
	Status     DisplayMessageStatus `json:"status" validate:"required,displayMessageStatus"`
	StatusInfo *types.StatusInfo    `json:"statusInfo,omitempty"`
}

type GetDisplayMessagesRequest struct {
	RequestId int                   `json:"requestId" validate:"gte=0"`
	Priority  types.MessagePriority `json:"priority,omitempty" validate:"omitempty,messagePriority"`
	State     types.MessageState    `json:"state,omitempty" validate:"omitempty,messageState"`
	Id        []int                 `json:"id,omitempty" validate:"omitempty,dive,gte=0"`
}

type GetDisplayMessagesResponse struct {
	Status     MessagesStatus    `json:"status" validate:"required,messagesStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

type ClearDisplayMessageRequest struct {
	Id int `json:"id" validate:"gte=0"`
}

type ClearDisplayMessageResponse struct {
	Status     ClearMessageStatus `json:"status" validate:"required,clearMessageStatus"`
	StatusInfo *types.StatusInfo  `json:"statusInfo,omitempty"`
}

type NotifyDisplayMessagesRequest struct {
	RequestId   int                 `json:"requestId" validate:"gte=0"`
	Tbc         bool                `json:"tbc,omitempty"`
	MessageInfo []types.MessageInfo `json:"messageInfo,omitempty" validate:"omitempty,dive"`
}

type NotifyDisplayMessagesResponse struct {
}

func NewNotifyDisplayMessagesRequest(requestId int, messages []types.MessageInfo) *NotifyDisplayMessagesRequest {
	return &NotifyDisplayMessagesRequest{RequestId: requestId, MessageInfo: messages}
}

func (r *SetDisplayMessageRequest) GetFeatureName() string {
	return SetDisplayMessageFeatureName
}

func (r *SetDisplayMessageResponse) GetFeatureName() string {
	return SetDisplayMessageFeatureName
}

func (r *GetDisplayMessagesRequest) GetFeatureName() string {
	return GetDisplayMessagesFeatureName
}

func (r *GetDisplayMessagesResponse) GetFeatureName() string {
	return GetDisplayMessagesFeatureName
}

func (r *ClearDisplayMessageRequest) GetFeatureName() string {
	return ClearDisplayMessageFeatureName
}

func (r *ClearDisplayMessageResponse) GetFeatureName() string {
	return ClearDisplayMessageFeatureName
}

func (r *NotifyDisplayMessagesRequest) GetFeatureName() string {
	return NotifyDisplayMessagesFeatureName
}

func (r *NotifyDisplayMessagesResponse) GetFeatureName() string {
	return NotifyDisplayMessagesFeatureName
}
