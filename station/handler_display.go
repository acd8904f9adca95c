package station

import (
	"evstation/ocpp/display"
)

func (h *SystemHandler) OnSetDisplayMessage(request *display.SetDisplayMessageRequest) *display.SetDisplayMessageResponse {
	if !h.displayMessages.Add(request.Message) {
		return &display.SetDisplayMessageResponse{Status: display.DisplayMessageStatusRejected}
	}
	return &display.SetDisplayMessageResponse{Status: display.DisplayMessageStatusAccepted}
}

// OnGetDisplayMessages accepts synchronously; the filtered messages are
// pushed through NotifyDisplayMessages from a detached goroutine.
func (h *SystemHandler) OnGetDisplayMessages(request *display.GetDisplayMessagesRequest) *display.GetDisplayMessagesResponse {
	requestId := request.RequestId
	messages := h.displayMessages.Filter(request.Id, request.State, request.Priority)
	go h.sender.SendNotifyDisplayMessages(requestId, messages)
	return &display.GetDisplayMessagesResponse{Status: display.MessagesStatusAccepted}
}

func (h *SystemHandler) OnClearDisplayMessage(request *display.ClearDisplayMessageRequest) *display.ClearDisplayMessageResponse {
	if !h.displayMessages.Remove(request.Id) {
		return &display.ClearDisplayMessageResponse{Status: display.ClearMessageStatusUnknown}
	}
	return &display.ClearDisplayMessageResponse{Status: display.ClearMessageStatusAccepted}
}
