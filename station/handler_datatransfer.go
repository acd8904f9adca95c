package station

import (
	"evstation/ocpp/datatransfer"
	"evstation/utility"
)

func (h *SystemHandler) OnDataTransfer(request *datatransfer.DataTransferRequest) *datatransfer.DataTransferResponse {
	if request.VendorId != h.conf.Station.Vendor {
		return &datatransfer.DataTransferResponse{Status: datatransfer.DataTransferStatusRejected}
	}
	return &datatransfer.DataTransferResponse{
		Status: datatransfer.DataTransferStatusAccepted,
		Data:   reverseStringLeaves(request.Data),
	}
}

func (h *SystemHandler) OnBinaryDataTransfer(request *datatransfer.BinaryDataTransferRequest) *datatransfer.BinaryDataTransferResponse {
	if request.VendorId != h.conf.Station.Vendor {
		return &datatransfer.BinaryDataTransferResponse{Status: datatransfer.DataTransferStatusRejected}
	}
	return &datatransfer.BinaryDataTransferResponse{
		Status: datatransfer.DataTransferStatusAccepted,
		Data:   utility.ReverseBytes(request.Data),
	}
}

// reverseStringLeaves walks a decoded JSON value and reverses every string
// leaf, keeping the structure intact.
func reverseStringLeaves(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		return utility.Reverse(v)
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = reverseStringLeaves(item)
		}
		return result
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, item := range v {
			result[key] = reverseStringLeaves(item)
		}
		return result
	default:
		return v
	}
}
