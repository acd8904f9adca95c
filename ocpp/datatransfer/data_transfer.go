package datatransfer

import "evstation/types"

const DataTransferFeatureName = "DataTransfer"
const BinaryDataTransferFeatureName = "BinaryDataTransfer"

type DataTransferStatus string

const (
	DataTransferStatusAccepted         DataTransferStatus = "Accepted"
	DataTransferStatusRejected         DataTransferStatus = "Rejected"
	DataTransferStatusUnknownMessageId DataTransferStatus = "UnknownMessageId"
	DataTransferStatusUnknownVendorId  DataTransferStatus = "UnknownVendorId"
)

type DataTransferRequest struct {
	VendorId  string      `json:"vendorId" validate:"required,max=255"`
	MessageId string      `json:"messageId,omitempty" validate:"omitempty,max=50"`
	Data      interface{} `json:"data,omitempty"`
}

type DataTransferResponse struct {
	Status     DataTransferStatus `json:"status" validate:"required,dataTransferStatus"`
	Data       interface{}        `json:"data,omitempty"`
	StatusInfo *types.StatusInfo  `json:"statusInfo,omitempty"`
}

type BinaryDataTransferRequest struct {
	VendorId  string `json:"vendorId" validate:"required,max=255"`
	MessageId string `json:"messageId,omitempty" validate:"omitempty,max=50"`
	Data      []byte `json:"data,omitempty"`
}

type BinaryDataTransferResponse struct {
	Status     DataTransferStatus `json:"status" validate:"required,dataTransferStatus"`
	Data       []byte             `json:"data,omitempty"`
	StatusInfo *types.StatusInfo  `json:"statusInfo,omitempty"`
}

func (r *DataTransferRequest) GetFeatureName() string {
	return DataTransferFeatureName
}

func (r *DataTransferResponse) GetFeatureName() string {
	return DataTransferFeatureName
}

func (r *BinaryDataTransferRequest) GetFeatureName() string {
	return BinaryDataTransferFeatureName
}

func (r *BinaryDataTransferResponse) GetFeatureName() string {
	return BinaryDataTransferFeatureName
}
