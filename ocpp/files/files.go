package files

import "evstation/types"

const GetFileFeatureName = "GetFile"
const SendFileFeatureName = "SendFile"
const DeleteFileFeatureName = "DeleteFile"
const ListDirectoryFeatureName = "ListDirectory"

type FileStatus string

const (
	FileStatusAccepted FileStatus = "Accepted"
	FileStatusRejected FileStatus = "Rejected"
	FileStatusNotFound FileStatus = "NotFound"
)

type GetFileRequest struct {
	FileName string `json:"fileName" validate:"required,max=512"`
}

type GetFileResponse struct {
	FileName    string            `json:"fileName" validate:"required,max=512"`
	Status      FileStatus        `json:"status" validate:"required,fileStatus"`
	FileContent []byte            `json:"fileContent,omitempty"`
	StatusInfo  *types.StatusInfo `json:"statusInfo,omitempty"`
}

type SendFileRequest struct {
	FileName    string `json:"fileName" validate:"required,max=512"`
	FileContent []byte `json:"fileContent,omitempty"`
}

type SendFileResponse struct {
	FileName   string            `json:"fileName" validate:"required,max=512"`
	Status     FileStatus        `json:"status" validate:"required,fileStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

type DeleteFileRequest struct {
	FileName string `json:"fileName" validate:"required,max=512"`
}

type DeleteFileResponse struct {
	FileName   string            `json:"fileName" validate:"required,max=512"`
	Status     FileStatus        `json:"status" validate:"required,fileStatus"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

type ListDirectoryRequest struct {
	Directory string `json:"directory" validate:"required,max=512"`
}

type ListDirectoryResponse struct {
	Directory  string            `json:"directory" validate:"required,max=512"`
	Status     FileStatus        `json:"status" validate:"required,fileStatus"`
	Listing    []string          `json:"listing,omitempty"`
	StatusInfo *types.StatusInfo `json:"statusInfo,omitempty"`
}

func (r *GetFileRequest) GetFeatureName() string {
	return GetFileFeatureName
}

func (r *GetFileResponse) GetFeatureName() string {
	return GetFileFeatureName
}

func (r *SendFileRequest) GetFeatureName() string {
	return SendFileFeatureName
}

func (r *SendFileResponse) GetFeatureName() string {
	return SendFileFeatureName
}

func (r *DeleteFileRequest) GetFeatureName() string {
	return DeleteFileFeatureName
}

func (r *DeleteFileResponse) GetFeatureName() string {
	return DeleteFileFeatureName
}

func (r *ListDirectoryRequest) GetFeatureName() string {
	return ListDirectoryFeatureName
}

func (r *ListDirectoryResponse) GetFeatureName() string {
	return ListDirectoryFeatureName
}
