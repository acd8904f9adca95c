package station

import (
	"evstation/ocpp/files"
)

// The file surface is a fixed fake filesystem with exactly one file and one
// directory; anything else is NotFound.
const (
	knownFilePath      = "/hello/world.txt"
	knownDirectoryPath = "/hello"
)

func (h *SystemHandler) OnGetFile(request *files.GetFileRequest) *files.GetFileResponse {
	if request.FileName != knownFilePath {
		return &files.GetFileResponse{FileName: request.FileName, Status: files.FileStatusNotFound}
	}
	return &files.GetFileResponse{
		FileName:    request.FileName,
		Status:      files.FileStatusAccepted,
		FileContent: []byte("Hello world!"),
	}
}

func (h *SystemHandler) OnSendFile(request *files.SendFileRequest) *files.SendFileResponse {
	if request.FileName != knownFilePath {
		return &files.SendFileResponse{FileName: request.FileName, Status: files.FileStatusNotFound}
	}
	return &files.SendFileResponse{FileName: request.FileName, Status: files.FileStatusAccepted}
}

func (h *SystemHandler) OnDeleteFile(request *files.DeleteFileRequest) *files.DeleteFileResponse {
	if request.FileName != knownFilePath {
		return &files.DeleteFileResponse{FileName: request.FileName, Status: files.FileStatusNotFound}
	}
	return &files.DeleteFileResponse{FileName: request.FileName, Status: files.FileStatusAccepted}
}

func (h *SystemHandler) OnListDirectory(request *files.ListDirectoryRequest) *files.ListDirectoryResponse {
	if request.Directory != knownDirectoryPath {
		return &files.ListDirectoryResponse{Directory: request.Directory, Status: files.FileStatusNotFound}
	}
	return &files.ListDirectoryResponse{
		Directory: request.Directory,
		Status:    files.FileStatusAccepted,
		Listing:   []string{"world.txt"},
	}
}
