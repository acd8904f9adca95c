package security

import "evstation/types"

const AddUserRoleFeatureName = "AddUserRole"
const UpdateUserRoleFeatureName = "UpdateUserRole"
const DeleteUserRoleFeatureName = "DeleteUserRole"

type UserRole struct {
	Id           string   `json:"id" validate:"required,max=36"`
	Name         string   `json:"name" validate:"required,max=50"`
	AccessRights []string `json:"accessRights,omitempty" validate:"omitempty,dive,max=50"`
}

type AddUserRoleRequest struct {
	UserRole UserRole `json:"userRole" validate:"required"`
}

type AddUserRoleResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type UpdateUserRoleRequest struct {
	UserRole UserRole `json:"userRole" validate:"required"`
}

type UpdateUserRoleResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type DeleteUserRoleRequest struct {
	UserRoleId string `json:"userRoleId" validate:"required,max=36"`
}

type DeleteUserRoleResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

func (r *AddUserRoleRequest) GetFeatureName() string {
	return AddUserRoleFeatureName
}

func (r *AddUserRoleResponse) GetFeatureName() string {
	return AddUserRoleFeatureName
}

func (r *UpdateUserRoleRequest) GetFeatureName() string {
	return UpdateUserRoleFeatureName
}

func (r *UpdateUserRoleResponse) GetFeatureName() string {
	return UpdateUserRoleFeatureName
}

func (r *DeleteUserRoleRequest) GetFeatureName() string {
	return DeleteUserRoleFeatureName
}

func (r *DeleteUserRoleResponse) GetFeatureName() string {
	return DeleteUserRoleFeatureName
}
