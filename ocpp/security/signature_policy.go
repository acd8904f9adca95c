package security

import "evstation/types"

const AddSignaturePolicyFeatureName = "AddSignaturePolicy"
const UpdateSignaturePolicyFeatureName = "UpdateSignaturePolicy"
const DeleteSignaturePolicyFeatureName = "DeleteSignaturePolicy"

type SignaturePolicyEntry struct {
	Id         string `json:"id" validate:"required,max=36"`
	Algorithm  string `json:"algorithm" validate:"required,max=50"`
	PublicKey  string `json:"publicKey,omitempty" validate:"omitempty,max=5500"`
	PrivateKey string `json:"privateKey,omitempty" validate:"omitempty,max=5500"`
}

type AddSignaturePolicyRequest struct {
	SignaturePolicy SignaturePolicyEntry `json:"signaturePolicy" validate:"required"`
}

type AddSignaturePolicyResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type UpdateSignaturePolicyRequest struct {
	SignaturePolicy SignaturePolicyEntry `json:"signaturePolicy" validate:"required"`
}

type UpdateSignaturePolicyResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

type DeleteSignaturePolicyRequest struct {
	SignaturePolicyId string `json:"signaturePolicyId" validate:"required,max=36"`
}

type DeleteSignaturePolicyResponse struct {
	Status     types.GenericStatus `json:"status" validate:"required,genericStatus"`
	StatusInfo *types.StatusInfo   `json:"statusInfo,omitempty"`
}

func (r *AddSignaturePolicyRequest) GetFeatureName() string {
	return AddSignaturePolicyFeatureName
}

func (r *AddSignaturePolicyResponse) GetFeatureName() string {
	return AddSignaturePolicyFeatureName
}

func (r *UpdateSignaturePolicyRequest) GetFeatureName() string {
	return UpdateSignaturePolicyFeatureName
}

func (r *UpdateSignaturePolicyResponse) GetFeatureName() string {
	return UpdateSignaturePolicyFeatureName
}

func (r *DeleteSignaturePolicyRequest) GetFeatureName() string {
	return DeleteSignaturePolicyFeatureName
}

func (r *DeleteSignaturePolicyResponse) GetFeatureName() string {
	return DeleteSignaturePolicyFeatureName
}
