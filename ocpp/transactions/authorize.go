package transactions

import "evstation/types"

const AuthorizeFeatureName = "Authorize"

type AuthorizeRequest struct {
	IdToken     types.IdToken `json:"idToken" validate:"required"`
	Certificate string        `json:"certificate,omitempty" validate:"omitempty,max=5500"`
}

type AuthorizeResponse struct {
	IdTokenInfo types.IdTokenInfo `json:"idTokenInfo" validate:"required"`
}

func NewAuthorizeRequest(idToken types.IdToken) *AuthorizeRequest {
	return &AuthorizeRequest{IdToken: idToken}
}

func (r *AuthorizeRequest) GetFeatureName() string {
	return AuthorizeFeatureName
}

func (r *AuthorizeResponse) GetFeatureName() string {
	return AuthorizeFeatureName
}
