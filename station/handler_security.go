package station

import (
	"evstation/ocpp/security"
	"evstation/signature"
	"evstation/types"
)

func (h *SystemHandler) OnCertificateSigned(request *security.CertificateSignedRequest) *security.CertificateSignedResponse {
	if request.CertificateChain == "" {
		return &security.CertificateSignedResponse{Status: security.CertificateSignedStatusRejected}
	}
	return &security.CertificateSignedResponse{Status: security.CertificateSignedStatusAccepted}
}

func (h *SystemHandler) OnInstallCertificate(request *security.InstallCertificateRequest) *security.InstallCertificateResponse {
	if request.Certificate == "" {
		return &security.InstallCertificateResponse{Status: security.InstallCertificateStatusRejected}
	}
	h.certificates.Upsert(request.CertificateType, request.Certificate)
	return &security.InstallCertificateResponse{Status: security.InstallCertificateStatusAccepted}
}

func (h *SystemHandler) OnGetInstalledCertificateIds(request *security.GetInstalledCertificateIdsRequest) *security.GetInstalledCertificateIdsResponse {
	installed := h.certificates.Installed()
	var chains []security.CertificateHashDataChain
	for use := range installed {
		if len(request.CertificateType) > 0 {
			matched := false
			for _, wanted := range request.CertificateType {
				if wanted == use {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		chains = append(chains, security.CertificateHashDataChain{
			CertificateType: use,
			CertificateHashData: types.CertificateHashData{
				HashAlgorithm:  "SHA256",
				IssuerNameHash: string(use),
				IssuerKeyHash:  string(use),
				SerialNumber:   string(use),
			},
		})
	}
	if len(chains) == 0 {
		return &security.GetInstalledCertificateIdsResponse{Status: security.GetInstalledCertificateStatusNotFound}
	}
	return &security.GetInstalledCertificateIdsResponse{
		Status:                   security.GetInstalledCertificateStatusAccepted,
		CertificateHashDataChain: chains,
	}
}

// OnDeleteCertificate matches the installed certificate by the serial number
// carried in the hash data, which this model stores as the certificate use.
func (h *SystemHandler) OnDeleteCertificate(request *security.DeleteCertificateRequest) *security.DeleteCertificateResponse {
	use := types.CertificateUse(request.CertificateHashData.SerialNumber)
	if h.certificates.Remove(use) {
		return &security.DeleteCertificateResponse{Status: security.DeleteCertificateStatusAccepted}
	}
	return &security.DeleteCertificateResponse{Status: security.DeleteCertificateStatusNotFound}
}

func (h *SystemHandler) OnNotifyCRL(request *security.NotifyCRLRequest) *security.NotifyCRLResponse {
	return &security.NotifyCRLResponse{}
}

func (h *SystemHandler) OnAddSignaturePolicy(request *security.AddSignaturePolicyRequest) *security.AddSignaturePolicyResponse {
	entry := request.SignaturePolicy
	policy := signature.NewHmacPolicy(entry.Id, []byte(entry.PrivateKey))
	if !h.policies.Add(policy) {
		return &security.AddSignaturePolicyResponse{Status: types.GenericStatusRejected}
	}
	return &security.AddSignaturePolicyResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnUpdateSignaturePolicy(request *security.UpdateSignaturePolicyRequest) *security.UpdateSignaturePolicyResponse {
	entry := request.SignaturePolicy
	policy := signature.NewHmacPolicy(entry.Id, []byte(entry.PrivateKey))
	if !h.policies.Update(policy) {
		return &security.UpdateSignaturePolicyResponse{Status: types.GenericStatusRejected}
	}
	return &security.UpdateSignaturePolicyResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnDeleteSignaturePolicy(request *security.DeleteSignaturePolicyRequest) *security.DeleteSignaturePolicyResponse {
	if !h.policies.Remove(request.SignaturePolicyId) {
		return &security.DeleteSignaturePolicyResponse{Status: types.GenericStatusRejected}
	}
	return &security.DeleteSignaturePolicyResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnAddUserRole(request *security.AddUserRoleRequest) *security.AddUserRoleResponse {
	h.mux.Lock()
	defer h.mux.Unlock()
	if _, found := h.userRoles[request.UserRole.Id]; found {
		return &security.AddUserRoleResponse{Status: types.GenericStatusRejected}
	}
	h.userRoles[request.UserRole.Id] = request.UserRole.Name
	return &security.AddUserRoleResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnUpdateUserRole(request *security.UpdateUserRoleRequest) *security.UpdateUserRoleResponse {
	h.mux.Lock()
	defer h.mux.Unlock()
	if _, found := h.userRoles[request.UserRole.Id]; !found {
		return &security.UpdateUserRoleResponse{Status: types.GenericStatusRejected}
	}
	h.userRoles[request.UserRole.Id] = request.UserRole.Name
	return &security.UpdateUserRoleResponse{Status: types.GenericStatusAccepted}
}

func (h *SystemHandler) OnDeleteUserRole(request *security.DeleteUserRoleRequest) *security.DeleteUserRoleResponse {
	h.mux.Lock()
	defer h.mux.Unlock()
	if _, found := h.userRoles[request.UserRoleId]; !found {
		return &security.DeleteUserRoleResponse{Status: types.GenericStatusRejected}
	}
	delete(h.userRoles, request.UserRoleId)
	return &security.DeleteUserRoleResponse{Status: types.GenericStatusAccepted}
}
