package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"evstation/ocpp"
)

// HmacPolicy signs payloads with HMAC-SHA256 over the canonical payload
// bytes. Signatures live alongside the message in a per-message store keyed
// by feature name, since the wire frames carry the payload untouched.
type HmacPolicy struct {
	id         string
	key        []byte
	signatures map[string]string
	mutex      sync.Mutex
}

func NewHmacPolicy(id string, key []byte) *HmacPolicy {
	return &HmacPolicy{
		id:         id,
		key:        key,
		signatures: make(map[string]string),
	}
}

func (p *HmacPolicy) Id() string {
	return p.id
}

func (p *HmacPolicy) sum(payload []byte) string {
	mac := hmac.New(sha256.New, p.key)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (p *HmacPolicy) VerifyRequestMessage(request ocpp.Request, payload []byte) (bool, string) {
	return p.verify(request.GetFeatureName(), payload)
}

func (p *HmacPolicy) SignResponseMessage(response ocpp.Response, payload []byte) (bool, string) {
	p.store(response.GetFeatureName(), payload)
	return true, ""
}

func (p *HmacPolicy) SignRequestMessage(request ocpp.Request, payload []byte) (bool, string) {
	p.store(request.GetFeatureName(), payload)
	return true, ""
}

func (p *HmacPolicy) store(feature string, payload []byte) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.signatures[feature] = p.sum(payload)
}

func (p *HmacPolicy) VerifyResponseMessage(response ocpp.Response, payload []byte) (bool, string) {
	return p.verify(response.GetFeatureName(), payload)
}

func (p *HmacPolicy) verify(feature string, payload []byte) (bool, string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	stored, found := p.signatures[feature]
	if !found {
		// nothing signed for this feature yet, accept
		return true, ""
	}
	if stored != p.sum(payload) {
		return false, fmt.Sprintf("signature mismatch for %s", feature)
	}
	return true, ""
}

// AcceptAllPolicy accepts every message without touching the payload. It is
// the default policy when no signing key is configured.
type AcceptAllPolicy struct {
	id string
}

func NewAcceptAllPolicy(id string) *AcceptAllPolicy {
	return &AcceptAllPolicy{id: id}
}

func (p *AcceptAllPolicy) Id() string {
	return p.id
}

func (p *AcceptAllPolicy) VerifyRequestMessage(ocpp.Request, []byte) (bool, string) {
	return true, ""
}

func (p *AcceptAllPolicy) SignResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}

func (p *AcceptAllPolicy) SignRequestMessage(ocpp.Request, []byte) (bool, string) {
	return true, ""
}

func (p *AcceptAllPolicy) VerifyResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}
