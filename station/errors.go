package station

import "fmt"

type FailureKind string

const (
	// FailureSignature inbound verification or outbound signing failed
	FailureSignature FailureKind = "SignatureError"
	// FailureUnreachable no live channel to the central system
	FailureUnreachable FailureKind = "UnknownOrUnreachable"
	// FailureGeneric a domain precondition failed
	FailureGeneric FailureKind = "GenericError"
)

// CallFailure is the response-shaped error returned by the outbound call
// engine. It never reaches the wire; the caller decides what to do with it.
type CallFailure struct {
	Kind   FailureKind
	PeerId string
	Reason string
}

func (f *CallFailure) Error() string {
	if f.PeerId != "" {
		return fmt.Sprintf("%s: %s (peer %s)", f.Kind, f.Reason, f.PeerId)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Reason)
}

func NewSignatureFailure(reason string) *CallFailure {
	return &CallFailure{Kind: FailureSignature, Reason: reason}
}

func NewUnreachableFailure(peerId string) *CallFailure {
	return &CallFailure{Kind: FailureUnreachable, PeerId: peerId, Reason: "no live channel"}
}

func NewGenericFailure(reason string) *CallFailure {
	return &CallFailure{Kind: FailureGeneric, Reason: reason}
}
