package signature

import (
	"testing"

	"evstation/ocpp/provisioning"
)

func TestHmacPolicyRoundTrip(t *testing.T) {
	policy := NewHmacPolicy("p1", []byte("secret"))
	request := provisioning.NewHeartbeatRequest()
	payload := []byte(`{}`)

	if ok, reason := policy.SignRequestMessage(request, payload); !ok {
		t.Fatalf("signing failed: %s", reason)
	}
	if ok, reason := policy.VerifyRequestMessage(request, payload); !ok {
		t.Errorf("verification of signed payload failed: %s", reason)
	}
}

func TestHmacPolicyDetectsTampering(t *testing.T) {
	policy := NewHmacPolicy("p1", []byte("secret"))
	request := provisioning.NewHeartbeatRequest()

	policy.SignRequestMessage(request, []byte(`{}`))
	ok, reason := policy.VerifyRequestMessage(request, []byte(`{"extra":1}`))
	if ok {
		t.Fatal("tampered payload must not verify")
	}
	if reason == "" {
		t.Error("failed verification must carry a reason")
	}
}

func TestHmacPolicyAcceptsUnsignedFeature(t *testing.T) {
	policy := NewHmacPolicy("p1", []byte("secret"))
	request := provisioning.NewHeartbeatRequest()
	if ok, _ := policy.VerifyRequestMessage(request, []byte(`{}`)); !ok {
		t.Error("a feature that was never signed must verify")
	}
}

func TestPolicySetActiveIsFirst(t *testing.T) {
	first := NewAcceptAllPolicy("first")
	second := NewAcceptAllPolicy("second")
	set := NewPolicySet(first, second)
	if set.Active() != first {
		t.Error("active policy must be the first in insertion order")
	}
}

func TestPolicySetEmptyActive(t *testing.T) {
	set := NewPolicySet()
	if set.Active() != nil {
		t.Error("empty set must have no active policy")
	}
}

func TestPolicySetAddDuplicateId(t *testing.T) {
	set := NewPolicySet(NewAcceptAllPolicy("p1"))
	if set.Add(NewAcceptAllPolicy("p1")) {
		t.Error("adding a duplicate id must fail")
	}
	if set.Size() != 1 {
		t.Errorf("size = %d, want 1", set.Size())
	}
}

func TestPolicySetUpdate(t *testing.T) {
	set := NewPolicySet(NewAcceptAllPolicy("p1"))
	replacement := NewHmacPolicy("p1", []byte("key"))
	if !set.Update(replacement) {
		t.Fatal("updating an existing id must succeed")
	}
	if set.Active() != replacement {
		t.Error("update must replace the policy in place")
	}
	if set.Update(NewAcceptAllPolicy("missing")) {
		t.Error("updating an unknown id must fail")
	}
}

func TestPolicySetRemoveKeepsOrder(t *testing.T) {
	a := NewAcceptAllPolicy("a")
	b := NewAcceptAllPolicy("b")
	c := NewAcceptAllPolicy("c")
	set := NewPolicySet(a, b, c)
	if !set.Remove("a") {
		t.Fatal("removing an existing id must succeed")
	}
	if set.Active() != b {
		t.Error("next policy in order must become active")
	}
	if set.Remove("a") {
		t.Error("removing twice must fail")
	}
	if set.Size() != 2 {
		t.Errorf("size = %d, want 2", set.Size())
	}
}
