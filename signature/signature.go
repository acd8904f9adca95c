// Package signature implements the message-signing policies applied to
// every request and response exchanged with the central system.
package signature

import (
	"sync"

	"evstation/ocpp"
)

// Policy signs and verifies protocol messages. Verify methods return false
// with a reason text on failure; Sign methods report whether the signature
// was produced.
type Policy interface {
	Id() string
	VerifyRequestMessage(request ocpp.Request, payload []byte) (bool, string)
	SignResponseMessage(response ocpp.Response, payload []byte) (bool, string)
	SignRequestMessage(request ocpp.Request, payload []byte) (bool, string)
	VerifyResponseMessage(response ocpp.Response, payload []byte) (bool, string)
}

// PolicySet keeps policies in insertion order; the first one is active.
type PolicySet struct {
	policies []Policy
	mutex    sync.RWMutex
}

func NewPolicySet(policies ...Policy) *PolicySet {
	set := &PolicySet{}
	set.policies = append(set.policies, policies...)
	return set
}

// Active returns the first policy in the set, nil when the set is empty.
func (s *PolicySet) Active() Policy {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if len(s.policies) == 0 {
		return nil
	}
	return s.policies[0]
}

// Add appends a policy; it reports false when a policy with the same id is
// already present.
func (s *PolicySet) Add(policy Policy) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, p := range s.policies {
		if p.Id() == policy.Id() {
			return false
		}
	}
	s.policies = append(s.policies, policy)
	return true
}

// Update replaces the policy with the same id; reports false when no such
// policy exists.
func (s *PolicySet) Update(policy Policy) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i, p := range s.policies {
		if p.Id() == policy.Id() {
			s.policies[i] = policy
			return true
		}
	}
	return false
}

// Remove deletes the policy with the given id, preserving the order of the
// remaining policies; reports whether it was present.
func (s *PolicySet) Remove(id string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i, p := range s.policies {
		if p.Id() == id {
			s.policies = append(s.policies[:i], s.policies[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PolicySet) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.policies)
}
