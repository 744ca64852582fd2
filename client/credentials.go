package client

import (
	"sync"

	"github.com/Sampreeth-sv/smart-attendance-new/auth"
)

// CredentialStore is the process-wide mirror of the external credential
// context: initialized once after authentication, cleared on logout. The
// core components read it; only login and logout write it.
type CredentialStore struct {
	mutex sync.Mutex
	cred  *auth.Credential
}

func (s *CredentialStore) Set(cred auth.Credential) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cred = &cred
}

// Credential returns the stored credential, and false when none is set.
func (s *CredentialStore) Credential() (auth.Credential, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.cred == nil {
		return auth.Credential{}, false
	}
	return *s.cred, true
}

// Clear drops the credential on logout.
func (s *CredentialStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cred = nil
}
