package session

import (
	"errors"
	"log"

	"github.com/iliesb/campus-admin-client/internal/storage"
)

// Manager owns the credential lifecycle: it reads the persisted token
// once at startup, replaces it wholesale on login or profile update, and
// clears it on logout or forced re-authentication.  The Session is
// derived exactly once per credential change and served from memory
// afterwards, never re-decoded on read.
type Manager struct {
	store   *storage.Store
	token   string
	session *Session
}

// NewManager binds a Manager to the durable credential store.
func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// Initialize loads the persisted credential at process start.  A missing
// credential yields no session.  An expired credential is removed from
// storage and likewise yields no session, so a stale token never
// survives a restart.
func (m *Manager) Initialize() (*Session, error) {
	raw, err := m.store.Load()
	if errors.Is(err, storage.ErrNoCredential) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if Expired(raw) {
		log.Printf("session: persisted credential expired, clearing")
		if err := m.store.Delete(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	m.token = raw
	m.session = Derive(raw)
	return m.session, nil
}

// Commit persists a freshly issued credential and installs the session
// derived from it.  Called after login, signup and profile update, each
// of which re-issues the token.
func (m *Manager) Commit(raw string) (*Session, error) {
	if err := m.store.Save(raw); err != nil {
		return nil, err
	}
	m.token = raw
	m.session = Derive(raw)
	return m.session, nil
}

// Clear removes the persisted credential and drops the in-memory
// session.  Used on logout and by the gateway's 401 policy.
func (m *Manager) Clear() error {
	m.token = ""
	m.session = nil
	return m.store.Delete()
}

// Current returns the derived session, or nil when unauthenticated.
func (m *Manager) Current() *Session { return m.session }

// Token returns the raw credential for the request gateway, or "" when
// none is installed.
func (m *Manager) Token() string { return m.token }

// Authenticated reports whether a session is installed.
func (m *Manager) Authenticated() bool { return m.session != nil }
