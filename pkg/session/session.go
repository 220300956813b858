package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// The only value the application keeps in the session.
const userIDKey = "user_id"

// Store wraps a cookie session under a fixed name and exposes the logged-in
// user id stored in it.
type Store struct {
	name  string
	store sessions.Store
}

func NewCookieStore(name string, keypairs ...[]byte) *Store {
	return &Store{
		name:  name,
		store: sessions.NewCookieStore(keypairs...),
	}
}

// UserID returns the user id recorded in the request session. It returns an
// empty string for an absent, undecodable, or anonymous session.
func (s *Store) UserID(r *http.Request) string {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return ""
	}

	id, _ := session.Values[userIDKey].(string)
	return id
}

// SaveUserID records the user id in the session cookie. An undecodable
// session cookie is replaced with a fresh one.
func (s *Store) SaveUserID(r *http.Request, w http.ResponseWriter, userID string) error {
	session, _ := s.store.Get(r, s.name)
	session.Values[userIDKey] = userID
	return s.store.Save(r, w, session)
}

// Clear logs the user out by expiring the session cookie.
func (s *Store) Clear(r *http.Request, w http.ResponseWriter) error {
	session, _ := s.store.Get(r, s.name)
	delete(session.Values, userIDKey)
	session.Options.MaxAge = -1
	return s.store.Save(r, w, session)
}
