package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inkwell-lab/backend/pkg/session"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := session.NewCookieStore("session", []byte("secret"))

	req := httptest.NewRequest(http.MethodPost, "/auth/login/", nil)
	require.Empty(t, store.UserID(req))

	w := httptest.NewRecorder()
	require.NoError(t, store.SaveUserID(req, w, "user1"))

	// Replay the cookie the way a browser would.
	loggedIn := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		loggedIn.AddCookie(cookie)
	}
	require.Equal(t, "user1", store.UserID(loggedIn))

	w = httptest.NewRecorder()
	require.NoError(t, store.Clear(loggedIn, w))

	loggedOut := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		loggedOut.AddCookie(cookie)
	}
	require.Empty(t, store.UserID(loggedOut))
}
