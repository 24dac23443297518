package sessions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/sathyamr/go-cart/app/configs"
)

const (
	SessionCartKey   = "cart_session"
	CartSessionIDKey = "cart_user_id"
)

var Store = newStore()

func newStore() *sessions.CookieStore {
	if keys, err := configs.LoadSessionKeysFromEnv(); err == nil {
		return sessions.NewCookieStore(keys.AuthKey, keys.EncKey)
	}

	return sessions.NewCookieStore([]byte(configs.LoadENV.SESSION_KEY))
}

func init() {
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	}
}

// GetCartUserID returns the anonymous shopper identity for requests that
// carry no user id. The identity lives in the session cookie, so a returning
// anonymous shopper keeps the same cart.
func GetCartUserID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := Store.Get(r, SessionCartKey)
	if err != nil {
		return "", err
	}

	if userID, ok := session.Values[CartSessionIDKey].(string); ok && userID != "" {
		return userID, nil
	}

	newUserID := uuid.New().String()
	session.Values[CartSessionIDKey] = newUserID
	if err := session.Save(r, w); err != nil {
		return "", err
	}

	return newUserID, nil
}
