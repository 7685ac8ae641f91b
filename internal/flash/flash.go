// Package flash carries one-shot notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "postboard_flash"

// Categories understood by the templates.
const (
	Success = "success"
	Info    = "info"
	Danger  = "danger"
)

type Message struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

// Set queues messages for the next page the client loads.
func Set(w http.ResponseWriter, msgs ...Message) {
	if len(msgs) == 0 {
		return
	}
	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c := newCookie(base64.RawURLEncoding.EncodeToString(b))
	http.SetCookie(w, c)
}

func newCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Pop returns the queued messages and clears them. Malformed cookies are
// discarded.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}
	cleared := newCookie("")
	cleared.MaxAge = -1
	http.SetCookie(w, cleared)

	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil
	}
	return msgs
}
