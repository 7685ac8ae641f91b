package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetThenPop(t *testing.T) {
	rr := httptest.NewRecorder()
	Set(rr, Message{Category: Success, Text: "Your account has been created!"})

	req := httptest.NewRequest("GET", "/login", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	rr2 := httptest.NewRecorder()
	msgs := Pop(rr2, req)
	if len(msgs) != 1 || msgs[0].Category != Success || msgs[0].Text != "Your account has been created!" {
		t.Fatalf("unexpected messages: %+v", msgs)
	}

	cleared := rr2.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Errorf("Pop should expire the cookie, got %+v", cleared)
	}
	set := rr.Result().Cookies()[0]
	for _, c := range []*http.Cookie{set, cleared[0]} {
		if !c.HttpOnly || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
			t.Errorf("cookie attributes: got %+v", c)
		}
	}
}

func TestPop_NoCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	if msgs := Pop(rr, httptest.NewRequest("GET", "/", nil)); msgs != nil {
		t.Errorf("expected no messages, got %+v", msgs)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("nothing to clear without a cookie")
	}
}

func TestPop_Malformed(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%"})
	if msgs := Pop(httptest.NewRecorder(), req); msgs != nil {
		t.Errorf("expected malformed cookie to be dropped, got %+v", msgs)
	}
}
