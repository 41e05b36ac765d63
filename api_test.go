package main

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naamrot/naamrot.com/naamrot"
)

func TestHTTPConvert(t *testing.T) {
	srv := &server{conv: naamrot.Default()}

	req := httptest.NewRequest("POST", "/v1/convert", strings.NewReader(`{"text":"don't stop"}`))
	w := httptest.NewRecorder()
	srv.HTTPConvert(w, req)

	if w.Code != 200 {
		t.Fatalf("status %d, wanted 200", w.Code)
	}
	var resp convertResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Result != "DAN'T STAP" {
		t.Errorf("result = %q, wanted DAN'T STAP", resp.Result)
	}

	// Second request hits the cache and must return the same thing.
	req = httptest.NewRequest("POST", "/v1/convert", strings.NewReader(`{"text":"don't stop"}`))
	w = httptest.NewRecorder()
	srv.HTTPConvert(w, req)
	var again convertResponse
	if err := json.NewDecoder(w.Body).Decode(&again); err != nil {
		t.Fatal(err)
	}
	if again.Result != resp.Result {
		t.Errorf("cached result = %q, first was %q", again.Result, resp.Result)
	}
}

func TestHTTPConvertBadBody(t *testing.T) {
	srv := &server{conv: naamrot.Default()}
	req := httptest.NewRequest("POST", "/v1/convert", strings.NewReader("{"))
	w := httptest.NewRecorder()
	srv.HTTPConvert(w, req)
	if w.Code != 400 {
		t.Errorf("status %d, wanted 400", w.Code)
	}
}

func TestHTTPRules(t *testing.T) {
	srv := &server{conv: naamrot.Default()}
	req := httptest.NewRequest("GET", "/v1/rules", nil)
	w := httptest.NewRecorder()
	srv.HTTPRules(w, req)

	var resp rulesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Exceptions) == 0 || len(resp.ProtectedSuffixes) == 0 {
		t.Errorf("rules dump is empty: %+v", resp)
	}
}
