package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/naamrot/naamrot.com/naamrot"
	"github.com/naamrot/naamrot.com/util"
)

// Conversions are pure, so repeated inputs are served from a cache.
var convertCache = cache.New(1*time.Hour, 10*time.Minute)

type server struct {
	conv *naamrot.Converter
}

type stringWriter interface {
	WriteString(s string) (n int, err error)
}

func (s *server) HTTPHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.(stringWriter).WriteString("ok\n")
}

type convertRequest struct {
	Text string `json:"text"`
}

type convertResponse struct {
	Result string `json:"result"`
}

func (s *server) HTTPConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req)
	if err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var result string
	if cached, ok := convertCache.Get(req.Text); ok {
		result = cached.(string)
	} else {
		result = s.conv.Convert(req.Text)
		convertCache.SetDefault(req.Text, result)
	}
	util.LogGood("convert:", util.PreviewString(req.Text, 40))

	w.Header().Set("Content-Type", "application/json")
	util.LogIfError(json.NewEncoder(w).Encode(convertResponse{Result: result}))
}

type rulesResponse struct {
	Exceptions        []string `json:"exceptions"`
	ProtectedSuffixes []string `json:"protected_suffixes"`
}

func (s *server) HTTPRules(w http.ResponseWriter, r *http.Request) {
	resp := rulesResponse{ProtectedSuffixes: s.conv.ProtectedSuffixes()}
	for _, rule := range s.conv.ExceptionRules() {
		resp.Exceptions = append(resp.Exceptions, rule.String())
	}
	w.Header().Set("Content-Type", "application/json")
	util.LogIfError(json.NewEncoder(w).Encode(resp))
}
