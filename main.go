package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/naamrot/naamrot.com/naamrot"
	"github.com/naamrot/naamrot.com/util"
)

func main() {
	configFile := flag.String("conf", "", "override config file")
	flag.Parse()

	var cfg *ini.File
	var err error
	if *configFile != "" {
		cfg, err = ini.Load(*configFile)
	} else {
		cfg, err = ini.LooseLoad("config.ini", "/etc/naamrot/config.ini")
	}
	if err != nil {
		util.LogError(errors.Wrap(err, "loading config"))
		return
	}
	conf := LoadConfig(cfg.Section(""))

	conv := naamrot.Default()
	if conf.RulesFile != "" {
		conv, err = naamrot.LoadRuleFile(conf.RulesFile)
		if err != nil {
			util.LogError(errors.Wrap(err, "loading rules"))
			return
		}
	}

	srv := &server{conv: conv}
	r := mux.NewRouter()
	r.HandleFunc("/healthcheck", srv.HTTPHealthCheck)
	r.HandleFunc("/v1/convert", srv.HTTPConvert).Methods(http.MethodPost)
	r.HandleFunc("/v1/rules", srv.HTTPRules).Methods(http.MethodGet)

	util.LogGood("listening on", conf.HTTPListen)
	err = http.ListenAndServe(conf.HTTPListen, r)
	if err != nil {
		util.LogError(errors.Wrap(err, "http serve"))
	}
}
