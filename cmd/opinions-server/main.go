package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"debateservice/lib/configutil"
	"debateservice/lib/serviceutil"
	"debateservice/services/opinions"
)

type Config struct {
	Port     int             `json:"port"`
	Opinions opinions.Config `json:"opinions"`
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "The configuration file to read.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config](*configPath)
	if os.IsNotExist(err) {
		slog.WarnContext(ctx, "config not found, using defaults", "path", *configPath)
	} else if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	opinions.NewServiceFromConfig(cfg.Opinions).Register(mux)

	server := serviceutil.NewHttpServer(cfg.Port, "opinions-server", mux)
	err = serviceutil.StartHttpServer(ctx, server)
	ShutdownTelemetry()
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
