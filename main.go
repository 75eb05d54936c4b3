package main

import (
	export "Wiresheet/internal/calc/export"
	report "Wiresheet/internal/calc/report"
	sheet "Wiresheet/internal/calc/sheet"
	config "Wiresheet/internal/config"
	limit "Wiresheet/internal/limit"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router, origin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg *config.AppConfig) {
	limiter := limit.NewIPRateLimiter(rate.Limit(cfg.Server.Rate), cfg.Server.Burst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	sheetH := &sheet.Handler{}
	reportH := &report.Handler{Company: cfg.Sheet.Company}
	exportH := &export.Handler{Company: cfg.Sheet.Company}

	api.HandleFunc("/kinds", sheetH.Kinds).Methods("GET")
	api.HandleFunc("/calc", sheetH.Calc).Methods("POST")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/report/xlsx", exportH.Generate).Methods("POST")

	mux.PathPrefix("/").
		Handler(http.FileServer(http.Dir("./static")))
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config.toml")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg)
	handler := CORS(mux, cfg.Server.AllowOrigin)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	log.Printf("Starting process sheet calculator on http://%s", cfg.Server.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
