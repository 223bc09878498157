package main

// #region imports
import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/api"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/gateway"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/store"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/tutor"
)

// #endregion

// #region main
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	addr := envOr("TUTOR_ADDR", ":8080")
	dbPath := envOr("TUTOR_DB", "tutor.db")
	apiKey := os.Getenv("GEMINI_API_KEY")
	monthlyCap := envFloat("TUTOR_MONTHLY_CAP_USD", 5.0)
	timeout := envDuration("TUTOR_INVOKE_TIMEOUT", 30*time.Second)

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	gen, err := gateway.NewGeminiGenerator(context.Background(), apiKey)
	if err != nil {
		log.Fatalf("failed to create gemini generator: %v", err)
	}

	gw := gateway.New(gen, gateway.DefaultPricing(), timeout)
	engine := tutor.New(gw, store.NewSpendPolicy(st, monthlyCap), tutor.DefaultConfig())
	server := api.NewServer(engine, st)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("[TUTORD] listening on %s (db=%s cap=$%.2f/month)", addr, dbPath, monthlyCap)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("[TUTORD] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("[TUTORD] shutdown error: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// #endregion helpers
