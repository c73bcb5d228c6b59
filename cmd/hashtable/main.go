package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homier/hashtable"
	"github.com/homier/hashtable/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	var (
		baseSizeEnv = getEnv("HASHTABLE_BASE_SIZE", strconv.Itoa(hashtable.DefaultBaseSize))
		metricsEnv  = getEnv("HASHTABLE_METRICS_ADDR", "")

		baseSizeFlag = flag.Int("base-size", atoiDefault(baseSizeEnv, hashtable.DefaultBaseSize), "initial base size, the table never shrinks below it")
		metricsFlag  = flag.String("metrics-addr", metricsEnv, "serve prometheus metrics on this address, disabled if empty")
		demoFlag     = flag.Bool("demo", false, "run the demo session and exit")
	)
	flag.Parse()

	t := hashtable.NewSyncSized(*baseSizeFlag)
	log.Printf("Table ready: capacity=%d", t.Stats().Capacity)

	if *demoFlag {
		if err := runScript(t, os.Stdout, demoScript); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *metricsFlag != "" {
		srv := serveMetrics(*metricsFlag, t)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Metrics shutdown error: %v", err)
			}
		}()
	}

	if err := repl(ctx, t); err != nil {
		log.Printf("Input error: %v", err)
	}
}

func serveMetrics(addr string, t *hashtable.SyncTable) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector("default", t))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics listen error: %v", err)
		}
	}()

	return srv
}

// repl reads commands from stdin until EOF or ctx is cancelled.
func repl(ctx context.Context, t *hashtable.SyncTable) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		defer func() {
			errc <- scanner.Err()
			close(lines)
		}()

		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down...")
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}

			out, err := execute(t, line)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				continue
			}
			if out != "" {
				fmt.Println(out)
			}
		}
	}
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defaultValue
}

func atoiDefault(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}

	return defaultValue
}
