package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	promadapter "github.com/codewandler/freqcache-go/adapters/prometheus"
	"github.com/codewandler/freqcache-go/core/cache"
	"github.com/codewandler/freqcache-go/core/metrics"
)

// === Config ===

type config struct {
	Capacity    int
	N           int
	Keys        int
	Seed        uint64
	Script      string
	Shards      int
	MetricsAddr string
	LogLevel    slog.Level

	Metrics metrics.CacheMetrics
	Log     *slog.Logger
}

func loadConfig() config {
	cfg := config{
		Capacity:    getEnvInt("CAPACITY", 4),
		N:           getEnvInt("N", 10_000),
		Keys:        getEnvInt("KEYS", 64),
		Seed:        uint64(getEnvInt("SEED", 1)),
		Script:      getEnv("SCRIPT", ""),
		Shards:      getEnvInt("SHARDS", 1),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
		LogLevel:    slog.LevelInfo,
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.Keys < 2 {
		cfg.Keys = 2
	}
	if cfg.N < 0 {
		cfg.N = 0
	}
	return cfg
}

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	return v == "1" || strings.ToLower(v) == "true"
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

// === Replay ===

type benchCache interface {
	cache.Cache
	Stats() cache.Stats
	Close()
}

type result struct {
	stats   cache.Stats
	entries []cache.Entry
	took    time.Duration
}

// replay runs ops against a fresh cache built from cfg. trace, if set, sees
// every op with the Get result; onDiscard sees every evicted key.
func replay(cfg config, ops []op, trace func(o op, val any, hit bool), onDiscard func(key string)) result {
	onEvict := func(key string, _ any) { onDiscard(key) }

	var c benchCache
	if cfg.Shards > 1 {
		c = cache.NewSharded(cache.ShardedOpts{
			Shards:  cfg.Shards,
			Size:    cfg.Capacity,
			Name:    "freqbench",
			OnEvict: onEvict,
			Metrics: cfg.Metrics,
			Log:     cfg.Log,
		})
	} else {
		c = cache.NewLFU(cache.LFUOpts{
			Size:    cfg.Capacity,
			Name:    "freqbench",
			OnEvict: onEvict,
			Metrics: cfg.Metrics,
			Log:     cfg.Log,
		})
	}
	defer c.Close()

	start := time.Now()
	for _, o := range ops {
		var (
			val any
			hit bool
		)
		switch o.kind {
		case opPut:
			c.Put(o.key, o.val)
		case opGet:
			val, hit = c.Get(o.key)
		}
		if trace != nil {
			trace(o, val, hit)
		}
	}

	res := result{stats: c.Stats(), took: time.Since(start)}
	if l, ok := c.(*cache.LFU); ok {
		res.entries = l.Entries()
	}
	return res
}

func main() {
	cfg := loadConfig()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	cfg.Log = log

	reg := prometheus.NewRegistry()
	cfg.Metrics = promadapter.NewCacheMetrics(reg)

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Info("serving metrics", slog.String("addr", cfg.MetricsAddr))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", slog.Any("error", err))
			}
		}()
	}

	var (
		ops []op
		err error
	)
	if cfg.Script != "" {
		ops, err = parseScript(cfg.Script)
		if err != nil {
			log.Error("invalid SCRIPT", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		ops = randomOps(cfg.N, cfg.Keys, cfg.Seed)
	}

	log.Info(
		"replaying",
		slog.Int("ops", len(ops)),
		slog.Int("capacity", cfg.Capacity),
		slog.Int("shards", cfg.Shards),
	)

	verbose := cfg.Script != "" || getEnvBool("VERBOSE", false)
	var trace func(op, any, bool)
	if verbose {
		trace = func(o op, val any, hit bool) {
			if o.kind == opGet {
				if hit {
					fmt.Printf("%s -> %v\n", o, val)
				} else {
					fmt.Printf("%s -> None\n", o)
				}
			}
		}
	}

	res := replay(cfg, ops, trace, func(key string) {
		if verbose {
			fmt.Printf("DISCARD: %s\n", key)
		}
	})

	// === stats ===
	println("")
	println("==========================================")

	for _, e := range res.entries {
		fmt.Printf("%s: %v (freq=%d, recency=%d)\n", e.Key, e.Value, e.Frequency, e.Recency)
	}

	fmt.Printf("entries:   %d / %d\n", res.stats.Len, res.stats.Capacity)
	fmt.Printf("hits:      %d\n", res.stats.Hits)
	fmt.Printf("misses:    %d\n", res.stats.Misses)
	fmt.Printf("evictions: %d\n", res.stats.Evictions)
	fmt.Printf("hit ratio: %.3f\n", res.stats.HitRatio())
	fmt.Printf("runtime:   %.3f ms\n", float64(res.took.Microseconds())/1000)

	if cfg.MetricsAddr != "" {
		log.Info("metrics still served, press Ctrl+C to exit")
		select {}
	}
}
