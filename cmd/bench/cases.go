// README: Smoke-bench cases; env, dataset tables, API endpoints and a latency check.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// datasetTables are the tables the API loads at boot.
var datasetTables = []string{
	"earners",
	"rides_trips",
	"eats_orders",
	"earnings_daily",
	"incentives_weekly",
	"heatmap",
	"cancellation_rates",
	"surge_by_hour",
	"weather_daily",
}

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}

	if r.db != nil {
		r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}

	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Postgres connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.db.Ping(ctx); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Env: Redis connect",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: "FAIL", Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: "FAIL", Note: err.Error()}
				}
				return Result{Status: "PASS"}
			},
		},
		{
			Name: "Dataset: tables exist",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.db == nil {
					return Result{Status: "FAIL", Note: "db not configured"}
				}
				for _, t := range datasetTables {
					var exists bool
					err := r.db.QueryRow(ctx,
						"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)",
						t,
					).Scan(&exists)
					if err != nil {
						return Result{Status: "FAIL", Note: err.Error()}
					}
					if !exists {
						return Result{Status: "FAIL", Note: "missing table: " + t}
					}
				}
				return Result{Status: "PASS"}
			},
		},

		getCase("API: health", base+"/health", []int{200}),
		getCase("API: statistics", base+"/api/analytics/statistics", []int{200}),
		getCase("API: earnings by city", base+"/api/analytics/earnings/by-city", []int{200}),
		getCase("API: earnings by experience", base+"/api/analytics/earnings/by-experience", []int{200}),
		getCase("API: hourly patterns", base+"/api/analytics/patterns", []int{200}),
		getCase("API: earner lookup", base+"/api/earners/"+r.cfg.EarnerID, []int{200}),
		getCase("API: earner lookup (unknown -> 404)", base+"/api/earners/NOBODY", []int{404}),
		getCase("API: rate estimate", base+"/api/earners/"+r.cfg.EarnerID+"/rate", []int{200, 422}),
		getCase("API: insights", base+"/api/earners/"+r.cfg.EarnerID+"/insights", []int{200, 422}),
		getCase("API: quest insights", base+"/api/earners/"+r.cfg.EarnerID+"/quests", []int{200}),
		getCase("API: forecast", base+"/api/forecast/"+r.cfg.EarnerID+"?hours=8&platform=both", []int{200}),
		getCase("API: forecast (bad platform -> 400)", base+"/api/forecast/"+r.cfg.EarnerID+"?platform=scooters", []int{400}),
		getCase("API: forecast (bad hours -> 400)", base+"/api/forecast/"+r.cfg.EarnerID+"?hours=99", []int{400}),
		getCase("API: location intelligence", base+"/api/locations/1/intelligence", []int{200}),
		getCase("API: location recommendations", base+"/api/locations/1/recommendations?hour=18", []int{200}),
		getCase("API: metrics exposed", base+"/metrics", []int{200}),

		postCase("API: assistant chat", base+"/api/assistant/chat", map[string]any{
			"message":   "When should I drive today?",
			"earner_id": r.cfg.EarnerID,
		}, []int{200}),
		postCase("API: assistant chat (empty -> 400)", base+"/api/assistant/chat", map[string]any{}, []int{400}),
		postCase("API: assistant predict", base+"/api/assistant/predict", map[string]any{
			"earner_id": r.cfg.EarnerID,
			"hours":     8,
			"platform":  "both",
		}, []int{200}),

		{
			Name: "Perf: patterns p95 under 500ms",
			Run:  r.perfCase(base + "/api/analytics/patterns"),
		},
	}
}

func getCase(name, url string, want []int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			start := time.Now()
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_ = resp.Body.Close()
			return statusResult(resp.StatusCode, want, time.Since(start))
		},
	}
}

func postCase(name, url string, body map[string]any, want []int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			payload, err := json.Marshal(body)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			start := time.Now()
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			req.Header.Set("Content-Type", "application/json")
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: "FAIL", Note: err.Error()}
			}
			_ = resp.Body.Close()
			return statusResult(resp.StatusCode, want, time.Since(start))
		},
	}
}

func statusResult(got int, want []int, latency time.Duration) Result {
	for _, w := range want {
		if got == w {
			return Result{Status: "PASS", Latency: latency, Note: fmt.Sprintf("status=%d", got)}
		}
	}
	return Result{Status: "FAIL", Latency: latency, Note: fmt.Sprintf("status=%d want=%v", got, want)}
}

// perfCase hammers one endpoint with cfg.Concurrency workers for
// cfg.Duration and checks the p95 latency.
func (r *Runner) perfCase(url string) func(ctx context.Context, r *Runner) Result {
	const p95Budget = 500 * time.Millisecond

	return func(ctx context.Context, r *Runner) Result {
		deadline := time.Now().Add(r.cfg.Duration)

		var mu sync.Mutex
		var latencies []time.Duration
		failures := 0

		var wg sync.WaitGroup
		for i := 0; i < r.cfg.Concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for time.Now().Before(deadline) && ctx.Err() == nil {
					start := time.Now()
					req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
					if err != nil {
						return
					}
					resp, err := r.httpc.Do(req)
					elapsed := time.Since(start)

					mu.Lock()
					if err != nil || resp.StatusCode != http.StatusOK {
						failures++
					} else {
						latencies = append(latencies, elapsed)
					}
					mu.Unlock()
					if resp != nil {
						_ = resp.Body.Close()
					}
				}
			}()
		}
		wg.Wait()

		if len(latencies) == 0 {
			return Result{Status: "FAIL", Note: "no successful requests"}
		}
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		p95 := latencies[len(latencies)*95/100]

		note := fmt.Sprintf("n=%d fail=%d p95=%s", len(latencies), failures, p95)
		if p95 > p95Budget || failures > 0 {
			return Result{Status: "FAIL", Latency: p95, Note: note}
		}
		return Result{Status: "PASS", Latency: p95, Note: note}
	}
}
