package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Event represents the event payload
type Event struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	UserID    int    `json:"user_id"`
	Timestamp int64  `json:"t"`
}

// Response represents the API response
type Response struct {
	Alert      bool  `json:"alert"`
	AlertCodes []int `json:"alert_codes"`
	UserID     int   `json:"user_id"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	AlertCodes   []int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	Conflicts          int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AlertCounts        map[int]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// EventScenario defines an event scenario
type EventScenario struct {
	Name   string
	Type   string
	Amount string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "1,2,3,4", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 10, "Delay between requests in milliseconds")
	startTs := flag.Int64("t0", time.Now().Unix(), "First client timestamp; each request takes the next one")
	flag.Parse()

	var userIDs []int
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(idStr, "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int{1}
	}

	scenarios := []EventScenario{
		{"Deposit Small", "deposit", "10.00"},
		{"Deposit Medium", "deposit", "60.00"},
		{"Deposit Large", "deposit", "150.00"},
		{"Withdraw Small", "withdraw", "15.00"},
		{"Withdraw Large", "withdraw", "120.00"},
	}

	fmt.Printf("Load testing POST /event across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Starting timestamp: %d\n", *startTs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AlertCounts:     make(map[int]int),
		ScenarioStats:   make(map[string]int),
	}

	// timestamps are handed out in order, but concurrent requests may still
	// arrive out of order and be rejected with 409
	var clock atomic.Int64
	clock.Store(*startTs - 1)

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, userIDs, scenarios, &clock, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			record(stats, result)
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	switch {
	case result.Success:
		stats.SuccessfulRequests++
		for _, code := range result.AlertCodes {
			stats.AlertCounts[code]++
		}
	case result.StatusCode == http.StatusConflict:
		stats.Conflicts++
	default:
		stats.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		stats.ErrorCounts[errMsg]++
	}

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
	stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
}

func worker(baseURL string, delayMs int, userIDs []int, scenarios []EventScenario,
	clock *atomic.Int64, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		event := Event{
			Type:      scenario.Type,
			Amount:    scenario.Amount,
			UserID:    userIDs[rand.Intn(len(userIDs))],
			Timestamp: clock.Add(1),
		}

		jsonData, err := json.Marshal(event)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+"/event", "application/json", bytes.NewReader(jsonData))
		result := TestResult{ResponseTime: time.Since(startTime)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Success = resp.StatusCode == http.StatusOK
		if result.Success {
			var body Response
			if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
				result.AlertCodes = body.AlertCodes
			}
		} else {
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		_ = resp.Body.Close()

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	pct := func(n int) float64 { return float64(n) / float64(stats.TotalRequests) * 100 }

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Accepted Events:     %d (%.1f%%)\n", stats.SuccessfulRequests, pct(stats.SuccessfulRequests))
	fmt.Printf("Timestamp Conflicts: %d (%.1f%%)\n", stats.Conflicts, pct(stats.Conflicts))
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests, pct(stats.FailedRequests))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- ALERTS -----------------")
	codes := make([]int, 0, len(stats.AlertCounts))
	for code := range stats.AlertCounts {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		fmt.Printf("Code %-5d: %d\n", code, stats.AlertCounts[code])
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count, pct(count))
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, pct(count))
		}
	}
	fmt.Println("================================================")
}
