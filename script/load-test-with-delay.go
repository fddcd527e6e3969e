package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"sync"
	"time"
)

// Buyer is the buyer part of a purchase payload
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// Purchase represents the purchase payload
type Purchase struct {
	Numbers       []int  `json:"numbers"`
	Buyer         Buyer  `json:"buyer"`
	PaymentMethod string `json:"paymentMethod"`
	TransactionID string `json:"transactionId"`
}

// occupiedResponse is the body of the occupied-numbers endpoint
type occupiedResponse struct {
	Numbers []int `json:"numbers"`
	Count   int   `json:"count"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	Conflict     bool
	Numbers      []int
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	ConflictRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	SoldNumbers        map[int]int // successful sales per number, must never exceed 1
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of purchases to attempt")
	raffleID := flag.Int("raffle", 1, "Raffle to buy from")
	maxNumber := flag.Int("max", 100, "Highest ticket number to pick from, keep it small to force collisions")
	perPurchase := flag.Int("k", 2, "Numbers per purchase")
	paymentMethod := flag.String("pm", "transferencia", "Payment method code")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing raffle %d with numbers 1..%d\n", *raffleID, *maxNumber)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total purchases: %d of %d numbers each\n", *totalRequests, *perPurchase)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		SoldNumbers:     make(map[int]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	purchaseURL := fmt.Sprintf("%s/api/raffles/%d/purchases", *baseURL, *raffleID)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, purchaseURL, *paymentMethod, *delayMs, *maxNumber, *perPurchase, jobs, results)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
				for _, n := range result.Numbers {
					stats.SoldNumbers[n]++
				}
			case result.Conflict:
				stats.ConflictRequests++
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
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.ConflictRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	checkOccupied(fmt.Sprintf("%s/api/raffles/%d/numbers/occupied", *baseURL, *raffleID), stats)
}

func worker(id int, purchaseURL, paymentMethod string, delayMs, maxNumber, perPurchase int,
	jobs <-chan int, results chan<- TestResult) {

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		numbers := pickNumbers(maxNumber, perPurchase)
		purchase := Purchase{
			Numbers: numbers,
			Buyer: Buyer{
				Name:  fmt.Sprintf("Load Tester %d", id),
				Email: fmt.Sprintf("load-%d-%d@example.com", id, jobID),
				Phone: "3000000000",
				City:  "Caracas",
			},
			PaymentMethod: paymentMethod,
			TransactionID: fmt.Sprintf("load-%d-%d-%d", id, jobID, rand.Intn(1000000)),
		}

		jsonData, err := json.Marshal(purchase)
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}

		req, err := http.NewRequest(http.MethodPost, purchaseURL, bytes.NewBuffer(jsonData))
		if err != nil {
			results <- TestResult{Error: err}
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		startTime := time.Now()
		resp, err := client.Do(req)
		result := TestResult{
			ResponseTime: time.Since(startTime),
			Numbers:      numbers,
		}

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode == http.StatusCreated
			result.Conflict = resp.StatusCode == http.StatusConflict
			if !result.Success && !result.Conflict {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

// pickNumbers returns k distinct numbers in [1, max]
func pickNumbers(max, k int) []int {
	k = min(k, max)
	seen := make(map[int]bool, k)
	numbers := make([]int, 0, k)
	for len(numbers) < k {
		n := rand.Intn(max) + 1
		if seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	return numbers
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	handledTps := float64(stats.SuccessfulRequests+stats.ConflictRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Sales:    %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Number Conflicts:    %d (%.1f%%)\n", stats.ConflictRequests,
		float64(stats.ConflictRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Sales per second:    %.2f\n", rawTps)
	fmt.Printf("Handled per second:  %.2f (sales plus clean conflicts)\n", handledTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}

// checkOccupied compares the numbers reported sold by the API with the successful responses
func checkOccupied(url string, stats *TestStats) {
	fmt.Println("\n================= CONSISTENCY =================")

	doubleSold := 0
	for number, count := range stats.SoldNumbers {
		if count > 1 {
			doubleSold++
			fmt.Printf("Number %d was sold %d times\n", number, count)
		}
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("Could not fetch occupied numbers: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var occupied occupiedResponse
	if err := json.NewDecoder(resp.Body).Decode(&occupied); err != nil {
		fmt.Printf("Could not decode occupied numbers: %v\n", err)
		return
	}

	missing := 0
	for number := range stats.SoldNumbers {
		if !slices.Contains(occupied.Numbers, number) {
			missing++
		}
	}

	if doubleSold == 0 && missing == 0 {
		fmt.Printf("✅ No number sold twice, %d occupied numbers reported\n", occupied.Count)
	} else {
		fmt.Printf("❌ %d numbers sold twice, %d sold numbers missing from the occupied list\n", doubleSold, missing)
	}
	fmt.Println("================================================")
}
