package workload

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

type Summary struct {
	Ops    int
	Mean   time.Duration
	StdDev time.Duration
	P50    time.Duration
	P99    time.Duration
	Counts map[string]int
}

func opName(op string) string {
	name, _, _ := strings.Cut(op, " ")
	return name
}

func (rep *Report) Summarize() *Summary {
	sum := &Summary{Counts: make(map[string]int)}
	latencies := make([]float64, 0, rep.Results.Len())
	for res := range rep.Results.All() {
		latencies = append(latencies, float64(res.Elapsed))
		sum.Counts[opName(res.Op)]++
	}
	sum.Ops = len(latencies)
	if sum.Ops == 0 {
		return sum
	}

	mean, std := stat.MeanStdDev(latencies, nil)
	sum.Mean = time.Duration(mean)
	if sum.Ops > 1 {
		sum.StdDev = time.Duration(std)
	}
	sort.Float64s(latencies)
	sum.P50 = time.Duration(stat.Quantile(0.5, stat.Empirical, latencies, nil))
	sum.P99 = time.Duration(stat.Quantile(0.99, stat.Empirical, latencies, nil))
	return sum
}

// Slowest returns up to k results ordered from the slowest.
func (rep *Report) Slowest(k int) []Result {
	if k <= 0 {
		return nil
	}
	pq := priorityqueue.New[int, float64](priorityqueue.MaxHeap)
	byIndex := make([]Result, 0, rep.Results.Len())
	for res := range rep.Results.All() {
		pq.Put(len(byIndex), float64(res.Elapsed))
		byIndex = append(byIndex, res)
	}

	slowest := make([]Result, 0, k)
	for len(slowest) < k && pq.Len() > 0 {
		item := pq.Get()
		slowest = append(slowest, byIndex[item.Value])
	}
	return slowest
}

func (sum *Summary) String() string {
	s := new(strings.Builder)
	fmt.Fprintf(s, "Operations: %d\n", sum.Ops)
	fmt.Fprintf(s, "Mean: %v, std dev: %v\n", sum.Mean, sum.StdDev)
	fmt.Fprintf(s, "P50: %v, P99: %v\n", sum.P50, sum.P99)
	names := maps.Keys(sum.Counts)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(s, "%s: %d\n", name, sum.Counts[name])
	}
	return s.String()
}
