// Command bmapbench loads each ordered structure with sequential keys,
// runs mixed read/write and full-scan workloads against it, and writes
// per-operation latency and memory figures to CSV plus a latency chart.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/btree-map-bench/bmap/index"
	"github.com/btree-map-bench/bmap/index/gbtree"
	"github.com/btree-map-bench/bmap/index/listindex"
	"github.com/btree-map-bench/bmap/index/lsm"
	"github.com/btree-map-bench/bmap/index/ordered"
)

func main() {
	var (
		out   = flag.String("out", "results.csv", "CSV output path")
		chart = flag.String("chart", "results.png", "latency chart path, empty to skip")
		scale = flag.Int("scale", 1000000, "number of keys in the initial load")
	)
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Write([]string{"Structure", "Config", "TestType", "LatencyNs", "MemMB", "HeapObjects"})

	orders := []int{8, 32, 128}

	var results []BenchResult
	for _, order := range orders {
		ix, err := ordered.New(order)
		if err != nil {
			log.Fatalf("bptree map order %d: %v", order, err)
		}
		results = append(results, runSuite(w, "BPlusTreeMap", order, ix, *scale)...)
	}
	for _, degree := range orders {
		results = append(results, runSuite(w, "GoogleBTree", degree, gbtree.New(degree), *scale)...)
	}

	// Linear inserts; a full-scale load would dominate the run.
	results = append(results, runSuite(w, "SortedList", 0, listindex.New(), *scale/100)...)

	dir, err := os.MkdirTemp("", "bmapbench-pebble")
	if err != nil {
		log.Fatalf("pebble dir: %v", err)
	}
	defer os.RemoveAll(dir)
	l, err := lsm.Open(dir)
	if err != nil {
		log.Fatalf("pebble open: %v", err)
	}
	results = append(results, runSuite(w, "Pebble", 0, l, *scale)...)

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	if *chart != "" {
		if err := renderLatencyChart(results, *chart); err != nil {
			log.Fatalf("render chart: %v", err)
		}
	}
	fmt.Println("Benchmark complete. Data ready for analysis.")
}

func runSuite(w *csv.Writer, name string, conf int, ix index.Index, n int) []BenchResult {
	fmt.Printf("Testing %s (config %d, n=%d)\n", name, conf, n)
	confStr := strconv.Itoa(conf)
	defer ix.Close()

	var suite []BenchResult
	record := func(res BenchResult) {
		Record(w, res)
		suite = append(suite, res)
	}

	// 1. Pure insert (initial load)
	start := time.Now()
	for k := 0; k < n; k++ {
		ix.Insert(int64(k), []byte("v"))
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(n)

	// Sample memory after load but before the workloads.
	stats := GetDetailedMem()
	record(BenchResult{
		Name:      name,
		Config:    confStr,
		Operation: "Load_Sequential",
		LatencyNs: insertLatency,
		MemMB:     stats.AllocMB,
		Objects:   stats.HeapObjects,
	})

	// 2. OLTP (read heavy)
	start = time.Now()
	ExecuteWorkload(ix, OLTP, n/2)
	record(BenchResult{name, confStr, "Workload_OLTP", time.Since(start).Nanoseconds() / int64(n/2), GetDetailedMem().AllocMB, 0})

	// 3. OLAP (write heavy)
	start = time.Now()
	ExecuteWorkload(ix, OLAP, n/2)
	record(BenchResult{name, confStr, "Workload_OLAP", time.Since(start).Nanoseconds() / int64(n/2), GetDetailedMem().AllocMB, 0})

	// 4. Full ordered scans
	const scans = 10
	start = time.Now()
	ExecuteWorkload(ix, Scan, scans)
	record(BenchResult{name, confStr, "Workload_Scan", time.Since(start).Nanoseconds() / scans, GetDetailedMem().AllocMB, 0})

	return suite
}
