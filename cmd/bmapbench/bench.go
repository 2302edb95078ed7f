package main

import (
	"encoding/csv"
	"runtime"
	"strconv"
)

// BenchResult is one CSV row; Objects tracks GC pressure.
type BenchResult struct {
	Name      string
	Config    string
	Operation string
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// GetDetailedMem samples the heap after a forced GC so the figures
// reflect live data, not garbage awaiting collection.
func GetDetailedMem() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

// Record writes one result row to the CSV.
func Record(w *csv.Writer, res BenchResult) {
	w.Write([]string{
		res.Name,
		res.Config,
		res.Operation,
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
}
