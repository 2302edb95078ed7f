package main

import (
	"math/rand"

	"github.com/btree-map-bench/bmap/index"
)

type WorkloadType string

const (
	OLTP WorkloadType = "OLTP (90/10)"
	OLAP WorkloadType = "OLAP (10/90)"
	Scan WorkloadType = "Full Scan"
)

// ExecuteWorkload runs a mixed distribution of ops against the index.
func ExecuteWorkload(ix index.Index, wType WorkloadType, ops int) {
	for i := 0; i < ops; i++ {
		choice := rand.Intn(100)
		key := int64(rand.Intn(ops))

		switch wType {
		case OLTP:
			if choice < 90 {
				_, _ = ix.Get(key)
			} else {
				ix.Insert(key, []byte("x"))
			}
		case OLAP:
			if choice < 10 {
				_, _ = ix.Get(key)
			} else {
				ix.Insert(key, []byte("x"))
			}
		case Scan:
			it, _ := ix.Scan()
			if it != nil {
				for it.Next() {
				}
				it.Close()
			}
		}
	}
}
