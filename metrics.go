package triehard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	buildModeSerial   = "serial"
	buildModeParallel = "parallel"
	buildModeLocal    = "local"

	queryModeSingle = "single"
	queryModeFanout = "fanout"
)

var buildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "triehard_builds_total",
	Help: "The total number of trie builds, by build mode.",
}, []string{"mode"})

var buildSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "triehard_build_seconds",
	Help:    "Wall-clock duration of trie builds, by build mode.",
	Buckets: prometheus.DefBuckets,
}, []string{"mode"})

var mergesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "triehard_merges_total",
	Help: "The total number of structural trie merges.",
})

var prefixQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "triehard_prefix_queries_total",
	Help: "The total number of prefix queries, by query mode. Fan-out queries also count one single-trie query per local trie.",
}, []string{"mode"})
