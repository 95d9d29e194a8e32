// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trivia",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	QuizQuestionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_questions_served_total",
		Help:      "Quiz questions handed out.",
	})

	QuizExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "quiz_exhausted_total",
		Help:      "Quiz calls that found no unasked question left.",
	})

	QuestionMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "question_mutations_total",
		Help:      "Questions created, deleted or imported.",
	}, []string{"op"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Name:      "snapshot_cache_lookups_total",
		Help:      "Snapshot cache lookups by kind and result.",
	}, []string{"kind", "result"})
)

// Mutation op labels.
const (
	OpCreate = "create"
	OpDelete = "delete"
	OpImport = "import"
)
