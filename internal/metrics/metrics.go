package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvoicesGenerated counts invoices created by the recurring generator.
	InvoicesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billing_invoices_generated_total",
		Help: "Number of invoices generated from recurring templates",
	})

	// GenerationFailures counts per-template generation failures. The failed
	// template stays due and is retried on the next firing.
	GenerationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billing_generation_failures_total",
		Help: "Number of recurring templates whose generation failed and was rolled back",
	})

	// InvoicesSwept counts invoices transitioned to overdue by the sweeper.
	InvoicesSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billing_invoices_swept_total",
		Help: "Number of invoices marked overdue by the maintenance sweep",
	})

	// JobRuns counts scheduled job executions by job name and outcome.
	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_job_runs_total",
		Help: "Number of billing job runs by job and outcome",
	}, []string{"job", "outcome"})
)
