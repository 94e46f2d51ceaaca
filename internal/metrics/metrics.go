// Package metrics holds the prometheus collectors of the API server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters recorded by the usecases. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ApplicationsSubmitted *prometheus.CounterVec
	ApplicationsRejected  *prometheus.CounterVec
	ResumeUploads         *prometheus.CounterVec
	StatusChanges         *prometheus.CounterVec
	PostingsPublished     prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ApplicationsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skillsyncer_applications_submitted_total",
			Help: "Detailed applications accepted, by match decision.",
		}, []string{"decision"}),
		ApplicationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skillsyncer_applications_refused_total",
			Help: "Apply attempts refused before storing, by reason.",
		}, []string{"reason"}),
		ResumeUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skillsyncer_resume_uploads_total",
			Help: "Resume uploads, by outcome.",
		}, []string{"outcome"}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "skillsyncer_application_status_changes_total",
			Help: "Application review status changes, by new status.",
		}, []string{"status"}),
		PostingsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "skillsyncer_postings_published_total",
			Help: "Internship postings created.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ApplicationsSubmitted,
		m.ApplicationsRejected,
		m.ResumeUploads,
		m.StatusChanges,
		m.PostingsPublished,
	)
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Submitted(decision string) {
	if m != nil {
		m.ApplicationsSubmitted.WithLabelValues(decision).Inc()
	}
}

func (m *Metrics) Refused(reason string) {
	if m != nil {
		m.ApplicationsRejected.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) Upload(outcome string) {
	if m != nil {
		m.ResumeUploads.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) StatusChanged(status string) {
	if m != nil {
		m.StatusChanges.WithLabelValues(status).Inc()
	}
}

func (m *Metrics) Published() {
	if m != nil {
		m.PostingsPublished.Inc()
	}
}
