package taskrunner

import (
	"time"

	"github.com/Netflix/metrics-client-go/metrics"
)

// taggedReporter adds the function a task belongs to to every metric it records.
type taggedReporter struct {
	metrics     metrics.Reporter
	defaultTags map[string]string
}

func withTags(m metrics.Reporter, defaultTags map[string]string) metrics.Reporter {
	return &taggedReporter{metrics: m, defaultTags: defaultTags}
}

func (r *taggedReporter) Counter(name string, value int, tags map[string]string) {
	r.metrics.Counter(name, value, r.tags(tags))
}

func (r *taggedReporter) Gauge(name string, value int, tags map[string]string) {
	r.metrics.Gauge(name, value, r.tags(tags))
}

func (r *taggedReporter) Timer(name string, value time.Duration, tags map[string]string) {
	r.metrics.Timer(name, value, r.tags(tags))
}

func (r *taggedReporter) Flush() {
	r.metrics.Flush()
}

// tags merges the default tags with the given ones; given tags win.
func (r *taggedReporter) tags(tags map[string]string) map[string]string {
	merged := make(map[string]string, len(r.defaultTags)+len(tags))
	for k, v := range r.defaultTags {
		merged[k] = v
	}
	for k, v := range tags {
		merged[k] = v
	}
	return merged
}
