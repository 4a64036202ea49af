package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	mu          sync.Mutex
	submissions map[string]*submissionCounts
}

type submissionCounts struct {
	accepted uint64
	rejected uint64
}

func New() *Collector {
	return &Collector{submissions: make(map[string]*submissionCounts)}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordSubmission counts one form submission. Rejected submissions failed
// validation.
func (c *Collector) RecordSubmission(form string, accepted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts, ok := c.submissions[form]
	if !ok {
		counts = &submissionCounts{}
		c.submissions[form] = counts
	}
	if accepted {
		counts.accepted++
	} else {
		counts.rejected++
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}

	c.mu.Lock()
	forms := make([]string, 0, len(c.submissions))
	for form := range c.submissions {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	submissions := make([]map[string]any, 0, len(forms))
	for _, form := range forms {
		counts := c.submissions[form]
		submissions = append(submissions, map[string]any{
			"form":     form,
			"accepted": counts.accepted,
			"rejected": counts.rejected,
		})
	}
	c.mu.Unlock()

	return map[string]any{
		"requestsTotal":    total,
		"errorsTotal":      errs,
		"rateLimitedTotal": limited,
		"avgDurationMs":    avg,
		"totalDurationMs":  totalMs,
		"submissions":      submissions,
	}
}
