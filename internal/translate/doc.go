// Package translate is the resilient translation orchestrator. It turns a
// raw text string plus a provider/model selection into a Japanese
// translation while enforcing input validation, a single overall time
// budget, quota-aware retry with backoff, and ordered fallback across
// alternative models.
package translate
