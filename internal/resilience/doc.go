// Package resilience groups the failure-handling building blocks used at the
// process edges: retry with exponential backoff for startup dependencies and
// a circuit breaker for calls against the content API.
package resilience
