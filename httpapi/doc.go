// Package httpapi exposes engine.ComputeFlow over a chi-routed JSON API:
// POST /v1/flow runs one computation against a request-scoped edge
// snapshot, GET /healthz reports liveness. Every request carries a
// google/uuid request ID attached to the structured logger for its
// lifetime ("EdgeDB is read-only for the duration of a
// computation" contract is satisfied by snapshotting before the call,
// not by any locking in this package).
package httpapi
