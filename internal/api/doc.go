// Package api implements the HTTP handlers of the numerology service:
// account endpoints, public reading and pillar lookups, and the
// authenticated calculation history with its PDF export. Errors from the
// lower layers are mapped to status codes in errors.go.
package api
