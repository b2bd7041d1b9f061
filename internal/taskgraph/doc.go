// Package taskgraph defines the in-memory task graph shared by the plan
// tooling, along with the document parser and serializer that convert
// between the graph and the plain-text plan format.
//
// A plan document is a phased checklist:
//
//	# Auth rework
//
//	## Phase 1: Foundations
//
//	- [ ] 1.1 Extract token validation
//	  - Status: pending
//	  - Priority: 1
//	  - Files: internal/auth/token.go
//	  Description text for the task.
//
// Parse converts that text into a Graph; Serialize is its structural
// inverse. Both are pure functions of their input, so the document on
// disk remains the only durable state. Graph mutations belong to the
// transition package; read-only dependency queries to the graph package.
package taskgraph
