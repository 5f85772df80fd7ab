// Package selector picks the endpoint a virtual user requests next.
//
//   - Weighted Random: independent draws, frequency proportional to weight
//   - Weighted Round Robin: smooth deterministic interleaving by weight
//
// Both work on the same ordered []Endpoint list declared by a scenario.
package selector
