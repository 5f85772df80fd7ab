// Package scenario defines the request patterns handed to the load-testing
// engine: ramp stages, pass/fail thresholds, the requests one virtual-user
// iteration makes, the checks applied to each response, and how the engine's
// end-of-test summary is presented.
//
// Built-in scenarios:
//
//   - smoke:  minimal load, verifies endpoints are reachable
//   - load:   typical traffic against a weighted endpoint mix
//   - stress: ramps past normal capacity to find the breaking point
//   - spike:  sudden 10x surge to exercise autoscaling
package scenario
