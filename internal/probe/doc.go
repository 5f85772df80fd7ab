// Package probe runs a single iteration of a scenario against an environment
// and evaluates its checks. It is a dry run for validating scenario wiring
// before handing the scenario to the load-testing engine.
package probe
