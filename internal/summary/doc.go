// Package summary presents the end-of-test summary produced by the
// load-testing engine. Every number printed here was aggregated by the engine;
// this package only reads it back, prints the fields a scenario asks for and
// persists the raw summary when the scenario keeps results.
package summary
