// Package harness executes conformance scenarios against a fresh store.
//
// A scenario is a YAML file describing a sequence of operations (add, get,
// query, ask, delete) with expected outcomes and match sets. The harness
// runs the sequence against a temporary database with a stepping clock, so
// every run of the same scenario produces the same trace. Traces serialize
// to canonical JSON and compare against golden files, which makes behavior
// drift visible as a one-line golden diff.
package harness
