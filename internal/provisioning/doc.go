// Package provisioning turns a project.Request into side effects.
//
// # Core Types
//
// Step is one named action guarded by a predicate over the request.
// DefaultPlan returns the fixed step order: generate the project, install
// each selected add-on, create the folder layout.
// Pipeline runs steps sequentially and stops at the first failure, which is
// reported as a *StepError inside the returned Outcome.
// Context carries the request, settings, executor and observer.
//
// Progress is reported through Observer events; ConsoleObserver renders them
// for the user, LogObserver sends them to logr and Metrics records them in a
// Prometheus registry.
package provisioning
