// Package judge dispatches annotation validations to an external judgment
// process and aggregates the verdicts into a report.
//
// Each relevant annotation becomes one independent task submitted to a
// bounded worker pool. A task renders a prompt, runs the judge, parses the
// structured verdict from its output, and reports exactly one Verdict over a
// shared results channel. Invocation failures and malformed responses become
// failing verdicts; they never abort the run.
package judge
