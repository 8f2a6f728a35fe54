// Package cli wires the watcherknight command tree: scanning the repository
// for annotations, dispatching validations, and managing config, cache, and
// the git hook.
package cli
