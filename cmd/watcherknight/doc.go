// Watcherknight is a CLI that validates invariant annotations embedded in
// source comments against the current git diff.
//
// Annotations open with <watcher-knight> or <wk>, may name the invariant,
// declare which files it covers, and carry a free-form instruction. Each
// annotation relevant to the diff is handed to an AI judge that inspects the
// repository and returns a verdict. The run exits non-zero when any invariant
// is violated, making it suitable as a CI gate or git pre-commit hook.
//
// Usage:
//
//	watcherknight run                 # validate watchers relevant to the diff
//	watcherknight run --all           # validate every watcher
//	watcherknight run --commit <ref>  # diff against a specific ref
//	watcherknight list                # list discovered watchers
//	watcherknight hook install        # install the git pre-commit hook
package main
