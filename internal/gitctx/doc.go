// Package gitctx is the version-control and filesystem collaborator: it
// shells out to git for diffs and changed-file lists, and walks the working
// tree to find scannable text files.
package gitctx
