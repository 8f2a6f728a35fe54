// Package marker finds watcherknight annotations embedded in source-code
// comments. It recognizes the tag grammar inside any of a fixed set of
// single-line comment styles, resolves file-scope declarations against the
// repository, and filters annotations by relevance to a change set.
package marker
