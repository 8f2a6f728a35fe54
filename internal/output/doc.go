// Package output renders validation reports in the supported formats.
package output
