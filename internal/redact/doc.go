// Package redact scrubs likely secrets from diff text before it is handed
// to the external judge.
package redact
