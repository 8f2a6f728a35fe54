// Package cache is an optional on-disk store for judge responses, keyed by a
// hash of the model and prompt. It lets repeated runs over an unchanged diff
// skip identical claude invocations. Disabled unless configured.
package cache
