// Package kv provides the synchronous string-keyed media the account
// store persists into: a plain get/set/remove contract with text
// values, matching the browser storage the stored shape originates
// from.
package kv

import "errors"

var ErrKeyNotFound = errors.New("key not found")

// Store is a synchronous key-value medium. Set and Delete are durable
// before they return, as far as the medium can make them.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
