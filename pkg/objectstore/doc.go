// Package objectstore defines the byte-oriented object storage port used
// for holograph key material and uploaded record files.
//
// The production deployment points the store at a mounted bucket; tests
// use an in-memory filesystem. Paths are deterministic and chosen by the
// callers (see pkg/keys and pkg/records).
package objectstore
