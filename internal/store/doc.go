// Package store provides the durable session store: a small key-value
// surface over a single SQLite file.
//
// All access is synchronous and local to one process. There is no
// cross-process arbitration; a second process writing the same file is
// only ever detected (see the monitor package), never prevented.
package store
