package dircache

import (
	bolt "go.etcd.io/bbolt"
)

const (
	// dbFileName is the name of the database file
	dbFileName string = "dircache.db"

	// bucketPrefix is prepended to the directory name to build its bucket name
	bucketPrefix string = "dircache_"
)

// BoltOptions hold all requirements to open a BoltStore
type BoltOptions struct {
	// DataDir is the default data directory that will be used to store all data on the disk. It's required
	DataDir string

	// Options hold all bolt options.
	// Default to bolt.DefaultOptions
	Options *bolt.Options

	// ReadOnlyEntries when set to true flags all fetched entries as read-only
	// and rejects all writes
	ReadOnlyEntries bool
}

// BoltStore is a directory backend storing records in bbolt,
// one bucket per directory
type BoltStore struct {
	// dataDir is the default data directory that will be used to store all data on the disk
	dataDir string

	// db allows us to manipulate the k/v database
	db *bolt.DB

	// readOnlyEntries flags all fetched entries as read-only
	readOnlyEntries bool
}

// BoltDirectory is a single directory of a BoltStore.
// It implements Backend[*Record]
type BoltDirectory struct {
	// name of the directory
	name string

	// bucket is the bolt bucket holding the directory records
	bucket []byte

	// store is the BoltStore owning the directory
	store *BoltStore

	// readOnly flags fetched entries as read-only and rejects writes
	readOnly bool
}
