package dircache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// NewBoltStore opens the bolt database located in options.DataDir
func NewBoltStore(options BoltOptions) (*BoltStore, error) {
	if options.DataDir == "" {
		return nil, ErrDataDirRequired
	}
	if options.Options == nil {
		options.Options = bolt.DefaultOptions
	}

	dbdir := filepath.Join(options.DataDir, "db")
	if err := os.MkdirAll(dbdir, 0750); err != nil {
		return nil, fmt.Errorf("fail to create directory %s: %w", dbdir, err)
	}

	db, err := bolt.Open(filepath.Join(dbdir, dbFileName), 0600, options.Options)
	if err != nil {
		return nil, err
	}

	return &BoltStore{
		dataDir:         options.DataDir,
		db:              db,
		readOnlyEntries: options.ReadOnlyEntries || options.Options.ReadOnly,
	}, nil
}

// Close will close bolt database
func (b *BoltStore) Close() error {
	return b.db.Close()
}

// Directory returns the directory with the provided name.
// Its bucket is created if needed, unless the database is read only.
// readOnly flags fetched entries as read-only and rejects writes,
// it is forced when the store itself was opened with ReadOnlyEntries
func (b *BoltStore) Directory(name string, readOnly bool) (*BoltDirectory, error) {
	if name == "" {
		return nil, ErrDirectoryNameRequired
	}

	bucket := []byte(bucketPrefix + name)
	if !b.db.IsReadOnly() {
		if err := b.db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(bucket)
			return err
		}); err != nil {
			return nil, err
		}
	}

	return &BoltDirectory{name: name, bucket: bucket, store: b, readOnly: readOnly || b.readOnlyEntries}, nil
}

// Name returns the name of the directory
func (d *BoltDirectory) Name() string {
	return d.name
}

// IsReadOnly returns true when the directory rejects writes
func (d *BoltDirectory) IsReadOnly() bool {
	return d.readOnly
}

// FetchFromSource returns the record with the provided id.
// References are dropped when fetchReferences is false
func (d *BoltDirectory) FetchFromSource(id string, fetchReferences bool) (*Record, bool, error) {
	var record *Record
	err := d.store.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(d.bucket)
		if bucket == nil {
			return nil
		}
		value := bucket.Get([]byte(id))
		if value == nil {
			return nil
		}

		var err error
		record, err = UnmarshalRecord(value)
		return err
	})
	if err != nil || record == nil {
		return nil, false, err
	}

	if !fetchReferences {
		record.References = nil
	}
	if d.readOnly {
		record.SetReadOnly(true)
	}
	return record, true, nil
}

// CreateEntry stores a new record and returns its id.
// An id is generated when the record has none
func (d *BoltDirectory) CreateEntry(record *Record) (string, error) {
	if record == nil {
		return "", ErrNilRecord
	}
	if d.readOnly {
		return "", ErrReadOnlyDirectory
	}

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}

	err := d.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(d.bucket)
		if bucket.Get([]byte(id)) != nil {
			return ErrEntryAlreadyExists
		}
		return d.put(bucket, id, record)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateEntry replaces the record with the provided id
func (d *BoltDirectory) UpdateEntry(id string, record *Record) error {
	if record == nil {
		return ErrNilRecord
	}
	if id == "" {
		return ErrEntryIDRequired
	}
	if d.readOnly {
		return ErrReadOnlyDirectory
	}

	return d.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(d.bucket)
		if bucket.Get([]byte(id)) == nil {
			return ErrEntryNotFound
		}
		return d.put(bucket, id, record)
	})
}

// DeleteEntry removes the record with the provided id
func (d *BoltDirectory) DeleteEntry(id string) error {
	if d.readOnly {
		return ErrReadOnlyDirectory
	}

	return d.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(d.bucket)
		if bucket.Get([]byte(id)) == nil {
			return ErrEntryNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

// ListIDs returns the ids of all records of the directory
func (d *BoltDirectory) ListIDs() (ids []string, err error) {
	err = d.store.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(d.bucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return
}

// put encodes the record under the provided id
func (d *BoltDirectory) put(bucket *bolt.Bucket, id string, record *Record) error {
	value, err := MarshalRecord(&Record{ID: id, Fields: record.Fields, References: record.References})
	if err != nil {
		return err
	}
	return bucket.Put([]byte(id), value)
}
