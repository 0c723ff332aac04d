// Package store provides a thin bbolt wrapper for chartspec's local chart
// library.
//
// Charts are saved explicitly by name and read back by name or id. A saved
// document is the canonical compact JSON of the chart, never the
// browser-ready form, so every stored document decodes again.
//
// Buckets:
//
//	charts  chart records keyed by id
//	names   name → id index
//	_meta   schema version, created_at
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/pkg/chart"
)

// Current schema version. Bump when bucket layout or key format changes.
const schemaVersion = 1

// Bucket name constants.
var (
	bucketCharts   = []byte("charts")
	bucketNames    = []byte("names")
	bucketInternal = []byte("_meta")
)

// AllBuckets lists every top-level bucket for stats and clear operations.
var AllBuckets = []string{"charts", "names"}

// ErrEmptyName is returned when saving a chart without a name.
var ErrEmptyName = errors.New("chart name must not be empty")

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt database at path.
// Parent directories are created automatically.
// Runs schema migrations on every open.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the filesystem path of the open database.
func (s *Store) Path() string {
	return s.db.Path()
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCharts, bucketNames, bucketInternal} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketInternal)
		if meta.Get([]byte("schema_version")) == nil {
			if err := meta.Put([]byte("schema_version"), []byte(fmt.Sprintf("%d", schemaVersion))); err != nil {
				return err
			}
			if err := meta.Put([]byte("created_at"), []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
				return err
			}
		}
		return nil
	})
}

// ─── Charts ───────────────────────────────────────────────────────────────────

// Save stores c under name. Saving over an existing name keeps the record's
// id and creation time and replaces the document.
func (s *Store) Save(name string, c *chart.Chart) (model.ChartRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ChartRecord{}, ErrEmptyName
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return model.ChartRecord{}, fmt.Errorf("encoding chart %s: %w", name, err)
	}

	now := time.Now().UTC()
	rec := model.ChartRecord{
		Name:      name,
		Series:    c.SeriesCount(),
		Document:  doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		charts, names := tx.Bucket(bucketCharts), tx.Bucket(bucketNames)
		if id := names.Get([]byte(name)); id != nil {
			var prev model.ChartRecord
			if v := charts.Get(id); v != nil {
				if err := json.Unmarshal(v, &prev); err != nil {
					return fmt.Errorf("decoding record %s: %w", id, err)
				}
				rec.CreatedAt = prev.CreatedAt
			}
			rec.ID = string(id)
		} else {
			rec.ID = uuid.NewString()
		}

		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		if err := charts.Put([]byte(rec.ID), b); err != nil {
			return err
		}
		return names.Put([]byte(name), []byte(rec.ID))
	})
	if err != nil {
		return model.ChartRecord{}, err
	}
	return rec, nil
}

// Get retrieves a record by name, falling back to id.
// Returns (rec, true, nil) if found, (zero, false, nil) if not found.
func (s *Store) Get(ref string) (model.ChartRecord, bool, error) {
	var rec model.ChartRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		v := lookup(tx, ref)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return rec, false, err
	}
	return rec, rec.ID != "", nil
}

// List returns all records sorted by name.
func (s *Store) List() ([]model.ChartRecord, error) {
	var recs []model.ChartRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCharts).ForEach(func(k, v []byte) error {
			var r model.ChartRecord
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("decoding record %s: %w", k, err)
			}
			recs = append(recs, r)
			return nil
		})
	})
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, err
}

// Delete removes a record by name or id. It reports whether anything was
// removed.
func (s *Store) Delete(ref string) (bool, error) {
	var found bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		v := lookup(tx, ref)
		if v == nil {
			return nil
		}
		var rec model.ChartRecord
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		found = true
		if err := tx.Bucket(bucketNames).Delete([]byte(rec.Name)); err != nil {
			return err
		}
		return tx.Bucket(bucketCharts).Delete([]byte(rec.ID))
	})
	return found, err
}

// lookup resolves ref as a name first, then as an id.
func lookup(tx *bolt.Tx, ref string) []byte {
	charts := tx.Bucket(bucketCharts)
	if id := tx.Bucket(bucketNames).Get([]byte(ref)); id != nil {
		return charts.Get(id)
	}
	return charts.Get([]byte(ref))
}

// ─── Stats & Maintenance ──────────────────────────────────────────────────────

// BucketStats holds row count and byte size for a single bucket.
type BucketStats struct {
	Name  string
	Count int
	Bytes int64
}

// Stats returns row counts and approximate sizes for all buckets, in
// AllBuckets order.
func (s *Store) Stats() ([]BucketStats, error) {
	var stats []BucketStats
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range AllBuckets {
			b := tx.Bucket([]byte(name))
			if b == nil {
				continue
			}
			var count int
			var bytes int64
			b.ForEach(func(k, v []byte) error {
				count++
				bytes += int64(len(k) + len(v))
				return nil
			})
			stats = append(stats, BucketStats{Name: name, Count: count, Bytes: bytes})
		}
		return nil
	})
	return stats, err
}

// ClearBucket deletes all entries in the named bucket.
func (s *Store) ClearBucket(name string) error {
	bname := []byte(name)
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bname); err != nil {
			return fmt.Errorf("clearing bucket %s: %w", name, err)
		}
		_, err := tx.CreateBucket(bname)
		return err
	})
}

// ClearAll deletes every saved chart.
func (s *Store) ClearAll() error {
	for _, name := range AllBuckets {
		if err := s.ClearBucket(name); err != nil {
			return err
		}
	}
	return nil
}

// Compact rewrites the database into a fresh file and swaps it in, returning
// the file size before and after. bbolt never shrinks a file on its own.
func (s *Store) Compact() (before, after int64, err error) {
	path := s.db.Path()
	fi, err := os.Stat(path)
	if err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	before = fi.Size()

	tmp := path + ".compact"
	_ = os.Remove(tmp)
	dst, err := bolt.Open(tmp, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", tmp, err)
	}
	if err := bolt.Compact(dst, s.db, 1<<20); err != nil {
		dst.Close()
		os.Remove(tmp)
		return 0, 0, fmt.Errorf("copying data: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmp)
		return 0, 0, err
	}

	if err := s.db.Close(); err != nil {
		return 0, 0, err
	}
	if err := os.Rename(tmp, path); err != nil {
		return 0, 0, fmt.Errorf("replacing %s: %w", path, err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return 0, 0, fmt.Errorf("reopening %s: %w", path, err)
	}
	s.db = db

	if fi, err = os.Stat(path); err != nil {
		return before, 0, err
	}
	return before, fi.Size(), nil
}
