package index

import (
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

type SourceRecord struct {
	Slug    string    `json:"slug"`
	Path    string    `json:"path"`
	Hash    string    `json:"hash"`
	ModTime time.Time `json:"mod_time"`
}

type ArtifactRecord struct {
	Path    string    `json:"path"`
	Hash    string    `json:"hash"`
	Size    int       `json:"size"`
	BuiltAt time.Time `json:"built_at"`
}

// RebuildSources 整桶替换数据源记录，和全量构建的语义对齐
func (s *Store) RebuildSources(records []SourceRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		_ = tx.DeleteBucket(bSource)
		b, err := tx.CreateBucket(bSource)
		if err != nil {
			return err
		}
		for _, rec := range records {
			if rec.Slug == "" {
				continue
			}
			raw, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(rec.Slug), raw); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) GetSource(slug string) (SourceRecord, error) {
	var rec SourceRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bSource)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	return rec, err
}

func (s *Store) PutArtifact(rec ArtifactRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bArtifact)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put([]byte(rec.Path), raw)
	})
}

func (s *Store) GetArtifact(relPath string) (ArtifactRecord, error) {
	var rec ArtifactRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bArtifact)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(relPath))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	return rec, err
}

func (s *Store) ListArtifacts() ([]ArtifactRecord, error) {
	var out []ArtifactRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bArtifact)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var rec ArtifactRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			out = append(out, rec)
			return nil
		})
	})
	return out, err
}

func (s *Store) PutRenderHash(hash string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bState)
		if err != nil {
			return err
		}
		return b.Put(kRenderHash, []byte(hash))
	})
}

func (s *Store) GetRenderHash() (string, error) {
	var hash string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bState)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get(kRenderHash)
		if v == nil {
			return ErrNotFound
		}
		hash = string(v)
		return nil
	})
	return hash, err
}
