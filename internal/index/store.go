package index

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store 是构建清单：记录数据源指纹和已写出的产物。
// 写出文件本身从不依赖它（每次构建都全量覆盖），它只负责
// changed/unchanged 统计和 watch 模式下的重建判断。
type Store struct {
	db *bolt.DB
}

type OpenOptions struct {
	Path string // e.g. ".awogen/manifest.db"
}

var ErrNotFound = errors.New("not found")

func Open(opt OpenOptions) (*Store, error) {
	if opt.Path == "" {
		return nil, errors.New("index: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(opt.Path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
