package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// KV is the durable string-keyed store contract. The selection engine
// depends on this interface, never on diskv directly, so tests can swap
// in an in-memory fake.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
}

// Load creates a KV backed by diskv using the provided config.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &kv{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type kv struct {
	d *diskv.Diskv
}

func (k *kv) Read(key string) ([]byte, error) {
	return k.d.Read(key)
}

func (k *kv) Write(key string, val []byte) error {
	return k.d.Write(key, val)
}

func (k *kv) Erase(key string) error {
	return k.d.Erase(key)
}

// flatTransform keeps every key at the base path root.
func flatTransform(string) []string {
	return []string{}
}
