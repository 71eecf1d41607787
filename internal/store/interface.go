package store

// ValueStore persists single plain-text values under fixed keys.
// Write overwrites the previous value in full.
type ValueStore interface {
	// Read returns ErrRecordNotFound when nothing is stored under key.
	Read(key string) (string, error)
	Write(key, value string) error
	Close() error
}
