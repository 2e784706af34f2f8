package cache

type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

type Cache[T any] interface {
	// getOrClaim returns the entry for key, or claims the key for the caller
	// if no entry exists. A claimed entry is invalid until set.
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	wait()

	// Delete drops the entry for key. Used both for claim cleanup and for
	// explicit invalidation after catalog writes.
	Delete(key string)
}
