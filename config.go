package arbor

// Config configures a binary tree.
type Config[T any] struct {
	// Less is the ordering comparator used by Insert and InsertDistinct.
	// Less(item, data) == true routes the descent into the left subtree.
	Less func(a, b T) bool

	// Identity decides whether two payloads are the same item, used by
	// InsertDistinct for deduplication. Identity is distinct from ordering
	// equality: the default compares payloads with Go interface equality
	// (`any(a) == any(b)`), which for pointer payloads is pointer identity.
	Identity func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Identity == nil {
		cfg.Identity = func(a, b T) bool {
			return any(a) == any(b)
		}
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Less == nil {
		return ErrInvalidConfig
	}
	return nil
}
