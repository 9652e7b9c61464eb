package focustimer

import "time"

type ExistingRecord[T ~string] struct {
	ID        T
	CreatedAt time.Time
}

func NewExistingRecord[T ~string](id string) ExistingRecord[T] {
	return ExistingRecord[T]{
		ID:        T(id),
		CreatedAt: time.Now(),
	}
}
