package service

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

// seqIDs hands out "id-1", "id-2", ... in call order.
type seqIDs struct {
	n atomic.Int64
}

func (s *seqIDs) Generate() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost, 2)
}

func ptr[T any](v T) *T { return &v }
