package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// Hasher produces and verifies bcrypt credential hashes. Bcrypt is CPU-bound
// and deliberately slow, so the number of hashes computed at once is bounded
// by a weighted semaphore; a burst of logins queues here instead of starving
// unrelated requests. Once started, a hash or verification always runs to
// completion.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher builds a hasher with the given bcrypt cost and concurrency bound.
// Cost validity is checked by config at startup.
func NewHasher(cost, maxConcurrent int) *Hasher {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Hash produces a salted one-way digest of the password. Two calls with the
// same input yield different strings because of the embedded random salt.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash. A malformed
// stored hash verifies as false rather than erroring.
func (h *Hasher) Verify(ctx context.Context, hashed, password string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
