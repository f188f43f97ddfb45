// Package daily implements the daily challenge: one deterministic secret per
// (date, language, length), shared by every player, and a persisted result
// table with a per-day leaderboard.
package daily

import (
	"encoding/binary"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index into a pool of poolLen secrets for
// the given day, language and length. The index is a keyed BLAKE2b-256 of
// "date|lang|length" reduced modulo poolLen, so players cannot predict it
// without the salt. Salts longer than a BLAKE2b key are hashed down first.
func WordIndex(date time.Time, salt, lang string, length, poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// Only reachable with an oversized key, handled above.
		panic(err)
	}
	h.Write([]byte(DateKey(date) + "|" + lang + "|" + strconv.Itoa(length)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(poolLen))
}

// Pick returns the secret of the day from pool along with its index.
// The pool is used as given; callers pass it in a stable order.
func Pick(pool []string, date time.Time, salt, lang string, length int) (string, int) {
	if len(pool) == 0 {
		return "", 0
	}
	idx := WordIndex(date, salt, lang, length, len(pool))
	return pool[idx], idx
}
