package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"momentum-cli/internal/model"
)

// randomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func randomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// NewID generates a fresh unique id for the document. Prefixes keep ids
// readable: goal-xxx, task-xxx, sub-xxx, note-xxx.
func NewID(d *model.Document, prefix string) string {
	for i := 0; i < 10; i++ {
		id, err := randomID(prefix)
		if err != nil {
			break
		}
		if !idExists(d, id) {
			return id
		}
	}
	// Extremely unlikely fallback (crypto/rand failure or repeated collision).
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func idExists(d *model.Document, id string) bool {
	if _, ok := d.Goals[id]; ok {
		return true
	}
	if _, ok := d.Tasks[id]; ok {
		return true
	}
	if _, ok := d.Subtasks[id]; ok {
		return true
	}
	if _, ok := d.Notes[id]; ok {
		return true
	}
	return false
}
