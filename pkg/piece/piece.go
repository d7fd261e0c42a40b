package piece

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the shape letter of a tetromino.
type Kind byte

const (
	KindI Kind = 'I'
	KindO Kind = 'O'
	KindT Kind = 'T'
	KindL Kind = 'L'
	KindJ Kind = 'J'
	KindS Kind = 'S'
	KindZ Kind = 'Z'
)

// DefaultKinds is the shape set pieces are drawn from unless configured otherwise.
var DefaultKinds = []Kind{KindI, KindO, KindT, KindL}

// String returns the shape letter.
func (k Kind) String() string {
	return string(rune(k))
}

// Valid reports whether k is one of the seven tetromino shapes.
func (k Kind) Valid() bool {
	switch k {
	case KindI, KindO, KindT, KindL, KindJ, KindS, KindZ:
		return true
	}
	return false
}

// ParseKinds converts a string of shape letters such as "IOTL" into kinds.
// Duplicates are rejected since they would skew the uniform draw.
func ParseKinds(s string) ([]Kind, error) {
	if s == "" {
		return nil, errors.New("piece: empty kind set")
	}

	kinds := make([]Kind, 0, len(s))
	seen := make(map[Kind]struct{}, len(s))
	for i := 0; i < len(s); i++ {
		k := Kind(s[i])
		if !k.Valid() {
			return nil, errors.Errorf("piece: unknown kind %q", s[i])
		}
		if _, dup := seen[k]; dup {
			return nil, errors.Errorf("piece: duplicate kind %q", s[i])
		}
		seen[k] = struct{}{}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Piece is one queued tetromino.
type Piece struct {
	Kind Kind
	ID   int64
}

// String formats the piece as "[K id]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}
