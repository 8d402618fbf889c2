package xkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPath = errors.New("xkey: invalid derivation path")

// Step is one derivation: a branch and an index. Indices carry no branch bits; 0 and
// 0xFFFFFFFF are ordinary on both branches.
type Step struct {
	Branch Branch
	Index  uint32
}

func (s Step) String() string {
	if s.Branch == Hardened {
		return strconv.FormatUint(uint64(s.Index), 10) + "H"
	}
	return strconv.FormatUint(uint64(s.Index), 10)
}

// Path is a sequence of derivation steps applied from a root key.
type Path []Step

// String formats p as "m/0/1H/2".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, s := range p {
		sb.WriteByte('/')
		sb.WriteString(s.String())
	}
	return sb.String()
}

// ParsePath parses "m/0/1H/2'". A trailing H, h or ' marks a hardened step. "m" alone is the
// empty path.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		step := Step{Branch: Normal}
		if n := len(part); n > 0 {
			switch part[n-1] {
			case 'H', 'h', '\'':
				step.Branch = Hardened
				part = part[:n-1]
			}
		}
		if part == "" {
			return nil, fmt.Errorf("%w: empty index in %q", ErrInvalidPath, s)
		}
		idx, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, part, err)
		}
		step.Index = uint32(idx)
		path = append(path, step)
	}
	return path, nil
}

// DerivePath applies each step of path in order starting at root. An empty path returns a copy
// of root.
func DerivePath(root *ExtendedKey, pw Password, path Path) ExtendedKey {
	pw.mustBeSet()
	key := *root
	for _, step := range path {
		key = Derive(&key, pw, step.Branch, step.Index)
	}
	return key
}
