package charenc

import (
	"errors"
	"fmt"
)

// ErrorMode is the policy for bytes or runes a codec cannot handle.
// The zero value means "unset"; callers that need a concrete policy
// resolve it to Replace.
type ErrorMode int

const (
	ModeUnset ErrorMode = iota
	Strict
	Replace
)

var ErrBadErrorMode = errors.New("bad error mode")

// ParseErrorMode parses a policy name.
func ParseErrorMode(v string) (ErrorMode, error) {
	m, ok := map[string]ErrorMode{
		"strict":  Strict,
		"replace": Replace,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadErrorMode, v)
}

func (m ErrorMode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m ErrorMode) MarshalText() ([]byte, error) {
	switch m {
	case ModeUnset:
		return []byte(""), nil
	case Strict:
		return []byte("strict"), nil
	case Replace:
		return []byte("replace"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an error mode>", m)
	}
}

func (m *ErrorMode) UnmarshalText(d []byte) error {
	pm, err := ParseErrorMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}
