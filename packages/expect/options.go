package expect

import (
	"errors"
	"fmt"

	"github.com/abdul-hamid-achik/expect/packages/equal"
	"github.com/abdul-hamid-achik/expect/packages/values"
)

// Message replaces the default failure message of a predicate. Each %s is
// substituted with the next value the predicate reports, the subject first.
type Message string

// Comparator decides whether two values are the same for the containment
// predicates. The default is equal.Equal.
type Comparator func(a, b any) bool

// ContainOption is an optional argument of the containment predicates:
// a Comparator or a Message.
type ContainOption interface {
	containOption()
}

func (Message) containOption()    {}
func (Comparator) containOption() {}

var errTooManyMessages = errors.New("at most one message may be given")

// messageOrDefault returns the single custom message in msg, or def.
func messageOrDefault(msg []Message, def string) (string, error) {
	switch len(msg) {
	case 0:
		return def, nil
	case 1:
		return string(msg[0]), nil
	}
	return "", fmt.Errorf("%w, got %d", errTooManyMessages, len(msg))
}

type containOptions struct {
	compare values.CompareFunc
	message []Message
}

func resolveContainOptions(opts []ContainOption) (containOptions, error) {
	resolved := containOptions{compare: equal.Equal}
	hasComparator := false
	for _, opt := range opts {
		switch o := opt.(type) {
		case Comparator:
			if hasComparator {
				return resolved, errors.New("at most one comparator may be given")
			}
			if o == nil {
				return resolved, errors.New("the comparator must not be nil")
			}
			hasComparator = true
			resolved.compare = values.CompareFunc(o)
		case Message:
			if len(resolved.message) > 0 {
				return resolved, errTooManyMessages
			}
			resolved.message = append(resolved.message, o)
		default:
			return resolved, fmt.Errorf("unsupported option %T", opt)
		}
	}
	return resolved, nil
}

func (o containOptions) template(def string) string {
	tmpl, _ := messageOrDefault(o.message, def)
	return tmpl
}
