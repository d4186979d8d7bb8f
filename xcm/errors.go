package xcm

import "fmt"

// Kind identifies the class of XCM decode failure.
type Kind string

const (
	KindUnsupportedVersion  Kind = "UnsupportedVersion"
	KindUnsupportedJunction Kind = "UnsupportedJunction"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("xcm: %s: %s", e.Kind, e.Message) }

func errUnsupportedVersion(tag byte) error {
	return &Error{Kind: KindUnsupportedVersion, Message: fmt.Sprintf("versioned tag %d is not V3 or V4", tag)}
}

func errUnsupportedJunction(tag byte) error {
	return &Error{Kind: KindUnsupportedJunction, Message: fmt.Sprintf("junction tag %d is not supported", tag)}
}
