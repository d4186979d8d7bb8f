package extrinsic

import "fmt"

type Kind string

const KindUnsupportedScheme Kind = "UnsupportedScheme"

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("extrinsic: %s: %s", e.Kind, e.Message) }

func errUnsupportedScheme(scheme byte) error {
	return &Error{Kind: KindUnsupportedScheme, Message: fmt.Sprintf("signature scheme %d is not ed25519 or sr25519", scheme)}
}
