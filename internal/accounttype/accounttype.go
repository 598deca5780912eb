package accounttype

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a string is not a known account type.
var ErrUnknownType = errors.New("unknown account type")

// Type is the kind of account an embedded wallet exposes for an address.
type Type string

const (
	SmartAccount Type = "smartAccount"
	EOA          Type = "eoa"
)

// Parse converts user input ("smartAccount", "smart-account", "eoa", ...) to a Type.
func Parse(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smartaccount", "smart-account", "smart_account", "smart":
		return SmartAccount, nil
	case "eoa":
		return EOA, nil
	}
	return "", fmt.Errorf("%w: %q (want smartAccount or eoa)", ErrUnknownType, s)
}

// Valid reports whether t is one of the known account types.
func (t Type) Valid() bool {
	return t == SmartAccount || t == EOA
}

// Label is the human-readable name of t.
func (t Type) Label() string {
	switch t {
	case SmartAccount:
		return "Smart Account"
	case EOA:
		return "EOA"
	case "":
		return "—"
	}
	return string(t)
}

// Other returns the type a toggle would switch to. Anything that is not a
// smart account switches to one.
func (t Type) Other() Type {
	if t == SmartAccount {
		return EOA
	}
	return SmartAccount
}
