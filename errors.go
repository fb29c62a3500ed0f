package dawgtext

import "errors"

// Sentinel error kinds. Callers match with errors.Is; every returned error
// wraps one of these with fmt.Errorf("%w: ...") for the failing context,
// matching the message style dawg.Add used for its own panics.
var (
	// ErrInvalidInput is returned by Insert/InsertValue when a word contains
	// a character outside the supported alphabet, or one of the packed
	// format's reserved characters.
	ErrInvalidInput = errors.New("dawgtext: invalid input")

	// ErrMalformedPacked is returned when a packed string cannot be parsed,
	// either while building the unpacker's node index or while a query
	// walks an offending reference.
	ErrMalformedPacked = errors.New("dawgtext: malformed packed string")

	// ErrNotFound is returned by Lookup for a key that isn't in the
	// dictionary. IsWord returns false instead of this error.
	ErrNotFound = errors.New("dawgtext: not found")
)
