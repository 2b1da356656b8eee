package redis

const (
	// KeyDocument is the single key holding the serialized root document.
	KeyDocument = "linkhive:data"
	// KeyLockout is the key for the privacy lockout record ({"until": epoch-ms}).
	KeyLockout = "linkhive:privacy:lockout"
	// KeyAttempts is the key for the wrong-attempt counter (integer-as-string).
	KeyAttempts = "linkhive:privacy:attempts"
)

// DocumentKey returns the Redis key for the root document.
func DocumentKey() string {
	return KeyDocument
}

// LockoutKey returns the Redis key for the lockout record.
func LockoutKey() string {
	return KeyLockout
}

// AttemptsKey returns the Redis key for the attempt counter.
func AttemptsKey() string {
	return KeyAttempts
}
