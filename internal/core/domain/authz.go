package domain

// Principal is the immutable authentication context extracted from a verified
// session token. It is built once per request by the auth middleware and
// passed explicitly into service calls; nothing downstream mutates it.
type Principal struct {
	Email string
}

// AuthorizeOwner is the single ownership predicate used by every resource:
// the acting user may touch a resource only when it owns it.
func AuthorizeOwner(actorID, ownerID string) error {
	if actorID == "" || actorID != ownerID {
		return ErrUnauthorized
	}
	return nil
}
