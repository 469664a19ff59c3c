package services

// Authorize checks a principal's role names against an endpoint's allowed
// set. Any intersection grants access; an empty principal set never does.
// It is plain allow/deny logic so it can be exercised without an HTTP stack.
func Authorize(roles []string, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, name := range allowed {
		allowedSet[name] = struct{}{}
	}

	for _, name := range roles {
		if _, ok := allowedSet[name]; ok {
			return nil
		}
	}
	return ErrForbidden
}
