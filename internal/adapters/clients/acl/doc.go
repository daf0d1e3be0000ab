// Package acl is the anti-corruption layer between the todo REST API and the
// domain. Wire DTOs stay unexported here; callers only see domain.Todo and
// domain errors.
//
// Failures are translated as follows:
//   - 404 → [domain.ErrNotFound]
//   - 409 → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation]
//   - 401/403 → [domain.ErrForbidden]
//   - 429, 5xx, transport errors, open circuit → [domain.ErrUnavailable]
//   - a 2xx body of the wrong shape → [domain.ErrUnavailable]
//
// The todo service treats every one of these as a reason to fall back to the
// local mirror.
package acl
