// Package http provides HTTP handlers and middleware for the campus
// scheduling API.
//
// The router exposes the following endpoints:
//   - POST /login: issues a session token. Body: {"username","password"}.
//     Response: {"token","expires_at","principal":{"username","roles"}} with
//     the token also surfaced via the `X-Session-Token` header and a
//     `session_token` cookie.
//   - POST /logout: revokes the current session token extracted from the
//     Authorization header or session cookie. Returns 204 No Content and
//     clears the cookie.
//   - GET /universities, POST /universities: listing is public; creation
//     requires the admin role. Body: {"name"}.
//   - GET /universities/{id}: fetches one university with its rooms,
//     classes and personnel.
//   - GET/POST /universities/{id}/rooms and GET /universities/{id}/rooms/{roomID}:
//     room catalog endpoints. Creation requires the admin or manager role
//     and accepts {"name","room_type","capacity","accessibility_features"}
//     where capacity may be a number or a numeric string.
//   - GET /universities/{id}/rooms/{roomID}/availability?timeslot=...:
//     reports whether the room is free for the given timeslot.
//   - GET/POST /universities/{id}/personnel and GET /universities/{id}/personnel/{personnelID}:
//     personnel endpoints. Creation requires any authenticated session and
//     accepts {"name","role","specializations","accessibilityNeeds"}.
//   - GET/POST /universities/{id}/classes and GET /universities/{id}/classes/{classID}:
//     class endpoints. Scheduling requires any authenticated session and
//     accepts {"title","room_id","timeslot","instructor_id","expected_capacity"}.
//
// Request/response DTOs live alongside their respective handlers so tests
// and documentation share the same ground truth.
package http
