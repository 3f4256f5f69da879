// Package auth guards write requests with a single shared API token.
//
// It supports two modes:
//   - "none": every request is accepted (default)
//   - "token": POST, PUT, PATCH and DELETE need "Authorization: Bearer <token>"
//
// # Configuration
//
//	AUTH_MODE=token
//	AUTH_TOKEN_HASH=<bcrypt hash printed by "hash-token">
//
// Only the bcrypt hash is ever configured; the plaintext token is shown once
// when it is generated.
//
// # Usage
//
//	router.Use(auth.NewMiddleware(cfg.Auth).Handler())
package auth
