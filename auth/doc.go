/*
Package auth handles the operator token that gates film and round
mutations.

The core voting components perform no authorization themselves; the HTTP
layer is the caller responsible for gating admin operations, and it does so
with a single operator token checked here.

	if err := auth.VerifyAdminToken(r.Header.Get("X-Admin-Token"), cfg.AdminToken); err != nil {
		// reject
	}

Comparison is constant-time (hmac.Equal). GenerateToken mints a 192-bit
random token for runs where ADMIN_TOKEN was not configured.
*/
package auth
