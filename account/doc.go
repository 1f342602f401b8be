// Package account manages the authenticated session.
//
// Token issuance and verification are entirely the backend's business; this
// package only runs the client side of the flows (login, register, OTP),
// enforces the local preconditions that never warrant a network call (blank
// credentials, short OTP codes, mismatched password confirmation), and
// keeps the token on the device so a restart resumes the session.
package account
