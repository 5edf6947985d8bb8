// Package backend is the HTTP client for the user-settings backend.
//
// The backend exposes one JSON endpoint. Posting {"authorizationCode"}
// exchanges a one-time login code for the user's identity and saved
// settings; posting a body with "lineUserId" stores new settings. Requests
// are not retried. Each carries an X-Request-ID that is also logged.
package backend
