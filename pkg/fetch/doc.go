// Package fetch retrieves JSON documents over HTTP.
//
// The Client issues a single GET per call, bounded by a fixed timeout
// (DefaultTimeout unless overridden), and decodes the response body. It never
// retries. A request id found in the context is forwarded in X-Request-ID.
// Transport errors from the underlying Doer are returned unchanged, so
// callers can match them with errors.Is/As; a non-2xx response yields
// ErrUnexpectedStatus wrapped in a *StatusError.
//
// Any type with a Do(*http.Request) (*http.Response, error) method satisfies
// Doer, which makes *http.Client the production implementation and a testify
// mock the test one:
//
//	c := fetch.New(fetch.WithTimeout(5 * time.Second))
//	var payload map[string]any
//	if err := c.Decode(ctx, "https://api.example.com/data", &payload); err != nil {
//		return err
//	}
package fetch
