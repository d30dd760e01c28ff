package client

import "fmt"

// APIError is a non-2xx response from the Rebrickable API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// TLSVerificationError is a failed certificate verification on the outbound
// connection. Its message is the user-facing remediation hint.
type TLSVerificationError struct {
	Err error
}

func (e *TLSVerificationError) Error() string {
	return TLSFixHint()
}

func (e *TLSVerificationError) Unwrap() error {
	return e.Err
}

// NetworkError is any transport-level failure other than TLS verification.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TLSFixHint is shown whenever certificate verification fails.
func TLSFixHint() string {
	return "TLS certificate verification failed. Update your system CA certificates " +
		"or point SSL_CERT_FILE at a valid bundle. " +
		"Temporary workaround: set REBRICKABLE_SKIP_SSL_VERIFY=1."
}
