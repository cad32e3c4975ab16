package mocks

import "net/http"

// RoundTripFunc lets a test stub the HTTP transport with a plain function.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface.
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClientMock returns an *http.Client whose transport is the given
// function.
func NewHTTPClientMock(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}
