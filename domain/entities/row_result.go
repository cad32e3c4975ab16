// Package entities contains the core domain entities for the applicant corrector.
// It defines correction rows, row results, and run summaries.
package entities

// RowStatus classifies the outcome of a single row's API call.
type RowStatus string

// Row status constants.
const (
	RowStatusSuccess            RowStatus = "success"
	RowStatusTransportFailure   RowStatus = "transport_failure"
	RowStatusApplicationFailure RowStatus = "application_failure"
)

// Placeholder diagnostics used when the API response omits a field.
const (
	UnknownErrorDesc = "Unknown error"
	UnknownErrorData = "Unknown data"
)

// TransportErrorCode marks failures where no HTTP response was received.
const TransportErrorCode = "RequestException"

// RowResult is the tagged outcome of one processed row: exactly one of
// success, a transport failure carrying the cause text, or an application
// failure carrying the API diagnostics. Row outcomes are values, not errors;
// only pre-loop conditions (config, dataset) surface as Go errors.
type RowResult struct {
	Status RowStatus
	Code   string
	Desc   string
	Data   string
}

// Success returns a successful row result.
func Success() RowResult {
	return RowResult{Status: RowStatusSuccess}
}

// TransportFailure returns the result for a request that never produced a
// response.
func TransportFailure(cause error) RowResult {
	desc := UnknownErrorDesc
	if cause != nil {
		desc = cause.Error()
	}
	return RowResult{
		Status: RowStatusTransportFailure,
		Code:   TransportErrorCode,
		Desc:   desc,
		Data:   UnknownErrorData,
	}
}

// ApplicationFailure returns the result for a response that did not report
// success. Empty desc and data collapse to the placeholder diagnostics.
func ApplicationFailure(code, desc, data string) RowResult {
	if desc == "" {
		desc = UnknownErrorDesc
	}
	if data == "" {
		data = UnknownErrorData
	}
	return RowResult{
		Status: RowStatusApplicationFailure,
		Code:   code,
		Desc:   desc,
		Data:   data,
	}
}

// OK reports whether the row succeeded.
func (r RowResult) OK() bool {
	return r.Status == RowStatusSuccess
}
