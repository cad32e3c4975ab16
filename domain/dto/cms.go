// Package dto contains data transfer objects for CMS API requests and responses.
package dto

import "fmt"

// SuccessCode is the code value the CMS returns for a successful operation.
const SuccessCode = "0"

// CorrectionCommentText is the fixed comment appended to an applicant's
// institution record. The two lines explain the occupation and criminal
// subjected corrections applied during the 2.0 to 3.0 data migration.
const CorrectionCommentText = "- Change occupation CMS note: Occupation updated due to data segregation issue from 2.0 to 3.0.\n" +
	"- Change criminal subjected CMS note: Criminal subjected updated as user is from 2.0."

// OccupationUpdateRequest is the PUT body for the occupation endpoint.
type OccupationUpdateRequest struct {
	EmploymentKey           string `json:"employment_key"`
	OccupationKey           string `json:"occupation_key"`
	IsPublicPolitician      bool   `json:"is_public_politician"`
	IsCriminalInvestigation bool   `json:"is_criminal_investigation"`
}

// CommentRequest is the POST body for the institution comment endpoint.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// APIResponse is the envelope every CMS endpoint returns. A code of
// SuccessCode denotes success; desc and data carry diagnostics on failure.
// The fields are loosely typed because the CMS does not guarantee their
// types or presence.
type APIResponse struct {
	Code any `json:"code"`
	Desc any `json:"desc"`
	Data any `json:"data"`
}

// Succeeded reports whether the response carries the success code. Only the
// exact string value counts; a numeric zero or a missing field does not.
func (r APIResponse) Succeeded() bool {
	code, ok := r.Code.(string)
	return ok && code == SuccessCode
}

// FieldText renders a loosely typed response field for diagnostics. Nil
// yields the empty string so callers can substitute placeholders.
func FieldText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
