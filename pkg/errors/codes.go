package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeTimeout            ErrorCode = "COMMON_006"
	ErrCodeValidation         ErrorCode = "COMMON_007"
	ErrCodeSerialization      ErrorCode = "COMMON_008"
	ErrCodeDatabaseError      ErrorCode = "COMMON_009"
	ErrCodeCacheError         ErrorCode = "COMMON_010"
	ErrCodeExternalService    ErrorCode = "COMMON_011"
	ErrCodeNotImplemented     ErrorCode = "COMMON_012"

	// CodeOK is a sentinel returned by GetCode for nil errors.
	CodeOK ErrorCode = "OK"
	// CodeUnknown is returned by GetCode when no AppError is in the chain.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Generator Module Error Codes
const (
	// ErrCodeInvalidWord is returned when part-of-speech resolution is
	// requested for an empty word or for a word that is not present in the
	// generator's normalized utterance.  It aborts synonym-map construction.
	ErrCodeInvalidWord      ErrorCode = "GEN_001"
	ErrCodeSynonymMapBuild  ErrorCode = "GEN_002"
	ErrCodeGenerationFailed ErrorCode = "GEN_003"
	ErrCodeUtteranceEmpty   ErrorCode = "GEN_004"
	ErrCodeThresholdInvalid ErrorCode = "GEN_005"
)

// Lexicon Module Error Codes
const (
	ErrCodeLexiconUnavailable ErrorCode = "LEX_001"
	ErrCodeLexiconLoadFailed  ErrorCode = "LEX_002"
	ErrCodePOSResolveFailed   ErrorCode = "LEX_003"
)

// Embedding Module Error Codes
const (
	ErrCodeModelLoadFailed ErrorCode = "EMB_001"
	ErrCodeVectorDimension ErrorCode = "EMB_002"
)

// Phrase Table Error Codes
const (
	ErrCodePhraseTableLoadFailed ErrorCode = "PHR_001"
	ErrCodePhraseTableInvalid    ErrorCode = "PHR_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeInvalidWord:      http.StatusBadRequest,
	ErrCodeSynonymMapBuild:  http.StatusInternalServerError,
	ErrCodeGenerationFailed: http.StatusInternalServerError,
	ErrCodeUtteranceEmpty:   http.StatusBadRequest,
	ErrCodeThresholdInvalid: http.StatusBadRequest,

	ErrCodeLexiconUnavailable: http.StatusServiceUnavailable,
	ErrCodeLexiconLoadFailed:  http.StatusInternalServerError,
	ErrCodePOSResolveFailed:   http.StatusInternalServerError,

	ErrCodeModelLoadFailed: http.StatusInternalServerError,
	ErrCodeVectorDimension: http.StatusInternalServerError,

	ErrCodePhraseTableLoadFailed: http.StatusInternalServerError,
	ErrCodePhraseTableInvalid:    http.StatusUnprocessableEntity,
}

// HTTPStatus returns the HTTP status code associated with c, defaulting to
// 500 Internal Server Error for unmapped codes.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := ErrorCodeHTTPStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Module extracts the module prefix from a code, e.g. "GEN" from "GEN_001".
func (c ErrorCode) Module() string {
	if i := strings.IndexByte(string(c), '_'); i > 0 {
		return string(c)[:i]
	}
	return string(c)
}
