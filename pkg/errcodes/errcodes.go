package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidItemID    failure.ErrorCode = "InvalidItemID"
	ItemNotFound     failure.ErrorCode = "ItemNotFound"
	PriceUnavailable failure.ErrorCode = "PriceUnavailable"
	RateLimited      failure.ErrorCode = "RateLimited"
	RunNotActive     failure.ErrorCode = "RunNotActive"
	RunFailed        failure.ErrorCode = "RunFailed"
	HostUnavailable  failure.ErrorCode = "HostUnavailable"
)
