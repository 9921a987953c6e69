package logx

const (
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldContainer    = "container"
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldHTTPMethod   = "http-method"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldIP           = "ip"
	FieldItemID       = "item-id"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldRunID        = "run-id"
	FieldScope        = "scope"
	FieldSlot         = "slot"
	FieldStack        = "stack"
	FieldTraceID      = "trace-id"
	FieldURL          = "url"
	FieldWorld        = "world"
)
