package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldChatID         = "chat-id"
	FieldCycleID        = "cycle-id"
	FieldDealID         = "deal-id"
	FieldDiscount       = "discount"
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldItemID         = "item-id"
	FieldMessageID      = "message-id"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldURL            = "url"
)
