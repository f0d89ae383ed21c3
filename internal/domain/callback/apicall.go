package callback

import (
	"fmt"
	"time"
)

type CallType string

const (
	CallTypeNotification CallType = "NOTIFICATION"
	CallTypeDataUpdate   CallType = "DATA_UPDATE"
	CallTypeUserAction   CallType = "USER_ACTION"
	CallTypeSystemEvent  CallType = "SYSTEM_EVENT"
)

var validCallTypes = map[CallType]bool{
	CallTypeNotification: true,
	CallTypeDataUpdate:   true,
	CallTypeUserAction:   true,
	CallTypeSystemEvent:  true,
}

func (t CallType) String() string { return string(t) }
func (t CallType) IsValid() bool  { return validCallTypes[t] }

type CallStatus string

const (
	CallStatusPending  CallStatus = "PENDING"
	CallStatusSuccess  CallStatus = "SUCCESS"
	CallStatusFailed   CallStatus = "FAILED"
	CallStatusRetrying CallStatus = "RETRYING"
)

func (s CallStatus) String() string { return string(s) }

// APICall is one recorded outbound callback attempt chain. The retry
// counter is flat; once it reaches the configured maximum the call is
// marked FAILED and never retried again.
type APICall struct {
	id            uint
	callType      CallType
	endpointID    uint
	payload       map[string]interface{}
	status        CallStatus
	response      string
	errorMessage  string
	retryCount    int
	initiatedByID *uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAPICall(callType CallType, endpointID uint, payload map[string]interface{}, initiatedByID *uint) (*APICall, error) {
	if !callType.IsValid() {
		return nil, fmt.Errorf("invalid call type: %s", callType)
	}
	if endpointID == 0 {
		return nil, fmt.Errorf("endpoint ID is required")
	}
	if payload == nil {
		payload = map[string]interface{}{}
	}

	now := time.Now()
	return &APICall{
		callType:      callType,
		endpointID:    endpointID,
		payload:       payload,
		status:        CallStatusPending,
		initiatedByID: initiatedByID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAPICall(
	id uint,
	callType CallType,
	endpointID uint,
	payload map[string]interface{},
	status CallStatus,
	response, errorMessage string,
	retryCount int,
	initiatedByID *uint,
	createdAt, updatedAt time.Time,
) *APICall {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return &APICall{
		id:            id,
		callType:      callType,
		endpointID:    endpointID,
		payload:       payload,
		status:        status,
		response:      response,
		errorMessage:  errorMessage,
		retryCount:    retryCount,
		initiatedByID: initiatedByID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (c *APICall) ID() uint                         { return c.id }
func (c *APICall) CallType() CallType               { return c.callType }
func (c *APICall) EndpointID() uint                 { return c.endpointID }
func (c *APICall) Payload() map[string]interface{}  { return c.payload }
func (c *APICall) Status() CallStatus               { return c.status }
func (c *APICall) Response() string                 { return c.response }
func (c *APICall) ErrorMessage() string             { return c.errorMessage }
func (c *APICall) RetryCount() int                  { return c.retryCount }
func (c *APICall) InitiatedByID() *uint             { return c.initiatedByID }
func (c *APICall) CreatedAt() time.Time             { return c.createdAt }
func (c *APICall) UpdatedAt() time.Time             { return c.updatedAt }

func (c *APICall) SetID(id uint) {
	if c.id == 0 {
		c.id = id
	}
}

func (c *APICall) MarkSuccess(response string) {
	c.status = CallStatusSuccess
	c.response = response
	c.errorMessage = ""
	c.updatedAt = time.Now()
}

// MarkFailure records a failed attempt. When the retry budget is not yet
// exhausted the call goes to RETRYING, otherwise to FAILED.
func (c *APICall) MarkFailure(errMsg string, maxRetries int) {
	c.errorMessage = errMsg
	c.retryCount++
	if c.retryCount >= maxRetries {
		c.status = CallStatusFailed
	} else {
		c.status = CallStatusRetrying
	}
	c.updatedAt = time.Now()
}

// IsRetryable reports whether the scheduler should attempt this call again.
func (c *APICall) IsRetryable(maxRetries int) bool {
	return (c.status == CallStatusPending || c.status == CallStatusRetrying) && c.retryCount < maxRetries
}
