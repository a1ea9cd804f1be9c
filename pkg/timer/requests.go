package timer

import "time"

// Optional fields are pointers. A nil pointer is left out of the request.

type ListPoolsRequest struct {
	PageToken *string
	Limit     *int
}

type CreatePoolRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type UpdatePoolRequest struct {
	TimerPoolName string  `json:"-"`
	Description   *string `json:"description,omitempty"`
}

type GetPoolRequest struct {
	TimerPoolName string
}

type DeletePoolRequest struct {
	TimerPoolName string
}

type ListTimersRequest struct {
	TimerPoolName string
	PageToken     *string
	Limit         *int
}

type CreateTimerRequest struct {
	TimerPoolName  string  `json:"-"`
	CallbackMethod *Method `json:"callbackMethod,omitempty"`
	CallbackURL    *string `json:"callbackUrl,omitempty"`
	CallbackBody   *string `json:"callbackBody,omitempty"`
	// ExecuteTime is in epoch milliseconds; see At.
	ExecuteTime *int64 `json:"executeTime,omitempty"`
	RetryMax    *int   `json:"retryMax,omitempty"`
}

type GetTimerRequest struct {
	TimerPoolName string
	TimerID       string
}

type DeleteTimerRequest struct {
	TimerPoolName string
	TimerID       string
}

func String(v string) *string { return &v }

func Int(v int) *int { return &v }

func MethodOf(m Method) *Method { return &m }

// At converts t to the epoch milliseconds the service expects.
func At(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}
