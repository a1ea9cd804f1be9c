package timer

import "time"

// Method is the HTTP verb the service uses for a timer callback.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// TimerPool groups the timers of one owner under a unique name.
type TimerPool struct {
	TimerPoolID string `json:"timerPoolId"`
	OwnerID     string `json:"ownerId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreateAt    int64  `json:"createAt"`
}

// Timer is a scheduled HTTP callback. The service fires it at ExecuteTime,
// usually within 60 seconds, so it does not suit timing-critical work.
type Timer struct {
	TimerID        string `json:"timerId"`
	TimerPoolID    string `json:"timerPoolId"`
	OwnerID        string `json:"ownerId"`
	CallbackMethod Method `json:"callbackMethod"`
	CallbackURL    string `json:"callbackUrl"`
	CallbackBody   string `json:"callbackBody,omitempty"`
	ExecuteTime    int64  `json:"executeTime"`
	RetryMax       int    `json:"retryMax"`
	CreateAt       int64  `json:"createAt"`
}

func (p TimerPool) CreatedAt() time.Time { return time.UnixMilli(p.CreateAt) }

func (t Timer) CreatedAt() time.Time { return time.UnixMilli(t.CreateAt) }

func (t Timer) ExecutesAt() time.Time { return time.UnixMilli(t.ExecuteTime) }

// Item wraps a single-entity response.
type Item[T any] struct {
	Item T `json:"item"`
}

// Page is one page of a list response. NextPageToken is empty on the last page.
type Page[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"nextPageToken,omitempty"`
}

func (p *Page[T]) HasNext() bool { return p.NextPageToken != "" }
