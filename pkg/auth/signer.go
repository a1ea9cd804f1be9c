// Package auth signs timer service requests with the client credentials.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	HeaderClientID  = "X-GS2-CLIENT-ID"
	HeaderTimestamp = "X-GS2-REQUEST-TIMESTAMP"
	HeaderSign      = "X-GS2-REQUEST-SIGN"
)

var ErrBadSecret = errors.New("client secret is not valid base64")

type Signer struct {
	clientID string
	key      []byte
}

func NewSigner(clientID, secret string) (*Signer, error) {
	if clientID == "" {
		return nil, errors.New("client id is empty")
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, errors.Wrapf(ErrBadSecret, "decode client secret: %v", err)
	}
	if len(key) == 0 {
		return nil, errors.WithStack(ErrBadSecret)
	}
	return &Signer{clientID: clientID, key: key}, nil
}

// Sign returns base64(HMAC-SHA256(key, "service:operation:timestamp")).
func (s *Signer) Sign(service, operation string, timestamp int64) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(service + ":" + operation + ":" + strconv.FormatInt(timestamp, 10)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Signer) Headers(service, operation string, at time.Time) map[string]string {
	ts := at.Unix()
	return map[string]string{
		HeaderClientID:  s.clientID,
		HeaderTimestamp: strconv.FormatInt(ts, 10),
		HeaderSign:      s.Sign(service, operation, ts),
	}
}
