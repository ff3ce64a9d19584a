package mail

import (
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Reason
	}{
		{"mailbox unavailable", &textproto.Error{Code: 550, Msg: "no such user"}, ReasonInvalidRecipient},
		{"user not local", &textproto.Error{Code: 551, Msg: "user not local"}, ReasonInvalidRecipient},
		{"auth required", &textproto.Error{Code: 530, Msg: "authentication required"}, ReasonAuthRejected},
		{"bad credentials", &textproto.Error{Code: 535, Msg: "authentication failed"}, ReasonAuthRejected},
		{"service unavailable", &textproto.Error{Code: 421, Msg: "try again later"}, ReasonTransientNetwork},
		{"wrapped smtp error", fmt.Errorf("send: %w", &textproto.Error{Code: 553, Msg: "bad mailbox"}), ReasonInvalidRecipient},
		{"network timeout", timeoutErr{}, ReasonTransientNetwork},
		{"unknown error", errors.New("boom"), ReasonTransientNetwork},
	}
	for _, tc := range cases {
		if got := Classify(tc.err); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSendErrorUnwrap(t *testing.T) {
	cause := &textproto.Error{Code: 550, Msg: "no such user"}
	err := &SendError{Reason: ReasonInvalidRecipient, Err: cause}
	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		t.Fatal("expected SendError to unwrap to the transport error")
	}
}
