package mailer

import (
	"errors"
	"fmt"
	"net/textproto"
	"testing"
)

func TestClassifySMTP_SenderRejectedCodes(t *testing.T) {
	for _, code := range []int{530, 534, 535, 538, 553} {
		err := classifySMTP(&textproto.Error{Code: code, Msg: "denied"})
		if err.Kind != KindSenderRejected {
			t.Errorf("code %d classified as %v, want KindSenderRejected", code, err.Kind)
		}
	}
}

func TestClassifySMTP_TerminalCodes(t *testing.T) {
	for _, code := range []int{421, 450, 452, 550, 554} {
		err := classifySMTP(&textproto.Error{Code: code, Msg: "denied"})
		if err.Kind != KindDelivery {
			t.Errorf("code %d classified as %v, want KindDelivery", code, err.Kind)
		}
	}
}

func TestClassifySMTP_NonProtocolError(t *testing.T) {
	err := classifySMTP(errors.New("dial tcp: connection refused"))
	if err.Kind != KindDelivery {
		t.Errorf("Kind = %v, want KindDelivery", err.Kind)
	}
}

func TestClassifySMTP_WrappedProtocolError(t *testing.T) {
	wrapped := fmt.Errorf("send failed: %w", &textproto.Error{Code: 535, Msg: "bad credentials"})
	if err := classifySMTP(wrapped); err.Kind != KindSenderRejected {
		t.Errorf("Kind = %v, want KindSenderRejected", err.Kind)
	}
}

func TestClassifySMTP_KeepsCause(t *testing.T) {
	cause := &textproto.Error{Code: 535, Msg: "bad credentials"}
	err := classifySMTP(cause)
	if !errors.Is(err, cause) {
		t.Error("classified error lost its cause")
	}
}
