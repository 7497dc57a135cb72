package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSlateErrorString(t *testing.T) {
	err := &SlateError{
		Op:     "canvas.Flush",
		Kind:   KindRender,
		Object: "scroll",
		Err:    New("buffer too small"),
	}
	got := err.Error()
	want := "canvas.Flush [render] object=scroll: buffer too small"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSlateErrorUnwrap(t *testing.T) {
	cause := New("device lost")
	err := &SlateError{Op: "raster.Present", Kind: KindRender, Err: cause}
	if !Is(err, cause) {
		t.Error("expected Is to find the wrapped cause")
	}
	var target *SlateError
	if !As(err, &target) || target.Op != "raster.Present" {
		t.Error("expected As to match *SlateError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRender, "render"},
		{KindConfig, "config"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "canvas.OnMouseMove"
	if got, want := err.Error(), "panic in canvas.OnMouseMove: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *SlateError
	handler := &testHandler{onError: func(err *SlateError) { captured = err }}

	defer SetHandler(Handler())
	SetHandler(handler)

	Report(&SlateError{Op: "test.op", Kind: KindConfig, Err: New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	defer SetHandler(Handler())
	SetHandler(handler)

	var callbackValue any
	func() {
		defer RecoverWithCallback("test.recover", func(r any) { callbackValue = r })
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" || captured.Op != "test.recover" {
		t.Errorf("captured = %+v", captured)
	}
	if callbackValue != "intentional test panic" {
		t.Errorf("callback value = %v", callbackValue)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	defer SetHandler(Handler())

	SetHandler(nil)
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Output: &buf}
	h.HandleError(&SlateError{Op: "canvas.Flush", Kind: KindRender, Object: "box", Err: New("boom"), StackTrace: "frame"})
	out := buf.String()
	for _, want := range []string{"[slate error] canvas.Flush [render]", "object=box", "boom", "Stack trace:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}

	buf.Reset()
	h.Verbose = false
	h.HandlePanic(&PanicError{Op: "op", Value: 42})
	if got := buf.String(); got != "[slate panic] op: 42\n" {
		t.Errorf("panic output = %q", got)
	}
}

type testHandler struct {
	onError func(*SlateError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *SlateError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
