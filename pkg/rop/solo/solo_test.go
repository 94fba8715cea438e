package solo

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/rop"
)

type branchCounter struct {
	success int
	failure int
}

func (c *branchCounter) onSuccess(data int) string {
	c.success++
	return "ok:" + strconv.Itoa(data)
}

func (c *branchCounter) onFailure(err string) string {
	c.failure++
	return "err:" + err
}

func TestOn_ExactlyOneBranch(t *testing.T) {
	t.Parallel()

	c := &branchCounter{}
	out := On(rop.Success[int, string](3), c.onSuccess, c.onFailure)
	if out != "ok:3" || c.success != 1 || c.failure != 0 {
		t.Fatalf("success dispatch: out=%q success=%d failure=%d", out, c.success, c.failure)
	}

	c = &branchCounter{}
	out = On(rop.Failure[int]("bad"), c.onSuccess, c.onFailure)
	if out != "err:bad" || c.success != 0 || c.failure != 1 {
		t.Fatalf("failure dispatch: out=%q success=%d failure=%d", out, c.success, c.failure)
	}
}

func TestMapSuccess_IntToString(t *testing.T) {
	t.Parallel()

	out := MapSuccess(rop.Success[int, string](10), func(x int) rop.Result[string, string] {
		return rop.Success[string, string](strconv.Itoa(x))
	})

	if !out.IsSuccess() || out.Data() != "10" {
		t.Fatalf("expected success with \"10\", got %v", out)
	}
}

func TestMapSuccess_FailureForwardedUntouched(t *testing.T) {
	t.Parallel()

	called := false
	out := MapSuccess(rop.Failure[int]("bad"), func(x int) rop.Result[string, string] {
		called = true
		return rop.Success[string, string](strconv.Itoa(x))
	})

	if called {
		t.Fatalf("transform should not run on failure")
	}
	if !out.IsFailure() || out.Err() != "bad" {
		t.Fatalf("expected failure \"bad\", got %v", out)
	}
}

func TestMapSuccess_ErrorIdentityPreserved(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := MapSuccess(rop.Failure[int](boom), func(x int) rop.Result[float64, error] {
		return rop.Success[float64, error](float64(x))
	})

	if out.Err() != boom {
		t.Fatalf("expected the same error value, got %v", out.Err())
	}
}

func TestMapFailure(t *testing.T) {
	t.Parallel()

	out := MapFailure(rop.Failure[int]("bad"), func(err string) rop.Result[int, int] {
		return rop.Failure[int](len(err))
	})
	if !out.IsFailure() || out.Err() != 3 {
		t.Fatalf("expected failure 3, got %v", out)
	}

	called := false
	kept := MapFailure(rop.Success[int, string](5), func(err string) rop.Result[int, int] {
		called = true
		return rop.Failure[int](0)
	})
	if called || !kept.IsSuccess() || kept.Data() != 5 {
		t.Fatalf("expected untouched success 5, got %v (called=%v)", kept, called)
	}
}

func TestMapFailure_Recovers(t *testing.T) {
	t.Parallel()

	out := MapFailure(rop.Failure[int]("missing"), func(string) rop.Result[int, error] {
		return rop.Success[int, error](0)
	})
	if !out.IsSuccess() || out.Data() != 0 {
		t.Fatalf("expected recovered success, got %v", out)
	}
}

func TestMapBoth(t *testing.T) {
	t.Parallel()

	var successCalls, failureCalls int
	toText := func(x int) rop.Result[string, error] {
		successCalls++
		return rop.Success[string, error](fmt.Sprintf("#%d", x))
	}
	toErr := func(e string) rop.Result[string, error] {
		failureCalls++
		return rop.Failure[string](errors.New(e))
	}

	out := MapBoth(rop.Success[int, string](7), toText, toErr)
	if !out.IsSuccess() || out.Data() != "#7" || successCalls != 1 || failureCalls != 0 {
		t.Fatalf("expected success \"#7\", got %v (success=%d failure=%d)", out, successCalls, failureCalls)
	}

	out = MapBoth(rop.Failure[int]("bad"), toText, toErr)
	if !out.IsFailure() || out.Err().Error() != "bad" || successCalls != 1 || failureCalls != 1 {
		t.Fatalf("expected failure \"bad\", got %v (success=%d failure=%d)", out, successCalls, failureCalls)
	}
}

func TestMapBoth_ReturnsBranchResultVerbatim(t *testing.T) {
	t.Parallel()

	// a success handler may itself fail; that failure is returned as is
	out := MapBoth(rop.Success[int, string](1),
		func(int) rop.Result[int, string] { return rop.Failure[int]("from success branch") },
		func(string) rop.Result[int, string] { return rop.Success[int, string](0) })

	if !out.IsFailure() || out.Err() != "from success branch" {
		t.Fatalf("expected success branch failure, got %v", out)
	}
}

func TestSelectAndTranslate(t *testing.T) {
	t.Parallel()

	doubled := Select(rop.Success[int, string](4), func(x int) int { return x * 2 })
	if doubled.Data() != 8 {
		t.Fatalf("expected 8, got %v", doubled)
	}

	code := Translate(rop.Failure[int]("bad"), func(e string) int { return len(e) })
	if code.Err() != 3 {
		t.Fatalf("expected 3, got %v", code)
	}

	untouched := Translate(rop.Success[int, string](4), func(e string) int { return -1 })
	if untouched.Data() != 4 {
		t.Fatalf("expected 4, got %v", untouched)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(func() (int, error) { return strconv.Atoi("42") })
	if !ok.IsSuccess() || ok.Data() != 42 {
		t.Fatalf("expected 42, got %v", ok)
	}

	bad := Try(func() (int, error) { return strconv.Atoi("x") })
	var numErr *strconv.NumError
	if !bad.IsFailure() || !errors.As(bad.Err(), &numErr) {
		t.Fatalf("expected *strconv.NumError failure, got %v", bad)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	positive := func(x int) (string, bool) {
		if x <= 0 {
			return "not positive", true
		}
		return "", false
	}

	if out := Check(rop.Success[int, string](2), positive); !out.IsSuccess() || out.Data() != 2 {
		t.Fatalf("expected success 2, got %v", out)
	}
	if out := Check(rop.Success[int, string](-2), positive); !out.IsFailure() || out.Err() != "not positive" {
		t.Fatalf("expected failure, got %v", out)
	}

	called := false
	out := Check(rop.Failure[int]("earlier"), func(int) (string, bool) {
		called = true
		return "", false
	})
	if called || out.Err() != "earlier" {
		t.Fatalf("expected earlier failure untouched, got %v (called=%v)", out, called)
	}
}

func TestFirstFailure(t *testing.T) {
	t.Parallel()

	out := FirstFailure[string](rop.Ok[string](), rop.Success[int, string](1))
	if !out.IsSuccess() {
		t.Fatalf("expected success, got %v", out)
	}

	out = FirstFailure[string](
		rop.Ok[string](),
		rop.Failure[int]("second"),
		rop.Fail("third"),
	)
	if !out.IsFailure() || out.Err() != "second" {
		t.Fatalf("expected first failure \"second\", got %v", out)
	}

	if out := FirstFailure[string](); !out.IsSuccess() {
		t.Fatalf("expected success for no outcomes, got %v", out)
	}
}

type domainCode int

const (
	domainGeneric domainCode = iota
	domainInvalidAction
)

func (c domainCode) String() string {
	if c == domainInvalidAction {
		return "InvalidAction"
	}
	return "Generic"
}

type applicationError struct {
	message string
}

func applicationErrorFrom(c domainCode) applicationError {
	return applicationError{message: "domain error " + c.String()}
}

func TestMapFailure_AcrossLayers(t *testing.T) {
	t.Parallel()

	domainOut := rop.Failure[string](domainInvalidAction)

	appOut := MapFailure(domainOut, func(c domainCode) rop.Result[string, applicationError] {
		return rop.Failure[string](applicationErrorFrom(c))
	})

	if !appOut.IsFailure() {
		t.Fatalf("expected application failure, got %v", appOut)
	}
	if appOut.Err().message != "domain error InvalidAction" {
		t.Fatalf("unexpected application message %q", appOut.Err().message)
	}

	viaTranslate := Translate(domainOut, applicationErrorFrom)
	if viaTranslate.Err() != appOut.Err() {
		t.Fatalf("Translate and MapFailure disagree: %v vs %v", viaTranslate, appOut)
	}
}
