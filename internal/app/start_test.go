package app

import (
	"context"
	"testing"

	"aghctl/internal/control"
)

func TestStartPassesVerb(t *testing.T) {
	var got control.Verb
	stubControl(t, func(verb control.Verb) (control.Result, error) {
		got = verb
		return control.Result{OK: true, Message: "AdGuard Home started"}, nil
	})

	res, err := testApp().Start(context.Background())
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if got != control.VerbStart {
		t.Fatalf("expected start verb, got %s", got)
	}
	if !res.OK {
		t.Fatal("expected OK result")
	}
}

func TestStopReportsFailure(t *testing.T) {
	stubControl(t, func(verb control.Verb) (control.Result, error) {
		if verb != control.VerbStop {
			t.Fatalf("unexpected verb %s", verb)
		}
		return control.Result{OK: false, Message: "Error: not permitted"}, nil
	})

	res, err := testApp().Stop(context.Background())
	if err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
	if res.OK {
		t.Fatal("expected OK=false")
	}
	if res.Message != "Error: not permitted" {
		t.Fatalf("unexpected message %q", res.Message)
	}
}
