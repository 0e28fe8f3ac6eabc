package main

import (
	"reflect"
	"testing"
)

func TestRealMainExitCodes(t *testing.T) {
	if code := realMain([]string{"-no-such-flag"}); code != 2 {
		t.Errorf("unknown flag: exit code %d, want 2", code)
	}
	if code := realMain(nil); code != 1 {
		t.Errorf("missing platform: exit code %d, want 1", code)
	}
}

func TestSplitKeywords(t *testing.T) {
	got := splitKeywords(" dubai chewy cookie, ,pistachio cookie,")
	want := []string{"dubai chewy cookie", "pistachio cookie"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitKeywords = %v, want %v", got, want)
	}
	if got := splitKeywords(""); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}
