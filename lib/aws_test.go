package lib

import (
	"context"
	"testing"
)

func TestSessionRegionCached(t *testing.T) {
	sessionClear()
	ctx := context.Background()
	first, err := SessionRegion(ctx, "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	if first.Region != "us-east-1" {
		t.Errorf("got: %s, want: us-east-1", first.Region)
	}
	second, err := SessionRegion(ctx, "us-east-1")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected cached config to be reused")
	}
}
