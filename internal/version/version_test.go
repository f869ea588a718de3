package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	prev := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = prev })

	got := Info()
	if !strings.HasPrefix(got, "v1.2.3 (commit none, built unknown, go") {
		t.Fatalf("Info() = %q", got)
	}
}
