package module

import (
	"reflect"
	"testing"
)

func TestMountPatternsSkipsBlanks(t *testing.T) {
	t.Parallel()

	m := Mount{Prefix: "/app/feed/", Aliases: []string{"", "/app/{$}"}}
	got := m.Patterns()
	want := []string{"/app/feed/", "/app/{$}"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	if got := (Mount{}).Patterns(); len(got) != 0 {
		t.Fatalf("empty Patterns() = %v, want none", got)
	}
}
