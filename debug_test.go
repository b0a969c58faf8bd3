package logfacade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespaceDebugger_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		ns       string
		want     bool
	}{
		{"no patterns", nil, "App:feature/ui", true},
		{"star", []string{"*"}, "App:feature/ui", true},
		{"prefix star crosses slashes", []string{"App:common/*"}, "App:common/net/client:main", true},
		{"prefix star no match", []string{"App:common/*"}, "App:feature/ui", false},
		{"exact", []string{"App:feature/ui"}, "App:feature/ui", true},
		{"exclusion wins", []string{"App:*", "-App:common/*"}, "App:common/x:main", false},
		{"exclusion only", []string{"-App:feature/ui"}, "App:feature/other", true},
		{"comma list", []string{"App:a,App:b"}, "App:b", true},
		{"glob middle", []string{"App:feature/?i"}, "App:feature/ui", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNamespaceDebugger(tt.patterns...).Enabled(tt.ns))
		})
	}
}

func TestNamespaceDebugger_Bind(t *testing.T) {
	var got []string
	out := func(msg string) { got = append(got, msg) }

	d := NewNamespaceDebugger("App:feature/*")
	d.Bind("App:feature/ui", out)("hello")
	d.Bind("App:common/x:main", out)("dropped")

	assert.Equal(t, []string{"App:feature/ui hello"}, got)
	assert.NotPanics(t, func() { d.Bind("App:feature/ui", nil)("x") })
}
