package logfacade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNamespace(t *testing.T) {
	tests := []struct {
		name      string
		sourceID  string
		root      string
		sourceDir string
		want      string
	}{
		{"shared module gets process kind", "/app/scripts/common/net/client.ext", "/app", "scripts", "App:common/net/client:main"},
		{"feature module has no suffix", "/app/scripts/feature/ui.ext", "/app", "scripts", "App:feature/ui"},
		{"windows separators", `C:\app\scripts\common\x\y.go`, `C:\app`, "scripts", "App:common/x/y:main"},
		{"root with trailing slash", "/app/scripts/feature/ui.go", "/app/", "scripts", "App:feature/ui"},
		{"no extension", "/app/scripts/feature/ui", "/app", "scripts", "App:feature/ui"},
		{"only last extension dropped", "/app/scripts/feature/ui.test.go", "/app", "scripts", "App:feature/ui.test"},
		{"dotted directory kept", "/app/scripts/v1.2/ui", "/app", "scripts", "App:v1.2/ui"},
		{"outside root keeps full path", "/elsewhere/common/x.go", "/app", "scripts", "App:/elsewhere/common/x"},
		{"no source dir", "/app/common/x.go", "/app", ".", "App:common/x:main"},
		{"relative identifier", "common/x/y.ext", "", "", "App:common/x/y:main"},
		{"common must be a directory", "/app/scripts/commonx/y.go", "/app", "scripts", "App:commonx/y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveNamespace(tt.sourceID, tt.root, tt.sourceDir, "App", "main")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveNamespace_Deterministic(t *testing.T) {
	a := DeriveNamespace("/app/scripts/common/a.go", "/app", "scripts", "App", "renderer")
	b := DeriveNamespace("/app/scripts/common/a.go", "/app", "scripts", "App", "renderer")
	assert.Equal(t, a, b)
	assert.Equal(t, "App:common/a:renderer", a)
}
