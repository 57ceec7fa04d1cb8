package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFSServesPage(t *testing.T) {
	for _, name := range []string{"index.html", "app.js"} {
		data, err := fs.ReadFile(FS(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
	page, _ := fs.ReadFile(FS(), "index.html")
	if !strings.Contains(string(page), `src="app.js"`) {
		t.Fatalf("index.html must load app.js")
	}
}
