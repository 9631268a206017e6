package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFS_ServesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".df-progress__fill") {
		t.Fatalf("stylesheet missing progress rules")
	}
}
