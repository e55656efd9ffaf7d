package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// diskRoot is checked before the embedded copies so tables can be tuned
// without rebuilding.
var diskRoot = "prefabs"

// SetDiskRoot changes the override directory. An empty dir disables disk
// overrides.
func SetDiskRoot(dir string) {
	diskRoot = dir
}

func DiskRoot() string {
	return diskRoot
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, ok := readDisk(clean); ok {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, ok := readDisk(clean); ok {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func readDisk(clean string) ([]byte, bool) {
	if diskRoot == "" || clean == "" {
		return nil, false
	}
	data, err := os.ReadFile(diskPrefabPath(clean))
	if err != nil {
		return nil, false
	}
	return data, true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskRoot, filepath.FromSlash(clean))
}
