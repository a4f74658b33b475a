package config

import (
	"os"
	"path/filepath"
)

// findEnvFile resolves name to an existing file. Absolute paths are checked
// as given. Relative ones are looked up from the working directory upwards,
// stopping at the first directory holding a go.mod. Outside a module only
// the working directory is searched.
func findEnvFile(name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, d := range searchDirs(dir) {
		candidate := filepath.Join(d, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", os.ErrNotExist
}

// searchDirs lists dir and its parents up to the module root.
func searchDirs(dir string) []string {
	var dirs []string
	for curr := dir; ; {
		dirs = append(dirs, curr)
		if isFile(filepath.Join(curr, "go.mod")) {
			return dirs
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return []string{dir}
		}
		curr = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
