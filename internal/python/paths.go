package python

import (
	"path/filepath"
	"runtime"
)

// EnvPython returns the path of the interpreter inside a virtual
// environment directory.
func EnvPython(envDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts", "python.exe")
	}
	return filepath.Join(envDir, "bin", "python")
}

// ActivateScript returns the path of the environment's activation script,
// used only in operator-facing instructions. The tool itself never sources
// it (see Toolchain).
func ActivateScript(envDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(envDir, "Scripts", "activate")
	}
	return filepath.Join(envDir, "bin", "activate")
}
