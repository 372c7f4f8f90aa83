package linkcheck

import (
	"fmt"
	"runtime/debug"
)

// JSONLibPath is the module path of the external JSON dependency whose
// presence this fixture verifies.
const JSONLibPath = "github.com/xeipuuv/gojsonschema"

// VersionReporter reports the external JSON library's version.
type VersionReporter interface {
	Version() (string, error)
}

// BuildInfoReporter resolves the dependency version from the module build
// info embedded in the running binary.
type BuildInfoReporter struct{}

// Version returns the version of the JSON library module recorded in the
// binary's build info.
func (BuildInfoReporter) Version() (string, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("%w: binary carries no build info", ErrDependencyNotLinked)
	}

	for _, dep := range bi.Deps {
		if dep.Path != JSONLibPath {
			continue
		}

		if dep.Replace != nil {
			return dep.Replace.Version, nil
		}

		return dep.Version, nil
	}

	return "", fmt.Errorf("%w: %s", ErrDependencyNotLinked, JSONLibPath)
}
