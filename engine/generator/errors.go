package generator

import "fmt"

// ConfigurationError reports entity metadata that the generator cannot work
// with. It is raised before any filesystem side effect.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// AlreadyExistsError reports that the controller target path is already
// occupied. The caller must remove the stale file or pick another entity
// before retrying.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("unable to generate the controller as %s already exists", e.Path)
}
