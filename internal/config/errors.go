package config

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no configuration file exists at any candidate
// path. There is no underlying cause; it is synthesized from the missing
// file condition.
var ErrNotFound = errors.New("unable to locate config file")

// EnvError reports that the home directory could not be resolved from the
// environment. Nothing on disk was touched when this is returned.
type EnvError struct {
	Err error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("could not resolve home directory: %v", e.Err)
}

func (e *EnvError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure other than a missing file, such as
// a permission problem while reading a candidate path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error reading config file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// SchemaError reports that a config file was read but its content is not
// valid YAML or does not satisfy the required shape.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("problem with config %s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
