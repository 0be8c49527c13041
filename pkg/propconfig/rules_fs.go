package propconfig

import (
	"fmt"
	"os"
	"strings"
)

// Exists fails when a present path does not stat successfully.
func Exists() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if _, err := os.Stat(string(value)); err != nil {
			return Failure(NewValidationError(name, "Path does not exist").WithActual(string(value)))
		}
		return Success()
	}
}

// FileExists fails when a present path does not stat to a regular file.
func FileExists() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		info, err := os.Stat(string(value))
		if err != nil || info.IsDir() {
			return Failure(NewValidationError(name, "Path is not an existing file").WithActual(string(value)))
		}
		return Success()
	}
}

// DirectoryExists fails when a present path does not stat to a directory.
func DirectoryExists() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		info, err := os.Stat(string(value))
		if err != nil || !info.IsDir() {
			return Failure(NewValidationError(name, "Path is not an existing directory").WithActual(string(value)))
		}
		return Success()
	}
}

// IsDirectory is an alias of DirectoryExists, matching the catalogue's
// separate naming for the same predicate.
func IsDirectory() Rule[FilePath] {
	return DirectoryExists()
}

// IsFile is an alias of FileExists.
func IsFile() Rule[FilePath] {
	return FileExists()
}

func statMode(path string) (os.FileMode, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.Mode(), true
}

// Readable fails when a present path cannot be opened for reading.
func Readable() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		f, err := os.Open(string(value))
		if err != nil {
			return Failure(NewValidationError(name, "Path is not readable").WithActual(string(value)))
		}
		f.Close()
		return Success()
	}
}

// Writable fails when a present path's permission bits do not grant the
// owner write access. Filesystem rules report a typed error rather than
// propagating the underlying I/O failure.
func Writable() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		mode, ok := statMode(string(value))
		if !ok || mode.Perm()&0200 == 0 {
			return Failure(NewValidationError(name, "Path is not writable").WithActual(string(value)))
		}
		return Success()
	}
}

// Executable fails when a present path's permission bits do not grant the
// owner execute access.
func Executable() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		mode, ok := statMode(string(value))
		if !ok || mode.Perm()&0100 == 0 {
			return Failure(NewValidationError(name, "Path is not executable").WithActual(string(value)))
		}
		return Success()
	}
}

// IsEmptyDirectory fails when a present path is not a directory, or is a
// directory with at least one entry.
func IsEmptyDirectory() Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		entries, err := os.ReadDir(string(value))
		if err != nil {
			return Failure(NewValidationError(name, "Path is not a directory").WithActual(string(value)))
		}
		if len(entries) != 0 {
			return Failure(NewValidationError(name, "Directory is not empty").WithActual(string(value)))
		}
		return Success()
	}
}

// HasExtension fails when a present path's extension does not match ext.
// ext may be given with or without a leading dot.
func HasExtension(ext string) Rule[FilePath] {
	want := "." + strings.TrimPrefix(ext, ".")
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		if !strings.HasSuffix(string(value), want) {
			return Failure(NewValidationError(name, fmt.Sprintf("Path must have extension %s", want)).
				WithActual(string(value)))
		}
		return Success()
	}
}

// FileSizeBetween fails when a present path does not stat to a regular
// file whose size in bytes is within [lo, hi] inclusive.
func FileSizeBetween(lo, hi int64) Rule[FilePath] {
	return func(name string, value FilePath, present bool, _ *PropertyContext) ValidationResult {
		if !present {
			return Success()
		}
		info, err := os.Stat(string(value))
		if err != nil || info.IsDir() {
			return Failure(NewValidationError(name, "Path is not an existing file").WithActual(string(value)))
		}
		if info.Size() < lo || info.Size() > hi {
			return Failure(NewValidationError(name, fmt.Sprintf("File size %d is outside range [%d, %d]", info.Size(), lo, hi)).
				WithActual(fmt.Sprint(info.Size())))
		}
		return Success()
	}
}
