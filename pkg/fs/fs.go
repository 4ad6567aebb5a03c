package fs

import (
	"errors"
	iofs "io/fs"

	"github.com/spf13/afero"
)

// ErrIsDirectory is returned when a regular file was expected but the path
// names a directory.
var ErrIsDirectory = errors.New("is a directory")

// NewOsFs returns the filesystem backed by the operating system.
func NewOsFs() afero.Fs {
	return afero.NewOsFs()
}

// Opens a file for reading and makes sure it is not a directory.
// On success the caller owns the returned file and must close it.
func OpenRegular(fsys afero.Fs, path string) (afero.File, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if stat.IsDir() {
		file.Close()
		return nil, &iofs.PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}

	return file, nil
}
