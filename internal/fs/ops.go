package fs

import (
	"io"
	"io/fs"
	"os"
	"time"

	apperrors "github.com/kk-code-lab/thunars/internal/errors"
)

// Exists reports whether something (file, directory or dangling link) lives at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CopyFile copies the regular file src to dst. An existing dst is never
// overwritten; a partially written dst is removed.
func CopyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return apperrors.New(apperrors.IOFailure, "copy", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return apperrors.New(apperrors.IOFailure, "copy", src, err)
	}
	if !info.Mode().IsRegular() {
		return apperrors.Newf(apperrors.IOFailure, "copy", src, "not a regular file")
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return apperrors.New(apperrors.IOFailure, "copy", dst, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return apperrors.New(apperrors.IOFailure, "copy", dst, err)
	}
	if err = out.Close(); err != nil {
		return apperrors.New(apperrors.IOFailure, "copy", dst, err)
	}
	return nil
}

// Remove deletes a single file.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return apperrors.New(apperrors.IOFailure, "remove", path, err)
	}
	return nil
}

// Touch creates path if missing and bumps its timestamps otherwise.
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return apperrors.New(apperrors.IOFailure, "touch", path, err)
	}
	if err := f.Close(); err != nil {
		return apperrors.New(apperrors.IOFailure, "touch", path, err)
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return apperrors.New(apperrors.IOFailure, "touch", path, err)
	}
	return nil
}

// MakeDir creates exactly one directory.
func MakeDir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return apperrors.New(apperrors.IOFailure, "mkdir", path, err)
	}
	return nil
}

// Rename moves from to to, refusing to replace an existing target.
func Rename(from, to string) error {
	if Exists(to) {
		return apperrors.New(apperrors.IOFailure, "rename", to, fs.ErrExist)
	}
	if err := os.Rename(from, to); err != nil {
		return apperrors.New(apperrors.IOFailure, "rename", from, err)
	}
	return nil
}
