package app

import (
	"fmt"
	"io"
	"os"
)

// copyFile copies src to dst preserving the source mode. dst must not
// already exist; every write in this tool is additive, nothing is
// overwritten.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	// a partial destination must not survive a failed copy, or the next
	// run would treat the file as already copied and never repair it
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

func checkDir(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %q is not accessible: %w", what, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %q is not a directory", what, path)
	}
	return nil
}
