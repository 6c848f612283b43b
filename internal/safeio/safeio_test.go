package safeio

import (
	"os"
	"path/filepath"
	"testing"

	"contractreview/internal/tester"
)

func newRoot(t *testing.T) (string, *SafeFS) {
	t.Helper()
	root := t.TempDir()
	tester.NoErr(t, os.WriteFile(filepath.Join(root, "contract.txt"), []byte("正文"), 0o644))
	tester.NoErr(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	tester.NoErr(t, os.WriteFile(filepath.Join(root, "sub", "nested.txt"), []byte("nested"), 0o644))
	sfs, err := NewSafeFS(root)
	tester.NoErr(t, err)
	return root, sfs
}

func TestNewSafeFSValidatesRoot(t *testing.T) {
	_, err := NewSafeFS("")
	tester.Err(t, err)

	_, err = NewSafeFS(filepath.Join(t.TempDir(), "missing"))
	tester.Err(t, err)

	root := t.TempDir()
	file := filepath.Join(root, "f.txt")
	tester.NoErr(t, os.WriteFile(file, nil, 0o644))
	_, err = NewSafeFS(file)
	tester.Err(t, err, "a plain file cannot be a root")
}

func TestResolveRelativePaths(t *testing.T) {
	_, sfs := newRoot(t)

	p, err := sfs.Resolve("contract.txt")
	tester.NoErr(t, err)
	tester.Eq(t, p, filepath.Join(sfs.Root(), "contract.txt"))

	p, err = sfs.Resolve("sub/nested.txt")
	tester.NoErr(t, err)
	tester.Eq(t, p, filepath.Join(sfs.Root(), "sub", "nested.txt"))

	p, err = sfs.Resolve(".")
	tester.NoErr(t, err)
	tester.Eq(t, p, sfs.Root())
}

func TestResolveRejectsTraversal(t *testing.T) {
	_, sfs := newRoot(t)

	_, err := sfs.Resolve("../outside.txt")
	tester.Err(t, err)

	_, err = sfs.Resolve("sub/../../outside.txt")
	tester.Err(t, err)

	_, err = sfs.Resolve("")
	tester.Err(t, err)
}

func TestResolveRejectsAbsoluteOutsideRoot(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "secret.txt")
	tester.NoErr(t, os.WriteFile(outside, []byte("secret"), 0o600))
	_, sfs := newRoot(t)

	_, err := sfs.Resolve(outside)
	tester.Err(t, err)
}

func TestResolveAcceptsAbsoluteInsideRoot(t *testing.T) {
	_, sfs := newRoot(t)

	p, err := sfs.Resolve(filepath.Join(sfs.Root(), "contract.txt"))
	tester.NoErr(t, err)
	tester.Eq(t, p, filepath.Join(sfs.Root(), "contract.txt"))
}

func TestResolveRejectsEscapingSymlink(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "secret.txt")
	tester.NoErr(t, os.WriteFile(outside, []byte("secret"), 0o600))
	root, sfs := newRoot(t)
	link := filepath.Join(root, "link.txt")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, err := sfs.Resolve("link.txt")
	tester.Err(t, err)
}

func TestSafeReadFile(t *testing.T) {
	_, sfs := newRoot(t)

	b, err := sfs.SafeReadFile("contract.txt")
	tester.NoErr(t, err)
	tester.Eq(t, string(b), "正文")

	_, err = sfs.SafeReadFile("sub")
	tester.Err(t, err, "directories are not readable as files")
}

func TestSafeReadDirAndStat(t *testing.T) {
	_, sfs := newRoot(t)

	entries, err := sfs.SafeReadDir("sub")
	tester.NoErr(t, err)
	tester.Eq(t, len(entries), 1)
	tester.Eq(t, entries[0].Name(), "nested.txt")

	_, err = sfs.SafeReadDir("contract.txt")
	tester.Err(t, err)

	info, err := sfs.SafeStat("contract.txt")
	tester.NoErr(t, err)
	tester.False(t, info.IsDir())
}

func TestNilSafeFS(t *testing.T) {
	var sfs *SafeFS
	tester.Eq(t, sfs.Root(), "")
	_, err := sfs.Resolve("anything")
	tester.Err(t, err)
}
