package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap for the seed corpus
)

func addCorpusSeeds(f *testing.F) {
	addExampleSeeds(f)

	// Inline seeds cover the grammar and both error shapes even when the
	// examples directory is absent.
	f.Add([]byte{})
	f.Add([]byte("int main() {\n    return 0;\n}\n"))
	f.Add([]byte("int _n9me() {\n    return 99;\n}"))
	f.Add([]byte("return 7;"))
	f.Add([]byte("ret⫯urn 0;"))
	f.Add([]byte(";"))
	f.Add([]byte("int main() {\n}\n"))
}

func addExampleSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "examples")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".o2" {
			return nil
		}
		// #nosec G304 -- path comes from the repository examples walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
