package testdata

import (
	"os"
	"path/filepath"
)

// Beatmap is a short chart at 128 bpm with a 1.5s lead in.
const Beatmap = `1.5
128
D
0 4 8
12 16
F
1 5 9 13
J
2 6
10 14
K
3 7 11 15
`

// WriteBeatmap writes contents as dir/name and returns the path.
func WriteBeatmap(dir, name, contents string) (string, error) {
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(contents), 0o644); nil != err {
		return "", err
	}
	return p, nil
}
