package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSampleName is the file looked up first inside the samples directory.
const DefaultSampleName = "cv.pdf"

var candidateMarkers = []string{"cv", "resume", "curriculum"}

// Locate resolves the résumé to analyze. An explicit path must exist. Without
// one, samplesDir/cv.pdf is used when present; otherwise the only PDF or DOCX
// in samplesDir whose name mentions cv, resume or curriculum. Several such
// files yield ErrAmbiguousSource, none yields ErrFileNotFound.
func Locate(path, samplesDir string) (string, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", newError("locate", path, ErrFileNotFound, "")
		}
		return path, nil
	}

	def := filepath.Join(samplesDir, DefaultSampleName)
	if info, err := os.Stat(def); err == nil && !info.IsDir() {
		return def, nil
	}

	entries, err := os.ReadDir(samplesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError("locate", samplesDir, ErrFileNotFound, "")
		}
		return "", newError("locate", samplesDir, ErrFileNotFound, err.Error())
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() || !isCandidate(e.Name()) {
			continue
		}
		candidates = append(candidates, filepath.Join(samplesDir, e.Name()))
	}
	sort.Strings(candidates)

	switch len(candidates) {
	case 0:
		return "", newError("locate", samplesDir, ErrFileNotFound, "")
	case 1:
		return candidates[0], nil
	default:
		return "", newError("locate", samplesDir, ErrAmbiguousSource, strings.Join(candidates, ", "))
	}
}

func isCandidate(name string) bool {
	if !Supported(name) {
		return false
	}
	lower := strings.ToLower(name)
	for _, m := range candidateMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
