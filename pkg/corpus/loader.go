/*
Package corpus reads raw text resources and turns them into ordered token
sequences for model construction.

The loader is the external collaborator at the front of the pipeline: it owns
the only I/O and the only failure modes. A path can be a single text file or
a directory, in which case every *.txt file inside is read and concatenated
in sorted filename order so a corpus split across files tokenizes the same
way every run.
*/
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bastiangx/wordfourth/pkg/tokenize"
	"github.com/charmbracelet/log"
)

// Loader reads corpus text from a file or a directory of text files.
type Loader struct {
	path      string
	maxTokens int // 0 means unbounded
}

// NewLoader creates a loader for path. maxTokens caps the token sequence
// length; use 0 for no cap.
func NewLoader(path string, maxTokens int) *Loader {
	return &Loader{
		path:      path,
		maxTokens: maxTokens,
	}
}

// Load tokenizes the configured path and returns the ordered token sequence.
func (l *Loader) Load() ([]string, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus path %s: %w", l.path, err)
	}

	var files []string
	if info.IsDir() {
		files, err = l.textFiles()
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .txt files found in %s", l.path)
		}
	} else {
		files = []string{l.path}
	}

	tokens := make([]string, 0, 1024)
	for _, file := range files {
		tokens, err = l.appendFileTokens(tokens, file)
		if err != nil {
			return nil, err
		}
		if l.maxTokens > 0 && len(tokens) >= l.maxTokens {
			log.Warnf("Token cap reached (%d), ignoring remaining corpus input", l.maxTokens)
			tokens = tokens[:l.maxTokens]
			break
		}
	}

	log.Debugf("Corpus loaded: %d tokens from %d file(s)", len(tokens), len(files))
	return tokens, nil
}

// textFiles scans the directory for corpus text files, sorted by name.
func (l *Loader) textFiles() ([]string, error) {
	pattern := filepath.Join(l.path, "*.txt")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for corpus files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// appendFileTokens reads one file line by line and appends its tokens.
// Line-by-line scanning keeps memory bounded on large corpora; a token never
// spans a newline since newlines are separators anyway.
func (l *Loader) appendFileTokens(tokens []string, filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lines := 0
	for scanner.Scan() {
		tokens = append(tokens, tokenize.Split(scanner.Text())...)
		lines++
		if l.maxTokens > 0 && len(tokens) >= l.maxTokens {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", filename, err)
	}

	log.Debugf("Read %d lines from %s", lines, filename)
	return tokens, nil
}
