// Package cli handles cmd line input and candidate queries for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/wordfourth/internal/logger"
	"github.com/bastiangx/wordfourth/internal/utils"
	"github.com/bastiangx/wordfourth/pkg/analogy"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin. A single word runs the
// per-branch enumeration for that word; two words run a direct
// fourth-word query for the pair.
type InputHandler struct {
	finder       *analogy.Finder
	limit        int
	suggestLimit int
	requestCount int
	noFilter     bool
	log          *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
// Output goes through an untimestamped stderr logger so prompt lines stay clean.
func NewInputHandler(finder *analogy.Finder, limit, suggestLimit int, noFilter bool) *InputHandler {
	return &InputHandler{
		finder:       finder,
		limit:        limit,
		suggestLimit: suggestLimit,
		noFilter:     noFilter,
		log:          logger.NewWithConfig("", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("WordFourth CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a word (or two words) and press Enter to see candidates (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes one line of input. One field queries every branch
// pair of the word; two fields query the pair directly.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		if !h.validate(fields[0]) {
			return
		}
		h.handleRoot(fields[0])
	case 2:
		if !h.validate(fields[0]) || !h.validate(fields[1]) {
			return
		}
		h.handleFourth(fields[0], fields[1])
	default:
		h.log.Errorf("Expected one or two words, got %d", len(fields))
	}
}

// validate applies input filtering unless disabled via --no-filter.
func (h *InputHandler) validate(word string) bool {
	if h.noFilter {
		h.log.Debug("Input filtering disabled - accepting raw input")
		return true
	}
	if !utils.IsValidQuery(word) {
		h.log.Warnf("Rejected input: '%s'", word)
		return false
	}
	return true
}

// handleRoot prints one candidate set per branch pair of word.
func (h *InputHandler) handleRoot(word string) {
	mdl := h.finder.Model()
	if mdl.Count(word) == 0 {
		h.log.Warnf("'%s' is not in the corpus", word)
		h.suggestAlternatives(word)
		return
	}

	branches := h.finder.Branches(word)
	if len(branches) == 0 {
		h.log.Printf("'%s' has no successors, so no branch pairs", word)
		return
	}

	sets := h.finder.FindFourthFromRoot(word)
	h.log.Printf("Found %s branch pairs for '%s':", utils.FormatWithCommas(len(branches)), word)
	for i, p := range branches {
		h.printCandidates(fmt.Sprintf("(%s, %s)", p.First, p.Second), sets[i].Words())
	}
}

// handleFourth prints the candidate set for the pair (left, right).
func (h *InputHandler) handleFourth(left, right string) {
	candidates := h.finder.FindFourth(left, right).Words()
	h.printCandidates(fmt.Sprintf("(%s, %s)", left, right), candidates)
}

// printCandidates renders one candidate set, capped at the display limit.
func (h *InputHandler) printCandidates(label string, candidates []string) {
	if len(candidates) == 0 {
		h.log.Printf("%-24s no candidates", label)
		return
	}

	shown := candidates
	if h.limit > 0 && len(shown) > h.limit {
		shown = shown[:h.limit]
	}

	colored := make([]string, len(shown))
	for i, c := range shown {
		colored[i] = fmt.Sprintf("\033[38;5;75m%s\033[0m", c)
	}
	h.log.Printf("%-24s %s (%s total)", label, strings.Join(colored, " "), utils.FormatWithCommas(len(candidates)))
}

// suggestAlternatives offers vocabulary words sharing a prefix with word.
func (h *InputHandler) suggestAlternatives(word string) {
	suggestions := h.finder.Model().WordsWithPrefix(word, h.suggestLimit)
	if len(suggestions) == 0 && len(word) > 1 {
		// retry with a shorter prefix before giving up
		suggestions = h.finder.Model().WordsWithPrefix(word[:len(word)/2], h.suggestLimit)
	}
	if len(suggestions) > 0 {
		h.log.Printf("did you mean: %s", strings.Join(suggestions, " "))
	}
}
