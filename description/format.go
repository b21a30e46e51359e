package description

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/wordfa/automaton"
)

// Write writes a description of a to w. Reading the description with Parse
// results in an automaton with the same states and transitions.
func Write(w io.Writer, a *automaton.Automaton) error {
	bw := bufio.NewWriter(w)
	if a.Name() != "" {
		fmt.Fprintf(bw, "# %s\n", strings.ReplaceAll(a.Name(), "\n", " "))
	}
	for i := 0; i < a.Size(); i++ {
		s := a.State(i)
		if s.Accepting() {
			fmt.Fprintf(bw, "%d: final\n", i)
		} else {
			fmt.Fprintf(bw, "%d\n", i)
		}
		for _, t := range s.Transitions() {
			fmt.Fprintf(bw, "    %s -> %d\n", quote(t.Token), t.Target)
		}
	}
	return bw.Flush()
}

// bare words need no quotes; the "->" check is done separately
var bare = regexp.MustCompile(`^[^\s":#]+$`)

// quote returns token in a form readable by the scanner.
func quote(token string) string {
	if bare.MatchString(token) && !strings.Contains(token, "->") && isPrintable(token) {
		return token
	}
	return strconv.Quote(token)
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !strconv.IsPrint(r) {
			return false
		}
	}
	return true
}
