package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultMaxPaths is the limit for the number of partial paths in flight during
// enumeration, if neither an option nor the configuration sets one.
const DefaultMaxPaths = 1 << 20

// --- Enumeration options ---------------------------------------------------

// Option configures the enumeration of a language.
type Option func(*limits)

type limits struct {
	maxDepth int  // 0 = unbounded
	maxWords int  // 0 = unbounded
	maxPaths int  // 0 = unbounded
	distinct bool // suppress duplicates
}

// MaxDepth limits words to at most n tokens. Partial paths of n tokens will
// not be extended any further. n = 0 means no limit.
func MaxDepth(n int) Option {
	return func(l *limits) {
		l.maxDepth = atLeastZero(n)
	}
}

// MaxWords stops enumeration after n words have been produced.
// n = 0 means no limit.
func MaxWords(n int) Option {
	return func(l *limits) {
		l.maxWords = atLeastZero(n)
	}
}

// MaxPaths limits the number of partial paths kept during enumeration.
// If the limit is exceeded, enumeration stops with ErrPathLimitExceeded.
// n = 0 means no limit.
func MaxPaths(n int) Option {
	return func(l *limits) {
		l.maxPaths = atLeastZero(n)
	}
}

// Distinct sets or clears suppression of duplicate words. Duplicates occur if
// different paths spell the same word.
func Distinct(b bool) Option {
	return func(l *limits) {
		l.distinct = b
	}
}

func atLeastZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// configuredLimits reads default limits from the global configuration.
func configuredLimits() limits {
	l := limits{
		maxDepth: atLeastZero(gconf.GetInt("wordfa.max-depth")),
		maxWords: atLeastZero(gconf.GetInt("wordfa.max-words")),
		maxPaths: DefaultMaxPaths,
		distinct: gconf.GetBool("wordfa.distinct"),
	}
	if gconf.IsSet("wordfa.max-paths") {
		l.maxPaths = atLeastZero(gconf.GetInt("wordfa.max-paths"))
	}
	return l
}

// --- Language enumeration --------------------------------------------------

// partial is a path under construction, walking backwards from an accepting
// state. suffix is the part of a word spelled by the path so far.
type partial struct {
	state  int
	suffix string
	depth  int // number of tokens in suffix
}

// Language is an iterator over the words accepted by an automaton.
// Create one with ReverseAutomaton.Language and call Next until it returns
// false; then check Err.
type Language struct {
	ra      *ReverseAutomaton
	limits  limits
	paths   *doublylinkedlist.List // FIFO of *partial
	seen    *hashset.Set           // words produced, if distinct
	word    string
	count   int
	err     error
	stopped bool
}

// Language starts an enumeration of the words accepted by the automaton.
//
// Paths are seeded with one empty path for every accepting state. Paths are
// then taken from a queue one by one. A path which has reached the start state
// spells an accepted word. Whether or not it has reached the start state, a
// path is extended by every incoming edge of its state, prepending the edge's
// token. Enumeration ends when no path is left to extend.
//
// If the automaton has a cycle backward-reachable from an accepting state,
// enumeration would not terminate. Clients have to set a depth bound for
// such automata; without one, the language will not produce any word and
// Err will return ErrInfiniteLanguage.
func (ra *ReverseAutomaton) Language(opts ...Option) *Language {
	lang := &Language{
		ra:     ra,
		limits: configuredLimits(),
		paths:  doublylinkedlist.New(),
	}
	for _, opt := range opts {
		opt(&lang.limits)
	}
	if lang.limits.distinct {
		lang.seen = hashset.New()
	}
	tracer().Debugf("enumerate language of %q with limits %+v", ra.name, lang.limits)
	if lang.limits.maxDepth == 0 {
		if cycle := ra.Cycle(); cycle != nil {
			lang.stop(fmt.Errorf("cycle through states %v: %w", cycle, ErrInfiniteLanguage))
			return lang
		}
	}
	for _, acc := range ra.accepting {
		lang.paths.Add(&partial{state: acc})
	}
	return lang
}

// Next advances to the next accepted word. It returns false if there are no
// more words or if an error occurred.
func (lang *Language) Next() bool {
	if lang.stopped {
		return false
	}
	if lang.limits.maxWords > 0 && lang.count >= lang.limits.maxWords {
		lang.stop(nil)
		return false
	}
	for !lang.paths.Empty() {
		front, _ := lang.paths.Get(0)
		lang.paths.Remove(0)
		p := front.(*partial)
		if err := lang.extend(p); err != nil {
			lang.stop(err)
			return false
		}
		if p.state != 0 {
			continue
		}
		if lang.seen != nil {
			if lang.seen.Contains(p.suffix) {
				continue
			}
			lang.seen.Add(p.suffix)
		}
		lang.word = p.suffix
		lang.count++
		return true
	}
	lang.stop(nil)
	return false
}

// extend queues one new path for every edge leading into p's state.
func (lang *Language) extend(p *partial) error {
	if lang.limits.maxDepth > 0 && p.depth >= lang.limits.maxDepth {
		return nil
	}
	incoming := lang.ra.states[p.state].incoming
	if lang.limits.maxPaths > 0 && lang.paths.Size()+incoming.Size() > lang.limits.maxPaths {
		return fmt.Errorf("%d paths in flight: %w", lang.paths.Size()+incoming.Size(), ErrPathLimitExceeded)
	}
	it := incoming.Iterator()
	for it.Next() {
		e := it.Value().(Edge)
		lang.paths.Add(&partial{
			state:  e.Source,
			suffix: e.Token + p.suffix,
			depth:  p.depth + 1,
		})
	}
	return nil
}

func (lang *Language) stop(err error) {
	lang.stopped = true
	lang.err = err
	lang.word = ""
	lang.paths.Clear()
	if err != nil {
		tracer().Errorf("enumeration of %q stopped: %v", lang.ra.name, err)
	}
}

// Word returns the word found by the last call to Next.
func (lang *Language) Word() string {
	return lang.word
}

// Count returns the number of words produced so far.
func (lang *Language) Count() int {
	return lang.count
}

// Err returns the error which stopped the enumeration, if any.
func (lang *Language) Err() error {
	return lang.err
}

// Words collects all the words of the language.
// If enumeration stops with an error, the words found so far are returned
// together with the error.
func (ra *ReverseAutomaton) Words(opts ...Option) ([]string, error) {
	words := make([]string, 0, 16)
	lang := ra.Language(opts...)
	for lang.Next() {
		words = append(words, lang.Word())
	}
	return words, lang.Err()
}

// Language is a shortcut for Reverse(a).Language(opts…).
func (a *Automaton) Language(opts ...Option) *Language {
	return Reverse(a).Language(opts...)
}
