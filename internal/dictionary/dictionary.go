package dictionary

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-ego/gse"
)

// word-boundary oracle for CJK text; gse's *Segmenter satisfies it
type Cutter interface {
	Cut(text string, hmm ...bool) []string
}

// Loader builds a Cutter. It runs at most once per Dictionary.
type Loader func() (Cutter, error)

// Dictionary is a lazily loaded, read-only segmentation model. After the
// first successful Cutter call the model is never mutated, so concurrent
// callers share it without locking.
type Dictionary struct {
	load Loader

	once   sync.Once
	cutter Cutter
	err    error
}

func New(load Loader) *Dictionary {
	return &Dictionary{load: load}
}

// loads the embedded gse dictionary, then any user dictionaries on top
func NewGSE(userDictionaries ...string) *Dictionary {
	paths := make([]string, 0, len(userDictionaries))
	for _, p := range userDictionaries {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return New(func() (Cutter, error) {
		return loadGSE(paths)
	})
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// process-wide dictionary backed by the embedded gse model
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = NewGSE()
	})
	return defaultDict
}

// Load forces the one-time initialisation and reports its error.
func (d *Dictionary) Load() error {
	_, err := d.Cutter()
	return err
}

func (d *Dictionary) Cutter() (Cutter, error) {
	d.once.Do(func() {
		if d.load == nil {
			d.err = fmt.Errorf("dictionary has no loader")
			return
		}
		d.cutter, d.err = d.load()
		if d.err == nil && d.cutter == nil {
			d.err = fmt.Errorf("dictionary loader returned no cutter")
		}
	})
	return d.cutter, d.err
}

// gse lowercases Latin letters by default; units must stay substrings of
// the input
var keepCaseOnce sync.Once

func loadGSE(userDictionaries []string) (Cutter, error) {
	keepCaseOnce.Do(func() {
		gse.ToLower = false
	})

	seg := &gse.Segmenter{SkipLog: true}
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load embedded dictionary: %w", err)
	}
	for _, path := range userDictionaries {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("user dictionary %s: %w", path, err)
		}
		if err := seg.LoadDict(path); err != nil {
			return nil, fmt.Errorf("load user dictionary %s: %w", path, err)
		}
	}
	return seg, nil
}

// Whole is the fallback oracle: the whole text is one unit.
type Whole struct{}

func (Whole) Cut(text string, _ ...bool) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}
