// ABOUTME: Loader walks a document for tagged elements and injects fetched scripture
// ABOUTME: Each element is validated, fetched pair by pair and rendered as results arrive

package loader

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"scripture-tags/core/action"
	"scripture-tags/core/domain"
	"scripture-tags/core/format"
	"scripture-tags/core/interfaces"
	"scripture-tags/core/present"
	"scripture-tags/core/reference"
)

// DefaultClassName marks elements whose text holds scripture references
const DefaultClassName = "getBible"

// StateAttr records the final state on each processed element so a second pass skips it
const StateAttr = "data-getbible-state"

const modalIDPrefix = "getbible-modal-"

// State is the lifecycle position of one tagged element
type State int

const (
	StateIdle State = iota
	StateValidating
	StateFetching
	StateRendering
	StateDone
	StateAbandoned
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateFetching:
		return "fetching"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	case StateAbandoned:
		return "abandoned"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ElementReport describes what happened to one tagged element
type ElementReport struct {
	Text       string
	Format     domain.Format
	References []string
	State      State
	Fetched    int
	Skipped    int
}

// Result summarizes a Load pass
type Result struct {
	interfaces.LoadResult
	Reports []ElementReport
}

// Loader enriches documents. It is safe for concurrent use across documents;
// a single document is always processed on the calling goroutine.
type Loader struct {
	deps       interfaces.Dependencies
	fetcher    interfaces.ScriptureFetcher
	selector   *present.Selector
	className  string
	actionOpts []action.Option
}

var _ interfaces.DocumentEnricher = (*Loader)(nil)

// Option configures a Loader
type Option func(*Loader)

// WithClassName overrides the tag class
func WithClassName(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.className = name
		}
	}
}

// WithSelector sets the chrome selector
func WithSelector(s *present.Selector) Option {
	return func(l *Loader) {
		if s != nil {
			l.selector = s
		}
	}
}

// WithActionOptions passes defaults through to the attribute parser
func WithActionOptions(opts ...action.Option) Option {
	return func(l *Loader) {
		l.actionOpts = append(l.actionOpts, opts...)
	}
}

// New creates a loader backed by fetcher
func New(deps interfaces.Dependencies, fetcher interfaces.ScriptureFetcher, opts ...Option) *Loader {
	l := &Loader{
		deps:      deps,
		fetcher:   fetcher,
		className: DefaultClassName,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.selector == nil {
		l.selector, _ = present.NewSelector(present.NewRegistry(), present.ChromeBase)
	}
	return l
}

// ClassName returns the tag class the loader looks for
func (l *Loader) ClassName() string {
	return l.className
}

// WithClass returns a copy of the loader that looks for a different class
func (l *Loader) WithClass(name string) *Loader {
	if name == "" || name == l.className {
		return l
	}
	cp := *l
	cp.className = name
	return &cp
}

func (l *Loader) logger() interfaces.Logger {
	if l.deps.Logger == nil {
		return interfaces.NopLogger{}
	}
	return l.deps.Logger
}

// Load processes every tagged element of doc in document order.
// A cancelled context stops the pass between fetches. Finished elements keep
// their content; the interrupted element is restored and left unmarked.
func (l *Loader) Load(ctx context.Context, doc *goquery.Document) Result {
	var result Result

	chrome := l.selector.For(doc)
	body := doc.Find("body").First()
	ids := newIDSource(doc)

	doc.Find("." + l.className).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		if _, seen := el.Attr(StateAttr); seen {
			return true
		}

		report := l.loadElement(ctx, el, body, chrome, ids)
		if report.State == StateCancelled {
			result.Reports = append(result.Reports, report)
			return false
		}
		el.SetAttr(StateAttr, report.State.String())

		result.Elements++
		result.Fetched += report.Fetched
		result.Skipped += report.Skipped
		if report.State == StateAbandoned {
			result.Abandoned++
		}
		result.Reports = append(result.Reports, report)
		return true
	})

	l.logger().Debug("Document loaded", map[string]interface{}{
		"class":     l.className,
		"chrome":    chrome.Name(),
		"elements":  result.Elements,
		"abandoned": result.Abandoned,
		"fetched":   result.Fetched,
		"skipped":   result.Skipped,
	})

	return result
}

func (l *Loader) loadElement(ctx context.Context, el, body *goquery.Selection, chrome present.Chrome, ids present.IDSource) ElementReport {
	report := ElementReport{Text: el.Text(), State: StateValidating}

	cfg, err := action.New(el, l.actionOpts...)
	if err != nil {
		l.logger().Warn("Skipping element with unreadable configuration", map[string]interface{}{
			"error": err.Error(),
		})
		report.State = StateAbandoned
		return report
	}
	report.Format = cfg.Format()

	report.References = reference.Parse(report.Text, l.logger())
	if len(report.References) == 0 {
		l.logger().Warn("No valid references in element", map[string]interface{}{
			"text": report.Text,
		})
		report.State = StateAbandoned
		return report
	}

	formatter := format.For(cfg.Format(), format.SettingsFrom(cfg))
	original := el.Clone()
	presenter := present.New(cfg, el, body, chrome, ids)

	cancel := func() ElementReport {
		rollback(el, original, presenter)
		l.logger().Debug("Element interrupted and restored", map[string]interface{}{
			"text":  report.Text,
			"error": ctx.Err().Error(),
		})
		return ElementReport{Text: report.Text, Format: report.Format, References: report.References, State: StateCancelled}
	}

	for _, ref := range report.References {
		for _, translation := range cfg.Translations() {
			if ctx.Err() != nil {
				return cancel()
			}

			report.State = StateFetching
			refs, err := l.fetcher.Fetch(ctx, translation, ref)
			if err != nil {
				if ctx.Err() != nil {
					return cancel()
				}
				l.logger().Warn("Skipping scripture that could not be fetched", map[string]interface{}{
					"translation": translation,
					"reference":   ref,
					"error":       err.Error(),
				})
				report.Skipped++
				continue
			}

			report.State = StateRendering
			presenter.Load(formatter.Format(refs))
			report.Fetched++
		}
	}

	report.State = StateDone
	return report
}

// rollback puts an interrupted element back the way it was found so a later
// pass processes it from the start
func rollback(el, original *goquery.Selection, presenter present.Presenter) {
	if d, ok := presenter.(present.Discarder); ok {
		d.Discard()
	}
	el.ReplaceWithSelection(original)
}

// Enrich parses a full HTML document, loads it and returns the serialized result
func (l *Loader) Enrich(ctx context.Context, document io.Reader) (string, interfaces.LoadResult, error) {
	doc, err := goquery.NewDocumentFromReader(document)
	if err != nil {
		return "", interfaces.LoadResult{}, fmt.Errorf("parse document: %w", err)
	}

	result := l.Load(ctx, doc)

	out, err := doc.Html()
	if err != nil {
		return "", result.LoadResult, fmt.Errorf("render document: %w", err)
	}
	return out, result.LoadResult, ctx.Err()
}

// EnrichFragment is Enrich for markup without an html or body wrapper.
// Only the body contents are returned, including any appended dialogs.
func (l *Loader) EnrichFragment(ctx context.Context, fragment io.Reader) (string, interfaces.LoadResult, error) {
	doc, err := goquery.NewDocumentFromReader(fragment)
	if err != nil {
		return "", interfaces.LoadResult{}, fmt.Errorf("parse fragment: %w", err)
	}

	result := l.Load(ctx, doc)

	out, err := doc.Find("body").First().Html()
	if err != nil {
		return "", result.LoadResult, fmt.Errorf("render fragment: %w", err)
	}
	return out, result.LoadResult, ctx.Err()
}

// newIDSource numbers dialogs, skipping ids the document already uses
func newIDSource(doc *goquery.Document) present.IDSource {
	n := 0
	return func() string {
		for {
			n++
			id := modalIDPrefix + strconv.Itoa(n)
			if doc.Find("#"+id).Length() == 0 {
				return id
			}
		}
	}
}
