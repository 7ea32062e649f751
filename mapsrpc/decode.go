// Package mapsrpc decodes responses of the maps service's internal RPC
// channel into place and review records.
//
// Bodies are JSON prefixed with )]}' and carry records as positional
// arrays without a published schema. Field offsets drift between response
// variants, so every field is located through a declared path with ranked
// fallbacks and a validator; drift shows up as absent fields and
// Complete=false, never as an error. Only an unreadable envelope fails.
package mapsrpc

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Alfex4936/mapsrpc/internal/lang"
	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/parse"
	"github.com/Alfex4936/mapsrpc/internal/record"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

// Parse strips the anti-hijacking prefix and decodes the JSON payload.
func Parse(raw []byte) (value.Value, error) { return parse.Parse(raw) }

// DecodePlace extracts the place record from a parsed tree.
func DecodePlace(tree value.Value) model.Place { return record.Default().Place(tree) }

// DecodeReviews extracts every review from a parsed tree.
func DecodeReviews(tree value.Value) []model.Review { return record.Default().Reviews(tree) }

// Classify labels text by script: en, th, ja, zh or unknown.
func Classify(text string) model.LanguageTag { return lang.Classify(text) }

// FilterText removes runes outside the script set of target.
func FilterText(text string, target model.LanguageTag) string { return lang.FilterText(text, target) }

// ShouldInclude reports whether text should be kept for target.
func ShouldInclude(text string, target model.LanguageTag) bool {
	return lang.ShouldInclude(text, target)
}

// Processor runs parse, decode and the language policy with one Decoder.
// It is safe for concurrent use.
type Processor struct {
	dec *record.Decoder
}

// NewProcessor returns a Processor using dec, or the default decoder when nil.
func NewProcessor(dec *record.Decoder) *Processor {
	if dec == nil {
		dec = record.Default()
	}
	return &Processor{dec: dec}
}

var std = NewProcessor(nil)

// Process runs the default Processor.
func Process(raw []byte, q model.Query) (*model.Result, error) { return std.Process(raw, q) }

// Process decodes one response body for q.
//
// The place is nil when the body has no place root. Reviews are filtered
// by q.Language: reviews that pass ShouldInclude keep their text after
// FilterText, reviews without text are kept as-is, the rest are counted in
// Dropped. An empty or unknown language disables filtering.
func (p *Processor) Process(raw []byte, q model.Query) (*model.Result, error) {
	tree, err := parse.Parse(raw)
	if err != nil {
		return nil, err
	}

	res := &model.Result{Query: q}
	if root := p.dec.LocatePlace(tree); !root.IsMissing() {
		place := p.dec.PlaceAt(root)
		res.Place = &place
	}
	res.Reviews, res.Dropped = FilterReviews(p.dec.Reviews(tree), q.Language)
	return res, nil
}

// FilterReviews applies the inclusion policy for target and returns the
// kept reviews together with the number dropped. The input is not modified.
func FilterReviews(reviews []model.Review, target model.LanguageTag) ([]model.Review, int) {
	out := make([]model.Review, 0, len(reviews))
	if target == "" || target == model.Unknown {
		return append(out, reviews...), 0
	}

	dropped := 0
	for _, r := range reviews {
		switch {
		case r.Text == "":
		case lang.ShouldInclude(r.Text, target):
			r.Text = lang.FilterText(r.Text, target)
		default:
			dropped++
			continue
		}
		out = append(out, r)
	}
	return out, dropped
}

// ProcessAll runs Process over bodies concurrently, at most limit at a
// time (GOMAXPROCS when limit <= 0). Results keep the input order. The
// first hard error cancels the remaining bodies and is returned.
func (p *Processor) ProcessAll(ctx context.Context, bodies [][]byte, q model.Query, limit int) ([]*model.Result, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	out := make([]*model.Result, len(bodies))
	for i, b := range bodies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Process(b, q)
			if err != nil {
				return fmt.Errorf("body %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessAll runs the default Processor over bodies.
func ProcessAll(ctx context.Context, bodies [][]byte, q model.Query, limit int) ([]*model.Result, error) {
	return std.ProcessAll(ctx, bodies, q, limit)
}
