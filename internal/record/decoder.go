package record

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Alfex4936/mapsrpc/internal/lang"
	"github.com/Alfex4936/mapsrpc/internal/locate"
	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

// Decoder turns value trees into records. It holds only immutable specs and
// is safe for concurrent use.
type Decoder struct {
	layout Layout
	place  placeSpecs
	review reviewSpecs
	log    *slog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger routes fallback and discovery diagnostics to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// New compiles l into a Decoder.
func New(l Layout, opts ...Option) *Decoder {
	d := &Decoder{
		layout: l,
		place:  compilePlace(l),
		review: compileReview(l),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

var std = New(DefaultLayout())

// Default returns the shared Decoder built from DefaultLayout.
func Default() *Decoder { return std }

// Layout returns the layout d was compiled from.
func (d *Decoder) Layout() Layout { return d.layout }

// LocatePlace returns the first node shaped like a place record, trying
// each signature in rank order, or Missing.
func (d *Decoder) LocatePlace(tree value.Value) value.Value {
	for _, sig := range d.place.signatures {
		if root := locate.Discover(tree, sig, d.layout.MaxRootDepth); !root.IsMissing() {
			return root
		}
	}
	return value.Value{}
}

// Place locates the place root in tree and decodes it. When no root is
// found every field is absent and Complete is false.
func (d *Decoder) Place(tree value.Value) model.Place {
	root := d.LocatePlace(tree)
	if root.IsMissing() {
		d.log.Debug("place root not found", slog.Int("max_depth", d.layout.MaxRootDepth))
	}
	return d.PlaceAt(root)
}

// PlaceAt decodes a place from an already located root.
func (d *Decoder) PlaceAt(root value.Value) model.Place {
	got := d.resolveAll(root, d.place.fields, d.place.order)

	p := model.Place{
		ID:          text(got[fieldID]),
		Name:        text(got[fieldName]),
		Address:     text(got[fieldAddress]),
		Rating:      number(got[fieldRating]),
		ReviewCount: count(got[fieldReviewCount]),
		Category:    text(got[fieldCategory]),
		URL:         text(got[fieldURL]),
		Phone:       text(got[fieldPhone]),
		Website:     text(got[fieldWebsite]),
	}

	// coordinates are trusted only as a pair
	lat, lng := got[fieldLatitude], got[fieldLongitude]
	if lat.Found() && lng.Found() {
		p.Latitude, p.Longitude = number(lat), number(lng)
	}

	p.Missing = missing(got, d.place.fields, d.place.order)
	p.Complete = len(p.Missing) == 0
	return p
}

// LocateReviews returns the first node shaped like a list of reviews, or Missing.
func (d *Decoder) LocateReviews(tree value.Value) value.Value {
	return locate.Discover(tree, d.review.signature, d.layout.MaxRootDepth)
}

// Reviews locates the review list in tree and decodes every entry. A
// malformed entry yields a Review with absent fields, never a shorter slice.
func (d *Decoder) Reviews(tree value.Value) []model.Review {
	root := d.LocateReviews(tree)
	if root.IsMissing() {
		d.log.Debug("review list not found", slog.Int("max_depth", d.layout.MaxRootDepth))
		return nil
	}
	items := root.Items()
	out := make([]model.Review, 0, len(items))
	for _, el := range items {
		out = append(out, d.ReviewAt(el))
	}
	return out
}

// ReviewAt decodes one review entry and tags its text with a language.
func (d *Decoder) ReviewAt(el value.Value) model.Review {
	got := d.resolveAll(el, d.review.fields, d.review.order)

	r := model.Review{
		Author:       text(got[fieldAuthor]),
		Rating:       number(got[fieldRating]),
		Text:         text(got[fieldText]),
		RelativeDate: text(got[fieldRelativeDate]),
		HelpfulCount: count(got[fieldHelpful]),
	}
	r.Language = lang.Classify(r.Text)
	r.Missing = missing(got, d.review.fields, d.review.order)
	r.Complete = len(r.Missing) == 0
	return r
}

func (d *Decoder) resolveAll(root value.Value, fields map[string]locate.FieldSpec, order []string) map[string]locate.Resolution {
	got := make(map[string]locate.Resolution, len(order))
	for _, name := range order {
		r := locate.Resolve(root, fields[name])
		if r.Found() && r.Via != "path" {
			d.log.Debug("field resolved by fallback",
				slog.String("field", name),
				slog.String("via", r.Via),
				slog.String("path", fields[name].Path.String()),
			)
		}
		got[name] = r
	}
	return got
}

func missing(got map[string]locate.Resolution, fields map[string]locate.FieldSpec, order []string) []string {
	var out []string
	for _, name := range order {
		if fields[name].Required && !got[name].Found() {
			out = append(out, name)
		}
	}
	return out
}

func text(r locate.Resolution) string {
	s, _ := r.Value.Str()
	return norm.NFC.String(strings.TrimSpace(s))
}

func number(r locate.Resolution) *float64 {
	f, ok := r.Value.Float()
	if !r.Found() || !ok {
		return nil
	}
	return &f
}

func count(r locate.Resolution) *int {
	f := number(r)
	if f == nil {
		return nil
	}
	n := int(math.Round(*f))
	return &n
}
