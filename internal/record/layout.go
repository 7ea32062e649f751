// Package record assembles Place and Review records from a decoded
// response tree using declared field specs and structural signatures.
package record

import (
	"regexp"

	"github.com/Alfex4936/mapsrpc/internal/locate"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

// Layout holds every positional offset the decoder relies on. The offsets
// were inferred from sampled responses and are not a published contract,
// so they are data rather than code.
type Layout struct {
	// place record, relative to its root
	PlaceMinLen  int // root is a List longer than this
	Address      value.Path
	Coords       value.Path // [_, _, lat, lng]
	ID           value.Path
	Name         value.Path
	Website      value.Path
	Category     value.Path
	Rating       value.Path
	ReviewCount  value.Path
	Phone        value.Path
	URL          value.Path
	LatitudeIdx  int // index inside Coords
	LongitudeIdx int
	IDWindow     [2]int // offsets scanned when ID drifts
	ScanMinLen   int    // sibling lists shorter than this are ignored
	ScanDepth    int
	MaxRootDepth int

	// review element, relative to one entry of the review list
	ReviewMinLen int // entries are Lists longer than this
	Author       value.Path
	RelativeDate value.Path
	Text         value.Path
	ReviewRating value.Path
	HelpfulCount value.Path
}

// DefaultLayout matches the responses sampled when this decoder was written.
func DefaultLayout() Layout {
	return Layout{
		PlaceMinLen:  20,
		Address:      value.P(2),
		Coords:       value.P(9),
		ID:           value.P(10),
		Name:         value.P(11),
		Website:      value.P(12),
		Category:     value.P(13, 0),
		Rating:       value.P(14),
		ReviewCount:  value.P(15),
		Phone:        value.P(17),
		URL:          value.P(20),
		LatitudeIdx:  2,
		LongitudeIdx: 3,
		IDWindow:     [2]int{0, 20},
		ScanMinLen:   15,
		ScanDepth:    1,
		MaxRootDepth: 4,

		ReviewMinLen: 4,
		Author:       value.P(0, 1),
		RelativeDate: value.P(1),
		Text:         value.P(3),
		ReviewRating: value.P(4),
		HelpfulCount: value.P(6),
	}
}

var urlPattern = regexp.MustCompile(`^https?://\S+$`)

const (
	fieldID           = "id"
	fieldName         = "name"
	fieldAddress      = "address"
	fieldRating       = "rating"
	fieldReviewCount  = "reviewCount"
	fieldCategory     = "category"
	fieldURL          = "url"
	fieldLatitude     = "latitude"
	fieldLongitude    = "longitude"
	fieldPhone        = "phone"
	fieldWebsite      = "website"
	fieldAuthor       = "author"
	fieldText         = "text"
	fieldRelativeDate = "relativeDate"
	fieldHelpful      = "helpfulCount"
)

// placeSpecs is the compiled, immutable form of a Layout for places.
type placeSpecs struct {
	signatures []locate.Matcher // in rank order
	fields     map[string]locate.FieldSpec
	order      []string
}

type reviewSpecs struct {
	signature locate.ListSignature
	fields    map[string]locate.FieldSpec
	order     []string
}

func join(p value.Path, i int) value.Path {
	out := make(value.Path, 0, len(p)+1)
	return append(append(out, p...), i)
}

func compilePlace(l Layout) placeSpecs {
	scan := locate.SiblingScan{Depth: l.ScanDepth, MinLen: l.ScanMinLen}
	rating := locate.NumberIn(0, 5)
	id := locate.TextMatching(locate.IDPattern)

	specs := []locate.FieldSpec{
		{Name: fieldID, Path: l.ID, Check: id, Required: true,
			Fallback: []locate.Strategy{locate.OffsetWindow{From: l.IDWindow[0], To: l.IDWindow[1]}, scan}},
		{Name: fieldName, Path: l.Name, Check: locate.NonEmptyText(),
			Fallback: []locate.Strategy{scan}},
		{Name: fieldAddress, Path: l.Address, Check: locate.NonEmptyText(),
			Fallback: []locate.Strategy{scan}},
		{Name: fieldRating, Path: l.Rating, Check: rating, Fallback: []locate.Strategy{scan}},
		{Name: fieldReviewCount, Path: l.ReviewCount, Check: locate.NumberIn(0, 1e9), Fallback: []locate.Strategy{scan}},
		{Name: fieldCategory, Path: l.Category, Check: locate.NonEmptyText(), Fallback: categoryFallback(l, scan)},
		{Name: fieldURL, Path: l.URL, Check: locate.TextMatching(urlPattern)},
		{Name: fieldLatitude, Path: join(l.Coords, l.LatitudeIdx), Check: locate.NumberIn(-90, 90)},
		{Name: fieldLongitude, Path: join(l.Coords, l.LongitudeIdx), Check: locate.NumberIn(-180, 180)},
		{Name: fieldPhone, Path: l.Phone, Check: locate.NonEmptyText()},
		{Name: fieldWebsite, Path: l.Website, Check: locate.TextMatching(urlPattern)},
	}

	ps := placeSpecs{
		signatures: []locate.Matcher{
			locate.Signature{
				MinLen: l.PlaceMinLen,
				Probes: []locate.Probe{
					{Path: l.Rating, Check: rating, AllowAbsent: true},
					{Path: l.ID, Check: id},
				},
			},
			// records whose id drifted or was withheld still carry a name
			locate.Signature{
				MinLen: l.PlaceMinLen,
				Probes: []locate.Probe{
					{Path: l.Rating, Check: rating, AllowAbsent: true},
					{Path: l.Name, Check: locate.NonEmptyText()},
				},
			},
			// bare records: nothing but a rating in range
			locate.Signature{
				MinLen: l.PlaceMinLen,
				Probes: []locate.Probe{{Path: l.Rating, Check: rating}},
			},
		},
		fields: make(map[string]locate.FieldSpec, len(specs)),
	}
	for _, s := range specs {
		ps.fields[s.Name] = s
		ps.order = append(ps.order, s.Name)
	}
	return ps
}

// categoryFallback also accepts a bare string where a category list is expected.
func categoryFallback(l Layout, scan locate.Strategy) []locate.Strategy {
	if n := len(l.Category); n > 1 {
		return []locate.Strategy{locate.AltPaths{l.Category[:n-1]}, scan}
	}
	return []locate.Strategy{scan}
}

func compileReview(l Layout) reviewSpecs {
	rating := locate.NumberIn(0, 5)
	specs := []locate.FieldSpec{
		{Name: fieldAuthor, Path: l.Author, Check: locate.NonEmptyText(), Required: true},
		{Name: fieldRating, Path: l.ReviewRating, Check: rating, Required: true},
		{Name: fieldText, Path: l.Text, Check: locate.NonEmptyText()},
		{Name: fieldRelativeDate, Path: l.RelativeDate, Check: locate.NonEmptyText()},
		{Name: fieldHelpful, Path: l.HelpfulCount, Check: locate.NumberIn(0, 1e9)},
	}
	rs := reviewSpecs{
		signature: locate.ListSignature{Element: locate.Signature{
			MinLen: l.ReviewMinLen,
			Probes: []locate.Probe{{Path: l.ReviewRating, Check: rating}},
		}},
		fields: make(map[string]locate.FieldSpec, len(specs)),
	}
	for _, s := range specs {
		rs.fields[s.Name] = s
		rs.order = append(rs.order, s.Name)
	}
	return rs
}
