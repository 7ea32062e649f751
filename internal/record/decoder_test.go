package record

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/value"
)

const placeID = "0x30e29ecfc2f455e1:0xc4ad0280d8906604"

func f64(f float64) *float64 { return &f }
func intp(n int) *int        { return &n }

// placeRoot builds a 25-element place record; set overrides single offsets.
func placeRoot(set map[int]value.Value) value.Value {
	items := make([]value.Value, 25)
	for i := range items {
		items[i] = value.NewNull()
	}
	items[2] = value.NewText("99 Sukhumvit Rd, Bangkok 10110")
	items[9] = value.Of([]any{nil, nil, 13.7563, 100.5018})
	items[10] = value.NewText(placeID)
	items[11] = value.NewText("Baan Khanitha")
	items[12] = value.NewText("https://baan-khanitha.example")
	items[13] = value.Of([]any{"Thai restaurant", "Restaurant"})
	items[14] = value.NewNumber(4.3)
	items[15] = value.NewNumber(1234)
	items[17] = value.NewText("+66 2 258 4128")
	items[20] = value.NewText("https://maps.example/place?ftid=" + placeID)
	for i, v := range set {
		items[i] = v
	}
	return value.NewList(items...)
}

func wrap(root value.Value) value.Value {
	// single-place responses bury the record a few levels down
	return value.NewList(
		value.NewNull(),
		value.NewText("session-token"),
		value.NewList(value.NewNumber(1), value.NewList(root)),
	)
}

func fullPlace() model.Place {
	return model.Place{
		ID:          placeID,
		Name:        "Baan Khanitha",
		Address:     "99 Sukhumvit Rd, Bangkok 10110",
		Rating:      f64(4.3),
		ReviewCount: intp(1234),
		Category:    "Thai restaurant",
		URL:         "https://maps.example/place?ftid=" + placeID,
		Latitude:    f64(13.7563),
		Longitude:   f64(100.5018),
		Phone:       "+66 2 258 4128",
		Website:     "https://baan-khanitha.example",
		Complete:    true,
	}
}

func TestPlace_Complete(t *testing.T) {
	got := Default().Place(wrap(placeRoot(nil)))

	if diff := cmp.Diff(fullPlace(), got); diff != "" {
		t.Fatalf("Place() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlace_MissingID(t *testing.T) {
	got := Default().Place(wrap(placeRoot(map[int]value.Value{10: {}})))

	want := fullPlace()
	want.ID = ""
	want.Complete = false
	want.Missing = []string{"id"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Place() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlace_IDDriftedIsRecovered(t *testing.T) {
	got := Default().Place(wrap(placeRoot(map[int]value.Value{
		10: value.NewNull(),
		19: value.NewText(placeID),
	})))
	assert.Equal(t, placeID, got.ID)
	assert.True(t, got.Complete)
}

func TestPlace_NoRoot(t *testing.T) {
	for _, tree := range []value.Value{
		{},
		value.NewNull(),
		value.Of([]any{1.0, "x", []any{}}),
		value.Of(map[string]any{"a": []any{nil}}),
	} {
		got := Default().Place(tree)
		assert.False(t, got.Complete)
		assert.Equal(t, []string{"id"}, got.Missing)
		assert.Empty(t, got.Name)
		assert.Nil(t, got.Rating)
		assert.Nil(t, got.Latitude)
	}
}

// bareRoot holds nothing but the fields set.
func bareRoot(set map[int]value.Value) value.Value {
	items := make([]value.Value, 25)
	for i := range items {
		items[i] = value.NewNull()
	}
	for i, v := range set {
		items[i] = v
	}
	return value.NewList(items...)
}

func TestPlace_IDAndRatingOnly(t *testing.T) {
	got := Default().Place(wrap(bareRoot(map[int]value.Value{
		10: value.NewText(placeID),
		14: value.NewNumber(4.3),
	})))

	want := model.Place{ID: placeID, Rating: f64(4.3), Complete: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Place() mismatch (-want +got):\n%s", diff)
	}
}

func TestPlace_RatingOnlyStillDecodes(t *testing.T) {
	got := Default().Place(wrap(bareRoot(map[int]value.Value{14: value.NewNumber(4.3)})))

	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.3, *got.Rating)
	assert.Empty(t, got.ID)
	assert.False(t, got.Complete)
	assert.Equal(t, []string{"id"}, got.Missing)
}

func TestPlace_NameAndAddressAreOptional(t *testing.T) {
	got := Default().Place(wrap(placeRoot(map[int]value.Value{
		2:  value.NewNull(),
		11: value.NewNull(),
	})))
	assert.Empty(t, got.Name)
	assert.Empty(t, got.Address)
	assert.Equal(t, placeID, got.ID)
	assert.True(t, got.Complete)
	assert.Empty(t, got.Missing)
}

func TestPlace_CoordinatesArePaired(t *testing.T) {
	got := Default().Place(wrap(placeRoot(map[int]value.Value{
		9: value.Of([]any{nil, nil, 95.0, 100.5}),
	})))
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
	assert.True(t, got.Complete, "coordinates are optional")

	got = Default().Place(wrap(placeRoot(map[int]value.Value{
		9: value.Of([]any{nil, nil, 13.7}),
	})))
	assert.Nil(t, got.Latitude)
	assert.Nil(t, got.Longitude)
}

func TestPlace_RatingOutOfRangeIsAbsent(t *testing.T) {
	got := Default().PlaceAt(placeRoot(map[int]value.Value{14: value.NewNumber(7)}))
	assert.Nil(t, got.Rating)
	assert.Equal(t, placeID, got.ID)
}

func TestPlace_FallbacksAreLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := New(DefaultLayout(), WithLogger(log))

	padded := make([]any, 16)
	padded[14] = 4.1
	root := placeRoot(map[int]value.Value{
		5:  value.Of(padded),
		13: value.NewText("Noodle shop"),
		14: value.NewNull(),
	})

	got := d.PlaceAt(root)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.1, *got.Rating)
	assert.Equal(t, "Noodle shop", got.Category)
	assert.Contains(t, buf.String(), "field resolved by fallback")
	assert.Contains(t, buf.String(), "field=rating")
	assert.Contains(t, buf.String(), "field=category")
}

func TestPlace_CustomLayout(t *testing.T) {
	l := DefaultLayout()
	l.Rating = value.P(16)
	d := New(l)

	got := d.Place(wrap(placeRoot(map[int]value.Value{16: value.NewNumber(3.5), 14: value.NewNull()})))
	require.NotNil(t, got.Rating)
	assert.Equal(t, 3.5, *got.Rating)
	assert.Equal(t, l, d.Layout())
}

func reviewEntry(author, date, text string, rating float64, helpful any) value.Value {
	return value.Of([]any{
		[]any{"https://profiles.example/" + author, author, nil},
		date,
		nil,
		text,
		rating,
		nil,
		helpful,
	})
}

func TestReviews(t *testing.T) {
	tree := value.NewList(
		value.NewNull(),
		value.NewText("next-page-token"),
		value.NewList(
			reviewEntry("Somchai", "2 weeks ago", "ร้านอาหารน่ากินมาก", 5, 3.0),
			reviewEntry("John", "a month ago", "Hello there, great food!", 4, nil),
			value.NewText("junk"),
		),
	)

	got := Default().Reviews(tree)
	want := []model.Review{
		{Author: "Somchai", Rating: f64(5), Text: "ร้านอาหารน่ากินมาก", RelativeDate: "2 weeks ago", HelpfulCount: intp(3), Language: model.Thai, Complete: true},
		{Author: "John", Rating: f64(4), Text: "Hello there, great food!", RelativeDate: "a month ago", Language: model.English, Complete: true},
		{Language: model.Unknown, Missing: []string{"author", "rating"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Reviews() mismatch (-want +got):\n%s", diff)
	}
}

func TestReviews_MalformedFirstEntry(t *testing.T) {
	tree := value.NewList(value.NewNull(), value.NewList(
		value.Of([]any{"garbage"}),
		reviewEntry("A", "1 day ago", "Hello there, great food!", 5, nil),
		reviewEntry("B", "2 days ago", "Hello there, great food!", 4, nil),
		reviewEntry("C", "3 days ago", "Hello there, great food!", 3, nil),
	))

	got := Default().Reviews(tree)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"author", "rating"}, got[0].Missing)
	assert.False(t, got[0].Complete)
	for i, author := range []string{"A", "B", "C"} {
		assert.Equal(t, author, got[i+1].Author)
		assert.True(t, got[i+1].Complete)
	}
}

func TestReviews_MalformedMajority(t *testing.T) {
	tree := value.NewList(value.NewNull(), value.NewList(
		value.Of([]any{"garbage"}),
		reviewEntry("A", "1 day ago", "Hello there, great food!", 5, nil),
		value.Of([]any{1.0, 2.0, 3.0, 4.0, "x", 6.0}),
		reviewEntry("B", "2 days ago", "Hello there, great food!", 4, nil),
		value.NewText("junk"),
	))

	got := Default().Reviews(tree)
	require.Len(t, got, 5)
	var authors []string
	complete := 0
	for _, r := range got {
		authors = append(authors, r.Author)
		if r.Complete {
			complete++
		}
	}
	assert.Equal(t, []string{"", "A", "", "B", ""}, authors)
	assert.Equal(t, 2, complete)
}

func TestReviews_NotFound(t *testing.T) {
	assert.Nil(t, Default().Reviews(value.Of([]any{"a", []any{1.0, 2.0}})))
	assert.Nil(t, Default().Reviews(wrap(placeRoot(nil))))
}

func TestReviewAt_RatingOnly(t *testing.T) {
	r := Default().ReviewAt(reviewEntry("Anna", "a year ago", "", 2, nil))
	assert.True(t, r.Complete)
	assert.Empty(t, r.Text)
	assert.Equal(t, model.Unknown, r.Language)
}
