package bench

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/mapsrpc"
)

// one place record plus a 200-review page, built once.
var (
	placeBody  = mustBody(placeDoc())
	reviewBody = mustBody(reviewDoc(200))
	mixed      = strings.Repeat("ร้านนี้อร่อย great food とても美味しい ", 50)
)

func mustBody(doc any) []byte {
	b, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return append([]byte(")]}'\n"), b...)
}

func placeDoc() any {
	rec := make([]any, 25)
	rec[2] = "1 Charoen Krung Rd, Bangkok"
	rec[9] = []any{nil, nil, 13.72, 100.51}
	rec[10] = "0x30e29ecfc2f455e1:0xc4ad0280d8906604"
	rec[11] = "Jay Fai"
	rec[13] = []any{"Street food"}
	rec[14] = 4.3
	rec[15] = 5120
	// nest like a real response so discovery has to walk a few levels
	return []any{nil, "token", []any{nil, []any{rec}}, []any{1, 2, 3}}
}

func reviewDoc(n int) any {
	texts := []string{"ร้านอาหารน่ากินมาก อร่อย", "Hello there, great food!", "とても美味しいです", "很好吃"}
	list := make([]any, n)
	for i := range list {
		list[i] = []any{[]any{nil, "user"}, "3 days ago", nil, texts[i%len(texts)], 4.0, nil, i}
	}
	return []any{nil, list, "next"}
}

func BenchmarkProcessPlace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := mapsrpc.Process(placeBody, model.Query{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcessReviewsThai(b *testing.B) {
	q := model.Query{Language: model.Thai}
	for i := 0; i < b.N; i++ {
		if _, err := mapsrpc.Process(reviewBody, q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mapsrpc.Classify(mixed)
	}
}

func BenchmarkFilterText(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mapsrpc.FilterText(mixed, model.Japanese) // drops the Thai run
	}
}
