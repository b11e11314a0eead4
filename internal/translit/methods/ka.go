package methods

import "github.com/srobertson/xlit/internal/translit"

// Georgian (Mkhedruli)-->English (IC). Georgian script is unicameral,
// so case matching does not apply; instead each output word is
// title-cased, which suits the name-and-toponym material this method
// is used for.
func georgianIC() translit.Spec {
	return translit.Spec{
		Name:      "Georgian-->English (IC)",
		TitleCase: true,
		Map: []translit.Pair{
			{From: "ა", To: "a"}, {From: "ბ", To: "b"}, {From: "გ", To: "g"},
			{From: "დ", To: "d"}, {From: "ე", To: "e"}, {From: "ვ", To: "v"},
			{From: "ზ", To: "z"}, {From: "თ", To: "t"}, {From: "ი", To: "i"},
			{From: "კ", To: "k"}, {From: "ლ", To: "l"}, {From: "მ", To: "m"},
			{From: "ნ", To: "n"}, {From: "ო", To: "o"}, {From: "პ", To: "p"},
			{From: "ჟ", To: "zh"}, {From: "რ", To: "r"}, {From: "ს", To: "s"},
			{From: "ტ", To: "t"}, {From: "უ", To: "u"}, {From: "ფ", To: "p"},
			{From: "ქ", To: "k"}, {From: "ღ", To: "gh"}, {From: "ყ", To: "q"},
			{From: "შ", To: "sh"}, {From: "ჩ", To: "ch"}, {From: "ც", To: "ts"},
			{From: "ძ", To: "dz"}, {From: "წ", To: "ts"}, {From: "ჭ", To: "ch"},
			{From: "ხ", To: "kh"}, {From: "ჯ", To: "j"}, {From: "ჰ", To: "h"},
		},
	}
}
