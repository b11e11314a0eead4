package methods

import "github.com/srobertson/xlit/internal/translit"

// Tajik (Cyrillic)-->English (IC). Word-initial е takes the ye form;
// elsewhere it is plain e.
func tajikIC() translit.Spec {
	pre := []translit.Rule{
		{Pattern: "(^|" + nonWord + ")Е", Rewrite: "${1}Ye"},
		{Pattern: "(^|" + nonWord + ")е", Rewrite: "${1}ye"},
	}
	pre = append(pre, collapseDoubled(
		[2]rune{'ж', 'Ж'}, [2]rune{'х', 'Х'}, [2]rune{'ч', 'Ч'},
		[2]rune{'ш', 'Ш'}, [2]rune{'ғ', 'Ғ'}, [2]rune{'ц', 'Ц'},
		[2]rune{'щ', 'Щ'},
	)...)
	return translit.Spec{
		Name:     "Tajik (Cyrillic)-->English (IC)",
		PreRules: pre,
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "ғ", To: "gh"}, {From: "д", To: "d"},
			{From: "е", To: "e"}, {From: "ё", To: "yo"}, {From: "ж", To: "zh"},
			{From: "з", To: "z"}, {From: "и", To: "i"}, {From: "ӣ", To: "i"},
			{From: "й", To: "y"}, {From: "к", To: "k"}, {From: "қ", To: "q"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ӯ", To: "u"}, {From: "ф", To: "f"}, {From: "х", To: "kh"},
			{From: "ҳ", To: "h"}, {From: "ч", To: "ch"}, {From: "ҷ", To: "j"},
			{From: "ш", To: "sh"}, {From: "ц", To: "ts"}, {From: "щ", To: "shch"},
			{From: "ы", To: "y"}, {From: "э", To: "e"}, {From: "ю", To: "yu"},
			{From: "я", To: "ya"}, {From: "ъ", To: ""}, {From: "ь", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Ғ", To: "Gh"}, {From: "Д", To: "D"},
			{From: "Е", To: "E"}, {From: "Ё", To: "Yo"}, {From: "Ж", To: "Zh"},
			{From: "З", To: "Z"}, {From: "И", To: "I"}, {From: "Ӣ", To: "I"},
			{From: "Й", To: "Y"}, {From: "К", To: "K"}, {From: "Қ", To: "Q"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ӯ", To: "U"}, {From: "Ф", To: "F"}, {From: "Х", To: "Kh"},
			{From: "Ҳ", To: "H"}, {From: "Ч", To: "Ch"}, {From: "Ҷ", To: "J"},
			{From: "Ш", To: "Sh"}, {From: "Ц", To: "Ts"}, {From: "Щ", To: "Shch"},
			{From: "Ы", To: "Y"}, {From: "Э", To: "E"}, {From: "Ю", To: "Yu"},
			{From: "Я", To: "Ya"}, {From: "Ъ", To: ""}, {From: "Ь", To: ""},
		},
	}
}
