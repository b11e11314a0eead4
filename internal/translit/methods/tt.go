package methods

import "github.com/srobertson/xlit/internal/translit"

// Tatar (Cyrillic)-->English (IC).
func tatarIC() translit.Spec {
	return translit.Spec{
		Name: "Tatar (Cyrillic)-->English (IC)",
		PreRules: collapseDoubled(
			[2]rune{'ж', 'Ж'}, [2]rune{'ң', 'Ң'}, [2]rune{'х', 'Х'},
			[2]rune{'ц', 'Ц'}, [2]rune{'ч', 'Ч'}, [2]rune{'ш', 'Ш'},
			[2]rune{'щ', 'Щ'},
		),
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "ә", To: "a"}, {From: "б", To: "b"},
			{From: "в", To: "v"}, {From: "г", To: "g"}, {From: "д", To: "d"},
			{From: "е", To: "e"}, {From: "ё", To: "yo"}, {From: "ж", To: "zh"},
			{From: "җ", To: "j"}, {From: "з", To: "z"}, {From: "и", To: "i"},
			{From: "й", To: "y"}, {From: "к", To: "k"}, {From: "л", To: "l"},
			{From: "м", To: "m"}, {From: "н", To: "n"}, {From: "ң", To: "ng"},
			{From: "о", To: "o"}, {From: "ө", To: "o"}, {From: "п", To: "p"},
			{From: "р", To: "r"}, {From: "с", To: "s"}, {From: "т", To: "t"},
			{From: "у", To: "u"}, {From: "ү", To: "u"}, {From: "ф", To: "f"},
			{From: "х", To: "kh"}, {From: "һ", To: "h"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "shch"},
			{From: "ы", To: "y"}, {From: "э", To: "e"}, {From: "ю", To: "yu"},
			{From: "я", To: "ya"}, {From: "ь", To: ""}, {From: "ъ", To: ""},
			{From: "А", To: "A"}, {From: "Ә", To: "A"}, {From: "Б", To: "B"},
			{From: "В", To: "V"}, {From: "Г", To: "G"}, {From: "Д", To: "D"},
			{From: "Е", To: "E"}, {From: "Ё", To: "Yo"}, {From: "Ж", To: "Zh"},
			{From: "Җ", To: "J"}, {From: "З", To: "Z"}, {From: "И", To: "I"},
			{From: "Й", To: "Y"}, {From: "К", To: "K"}, {From: "Л", To: "L"},
			{From: "М", To: "M"}, {From: "Н", To: "N"}, {From: "Ң", To: "Ng"},
			{From: "О", To: "O"}, {From: "Ө", To: "O"}, {From: "П", To: "P"},
			{From: "Р", To: "R"}, {From: "С", To: "S"}, {From: "Т", To: "T"},
			{From: "У", To: "U"}, {From: "Ү", To: "U"}, {From: "Ф", To: "F"},
			{From: "Х", To: "Kh"}, {From: "Һ", To: "H"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Shch"},
			{From: "Ы", To: "Y"}, {From: "Э", To: "E"}, {From: "Ю", To: "Yu"},
			{From: "Я", To: "Ya"}, {From: "Ь", To: ""}, {From: "Ъ", To: ""},
		},
	}
}
