package methods

import "github.com/srobertson/xlit/internal/translit"

// Bulgarian (Cyrillic)-->English (IC). The word-final -ия ending
// contracts to -ia before the map runs, so София renders Sofia
// rather than Sofiya.
func bulgarianIC() translit.Spec {
	pre := []translit.Rule{
		{Pattern: "ИЯ($|" + nonWord + ")", Rewrite: "IA${1}"},
		{Pattern: "Ия($|" + nonWord + ")", Rewrite: "Ia${1}"},
		{Pattern: "ия($|" + nonWord + ")", Rewrite: "ia${1}"},
	}
	pre = append(pre, collapseDoubled(
		[2]rune{'ж', 'Ж'}, [2]rune{'ц', 'Ц'}, [2]rune{'ч', 'Ч'},
		[2]rune{'ш', 'Ш'}, [2]rune{'щ', 'Щ'},
	)...)
	return translit.Spec{
		Name:     "Bulgarian (Cyrillic)-->English (IC)",
		PreRules: pre,
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ж", To: "zh"}, {From: "з", To: "z"}, {From: "и", To: "i"},
			{From: "й", To: "y"}, {From: "к", To: "k"}, {From: "л", To: "l"},
			{From: "м", To: "m"}, {From: "н", To: "n"}, {From: "о", To: "o"},
			{From: "п", To: "p"}, {From: "р", To: "r"}, {From: "с", To: "s"},
			{From: "т", To: "t"}, {From: "у", To: "u"}, {From: "ф", To: "f"},
			{From: "х", To: "h"}, {From: "ц", To: "ts"}, {From: "ч", To: "ch"},
			{From: "ш", To: "sh"}, {From: "щ", To: "sht"}, {From: "ъ", To: "a"},
			{From: "ь", To: "y"}, {From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ж", To: "Zh"}, {From: "З", To: "Z"}, {From: "И", To: "I"},
			{From: "Й", To: "Y"}, {From: "К", To: "K"}, {From: "Л", To: "L"},
			{From: "М", To: "M"}, {From: "Н", To: "N"}, {From: "О", To: "O"},
			{From: "П", To: "P"}, {From: "Р", To: "R"}, {From: "С", To: "S"},
			{From: "Т", To: "T"}, {From: "У", To: "U"}, {From: "Ф", To: "F"},
			{From: "Х", To: "H"}, {From: "Ц", To: "Ts"}, {From: "Ч", To: "Ch"},
			{From: "Ш", To: "Sh"}, {From: "Щ", To: "Sht"}, {From: "Ъ", To: "A"},
			{From: "Ь", To: "Y"}, {From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
		},
	}
}
