package methods

import "github.com/srobertson/xlit/internal/translit"

// Uyghur (Cyrillic)-->English (IC). Distinct from the other Turkic tables:
// в is w, х is x, җ carries the zh digraph while ж is plain j.
func uyghurIC() translit.Spec {
	return translit.Spec{
		Name: "Uyghur (Cyrillic)-->English (IC)",
		PreRules: collapseDoubled(
			[2]rune{'җ', 'Җ'}, [2]rune{'ғ', 'Ғ'}, [2]rune{'ң', 'Ң'},
			[2]rune{'ч', 'Ч'}, [2]rune{'ш', 'Ш'},
		),
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "ә", To: "e"}, {From: "б", To: "b"},
			{From: "в", To: "w"}, {From: "г", To: "g"}, {From: "ғ", To: "gh"},
			{From: "д", To: "d"}, {From: "е", To: "e"}, {From: "ё", To: "yo"},
			{From: "ж", To: "j"}, {From: "җ", To: "zh"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "қ", To: "q"}, {From: "л", To: "l"}, {From: "м", To: "m"},
			{From: "н", To: "n"}, {From: "ң", To: "ng"}, {From: "о", To: "o"},
			{From: "ө", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ү", To: "u"}, {From: "ф", To: "f"}, {From: "х", To: "x"},
			{From: "һ", To: "h"}, {From: "ч", To: "ch"}, {From: "ш", To: "sh"},
			{From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "ь", To: ""}, {From: "ъ", To: ""},
			{From: "А", To: "A"}, {From: "Ә", To: "E"}, {From: "Б", To: "B"},
			{From: "В", To: "W"}, {From: "Г", To: "G"}, {From: "Ғ", To: "Gh"},
			{From: "Д", To: "D"}, {From: "Е", To: "E"}, {From: "Ё", To: "Yo"},
			{From: "Ж", To: "J"}, {From: "Җ", To: "Zh"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Қ", To: "Q"}, {From: "Л", To: "L"}, {From: "М", To: "M"},
			{From: "Н", To: "N"}, {From: "Ң", To: "Ng"}, {From: "О", To: "O"},
			{From: "Ө", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ү", To: "U"}, {From: "Ф", To: "F"}, {From: "Х", To: "X"},
			{From: "Һ", To: "H"}, {From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"},
			{From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
			{From: "Ь", To: ""}, {From: "Ъ", To: ""},
		},
	}
}
