package methods

import "github.com/srobertson/xlit/internal/translit"

// Macedonian (Cyrillic)-->English (IC).
func macedonianIC() translit.Spec {
	return translit.Spec{
		Name: "Macedonian (Cyrillic)-->English (IC)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "ѓ", To: "gj"},
			{From: "е", To: "e"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "ѕ", To: "dz"}, {From: "и", To: "i"}, {From: "ј", To: "j"},
			{From: "к", To: "k"}, {From: "л", To: "l"}, {From: "љ", To: "lj"},
			{From: "м", To: "m"}, {From: "н", To: "n"}, {From: "њ", To: "nj"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "ќ", To: "kj"},
			{From: "у", To: "u"}, {From: "ф", To: "f"}, {From: "х", To: "h"},
			{From: "ц", To: "ts"}, {From: "ч", To: "ch"}, {From: "џ", To: "dzh"},
			{From: "ш", To: "sh"},
			{From: "’", To: ""}, {From: "'", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Ѓ", To: "Gj"},
			{From: "Е", To: "E"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "Ѕ", To: "Dz"}, {From: "И", To: "I"}, {From: "Ј", To: "J"},
			{From: "К", To: "K"}, {From: "Л", To: "L"}, {From: "Љ", To: "Lj"},
			{From: "М", To: "M"}, {From: "Н", To: "N"}, {From: "Њ", To: "Nj"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "Ќ", To: "Kj"},
			{From: "У", To: "U"}, {From: "Ф", To: "F"}, {From: "Х", To: "H"},
			{From: "Ц", To: "Ts"}, {From: "Ч", To: "Ch"}, {From: "Џ", To: "Dzh"},
			{From: "Ш", To: "Sh"},
		},
	}
}
