package methods

import "github.com/srobertson/xlit/internal/translit"

// Serbian (Cyrillic)-->English (IC). Diacritic-free rendering: ђ and ћ
// both fold toward plain Latin rather than đ and ć.
func serbianIC() translit.Spec {
	return translit.Spec{
		Name: "Serbian (Cyrillic)-->English (IC)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "ђ", To: "dj"},
			{From: "е", To: "e"}, {From: "ж", To: "z"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "ј", To: "j"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "љ", To: "lj"}, {From: "м", To: "m"},
			{From: "н", To: "n"}, {From: "њ", To: "nj"}, {From: "о", To: "o"},
			{From: "п", To: "p"}, {From: "р", To: "r"}, {From: "с", To: "s"},
			{From: "т", To: "t"}, {From: "ћ", To: "c"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "h"}, {From: "ц", To: "c"},
			{From: "ч", To: "c"}, {From: "џ", To: "dz"}, {From: "ш", To: "s"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Ђ", To: "Dj"},
			{From: "Е", To: "E"}, {From: "Ж", To: "Z"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Ј", To: "J"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "Љ", To: "Lj"}, {From: "М", To: "M"},
			{From: "Н", To: "N"}, {From: "Њ", To: "Nj"}, {From: "О", To: "O"},
			{From: "П", To: "P"}, {From: "Р", To: "R"}, {From: "С", To: "S"},
			{From: "Т", To: "T"}, {From: "Ћ", To: "C"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "H"}, {From: "Ц", To: "C"},
			{From: "Ч", To: "C"}, {From: "Џ", To: "Dz"}, {From: "Ш", To: "S"},
		},
	}
}
