package methods

import "github.com/srobertson/xlit/internal/translit"

// Belarusian (Cyrillic)-->English (IC). г renders as h and ў as w;
// apostrophes used as soft-sign substitutes are dropped.
func belarussianIC() translit.Spec {
	return translit.Spec{
		Name: "Belarussian (Cyrillic)-->English (IC)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "h"}, {From: "ґ", To: "g"}, {From: "д", To: "d"},
			{From: "е", To: "ye"},
			{From: "ё", To: "yo"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "і", To: "i"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ў", To: "w"}, {From: "ф", To: "f"}, {From: "х", To: "kh"},
			{From: "ц", To: "ts"}, {From: "ч", To: "ch"}, {From: "ш", To: "sh"},
			{From: "ы", To: "y"}, {From: "э", To: "e"}, {From: "ю", To: "yu"},
			{From: "я", To: "ya"}, {From: "ь", To: ""},
			{From: "'", To: ""}, {From: "’", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "H"}, {From: "Ґ", To: "G"}, {From: "Д", To: "D"},
			{From: "Е", To: "Ye"},
			{From: "Ё", To: "Yo"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "І", To: "I"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ў", To: "W"}, {From: "Ф", To: "F"}, {From: "Х", To: "Kh"},
			{From: "Ц", To: "Ts"}, {From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"},
			{From: "Ы", To: "Y"}, {From: "Э", To: "E"}, {From: "Ю", To: "Yu"},
			{From: "Я", To: "Ya"}, {From: "Ь", To: ""},
		},
	}
}
