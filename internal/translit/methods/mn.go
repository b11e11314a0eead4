package methods

import "github.com/srobertson/xlit/internal/translit"

// Mongolian (Cyrillic)-->English (MNS 5217:2012). The vowels ө and ү
// keep their umlauts; both signs render as i.
func mongolianMNS() translit.Spec {
	return translit.Spec{
		Name: "Mongolian (Cyrillic)-->English (MNS)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "ye"},
			{From: "ё", To: "yo"}, {From: "ж", To: "j"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "i"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "ө", To: "ö"}, {From: "п", To: "p"},
			{From: "р", To: "r"}, {From: "с", To: "s"}, {From: "т", To: "t"},
			{From: "у", To: "u"}, {From: "ү", To: "ü"}, {From: "ф", To: "f"},
			{From: "х", To: "kh"}, {From: "ц", To: "ts"}, {From: "ч", To: "ch"},
			{From: "ш", To: "sh"}, {From: "щ", To: "sh"}, {From: "ъ", To: "i"},
			{From: "ы", To: "y"}, {From: "ь", To: "i"}, {From: "э", To: "e"},
			{From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "Ye"},
			{From: "Ё", To: "Yo"}, {From: "Ж", To: "J"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "I"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "Ө", To: "Ö"}, {From: "П", To: "P"},
			{From: "Р", To: "R"}, {From: "С", To: "S"}, {From: "Т", To: "T"},
			{From: "У", To: "U"}, {From: "Ү", To: "Ü"}, {From: "Ф", To: "F"},
			{From: "Х", To: "Kh"}, {From: "Ц", To: "Ts"}, {From: "Ч", To: "Ch"},
			{From: "Ш", To: "Sh"}, {From: "Щ", To: "Sh"}, {From: "Ъ", To: "I"},
			{From: "Ы", To: "Y"}, {From: "Ь", To: "I"}, {From: "Э", To: "E"},
			{From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
		},
	}
}
