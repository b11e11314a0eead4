package methods

import "github.com/srobertson/xlit/internal/translit"

// Ukrainian (Cyrillic)-->English (IC). Position-independent table; the soft
// sign and both apostrophe forms are dropped.
func ukrainianIC() translit.Spec {
	return translit.Spec{
		Name: "Ukrainian (Cyrillic)-->English (IC)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "h"}, {From: "ґ", To: "g"}, {From: "д", To: "d"},
			{From: "е", To: "e"}, {From: "є", To: "ye"}, {From: "ж", To: "zh"},
			{From: "з", To: "z"}, {From: "и", To: "y"}, {From: "і", To: "i"},
			{From: "ї", To: "yi"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "kh"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "shch"},
			{From: "ь", To: ""}, {From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "H"}, {From: "Ґ", To: "G"}, {From: "Д", To: "D"},
			{From: "Е", To: "E"}, {From: "Є", To: "Ye"}, {From: "Ж", To: "Zh"},
			{From: "З", To: "Z"}, {From: "И", To: "Y"}, {From: "І", To: "I"},
			{From: "Ї", To: "Yi"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "Kh"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Shch"},
			{From: "Ь", To: ""}, {From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
			{From: "'", To: ""}, {From: "’", To: ""},
		},
	}
}

// Ukrainian (Cyrillic)-->English (National Standard), per the 2010
// resolution of the Cabinet of Ministers of Ukraine. The зг cluster becomes
// zgh (to keep it distinct from ж→zh), and є, ю, я, ї, й take their y-forms
// only word-initially; the map supplies the mid-word i-forms.
func ukrainianNationalStandard() translit.Spec {
	return translit.Spec{
		Name: "Ukrainian (Cyrillic)-->English (National Standard)",
		PreRules: []translit.Rule{
			{Pattern: "Зг", Rewrite: "Zgh"},
			{Pattern: "зг", Rewrite: "zgh"},
			{Pattern: "ЗГ", Rewrite: "ZGH"},
			{Pattern: "зГ", Rewrite: "zGh"},
			{Pattern: "(^|" + nonWord + ")Є", Rewrite: "${1}Ye"},
			{Pattern: "(^|" + nonWord + ")є", Rewrite: "${1}ye"},
			{Pattern: "(^|" + nonWord + ")Ю", Rewrite: "${1}Yu"},
			{Pattern: "(^|" + nonWord + ")ю", Rewrite: "${1}yu"},
			{Pattern: "(^|" + nonWord + ")Я", Rewrite: "${1}Ya"},
			{Pattern: "(^|" + nonWord + ")я", Rewrite: "${1}ya"},
			{Pattern: "(^|" + nonWord + ")Ї", Rewrite: "${1}Yi"},
			{Pattern: "(^|" + nonWord + ")ї", Rewrite: "${1}yi"},
			{Pattern: "(^|" + nonWord + ")Й", Rewrite: "${1}Y"},
			{Pattern: "(^|" + nonWord + ")й", Rewrite: "${1}y"},
		},
		Map: []translit.Pair{
			{From: "А", To: "A"}, {From: "а", To: "a"}, {From: "Б", To: "B"},
			{From: "б", To: "b"}, {From: "В", To: "V"}, {From: "в", To: "v"},
			{From: "Г", To: "H"}, {From: "г", To: "h"}, {From: "Ґ", To: "G"},
			{From: "ґ", To: "g"}, {From: "Д", To: "D"}, {From: "д", To: "d"},
			{From: "Е", To: "E"}, {From: "е", To: "e"}, {From: "Є", To: "Ie"},
			{From: "є", To: "ie"}, {From: "Ж", To: "Zh"}, {From: "ж", To: "zh"},
			{From: "З", To: "Z"}, {From: "з", To: "z"}, {From: "И", To: "Y"},
			{From: "и", To: "y"}, {From: "І", To: "I"}, {From: "і", To: "i"},
			{From: "Ї", To: "I"}, {From: "ї", To: "i"}, {From: "Й", To: "I"},
			{From: "й", To: "i"}, {From: "К", To: "K"}, {From: "к", To: "k"},
			{From: "Л", To: "L"}, {From: "л", To: "l"}, {From: "М", To: "M"},
			{From: "м", To: "m"}, {From: "Н", To: "N"}, {From: "н", To: "n"},
			{From: "О", To: "O"}, {From: "о", To: "o"}, {From: "П", To: "P"},
			{From: "п", To: "p"}, {From: "Р", To: "R"}, {From: "р", To: "r"},
			{From: "С", To: "S"}, {From: "с", To: "s"}, {From: "Т", To: "T"},
			{From: "т", To: "t"}, {From: "У", To: "U"}, {From: "у", To: "u"},
			{From: "Ф", To: "F"}, {From: "ф", To: "f"}, {From: "Х", To: "Kh"},
			{From: "х", To: "kh"}, {From: "Ц", To: "Ts"}, {From: "ц", To: "ts"},
			{From: "Ч", To: "Ch"}, {From: "ч", To: "ch"}, {From: "Ш", To: "Sh"},
			{From: "ш", To: "sh"}, {From: "Щ", To: "Shch"}, {From: "щ", To: "shch"},
			{From: "Ь", To: ""}, {From: "ь", To: ""}, {From: "Ю", To: "Iu"},
			{From: "ю", To: "iu"}, {From: "Я", To: "Ia"}, {From: "я", To: "ia"},
			{From: "'", To: ""}, {From: "’", To: ""},
		},
	}
}

// Ukrainian (Chinese Academic)-->English: reverses the Ukrainian academic
// rendering of Chinese names into Hanyu Pinyin. Same Palladius-derived
// structure as the Russian Pinyin method with the Ukrainian і. Excluded
// from case matching.
func ukrainianChineseAcademic() translit.Spec {
	return translit.Spec{
		Name: "Ukrainian (Chinese Academic)-->English",
		PreRules: []translit.Rule{
			{Pattern: "цз([яюіе])", Rewrite: "j${1}"},
			{Pattern: "Цз([яюіе])", Rewrite: "J${1}"},
			{Pattern: "ц([юяіе])", Rewrite: "q${1}"},
			{Pattern: "Ц([юяіе])", Rewrite: "Q${1}"},
			{Pattern: "с([юяіе])", Rewrite: "x${1}"},
			{Pattern: "С([юяіе])", Rewrite: "X${1}"},
		},
		Map: []translit.Pair{
			{From: "чж", To: "zh"}, {From: "Чж", To: "Zh"},
			{From: "цз", To: "z"}, {From: "Цз", To: "Z"},
			{From: "нь", To: "n"}, {From: "Нь", To: "N"},
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "w"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ж", To: "r"}, {From: "з", To: "z"}, {From: "и", To: "i"},
			{From: "і", To: "i"}, {From: "ї", To: "i"}, {From: "й", To: "y"},
			{From: "к", To: "k"}, {From: "л", To: "l"}, {From: "м", To: "m"},
			{From: "н", To: "ng"}, {From: "о", To: "o"}, {From: "п", To: "p"},
			{From: "р", To: "r"}, {From: "с", To: "s"}, {From: "т", To: "t"},
			{From: "у", To: "u"}, {From: "ф", To: "f"}, {From: "х", To: "h"},
			{From: "ц", To: "c"}, {From: "ч", To: "ch"}, {From: "ш", To: "sh"},
			{From: "щ", To: "sh"}, {From: "ю", To: "u"}, {From: "я", To: "ya"},
			{From: "ь", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "W"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ж", To: "R"}, {From: "З", To: "Z"}, {From: "И", To: "I"},
			{From: "І", To: "I"}, {From: "Ї", To: "I"}, {From: "Й", To: "Y"},
			{From: "К", To: "K"}, {From: "Л", To: "L"}, {From: "М", To: "M"},
			{From: "Н", To: "Ng"}, {From: "О", To: "O"}, {From: "П", To: "P"},
			{From: "Р", To: "R"}, {From: "С", To: "S"}, {From: "Т", To: "T"},
			{From: "У", To: "U"}, {From: "Ф", To: "F"}, {From: "Х", To: "H"},
			{From: "Ц", To: "C"}, {From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"},
			{From: "Щ", To: "Sh"}, {From: "Ю", To: "U"}, {From: "Я", To: "Ya"},
			{From: "Ь", To: ""},
		},
	}
}
