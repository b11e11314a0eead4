package methods

import "github.com/srobertson/xlit/internal/translit"

// ruConsonants is the class that softens a following е/ё: after any of
// these the plain vowel form is used instead of the ye- form.
const ruConsonants = "бвгджзклмнпрстфхцчшщБВГДЖЗКЛМНПРСТФХЦЧШЩ"

// Russian (Cyrillic)-->English (IC).
//
// е and ё take "e" after a consonant and "ye" word-initially, after vowels,
// and after й, ъ, ь. Hard and soft signs are not represented. The pre-rules
// consume the consonant+vowel pairs first so the map's default ye- forms
// only fire in the remaining contexts.
func russianIC() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (IC)",
		PreRules: []translit.Rule{
			{Pattern: "([" + ruConsonants + "])е", Rewrite: "${1}e"},
			{Pattern: "([" + ruConsonants + "])Е", Rewrite: "${1}E"},
			{Pattern: "([" + ruConsonants + "])ё", Rewrite: "${1}e"},
			{Pattern: "([" + ruConsonants + "])Ё", Rewrite: "${1}E"},
		},
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "ye"},
			{From: "ё", To: "ye"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "kh"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "shch"},
			{From: "ъ", To: ""}, {From: "ы", To: "y"}, {From: "ь", To: ""},
			{From: "э", To: "e"}, {From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "Ye"},
			{From: "Ё", To: "Ye"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "Kh"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Shch"},
			{From: "Ъ", To: ""}, {From: "Ы", To: "Y"}, {From: "Ь", To: ""},
			{From: "Э", To: "E"}, {From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
		},
	}
}

// Russian (Cyrillic)-->English (BGN).
//
// Same consonant softening as IC, but ё keeps its diaeresis and the hard
// and soft signs are written as typographic double and single primes.
func russianBGN() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (BGN)",
		PreRules: []translit.Rule{
			{Pattern: "([" + ruConsonants + "])е", Rewrite: "${1}e"},
			{Pattern: "([" + ruConsonants + "])Е", Rewrite: "${1}E"},
			{Pattern: "([" + ruConsonants + "])ё", Rewrite: "${1}ë"},
			{Pattern: "([" + ruConsonants + "])Ё", Rewrite: "${1}Ë"},
		},
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "ye"},
			{From: "ё", To: "yë"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "kh"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "shch"},
			{From: "ъ", To: "”"}, {From: "ы", To: "y"}, {From: "ь", To: "’"},
			{From: "э", To: "e"}, {From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "Ye"},
			{From: "Ё", To: "Yë"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "Kh"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Shch"},
			{From: "Ъ", To: "”"}, {From: "Ы", To: "Y"}, {From: "Ь", To: "’"},
			{From: "Э", To: "E"}, {From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
		},
	}
}

// Russian (Cyrillic)-->English (Gost 7.79-2000b).
//
// ц is absent from the map on purpose: the post-rules see the untouched
// Cyrillic letter against the already-Latin right context and pick c before
// i, e, y, j and cz elsewhere.
func russianGOST779B() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (Gost 7.79-2000b)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "yo"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "j"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "x"}, {From: "ч", To: "ch"},
			{From: "ш", To: "sh"}, {From: "щ", To: "shh"}, {From: "ъ", To: "``"},
			{From: "ы", To: "y`"}, {From: "ь", To: "`"}, {From: "э", To: "e`"},
			{From: "ю", To: "yu"}, {From: "я", To: "ya"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "Yo"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "J"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "X"}, {From: "Ч", To: "Ch"},
			{From: "Ш", To: "Sh"}, {From: "Щ", To: "Shh"}, {From: "Ъ", To: "``"},
			{From: "Ы", To: "Y`"}, {From: "Ь", To: "`"}, {From: "Э", To: "E`"},
			{From: "Ю", To: "Yu"}, {From: "Я", To: "Ya"},
		},
		PostRules: []translit.Rule{
			{Pattern: "ц([ieyjIEYJ])", Rewrite: "c${1}"},
			{Pattern: "Ц([ieyjIEYJ])", Rewrite: "C${1}"},
			{Pattern: "ц", Rewrite: "cz"},
			{Pattern: "Ц", Rewrite: "Cz"},
		},
	}
}

// Russian (Cyrillic)-->English (ISO-9), the 1995 diacritic system. One
// Latin letter per Cyrillic letter; its non-ASCII output does not survive a
// blanket uppercase pass, so the method is excluded from case matching.
func russianISO9() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (ISO-9)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "ë"}, {From: "ж", To: "ž"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "j"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "h"}, {From: "ц", To: "c"},
			{From: "ч", To: "č"}, {From: "ш", To: "š"}, {From: "щ", To: "ŝ"},
			{From: "ъ", To: "ʺ"}, {From: "ы", To: "y"}, {From: "ь", To: "ʹ"},
			{From: "э", To: "è"}, {From: "ю", To: "û"}, {From: "я", To: "â"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "Ë"}, {From: "Ж", To: "Ž"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "J"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "H"}, {From: "Ц", To: "C"},
			{From: "Ч", To: "Č"}, {From: "Ш", To: "Š"}, {From: "Щ", To: "Ŝ"},
			{From: "Ъ", To: "ʺ"}, {From: "Ы", To: "Y"}, {From: "Ь", To: "ʹ"},
			{From: "Э", To: "È"}, {From: "Ю", To: "Û"}, {From: "Я", To: "Â"},
		},
	}
}

// Russian (Cyrillic)-->English (ALA-LC), without the ligature ties.
func russianALALC() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (ALA-LC)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "ë"}, {From: "ж", To: "zh"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "ĭ"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "kh"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "shch"},
			{From: "ъ", To: "ʺ"}, {From: "ы", To: "y"}, {From: "ь", To: "ʹ"},
			{From: "э", To: "ė"}, {From: "ю", To: "iu"}, {From: "я", To: "ia"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "Ë"}, {From: "Ж", To: "Zh"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "Ĭ"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "Kh"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Shch"},
			{From: "Ъ", To: "ʺ"}, {From: "Ы", To: "Y"}, {From: "Ь", To: "ʹ"},
			{From: "Э", To: "Ė"}, {From: "Ю", To: "Iu"}, {From: "Я", To: "Ia"},
		},
	}
}

// Russian (Cyrillic)-->English (Scientific), the international scholarly
// system with haček diacritics.
func russianScientific() translit.Spec {
	return translit.Spec{
		Name: "Russian (Cyrillic)-->English (Scientific)",
		Map: []translit.Pair{
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "v"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "ë"}, {From: "ж", To: "ž"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "j"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "x"}, {From: "ц", To: "c"},
			{From: "ч", To: "č"}, {From: "ш", To: "š"}, {From: "щ", To: "šč"},
			{From: "ъ", To: "ʺ"}, {From: "ы", To: "y"}, {From: "ь", To: "ʹ"},
			{From: "э", To: "è"}, {From: "ю", To: "ju"}, {From: "я", To: "ja"},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "V"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "Ë"}, {From: "Ж", To: "Ž"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "J"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "X"}, {From: "Ц", To: "C"},
			{From: "Ч", To: "Č"}, {From: "Ш", To: "Š"}, {From: "Щ", To: "Šč"},
			{From: "Ъ", To: "ʺ"}, {From: "Ы", To: "Y"}, {From: "Ь", To: "ʹ"},
			{From: "Э", To: "È"}, {From: "Ю", To: "Ju"}, {From: "Я", To: "Ja"},
		},
	}
}
