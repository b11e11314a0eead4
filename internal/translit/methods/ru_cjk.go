package methods

import "github.com/srobertson/xlit/internal/translit"

// Russian (Chinese Cyrillic)-->English (Pinyin): reverses the Palladius
// rendering of Chinese names back into Hanyu Pinyin. Palladius writes the
// pinyin -ng final as н and the -n final as нь, so the two-letter key must
// be declared before the one-letter key; the same longest-first ordering
// covers чж and цз. ц becomes q before front vowels, с becomes x.
//
// Output mixes Latin romanized syllables with apostrophe-free joins, so the
// word-token uppercase pass is unsafe; the method is excluded from case
// matching.
func russianChinesePinyin() translit.Spec {
	return translit.Spec{
		Name: "Russian (Chinese Cyrillic)-->English (Pinyin)",
		PreRules: []translit.Rule{
			{Pattern: "цз([яюие])", Rewrite: "j${1}"},
			{Pattern: "Цз([яюие])", Rewrite: "J${1}"},
			{Pattern: "ц([юяие])", Rewrite: "q${1}"},
			{Pattern: "Ц([юяие])", Rewrite: "Q${1}"},
			{Pattern: "с([юяие])", Rewrite: "x${1}"},
			{Pattern: "С([юяие])", Rewrite: "X${1}"},
		},
		Map: []translit.Pair{
			{From: "чж", To: "zh"}, {From: "Чж", To: "Zh"},
			{From: "цз", To: "z"}, {From: "Цз", To: "Z"},
			{From: "нь", To: "n"}, {From: "Нь", To: "N"},
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "w"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "e"}, {From: "ж", To: "r"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "y"}, {From: "к", To: "k"},
			{From: "л", To: "l"}, {From: "м", To: "m"}, {From: "н", To: "ng"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "h"}, {From: "ц", To: "c"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "sh"},
			{From: "ы", To: "i"}, {From: "э", To: "e"}, {From: "ю", To: "u"},
			{From: "я", To: "ya"}, {From: "ь", To: ""}, {From: "ъ", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "W"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "E"}, {From: "Ж", To: "R"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "Y"}, {From: "К", To: "K"},
			{From: "Л", To: "L"}, {From: "М", To: "M"}, {From: "Н", To: "Ng"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "H"}, {From: "Ц", To: "C"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Sh"},
			{From: "Ы", To: "I"}, {From: "Э", To: "E"}, {From: "Ю", To: "U"},
			{From: "Я", To: "Ya"}, {From: "Ь", To: ""}, {From: "Ъ", To: ""},
		},
	}
}

// Russian (Japanese Cyrillic)-->English (Hepburn): reverses Polivanov
// Cyrillic back into Hepburn. The palatalized syllables (ся, тя, дзя
// families) must be declared before the bare consonants they extend.
// Excluded from case matching for the same reason as the Pinyin method.
func russianJapaneseHepburn() translit.Spec {
	return translit.Spec{
		Name: "Russian (Japanese Cyrillic)-->English (Hepburn)",
		Map: []translit.Pair{
			{From: "ся", To: "sha"}, {From: "сю", To: "shu"}, {From: "сё", To: "sho"}, {From: "си", To: "shi"},
			{From: "Ся", To: "Sha"}, {From: "Сю", To: "Shu"}, {From: "Сё", To: "Sho"}, {From: "Си", To: "Shi"},
			{From: "тя", To: "cha"}, {From: "тю", To: "chu"}, {From: "тё", To: "cho"}, {From: "ти", To: "chi"},
			{From: "Тя", To: "Cha"}, {From: "Тю", To: "Chu"}, {From: "Тё", To: "Cho"}, {From: "Ти", To: "Chi"},
			{From: "дзя", To: "ja"}, {From: "дзю", To: "ju"}, {From: "дзё", To: "jo"}, {From: "дзи", To: "ji"},
			{From: "Дзя", To: "Ja"}, {From: "Дзю", To: "Ju"}, {From: "Дзё", To: "Jo"}, {From: "Дзи", To: "Ji"},
			{From: "дз", To: "z"}, {From: "Дз", To: "Z"},
			{From: "цу", To: "tsu"}, {From: "Цу", To: "Tsu"},
			{From: "а", To: "a"}, {From: "б", To: "b"}, {From: "в", To: "w"},
			{From: "г", To: "g"}, {From: "д", To: "d"}, {From: "е", To: "e"},
			{From: "ё", To: "yo"}, {From: "ж", To: "j"}, {From: "з", To: "z"},
			{From: "и", To: "i"}, {From: "й", To: "i"}, {From: "к", To: "k"},
			{From: "л", To: "r"}, {From: "м", To: "m"}, {From: "н", To: "n"},
			{From: "о", To: "o"}, {From: "п", To: "p"}, {From: "р", To: "r"},
			{From: "с", To: "s"}, {From: "т", To: "t"}, {From: "у", To: "u"},
			{From: "ф", To: "f"}, {From: "х", To: "h"}, {From: "ц", To: "ts"},
			{From: "ч", To: "ch"}, {From: "ш", To: "sh"}, {From: "щ", To: "sh"},
			{From: "ы", To: "i"}, {From: "э", To: "e"}, {From: "ю", To: "yu"},
			{From: "я", To: "ya"}, {From: "ь", To: ""}, {From: "ъ", To: ""},
			{From: "А", To: "A"}, {From: "Б", To: "B"}, {From: "В", To: "W"},
			{From: "Г", To: "G"}, {From: "Д", To: "D"}, {From: "Е", To: "E"},
			{From: "Ё", To: "Yo"}, {From: "Ж", To: "J"}, {From: "З", To: "Z"},
			{From: "И", To: "I"}, {From: "Й", To: "I"}, {From: "К", To: "K"},
			{From: "Л", To: "R"}, {From: "М", To: "M"}, {From: "Н", To: "N"},
			{From: "О", To: "O"}, {From: "П", To: "P"}, {From: "Р", To: "R"},
			{From: "С", To: "S"}, {From: "Т", To: "T"}, {From: "У", To: "U"},
			{From: "Ф", To: "F"}, {From: "Х", To: "H"}, {From: "Ц", To: "Ts"},
			{From: "Ч", To: "Ch"}, {From: "Ш", To: "Sh"}, {From: "Щ", To: "Sh"},
			{From: "Ы", To: "I"}, {From: "Э", To: "E"}, {From: "Ю", To: "Yu"},
			{From: "Я", To: "Ya"}, {From: "Ь", To: ""}, {From: "Ъ", To: ""},
		},
	}
}
