package slug

// defaultCharmap is the built-in transliteration table.
var defaultCharmap = map[string]string{
	// Currency and symbols
	"$": "dollar",
	"%": "percent",
	"&": "and",
	"<": "less",
	">": "greater",
	"|": "or",
	"¢": "cent",
	"£": "pound",
	"¤": "currency",
	"¥": "yen",
	"©": "copyright",
	"®": "registered",
	"™": "trademark",
	"€": "euro",
	"₢": "cruzeiro",
	"₣": "french franc",
	"₤": "lira",
	"₥": "mill",
	"₦": "naira",
	"₧": "peseta",
	"₨": "rupee",
	"₩": "won",
	"₪": "new shequel",
	"₫": "dong",
	"₭": "kip",
	"₮": "tugrik",
	"₯": "drachma",
	"₰": "penny",
	"₱": "peso",
	"₲": "guarani",
	"₳": "austral",
	"₴": "hryvnia",
	"₵": "cedi",
	"₸": "kazakhstani tenge",
	"₹": "indian rupee",
	"₺": "turkish lira",
	"₽": "russian ruble",
	"₿": "bitcoin",
	"∂": "d",
	"∆": "delta",
	"∑": "sum",
	"∞": "infinity",
	"♥": "love",
	// Latin-1 supplement
	"ª": "a",
	"º": "o",
	"À": "A",
	"Á": "A",
	"Â": "A",
	"Ã": "A",
	"Ä": "A",
	"Å": "A",
	"Æ": "AE",
	"Ç": "C",
	"È": "E",
	"É": "E",
	"Ê": "E",
	"Ë": "E",
	"Ì": "I",
	"Í": "I",
	"Î": "I",
	"Ï": "I",
	"Ð": "D",
	"Ñ": "N",
	"Ò": "O",
	"Ó": "O",
	"Ô": "O",
	"Õ": "O",
	"Ö": "O",
	"Ø": "O",
	"Ù": "U",
	"Ú": "U",
	"Û": "U",
	"Ü": "U",
	"Ý": "Y",
	"Þ": "TH",
	"ß": "ss",
	"à": "a",
	"á": "a",
	"â": "a",
	"ã": "a",
	"ä": "a",
	"å": "a",
	"æ": "ae",
	"ç": "c",
	"è": "e",
	"é": "e",
	"ê": "e",
	"ë": "e",
	"ì": "i",
	"í": "i",
	"î": "i",
	"ï": "i",
	"ð": "d",
	"ñ": "n",
	"ò": "o",
	"ó": "o",
	"ô": "o",
	"õ": "o",
	"ö": "o",
	"ø": "o",
	"ù": "u",
	"ú": "u",
	"û": "u",
	"ü": "u",
	"ý": "y",
	"þ": "th",
	"ÿ": "y",
	// Latin Extended-A
	"Ā": "A",
	"ā": "a",
	"Ă": "A",
	"ă": "a",
	"Ą": "A",
	"ą": "a",
	"Ć": "C",
	"ć": "c",
	"Ĉ": "C",
	"ĉ": "c",
	"Ċ": "C",
	"ċ": "c",
	"Č": "C",
	"č": "c",
	"Ď": "D",
	"ď": "d",
	"Đ": "DJ",
	"đ": "dj",
	"Ē": "E",
	"ē": "e",
	"Ĕ": "E",
	"ĕ": "e",
	"Ė": "E",
	"ė": "e",
	"Ę": "E",
	"ę": "e",
	"Ě": "E",
	"ě": "e",
	"Ĝ": "G",
	"ĝ": "g",
	"Ğ": "G",
	"ğ": "g",
	"Ġ": "G",
	"ġ": "g",
	"Ģ": "G",
	"ģ": "g",
	"Ĥ": "H",
	"ĥ": "h",
	"Ħ": "H",
	"ħ": "h",
	"Ĩ": "I",
	"ĩ": "i",
	"Ī": "I",
	"ī": "i",
	"Ĭ": "I",
	"ĭ": "i",
	"Į": "I",
	"į": "i",
	"İ": "I",
	"ı": "i",
	"Ĳ": "IJ",
	"ĳ": "ij",
	"Ĵ": "J",
	"ĵ": "j",
	"Ķ": "K",
	"ķ": "k",
	"ĸ": "k",
	"Ĺ": "L",
	"ĺ": "l",
	"Ļ": "L",
	"ļ": "l",
	"Ľ": "L",
	"ľ": "l",
	"Ŀ": "L",
	"ŀ": "l",
	"Ł": "L",
	"ł": "l",
	"Ń": "N",
	"ń": "n",
	"Ņ": "N",
	"ņ": "n",
	"Ň": "N",
	"ň": "n",
	"ŉ": "n",
	"Ŋ": "N",
	"ŋ": "n",
	"Ō": "O",
	"ō": "o",
	"Ŏ": "O",
	"ŏ": "o",
	"Ő": "O",
	"ő": "o",
	"Œ": "OE",
	"œ": "oe",
	"Ŕ": "R",
	"ŕ": "r",
	"Ŗ": "R",
	"ŗ": "r",
	"Ř": "R",
	"ř": "r",
	"Ś": "S",
	"ś": "s",
	"Ŝ": "S",
	"ŝ": "s",
	"Ş": "S",
	"ş": "s",
	"Š": "S",
	"š": "s",
	"Ţ": "T",
	"ţ": "t",
	"Ť": "T",
	"ť": "t",
	"Ŧ": "T",
	"ŧ": "t",
	"Ũ": "U",
	"ũ": "u",
	"Ū": "U",
	"ū": "u",
	"Ŭ": "U",
	"ŭ": "u",
	"Ů": "U",
	"ů": "u",
	"Ű": "U",
	"ű": "u",
	"Ų": "U",
	"ų": "u",
	"Ŵ": "W",
	"ŵ": "w",
	"Ŷ": "Y",
	"ŷ": "y",
	"Ÿ": "Y",
	"Ź": "Z",
	"ź": "z",
	"Ż": "Z",
	"ż": "z",
	"Ž": "Z",
	"ž": "z",
	"ſ": "s",
	// Latin Extended-B and Romanian
	"ƒ": "f",
	"Ơ": "O",
	"ơ": "o",
	"Ư": "U",
	"ư": "u",
	"ǈ": "LJ",
	"ǉ": "lj",
	"ǋ": "NJ",
	"ǌ": "nj",
	"Ș": "S",
	"ș": "s",
	"Ț": "T",
	"ț": "t",
	// Vietnamese
	"Ạ": "A",
	"ạ": "a",
	"Ả": "A",
	"ả": "a",
	"Ấ": "A",
	"ấ": "a",
	"Ầ": "A",
	"ầ": "a",
	"Ẩ": "A",
	"ẩ": "a",
	"Ẫ": "A",
	"ẫ": "a",
	"Ậ": "A",
	"ậ": "a",
	"Ắ": "A",
	"ắ": "a",
	"Ằ": "A",
	"ằ": "a",
	"Ẳ": "A",
	"ẳ": "a",
	"Ẵ": "A",
	"ẵ": "a",
	"Ặ": "A",
	"ặ": "a",
	"Ẹ": "E",
	"ẹ": "e",
	"Ẻ": "E",
	"ẻ": "e",
	"Ẽ": "E",
	"ẽ": "e",
	"Ế": "E",
	"ế": "e",
	"Ề": "E",
	"ề": "e",
	"Ể": "E",
	"ể": "e",
	"Ễ": "E",
	"ễ": "e",
	"Ệ": "E",
	"ệ": "e",
	"Ỉ": "I",
	"ỉ": "i",
	"Ị": "I",
	"ị": "i",
	"Ọ": "O",
	"ọ": "o",
	"Ỏ": "O",
	"ỏ": "o",
	"Ố": "O",
	"ố": "o",
	"Ồ": "O",
	"ồ": "o",
	"Ổ": "O",
	"ổ": "o",
	"Ỗ": "O",
	"ỗ": "o",
	"Ộ": "O",
	"ộ": "o",
	"Ớ": "O",
	"ớ": "o",
	"Ờ": "O",
	"ờ": "o",
	"Ở": "O",
	"ở": "o",
	"Ỡ": "O",
	"ỡ": "o",
	"Ợ": "O",
	"ợ": "o",
	"Ụ": "U",
	"ụ": "u",
	"Ủ": "U",
	"ủ": "u",
	"Ứ": "U",
	"ứ": "u",
	"Ừ": "U",
	"ừ": "u",
	"Ử": "U",
	"ử": "u",
	"Ữ": "U",
	"ữ": "u",
	"Ự": "U",
	"ự": "u",
	"Ỳ": "Y",
	"ỳ": "y",
	"Ỵ": "Y",
	"ỵ": "y",
	"Ỷ": "Y",
	"ỷ": "y",
	"Ỹ": "Y",
	"ỹ": "y",
	// Greek
	"Ά": "A",
	"Έ": "E",
	"Ή": "H",
	"Ί": "I",
	"Ό": "O",
	"Ύ": "Y",
	"Ώ": "W",
	"ΐ": "i",
	"Α": "A",
	"Β": "B",
	"Γ": "G",
	"Δ": "D",
	"Ε": "E",
	"Ζ": "Z",
	"Η": "H",
	"Θ": "8",
	"Ι": "I",
	"Κ": "K",
	"Λ": "L",
	"Μ": "M",
	"Ν": "N",
	"Ξ": "3",
	"Ο": "O",
	"Π": "P",
	"Ρ": "R",
	"Σ": "S",
	"Τ": "T",
	"Υ": "Y",
	"Φ": "F",
	"Χ": "X",
	"Ψ": "PS",
	"Ω": "W",
	"Ϊ": "I",
	"Ϋ": "Y",
	"ά": "a",
	"έ": "e",
	"ή": "h",
	"ί": "i",
	"ΰ": "y",
	"α": "a",
	"β": "b",
	"γ": "g",
	"δ": "d",
	"ε": "e",
	"ζ": "z",
	"η": "h",
	"θ": "8",
	"ι": "i",
	"κ": "k",
	"λ": "l",
	"μ": "m",
	"ν": "n",
	"ξ": "3",
	"ο": "o",
	"π": "p",
	"ρ": "r",
	"ς": "s",
	"σ": "s",
	"τ": "t",
	"υ": "y",
	"φ": "f",
	"χ": "x",
	"ψ": "ps",
	"ω": "w",
	"ϊ": "i",
	"ϋ": "y",
	"ό": "o",
	"ύ": "y",
	"ώ": "w",
	// Cyrillic
	"Ё": "Yo",
	"Ђ": "DJ",
	"Є": "Ye",
	"І": "I",
	"Ї": "Yi",
	"Ј": "J",
	"Љ": "LJ",
	"Њ": "NJ",
	"Ћ": "C",
	"Џ": "DZ",
	"А": "A",
	"Б": "B",
	"В": "V",
	"Г": "G",
	"Д": "D",
	"Е": "E",
	"Ж": "Zh",
	"З": "Z",
	"И": "I",
	"Й": "J",
	"К": "K",
	"Л": "L",
	"М": "M",
	"Н": "N",
	"О": "O",
	"П": "P",
	"Р": "R",
	"С": "S",
	"Т": "T",
	"У": "U",
	"Ф": "F",
	"Х": "H",
	"Ц": "C",
	"Ч": "Ch",
	"Ш": "Sh",
	"Щ": "Sh",
	"Ъ": "",
	"Ы": "Y",
	"Ь": "",
	"Э": "E",
	"Ю": "Yu",
	"Я": "Ya",
	"а": "a",
	"б": "b",
	"в": "v",
	"г": "g",
	"д": "d",
	"е": "e",
	"ж": "zh",
	"з": "z",
	"и": "i",
	"й": "j",
	"к": "k",
	"л": "l",
	"м": "m",
	"н": "n",
	"о": "o",
	"п": "p",
	"р": "r",
	"с": "s",
	"т": "t",
	"у": "u",
	"ф": "f",
	"х": "h",
	"ц": "c",
	"ч": "ch",
	"ш": "sh",
	"щ": "sh",
	"ъ": "",
	"ы": "y",
	"ь": "",
	"э": "e",
	"ю": "yu",
	"я": "ya",
	"ё": "yo",
	"ђ": "dj",
	"є": "ye",
	"і": "i",
	"ї": "yi",
	"ј": "j",
	"љ": "lj",
	"њ": "nj",
	"ћ": "c",
	"ѝ": "u",
	"џ": "dz",
	"Ґ": "G",
	"ґ": "g",
	// Georgian
	"ა": "a",
	"ბ": "b",
	"გ": "g",
	"დ": "d",
	"ე": "e",
	"ვ": "v",
	"ზ": "z",
	"თ": "t",
	"ი": "i",
	"კ": "k",
	"ლ": "l",
	"მ": "m",
	"ნ": "n",
	"ო": "o",
	"პ": "p",
	"ჟ": "zh",
	"რ": "r",
	"ს": "s",
	"ტ": "t",
	"უ": "u",
	"ფ": "p",
	"ქ": "k",
	"ღ": "gh",
	"ყ": "q",
	"შ": "sh",
	"ჩ": "ch",
	"ც": "ts",
	"ძ": "dz",
	"წ": "ts",
	"ჭ": "ch",
	"ხ": "kh",
	"ჯ": "j",
	"ჰ": "h",
}

// defaultLocales are overlays consulted before defaultCharmap.
var defaultLocales = map[string]map[string]string{
	"bg": {
		"Й": "Y",
		"Ц": "Ts",
		"Щ": "Sht",
		"Ъ": "A",
		"Ь": "Y",
		"й": "y",
		"ц": "ts",
		"щ": "sht",
		"ъ": "a",
		"ь": "y",
	},
	"da": {
		"Ø": "OE",
		"ø": "oe",
		"Å": "AA",
		"å": "aa",
		"%": "procent",
		"&": "og",
		"|": "eller",
		"$": "dollar",
		"<": "mindre end",
		">": "større end",
	},
	"de": {
		"Ä": "AE",
		"ä": "ae",
		"Ö": "OE",
		"ö": "oe",
		"Ü": "UE",
		"ü": "ue",
		"ß": "ss",
		"%": "prozent",
		"&": "und",
		"|": "oder",
		"∑": "summe",
		"∞": "unendlich",
		"♥": "liebe",
	},
	"es": {
		"%": "por ciento",
		"&": "y",
		"<": "menor que",
		">": "mayor que",
		"|": "o",
		"¢": "centavos",
		"£": "libras",
		"¤": "moneda",
		"₣": "francos",
		"∑": "suma",
		"∞": "infinito",
		"♥": "amor",
	},
	"fr": {
		"%": "pourcent",
		"&": "et",
		"<": "plus petit",
		">": "plus grand",
		"|": "ou",
		"¢": "centime",
		"£": "livre",
		"¤": "devise",
		"₣": "franc",
		"∑": "somme",
		"∞": "infini",
		"♥": "amour",
	},
	"it": {
		"&": "e",
	},
	"nb": {
		"&": "og",
		"Å": "AA",
		"Æ": "AE",
		"Ø": "OE",
		"å": "aa",
		"æ": "ae",
		"ø": "oe",
	},
	"nl": {
		"&": "en",
	},
	"pt": {
		"%": "porcento",
		"&": "e",
		"<": "menor",
		">": "maior",
		"|": "ou",
		"¢": "centavo",
		"∑": "soma",
		"£": "libra",
		"∞": "infinito",
		"♥": "amor",
	},
	"sv": {
		"&": "och",
		"Å": "AA",
		"Ä": "AE",
		"Ö": "OE",
		"å": "aa",
		"ä": "ae",
		"ö": "oe",
	},
	"uk": {
		"И": "Y",
		"и": "y",
		"Й": "Y",
		"й": "y",
		"Ц": "Ts",
		"ц": "ts",
		"Х": "Kh",
		"х": "kh",
		"Щ": "Shch",
		"щ": "shch",
		"Г": "H",
		"г": "h",
	},
	"vi": {
		"Đ": "D",
		"đ": "d",
	},
}
