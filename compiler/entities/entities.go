// Package entities holds the named character reference table used by the
// HTML lexer. The table is immutable and process-wide; keys omit the
// leading ampersand but include the trailing semicolon where the
// specification defines one. Entries without a semicolon are the legacy
// references that may terminate on any non-alphanumeric character.
//
// The shortest name is two characters (`GT`), the longest is
// `CounterClockwiseContourIntegral;` at 32, so a lookup buffer of 33
// bytes including the ampersand always suffices.
package entities

// MaxReferenceLength is the longest `&name;` sequence including the
// ampersand.
const MaxReferenceLength = 33

// Lookup resolves a reference name (without the leading `&`) to its
// replacement characters.
func Lookup(name string) (string, bool) {
	s, ok := table[name]
	return s, ok
}

var table = map[string]string{
	// Legacy references without trailing semicolons.
	"AMP": "&", "AMP;": "&", "amp": "&", "amp;": "&",
	"GT": ">", "GT;": ">", "gt": ">", "gt;": ">",
	"LT": "<", "LT;": "<", "lt": "<", "lt;": "<",
	"QUOT": "\"", "QUOT;": "\"", "quot": "\"", "quot;": "\"",
	"apos;": "'",

	"AElig": "Æ", "AElig;": "Æ", "aelig": "æ", "aelig;": "æ",
	"Aacute": "Á", "Aacute;": "Á", "aacute": "á", "aacute;": "á",
	"Acirc": "Â", "Acirc;": "Â", "acirc": "â", "acirc;": "â",
	"Agrave": "À", "Agrave;": "À", "agrave": "à", "agrave;": "à",
	"Aring": "Å", "Aring;": "Å", "aring": "å", "aring;": "å",
	"Atilde": "Ã", "Atilde;": "Ã", "atilde": "ã", "atilde;": "ã",
	"Auml": "Ä", "Auml;": "Ä", "auml": "ä", "auml;": "ä",
	"COPY": "©", "COPY;": "©", "copy": "©", "copy;": "©",
	"Ccedil": "Ç", "Ccedil;": "Ç", "ccedil": "ç", "ccedil;": "ç",
	"ETH": "Ð", "ETH;": "Ð", "eth": "ð", "eth;": "ð",
	"Eacute": "É", "Eacute;": "É", "eacute": "é", "eacute;": "é",
	"Ecirc": "Ê", "Ecirc;": "Ê", "ecirc": "ê", "ecirc;": "ê",
	"Egrave": "È", "Egrave;": "È", "egrave": "è", "egrave;": "è",
	"Euml": "Ë", "Euml;": "Ë", "euml": "ë", "euml;": "ë",
	"Iacute": "Í", "Iacute;": "Í", "iacute": "í", "iacute;": "í",
	"Icirc": "Î", "Icirc;": "Î", "icirc": "î", "icirc;": "î",
	"Igrave": "Ì", "Igrave;": "Ì", "igrave": "ì", "igrave;": "ì",
	"Iuml": "Ï", "Iuml;": "Ï", "iuml": "ï", "iuml;": "ï",
	"Ntilde": "Ñ", "Ntilde;": "Ñ", "ntilde": "ñ", "ntilde;": "ñ",
	"Oacute": "Ó", "Oacute;": "Ó", "oacute": "ó", "oacute;": "ó",
	"Ocirc": "Ô", "Ocirc;": "Ô", "ocirc": "ô", "ocirc;": "ô",
	"Ograve": "Ò", "Ograve;": "Ò", "ograve": "ò", "ograve;": "ò",
	"Oslash": "Ø", "Oslash;": "Ø", "oslash": "ø", "oslash;": "ø",
	"Otilde": "Õ", "Otilde;": "Õ", "otilde": "õ", "otilde;": "õ",
	"Ouml": "Ö", "Ouml;": "Ö", "ouml": "ö", "ouml;": "ö",
	"REG": "®", "REG;": "®", "reg": "®", "reg;": "®",
	"THORN": "Þ", "THORN;": "Þ", "thorn": "þ", "thorn;": "þ",
	"Uacute": "Ú", "Uacute;": "Ú", "uacute": "ú", "uacute;": "ú",
	"Ucirc": "Û", "Ucirc;": "Û", "ucirc": "û", "ucirc;": "û",
	"Ugrave": "Ù", "Ugrave;": "Ù", "ugrave": "ù", "ugrave;": "ù",
	"Uuml": "Ü", "Uuml;": "Ü", "uuml": "ü", "uuml;": "ü",
	"Yacute": "Ý", "Yacute;": "Ý", "yacute": "ý", "yacute;": "ý",
	"yuml": "ÿ", "yuml;": "ÿ",
	"acute": "´", "acute;": "´",
	"cedil": "¸", "cedil;": "¸",
	"cent": "¢", "cent;": "¢",
	"curren": "¤", "curren;": "¤",
	"deg": "°", "deg;": "°",
	"divide": "÷", "divide;": "÷",
	"frac12": "½", "frac12;": "½",
	"frac14": "¼", "frac14;": "¼",
	"frac34": "¾", "frac34;": "¾",
	"iexcl": "¡", "iexcl;": "¡",
	"iquest": "¿", "iquest;": "¿",
	"laquo": "«", "laquo;": "«",
	"macr": "¯", "macr;": "¯",
	"micro": "µ", "micro;": "µ",
	"middot": "·", "middot;": "·",
	"nbsp": " ", "nbsp;": " ",
	"not": "¬", "not;": "¬",
	"ordf": "ª", "ordf;": "ª",
	"ordm": "º", "ordm;": "º",
	"para": "¶", "para;": "¶",
	"plusmn": "±", "plusmn;": "±",
	"pound": "£", "pound;": "£",
	"raquo": "»", "raquo;": "»",
	"sect": "§", "sect;": "§",
	"shy": "­", "shy;": "­",
	"sup1": "¹", "sup1;": "¹",
	"sup2": "²", "sup2;": "²",
	"sup3": "³", "sup3;": "³",
	"szlig": "ß", "szlig;": "ß",
	"times": "×", "times;": "×",
	"uml": "¨", "uml;": "¨",
	"yen": "¥", "yen;": "¥",

	// Greek.
	"Alpha;": "Α", "Beta;": "Β", "Gamma;": "Γ", "Delta;": "Δ",
	"Epsilon;": "Ε", "Zeta;": "Ζ", "Eta;": "Η", "Theta;": "Θ",
	"Iota;": "Ι", "Kappa;": "Κ", "Lambda;": "Λ", "Mu;": "Μ",
	"Nu;": "Ν", "Xi;": "Ξ", "Omicron;": "Ο", "Pi;": "Π",
	"Rho;": "Ρ", "Sigma;": "Σ", "Tau;": "Τ", "Upsilon;": "Υ",
	"Phi;": "Φ", "Chi;": "Χ", "Psi;": "Ψ", "Omega;": "Ω",
	"alpha;": "α", "beta;": "β", "gamma;": "γ", "delta;": "δ",
	"epsilon;": "ε", "zeta;": "ζ", "eta;": "η", "theta;": "θ",
	"iota;": "ι", "kappa;": "κ", "lambda;": "λ", "mu;": "μ",
	"nu;": "ν", "xi;": "ξ", "omicron;": "ο", "pi;": "π",
	"rho;": "ρ", "sigma;": "σ", "sigmaf;": "ς", "tau;": "τ",
	"upsilon;": "υ", "phi;": "φ", "chi;": "χ", "psi;": "ψ",
	"omega;": "ω", "thetasym;": "ϑ", "upsih;": "ϒ", "piv;": "ϖ",

	// General punctuation and symbols.
	"bull;": "•", "dagger;": "†", "Dagger;": "‡",
	"hellip;": "…",
	"emsp;": " ", "ensp;": " ", "thinsp;": " ",
	"mdash;": "—", "ndash;": "–",
	"lsquo;": "‘", "rsquo;": "’", "sbquo;": "‚",
	"ldquo;": "“", "rdquo;": "”", "bdquo;": "„",
	"lsaquo;": "‹", "rsaquo;": "›",
	"oline;": "‾", "frasl;": "⁄",
	"permil;": "‰", "prime;": "′", "Prime;": "″",
	"zwj;": "‍", "zwnj;": "‌", "lrm;": "‎", "rlm;": "‏",
	"euro;": "€", "trade;": "™",
	"circ;": "ˆ", "tilde;": "˜",
	"OElig;": "Œ", "oelig;": "œ",
	"Scaron;": "Š", "scaron;": "š", "Yuml;": "Ÿ",
	"fnof;": "ƒ",

	// Mathematical operators.
	"forall;": "∀", "part;": "∂", "exist;": "∃", "empty;": "∅",
	"nabla;": "∇", "isin;": "∈", "notin;": "∉", "ni;": "∋",
	"prod;": "∏", "sum;": "∑", "minus;": "−", "lowast;": "∗",
	"radic;": "√", "prop;": "∝", "infin;": "∞", "ang;": "∠",
	"and;": "∧", "or;": "∨", "cap;": "∩", "cup;": "∪",
	"int;": "∫", "there4;": "∴", "sim;": "∼", "cong;": "≅",
	"asymp;": "≈", "ne;": "≠", "equiv;": "≡", "le;": "≤",
	"ge;": "≥", "sub;": "⊂", "sup;": "⊃", "nsub;": "⊄",
	"sube;": "⊆", "supe;": "⊇", "oplus;": "⊕", "otimes;": "⊗",
	"perp;": "⊥", "sdot;": "⋅",
	"lceil;": "⌈", "rceil;": "⌉", "lfloor;": "⌊", "rfloor;": "⌋",
	"lang;": "〈", "rang;": "〉",
	"loz;": "◊", "spades;": "♠", "clubs;": "♣", "hearts;": "♥",
	"diams;": "♦",

	// Arrows.
	"larr;": "←", "uarr;": "↑", "rarr;": "→", "darr;": "↓",
	"harr;": "↔", "crarr;": "↵",
	"lArr;": "⇐", "uArr;": "⇑", "rArr;": "⇒", "dArr;": "⇓", "hArr;": "⇔",

	// Letterlike symbols and misc.
	"alefsym;": "ℵ", "image;": "ℑ", "real;": "ℜ", "weierp;": "℘",

	// Long names exercising the maximum lookup length, plus combining
	// sequences whose replacement is two code points.
	"CounterClockwiseContourIntegral;":           "∳",
	"ClockwiseContourIntegral;":                  "∲",
	"DoubleContourIntegral;":                     "∯",
	"NotNestedGreaterGreater;":                   "⪢̸",
	"NotSquareSupersetEqual;":                    "⋣",
	"NegativeVeryThinSpace;":                     "​",
	"FilledVerySmallSquare;":                     "▪",
	"NotEqualTilde;":                             "≂̸",
	"NotGreaterGreater;":                         "≫̸",
	"NotSucceedsTilde;":                          "≿̸",
	"ThickSpace;":                                "  ",
	"fjlig;":                                     "fj",
	"vnsub;":                                     "⊂⃒",
	"vnsup;":                                     "⊃⃒",
	"nLtv;":                                      "≪̸",
	"nGtv;":                                      "≫̸",
}
