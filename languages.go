package main

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// ISO-639 language codes: set 1, 2/t, 2/b, 3. Subtitle files usually
// carry one of these (or a full language name, often misspelled) as the
// trailing component of the stem, e.g. "S02E01.en.srt".
var languages = map[string][]string{
	"abkhazian":      {"ab", "abk", "abk", "abk"},
	"afar":           {"aa", "aar", "aar", "aar"},
	"afrikaans":      {"af", "afr", "afr", "afr"},
	"akan":           {"ak", "aka", "aka", "aka"},
	"albanian":       {"sq", "sqi", "alb", "sqi"},
	"amharic":        {"am", "amh", "amh", "amh"},
	"arabic":         {"ar", "ara", "ara", "ara"},
	"aragonese":      {"an", "arg", "arg", "arg"},
	"armenian":       {"hy", "hye", "arm", "hye"},
	"assamese":       {"as", "asm", "asm", "asm"},
	"avaric":         {"av", "ava", "ava", "ava"},
	"avestan":        {"ae", "ave", "ave", "ave"},
	"aymara":         {"ay", "aym", "aym", "aym"},
	"azerbaijani":    {"az", "aze", "aze", "aze"},
	"bambara":        {"bm", "bam", "bam", "bam"},
	"bashkir":        {"ba", "bak", "bak", "bak"},
	"basque":         {"eu", "eus", "baq", "eus"},
	"belarusian":     {"be", "bel", "bel", "bel"},
	"bengali":        {"bn", "ben", "ben", "ben"},
	"bislama":        {"bi", "bis", "bis", "bis"},
	"bosnian":        {"bs", "bos", "bos", "bos"},
	"breton":         {"br", "bre", "bre", "bre"},
	"bulgarian":      {"bg", "bul", "bul", "bul"},
	"burmese":        {"my", "mya", "bur", "mya"},
	"cambodian":      {"km", "khm", "khm", "khm"},
	"catalan":        {"ca", "cat", "cat", "cat"},
	"centralkhmer":   {"km", "khm", "khm", "khm"},
	"chamorro":       {"ch", "cha", "cha", "cha"},
	"chechen":        {"ce", "che", "che", "che"},
	"chichewa":       {"ny", "nya", "nya", "nya"},
	"chinese":        {"zh", "zho", "chi", "zho"},
	"churchslavonic": {"cu", "chu", "chu", "chu"},
	"chuvash":        {"cv", "chv", "chv", "chv"},
	"cornish":        {"kw", "cor", "cor", "cor"},
	"corsican":       {"co", "cos", "cos", "cos"},
	"cree":           {"cr", "cre", "cre", "cre"},
	"croatian":       {"hr", "hrv", "hrv", "hrv"},
	"czech":          {"cs", "ces", "cze", "ces"},
	"danish":         {"da", "dan", "dan", "dan"},
	"divehi":         {"dv", "div", "div", "div"},
	"dutch":          {"nl", "nld", "dut", "nld"},
	"dzongkha":       {"dz", "dzo", "dzo", "dzo"},
	"english":        {"en", "eng", "eng", "eng"},
	"esperanto":      {"eo", "epo", "epo", "epo"},
	"estonian":       {"et", "est", "est", "est"},
	"ewe":            {"ee", "ewe", "ewe", "ewe"},
	"faroese":        {"fo", "fao", "fao", "fao"},
	"fijian":         {"fj", "fij", "fij", "fij"},
	"finnish":        {"fi", "fin", "fin", "fin"},
	"french":         {"fr", "fra", "fre", "fra"},
	"fulah":          {"ff", "ful", "ful", "ful"},
	"gaelic":         {"gd", "gla", "gla", "gla"},
	"galician":       {"gl", "glg", "glg", "glg"},
	"ganda":          {"lg", "lug", "lug", "lug"},
	"georgian":       {"ka", "kat", "geo", "kat"},
	"german":         {"de", "deu", "ger", "deu"},
	"greek":          {"el", "ell", "gre", "ell"},
	"guarani":        {"gn", "grn", "grn", "grn"},
	"gujarati":       {"gu", "guj", "guj", "guj"},
	"haitian":        {"ht", "hat", "hat", "hat"},
	"hausa":          {"ha", "hau", "hau", "hau"},
	"hebrew":         {"he", "heb", "heb", "heb"},
	"herero":         {"hz", "her", "her", "her"},
	"hindi":          {"hi", "hin", "hin", "hin"},
	"hirimotu":       {"ho", "hmo", "hmo", "hmo"},
	"hungarian":      {"hu", "hun", "hun", "hun"},
	"icelandic":      {"is", "isl", "ice", "isl"},
	"ido":            {"io", "ido", "ido", "ido"},
	"igbo":           {"ig", "ibo", "ibo", "ibo"},
	"indonesian":     {"id", "ind", "ind", "ind"},
	"interlingua":    {"ia", "ina", "ina", "ina"},
	"interlingue":    {"ie", "ile", "ile", "ile"},
	"inuktitut":      {"iu", "iku", "iku", "iku"},
	"inupiaq":        {"ik", "ipk", "ipk", "ipk"},
	"irish":          {"ga", "gle", "gle", "gle"},
	"italian":        {"it", "ita", "ita", "ita"},
	"japanese":       {"ja", "jpn", "jpn", "jpn"},
	"javanese":       {"jv", "jav", "jav", "jav"},
	"kalaallisut":    {"kl", "kal", "kal", "kal"},
	"kannada":        {"kn", "kan", "kan", "kan"},
	"kanuri":         {"kr", "kau", "kau", "kau"},
	"kashmiri":       {"ks", "kas", "kas", "kas"},
	"kazakh":         {"kk", "kaz", "kaz", "kaz"},
	"kikuyu":         {"ki", "kik", "kik", "kik"},
	"kinyarwanda":    {"rw", "kin", "kin", "kin"},
	"kirghiz":        {"ky", "kir", "kir", "kir"},
	"komi":           {"kv", "kom", "kom", "kom"},
	"kongo":          {"kg", "kon", "kon", "kon"},
	"korean":         {"ko", "kor", "kor", "kor"},
	"kuanyama":       {"kj", "kua", "kua", "kua"},
	"kurdish":        {"ku", "kur", "kur", "kur"},
	"lao":            {"lo", "lao", "lao", "lao"},
	"latin":          {"la", "lat", "lat", "lat"},
	"latvian":        {"lv", "lav", "lav", "lav"},
	"limburgan":      {"li", "lim", "lim", "lim"},
	"lingala":        {"ln", "lin", "lin", "lin"},
	"lithuanian":     {"lt", "lit", "lit", "lit"},
	"lubakatanga":    {"lu", "lub", "lub", "lub"},
	"luxembourgish":  {"lb", "ltz", "ltz", "ltz"},
	"macedonian":     {"mk", "mkd", "mac", "mkd"},
	"malagasy":       {"mg", "mlg", "mlg", "mlg"},
	"malay":          {"ms", "msa", "may", "msa"},
	"malayalam":      {"ml", "mal", "mal", "mal"},
	"maltese":        {"mt", "mlt", "mlt", "mlt"},
	"manx":           {"gv", "glv", "glv", "glv"},
	"maori":          {"mi", "mri", "mao", "mri"},
	"marathi":        {"mr", "mar", "mar", "mar"},
	"marshallese":    {"mh", "mah", "mah", "mah"},
	"mongolian":      {"mn", "mon", "mon", "mon"},
	"nauru":          {"na", "nau", "nau", "nau"},
	"navajo":         {"nv", "nav", "nav", "nav"},
	"ndonga":         {"ng", "ndo", "ndo", "ndo"},
	"nepali":         {"ne", "nep", "nep", "nep"},
	"northernsami":   {"se", "sme", "sme", "sme"},
	"northndebele":   {"nd", "nde", "nde", "nde"},
	"norwegian":      {"no", "nor", "nor", "nor"},
	"occitan":        {"oc", "oci", "oci", "oci"},
	"ojibwa":         {"oj", "oji", "oji", "oji"},
	"oriya":          {"or", "ori", "ori", "ori"},
	"oromo":          {"om", "orm", "orm", "orm"},
	"ossetian":       {"os", "oss", "oss", "oss"},
	"pali":           {"pi", "pli", "pli", "pli"},
	"pashto":         {"ps", "pus", "pus", "pus"},
	"persian":        {"fa", "fas", "per", "fas"},
	"polish":         {"pl", "pol", "pol", "pol"},
	"portuguese":     {"pt", "por", "por", "por"},
	"punjabi":        {"pa", "pan", "pan", "pan"},
	"quechua":        {"qu", "que", "que", "que"},
	"romanian":       {"ro", "ron", "rum", "ron"},
	"romansh":        {"rm", "roh", "roh", "roh"},
	"rundi":          {"rn", "run", "run", "run"},
	"russian":        {"ru", "rus", "rus", "rus"},
	"samoan":         {"sm", "smo", "smo", "smo"},
	"sango":          {"sg", "sag", "sag", "sag"},
	"sanskrit":       {"sa", "san", "san", "san"},
	"sardinian":      {"sc", "srd", "srd", "srd"},
	"serbian":        {"sr", "srp", "srp", "srp"},
	"shona":          {"sn", "sna", "sna", "sna"},
	"sichuanyi":      {"ii", "iii", "iii", "iii"},
	"sindhi":         {"sd", "snd", "snd", "snd"},
	"sinhala":        {"si", "sin", "sin", "sin"},
	"slovak":         {"sk", "slk", "slo", "slk"},
	"slovenian":      {"sl", "slv", "slv", "slv"},
	"somali":         {"so", "som", "som", "som"},
	"southernsotho":  {"st", "sot", "sot", "sot"},
	"southndebele":   {"nr", "nbl", "nbl", "nbl"},
	"spanish":        {"es", "spa", "spa", "spa"},
	"sundanese":      {"su", "sun", "sun", "sun"},
	"swahili":        {"sw", "swa", "swa", "swa"},
	"swati":          {"ss", "ssw", "ssw", "ssw"},
	"swedish":        {"sv", "swe", "swe", "swe"},
	"tagalog":        {"tl", "tgl", "tgl", "tgl"},
	"tahitian":       {"ty", "tah", "tah", "tah"},
	"tajik":          {"tg", "tgk", "tgk", "tgk"},
	"tamil":          {"ta", "tam", "tam", "tam"},
	"tatar":          {"tt", "tat", "tat", "tat"},
	"telugu":         {"te", "tel", "tel", "tel"},
	"thai":           {"th", "tha", "tha", "tha"},
	"tibetan":        {"bo", "bod", "tib", "bod"},
	"tigrinya":       {"ti", "tir", "tir", "tir"},
	"tonga":          {"to", "ton", "ton", "ton"},
	"tsonga":         {"ts", "tso", "tso", "tso"},
	"tswana":         {"tn", "tsn", "tsn", "tsn"},
	"turkish":        {"tr", "tur", "tur", "tur"},
	"turkmen":        {"tk", "tuk", "tuk", "tuk"},
	"twi":            {"tw", "twi", "twi", "twi"},
	"uighur":         {"ug", "uig", "uig", "uig"},
	"ukrainian":      {"uk", "ukr", "ukr", "ukr"},
	"urdu":           {"ur", "urd", "urd", "urd"},
	"uzbek":          {"uz", "uzb", "uzb", "uzb"},
	"venda":          {"ve", "ven", "ven", "ven"},
	"vietnamese":     {"vi", "vie", "vie", "vie"},
	"volapuk":        {"vo", "vol", "vol", "vol"},
	"walloon":        {"wa", "wln", "wln", "wln"},
	"welsh":          {"cy", "cym", "wel", "cym"},
	"westernfrisian": {"fy", "fry", "fry", "fry"},
	"wolof":          {"wo", "wol", "wol", "wol"},
	"xhosa":          {"xh", "xho", "xho", "xho"},
	"yiddish":        {"yi", "yid", "yid", "yid"},
	"yoruba":         {"yo", "yor", "yor", "yor"},
	"zhuang":         {"za", "zha", "zha", "zha"},
	"zulu":           {"zu", "zul", "zul", "zul"},
}

var languageNames = sync.OnceValue(func() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
})

// languageHintFromWord maps one word from a subtitle file stem to an
// ISO-639-1 code. Exact code and name matches win; otherwise a full
// language name within edit distance 2 is accepted, which covers the
// common misspellings ("spainsh", "portugese").
func languageHintFromWord(word string) (string, bool) {
	word = strings.ToLower(word)
	if len(word) < 2 {
		return "", false
	}

	for name, codes := range languages {
		if word == name {
			return codes[0], true
		}
		for _, code := range codes {
			if word == code {
				return codes[0], true
			}
		}
	}

	if len(word) < 5 {
		// too short for a fuzzy name match, codes were already covered
		return "", false
	}
	bestDist := 3
	bestCode := ""
	for _, name := range languageNames() {
		dist := levenshtein.ComputeDistance(word, name)
		if dist < bestDist {
			bestDist = dist
			bestCode = languages[name][0]
		}
	}
	return bestCode, bestCode != ""
}
