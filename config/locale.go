package config

// The web player ships translations for this fixed set of interface
// languages. Anything else makes the server fall back unpredictably, so it
// is rejected up front.
var supportedLanguages = map[string]bool{
	"ar":    true,
	"de":    true,
	"en":    true,
	"es":    true,
	"fr":    true,
	"hi":    true,
	"it":    true,
	"ja":    true,
	"ko":    true,
	"nl":    true,
	"pt":    true,
	"ru":    true,
	"tr":    true,
	"ur":    true,
	"zh_CN": true,
	"zh_TW": true,
}

// ISO 3166-1 alpha-2 codes the service accepts as a gl value.
var supportedLocations = map[string]bool{
	"AE": true, "AR": true, "AT": true, "AU": true, "AZ": true, "BA": true,
	"BD": true, "BE": true, "BG": true, "BH": true, "BO": true, "BR": true,
	"BY": true, "CA": true, "CH": true, "CL": true, "CO": true, "CR": true,
	"CY": true, "CZ": true, "DE": true, "DK": true, "DO": true, "DZ": true,
	"EC": true, "EE": true, "EG": true, "ES": true, "FI": true, "FR": true,
	"GB": true, "GE": true, "GH": true, "GR": true, "GT": true, "HK": true,
	"HN": true, "HR": true, "HU": true, "ID": true, "IE": true, "IL": true,
	"IN": true, "IQ": true, "IS": true, "IT": true, "JM": true, "JO": true,
	"JP": true, "KE": true, "KH": true, "KR": true, "KW": true, "KZ": true,
	"LA": true, "LB": true, "LI": true, "LK": true, "LT": true, "LU": true,
	"LV": true, "LY": true, "MA": true, "ME": true, "MK": true, "MT": true,
	"MX": true, "MY": true, "NG": true, "NI": true, "NL": true, "NO": true,
	"NP": true, "NZ": true, "OM": true, "PA": true, "PE": true, "PG": true,
	"PH": true, "PK": true, "PL": true, "PR": true, "PT": true, "PY": true,
	"QA": true, "RO": true, "RS": true, "RU": true, "SA": true, "SE": true,
	"SG": true, "SI": true, "SK": true, "SN": true, "SV": true, "TH": true,
	"TN": true, "TR": true, "TW": true, "TZ": true, "UA": true, "UG": true,
	"US": true, "UY": true, "VE": true, "VN": true, "YE": true, "ZA": true,
	"ZW": true,
}
