package youtube

// regionCodes maps the country names the frontend offers to ISO 3166-1
// alpha-2 region codes accepted by the videos endpoint.
var regionCodes = map[string]string{
	"United States":  "US",
	"France":         "FR",
	"United Kingdom": "GB",
	"Germany":        "DE",
	"Japan":          "JP",
	"South Korea":    "KR",
	"Canada":         "CA",
	"Australia":      "AU",
	"Brazil":         "BR",
	"Mexico":         "MX",
	"India":          "IN",
	"Italy":          "IT",
	"Spain":          "ES",
	"Russia":         "RU",
	"China":          "CN",
}

// RegionCode resolves a country name to its region code, defaulting to "US"
// for anything unrecognized.
func RegionCode(country string) string {
	if code, ok := regionCodes[country]; ok {
		return code
	}
	return "US"
}
