package screen

import "strings"

const OtherIcon = "other"

var conditionIcons = map[string]string{
	"Partly cloudy":                       "partlycloudy",
	"Moderate rain":                       "moderaterain",
	"Patchy rain possible":                "moderaterain",
	"Sunny":                               "sun",
	"Clear":                               "sun",
	"Overcast":                            "cloud",
	"Cloudy":                              "cloud",
	"Light rain":                          "moderaterain",
	"Moderate rain at times":              "moderaterain",
	"Heavy rain":                          "heavyrain",
	"Heavy rain at times":                 "heavyrain",
	"Moderate or heavy freezing rain":     "heavyrain",
	"Moderate or heavy rain shower":       "heavyrain",
	"Moderate or heavy rain with thunder": "heavyrain",
	"Mist":                                "moderaterain",
	OtherIcon:                             "moderaterain",
}

// IconFor maps a condition text from the weather API to an icon name. The API pads some texts
// with spaces, so the lookup trims first; anything unknown gets the "other" icon.
func IconFor(condition string) string {
	if icon, ok := conditionIcons[strings.TrimSpace(condition)]; ok {
		return icon
	}
	return conditionIcons[OtherIcon]
}
