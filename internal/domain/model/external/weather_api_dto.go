package external

// WeatherForecastResponse is the body of GET /forecast.json
type WeatherForecastResponse struct {
	Location *LocationDTO `json:"location" xml:"location"`
	Current  *CurrentDTO  `json:"current" xml:"current"`
	Forecast ForecastDTO  `json:"forecast" xml:"forecast"`
}

// LocationDTO is the resolved place a forecast belongs to
type LocationDTO struct {
	Name      string  `json:"name" xml:"name"`
	Region    string  `json:"region" xml:"region"`
	Country   string  `json:"country" xml:"country"`
	Lat       float64 `json:"lat" xml:"lat"`
	Lon       float64 `json:"lon" xml:"lon"`
	TzID      string  `json:"tz_id" xml:"tz_id"`
	Localtime string  `json:"localtime" xml:"localtime"`
}

// CurrentDTO holds the current conditions
type CurrentDTO struct {
	LastUpdated string       `json:"last_updated" xml:"last_updated"`
	TempC       float64      `json:"temp_c" xml:"temp_c"`
	TempF       float64      `json:"temp_f" xml:"temp_f"`
	IsDay       int          `json:"is_day" xml:"is_day"`
	Condition   ConditionDTO `json:"condition" xml:"condition"`
	WindKph     float64      `json:"wind_kph" xml:"wind_kph"`
	WindDir     string       `json:"wind_dir" xml:"wind_dir"`
	Humidity    float64      `json:"humidity" xml:"humidity"`
	FeelslikeC  float64      `json:"feelslike_c" xml:"feelslike_c"`
	UV          float64      `json:"uv" xml:"uv"`
}

// ConditionDTO is the free-text condition plus the provider's own icon
type ConditionDTO struct {
	Text string `json:"text" xml:"text"`
	Icon string `json:"icon" xml:"icon"`
	Code int    `json:"code" xml:"code"`
}

type ForecastDTO struct {
	ForecastDay []ForecastDayDTO `json:"forecastday" xml:"forecastday"`
}

// ForecastDayDTO is one day of the multi-day window
type ForecastDayDTO struct {
	Date      string   `json:"date" xml:"date"`
	DateEpoch int64    `json:"date_epoch" xml:"date_epoch"`
	Day       DayDTO   `json:"day" xml:"day"`
	Astro     AstroDTO `json:"astro" xml:"astro"`
}

// DayDTO holds the per-day aggregates
type DayDTO struct {
	MaxtempC          float64      `json:"maxtemp_c" xml:"maxtemp_c"`
	MintempC          float64      `json:"mintemp_c" xml:"mintemp_c"`
	AvgtempC          float64      `json:"avgtemp_c" xml:"avgtemp_c"`
	MaxwindKph        float64      `json:"maxwind_kph" xml:"maxwind_kph"`
	Avghumidity       float64      `json:"avghumidity" xml:"avghumidity"`
	DailyChanceOfRain int          `json:"daily_chance_of_rain" xml:"daily_chance_of_rain"`
	Condition         ConditionDTO `json:"condition" xml:"condition"`
}

type AstroDTO struct {
	Sunrise  string `json:"sunrise" xml:"sunrise"`
	Sunset   string `json:"sunset" xml:"sunset"`
	Moonrise string `json:"moonrise" xml:"moonrise"`
	Moonset  string `json:"moonset" xml:"moonset"`
}

// SearchLocationDTO is one element of the GET /search.json array
type SearchLocationDTO struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// APIErrorResponse represents error responses from the weather API
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
