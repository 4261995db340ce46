package screen

import (
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

const forecastDateLayout = "2006-01-02"

// View is the render-ready projection of a State. It is what the HTTP API returns and what the
// terminal prints.
type View struct {
	Phase    Phase             `json:"phase"`
	Loading  bool              `json:"loading"`
	Query    string            `json:"query,omitempty"`
	Search   *SearchView       `json:"search,omitempty"`
	Location *LocationView     `json:"location,omitempty"`
	Current  *CurrentView      `json:"current,omitempty"`
	Daily    []DayView         `json:"daily,omitempty"`
	Failure  *model.FetchError `json:"failure,omitempty"`
}

type SearchView struct {
	Text    string            `json:"text"`
	Results []SearchRowView   `json:"results"`
	Failure *model.FetchError `json:"failure,omitempty"`
}

type SearchRowView struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Country string `json:"country"`
}

type LocationView struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type CurrentView struct {
	Icon        string  `json:"icon"`
	TempC       float64 `json:"tempC"`
	Condition   string  `json:"condition"`
	WindKph     float64 `json:"windKph"`
	Humidity    float64 `json:"humidity"`
	Sunrise     string  `json:"sunrise,omitempty"`
	LastUpdated string  `json:"lastUpdated,omitempty"`
}

type DayView struct {
	Date     string  `json:"date"`
	Weekday  string  `json:"weekday"`
	Icon     string  `json:"icon"`
	AvgTempC float64 `json:"avgTempC"`
}

// Render projects the state into a view. It has no side effects.
func Render(state State) View {
	view := View{
		Phase:   state.Phase(),
		Loading: state.Loading,
		Query:   state.Query,
	}
	if state.Loading {
		return view
	}

	if state.ShowSearch {
		search := &SearchView{
			Text:    state.SearchText,
			Results: make([]SearchRowView, 0, len(state.SearchResults)),
			Failure: state.SearchFailure,
		}
		for i, result := range state.SearchResults {
			search.Results = append(search.Results, searchRow(i, result))
		}
		view.Search = search
	}

	view.Failure = state.Failure
	if state.Weather == nil {
		return view
	}

	weather := state.Weather
	if weather.Location != nil {
		view.Location = &LocationView{
			Name:    weather.Location.Name,
			Region:  weather.Location.Region,
			Country: weather.Location.Country,
		}
	}
	if weather.Current != nil {
		view.Current = &CurrentView{
			Icon:        IconFor(weather.Current.Condition.Text),
			TempC:       weather.Current.TempC,
			Condition:   weather.Current.Condition.Text,
			WindKph:     weather.Current.WindKph,
			Humidity:    weather.Current.Humidity,
			LastUpdated: weather.Current.LastUpdated,
		}
		if len(weather.Forecast.ForecastDay) > 0 {
			view.Current.Sunrise = weather.Forecast.ForecastDay[0].Astro.Sunrise
		}
	}
	for _, day := range weather.Forecast.ForecastDay {
		view.Daily = append(view.Daily, DayView{
			Date:     day.Date,
			Weekday:  Weekday(day.Date),
			Icon:     IconFor(day.Day.Condition.Text),
			AvgTempC: day.Day.AvgtempC,
		})
	}
	return view
}

func searchRow(index int, location external.SearchLocationDTO) SearchRowView {
	label := location.Name
	if location.Region != "" {
		label += ", " + location.Region
	}
	return SearchRowView{Index: index, Label: label, Country: location.Country}
}

// Weekday returns the English weekday of a yyyy-mm-dd date, or the input unchanged when it does not parse
func Weekday(date string) string {
	parsed, err := time.Parse(forecastDateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Weekday().String()
}
