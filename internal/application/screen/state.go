package screen

import (
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

// Phase is the observable state of the screen
type Phase string

const (
	PhaseInitialLoading       Phase = "initial-loading"
	PhaseIdleWithWeather      Phase = "idle-with-weather"
	PhaseSearchOpen           Phase = "search-open"
	PhaseSearchOpenWithResult Phase = "search-open-with-results"
	PhaseFailed               Phase = "failed"
)

// State is everything the screen renders from. Snapshots are copies and safe to keep.
type State struct {
	Loading       bool
	Weather       *external.WeatherForecastResponse
	Failure       *model.FetchError
	Query         string
	ShowSearch    bool
	SearchText    string
	SearchResults []external.SearchLocationDTO
	SearchFailure *model.FetchError
}

// Phase derives the observable phase. Loading wins over everything else; an open search wins over
// the weather or failure underneath it.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseInitialLoading
	case s.ShowSearch && len(s.SearchResults) > 0:
		return PhaseSearchOpenWithResult
	case s.ShowSearch:
		return PhaseSearchOpen
	case s.Weather == nil && s.Failure != nil:
		return PhaseFailed
	default:
		return PhaseIdleWithWeather
	}
}

func (s State) clone() State {
	if s.SearchResults != nil {
		s.SearchResults = append([]external.SearchLocationDTO(nil), s.SearchResults...)
	}
	return s
}
