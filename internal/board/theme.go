package board

import "github.com/lobbyboard/lobbyboard/internal/weather"

// Theme names the background gradient applied to the whole page. The CSS
// for each lives in the dashboard template.
type Theme string

const (
	ThemeClear        Theme = "clear"
	ThemeClouds       Theme = "clouds"
	ThemeRain         Theme = "rain"
	ThemeSnow         Theme = "snow"
	ThemeThunderstorm Theme = "thunderstorm"
)

// Weather icons by category.
const (
	iconClear        = "☀️"
	iconClouds       = "☁️"
	iconRain         = "🌧️"
	iconSnow         = "❄️"
	iconThunderstorm = "⛈️"
	iconGeneric      = "🌡️"
)

// ThemeFor maps a weather category to a background theme. Unrecognized
// categories fall back to the default clear-sky gradient.
func ThemeFor(category weather.Category) Theme {
	switch category {
	case weather.CategoryClear:
		return ThemeClear
	case weather.CategoryClouds:
		return ThemeClouds
	case weather.CategoryRain:
		return ThemeRain
	case weather.CategorySnow:
		return ThemeSnow
	case weather.CategoryThunderstorm:
		return ThemeThunderstorm
	default:
		return ThemeClear
	}
}

// IconFor maps a weather category to its display glyph. Unrecognized
// categories fall back to a generic icon.
func IconFor(category weather.Category) string {
	switch category {
	case weather.CategoryClear:
		return iconClear
	case weather.CategoryClouds:
		return iconClouds
	case weather.CategoryRain:
		return iconRain
	case weather.CategorySnow:
		return iconSnow
	case weather.CategoryThunderstorm:
		return iconThunderstorm
	default:
		return iconGeneric
	}
}
