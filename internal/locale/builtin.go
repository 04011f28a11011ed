package locale

import "golang.org/x/text/language"

// DefaultTag is the locale used when none is configured.
var DefaultTag = language.BrazilianPortuguese

// PortugueseBR returns the Brazilian Portuguese tables.
func PortugueseBR() *Locale {
	return &Locale{
		Tag: language.BrazilianPortuguese,
		Weekdays: [7]string{
			"domingo", "segunda-feira", "terça-feira", "quarta-feira",
			"quinta-feira", "sexta-feira", "sábado",
		},
		Months: [12]string{
			"jan", "fev", "mar", "abr", "mai", "jun",
			"jul", "ago", "set", "out", "nov", "dez",
		},
		JustNow:     "agora mesmo",
		MinuteAgo:   "{n} minuto atrás",
		MinutesAgo:  "{n} minutos atrás",
		InvalidDate: "Invalid Date",
		AirQuality: map[int]string{
			1: "Boa",
			2: "Moderada",
			3: "Insalubre para grupos sensíveis",
			4: "Insalubre",
			5: "Muito insalubre",
			6: "Perigosa",
		},
		AirQualityUnknown: "Desconhecida",
		WindDirections: map[string]string{
			"N":   "Norte",
			"NNE": "Nor-Nordeste",
			"NE":  "Nordeste",
			"ENE": "Leste-Nordeste",
			"E":   "Leste",
			"ESE": "Leste-Sudeste",
			"SE":  "Sudeste",
			"SSE": "Sul-Sudeste",
			"S":   "Sul",
			"SSW": "Sul-Sudoeste",
			"SW":  "Sudoeste",
			"WSW": "Oeste-Sudoeste",
			"W":   "Oeste",
			"WNW": "Oeste-Noroeste",
			"NW":  "Noroeste",
			"NNW": "Nor-Noroeste",
		},
	}
}

// English returns the English tables.
func English() *Locale {
	return &Locale{
		Tag: language.English,
		Weekdays: [7]string{
			"sunday", "monday", "tuesday", "wednesday",
			"thursday", "friday", "saturday",
		},
		Months: [12]string{
			"jan", "feb", "mar", "apr", "may", "jun",
			"jul", "aug", "sep", "oct", "nov", "dec",
		},
		JustNow:     "just now",
		MinuteAgo:   "{n} minute ago",
		MinutesAgo:  "{n} minutes ago",
		InvalidDate: "Invalid Date",
		AirQuality: map[int]string{
			1: "Good",
			2: "Moderate",
			3: "Unhealthy for sensitive groups",
			4: "Unhealthy",
			5: "Very unhealthy",
			6: "Hazardous",
		},
		AirQualityUnknown: "Unknown",
		WindDirections: map[string]string{
			"N":   "North",
			"NNE": "North-Northeast",
			"NE":  "Northeast",
			"ENE": "East-Northeast",
			"E":   "East",
			"ESE": "East-Southeast",
			"SE":  "Southeast",
			"SSE": "South-Southeast",
			"S":   "South",
			"SSW": "South-Southwest",
			"SW":  "Southwest",
			"WSW": "West-Southwest",
			"W":   "West",
			"WNW": "West-Northwest",
			"NW":  "Northwest",
			"NNW": "North-Northwest",
		},
	}
}
