package timeutil

import "time"

// holidayTables maps a country code to the set of public-holiday dates in
// ISO format. Only the Swedish calendar is populated; any other country
// yields no holidays. That fallback is deliberate reference-data behavior,
// not a gap to fill silently.
var holidayTables = map[string]map[string]bool{
	"SE": {
		// 2024
		"2024-01-01": true, // Nyårsdagen
		"2024-01-06": true, // Trettondedag jul
		"2024-03-29": true, // Långfredagen
		"2024-03-31": true, // Påskdagen
		"2024-04-01": true, // Annandag påsk
		"2024-05-01": true, // Första maj
		"2024-05-09": true, // Kristi himmelsfärdsdag
		"2024-05-19": true, // Pingstdagen
		"2024-06-06": true, // Nationaldagen
		"2024-06-21": true, // Midsommarafton
		"2024-06-22": true, // Midsommardagen
		"2024-11-02": true, // Alla helgons dag
		"2024-12-24": true, // Julafton
		"2024-12-25": true, // Juldagen
		"2024-12-26": true, // Annandag jul
		"2024-12-31": true, // Nyårsafton
		// 2025
		"2025-01-01": true,
		"2025-01-06": true,
		"2025-04-18": true,
		"2025-04-20": true,
		"2025-04-21": true,
		"2025-05-01": true,
		"2025-05-29": true,
		"2025-06-06": true,
		"2025-06-08": true,
		"2025-06-20": true,
		"2025-06-21": true,
		"2025-11-01": true,
		"2025-12-24": true,
		"2025-12-25": true,
		"2025-12-26": true,
		"2025-12-31": true,
	},
}

// IsHoliday reports whether t's calendar date is a public holiday for the
// given country code. Unknown countries always return false.
func IsHoliday(t time.Time, country string) bool {
	table, ok := holidayTables[country]
	if !ok {
		return false
	}
	return table[t.Format("2006-01-02")]
}
