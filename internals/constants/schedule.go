package constants

// Hari mengajar: Senin..Jumat (grid mingguan lima hari)
const (
	DayMonday    = 1
	DayTuesday   = 2
	DayWednesday = 3
	DayThursday  = 4
	DayFriday    = 5

	MinDayOfWeek = DayMonday
	MaxDayOfWeek = DayFriday
)

var dayNames = map[int]string{
	DayMonday:    "Senin",
	DayTuesday:   "Selasa",
	DayWednesday: "Rabu",
	DayThursday:  "Kamis",
	DayFriday:    "Jumat",
}

func DayName(d int) string {
	if n, ok := dayNames[d]; ok {
		return n
	}
	return "?"
}

func ValidDayOfWeek(d int) bool {
	return d >= MinDayOfWeek && d <= MaxDayOfWeek
}
