package locale

import "sort"

// Zone is a named standard UTC offset
type Zone struct {
	Name   string `json:"name" xml:"name"`
	Offset int    `json:"offset" xml:"offset"` // seconds east of UTC
}

// zones is ordered by offset, then by name. Lookups by offset return the first match.
var zones = []Zone{
	{"International Date Line West", -43200},
	{"American Samoa", -39600},
	{"Midway Island", -39600},
	{"Hawaii", -36000},
	{"Alaska", -32400},
	{"Pacific Time (US & Canada)", -28800},
	{"Tijuana", -28800},
	{"Arizona", -25200},
	{"Mazatlan", -25200},
	{"Mountain Time (US & Canada)", -25200},
	{"Central America", -21600},
	{"Central Time (US & Canada)", -21600},
	{"Guadalajara", -21600},
	{"Mexico City", -21600},
	{"Monterrey", -21600},
	{"Saskatchewan", -21600},
	{"Bogota", -18000},
	{"Eastern Time (US & Canada)", -18000},
	{"Indiana (East)", -18000},
	{"Lima", -18000},
	{"Quito", -18000},
	{"Atlantic Time (Canada)", -14400},
	{"Caracas", -14400},
	{"Georgetown", -14400},
	{"La Paz", -14400},
	{"Puerto Rico", -14400},
	{"Santiago", -14400},
	{"Newfoundland", -12600},
	{"Brasilia", -10800},
	{"Buenos Aires", -10800},
	{"Greenland", -10800},
	{"Montevideo", -10800},
	{"Mid-Atlantic", -7200},
	{"Azores", -3600},
	{"Cape Verde Is.", -3600},
	{"Casablanca", 0},
	{"Dublin", 0},
	{"Edinburgh", 0},
	{"Lisbon", 0},
	{"London", 0},
	{"Monrovia", 0},
	{"UTC", 0},
	{"Amsterdam", 3600},
	{"Belgrade", 3600},
	{"Berlin", 3600},
	{"Bern", 3600},
	{"Bratislava", 3600},
	{"Brussels", 3600},
	{"Budapest", 3600},
	{"Copenhagen", 3600},
	{"Ljubljana", 3600},
	{"Madrid", 3600},
	{"Paris", 3600},
	{"Prague", 3600},
	{"Rome", 3600},
	{"Sarajevo", 3600},
	{"Skopje", 3600},
	{"Stockholm", 3600},
	{"Vienna", 3600},
	{"Warsaw", 3600},
	{"West Central Africa", 3600},
	{"Zagreb", 3600},
	{"Athens", 7200},
	{"Bucharest", 7200},
	{"Cairo", 7200},
	{"Harare", 7200},
	{"Helsinki", 7200},
	{"Jerusalem", 7200},
	{"Kyiv", 7200},
	{"Pretoria", 7200},
	{"Riga", 7200},
	{"Sofia", 7200},
	{"Tallinn", 7200},
	{"Vilnius", 7200},
	{"Baghdad", 10800},
	{"Istanbul", 10800},
	{"Kuwait", 10800},
	{"Minsk", 10800},
	{"Moscow", 10800},
	{"Nairobi", 10800},
	{"Riyadh", 10800},
	{"St. Petersburg", 10800},
	{"Tehran", 12600},
	{"Abu Dhabi", 14400},
	{"Baku", 14400},
	{"Muscat", 14400},
	{"Tbilisi", 14400},
	{"Yerevan", 14400},
	{"Kabul", 16200},
	{"Ekaterinburg", 18000},
	{"Islamabad", 18000},
	{"Karachi", 18000},
	{"Tashkent", 18000},
	{"Chennai", 19800},
	{"Kolkata", 19800},
	{"Mumbai", 19800},
	{"New Delhi", 19800},
	{"Sri Jayawardenepura", 19800},
	{"Kathmandu", 20700},
	{"Almaty", 21600},
	{"Astana", 21600},
	{"Dhaka", 21600},
	{"Rangoon", 23400},
	{"Bangkok", 25200},
	{"Hanoi", 25200},
	{"Jakarta", 25200},
	{"Krasnoyarsk", 25200},
	{"Novosibirsk", 25200},
	{"Beijing", 28800},
	{"Chongqing", 28800},
	{"Hong Kong", 28800},
	{"Irkutsk", 28800},
	{"Kuala Lumpur", 28800},
	{"Perth", 28800},
	{"Singapore", 28800},
	{"Taipei", 28800},
	{"Ulaanbaatar", 28800},
	{"Osaka", 32400},
	{"Sapporo", 32400},
	{"Seoul", 32400},
	{"Tokyo", 32400},
	{"Yakutsk", 32400},
	{"Adelaide", 34200},
	{"Darwin", 34200},
	{"Brisbane", 36000},
	{"Canberra", 36000},
	{"Guam", 36000},
	{"Hobart", 36000},
	{"Melbourne", 36000},
	{"Port Moresby", 36000},
	{"Sydney", 36000},
	{"Vladivostok", 36000},
	{"Magadan", 39600},
	{"New Caledonia", 39600},
	{"Solomon Is.", 39600},
	{"Auckland", 43200},
	{"Fiji", 43200},
	{"Kamchatka", 43200},
	{"Marshall Is.", 43200},
	{"Wellington", 43200},
	{"Chatham Is.", 45900},
	{"Nuku'alofa", 46800},
	{"Samoa", 46800},
	{"Tokelau Is.", 46800},
}

var zonesByName = func() map[string]int {
	m := make(map[string]int, len(zones))
	for _, z := range zones {
		m[z.Name] = z.Offset
	}
	return m
}()

// Zones returns a copy of the zone table
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZoneForOffset returns the first zone whose offset equals seconds
func ZoneForOffset(seconds int) (Zone, bool) {
	i := sort.Search(len(zones), func(i int) bool { return zones[i].Offset >= seconds })
	if i < len(zones) && zones[i].Offset == seconds {
		return zones[i], true
	}
	return Zone{}, false
}

// OffsetForZone returns the offset in seconds of the named zone
func OffsetForZone(name string) (int, bool) {
	offset, ok := zonesByName[name]
	return offset, ok
}
