package cityroute

// SampleTitle is a title of the built-in dataset
const SampleTitle = "PUTI Logistics Map"

// SampleDataset returns built-in set of Kyrgyz cities and routes between them
func SampleDataset() *Dataset {
	return &Dataset{
		Title: SampleTitle,
		Cities: []CityRecord{
			{Name: "Bishkek", Lat: 42.87, Lon: 74.59},
			{Name: "Osh", Lat: 40.53, Lon: 72.79},
			{Name: "Karakol", Lat: 42.48, Lon: 78.39},
			{Name: "Naryn", Lat: 41.43, Lon: 76.00},
			{Name: "Talas", Lat: 42.52, Lon: 72.23},
			{Name: "Batken", Lat: 40.06, Lon: 70.81},
			{Name: "Jalal-Abad", Lat: 40.93, Lon: 73.00},
			{Name: "Cholpon-Ata", Lat: 42.65, Lon: 77.08},
			{Name: "Tokmok", Lat: 42.84, Lon: 75.29},
			{Name: "Kant", Lat: 42.89, Lon: 74.85},
		},
		Routes: []RouteRecord{
			{From: "Bishkek", To: "Osh", Distance: 600},
			{From: "Bishkek", To: "Tokmok", Distance: 70},
			{From: "Tokmok", To: "Kant", Distance: 20},
			{From: "Tokmok", To: "Cholpon-Ata", Distance: 200},
			{From: "Cholpon-Ata", To: "Karakol", Distance: 150},
			{From: "Osh", To: "Batken", Distance: 250},
			{From: "Osh", To: "Jalal-Abad", Distance: 100},
			{From: "Jalal-Abad", To: "Naryn", Distance: 300},
			{From: "Naryn", To: "Talas", Distance: 400},
			{From: "Talas", To: "Bishkek", Distance: 310},
			{From: "Bishkek", To: "Jalal-Abad", Distance: 400},
			{From: "Jalal-Abad", To: "Cholpon-Ata", Distance: 350},
			{From: "Karakol", To: "Naryn", Distance: 200},
			{From: "Batken", To: "Talas", Distance: 350},
			{From: "Osh", To: "Kant", Distance: 300},
			{From: "Cholpon-Ata", To: "Talas", Distance: 250},
			{From: "Naryn", To: "Batken", Distance: 450},
			{From: "Talas", To: "Kant", Distance: 200},
		},
	}
}
