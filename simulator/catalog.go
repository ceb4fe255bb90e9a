package simulator

import "crowd-server/models/location"

// chennaiCatalog holds the static attributes of every monitored location.
var chennaiCatalog = []location.Location{
	// Malls
	{ID: "1", Name: "Express Avenue Mall", Address: "Anna Salai, Royapettah", Lat: 13.0569, Lng: 80.2633, Category: location.CategoryMall, Capacity: 5000, Distance: "2.3 km"},
	{ID: "2", Name: "Phoenix MarketCity", Address: "Velachery Main Road", Lat: 12.9941, Lng: 80.2187, Category: location.CategoryMall, Capacity: 8000, Distance: "5.1 km", ForceHigh: true},
	{ID: "3", Name: "VR Chennai", Address: "Anna Nagar, 2nd Avenue", Lat: 13.0878, Lng: 80.2089, Category: location.CategoryMall, Capacity: 6000, Distance: "4.7 km"},
	{ID: "4", Name: "Spencer Plaza", Address: "Anna Salai", Lat: 13.0619, Lng: 80.2662, Category: location.CategoryMall, Capacity: 5000, Distance: "1.5 km"},
	{ID: "5", Name: "Palladium Mall", Address: "Velachery", Lat: 12.9785, Lng: 80.2201, Category: location.CategoryMall, Capacity: 4000, Distance: "6.0 km"},
	{ID: "6", Name: "Grand Square Mall", Address: "Perambur", Lat: 13.1067, Lng: 80.2476, Category: location.CategoryMall, Capacity: 3500, Distance: "3.2 km"},
	{ID: "7", Name: "Forum Vijaya Mall", Address: "Vadapalani", Lat: 13.0501, Lng: 80.2124, Category: location.CategoryMall, Capacity: 4500, Distance: "4.5 km"},
	{ID: "8", Name: "Ampa Skywalk Mall", Address: "Aminjikarai", Lat: 13.0698, Lng: 80.2256, Category: location.CategoryMall, Capacity: 3000, Distance: "3.8 km"},
	{ID: "9", Name: "Seasons Mall", Address: "Magrath Road", Lat: 13.0456, Lng: 80.2543, Category: location.CategoryMall, Capacity: 2500, Distance: "2.1 km"},
	{ID: "10", Name: "Chennai Citi Centre", Address: "Dr. Radhakrishnan Salai", Lat: 13.0537, Lng: 80.2574, Category: location.CategoryMall, Capacity: 3500, Distance: "1.8 km"},
	{ID: "11", Name: "Spectrum Mall", Address: "Perungudi", Lat: 12.9621, Lng: 80.2463, Category: location.CategoryMall, Capacity: 2800, Distance: "8.5 km"},
	{ID: "12", Name: "EA Mall", Address: "Anna Nagar East", Lat: 13.0912, Lng: 80.2198, Category: location.CategoryMall, Capacity: 2200, Distance: "5.2 km"},

	// Food courts
	{ID: "13", Name: "Phoenix Mall Food Court", Address: "Velachery", Lat: 12.9928, Lng: 80.2173, Category: location.CategoryFoodCourt, Capacity: 500, Distance: "5.2 km"},
	{ID: "14", Name: "Forum Vijaya Food Court", Address: "Vadapalani", Lat: 13.0498, Lng: 80.2092, Category: location.CategoryFoodCourt, Capacity: 400, Distance: "4.2 km"},
	{ID: "15", Name: "Express Avenue Food Court", Address: "Royapettah", Lat: 13.0572, Lng: 80.2635, Category: location.CategoryFoodCourt, Capacity: 600, Distance: "2.4 km"},
	{ID: "16", Name: "Saravana Stores Food Court", Address: "T. Nagar", Lat: 13.0425, Lng: 80.2348, Category: location.CategoryFoodCourt, Capacity: 800, Distance: "2.8 km"},
	{ID: "17", Name: "VR Chennai Food Court", Address: "Anna Nagar", Lat: 13.0881, Lng: 80.2091, Category: location.CategoryFoodCourt, Capacity: 450, Distance: "4.8 km"},
	{ID: "18", Name: "Ampa Skywalk Food Court", Address: "Aminjikarai", Lat: 13.0701, Lng: 80.2258, Category: location.CategoryFoodCourt, Capacity: 350, Distance: "3.9 km"},
	{ID: "19", Name: "Hot Chips Anna Nagar", Address: "Anna Nagar", Lat: 13.0856, Lng: 80.2102, Category: location.CategoryFoodCourt, Capacity: 200, Distance: "4.6 km"},
	{ID: "20", Name: "Murugan Idli Shop", Address: "T. Nagar", Lat: 13.0412, Lng: 80.2356, Category: location.CategoryFoodCourt, Capacity: 150, Distance: "2.9 km"},

	// Parks
	{ID: "21", Name: "Guindy National Park", Address: "Guindy", Lat: 13.0067, Lng: 80.2206, Category: location.CategoryPark, Capacity: 3000, Distance: "3.4 km"},
	{ID: "22", Name: "Semmozhi Poonga", Address: "Cathedral Road", Lat: 13.0573, Lng: 80.2583, Category: location.CategoryPark, Capacity: 2000, Distance: "1.9 km"},
	{ID: "23", Name: "Tholkappia Poonga", Address: "Adyar Estuary", Lat: 13.0145, Lng: 80.2568, Category: location.CategoryPark, Capacity: 2500, Distance: "4.5 km"},
	{ID: "24", Name: "Anna Nagar Tower Park", Address: "Anna Nagar", Lat: 13.0865, Lng: 80.2098, Category: location.CategoryPark, Capacity: 1500, Distance: "4.9 km"},
	{ID: "25", Name: "Natesan Park", Address: "T. Nagar", Lat: 13.0398, Lng: 80.2412, Category: location.CategoryPark, Capacity: 800, Distance: "2.6 km"},
	{ID: "26", Name: "Panagal Park", Address: "T. Nagar", Lat: 13.0432, Lng: 80.2328, Category: location.CategoryPark, Capacity: 600, Distance: "3.0 km"},
	{ID: "27", Name: "Nungambakkam Tank Park", Address: "Nungambakkam", Lat: 13.0612, Lng: 80.2398, Category: location.CategoryPark, Capacity: 1000, Distance: "2.2 km"},
	{ID: "28", Name: "Kotturpuram Tree Park", Address: "Kotturpuram", Lat: 13.0178, Lng: 80.2432, Category: location.CategoryPark, Capacity: 1200, Distance: "3.8 km"},
	{ID: "29", Name: "Besant Nagar Beach Park", Address: "Besant Nagar", Lat: 13.0002, Lng: 80.2671, Category: location.CategoryPark, Capacity: 5000, Distance: "5.8 km"},
	{ID: "30", Name: "Chetpet Eco Park", Address: "Chetpet", Lat: 13.0721, Lng: 80.2398, Category: location.CategoryPark, Capacity: 900, Distance: "2.0 km"},

	// Transit
	{ID: "31", Name: "Chennai Central Station", Address: "Park Town", Lat: 13.0827, Lng: 80.2707, Category: location.CategoryTransit, Capacity: 15000, Distance: "0.9 km"},
	{ID: "32", Name: "Chennai Egmore Station", Address: "Egmore", Lat: 13.0732, Lng: 80.2609, Category: location.CategoryTransit, Capacity: 10000, Distance: "1.2 km"},
	{ID: "33", Name: "CMBT Bus Terminus", Address: "Koyambedu", Lat: 13.0694, Lng: 80.1948, Category: location.CategoryTransit, Capacity: 20000, Distance: "7.8 km"},
	{ID: "34", Name: "Tambaram Railway Station", Address: "Tambaram", Lat: 12.9229, Lng: 80.1275, Category: location.CategoryTransit, Capacity: 8000, Distance: "18.5 km"},
	{ID: "35", Name: "Mambalam Railway Station", Address: "West Mambalam", Lat: 13.0374, Lng: 80.2198, Category: location.CategoryTransit, Capacity: 5000, Distance: "3.8 km"},
	{ID: "36", Name: "Guindy Metro Station", Address: "Guindy", Lat: 13.0097, Lng: 80.2134, Category: location.CategoryTransit, Capacity: 4000, Distance: "3.5 km"},
	{ID: "37", Name: "Alandur Metro Station", Address: "Alandur", Lat: 13.0028, Lng: 80.2012, Category: location.CategoryTransit, Capacity: 3500, Distance: "4.2 km"},
	{ID: "38", Name: "Airport Metro Station", Address: "Meenambakkam", Lat: 12.9854, Lng: 80.1698, Category: location.CategoryTransit, Capacity: 6000, Distance: "10.2 km"},
	{ID: "39", Name: "Vadapalani Metro", Address: "Vadapalani", Lat: 13.0512, Lng: 80.2123, Category: location.CategoryTransit, Capacity: 4500, Distance: "4.4 km"},
	{ID: "40", Name: "Nungambakkam Metro", Address: "Nungambakkam", Lat: 13.0589, Lng: 80.2432, Category: location.CategoryTransit, Capacity: 3000, Distance: "2.3 km"},
	{ID: "41", Name: "Teynampet Metro", Address: "Teynampet", Lat: 13.0456, Lng: 80.2512, Category: location.CategoryTransit, Capacity: 3200, Distance: "2.0 km"},
	{ID: "42", Name: "Saidapet Metro", Address: "Saidapet", Lat: 13.0234, Lng: 80.2256, Category: location.CategoryTransit, Capacity: 3800, Distance: "3.2 km"},

	// Markets
	{ID: "43", Name: "T. Nagar Ranganathan Street", Address: "T. Nagar", Lat: 13.0418, Lng: 80.2341, Category: location.CategoryMarket, Capacity: 25000, Distance: "2.9 km"},
	{ID: "44", Name: "Pondy Bazaar", Address: "T. Nagar", Lat: 13.0452, Lng: 80.2424, Category: location.CategoryMarket, Capacity: 15000, Distance: "2.5 km"},
	{ID: "45", Name: "Koyambedu Market", Address: "Koyambedu", Lat: 13.0679, Lng: 80.1936, Category: location.CategoryMarket, Capacity: 30000, Distance: "8.0 km"},
	{ID: "46", Name: "George Town Market", Address: "George Town", Lat: 13.0881, Lng: 80.2810, Category: location.CategoryMarket, Capacity: 20000, Distance: "1.5 km"},
	{ID: "47", Name: "Mylapore Tank Bazaar", Address: "Mylapore", Lat: 13.0337, Lng: 80.2679, Category: location.CategoryMarket, Capacity: 10000, Distance: "3.6 km"},
	{ID: "48", Name: "Parry Corner Market", Address: "Parry Corner", Lat: 13.0867, Lng: 80.2856, Category: location.CategoryMarket, Capacity: 18000, Distance: "1.8 km"},
	{ID: "49", Name: "Ritchie Street Electronics", Address: "Mount Road", Lat: 13.0578, Lng: 80.2623, Category: location.CategoryMarket, Capacity: 8000, Distance: "2.1 km"},
	{ID: "50", Name: "Burma Bazaar", Address: "Parrys", Lat: 13.0912, Lng: 80.2867, Category: location.CategoryMarket, Capacity: 12000, Distance: "2.0 km"},
	{ID: "51", Name: "Sowcarpet Market", Address: "Sowcarpet", Lat: 13.0923, Lng: 80.2798, Category: location.CategoryMarket, Capacity: 15000, Distance: "1.6 km"},
	{ID: "52", Name: "Thiruvanmiyur Market", Address: "Thiruvanmiyur", Lat: 12.9834, Lng: 80.2634, Category: location.CategoryMarket, Capacity: 6000, Distance: "7.2 km"},
	{ID: "53", Name: "Chromepet Market", Address: "Chromepet", Lat: 12.9512, Lng: 80.1423, Category: location.CategoryMarket, Capacity: 8000, Distance: "14.5 km"},
	{ID: "54", Name: "Ambattur Market", Address: "Ambattur", Lat: 13.1145, Lng: 80.1567, Category: location.CategoryMarket, Capacity: 9000, Distance: "12.0 km"},

	// Museums
	{ID: "55", Name: "Government Museum", Address: "Pantheon Road, Egmore", Lat: 13.0695, Lng: 80.2547, Category: location.CategoryMuseum, Capacity: 5000, Distance: "1.3 km"},
	{ID: "56", Name: "Fort St. George Museum", Address: "Fort St. George", Lat: 13.0797, Lng: 80.2868, Category: location.CategoryMuseum, Capacity: 3000, Distance: "2.1 km"},
	{ID: "57", Name: "Vivekananda House", Address: "Triplicane", Lat: 13.0495, Lng: 80.2798, Category: location.CategoryMuseum, Capacity: 1500, Distance: "2.8 km"},
	{ID: "58", Name: "Rail Museum", Address: "ICF Colony", Lat: 13.0812, Lng: 80.1934, Category: location.CategoryMuseum, Capacity: 2000, Distance: "6.5 km"},
	{ID: "59", Name: "DakshinaChitra Museum", Address: "Muttukadu", Lat: 12.8234, Lng: 80.2412, Category: location.CategoryMuseum, Capacity: 2500, Distance: "28.0 km"},
	{ID: "60", Name: "Birla Planetarium", Address: "Kotturpuram", Lat: 13.0165, Lng: 80.2398, Category: location.CategoryMuseum, Capacity: 800, Distance: "3.9 km"},
	{ID: "61", Name: "Natural History Museum", Address: "Egmore", Lat: 13.0698, Lng: 80.2551, Category: location.CategoryMuseum, Capacity: 1200, Distance: "1.4 km"},
	{ID: "62", Name: "Children Museum", Address: "Guindy", Lat: 13.0089, Lng: 80.2189, Category: location.CategoryMuseum, Capacity: 1000, Distance: "3.6 km"},

	// Toll plazas
	{ID: "63", Name: "Akkarai Toll Plaza", Address: "ECR, Akkarai", Lat: 12.9038, Lng: 80.2472, Category: location.CategoryToll, Capacity: 500, Distance: "15.2 km"},
	{ID: "64", Name: "Navlur Toll Plaza", Address: "OMR, Navlur", Lat: 12.8364, Lng: 80.2255, Category: location.CategoryToll, Capacity: 700, Distance: "22.0 km"},
	{ID: "65", Name: "Vandalur Toll Gate", Address: "GST Road", Lat: 12.8857, Lng: 80.0811, Category: location.CategoryToll, Capacity: 600, Distance: "25.0 km"},
	{ID: "66", Name: "Maduravoyal Toll", Address: "NH4", Lat: 13.0623, Lng: 80.1534, Category: location.CategoryToll, Capacity: 800, Distance: "9.5 km"},
	{ID: "67", Name: "Paranur Toll Plaza", Address: "GST Road", Lat: 12.7956, Lng: 80.0234, Category: location.CategoryToll, Capacity: 650, Distance: "35.0 km"},
	{ID: "68", Name: "Sriperumbudur Toll", Address: "NH4", Lat: 12.9678, Lng: 79.9412, Category: location.CategoryToll, Capacity: 750, Distance: "40.0 km"},
	{ID: "69", Name: "Oragadam Toll", Address: "Oragadam", Lat: 12.8345, Lng: 79.9867, Category: location.CategoryToll, Capacity: 550, Distance: "45.0 km"},
	{ID: "70", Name: "Perungalathur Toll", Address: "GST Road", Lat: 12.9056, Lng: 80.0978, Category: location.CategoryToll, Capacity: 480, Distance: "20.0 km"},
}

// DefaultCatalog returns a fresh copy of the compiled-in catalog.
func DefaultCatalog() []location.Location {
	out := make([]location.Location, len(chennaiCatalog))
	copy(out, chennaiCatalog)
	return out
}
