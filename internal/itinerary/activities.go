package itinerary

import "fmt"

// Activity is one time-slotted entry in a day plan. Time is a display
// label, never parsed.
type Activity struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// cityActivities maps a city name (exact match) to its curated full-day
// schedule. Cities not listed here fall back to defaultActivities.
var cityActivities = map[string][]Activity{
	"Pune": {
		{Time: "7:00 AM", Title: "Wake Up & Freshen Up", Description: "Get ready for an exciting day of exploration", Location: "Your Hotel"},
		{Time: "8:30 AM", Title: "Breakfast", Description: "Traditional Maharashtrian breakfast with Misal Pav and Poha", Location: "Vaishali Restaurant, FC Road"},
		{Time: "10:30 AM", Title: "Visit Shaniwar Wada", Description: "Explore the historic 18th-century fortification and palace ruins", Location: "Shaniwar Wada Fort"},
		{Time: "12:30 PM", Title: "Explore Dagdusheth Halwai Ganpati Temple", Description: "Visit the famous 200-year-old temple", Location: "Budhwar Peth"},
		{Time: "2:00 PM", Title: "Lunch", Description: "Authentic Maharashtrian thali with local specialties", Location: "Durvankur Restaurant, FC Road"},
		{Time: "4:00 PM", Title: "Shopping at Laxmi Road", Description: "Browse traditional jewelry, clothes and handicrafts", Location: "Laxmi Road Market"},
		{Time: "6:30 PM", Title: "Sunset at Parvati Hill", Description: "Climb 108 steps for panoramic city views", Location: "Parvati Hill Temple"},
		{Time: "8:30 PM", Title: "Dinner", Description: "Modern Indian fusion cuisine", Location: "Malaka Spice, Koregaon Park"},
	},
	"Mumbai": {
		{Time: "6:30 AM", Title: "Early Morning Prep", Description: "Get ready to beat the Mumbai traffic", Location: "Your Hotel"},
		{Time: "8:00 AM", Title: "Breakfast by the Sea", Description: "Mumbai-style cutting chai and bun maska", Location: "Kyani & Co, Marine Lines"},
		{Time: "9:30 AM", Title: "Gateway of India", Description: "Iconic 26-meter arch monument overlooking the Arabian Sea", Location: "Apollo Bunder, Colaba"},
		{Time: "11:00 AM", Title: "Taj Mahal Palace Tour", Description: "Admire the stunning architecture of this historic hotel", Location: "Taj Mahal Palace, Colaba"},
		{Time: "1:00 PM", Title: "Lunch", Description: "Famous butter chicken and naan", Location: "Bademiya, Colaba Causeway"},
		{Time: "3:00 PM", Title: "Marine Drive Walk", Description: "Stroll along the iconic Queen's Necklace promenade", Location: "Marine Drive"},
		{Time: "5:30 PM", Title: "Chowpatty Beach", Description: "Enjoy street food like pav bhaji and bhel puri", Location: "Girgaum Chowpatty"},
		{Time: "7:30 PM", Title: "Crawford Market Shopping", Description: "Explore the vibrant colonial-era market", Location: "Crawford Market"},
		{Time: "9:00 PM", Title: "Dinner", Description: "Coastal seafood specialties", Location: "Trishna, Kala Ghoda"},
	},
	"Jaipur": {
		{Time: "7:30 AM", Title: "Morning Preparation", Description: "Start early to explore the Pink City", Location: "Your Hotel"},
		{Time: "9:00 AM", Title: "Visit Amber Fort", Description: "Majestic hilltop fort with stunning architecture and elephant rides", Location: "Amber Fort, Devisinghpura"},
		{Time: "12:00 PM", Title: "City Palace Complex", Description: "Royal residence with museums and courtyards", Location: "City Palace, Gangori Bazaar"},
		{Time: "2:00 PM", Title: "Traditional Rajasthani Lunch", Description: "Dal baati churma and gatte ki sabzi thali", Location: "Laxmi Misthan Bhandar (LMB), Johari Bazaar"},
		{Time: "4:00 PM", Title: "Hawa Mahal Photo Stop", Description: "Iconic Palace of Winds with 953 windows", Location: "Hawa Mahal, Badi Choupad"},
		{Time: "5:30 PM", Title: "Jantar Mantar", Description: "UNESCO World Heritage astronomical observatory", Location: "Jantar Mantar, Gangori Bazaar"},
		{Time: "7:00 PM", Title: "Johari Bazaar Shopping", Description: "Shop for jewelry, textiles and handicrafts", Location: "Johari Bazaar"},
		{Time: "9:00 PM", Title: "Rooftop Dinner", Description: "Traditional Rajasthani cuisine with folk performances", Location: "Chokhi Dhani Village Resort"},
	},
	"Goa": {
		{Time: "8:00 AM", Title: "Leisurely Wake Up", Description: "Enjoy the beach vacation vibe", Location: "Your Beach Resort"},
		{Time: "9:30 AM", Title: "Beach Breakfast", Description: "Fresh fruit platter, pancakes and smoothies by the sea", Location: "Infantaria Café, Calangute"},
		{Time: "11:00 AM", Title: "Water Sports at Baga Beach", Description: "Parasailing, jet skiing and banana boat rides", Location: "Baga Beach"},
		{Time: "1:30 PM", Title: "Seafood Lunch", Description: "Grilled fish, prawns and crab curry", Location: "Britto's, Baga Beach"},
		{Time: "3:30 PM", Title: "Fort Aguada Visit", Description: "17th-century Portuguese fort with lighthouse", Location: "Fort Aguada, Candolim"},
		{Time: "5:30 PM", Title: "Sunset Cruise", Description: "River cruise on Mandovi with music and views", Location: "Mandovi River, Panaji"},
		{Time: "8:00 PM", Title: "Night Market", Description: "Browse handicrafts, jewelry and souvenirs", Location: "Saturday Night Market, Arpora"},
		{Time: "9:30 PM", Title: "Dinner & Live Music", Description: "Goan fish curry and bebinca dessert", Location: "Thalassa, Vagator"},
	},
	"Kochi": {
		{Time: "7:00 AM", Title: "Morning Routine", Description: "Prepare for Kerala backwaters exploration", Location: "Your Hotel"},
		{Time: "8:30 AM", Title: "Traditional Kerala Breakfast", Description: "Appam with stew and banana", Location: "Dhe Puttu, Fort Kochi"},
		{Time: "10:00 AM", Title: "Chinese Fishing Nets", Description: "See the iconic cantilever fishing nets in action", Location: "Fort Kochi Beach"},
		{Time: "11:30 AM", Title: "Mattancherry Palace", Description: "Dutch Palace with Kerala murals", Location: "Mattancherry"},
		{Time: "1:00 PM", Title: "Lunch on Banana Leaf", Description: "Kerala sadya with 20+ dishes", Location: "Kayees Rahmathullah Hotel"},
		{Time: "3:00 PM", Title: "Jew Town & Synagogue", Description: "Explore spice markets and historic synagogue", Location: "Jew Town, Mattancherry"},
		{Time: "5:30 PM", Title: "Kathakali Dance Show", Description: "Traditional Kerala dance performance", Location: "Kerala Kathakali Centre"},
		{Time: "7:30 PM", Title: "Backwaters Sunset Walk", Description: "Peaceful evening by the canals", Location: "Marine Drive"},
		{Time: "9:00 PM", Title: "Seafood Dinner", Description: "Fresh catch prepared Kerala style", Location: "Oceanos Restaurant, Fort Kochi"},
	},
	"Udaipur": {
		{Time: "7:30 AM", Title: "Rise & Shine", Description: "Wake up in the City of Lakes", Location: "Your Hotel"},
		{Time: "9:00 AM", Title: "Breakfast with Lake View", Description: "Continental breakfast overlooking Pichola Lake", Location: "Ambrai Restaurant, Hanuman Ghat"},
		{Time: "10:30 AM", Title: "City Palace Tour", Description: "Magnificent palace complex with museums and courtyards", Location: "City Palace, Pichola"},
		{Time: "1:00 PM", Title: "Boat Ride on Lake Pichola", Description: "Scenic boat tour to Jag Mandir island palace", Location: "Lake Pichola"},
		{Time: "2:30 PM", Title: "Lunch", Description: "Royal Rajasthani thali in heritage setting", Location: "Ambrai Restaurant"},
		{Time: "4:30 PM", Title: "Saheliyon Ki Bari", Description: "Garden of Maidens with fountains and lotus pools", Location: "Saheliyon Ki Bari"},
		{Time: "6:30 PM", Title: "Sunset at Sajjangarh Palace", Description: "Monsoon Palace with panoramic sunset views", Location: "Sajjangarh Palace"},
		{Time: "8:30 PM", Title: "Dinner with Cultural Show", Description: "Rajasthani cuisine with puppet show", Location: "Bagore Ki Haveli"},
	},
	"Bangalore": {
		{Time: "8:00 AM", Title: "Morning Start", Description: "Begin your Silicon Valley of India tour", Location: "Your Hotel"},
		{Time: "9:30 AM", Title: "South Indian Breakfast", Description: "Masala dosa, idli and filter coffee", Location: "Vidyarthi Bhavan, Basavanagudi"},
		{Time: "11:00 AM", Title: "Bangalore Palace", Description: "Tudor-style palace with beautiful gardens", Location: "Bangalore Palace, Vasanth Nagar"},
		{Time: "1:00 PM", Title: "Lalbagh Botanical Gardens", Description: "250-acre garden with glasshouse and rare plants", Location: "Lalbagh"},
		{Time: "2:30 PM", Title: "Lunch", Description: "Traditional Karnataka meals", Location: "MTR Restaurant, Lalbagh Road"},
		{Time: "4:30 PM", Title: "Vidhana Soudha Photo Stop", Description: "Impressive legislative building", Location: "Vidhana Soudha"},
		{Time: "5:30 PM", Title: "Shopping at Commercial Street", Description: "Browse textiles, jewelry and handicrafts", Location: "Commercial Street"},
		{Time: "7:30 PM", Title: "Evening at UB City", Description: "Luxury shopping and dining complex", Location: "UB City Mall"},
		{Time: "9:00 PM", Title: "Rooftop Dinner", Description: "Multi-cuisine with city views", Location: "High Ultra Lounge, Church Street"},
	},
}

// defaultActivities builds the generic schedule for cities without a
// curated entry. Every location carries the city name so the plan still
// reads as city-specific.
func defaultActivities(city string) []Activity {
	return []Activity{
		{Time: "7:30 AM", Title: "Morning Preparation", Description: "Get ready for a day of exploration", Location: fmt.Sprintf("Your Hotel in %s", city)},
		{Time: "9:00 AM", Title: "Breakfast", Description: "Local breakfast specialties", Location: fmt.Sprintf("Popular Restaurant in %s", city)},
		{Time: "10:30 AM", Title: "Visit Main Attraction", Description: "Explore the famous landmarks", Location: fmt.Sprintf("%s City Center", city)},
		{Time: "12:30 PM", Title: "Cultural Site Visit", Description: "Discover local heritage and history", Location: fmt.Sprintf("%s Heritage Sites", city)},
		{Time: "2:00 PM", Title: "Lunch", Description: "Traditional regional cuisine", Location: fmt.Sprintf("Local Restaurant in %s", city)},
		{Time: "4:00 PM", Title: "Shopping & Markets", Description: "Browse local handicrafts and souvenirs", Location: fmt.Sprintf("%s Market Area", city)},
		{Time: "6:30 PM", Title: "Sunset Point", Description: "Enjoy scenic evening views", Location: fmt.Sprintf("%s Viewpoint", city)},
		{Time: "8:30 PM", Title: "Dinner", Description: "Authentic local cuisine", Location: fmt.Sprintf("Recommended Restaurant in %s", city)},
	}
}

// ActivitiesFor returns the curated schedule for city, or the generic
// template when the city is unknown. Lookup is by exact name.
func ActivitiesFor(city string) []Activity {
	if acts, ok := cityActivities[city]; ok {
		return acts
	}
	return defaultActivities(city)
}
