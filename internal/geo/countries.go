// Package geo maps free-text GitHub profile locations to countries. The
// gazetteer below is a fixed lookup table: country codes are unique, and the
// city lists exist purely to catch locations that name a city but not the
// country ("Brooklyn, NY", "Lagos Island").
package geo

import "github.com/tbourn/go-rankings-backend/internal/domain"

// Countries is the static reference table, read-only at runtime.
var Countries = []domain.Country{
	{Code: "US", Name: "United States", Flag: "🇺🇸", Cities: []string{"New York", "Brooklyn", "San Francisco", "Los Angeles", "Seattle", "Austin", "Chicago", "Boston", "Denver", "Portland", "Atlanta", "Miami", "Houston", "Dallas", "San Diego", "San Jose", "Palo Alto", "Mountain View", "Washington DC"}},
	{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Cities: []string{"London", "Manchester", "Birmingham", "Edinburgh", "Glasgow", "Bristol", "Leeds", "Cambridge", "Oxford", "Liverpool"}},
	{Code: "IN", Name: "India", Flag: "🇮🇳", Cities: []string{"Bangalore", "Bengaluru", "Mumbai", "Delhi", "Hyderabad", "Chennai", "Pune", "Kolkata", "Ahmedabad", "Noida", "Gurgaon"}},
	{Code: "CN", Name: "China", Flag: "🇨🇳", Cities: []string{"Beijing", "Shanghai", "Shenzhen", "Hangzhou", "Guangzhou", "Chengdu", "Nanjing", "Wuhan", "Xi'an"}},
	{Code: "DE", Name: "Germany", Flag: "🇩🇪", Cities: []string{"Berlin", "Munich", "Hamburg", "Frankfurt", "Cologne", "Stuttgart", "Düsseldorf", "Dresden", "Leipzig"}},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦", Cities: []string{"Toronto", "Vancouver", "Montreal", "Ottawa", "Calgary", "Edmonton", "Waterloo", "Quebec City"}},
	{Code: "BR", Name: "Brazil", Flag: "🇧🇷", Cities: []string{"São Paulo", "Sao Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba", "Porto Alegre", "Brasília", "Recife", "Florianópolis"}},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵", Cities: []string{"Tokyo", "Osaka", "Kyoto", "Yokohama", "Nagoya", "Fukuoka", "Sapporo"}},
	{Code: "FR", Name: "France", Flag: "🇫🇷", Cities: []string{"Paris", "Lyon", "Marseille", "Toulouse", "Bordeaux", "Nantes", "Lille", "Grenoble"}},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺", Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Canberra"}},
	{Code: "NL", Name: "Netherlands", Flag: "🇳🇱", Cities: []string{"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Delft"}},
	{Code: "ES", Name: "Spain", Flag: "🇪🇸", Cities: []string{"Madrid", "Barcelona", "Valencia", "Seville", "Bilbao", "Málaga", "Zaragoza"}},
	{Code: "IT", Name: "Italy", Flag: "🇮🇹", Cities: []string{"Rome", "Milan", "Turin", "Naples", "Bologna", "Florence", "Venice"}},
	{Code: "RU", Name: "Russia", Flag: "🇷🇺", Cities: []string{"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Kazan"}},
	{Code: "PL", Name: "Poland", Flag: "🇵🇱", Cities: []string{"Warsaw", "Kraków", "Krakow", "Wrocław", "Wroclaw", "Poznań", "Gdańsk", "Gdansk", "Łódź"}},
	{Code: "SE", Name: "Sweden", Flag: "🇸🇪", Cities: []string{"Stockholm", "Gothenburg", "Malmö", "Uppsala", "Lund"}},
	{Code: "CH", Name: "Switzerland", Flag: "🇨🇭", Cities: []string{"Zurich", "Zürich", "Geneva", "Basel", "Bern", "Lausanne"}},
	{Code: "UA", Name: "Ukraine", Flag: "🇺🇦", Cities: []string{"Kyiv", "Kiev", "Kharkiv", "Lviv", "Odesa", "Dnipro"}},
	{Code: "ID", Name: "Indonesia", Flag: "🇮🇩", Cities: []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Bali", "Medan"}},
	{Code: "NG", Name: "Nigeria", Flag: "🇳🇬", Cities: []string{"Lagos", "Abuja", "Ibadan", "Port Harcourt", "Kano"}},
	{Code: "EG", Name: "Egypt", Flag: "🇪🇬", Cities: []string{"Cairo", "Alexandria", "Giza"}},
	{Code: "KR", Name: "South Korea", Flag: "🇰🇷", Cities: []string{"Seoul", "Busan", "Incheon", "Daegu", "Daejeon"}},
	{Code: "SG", Name: "Singapore", Flag: "🇸🇬", Cities: []string{"Singapore"}},
	{Code: "IL", Name: "Israel", Flag: "🇮🇱", Cities: []string{"Tel Aviv", "Jerusalem", "Haifa", "Herzliya"}},
	{Code: "TR", Name: "Turkey", Flag: "🇹🇷", Cities: []string{"Istanbul", "Ankara", "Izmir", "Bursa"}},
	{Code: "MX", Name: "Mexico", Flag: "🇲🇽", Cities: []string{"Mexico City", "Guadalajara", "Monterrey", "Tijuana", "Puebla"}},
	{Code: "AR", Name: "Argentina", Flag: "🇦🇷", Cities: []string{"Buenos Aires", "Córdoba", "Cordoba", "Rosario", "Mendoza"}},
	{Code: "GR", Name: "Greece", Flag: "🇬🇷", Cities: []string{"Athens", "Thessaloniki", "Patras", "Heraklion"}},
	{Code: "PT", Name: "Portugal", Flag: "🇵🇹", Cities: []string{"Lisbon", "Lisboa", "Porto", "Braga", "Coimbra"}},
	{Code: "NO", Name: "Norway", Flag: "🇳🇴", Cities: []string{"Oslo", "Bergen", "Trondheim", "Stavanger"}},
	{Code: "DK", Name: "Denmark", Flag: "🇩🇰", Cities: []string{"Copenhagen", "Aarhus", "Odense", "Aalborg"}},
	{Code: "FI", Name: "Finland", Flag: "🇫🇮", Cities: []string{"Helsinki", "Espoo", "Tampere", "Oulu"}},
	{Code: "IE", Name: "Ireland", Flag: "🇮🇪", Cities: []string{"Dublin", "Cork", "Galway", "Limerick"}},
	{Code: "BE", Name: "Belgium", Flag: "🇧🇪", Cities: []string{"Brussels", "Antwerp", "Ghent", "Leuven"}},
	{Code: "AT", Name: "Austria", Flag: "🇦🇹", Cities: []string{"Vienna", "Wien", "Graz", "Linz", "Salzburg"}},
	{Code: "CZ", Name: "Czech Republic", Flag: "🇨🇿", Cities: []string{"Prague", "Praha", "Brno", "Ostrava"}},
	{Code: "RO", Name: "Romania", Flag: "🇷🇴", Cities: []string{"Bucharest", "Cluj-Napoca", "Cluj", "Timișoara", "Timisoara", "Iași", "Iasi"}},
	{Code: "HU", Name: "Hungary", Flag: "🇭🇺", Cities: []string{"Budapest", "Debrecen", "Szeged"}},
	{Code: "ZA", Name: "South Africa", Flag: "🇿🇦", Cities: []string{"Cape Town", "Johannesburg", "Durban", "Pretoria"}},
	{Code: "KE", Name: "Kenya", Flag: "🇰🇪", Cities: []string{"Nairobi", "Mombasa", "Kisumu"}},
	{Code: "PK", Name: "Pakistan", Flag: "🇵🇰", Cities: []string{"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad"}},
	{Code: "BD", Name: "Bangladesh", Flag: "🇧🇩", Cities: []string{"Dhaka", "Chittagong", "Sylhet", "Khulna"}},
	{Code: "VN", Name: "Vietnam", Flag: "🇻🇳", Cities: []string{"Hanoi", "Ho Chi Minh City", "Ho Chi Minh", "Da Nang", "Saigon"}},
	{Code: "TH", Name: "Thailand", Flag: "🇹🇭", Cities: []string{"Bangkok", "Chiang Mai", "Phuket"}},
	{Code: "PH", Name: "Philippines", Flag: "🇵🇭", Cities: []string{"Manila", "Quezon City", "Cebu", "Davao", "Makati"}},
	{Code: "MY", Name: "Malaysia", Flag: "🇲🇾", Cities: []string{"Kuala Lumpur", "Penang", "Johor Bahru", "Cyberjaya"}},
	{Code: "NZ", Name: "New Zealand", Flag: "🇳🇿", Cities: []string{"Auckland", "Wellington", "Christchurch", "Hamilton"}},
	{Code: "AE", Name: "United Arab Emirates", Flag: "🇦🇪", Cities: []string{"Dubai", "Abu Dhabi", "Sharjah"}},
	{Code: "SA", Name: "Saudi Arabia", Flag: "🇸🇦", Cities: []string{"Riyadh", "Jeddah", "Dammam"}},
	{Code: "CO", Name: "Colombia", Flag: "🇨🇴", Cities: []string{"Bogotá", "Bogota", "Medellín", "Medellin", "Cali", "Barranquilla"}},
	{Code: "CL", Name: "Chile", Flag: "🇨🇱", Cities: []string{"Santiago", "Valparaíso", "Valparaiso", "Concepción"}},
	{Code: "PE", Name: "Peru", Flag: "🇵🇪", Cities: []string{"Lima", "Arequipa", "Cusco", "Trujillo"}},
}

// FindByName returns the country with the exact display name given.
// Alias resolution depends on this being an exact-string lookup.
func FindByName(name string) (domain.Country, bool) {
	for _, c := range Countries {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Country{}, false
}

// FindByCode returns the country with the given ISO code.
func FindByCode(code string) (domain.Country, bool) {
	for _, c := range Countries {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Country{}, false
}
