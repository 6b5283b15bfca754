package retailer

// SeedStores returns the demo store locations.
func SeedStores() []Store {
	return []Store{
		{
			ID:            "fresh-market-soma",
			Name:          "Fresh Market SoMa",
			Zipcode:       "94107",
			Address:       "355 Townsend St, San Francisco, CA",
			HandoffDomain: "https://www.freshmarket.example",
		},
		{
			ID:            "green-grocer-mission",
			Name:          "Green Grocer Mission",
			Zipcode:       "94110",
			Address:       "2890 24th St, San Francisco, CA",
			HandoffDomain: "https://www.greengrocer.example",
		},
	}
}

// SeedCatalog returns the per-store product inventory, keyed by store id.
func SeedCatalog() map[string][]Product {
	return map[string][]Product{
		"fresh-market-soma": {
			{SKU: "FM-1001", Name: "Spaghetti Pasta", Brand: "Rustichella", Category: "pasta", Price: 3.49, Currency: "USD", InStock: true, PackageSize: 500, Size: "500 g"},
			{SKU: "FM-1002", Name: "Cherry Tomatoes", Brand: "Sun Valley", Category: "produce", Price: 4.29, Currency: "USD", InStock: true, PackageSize: 250, Size: "250 g basket"},
			{SKU: "FM-1003", Name: "Fresh Basil Bunch", Brand: "Local Farms", Category: "produce", Price: 2.99, Currency: "USD", InStock: true, PackageSize: 20, Size: "20 leaves"},
			{SKU: "FM-1004", Name: "Garlic Bulb", Brand: "Local Farms", Category: "produce", Price: 0.89, Currency: "USD", InStock: true, PackageSize: 10, Size: "1 bulb"},
			{SKU: "FM-1005", Name: "Extra Virgin Olive Oil", Brand: "Colavita", Category: "pantry", Price: 11.99, Currency: "USD", InStock: true, PackageSize: 32, Size: "500 ml"},
			{SKU: "FM-1006", Name: "Sea Salt", Brand: "Maldon", Category: "pantry", Price: 5.49, Currency: "USD", InStock: true, PackageSize: 48, Size: "240 g"},
			{SKU: "FM-1007", Name: "Black Pepper Grinder", Brand: "Simply Organic", Category: "pantry", Price: 4.99, Currency: "USD", InStock: false, PackageSize: 40, Size: "75 g"},
			{SKU: "FM-1008", Name: "Boneless Chicken Thighs", Brand: "Mary's", Category: "meat", Price: 8.99, Currency: "USD", InStock: true, PackageSize: 450, Size: "450 g tray"},
			{SKU: "FM-1009", Name: "Corn Tortillas", Brand: "La Palma", Category: "bakery", Price: 3.29, Currency: "USD", InStock: true, PackageSize: 12, Size: "12 count"},
			{SKU: "FM-1010", Name: "Limes", Brand: "Sun Valley", Category: "produce", Price: 0.59, Currency: "USD", InStock: true, PackageSize: 1, Size: "each"},
			{SKU: "FM-1011", Name: "Fresh Orange Juice", Brand: "Fresh Market", Category: "beverages", Price: 5.99, Currency: "USD", InStock: true, PackageSize: 946, Size: "946 ml"},
			{SKU: "FM-1012", Name: "Red Cabbage", Brand: "Local Farms", Category: "produce", Price: 2.49, Currency: "USD", InStock: true, PackageSize: 800, Size: "1 head"},
			{SKU: "FM-1013", Name: "Cilantro Bunch", Brand: "Local Farms", Category: "produce", Price: 1.29, Currency: "USD", InStock: true, PackageSize: 1, Size: "1 bunch"},
			{SKU: "FM-1014", Name: "Carrots", Brand: "Cal-Organic", Category: "produce", Price: 1.99, Currency: "USD", InStock: true, PackageSize: 6, Size: "1 lb bag"},
			{SKU: "FM-1015", Name: "Snow Peas", Brand: "Sun Valley", Category: "produce", Price: 3.79, Currency: "USD", InStock: false, PackageSize: 200, Size: "200 g"},
			{SKU: "FM-1016", Name: "Bell Pepper", Brand: "Sun Valley", Category: "produce", Price: 1.49, Currency: "USD", InStock: true, PackageSize: 1, Size: "each"},
			{SKU: "FM-1017", Name: "Fresh Ginger Root", Brand: "Local Farms", Category: "produce", Price: 1.89, Currency: "USD", InStock: true, PackageSize: 100, Size: "100 g"},
			{SKU: "FM-1018", Name: "Soy Sauce", Brand: "Kikkoman", Category: "pantry", Price: 4.49, Currency: "USD", InStock: true, PackageSize: 20, Size: "296 ml"},
			{SKU: "FM-1019", Name: "Toasted Sesame Oil", Brand: "Kadoya", Category: "pantry", Price: 6.29, Currency: "USD", InStock: true, PackageSize: 11, Size: "163 ml"},
			{SKU: "FM-1020", Name: "Rice Vinegar", Brand: "Marukan", Category: "pantry", Price: 3.99, Currency: "USD", InStock: true, PackageSize: 24, Size: "355 ml"},
			{SKU: "FM-1021", Name: "Broccoli Crowns", Brand: "Cal-Organic", Category: "produce", Price: 2.79, Currency: "USD", InStock: true, PackageSize: 450, Size: "450 g"},
			{SKU: "FM-1022", Name: "Peppercorn Medley", Brand: "McCormick", Category: "pantry", Price: 6.49, Currency: "USD", InStock: true, PackageSize: 45, Size: "85 g"},
		},
		"green-grocer-mission": {
			{SKU: "GG-2001", Name: "Organic Spaghetti Pasta", Brand: "Bionaturae", Category: "pasta", Price: 4.19, Currency: "USD", InStock: true, PackageSize: 454, Size: "454 g"},
			{SKU: "GG-2002", Name: "Heirloom Cherry Tomatoes", Brand: "Dirty Girl", Category: "produce", Price: 5.49, Currency: "USD", InStock: false, PackageSize: 300, Size: "300 g basket"},
			{SKU: "GG-2003", Name: "Garlic Braid", Brand: "Dirty Girl", Category: "produce", Price: 3.99, Currency: "USD", InStock: true, PackageSize: 30, Size: "3 bulbs"},
			{SKU: "GG-2004", Name: "California Olive Oil", Brand: "Sciabica", Category: "pantry", Price: 14.99, Currency: "USD", InStock: true, PackageSize: 34, Size: "500 ml"},
			{SKU: "GG-2005", Name: "Corn Tortillas", Brand: "Mi Rancho", Category: "bakery", Price: 2.99, Currency: "USD", InStock: true, PackageSize: 10, Size: "10 count"},
			{SKU: "GG-2006", Name: "Organic Limes", Brand: "Dirty Girl", Category: "produce", Price: 0.79, Currency: "USD", InStock: true, PackageSize: 1, Size: "each"},
			{SKU: "GG-2007", Name: "Rainbow Carrots", Brand: "Dirty Girl", Category: "produce", Price: 2.99, Currency: "USD", InStock: true, PackageSize: 8, Size: "1 bunch"},
			{SKU: "GG-2008", Name: "Broccoli Florets", Brand: "Lakeside", Category: "produce", Price: 3.29, Currency: "USD", InStock: true, PackageSize: 340, Size: "340 g bag"},
			{SKU: "GG-2009", Name: "Tamari Soy Sauce", Brand: "San-J", Category: "pantry", Price: 5.79, Currency: "USD", InStock: true, PackageSize: 20, Size: "296 ml"},
			{SKU: "GG-2010", Name: "Fresh Basil", Brand: "Lakeside", Category: "produce", Price: 3.49, Currency: "USD", InStock: true, PackageSize: 25, Size: "25 leaves"},
		},
	}
}
