package catalog

import "freshmart/internal/model"

func ptr(v float64) *float64 { return &v }

// seedCategories is the demo category list.
var seedCategories = []model.Category{
	{ID: "produce", Name: "Fresh Produce", Icon: "🥬", ProductCount: 45},
	{ID: "dairy", Name: "Dairy & Eggs", Icon: "🥛", ProductCount: 28},
	{ID: "meat", Name: "Meat & Seafood", Icon: "🥩", ProductCount: 32},
	{ID: "pantry", Name: "Pantry Staples", Icon: "🥫", ProductCount: 67},
	{ID: "bakery", Name: "Bakery", Icon: "🍞", ProductCount: 23},
	{ID: "frozen", Name: "Frozen Foods", Icon: "🧊", ProductCount: 41},
}

// seedProducts is the demo product list. Slice order is display order.
var seedProducts = []model.Product{
	{
		ID: "1", Name: "Organic Bananas", Price: 2.99, Category: "produce",
		Description: "Fresh organic bananas, perfect for snacking or smoothies",
		Unit:        "per bunch", InStock: true, Rating: 4.5, ReviewCount: 128,
		Tags: []string{"organic", "fresh", "potassium"},
	},
	{
		ID: "2", Name: "Fresh Avocados", Price: 1.99, Category: "produce",
		Description: "Ripe and creamy avocados, great for toast or salads",
		Unit:        "each", InStock: true, Rating: 4.7, ReviewCount: 89,
		Tags: []string{"healthy fats", "fresh", "versatile"},
	},
	{
		ID: "3", Name: "Organic Baby Spinach", Price: 3.49, OriginalPrice: ptr(3.99),
		Category:    "produce",
		Description: "Fresh organic baby spinach leaves, pre-washed and ready to eat",
		Unit:        "5oz bag", InStock: true, Rating: 4.3, ReviewCount: 76,
		Tags: []string{"organic", "iron", "vitamins", "salad"},
	},
	{
		ID: "4", Name: "Roma Tomatoes", Price: 2.49, Category: "produce",
		Description: "Fresh Roma tomatoes, perfect for cooking and sauces",
		Unit:        "per kg", InStock: false, Rating: 4.2, ReviewCount: 54,
		Tags: []string{"fresh", "cooking", "vitamin C"},
	},
	{
		ID: "5", Name: "Organic Whole Milk", Price: 4.29, Category: "dairy",
		Description: "Fresh organic whole milk from grass-fed cows",
		Unit:        "1 gallon", InStock: true, Rating: 4.6, ReviewCount: 234,
		Tags: []string{"organic", "calcium", "protein", "grass-fed"},
	},
	{
		ID: "6", Name: "Free-Range Eggs", Price: 5.99, Category: "dairy",
		Description: "Farm-fresh free-range eggs from happy hens",
		Unit:        "dozen", InStock: true, Rating: 4.8, ReviewCount: 189,
		Tags: []string{"free-range", "protein", "fresh", "farm"},
	},
	{
		ID: "7", Name: "Greek Yogurt", Price: 6.49, OriginalPrice: ptr(7.99),
		Category:    "dairy",
		Description: "Creamy Greek yogurt, high in protein and probiotics",
		Unit:        "32oz container", InStock: true, Rating: 4.4, ReviewCount: 167,
		Tags: []string{"protein", "probiotics", "healthy", "greek"},
	},
	{
		ID: "8", Name: "Grass-Fed Ground Beef", Price: 8.99, Category: "meat",
		Description: "Premium grass-fed ground beef, 85% lean",
		Unit:        "per kg", InStock: true, Rating: 4.7, ReviewCount: 92,
		Tags: []string{"grass-fed", "protein", "premium", "lean"},
	},
	{
		ID: "9", Name: "Atlantic Salmon Fillet", Price: 12.99, Category: "meat",
		Description: "Fresh Atlantic salmon fillet, rich in omega-3",
		Unit:        "per kg", InStock: false, Rating: 4.5, ReviewCount: 78,
		Tags: []string{"omega-3", "fresh", "protein", "healthy"},
	},
	{
		ID: "10", Name: "Organic Quinoa", Price: 7.99, Category: "pantry",
		Description: "Organic tri-color quinoa, complete protein grain",
		Unit:        "1kg bag", InStock: true, Rating: 4.6, ReviewCount: 145,
		Tags: []string{"organic", "protein", "gluten-free", "superfood"},
	},
	{
		ID: "11", Name: "Extra Virgin Olive Oil", Price: 9.99, OriginalPrice: ptr(12.99),
		Category:    "pantry",
		Description: "Cold-pressed extra virgin olive oil from Italy",
		Unit:        "500ml bottle", InStock: true, Rating: 4.8, ReviewCount: 203,
		Tags: []string{"cold-pressed", "italian", "healthy fats", "cooking"},
	},
	{
		ID: "12", Name: "Artisan Sourdough Bread", Price: 4.99, Category: "bakery",
		Description: "Fresh-baked artisan sourdough bread, made daily",
		Unit:        "per loaf", InStock: true, Rating: 4.7, ReviewCount: 112,
		Tags: []string{"artisan", "fresh-baked", "sourdough", "daily"},
	},
}
