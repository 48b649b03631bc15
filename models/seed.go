package models

// SeedProducts is the default catalog used when no persisted catalog
// exists yet.
var SeedProducts = []Product{
	{
		ID:          "p1",
		Name:        "Nebula Chronograph",
		Price:       299,
		Description: "Precision engineered timepiece with celestial accents.",
		Category:    "Watches",
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=800",
		Quantity:    15,
	},
	{
		ID:          "p2",
		Name:        "Quantum Sound Max",
		Price:       450,
		Description: "Immersive audio experience with active noise cancellation.",
		Category:    "Audio",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=800",
		Quantity:    10,
	},
}

// AllCategories is the fixed reference list shown to shoppers. Categories
// found on live products are merged in on top of it.
var AllCategories = []string{
	"Watches", "Audio", "Computing", "Lifestyle", "Fragrances", "Eyewear", "Footwear", "Smart Home",
	"Gaming", "Photography", "Drones", "Office", "Decor", "Kitchen", "Outdoors", "Fitness",
	"Wellness", "Automotive", "Jewellery", "Handbags", "Luggage", "Stationery", "Art", "Collectibles",
	"Spirits", "Gourmet", "Fashion", "Cosmetics", "Skincare", "Haircare", "Appliances", "Mobile",
	"Tablets", "Monitors", "Keyboards", "Mice", "Networking", "Storage", "VR/AR", "Audio Visual",
	"Musical Instruments", "Books", "Magazines", "Toys", "Hobbies", "Pets", "Gardening", "Security",
	"Power", "Lighting", "Accessories",
}
