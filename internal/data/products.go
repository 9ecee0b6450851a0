// Package data holds the static catalogue loaded at startup.
package data

import "inventory/internal/models"

// Products returns the seed catalogue, newest first. Each call returns a new
// slice.
func Products() []models.Product {
	out := make([]models.Product, len(seed))
	for i, p := range seed {
		out[i] = p.Clone()
	}
	return out
}

var seed = []models.Product{
	{ID: 30, Name: "Ergonomic Office Chair", Price: 12499, Category: "Furniture", Stock: 14, Description: "Mesh back chair with adjustable lumbar support", IsActive: true, Tags: []string{"office", "ergonomic", "mesh"}, CreatedAt: "2024-03-02T10:15:00.000Z"},
	{ID: 29, Name: "Wireless Noise Cancelling Headphones", Price: 18999, Category: "Electronics", Stock: 22, Description: "Over-ear headphones with 30 hour battery", IsActive: true, Tags: []string{"audio", "wireless"}, CreatedAt: "2024-03-01T09:40:00.000Z"},
	{ID: 28, Name: "Cotton Crew Neck T-Shirt", Price: 599, Category: "Fashion", Stock: 180, Description: "Regular fit, 100% cotton", IsActive: true, Tags: []string{"cotton", "basics"}, CreatedAt: "2024-02-28T16:05:00.000Z"},
	{ID: 27, Name: "Stainless Steel Water Bottle", Price: 849, Category: "Kitchen", Stock: 95, Description: "Double wall insulated, 1 litre", IsActive: true, Tags: []string{"insulated", "reusable"}, CreatedAt: "2024-02-27T11:20:00.000Z"},
	{ID: 26, Name: "Mechanical Keyboard", Price: 6499, Category: "Electronics", Stock: 35, Description: "Hot-swappable switches with RGB backlight", IsActive: true, Tags: []string{"keyboard", "rgb", "gaming"}, CreatedAt: "2024-02-26T14:45:00.000Z"},
	{ID: 25, Name: "Yoga Mat", Price: 1299, Category: "Sports", Stock: 60, Description: "6mm non-slip mat", IsActive: true, Tags: []string{"fitness", "yoga"}, CreatedAt: "2024-02-25T08:30:00.000Z"},
	{ID: 24, Name: "Ceramic Dinner Set", Price: 3499, Category: "Kitchen", Stock: 18, Description: "18 piece set for six", IsActive: false, Tags: []string{"ceramic", "dining"}, CreatedAt: "2024-02-24T12:00:00.000Z"},
	{ID: 23, Name: "Running Shoes", Price: 4599, Category: "Sports", Stock: 42, Description: "Lightweight cushioned trainers", IsActive: true, Tags: []string{"running", "footwear"}, CreatedAt: "2024-02-23T17:25:00.000Z"},
	{ID: 22, Name: "LED Desk Lamp", Price: 1899, Category: "Furniture", Stock: 0, Description: "Dimmable lamp with USB charging port", IsActive: false, Tags: []string{"lighting", "office"}, CreatedAt: "2024-02-22T10:10:00.000Z"},
	{ID: 21, Name: "Smartphone Stand", Price: 399, Category: "Accessories", Stock: 250, Description: "Foldable aluminium stand", IsActive: true, Tags: []string{"mobile", "desk"}, CreatedAt: "2024-02-21T15:50:00.000Z"},
	{ID: 20, Name: "Denim Jacket", Price: 2799, Category: "Fashion", Stock: 27, Description: "Classic fit washed denim", IsActive: true, Tags: []string{"denim", "outerwear"}, CreatedAt: "2024-02-20T09:05:00.000Z"},
	{ID: 19, Name: "Bluetooth Speaker", Price: 2999, Category: "Electronics", Stock: 48, Description: "Water resistant portable speaker", IsActive: true, Tags: []string{"audio", "portable"}, CreatedAt: "2024-02-19T13:35:00.000Z"},
	{ID: 18, Name: "Non-Stick Frying Pan", Price: 1199, Category: "Kitchen", Stock: 73, Description: "28cm induction compatible pan", IsActive: true, Tags: []string{"cookware"}, CreatedAt: "2024-02-18T07:55:00.000Z"},
	{ID: 17, Name: "Bookshelf", Price: 5499, Category: "Furniture", Stock: 9, Description: "Five tier engineered wood shelf", IsActive: true, Tags: []string{"storage", "wood"}, CreatedAt: "2024-02-17T18:15:00.000Z"},
	{ID: 16, Name: "Leather Wallet", Price: 999, Category: "Accessories", Stock: 110, Description: "Bifold wallet with RFID blocking", IsActive: true, Tags: []string{"leather", "rfid"}, CreatedAt: "2024-02-16T11:45:00.000Z"},
	{ID: 15, Name: "Cricket Bat", Price: 3299, Category: "Sports", Stock: 16, Description: "English willow, full size", IsActive: true, Tags: []string{"cricket"}, CreatedAt: "2024-02-15T16:30:00.000Z"},
	{ID: 14, Name: "USB-C Charger 65W", Price: 2199, Category: "Electronics", Stock: 64, Description: "GaN fast charger with two ports", IsActive: true, Tags: []string{"charging", "usb-c"}, CreatedAt: "2024-02-14T10:00:00.000Z"},
	{ID: 13, Name: "Silk Saree", Price: 8999, Category: "Fashion", Stock: 7, Description: "Handwoven Banarasi silk", IsActive: true, Tags: []string{"silk", "ethnic", "handwoven"}, CreatedAt: "2024-02-13T14:20:00.000Z"},
	{ID: 12, Name: "Pressure Cooker", Price: 2499, Category: "Kitchen", Stock: 38, Description: "5 litre aluminium cooker", IsActive: true, Tags: []string{"cookware"}, CreatedAt: "2024-02-12T08:40:00.000Z"},
	{ID: 11, Name: "Study Table", Price: 6999, Category: "Furniture", Stock: 11, Description: "Compact table with drawer", IsActive: true, Tags: []string{"office", "wood"}, CreatedAt: "2024-02-11T12:55:00.000Z"},
	{ID: 10, Name: "Sunglasses", Price: 1499, Category: "Accessories", Stock: 85, Description: "Polarized UV400 lenses", IsActive: true, Tags: []string{"eyewear"}, CreatedAt: "2024-02-10T17:10:00.000Z"},
	{ID: 9, Name: "Football", Price: 899, Category: "Sports", Stock: 54, Description: "Size 5 training ball", IsActive: false, Tags: []string{"football"}, CreatedAt: "2024-02-09T09:25:00.000Z"},
	{ID: 8, Name: "Smart Watch", Price: 7999, Category: "Electronics", Stock: 29, Description: "Heart rate and SpO2 tracking", IsActive: true, Tags: []string{"wearable", "fitness"}, CreatedAt: "2024-02-08T15:00:00.000Z"},
	{ID: 7, Name: "Woollen Scarf", Price: 749, Category: "Fashion", Stock: 66, Description: "Merino wool blend", IsActive: true, Tags: []string{"winter"}, CreatedAt: "2024-02-07T10:35:00.000Z"},
	{ID: 6, Name: "Electric Kettle", Price: 1399, Category: "Kitchen", Stock: 47, Description: "1.5 litre with auto shut-off", IsActive: true, Tags: []string{"appliance"}, CreatedAt: "2024-02-06T13:50:00.000Z"},
	{ID: 5, Name: "Bean Bag", Price: 2299, Category: "Furniture", Stock: 20, Description: "XXL bean bag with filler", IsActive: true, Tags: []string{"lounge"}, CreatedAt: "2024-02-05T16:45:00.000Z"},
	{ID: 4, Name: "Backpack", Price: 1799, Category: "Accessories", Stock: 58, Description: "30 litre laptop backpack", IsActive: true, Tags: []string{"travel", "laptop"}, CreatedAt: "2024-02-04T08:20:00.000Z"},
	{ID: 3, Name: "Badminton Racket", Price: 1599, Category: "Sports", Stock: 33, Description: "Carbon fibre frame", IsActive: true, Tags: []string{"badminton"}, CreatedAt: "2024-02-03T11:15:00.000Z"},
	{ID: 2, Name: "Laptop", Price: 64999, Category: "Electronics", Stock: 10, Description: "14 inch, 16GB RAM, 512GB SSD", IsActive: true, Tags: []string{"computer", "portable"}, CreatedAt: "2024-02-02T14:05:00.000Z"},
	{ID: 1, Name: "Fountain Pen", Price: 499, Category: "Stationery", Stock: 120, Description: "", IsActive: true, Tags: []string{}, CreatedAt: "2024-02-01T09:00:00.000Z"},
}
