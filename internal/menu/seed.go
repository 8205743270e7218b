package menu

// DefaultMenu is the standard lunch counter menu: four entrees, four
// sides, three accompaniments. Seeded into Postgres by `lunchline
// seed-menu`, or served directly by the in-memory repository.
func DefaultMenu() []Item {
	return []Item{
		{
			Name:        "Cauliflower",
			Price:       7.00,
			Category:    CategoryEntree,
			Description: "Whole cauliflower, brined, roasted, and deep fried",
		},
		{
			Name:        "Three Bean Chili",
			Price:       4.00,
			Category:    CategoryEntree,
			Description: "Black beans, red beans, kidney beans, slow cooked, topped with onion",
		},
		{
			Name:        "Mushroom Pasta",
			Price:       5.50,
			Category:    CategoryEntree,
			Description: "Penne pasta, mushrooms, basil, with plum tomatoes cooked in garlic and olive oil",
		},
		{
			Name:        "Spicy Black Bean Skillet",
			Price:       5.50,
			Category:    CategoryEntree,
			Description: "Seasonal vegetables, black beans, house spice blend, served with avocado and quick pickled onions",
		},
		{
			Name:        "Summer Salad",
			Price:       2.50,
			Category:    CategorySide,
			Description: "Heirloom tomatoes, butter lettuce, peaches, avocado, balsamic dressing",
		},
		{
			Name:        "Butternut Squash Soup",
			Price:       3.00,
			Category:    CategorySide,
			Description: "Roasted butternut squash, roasted peppers, chili oil",
		},
		{
			Name:        "Spicy Potatoes",
			Price:       2.00,
			Category:    CategorySide,
			Description: "Marble potatoes, roasted, and fried in house spice blend",
		},
		{
			Name:        "Coconut Rice",
			Price:       1.50,
			Category:    CategorySide,
			Description: "Rice, coconut milk, lime, and sugar",
		},
		{
			Name:        "Lunch Roll",
			Price:       0.50,
			Category:    CategoryAccompaniment,
			Description: "Fresh baked roll made in house",
		},
		{
			Name:        "Mixed Berries",
			Price:       1.00,
			Category:    CategoryAccompaniment,
			Description: "Strawberries, blueberries, raspberries, and huckleberry",
		},
		{
			Name:        "Pickled Veggies",
			Price:       0.50,
			Category:    CategoryAccompaniment,
			Description: "Pickled cucumbers and carrots, made in house",
		},
	}
}
