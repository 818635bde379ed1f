package database

import (
	"github.com/shopspring/decimal"

	"products-api/models"
)

func seedCategories() []models.Category {
	return []models.Category{
		{Name: "electronics"},
		{Name: "clothing"},
		{Name: "books"},
		{Name: "accessories"},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		// electronics
		{
			Name:        `Laptop Pro 15"`,
			Description: "Powerful laptop for professionals with a latest-generation processor",
			Price:       decimal.NewFromFloat(1299.99),
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400",
			Category:    "electronics",
			Stock:       15,
		},
		{
			Name:        "Bluetooth Headphones",
			Description: "Wireless headphones with active noise cancellation",
			Price:       decimal.NewFromFloat(89.99),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
			Category:    "electronics",
			Stock:       30,
		},
		{
			Name:        "Smartphone X200",
			Description: `Smartphone with a 6.5" AMOLED display and 108MP camera`,
			Price:       decimal.NewFromFloat(899.99),
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400",
			Category:    "electronics",
			Stock:       20,
		},
		{
			Name:        `Tablet Ultra 10"`,
			Description: "Lightweight tablet with stylus included, great for design and notes",
			Price:       decimal.NewFromFloat(549.99),
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400",
			Category:    "electronics",
			Stock:       12,
		},
		{
			Name:        `Curved Monitor 27"`,
			Description: "QHD 144Hz monitor with an IPS panel for gaming and productivity",
			Price:       decimal.NewFromFloat(399.99),
			Image:       "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=400",
			Category:    "electronics",
			Stock:       8,
		},
		{
			Name:        "RGB Mechanical Keyboard",
			Description: "Mechanical keyboard with Cherry MX switches and customizable RGB lighting",
			Price:       decimal.NewFromFloat(129.99),
			Image:       "https://images.unsplash.com/photo-1595225476474-87563907a212?w=400",
			Category:    "electronics",
			Stock:       35,
		},
		// clothing
		{
			Name:        "Premium Cotton T-Shirt",
			Description: "100% organic cotton t-shirt, regular fit",
			Price:       decimal.NewFromFloat(29.99),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Category:    "clothing",
			Stock:       50,
		},
		{
			Name:        "Slim Fit Jeans",
			Description: "Stretch denim with a modern slim fit cut",
			Price:       decimal.NewFromFloat(59.99),
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400",
			Category:    "clothing",
			Stock:       40,
		},
		{
			Name:        "Leather Jacket",
			Description: "Synthetic leather jacket with a thermal inner lining",
			Price:       decimal.NewFromFloat(149.99),
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
			Category:    "clothing",
			Stock:       15,
		},
		{
			Name:        "Running Pro Sneakers",
			Description: "Sports sneakers with gel cushioning and a non-slip sole",
			Price:       decimal.NewFromFloat(119.99),
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
			Category:    "clothing",
			Stock:       25,
		},
		{
			Name:        "Pullover Hoodie",
			Description: "Unisex french terry cotton hoodie for everyday wear",
			Price:       decimal.NewFromFloat(44.99),
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
			Category:    "clothing",
			Stock:       60,
		},
		{
			Name:        "Slim Dress Shirt",
			Description: "Egyptian cotton dress shirt with a tailored cut",
			Price:       decimal.NewFromFloat(69.99),
			Image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400",
			Category:    "clothing",
			Stock:       30,
		},
		// books
		{
			Name:        "JavaScript: The Good Parts",
			Description: "Classic book on JavaScript best practices",
			Price:       decimal.NewFromFloat(25.00),
			Image:       "https://images.unsplash.com/photo-1532012197267-da84d127e765?w=400",
			Category:    "books",
			Stock:       20,
		},
		{
			Name:        "Clean Code",
			Description: "Robert C. Martin's essential guide to writing clean, maintainable code",
			Price:       decimal.NewFromFloat(35.00),
			Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400",
			Category:    "books",
			Stock:       18,
		},
		{
			Name:        "Design Patterns",
			Description: "Elements of reusable object-oriented software",
			Price:       decimal.NewFromFloat(42.00),
			Image:       "https://images.unsplash.com/photo-1589998059171-988d887df646?w=400",
			Category:    "books",
			Stock:       10,
		},
		{
			Name:        "The Pragmatic Programmer",
			Description: "From journeyman to master: practical advice for modern developers",
			Price:       decimal.NewFromFloat(38.50),
			Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
			Category:    "books",
			Stock:       14,
		},
		{
			Name:        "Introduction to Algorithms",
			Description: "Complete reference on algorithms and data structures (CLRS)",
			Price:       decimal.NewFromFloat(55.00),
			Image:       "https://images.unsplash.com/photo-1550399105-c4db5fb85c18?w=400",
			Category:    "books",
			Stock:       8,
		},
		{
			Name:        "Python Crash Course",
			Description: "Project-based, hands-on introduction to programming with Python",
			Price:       decimal.NewFromFloat(30.00),
			Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
			Category:    "books",
			Stock:       22,
		},
		// accessories
		{
			Name:        "Laptop Backpack",
			Description: `Water-resistant backpack with a padded compartment for laptops up to 15"`,
			Price:       decimal.NewFromFloat(59.99),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Category:    "accessories",
			Stock:       25,
		},
		{
			Name:        "Sport Smartwatch",
			Description: "Smartwatch with GPS, heart rate monitor, and IP68 water resistance",
			Price:       decimal.NewFromFloat(199.99),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400",
			Category:    "accessories",
			Stock:       18,
		},
		{
			Name:        "Polarized Sunglasses",
			Description: "UV400 protection with polarized lenses and a lightweight frame",
			Price:       decimal.NewFromFloat(45.99),
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=400",
			Category:    "accessories",
			Stock:       40,
		},
		{
			Name:        "Leather Wallet",
			Description: "Compact genuine leather wallet with RFID protection",
			Price:       decimal.NewFromFloat(34.99),
			Image:       "https://images.unsplash.com/photo-1627123424574-724758594e93?w=400",
			Category:    "accessories",
			Stock:       35,
		},
		{
			Name:        "Apple Watch Band",
			Description: "Sport silicone band compatible with Apple Watch Series 4-9",
			Price:       decimal.NewFromFloat(19.99),
			Image:       "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400",
			Category:    "accessories",
			Stock:       50,
		},
		{
			Name:        `Laptop Sleeve 14"`,
			Description: "Padded neoprene sleeve with an outer pocket for accessories",
			Price:       decimal.NewFromFloat(24.99),
			Image:       "https://images.unsplash.com/photo-1525547719571-a2d4ac8945e2?w=400",
			Category:    "accessories",
			Stock:       30,
		},
	}
}
