// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/madhav-gif/Full-stack-project/internal/domain/cart"
	"github.com/madhav-gif/Full-stack-project/internal/domain/order"
	"github.com/madhav-gif/Full-stack-project/internal/domain/product"
	"github.com/madhav-gif/Full-stack-project/internal/domain/user"
	"github.com/madhav-gif/Full-stack-project/internal/domain/wishlist"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		&user.User{},

		&product.Product{},
		&product.ProductImage{},

		&cart.CartItem{},
		&wishlist.WishlistItem{},

		&order.Order{},
		&order.OrderItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_product_images_sort_order ON product_images(product_id, sort_order)",

		// Cart indexes
		"CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_cart_items_added_at ON cart_items(added_at DESC)",

		// Wishlist indexes
		"CREATE INDEX IF NOT EXISTS idx_wishlist_items_user ON wishlist_items(user_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_payment_status ON orders(payment_status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_razorpay_order ON orders(razorpay_order_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedTestUser(); err != nil {
		return fmt.Errorf("failed to seed test user: %w", err)
	}

	if err := m.seedTestProducts(); err != nil {
		return fmt.Errorf("failed to seed test products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedTestUser() error {
	log.Println("👤 Seeding test user...")

	var existing user.User
	result := m.db.Where("email = ?", "test1@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("test123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		testUser := user.User{
			Username: "testuser",
			Email:    "test1@example.com",
			Password: string(hashedPassword),
			IsActive: true,
		}

		if err := m.db.Create(&testUser).Error; err != nil {
			return err
		}

		log.Println("✅ Created test user: test1@example.com (password: test123)")
	} else {
		log.Println("⏭️ Test user already exists")
	}

	return nil
}

// seedTestProducts creates catalog products for development
func (m *Migration) seedTestProducts() error {
	log.Println("🛍️ Seeding test products...")

	var productCount int64
	m.db.Model(&product.Product{}).Count(&productCount)

	if productCount >= 3 {
		log.Println("⏭️ Test products already exist")
		return nil
	}

	testProducts := []product.Product{
		{
			Name:        "Classic Cotton T-Shirt",
			Description: "Soft 100% cotton t-shirt with a regular fit. Pre-shrunk fabric keeps its shape wash after wash.",
			Price:       49900, // ₹499.00
			Colors:      []string{"Black", "White", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Images: []product.ProductImage{
				{URL: "https://example.com/images/tshirt-front.jpg", AltText: "Classic Cotton T-Shirt front", SortOrder: 1},
				{URL: "https://example.com/images/tshirt-back.jpg", AltText: "Classic Cotton T-Shirt back", SortOrder: 2},
			},
		},
		{
			Name:        "Slim Fit Denim Jeans",
			Description: "Stretch denim jeans with a slim fit through the hip and thigh. Five pocket styling.",
			Price:       149900, // ₹1499.00
			Colors:      []string{"Indigo", "Black"},
			Sizes:       []string{"30", "32", "34", "36"},
			Images: []product.ProductImage{
				{URL: "https://example.com/images/jeans-front.jpg", AltText: "Slim Fit Denim Jeans", SortOrder: 1},
			},
		},
		{
			Name:        "Canvas Sneakers",
			Description: "Low top canvas sneakers with rubber sole and classic lace-up front.",
			Price:       99900, // ₹999.00
			Colors:      []string{"White", "Red"},
			Sizes:       []string{"7", "8", "9", "10", "11"},
			Images: []product.ProductImage{
				{URL: "https://example.com/images/sneakers-side.jpg", AltText: "Canvas Sneakers side view", SortOrder: 1},
			},
		},
	}

	for _, prod := range testProducts {
		var existing product.Product
		result := m.db.Where("name = ?", prod.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&prod).Error; err != nil {
				log.Printf("⚠️ Failed to create test product %s: %v", prod.Name, err)
			} else {
				log.Printf("✅ Created test product: %s", prod.Name)
			}
		} else {
			log.Printf("⏭️ Product already exists: %s", prod.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"order_items",
		"orders",
		"wishlist_items",
		"cart_items",
		"product_images",
		"products",
		"users",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}
