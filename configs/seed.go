package configs

import (
	"log"

	"github.com/Spyboss/RealTaste-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups writes the default delivery rate card and a starter menu so a
// fresh install can take an order immediately.
func SeedLookups() error {
	db := DB()

	var cnt int64
	db.Model(&entity.DeliverySettings{}).Count(&cnt)
	if cnt == 0 {
		db.Create(&entity.DeliverySettings{
			BaseFee:             180,
			PerKmFee:            40,
			MaxRangeKm:          5,
			MinOrderForDelivery: 0,
			DeliveryEnabled:     true,
		})
	}

	db.Model(&entity.MenuItem{}).Count(&cnt)
	if cnt == 0 {
		rice := entity.MenuItem{Name: "Chicken Fried Rice", BasePrice: 850, IsAvailable: true}
		db.Create(&rice)
		db.Create(&entity.MenuVariant{MenuItemID: rice.ID, Name: "Large", PriceModifier: 200, IsAvailable: true})
		db.Create(&entity.MenuAddon{MenuItemID: rice.ID, Name: "Extra Egg", Price: 100, IsAvailable: true})

		kottu := entity.MenuItem{Name: "Cheese Kottu", BasePrice: 1200, IsAvailable: true}
		db.Create(&kottu)
		db.Create(&entity.MenuVariant{MenuItemID: kottu.ID, Name: "Half", PriceModifier: -400, IsAvailable: true})
	}

	return nil
}
