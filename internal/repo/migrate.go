package repo

import (
	"gorm.io/gorm"

	"vacation-api/internal/feature/user"
	"vacation-api/internal/feature/vacation"
)

// AutoMigrate users 必须先于 vacations（外键）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&user.UserModel{}, &vacation.VacationModel{})
}
