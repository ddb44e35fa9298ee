package database

import (
	"log"
	"os"

	"github.com/vulndesk-api/models"
	"github.com/vulndesk-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed fills the reference catalogs and makes sure an admin worker
// account exists. Safe to run repeatedly: inserts are upserts keyed on
// the unique name/email columns.
func Seed() error {
	assetTypes := []models.AssetType{
		{Name: "Server", Description: "Physical or virtual server"},
		{Name: "Workstation", Description: "Employee workstation or laptop"},
		{Name: "Network Device", Description: "Router, switch or firewall"},
		{Name: "Web Application", Description: "Externally reachable web application"},
		{Name: "Database", Description: "Database server or managed instance"},
		{Name: "Cloud Resource", Description: "Cloud-hosted resource"},
	}
	if err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&assetTypes).Error; err != nil {
		return err
	}

	scanners := []models.Scanner{
		{Name: "Nessus", Description: "Tenable Nessus vulnerability scanner"},
		{Name: "Qualys", Description: "Qualys VMDR"},
		{Name: "OpenVAS", Description: "Greenbone OpenVAS"},
		{Name: "Acunetix", Description: "Acunetix web application scanner"},
		{Name: "Manual", Description: "Manually reported finding"},
	}
	if err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&scanners).Error; err != nil {
		return err
	}

	return seedAdminAccount()
}

func seedAdminAccount() error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@vulndesk.local"
	}
	var count int64
	if err := DB.Model(&models.UserAccount{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = utils.GenerateSecurePassword(16)
		log.Printf("⚠️ No ADMIN_PASSWORD set, seeding admin account with generated password: %s", password)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.UserAccount{
		FullName: "Administrator",
		Email:    email,
		Password: string(hashed),
		UserType: models.UserTypeWorker,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("✅ Seeded admin account %s", email)
	return nil
}

// SyncDisplaySequences aligns the display-ID counters with the highest
// suffix already present in the tickets and vulnerabilities tables,
// soft-deleted rows included. Run at startup so data imported with
// explicit display IDs cannot collide with newly generated ones.
func SyncDisplaySequences() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		for _, src := range []struct {
			table  string
			letter string
		}{
			{table: "tickets", letter: "T"},
			{table: "vulnerabilities", letter: "V"},
		} {
			type row struct {
				ClientID string
				MaxNum   int64
			}
			var rows []row
			err := tx.Table(src.table).
				Select("client_id, MAX(CAST(split_part(display_id, '-', 3) AS BIGINT)) as max_num").
				Where("display_id ~ '-[0-9]+$'").
				Group("client_id").
				Scan(&rows).Error
			if err != nil {
				return err
			}
			for _, r := range rows {
				err := tx.Exec(`
					INSERT INTO display_sequences (entity_type, client_id, last_value)
					VALUES (?, ?, ?)
					ON CONFLICT (entity_type, client_id)
					DO UPDATE SET last_value = GREATEST(display_sequences.last_value, EXCLUDED.last_value)`,
					src.letter, r.ClientID, r.MaxNum).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
