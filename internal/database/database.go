package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the CGO-free "sqlite" driver the dialector below names
	_ "modernc.org/sqlite"

	"hotelbooking/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, installs the storage-level
// guards the booking service depends on: the reference unique index (created
// by AutoMigrate from the model tag) and the no-overlap exclusion constraint.
// Two racing inserts for the same room and overlapping date ranges cannot
// both commit; the loser surfaces as a constraint violation that the service
// translates to an availability conflict.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Location{},
		&domain.User{},
		&domain.Room{},
		&domain.RoomRate{},
		&domain.Booking{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		// SQLite runs single-writer; the row lock taken by the booking
		// service transaction is sufficient there.
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking'
  ) THEN
    ALTER TABLE bookings ADD CONSTRAINT idx_no_overbooking
      EXCLUDE USING gist (
        room_id WITH =,
        daterange(check_in_date::date, check_out_date::date, '[)') WITH &&
      )
      WHERE (status NOT IN ('cancelled', 'checked_out'));
  END IF;
END
$$`).Error
}
