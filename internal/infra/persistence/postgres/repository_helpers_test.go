package postgres

import (
	"fmt"
	"testing"
	"time"

	"nms/internal/domain/entity"
	"nms/internal/infra/persistence/model"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with every model migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func testCommonField() entity.CommonField {
	return entity.CommonField{
		CreatedBy:   gofakeit.Int64(),
		CreatedDate: time.Now().UTC().Truncate(time.Second),
	}
}

func fakeCountry() *entity.Country {
	return &entity.Country{
		CountryName:   gofakeit.UUID(),
		TelephoneCode: "+" + gofakeit.Numerify("##"),
		CommonField:   testCommonField(),
	}
}

func fakeAddress(cityID int64) *entity.Address {
	return &entity.Address{
		AddressDescription: gofakeit.Street(),
		SourceID:           gofakeit.Int64(),
		SourceType:         "company",
		CityID:             cityID,
		Phone:              gofakeit.Numerify("##########"),
		CommonField:        testCommonField(),
	}
}

func fakeCompany() *entity.Company {
	return &entity.Company{
		CompanyName: gofakeit.Company() + " " + gofakeit.UUID(),
		ShortName:   gofakeit.LetterN(4),
		Email:       gofakeit.Email(),
		Phone:       gofakeit.Numerify("##########"),
		Website:     gofakeit.URL(),
		CommonField: testCommonField(),
	}
}
