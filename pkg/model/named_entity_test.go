package model

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type widget struct {
	NamedEntity
}

func (widget) TableName() string { return "widgets" }

type LookupSuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
}

func (s *LookupSuite) SetupSuite() {
	var (
		db  *sql.DB
		err error
	)

	db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(s.T(), err)
}

func (s *LookupSuite) AfterTest(_, _ string) {
	require.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func TestNameOrUUIDLookups(t *testing.T) {
	suite.Run(t, new(LookupSuite))
}

func (s *LookupSuite) TestFindByUUID() {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "widgets" WHERE uuid = $1 ORDER BY "widgets"."uuid" LIMIT 1`)).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name"}).
			AddRow(id.String(), "my_service"))

	var w widget
	require.NoError(s.T(), FindByNameOrUUID(s.DB, &w, id.String()))
	assert.Equal(s.T(), id, w.UUID)
	require.NotNil(s.T(), w.Name)
	assert.Equal(s.T(), "my_service", *w.Name)
}

func (s *LookupSuite) TestFindByName() {
	id := uuid.MustParse("8d6a3b0a-3f4e-4f0a-9b34-6a2ef75c8c9e")

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "widgets" WHERE name = $1 ORDER BY "widgets"."uuid" LIMIT 1`)).
		WithArgs("my-service").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name"}).
			AddRow(id.String(), "my-service"))

	var w widget
	require.NoError(s.T(), FindByNameOrUUID(s.DB, &w, "my-service"))
	assert.Equal(s.T(), id, w.UUID)
}

func (s *LookupSuite) TestFindByNameMiss() {
	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "widgets" WHERE name = $1 ORDER BY "widgets"."uuid" LIMIT 1`)).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name"}))

	var w widget
	assert.ErrorIs(s.T(), FindByNameOrUUID(s.DB, &w, "missing"), gorm.ErrRecordNotFound)
}

// A string that parses as a UUID is never retried as a name.
func (s *LookupSuite) TestFindByUUIDMissDoesNotFallBack() {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM "widgets" WHERE uuid = $1 ORDER BY "widgets"."uuid" LIMIT 1`)).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "name"}))

	var w widget
	assert.ErrorIs(s.T(), FindByNameOrUUID(s.DB, &w, id.String()), gorm.ErrRecordNotFound)
}

func (s *LookupSuite) TestNamesOrUUIDs() {
	unnamed := uuid.MustParse("5f0c9f6e-61de-4aa4-a5a0-0d1c1e2f3a4b")

	s.mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT "name","uuid" FROM "widgets" ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "uuid"}).
			AddRow("alpha", "8d6a3b0a-3f4e-4f0a-9b34-6a2ef75c8c9e").
			AddRow("beta", "123e4567-e89b-12d3-a456-426614174000").
			AddRow(nil, unnamed.String()))

	names, err := NamesOrUUIDs(s.DB, &widget{})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"alpha", "beta", unnamed.String()}, names)
}

func TestNameOrUUID(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	e := &NamedEntity{UUIDPK: UUIDPK{UUID: id}}
	assert.Equal(t, id.String(), e.NameOrUUID())

	name := "billing_api"
	e.Name = &name
	assert.Equal(t, "billing_api", e.NameOrUUID())
}
