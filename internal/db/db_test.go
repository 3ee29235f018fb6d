package db_test

import (
	"context"
	"database/sql"

	"bookmarkd/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID    uint `gorm:"primaryKey"`
	Email string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("the record is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("email"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

				mock.ExpectCommit()
			})

			It("should insert the record without errors", func() {
				err := testDB.Insert(context.Background(), &Test{Email: "alice@example.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record violates a unique constraint", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("email"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("alice@example.com").
					WillReturnError(gorm.ErrDuplicatedKey)

				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.Insert(context.Background(), &Test{Email: "alice@example.com"})
				Expect(err).To(Equal(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE email = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("alice@example.com", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
						AddRow(1, "alice@example.com"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "email", "alice@example.com", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Email).To(Equal("alice@example.com"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE email = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("ghost@example.com", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "email", "ghost@example.com", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAll", func() {
		When("multiple records exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
						AddRow(1, "alice@example.com").
						AddRow(2, "bob@example.com"))
			})

			It("should return all records", func() {
				var results []Test
				err := testDB.GetAll(context.Background(), &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Email).To(Equal("alice@example.com"))
				Expect(results[1].Email).To(Equal("bob@example.com"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAll(context.Background(), &results)
				Expect(err).To(MatchError(ContainSubstring("getting all records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateOneBy", func() {
		When("a record matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^UPDATE "tests" SET "email"=\$1 WHERE email = \$2$`).
					WithArgs("alice@updated.com", "alice@example.com").
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("should report one affected row", func() {
				rows, err := testDB.UpdateOneBy(context.Background(), &Test{}, "email", "alice@example.com",
					map[string]any{"email": "alice@updated.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^UPDATE "tests" SET "email"=\$1 WHERE email = \$2$`).
					WithArgs("alice@updated.com", "ghost@example.com").
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				rows, err := testDB.UpdateOneBy(context.Background(), &Test{}, "email", "ghost@example.com",
					map[string]any{"email": "alice@updated.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
