package sql_test

import (
	"context"

	"brokerage-crm/internal/infra/sql"
	"brokerage-crm/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testModel struct {
	ID   string `gorm:"primaryKey"`
	Name string
	Hits int
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm *sql.DB
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM(utils.GenerateUUID())
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&testModel{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("Error", func() {
		ginkgo.When("the record is missing", func() {
			ginkgo.It("should translate to ErrRecordNotFound", func() {
				var found testModel
				err := orm.WithContext(ctx).First(&found, "id = ?", "missing").Error()
				gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
			})
		})
	})

	ginkgo.Context("Save", func() {
		ginkgo.It("should insert and then update by primary key", func() {
			gomega.Expect(orm.WithContext(ctx).Save(&testModel{ID: "a", Name: "first"}).Error()).To(gomega.Succeed())
			gomega.Expect(orm.WithContext(ctx).Save(&testModel{ID: "a", Name: "second"}).Error()).To(gomega.Succeed())

			var models []testModel
			gomega.Expect(orm.WithContext(ctx).Find(&models).Error()).To(gomega.Succeed())
			gomega.Expect(models).To(gomega.HaveLen(1))
			gomega.Expect(models[0].Name).To(gomega.Equal("second"))
		})
	})

	ginkgo.Context("Where and Order", func() {
		ginkgo.It("should narrow and order the results", func() {
			for _, model := range []testModel{{ID: "c", Name: "x"}, {ID: "a", Name: "x"}, {ID: "b", Name: "y"}} {
				gomega.Expect(orm.WithContext(ctx).Save(&model).Error()).To(gomega.Succeed())
			}

			var models []testModel
			err := orm.WithContext(ctx).Where("name = ?", "x").Order("id").Find(&models).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(models).To(gomega.Equal([]testModel{{ID: "a", Name: "x"}, {ID: "c", Name: "x"}}))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the record by id", func() {
			gomega.Expect(orm.WithContext(ctx).Save(&testModel{ID: "d"}).Error()).To(gomega.Succeed())
			gomega.Expect(orm.WithContext(ctx).Delete(&testModel{}, "id = ?", "d").Error()).To(gomega.Succeed())

			var found testModel
			err := orm.WithContext(ctx).First(&found, "id = ?", "d").Error()
			gomega.Expect(err).To(gomega.MatchError(sql.ErrRecordNotFound))
		})
	})

	ginkgo.Context("Updates", func() {
		ginkgo.It("should touch only the rows matching the condition", func() {
			gomega.Expect(orm.WithContext(ctx).Save(&testModel{ID: "u", Name: "x", Hits: 1}).Error()).To(gomega.Succeed())

			result := orm.WithContext(ctx).Model(&testModel{}).Where("id = ? AND name = ?", "u", "x").
				Updates(map[string]any{"name": "y", "hits": sql.Increment("hits")})
			gomega.Expect(result.Error()).To(gomega.Succeed())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(1)))

			result = orm.WithContext(ctx).Model(&testModel{}).Where("id = ? AND name = ?", "u", "x").
				Updates(map[string]any{"name": "z"})
			gomega.Expect(result.Error()).To(gomega.Succeed())
			gomega.Expect(result.RowsAffected()).To(gomega.BeZero())

			var found testModel
			gomega.Expect(orm.WithContext(ctx).First(&found, "id = ?", "u").Error()).To(gomega.Succeed())
			gomega.Expect(found).To(gomega.Equal(testModel{ID: "u", Name: "y", Hits: 2}))
		})
	})

	ginkgo.Context("Ping", func() {
		ginkgo.It("should answer for an open database", func() {
			gomega.Expect(orm.Ping(ctx)).To(gomega.Succeed())
		})
	})
})
