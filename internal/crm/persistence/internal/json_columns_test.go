package internal_test

import (
	"encoding/json"
	"time"

	"brokerage-crm/internal/crm/domain"
	persistenceInternal "brokerage-crm/internal/crm/persistence/internal"
	"brokerage-crm/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("JSON columns", func() {
	ginkgo.Context("Fields", func() {
		ginkgo.It("should store an empty object for empty rows", func() {
			value, err := persistenceInternal.Fields{}.Value()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("{}"))
		})

		ginkgo.It("should scan text and blob columns", func() {
			var fields persistenceInternal.Fields
			gomega.Expect(fields.Scan(`{"category":"A","price":1200}`)).To(gomega.Succeed())
			gomega.Expect(fields).To(gomega.HaveKeyWithValue("category", "A"))
			gomega.Expect(fields["price"]).To(gomega.BeNumerically("==", 1200))

			gomega.Expect(fields.Scan([]byte(`{"memo":"x"}`))).To(gomega.Succeed())
			gomega.Expect(fields).To(gomega.Equal(persistenceInternal.Fields{"memo": "x"}))
		})

		ginkgo.It("should scan NULL into an empty map", func() {
			var fields persistenceInternal.Fields
			gomega.Expect(fields.Scan(nil)).To(gomega.Succeed())
			gomega.Expect(fields).NotTo(gomega.BeNil())
			gomega.Expect(fields).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject unsupported sources", func() {
			var fields persistenceInternal.Fields
			gomega.Expect(fields.Scan(42)).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("FollowUps", func() {
		ginkgo.It("should keep author, content and date", func() {
			date := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
			followUps := persistenceInternal.FollowUps{{Author: "답장", Content: "좋아요", Date: utils.Time{Time: date}}}

			value, err := followUps.Value()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var restored persistenceInternal.FollowUps
			gomega.Expect(restored.Scan(value)).To(gomega.Succeed())
			gomega.Expect(restored).To(gomega.HaveLen(1))
			gomega.Expect(restored[0].Author).To(gomega.Equal("답장"))
			gomega.Expect(restored[0].Date.Equal(date)).To(gomega.BeTrue())
		})

		ginkgo.It("should store an empty array when there are none", func() {
			value, err := persistenceInternal.FollowUps(nil).Value()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(value).To(gomega.Equal("[]"))
		})
	})

	ginkgo.Context("Contract", func() {
		ginkgo.It("should drop zero optional dates", func() {
			contract := persistenceInternal.Contract{ID: "k", BalanceDate: &utils.Time{}}
			gomega.Expect(contract.ToDomain().BalanceDate).To(gomega.BeNil())
		})

		ginkgo.It("should serialize with snake case keys", func() {
			entity := persistenceInternal.FromContract(domain.Contract{ID: "k", ProgressStatus: domain.ContractStatusBalance})
			data, err := json.Marshal(entity)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(data)).To(gomega.ContainSubstring(`"progress_status":"잔금"`))
			gomega.Expect(string(data)).NotTo(gomega.ContainSubstring("balance_date"))
		})
	})

	ginkgo.Context("DynamicTable", func() {
		ginkgo.It("should map columns both ways", func() {
			table := domain.DynamicTable{
				ID:   "t",
				Name: "매물",
				Columns: []domain.Column{
					{Name: "price", Label: "가격", Type: domain.ColumnTypeNumber, Required: true, Role: domain.ColumnRolePlain},
				},
			}
			gomega.Expect(persistenceInternal.FromDynamicTable(table).ToDomain().Columns).To(gomega.Equal(table.Columns))
		})
	})
})
