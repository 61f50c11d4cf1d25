package usecases_test

import (
	"context"
	"time"

	"brokerage-crm/internal/crm/domain"
	"brokerage-crm/internal/crm/usecases"
	mockusecases "brokerage-crm/test/unit/doubles/crm/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("TableService", func() {
	var (
		ctrl    *gomock.Controller
		store   *mockusecases.MockRecordStore
		service *usecases.SimpleTableService
		table   domain.DynamicTable
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		store = mockusecases.NewMockRecordStore(ctrl)
		now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))
		service = usecases.NewTableService(store, usecases.FixedClock(now))
		ctx = context.Background()

		table, _ = domain.NewDynamicTableBuilder().
			WithID("t-1").
			WithName("상담 기록").
			WithColumns(
				domain.Column{Name: "title", Required: true},
				domain.Column{Name: "recorded_on", Type: domain.ColumnTypeDate, Role: domain.ColumnRoleAutoDate},
			).
			Build()
	})

	ginkgo.It("should auto fill and store new rows", func() {
		store.EXPECT().GetTable(gomock.Any(), domain.ID("t-1")).Return(table, nil)
		store.EXPECT().UpsertRow(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, row domain.DynamicTableRow) error {
			gomega.Expect(row.TableID).To(gomega.Equal(domain.ID("t-1")))
			gomega.Expect(row.Fields).To(gomega.HaveKeyWithValue("recorded_on", "2026-10-19"))
			return nil
		})

		row, err := service.CreateRow(ctx, "t-1", map[string]any{"title": "첫 상담"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(row.ID).NotTo(gomega.BeEmpty())
	})

	ginkgo.It("should not store rows missing required fields", func() {
		store.EXPECT().GetTable(gomock.Any(), domain.ID("t-1")).Return(table, nil)

		_, err := service.CreateRow(ctx, "t-1", map[string]any{})
		gomega.Expect(err).To(gomega.MatchError(domain.ErrRequiredFieldMissing))
	})

	ginkgo.It("should not touch rows of another table", func() {
		store.EXPECT().GetRow(gomock.Any(), domain.ID("r-1")).Return(domain.DynamicTableRow{ID: "r-1", TableID: "t-2"}, nil)

		err := service.DeleteRow(ctx, "t-1", "r-1")
		gomega.Expect(err).To(gomega.MatchError(domain.ErrRowNotFound))
	})

	ginkgo.It("should remove rows before the table", func() {
		store.EXPECT().ListRows(gomock.Any(), domain.ID("t-1")).Return([]domain.DynamicTableRow{{ID: "r-1", TableID: "t-1"}}, nil)
		gomock.InOrder(
			store.EXPECT().Remove(gomock.Any(), domain.CollectionRows, domain.ID("r-1")).Return(nil),
			store.EXPECT().Remove(gomock.Any(), domain.CollectionTables, domain.ID("t-1")).Return(nil),
		)

		gomega.Expect(service.Delete(ctx, "t-1")).To(gomega.Succeed())
	})

	ginkgo.It("should reject invalid column updates", func() {
		store.EXPECT().GetTable(gomock.Any(), domain.ID("t-1")).Return(table, nil)

		_, err := service.Update(ctx, domain.DynamicTable{ID: "t-1", Columns: []domain.Column{{Name: "a"}, {Name: "a"}}})
		gomega.Expect(err).To(gomega.MatchError(domain.ErrDuplicateColumn))
	})
})
