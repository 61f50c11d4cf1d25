package utils_test

import (
	"time"

	"brokerage-crm/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Timezone", func() {
	ginkgo.Context("ValidateTimezone", func() {
		ginkgo.When("validating timezones", func() {
			ginkgo.It("should validate UTC timezone", func() {
				err := utils.ValidateTimezone("UTC")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})

			ginkgo.It("should validate Asia/Seoul timezone", func() {
				err := utils.ValidateTimezone("Asia/Seoul")
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			})
		})

		ginkgo.When("validating invalid timezones", func() {
			ginkgo.It("should return error for empty timezone", func() {
				err := utils.ValidateTimezone("")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})

			ginkgo.It("should return error for random string timezone", func() {
				err := utils.ValidateTimezone("Invalid/Timezone/Name")
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Context("LoadLocationOrUTC", func() {
		ginkgo.It("should fall back to UTC for unknown names", func() {
			gomega.Expect(utils.LoadLocationOrUTC("Nowhere/Land")).To(gomega.Equal(time.UTC))
		})

		ginkgo.It("should fall back to UTC for empty names", func() {
			gomega.Expect(utils.LoadLocationOrUTC("")).To(gomega.Equal(time.UTC))
		})
	})

	ginkgo.Context("ParseDate", func() {
		var seoul *time.Location

		ginkgo.BeforeEach(func() {
			seoul = utils.LoadLocationOrUTC("Asia/Seoul")
		})

		ginkgo.It("should place bare dates at local midnight", func() {
			parsed, err := utils.ParseDate("2024-03-05", seoul)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(parsed.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, seoul))).To(gomega.BeTrue())
		})

		ginkgo.It("should accept RFC3339 timestamps", func() {
			parsed, err := utils.ParseDate("2024-03-05T01:30:00Z", seoul)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(parsed.Location()).To(gomega.Equal(seoul))
			gomega.Expect(parsed.Hour()).To(gomega.Equal(10))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := utils.ParseDate("next tuesday", seoul)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})

		ginkgo.It("should format back to a calendar date", func() {
			parsed, _ := utils.ParseDate("2024-12-31", seoul)
			gomega.Expect(utils.FormatDate(parsed, seoul)).To(gomega.Equal("2024-12-31"))
		})
	})
})
