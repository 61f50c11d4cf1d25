package utils_test

import (
	"encoding/json"
	"time"

	"brokerage-crm/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"
)

var _ = ginkgo.Describe("Time", func() {
	ginkgo.It("should marshal in UTC with millisecond precision", func() {
		value := utils.Time{Time: time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))}

		data, err := json.Marshal(value)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(data)).To(gomega.Equal(`"2024-05-01T00:00:00.000Z"`))
	})

	ginkgo.It("should scan sqlite text values", func() {
		var value utils.Time
		err := value.Scan("2024-05-01 09:10:11")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(value.Hour()).To(gomega.Equal(9))
	})

	ginkgo.It("should scan nil into the zero time", func() {
		value := utils.Time{Time: time.Now()}
		gomega.Expect(value.Scan(nil)).To(gomega.Succeed())
		gomega.Expect(value.IsZero()).To(gomega.BeTrue())
	})

	ginkgo.It("should store the zero time as NULL", func() {
		stored, err := utils.Time{}.Value()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored).To(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("Time msgpack", func() {
	ginkgo.It("should keep the instant through msgpack", func() {
		type record struct {
			At      utils.Time
			Ignored *utils.Time
		}
		value := record{At: utils.Time{Time: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)}}

		data, err := msgpack.Marshal(value)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		var decoded record
		gomega.Expect(msgpack.Unmarshal(data, &decoded)).To(gomega.Succeed())
		gomega.Expect(decoded.At.Equal(value.At.Time)).To(gomega.BeTrue())
		gomega.Expect(decoded.Ignored).To(gomega.BeNil())
	})
})
