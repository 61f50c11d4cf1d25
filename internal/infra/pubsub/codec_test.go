package pubsub_test

import (
	"encoding/binary"

	"brokerage-crm/internal/infra/pubsub"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/riferrei/srclient"
)

const noteSchema = `{
	"type": "record",
	"name": "Note",
	"namespace": "crm.test",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "body", "type": "string"},
		{"name": "written_at", "type": "long"}
	]
}`

type note struct {
	ID        string `json:"id" avro:"id"`
	Body      string `json:"body" avro:"body"`
	WrittenAt int64  `json:"written_at" avro:"written_at"`
}

func (note) AvroSchema() string { return noteSchema }

type plainNote struct {
	ID string `json:"id"`
}

var _ = ginkgo.Describe("Codecs", func() {
	sample := note{ID: "n-1", Body: "잔금 확인", WrittenAt: 1714521600000}

	ginkgo.Context("NewCodec", func() {
		ginkgo.It("should use JSON for messages without a schema", func() {
			codec, err := pubsub.NewCodec(plainNote{}, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(codec).To(gomega.BeAssignableToTypeOf(&pubsub.JSONCodec{}))
		})

		ginkgo.It("should use plain avro without a registry", func() {
			codec, err := pubsub.NewCodec(note{}, nil)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(codec).To(gomega.BeAssignableToTypeOf(&pubsub.AvroCodec{}))
		})

		ginkgo.It("should use the Confluent codec with a registry", func() {
			codec, err := pubsub.NewCodec(note{}, srclient.CreateMockSchemaRegistryClient("mock://registry"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(codec).To(gomega.BeAssignableToTypeOf(&pubsub.ConfluentAvroCodec{}))
		})
	})

	ginkgo.Context("JSONCodec", func() {
		ginkgo.It("should round trip a value", func() {
			codec, _ := pubsub.NewCodec(plainNote{}, nil)

			data, err := codec.Encode(plainNote{ID: "x"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			decoded, err := codec.Decode(data)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(decoded).To(gomega.Equal(&plainNote{ID: "x"}))
		})
	})

	ginkgo.Context("AvroCodec", func() {
		ginkgo.It("should round trip a record", func() {
			codec, err := pubsub.NewAvroCodec(note{}, noteSchema)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			data, err := codec.Encode(sample)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			decoded, err := codec.Decode(data)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(decoded).To(gomega.Equal(&sample))
		})

		ginkgo.It("should reject an invalid schema", func() {
			_, err := pubsub.NewAvroCodec(note{}, `{"type": "nope"}`)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("ConfluentAvroCodec", func() {
		var codec *pubsub.ConfluentAvroCodec

		ginkgo.BeforeEach(func() {
			var err error
			codec, err = pubsub.NewConfluentAvroCodec(note{}, noteSchema, srclient.CreateMockSchemaRegistryClient("mock://registry"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should prefix the payload with the magic byte and schema id", func() {
			data, err := codec.Encode(sample)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(data[0]).To(gomega.Equal(byte(0)))
			gomega.Expect(binary.BigEndian.Uint32(data[1:5])).To(gomega.BeNumerically(">", 0))
		})

		ginkgo.It("should round trip a record", func() {
			data, err := codec.Encode(sample)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			decoded, err := codec.Decode(data)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(decoded).To(gomega.Equal(&sample))
		})

		ginkgo.It("should reject data without the wire header", func() {
			_, err := codec.Decode([]byte{1, 2})
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("too short")))

			_, err = codec.Decode([]byte{9, 0, 0, 0, 1, 0})
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("magic byte")))
		})
	})
})
