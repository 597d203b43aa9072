package kinesisadapter_test

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"

	"github.com/mevansam/awsapi/kinesisadapter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Record Adapter", func() {

	var (
		created time.Time
		record  types.Record
	)

	BeforeEach(func() {
		created = time.Date(2020, time.October, 1, 10, 20, 30, 0, time.UTC)

		record = types.Record{
			AwsRegion:    aws.String("us-east-1"),
			EventID:      aws.String("e1"),
			EventName:    types.OperationTypeModify,
			EventSource:  aws.String("aws:dynamodb"),
			EventVersion: aws.String("1.1"),
			Dynamodb: &types.StreamRecord{
				ApproximateCreationDateTime: aws.Time(created),
				Keys: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: "pet-1"},
				},
				NewImage: map[string]types.AttributeValue{
					"id":    &types.AttributeValueMemberS{Value: "pet-1"},
					"age":   &types.AttributeValueMemberN{Value: "3"},
					"tags":  &types.AttributeValueMemberSS{Value: []string{"cat", "indoor"}},
					"owner": &types.AttributeValueMemberNULL{Value: true},
					"info": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
						"vaccinated": &types.AttributeValueMemberBOOL{Value: true},
						"weights": &types.AttributeValueMemberL{Value: []types.AttributeValue{
							&types.AttributeValueMemberN{Value: "4.2"},
							&types.AttributeValueMemberB{Value: []byte("hi")},
						}},
					}},
				},
				SequenceNumber: aws.String("111"),
				SizeBytes:      aws.Int64(26),
				StreamViewType: types.StreamViewTypeNewImage,
			},
			UserIdentity: &types.Identity{
				PrincipalId: aws.String("dynamodb.amazonaws.com"),
				Type:        aws.String("Service"),
			},
		}
	})

	It("exposes the kinesis view of a stream record", func() {

		adapter := kinesisadapter.NewRecordAdapter(record)
		Expect(*adapter.SequenceNumber()).To(Equal("111"))
		Expect(adapter.PartitionKey()).To(BeNil())
		Expect(*adapter.ApproximateArrivalTimestamp()).To(BeTemporally("==", created))
		Expect(adapter.Internal()).To(Equal(record))

		Expect(string(adapter.Data())).To(MatchJSON(`{
			"awsRegion": "us-east-1",
			"eventID": "e1",
			"eventName": "MODIFY",
			"eventSource": "aws:dynamodb",
			"eventVersion": "1.1",
			"dynamodb": {
				"ApproximateCreationDateTime": 1601547630,
				"Keys": {"id": {"S": "pet-1"}},
				"NewImage": {
					"id": {"S": "pet-1"},
					"age": {"N": "3"},
					"tags": {"SS": ["cat", "indoor"]},
					"owner": {"NULL": true},
					"info": {"M": {
						"vaccinated": {"BOOL": true},
						"weights": {"L": [{"N": "4.2"}, {"B": "aGk="}]}
					}}
				},
				"SequenceNumber": "111",
				"SizeBytes": 26,
				"StreamViewType": "NEW_IMAGE"
			},
			"userIdentity": {"PrincipalId": "dynamodb.amazonaws.com", "Type": "Service"}
		}`))
	})

	It("generates the record data once", func() {

		adapter := kinesisadapter.NewRecordAdapter(record)
		data := adapter.Data()
		Expect(&adapter.Data()[0]).To(BeIdenticalTo(&data[0]))
	})

	It("does not generate data when disabled", func() {

		adapter := kinesisadapter.NewRecordAdapterWithoutData(record)
		Expect(adapter.Data()).To(BeEmpty())
		Expect(*adapter.SequenceNumber()).To(Equal("111"))
	})

	It("converts the adapter to a kinesis record", func() {

		r := kinesisadapter.NewRecordAdapter(record).ToKinesis()
		Expect(*r.SequenceNumber).To(Equal("111"))
		Expect(r.PartitionKey).To(BeNil())
		Expect(*r.ApproximateArrivalTimestamp).To(BeTemporally("==", created))
		Expect(r.Data).ToNot(BeEmpty())
	})

	It("handles a record without stream data", func() {

		adapter := kinesisadapter.NewRecordAdapter(types.Record{EventID: aws.String("e2")})
		Expect(adapter.SequenceNumber()).To(BeNil())
		Expect(adapter.ApproximateArrivalTimestamp()).To(BeNil())
		Expect(string(adapter.Data())).To(MatchJSON(`{"eventID":"e2"}`))
	})

	It("does not allow the record to be modified", func() {

		adapter := kinesisadapter.NewRecordAdapter(record)
		Expect(adapter.SetSequenceNumber("222")).To(MatchError(kinesisadapter.ErrUnsupported))
		Expect(adapter.SetData([]byte("x"))).To(MatchError(kinesisadapter.ErrUnsupported))
		Expect(adapter.SetPartitionKey("k")).To(MatchError(kinesisadapter.ErrUnsupported))
		Expect(adapter.SetApproximateArrivalTimestamp(time.Now())).To(MatchError(kinesisadapter.ErrUnsupported))
		Expect(*adapter.SequenceNumber()).To(Equal("111"))
	})

	It("adapts a batch of records", func() {

		adapters := kinesisadapter.AdaptRecords([]types.Record{record, {EventID: aws.String("e2")}})
		Expect(adapters).To(HaveLen(2))
		Expect(*adapters[0].SequenceNumber()).To(Equal("111"))
		Expect(*adapters[1].Internal().EventID).To(Equal("e2"))
	})
})
