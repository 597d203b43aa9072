package kinesisadapter

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/pkg/errors"

	"github.com/mevansam/awsapi/logger"
)

// ErrUnsupported is returned by the setters of a RecordAdapter as
// the adapted stream record is read-only.
var ErrUnsupported = errors.New("kinesisadapter: stream records cannot be modified")

// Record is the Kinesis view of a stream record.
type Record struct {
	SequenceNumber              *string
	Data                        []byte
	PartitionKey                *string
	ApproximateArrivalTimestamp *time.Time
}

// RecordAdapter presents a DynamoDB Streams record to consumers
// written for Kinesis records. The record data is the DynamoDB
// JSON of the complete stream record.
type RecordAdapter struct {
	internal     types.Record
	generateData bool

	once sync.Once
	data []byte
}

func NewRecordAdapter(record types.Record) *RecordAdapter {
	return &RecordAdapter{
		internal:     record,
		generateData: true,
	}
}

// NewRecordAdapterWithoutData returns an adapter whose Data is
// always empty, for consumers that only read the internal record.
func NewRecordAdapterWithoutData(record types.Record) *RecordAdapter {
	return &RecordAdapter{
		internal: record,
	}
}

// Internal returns the adapted stream record.
func (r *RecordAdapter) Internal() types.Record {
	return r.internal
}

func (r *RecordAdapter) SequenceNumber() *string {
	if r.internal.Dynamodb == nil {
		return nil
	}
	return r.internal.Dynamodb.SequenceNumber
}

// Data returns the serialized stream record. It is generated
// on first use.
func (r *RecordAdapter) Data() []byte {
	if !r.generateData {
		return []byte{}
	}
	r.once.Do(func() {
		var err error
		if r.data, err = json.Marshal(recordJSON(r.internal)); err != nil {
			logger.ErrorMessage("RecordAdapter.Data(): unable to serialize record %s: %s",
				aws.ToString(r.internal.EventID), err.Error())
			r.data = []byte{}
		}
	})
	return r.data
}

// PartitionKey is always nil as stream records are not
// partitioned by a caller supplied key.
func (r *RecordAdapter) PartitionKey() *string {
	return nil
}

func (r *RecordAdapter) ApproximateArrivalTimestamp() *time.Time {
	if r.internal.Dynamodb == nil {
		return nil
	}
	return r.internal.Dynamodb.ApproximateCreationDateTime
}

func (r *RecordAdapter) SetSequenceNumber(sequenceNumber string) error {
	return ErrUnsupported
}

func (r *RecordAdapter) SetData(data []byte) error {
	return ErrUnsupported
}

func (r *RecordAdapter) SetPartitionKey(partitionKey string) error {
	return ErrUnsupported
}

func (r *RecordAdapter) SetApproximateArrivalTimestamp(timestamp time.Time) error {
	return ErrUnsupported
}

// ToKinesis returns a copy of the Kinesis view of the record.
func (r *RecordAdapter) ToKinesis() Record {
	return Record{
		SequenceNumber:              r.SequenceNumber(),
		Data:                        r.Data(),
		PartitionKey:                r.PartitionKey(),
		ApproximateArrivalTimestamp: r.ApproximateArrivalTimestamp(),
	}
}

// AdaptRecords adapts a batch of records as returned by
// GetRecords.
func AdaptRecords(records []types.Record) []*RecordAdapter {
	adapters := make([]*RecordAdapter, 0, len(records))
	for _, record := range records {
		adapters = append(adapters, NewRecordAdapter(record))
	}
	return adapters
}
